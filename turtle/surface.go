package turtle

import (
	"fmt"
	"image/color"
)

// Surface is a drawing backend. Coordinates are plane coordinates; the
// backend owns the mapping to its own pixel or document space.
//
// Backends may buffer commands until Present is called.
type Surface interface {
	StrokeLine(a, b Point, c color.RGBA, width float64)
	FillPolygon(pts []Point, c color.RGBA)
	DrawText(at Point, s string, c color.RGBA)
	Present() error
}

// OpKind identifies a recorded drawing command.
type OpKind uint8

const (
	OpLine OpKind = iota + 1
	OpFill
	OpText
)

func (k OpKind) String() string {
	switch k {
	case OpLine:
		return "line"
	case OpFill:
		return "fill"
	case OpText:
		return "text"
	default:
		return "unknown"
	}
}

// Op is one recorded drawing command. Lines carry two points, fills carry the
// polygon, text carries a single anchor point.
type Op struct {
	Kind   OpKind
	Points []Point
	Color  color.RGBA
	Width  float64
	Text   string
}

// Recorder is a Surface that keeps every command in order. It is the headless
// surface used for tests and for replaying one pass onto several backends.
type Recorder struct {
	ops []Op
	// marks[i] is len(ops) at the i-th Present.
	marks []int
}

func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) StrokeLine(a, b Point, c color.RGBA, width float64) {
	r.ops = append(r.ops, Op{Kind: OpLine, Points: []Point{a, b}, Color: c, Width: width})
}

func (r *Recorder) FillPolygon(pts []Point, c color.RGBA) {
	r.ops = append(r.ops, Op{Kind: OpFill, Points: append([]Point(nil), pts...), Color: c})
}

func (r *Recorder) DrawText(at Point, s string, c color.RGBA) {
	r.ops = append(r.ops, Op{Kind: OpText, Points: []Point{at}, Color: c, Text: s})
}

func (r *Recorder) Present() error {
	r.marks = append(r.marks, len(r.ops))
	return nil
}

// Ops returns the recorded commands. The slice must not be modified.
func (r *Recorder) Ops() []Op { return r.ops }

// Presents counts Present calls since the last Reset.
func (r *Recorder) Presents() int { return len(r.marks) }

// Count returns how many ops of kind k were recorded.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
	r.marks = r.marks[:0]
}

// Replay sends every recorded op to dst in order and presents it once.
func (r *Recorder) Replay(dst Surface) error {
	replay(dst, r.ops)
	return dst.Present()
}

// ReplayFrame sends the ops recorded between Present i-1 and Present i to
// dst and presents it. Ops recorded after the last Present belong to the last
// frame. Replaying frames 0 to Presents()-1 in order onto one surface gives
// the same picture as Replay.
func (r *Recorder) ReplayFrame(dst Surface, i int) error {
	if i < 0 || i >= len(r.marks) {
		return fmt.Errorf("turtle: frame %d of %d", i, len(r.marks))
	}
	from, to := 0, r.marks[i]
	if i > 0 {
		from = r.marks[i-1]
	}
	if i == len(r.marks)-1 {
		to = len(r.ops)
	}
	replay(dst, r.ops[from:to])
	return dst.Present()
}

func replay(dst Surface, ops []Op) {
	for _, op := range ops {
		switch op.Kind {
		case OpLine:
			dst.StrokeLine(op.Points[0], op.Points[1], op.Color, op.Width)
		case OpFill:
			dst.FillPolygon(op.Points, op.Color)
		case OpText:
			dst.DrawText(op.Points[0], op.Text, op.Color)
		}
	}
}
