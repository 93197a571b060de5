package turtle

import (
	"errors"
	"image/color"
	"math"

	"flaggallery/hal"
)

// ErrOpenFill is reported when a canvas is flushed with a fill still open.
var ErrOpenFill = errors.New("fill left open")

type segment struct {
	a, b  Point
	color color.RGBA
	width float64
}

// Canvas is a turtle pen bound to a Surface. It owns the whole pen state
// (position, heading, pen-down, fill mode, colors); nothing else reads or
// writes that state.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	surface Surface
	log     hal.Logger

	pos     Point
	heading float64
	down    bool
	width   float64
	stroke  color.RGBA
	fill    color.RGBA

	filling  bool
	fillPath []Point
	lastUp   bool
	pending  []segment
	arcSteps int

	buffered bool
	reports  int
}

// New returns a canvas at the origin, heading east, pen down, drawing black
// one-unit lines. Drawing is buffered until Update.
func New(s Surface, log hal.Logger) *Canvas {
	if log == nil {
		log = hal.NopLogger{}
	}
	return &Canvas{
		surface:  s,
		log:      log,
		down:     true,
		width:    1,
		stroke:   Black,
		fill:     Black,
		buffered: true,
	}
}

func (c *Canvas) Surface() Surface  { return c.surface }
func (c *Canvas) Position() Point   { return c.pos }
func (c *Canvas) Heading() float64  { return c.heading }
func (c *Canvas) IsDown() bool      { return c.down }
func (c *Canvas) Filling() bool     { return c.filling }
func (c *Canvas) PenWidth() float64 { return c.width }

func (c *Canvas) Colors() (stroke, fill color.RGBA) { return c.stroke, c.fill }

// Reports counts the problems reported through Report.
func (c *Canvas) Reports() int { return c.reports }

// SetBuffered switches between buffered drawing (the surface is presented
// only by Update) and immediate drawing (presented after every command).
func (c *Canvas) SetBuffered(on bool) { c.buffered = on }

func (c *Canvas) Buffered() bool { return c.buffered }

// SetArcSteps fixes the number of segments used for a full circle. Zero
// restores the turtle default, which grows with the radius.
func (c *Canvas) SetArcSteps(n int) {
	if n < 0 {
		n = 0
	}
	c.arcSteps = n
}

func (c *Canvas) SetPenWidth(w float64) {
	if w < 0 {
		w = 0
	}
	c.width = w
}

// SetColor sets both the stroke and the fill color.
func (c *Canvas) SetColor(col color.RGBA) { c.stroke, c.fill = col, col }

func (c *Canvas) SetColors(stroke, fill color.RGBA) { c.stroke, c.fill = stroke, fill }

// SetColorString parses s and sets both colors. On error the colors are left
// unchanged.
func (c *Canvas) SetColorString(s string) error {
	col, err := ParseColor(s)
	if err != nil {
		return err
	}
	c.SetColor(col)
	return nil
}

func (c *Canvas) PenUp()   { c.down = false }
func (c *Canvas) PenDown() { c.down = true }

func (c *Canvas) SetHeading(deg float64) { c.heading = normDeg(deg) }
func (c *Canvas) Left(deg float64)       { c.heading = normDeg(c.heading + deg) }
func (c *Canvas) Right(deg float64)      { c.heading = normDeg(c.heading - deg) }

// MoveTo lifts the pen, jumps to p, faces heading and lowers the pen. It
// draws nothing.
func (c *Canvas) MoveTo(p Point, heading float64) {
	c.PenUp()
	c.Goto(p)
	c.SetHeading(heading)
	c.PenDown()
}

// Forward moves d units along the heading.
func (c *Canvas) Forward(d float64) {
	dx, dy := direction(c.heading)
	c.Goto(Point{X: c.pos.X + dx*d, Y: c.pos.Y + dy*d})
}

// Goto moves the pen to p, drawing a line when the pen is down.
func (c *Canvas) Goto(p Point) {
	if c.down && p != c.pos {
		seg := segment{a: c.pos, b: p, color: c.stroke, width: c.width}
		if c.filling {
			c.pending = append(c.pending, seg)
		} else {
			c.surface.StrokeLine(seg.a, seg.b, seg.color, seg.width)
			c.touch()
		}
	}
	if c.filling {
		switch {
		case !c.down && c.lastUp:
			c.fillPath[len(c.fillPath)-1] = p
		case p != c.fillPath[len(c.fillPath)-1]:
			c.fillPath = append(c.fillPath, p)
		}
		c.lastUp = !c.down
	}
	c.pos = p
}

// Circle draws an arc of the given extent in degrees. The center lies radius
// units to the left of the heading; a negative radius puts it on the right.
// The arc is traced as a regular polygon.
func (c *Canvas) Circle(radius, extent float64) {
	if radius == 0 || extent == 0 {
		return
	}
	frac := math.Abs(extent) / 360
	full := c.arcSteps
	if full == 0 {
		full = int(math.Min(11+math.Abs(radius)/6, 59))
	}
	steps := 1 + int(float64(full)*frac)
	w := extent / float64(steps)
	w2 := w / 2
	l := 2 * radius * math.Sin(w2*math.Pi/180)
	if radius < 0 {
		l, w, w2 = -l, -w, -w2
	}
	c.Left(w2)
	for i := 0; i < steps; i++ {
		c.Forward(l)
		c.Left(w)
	}
	c.Left(-w2)
}

// BeginFill starts collecting the fill polygon at the current position.
// Calling it while a fill is open keeps the open fill.
func (c *Canvas) BeginFill() {
	if c.filling {
		return
	}
	c.filling = true
	c.fillPath = append(c.fillPath[:0], c.pos)
	c.lastUp = true
	c.pending = c.pending[:0]
}

// EndFill fills the polygon collected since BeginFill with the fill color,
// then emits the outline drawn meanwhile so that it sits on top.
func (c *Canvas) EndFill() {
	if !c.filling {
		return
	}
	c.filling = false
	if len(c.fillPath) >= 3 {
		c.surface.FillPolygon(c.fillPath, c.fill)
	}
	for _, s := range c.pending {
		c.surface.StrokeLine(s.a, s.b, s.color, s.width)
	}
	c.pending = c.pending[:0]
	c.touch()
}

// Text writes s anchored at p in the stroke color.
func (c *Canvas) Text(p Point, s string) {
	if s == "" {
		return
	}
	c.surface.DrawText(p, s, c.stroke)
	c.touch()
}

// Report logs a recoverable drawing problem. Drawing continues.
func (c *Canvas) Report(err error) {
	if err == nil {
		return
	}
	c.reports++
	hal.Logf(c.log, "canvas: %v", err)
}

// Update presents everything drawn so far.
func (c *Canvas) Update() error { return c.surface.Present() }

// Flush closes a fill left open (reporting it) and presents the surface. Call
// it before exporting a snapshot so the last shape is committed.
func (c *Canvas) Flush() error {
	if c.filling {
		c.Report(ErrOpenFill)
		c.EndFill()
	}
	return c.Update()
}

func (c *Canvas) touch() {
	if c.buffered {
		return
	}
	if err := c.surface.Present(); err != nil {
		c.Report(err)
	}
}

func normDeg(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	if d == 360 {
		d = 0
	}
	return d
}

// direction returns the unit vector for a heading, exact on the axes so that
// axis-aligned shapes close without rounding drift.
func direction(deg float64) (dx, dy float64) {
	switch deg {
	case 0:
		return 1, 0
	case 90:
		return 0, 1
	case 180:
		return -1, 0
	case 270:
		return 0, -1
	}
	s, co := math.Sincos(deg * math.Pi / 180)
	return co, s
}
