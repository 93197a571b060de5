package turtle

import (
	"errors"
	"math"
	"strings"
	"sync"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

type memLog struct {
	mu    sync.Mutex
	lines []string
}

func (l *memLog) WriteLineString(s string) {
	l.mu.Lock()
	l.lines = append(l.lines, s)
	l.mu.Unlock()
}

func (l *memLog) WriteLineBytes(b []byte) { l.WriteLineString(string(b)) }

func near(a, b Point) bool {
	return scalar.EqualWithinAbs(a.X, b.X, 1e-9) && scalar.EqualWithinAbs(a.Y, b.Y, 1e-9)
}

func TestCanvasDefaults(t *testing.T) {
	c := New(NewRecorder(), nil)
	if c.Position() != (Point{}) || c.Heading() != 0 || !c.IsDown() {
		t.Fatalf("unexpected initial state: pos=%v heading=%v down=%v", c.Position(), c.Heading(), c.IsDown())
	}
	if !c.Buffered() {
		t.Fatal("expected buffered drawing by default")
	}
	if s, f := c.Colors(); s != Black || f != Black {
		t.Fatalf("colors %v %v", s, f)
	}
}

func TestHeadingTurns(t *testing.T) {
	c := New(NewRecorder(), nil)
	c.Left(90)
	if c.Heading() != 90 {
		t.Fatalf("Left(90): heading %v", c.Heading())
	}
	c.Right(180)
	if c.Heading() != 270 {
		t.Fatalf("Right(180): heading %v", c.Heading())
	}
	c.Left(450)
	if c.Heading() != 0 {
		t.Fatalf("Left(450): heading %v", c.Heading())
	}
}

func TestForwardAndPenUp(t *testing.T) {
	rec := NewRecorder()
	c := New(rec, nil)
	c.Forward(10)
	c.Left(90)
	c.Forward(5)
	if c.Position() != Pt(10, 5) {
		t.Fatalf("position %v", c.Position())
	}
	c.PenUp()
	c.Forward(5)
	if n := rec.Count(OpLine); n != 2 {
		t.Fatalf("expected 2 lines, got %d", n)
	}
}

func TestSquareClosesExactly(t *testing.T) {
	c := New(NewRecorder(), nil)
	start := Pt(3.25, -7.5)
	c.MoveTo(start, 0)
	for i := 0; i < 4; i++ {
		c.Forward(12.5)
		c.Right(90)
	}
	if c.Position() != start || c.Heading() != 0 {
		t.Fatalf("ended at %v heading %v", c.Position(), c.Heading())
	}
}

func TestCircleReturnsToStart(t *testing.T) {
	c := New(NewRecorder(), nil)
	c.MoveTo(Pt(0, -10), 0)
	c.Circle(10, 360)
	if !near(c.Position(), Pt(0, -10)) {
		t.Fatalf("full circle ended at %v", c.Position())
	}
	if !scalar.EqualWithinAbs(c.Heading(), 0, 1e-9) && !scalar.EqualWithinAbs(c.Heading(), 360, 1e-9) {
		t.Fatalf("heading %v", c.Heading())
	}

	c.MoveTo(Pt(0, -10), 0)
	c.Circle(10, 180)
	if !near(c.Position(), Pt(0, 10)) {
		t.Fatalf("half circle ended at %v", c.Position())
	}
}

func TestCircleArcSteps(t *testing.T) {
	rec := NewRecorder()
	c := New(rec, nil)
	c.SetArcSteps(8)
	c.Circle(50, 360)
	if n := rec.Count(OpLine); n != 9 {
		t.Fatalf("expected 9 segments, got %d", n)
	}
}

func TestFillEmitsPolygonBeforeOutline(t *testing.T) {
	rec := NewRecorder()
	c := New(rec, nil)
	c.BeginFill()
	c.Forward(10)
	c.Left(90)
	c.Forward(10)
	c.Goto(Point{})
	if n := len(rec.Ops()); n != 0 {
		t.Fatalf("expected nothing drawn while filling, got %d ops", n)
	}
	c.EndFill()

	ops := rec.Ops()
	if len(ops) != 4 || ops[0].Kind != OpFill {
		t.Fatalf("expected fill then 3 lines, got %v", ops)
	}
	for _, op := range ops[1:] {
		if op.Kind != OpLine {
			t.Fatalf("expected line after fill, got %s", op.Kind)
		}
	}
	if len(ops[0].Points) != 4 {
		t.Fatalf("fill polygon %v", ops[0].Points)
	}
}

func TestFillPenUpMovesCollapse(t *testing.T) {
	rec := NewRecorder()
	c := New(rec, nil)
	c.BeginFill()
	c.PenUp()
	c.Goto(Pt(5, 5))
	c.Goto(Pt(10, 10))
	c.PenDown()
	c.Goto(Pt(20, 10))
	c.Goto(Pt(20, 20))
	c.EndFill()

	fill := rec.Ops()[0]
	want := []Point{Pt(10, 10), Pt(20, 10), Pt(20, 20)}
	if len(fill.Points) != len(want) {
		t.Fatalf("fill polygon %v, want %v", fill.Points, want)
	}
	for i := range want {
		if fill.Points[i] != want[i] {
			t.Fatalf("fill polygon %v, want %v", fill.Points, want)
		}
	}
}

func TestNestedBeginFillKeepsPath(t *testing.T) {
	rec := NewRecorder()
	c := New(rec, nil)
	c.BeginFill()
	c.Forward(10)
	c.BeginFill()
	c.Left(90)
	c.Forward(10)
	c.EndFill()
	if n := rec.Count(OpFill); n != 1 {
		t.Fatalf("expected one fill, got %d", n)
	}
	if got := len(rec.Ops()[0].Points); got != 3 {
		t.Fatalf("expected 3 vertices, got %d", got)
	}
	c.EndFill() // no-op
	if n := rec.Count(OpFill); n != 1 {
		t.Fatalf("stray EndFill drew: %d fills", n)
	}
}

func TestBufferedPresentsOnlyOnUpdate(t *testing.T) {
	rec := NewRecorder()
	c := New(rec, nil)
	c.Forward(10)
	c.Forward(10)
	if rec.Presents() != 0 {
		t.Fatalf("buffered canvas presented %d times", rec.Presents())
	}
	if err := c.Update(); err != nil {
		t.Fatal(err)
	}
	if rec.Presents() != 1 {
		t.Fatalf("expected one present, got %d", rec.Presents())
	}

	rec.Reset()
	c.SetBuffered(false)
	c.Forward(10)
	c.Forward(10)
	if rec.Presents() != 2 {
		t.Fatalf("immediate canvas presented %d times, want 2", rec.Presents())
	}
}

func TestFlushClosesOpenFill(t *testing.T) {
	rec := NewRecorder()
	log := &memLog{}
	c := New(rec, log)
	c.BeginFill()
	c.Forward(10)
	c.Left(120)
	c.Forward(10)
	if err := c.Flush(); err != nil {
		t.Fatal(err)
	}
	if c.Filling() {
		t.Fatal("fill still open after Flush")
	}
	if rec.Count(OpFill) != 1 || rec.Presents() != 1 {
		t.Fatalf("fills=%d presents=%d", rec.Count(OpFill), rec.Presents())
	}
	if c.Reports() != 1 || len(log.lines) != 1 || !strings.Contains(log.lines[0], ErrOpenFill.Error()) {
		t.Fatalf("reports=%d log=%q", c.Reports(), log.lines)
	}
}

func TestTextUsesStrokeColor(t *testing.T) {
	rec := NewRecorder()
	c := New(rec, nil)
	red, _ := ParseColor("red")
	c.SetColors(red, White)
	c.Text(Pt(1, 2), "Chad")
	c.Text(Pt(1, 2), "")
	ops := rec.Ops()
	if len(ops) != 1 || ops[0].Text != "Chad" || ops[0].Color != red {
		t.Fatalf("ops %v", ops)
	}
}

func TestSetColorStringKeepsColorsOnError(t *testing.T) {
	c := New(NewRecorder(), nil)
	if err := c.SetColorString("nope"); !errors.Is(err, ErrBadColor) {
		t.Fatalf("expected ErrBadColor, got %v", err)
	}
	if s, _ := c.Colors(); s != Black {
		t.Fatalf("stroke changed to %v", s)
	}
}

func TestReplay(t *testing.T) {
	src := NewRecorder()
	c := New(src, nil)
	c.BeginFill()
	c.Forward(4)
	c.Left(90)
	c.Forward(4)
	c.EndFill()
	c.Text(Point{}, "x")

	dst := NewRecorder()
	if err := src.Replay(dst); err != nil {
		t.Fatal(err)
	}
	if len(dst.Ops()) != len(src.Ops()) || dst.Presents() != 1 {
		t.Fatalf("replayed %d of %d ops, %d presents", len(dst.Ops()), len(src.Ops()), dst.Presents())
	}
}

func TestReplayFrameStepsThroughPresents(t *testing.T) {
	src := NewRecorder()
	c := New(src, nil)
	c.SetBuffered(false)
	for i := 0; i < 4; i++ {
		c.Forward(10)
		c.Left(90)
	}
	c.Text(Point{}, "x")
	if src.Presents() != 5 {
		t.Fatalf("immediate square and label presented %d times, want 5", src.Presents())
	}

	dst := NewRecorder()
	for i := 0; i < src.Presents(); i++ {
		if err := src.ReplayFrame(dst, i); err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
		if len(dst.Ops()) != i+1 {
			t.Fatalf("after frame %d dst has %d ops", i, len(dst.Ops()))
		}
	}
	if dst.Presents() != 5 || dst.Count(OpText) != 1 {
		t.Fatalf("presents=%d texts=%d", dst.Presents(), dst.Count(OpText))
	}
	if err := src.ReplayFrame(dst, 5); err == nil {
		t.Fatal("frame past the end accepted")
	}
}

func TestDirectionExactOnAxes(t *testing.T) {
	for _, deg := range []float64{0, 90, 180, 270} {
		dx, dy := direction(deg)
		if math.Abs(dx)+math.Abs(dy) != 1 {
			t.Fatalf("direction(%v) = %v,%v", deg, dx, dy)
		}
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"white", "#ffffff"},
		{"Red", "#ff0000"},
		{"#D00", "#dd0000"},
		{"#FFCE00", "#ffce00"},
		{" navy ", "#000080"},
	}
	for _, tc := range cases {
		got, err := ParseColor(tc.in)
		if err != nil {
			t.Fatalf("ParseColor(%q): %v", tc.in, err)
		}
		if Hex(got) != tc.want || got.A != 0xff {
			t.Fatalf("ParseColor(%q) = %v, want %s", tc.in, got, tc.want)
		}
	}
	for _, bad := range []string{"", "#12", "#GGGGGG", "blurple"} {
		if _, err := ParseColor(bad); !errors.Is(err, ErrBadColor) {
			t.Fatalf("ParseColor(%q): expected ErrBadColor, got %v", bad, err)
		}
	}
}

func TestMustParseColor(t *testing.T) {
	if got := MustParseColor("#B22234"); Hex(got) != "#b22234" {
		t.Fatalf("MustParseColor = %v", got)
	}
	defer func() {
		err, _ := recover().(error)
		if !errors.Is(err, ErrBadColor) {
			t.Fatalf("recovered %v, want ErrBadColor", err)
		}
	}()
	MustParseColor("blurple")
	t.Fatal("no panic for a bad color")
}

func TestViewportToScreen(t *testing.T) {
	v := Viewport{Width: 200, Height: 100}
	if x, y := v.ToScreen(Point{}); x != 100 || y != 50 {
		t.Fatalf("origin -> %v,%v", x, y)
	}
	if x, y := v.ToScreen(v.TopLeft()); x != 0 || y != 0 {
		t.Fatalf("top-left -> %v,%v", x, y)
	}
	if !v.Bounds().Contains(Pt(-100, -50)) || v.Bounds().Contains(Pt(101, 0)) {
		t.Fatal("Bounds")
	}
}

func TestPointRotate(t *testing.T) {
	if got := Pt(1, 0).Rotate(90); !near(got, Pt(0, 1)) {
		t.Fatalf("rotate 90: %v", got)
	}
}
