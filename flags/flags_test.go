package flags

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/text/language"
	"gonum.org/v1/gonum/floats/scalar"

	"flaggallery/turtle"
)

const eps = 1e-9

func fills(r *turtle.Recorder) []turtle.Op {
	var out []turtle.Op
	for _, op := range r.Ops() {
		if op.Kind == turtle.OpFill {
			out = append(out, op)
		}
	}
	return out
}

func yRange(pts []turtle.Point) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, p := range pts {
		lo = math.Min(lo, p.Y)
		hi = math.Max(hi, p.Y)
	}
	return lo, hi
}

func xRange(pts []turtle.Point) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, p := range pts {
		lo = math.Min(lo, p.X)
		hi = math.Max(hi, p.X)
	}
	return lo, hi
}

func checkBox(t *testing.T, name string, op turtle.Op, left, right, bottom, top float64) {
	t.Helper()
	x0, x1 := xRange(op.Points)
	y0, y1 := yRange(op.Points)
	if !scalar.EqualWithinAbs(x0, left, eps) || !scalar.EqualWithinAbs(x1, right, eps) ||
		!scalar.EqualWithinAbs(y0, bottom, eps) || !scalar.EqualWithinAbs(y1, top, eps) {
		t.Fatalf("%s spans x [%v, %v] y [%v, %v], want x [%v, %v] y [%v, %v]",
			name, x0, x1, y0, y1, left, right, bottom, top)
	}
}

func TestHorizontalStripsBands(t *testing.T) {
	rec := turtle.NewRecorder()
	c := turtle.New(rec, nil)
	origin := turtle.Pt(-45, 30)

	if err := HorizontalStrips(c, origin, 90, 60, "red", "white", "blue"); err != nil {
		t.Fatalf("HorizontalStrips: %v", err)
	}
	got := fills(rec)
	if len(got) != 3 {
		t.Fatalf("expected 3 bands, got %d", len(got))
	}
	want := []string{"#ff0000", "#ffffff", "#0000ff"}
	for i, op := range got {
		lo, hi := yRange(op.Points)
		if !scalar.EqualWithinAbs(hi, origin.Y-20*float64(i), eps) {
			t.Fatalf("band %d: top %v, want offset %d", i, hi, -20*i)
		}
		if !scalar.EqualWithinAbs(hi-lo, 20, eps) {
			t.Fatalf("band %d: height %v, want 20", i, hi-lo)
		}
		if h := turtle.Hex(op.Color); h != want[i] {
			t.Fatalf("band %d: color %s, want %s", i, h, want[i])
		}
	}
}

func TestVerticalStripsCoverWidth(t *testing.T) {
	rec := turtle.NewRecorder()
	c := turtle.New(rec, nil)

	if err := VerticalStrips(c, turtle.Pt(0, 0), 100, 30, "red", "white", "green"); err != nil {
		t.Fatalf("VerticalStrips: %v", err)
	}
	got := fills(rec)
	if len(got) != 3 {
		t.Fatalf("expected 3 bands, got %d", len(got))
	}
	right := 0.0
	for _, p := range got[2].Points {
		right = math.Max(right, p.X)
	}
	if right != 100 {
		t.Fatalf("last band ends at %v, want 100", right)
	}
}

func TestStripsRejectEmptyColors(t *testing.T) {
	c := turtle.New(turtle.NewRecorder(), nil)
	if err := HorizontalStrips(c, turtle.Point{}, 10, 10); !errors.Is(err, ErrNoColors) {
		t.Fatalf("expected ErrNoColors, got %v", err)
	}
	if err := VerticalStrips(c, turtle.Point{}, 10, 10); !errors.Is(err, ErrNoColors) {
		t.Fatalf("expected ErrNoColors, got %v", err)
	}
}

func TestStripsRejectBadColor(t *testing.T) {
	c := turtle.New(turtle.NewRecorder(), nil)
	err := HorizontalStrips(c, turtle.Point{}, 10, 10, "red", "not-a-color")
	if !errors.Is(err, turtle.ErrBadColor) {
		t.Fatalf("expected ErrBadColor, got %v", err)
	}
}

func TestRectangleWithCircleGeometry(t *testing.T) {
	rec := turtle.NewRecorder()
	c := turtle.New(rec, nil)
	c.SetArcSteps(36)
	origin := turtle.Pt(-60, 40)

	// Disc center at (w/4, h/2) from the corner, diameter w/2.
	if err := RectangleWithCircle(c, origin, 120, 80, 0.25, 0.5, 0.5, "white", "red"); err != nil {
		t.Fatalf("RectangleWithCircle: %v", err)
	}
	got := fills(rec)
	if len(got) != 2 {
		t.Fatalf("expected field and disc, got %d fills", len(got))
	}
	checkBox(t, "field", got[0], -60, 60, -40, 40)
	checkBox(t, "disc", got[1], -60, 0, -30, 30)
	if turtle.Hex(got[0].Color) != "#ffffff" || turtle.Hex(got[1].Color) != "#ff0000" {
		t.Fatalf("colors %s, %s", turtle.Hex(got[0].Color), turtle.Hex(got[1].Color))
	}

	err := RectangleWithCircle(c, origin, 120, 80, 0.25, 0.5, 0.5, "white", "nope")
	if !errors.Is(err, turtle.ErrBadColor) {
		t.Fatalf("expected ErrBadColor, got %v", err)
	}
}

func TestCrossFilledGeometry(t *testing.T) {
	rec := turtle.NewRecorder()
	c := turtle.New(rec, nil)
	origin := turtle.Pt(-100, 50)
	const w, h = 200, 100

	// Bars cross at (-25, 0); a wide white cross, then a narrow red one.
	if err := CrossFilled(c, origin, w, h, 0.375, 0.5, 0.25, 0.5, "white"); err != nil {
		t.Fatalf("CrossFilled: %v", err)
	}
	if err := CrossFilled(c, origin, w, h, 0.375, 0.5, 0.125, 0.25, "red"); err != nil {
		t.Fatalf("CrossFilled: %v", err)
	}
	got := fills(rec)
	if len(got) != 4 {
		t.Fatalf("expected 4 bars, got %d", len(got))
	}
	checkBox(t, "outer horizontal", got[0], -100, 100, -25, 25)
	checkBox(t, "outer vertical", got[1], -50, 0, -50, 50)
	checkBox(t, "inner horizontal", got[2], -100, 100, -12.5, 12.5)
	checkBox(t, "inner vertical", got[3], -37.5, -12.5, -50, 50)
	for i, want := range []string{"#ffffff", "#ffffff", "#ff0000", "#ff0000"} {
		if h := turtle.Hex(got[i].Color); h != want {
			t.Fatalf("bar %d: color %s, want %s", i, h, want)
		}
	}
}

func TestBespokeColors(t *testing.T) {
	f, err := Default().Get(840)
	if err != nil {
		t.Fatal(err)
	}
	rec := turtle.NewRecorder()
	if err := f.Draw(turtle.New(rec, nil), turtle.Pt(0, 0), 190, 100); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	seen := map[string]bool{}
	for _, op := range fills(rec) {
		seen[turtle.Hex(op.Color)] = true
	}
	if !seen["#b22234"] || !seen["#3c3b6e"] {
		t.Fatalf("fill colors %v", seen)
	}
}

func TestStarInBoxCentered(t *testing.T) {
	c := turtle.New(turtle.NewRecorder(), nil)
	box := turtle.Rect{X: 0, Y: 0, Width: 100, Height: 40}

	got, err := StarInBox(c, box, 0, "yellow")
	if err != nil {
		t.Fatalf("StarInBox: %v", err)
	}
	if got.Height > box.Height+eps || got.Width > box.Width+eps {
		t.Fatalf("star %+v does not fit in %+v", got, box)
	}
	gc, bc := got.Center(), box.Center()
	if !scalar.EqualWithinAbs(gc.X, bc.X, eps) || !scalar.EqualWithinAbs(gc.Y, bc.Y, eps) {
		t.Fatalf("star center %v, box center %v", gc, bc)
	}
}

func TestWheelSpokes(t *testing.T) {
	quads := spokeQuads(turtle.Point{}, 10, 24)
	if len(quads) != 24 {
		t.Fatalf("expected 24 spokes, got %d", len(quads))
	}
	for i, q := range quads {
		tip := q[2]
		if !scalar.EqualWithinAbs(tip.Distance(turtle.Point{}), 10, 1e-9) {
			t.Fatalf("spoke %d tip at %v", i, tip)
		}
	}

	rec := turtle.NewRecorder()
	c := turtle.New(rec, nil)
	if err := Wheel(c, turtle.Point{}, 20, 24, "navy", "white"); err != nil {
		t.Fatalf("Wheel: %v", err)
	}
	// rim, inner disc, spokes, hub
	if n := rec.Count(turtle.OpFill); n != 2+24+1 {
		t.Fatalf("expected %d fills, got %d", 2+24+1, n)
	}
	if err := Wheel(c, turtle.Point{}, 20, 0, "navy", "white"); err == nil {
		t.Fatal("expected error for zero spokes")
	}
}

type stubFlag struct{ base }

func (stubFlag) Draw(*turtle.Canvas, turtle.Point, float64, float64) error { return nil }

func TestCatalogAscendingOrder(t *testing.T) {
	cat, err := NewCatalog(stubFlag{base{10, 1}}, stubFlag{base{5, 1}}, stubFlag{base{20, 1}})
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	var got []Code
	for _, f := range cat.All() {
		got = append(got, f.Code())
	}
	want := []Code{5, 10, 20}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order %v, want %v", got, want)
		}
	}
	if _, ok := cat.Lookup(10); !ok {
		t.Fatal("expected 10 to be found")
	}
	if _, err := cat.Get(11); !errors.Is(err, ErrUnknownCode) {
		t.Fatalf("expected ErrUnknownCode, got %v", err)
	}
}

func TestCatalogRejectsDuplicates(t *testing.T) {
	_, err := NewCatalog(stubFlag{base{10, 1}}, stubFlag{base{10, 0.5}})
	if !errors.Is(err, ErrDuplicateCode) {
		t.Fatalf("expected ErrDuplicateCode, got %v", err)
	}
}

func TestCatalogSortedByName(t *testing.T) {
	cat, err := NewCatalog(stubFlag{base{1, 1}}, stubFlag{base{2, 1}}, stubFlag{base{3, 1}}, stubFlag{base{4, 1}})
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	names := map[Code]string{1: "Zambie", 2: "Égypte", 3: "allemagne", 4: "Égypte"}
	got := cat.Sorted(SortByName, func(c Code) string { return names[c] }, language.French)
	want := []Code{3, 2, 4, 1}
	for i, f := range got {
		if f.Code() != want[i] {
			t.Fatalf("position %d: got %s, want %s", i, f.Code(), want[i])
		}
	}

	byCode := cat.Sorted(SortByCode, nil, language.Und)
	if byCode[0].Code() != 1 || byCode[3].Code() != 4 {
		t.Fatalf("SortByCode changed the order")
	}
}

func TestParseSortKey(t *testing.T) {
	if k, err := ParseSortKey("name"); err != nil || k != SortByName {
		t.Fatalf("name: %v %v", k, err)
	}
	if k, err := ParseSortKey(""); err != nil || k != SortByCode {
		t.Fatalf("empty: %v %v", k, err)
	}
	if _, err := ParseSortKey("size"); err == nil {
		t.Fatal("expected error")
	}
}

func TestDefaultCatalogDrawsEveryFlag(t *testing.T) {
	cat := Default()
	if cat.Len() < 50 {
		t.Fatalf("expected a full catalog, got %d flags", cat.Len())
	}
	prev := Code(-1)
	for _, f := range cat.All() {
		if f.Code() <= prev {
			t.Fatalf("%s listed after %s", f.Code(), prev)
		}
		prev = f.Code()
		if r := f.Ratio(); r <= 0 || r > 1 {
			t.Fatalf("%s: ratio %v", f.Code(), r)
		}

		rec := turtle.NewRecorder()
		c := turtle.New(rec, nil)
		w := 120.0
		if err := f.Draw(c, turtle.Pt(-60, 40), w, w*f.Ratio()); err != nil {
			t.Fatalf("%s: Draw: %v", f.Code(), err)
		}
		if c.Filling() {
			t.Fatalf("%s: fill left open", f.Code())
		}
		if rec.Count(turtle.OpFill) == 0 {
			t.Fatalf("%s: nothing filled", f.Code())
		}
	}
}

func TestDefaultCatalogKnownRatios(t *testing.T) {
	cases := []struct {
		code  Code
		ratio float64
	}{
		{276, 3.0 / 5},
		{51, 1.0 / 2},
		{56, 13.0 / 15},
		{68, 15.0 / 22},
		{233, 7.0 / 11},
		{840, 10.0 / 19},
		{756, 1},
	}
	for _, tc := range cases {
		f, err := Default().Get(tc.code)
		if err != nil {
			t.Fatalf("Get(%s): %v", tc.code, err)
		}
		if f.Ratio() != tc.ratio {
			t.Fatalf("%s: ratio %v, want %v", tc.code, f.Ratio(), tc.ratio)
		}
	}
}
