package flags

import (
	"math"

	"flaggallery/shape"
	"flaggallery/turtle"
)

// Colors the bespoke routines set on the canvas directly.
var (
	oldGloryRed  = turtle.MustParseColor("#B22234")
	oldGloryBlue = turtle.MustParseColor("#3C3B6E")
	czechBlue    = turtle.MustParseColor("#11457E")
	taegukRed    = turtle.MustParseColor("#CD2E3A")
	taegukBlue   = turtle.MustParseColor("#0047A0")
	chinaYellow  = turtle.MustParseColor("#FFFF00")
	turkeyRed    = turtle.MustParseColor("#E30A17")
	chileBlue    = turtle.MustParseColor("#0039A6")
)

type benin struct{ base }

func (benin) Draw(c *turtle.Canvas, o turtle.Point, w, h float64) error {
	if err := HorizontalStrips(c, o, w, h, "#FCD116", "#E8112D"); err != nil {
		return err
	}
	return VerticalStrips(c, o, w/2.5, h, "#008751")
}

type unitedStates struct{ base }

func (unitedStates) Draw(c *turtle.Canvas, o turtle.Point, w, h float64) error {
	// 7 red and 6 white stripes; paint white, then the red ones.
	if err := HorizontalStrips(c, o, w, h, "white"); err != nil {
		return err
	}
	c.SetColor(oldGloryRed)
	s := h / 13
	for i := 0; i < 7; i++ {
		shape.RectangleFilled(c, turtle.Pt(o.X, o.Y-float64(2*i)*s), w, s, 0)
	}

	c.SetColor(oldGloryBlue)
	shape.RectangleFilled(c, o, w/2.5, h*7/13, 0)

	// 50 stars: 5 rows of 6 interleaved with 4 rows of 5.
	c.SetColor(turtle.White)
	ex, ey := w/30, w/28
	for row := 0; row < 9; row++ {
		cols, dx := 6, ex
		if row%2 == 1 {
			cols, dx = 5, 2*ex
		}
		y := o.Y - float64(row+1)*ey
		for col := 0; col < cols; col++ {
			shape.FivePointedStarFilled(c, turtle.Pt(o.X+dx+float64(2*col)*ex, y), ex, 0)
		}
	}
	return nil
}

type switzerland struct{ base }

func (switzerland) Draw(c *turtle.Canvas, o turtle.Point, w, h float64) error {
	if err := HorizontalStrips(c, o, w, h, "#DA291C"); err != nil {
		return err
	}
	// Arms are 6/32 thick and 20/32 long, on a 32-unit square.
	m := turtle.Pt(o.X+w/2, o.Y-h/2)
	c.SetColor(turtle.White)
	shape.RectangleFilled(c, turtle.Pt(m.X-w*10/32, m.Y+h*3/32), w*20/32, h*6/32, 0)
	shape.RectangleFilled(c, turtle.Pt(m.X-w*3/32, m.Y+h*10/32), w*6/32, h*20/32, 0)
	return nil
}

type laos struct{ base }

func (laos) Draw(c *turtle.Canvas, o turtle.Point, w, h float64) error {
	// Red, blue, red in 1:2:1; white disc 0.8 of the blue band.
	if err := HorizontalStrips(c, o, w, h, "#CE1126", "#002868", "#002868", "#CE1126"); err != nil {
		return err
	}
	c.SetColor(turtle.White)
	shape.CircleFilled(c, turtle.Pt(o.X+w/2, o.Y-h/2), h*0.4)
	return nil
}

type czechia struct{ base }

func (czechia) Draw(c *turtle.Canvas, o turtle.Point, w, h float64) error {
	if err := HorizontalStrips(c, o, w, h, "white", "#D7141A"); err != nil {
		return err
	}
	c.SetColor(czechBlue)
	shape.PolygonFilled(c, []turtle.Point{o, turtle.Pt(o.X+w/2, o.Y-h/2), turtle.Pt(o.X, o.Y-h)})
	return nil
}

// diagonal flags: upper-left field, lower-right triangle, then bands from
// the bottom-left corner to the top-right one, widest first.
type diagonal struct {
	base
	upper, lower string
	bands        []diagonalBand
}

type diagonalBand struct {
	color string
	t     float64 // vertical half-thickness over height
}

func (f diagonal) Draw(c *turtle.Canvas, o turtle.Point, w, h float64) error {
	if err := HorizontalStrips(c, o, w, h, f.upper); err != nil {
		return err
	}
	lower, err := turtle.ParseColor(f.lower)
	if err != nil {
		return err
	}
	c.SetColor(lower)
	shape.PolygonFilled(c, []turtle.Point{
		turtle.Pt(o.X+w, o.Y),
		turtle.Pt(o.X+w, o.Y-h),
		turtle.Pt(o.X, o.Y-h),
	})
	for _, b := range f.bands {
		if err := DiagonalBand(c, o, w, h, h*b.t, b.color); err != nil {
			return err
		}
	}
	return nil
}

type india struct{ base }

func (india) Draw(c *turtle.Canvas, o turtle.Point, w, h float64) error {
	if err := HorizontalStrips(c, o, w, h, "#FF9933", "white", "#138808"); err != nil {
		return err
	}
	return Wheel(c, turtle.Pt(o.X+w/2, o.Y-h/2), h/3*0.9, 24, "#000080", "white")
}

type southKorea struct{ base }

func (southKorea) Draw(c *turtle.Canvas, o turtle.Point, w, h float64) error {
	if err := HorizontalStrips(c, o, w, h, "white"); err != nil {
		return err
	}
	// The emblem is tilted along the flag diagonals.
	tilt := math.Atan2(h, w) * 180 / math.Pi
	m := turtle.Pt(o.X+w/2, o.Y-h/2)
	d := h / 2
	axis := -tilt // toward the bottom-right corner
	u := turtle.Pt(d/4, 0).Rotate(axis)

	c.SetColor(taegukRed)
	shape.PieFilled(c, m, d, axis+90, axis+270)
	c.SetColor(taegukBlue)
	shape.PieFilled(c, m, d, axis+270, axis+450)
	c.SetColor(taegukRed)
	shape.CircleFilled(c, m.Sub(u), d/2)
	c.SetColor(taegukBlue)
	shape.CircleFilled(c, m.Add(u), d/2)

	// Trigrams, one bar pattern per corner, true = solid bar.
	c.SetColor(turtle.Black)
	corners := []struct {
		angle float64
		bars  [3]bool
	}{
		{180 - tilt, [3]bool{true, true, true}},  // geon
		{tilt, [3]bool{false, true, false}},      // gam
		{180 + tilt, [3]bool{true, false, true}}, // ri
		{-tilt, [3]bool{false, false, false}},    // gon
	}
	length, thick, gap := d/2, d/12, d/24
	for _, k := range corners {
		for i, solid := range k.bars {
			r := d*11/12 + float64(i-1)*(thick+gap)
			at := m.Add(turtle.Pt(r, 0).Rotate(k.angle))
			if solid {
				bar(c, at, k.angle+90, length, thick)
				continue
			}
			half := (length - gap) / 2
			off := turtle.Pt((half+gap)/2, 0).Rotate(k.angle + 90)
			bar(c, at.Add(off), k.angle+90, half, thick)
			bar(c, at.Sub(off), k.angle+90, half, thick)
		}
	}
	return nil
}

type china struct{ base }

func (china) Draw(c *turtle.Canvas, o turtle.Point, w, h float64) error {
	if err := HorizontalStrips(c, o, w, h, "#EE1C25"); err != nil {
		return err
	}
	c.SetColor(chinaYellow)

	// 30×20 grid; the big star has radius 3, small ones radius 1 and point
	// at the big star's center.
	u := w / 30
	at := func(x, y float64) turtle.Point { return turtle.Pt(o.X+x*u, o.Y-y*u) }
	big := at(5, 5)
	shape.FivePointedStarFilled(c, big, 3*u/shape.StarOuterRatio, 0)
	for _, p := range [][2]float64{{10, 2}, {12, 4}, {12, 7}, {10, 9}} {
		s := at(p[0], p[1])
		toward := math.Atan2(big.Y-s.Y, big.X-s.X) * 180 / math.Pi
		shape.FivePointedStarFilled(c, s, u/shape.StarOuterRatio, toward-90)
	}
	return nil
}

type turkey struct{ base }

func (turkey) Draw(c *turtle.Canvas, o turtle.Point, w, h float64) error {
	if err := HorizontalStrips(c, o, w, h, "#E30A17"); err != nil {
		return err
	}
	g := h
	y := o.Y - h/2
	c.SetColor(turtle.White)
	shape.CircleFilled(c, turtle.Pt(o.X+g/2, y), g/2)
	c.SetColor(turkeyRed)
	shape.CircleFilled(c, turtle.Pt(o.X+g/2+g/16, y), g*0.4)
	c.SetColor(turtle.White)
	// One point of the star faces the crescent.
	shape.FivePointedStarFilled(c, turtle.Pt(o.X+g*0.85, y), g/8/shape.StarOuterRatio, 90)
	return nil
}

type chile struct{ base }

func (chile) Draw(c *turtle.Canvas, o turtle.Point, w, h float64) error {
	if err := HorizontalStrips(c, o, w, h, "white", "#D52B1E"); err != nil {
		return err
	}
	c.SetColor(chileBlue)
	shape.SquareFilled(c, o, h/2)
	_, err := StarInBox(c, shrink(turtle.Rect{X: o.X, Y: o.Y, Width: h / 2, Height: h / 2}, 0.5), 0, "white")
	return err
}
