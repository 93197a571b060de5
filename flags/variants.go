package flags

import (
	"fmt"

	"flaggallery/turtle"
)

// bands is a flag made only of equal stripes.
type bands struct {
	base
	vertical bool
	colors   []string
}

func horizontal(code Code, ratio float64, colors ...string) Flag {
	return bands{base: base{code, ratio}, colors: colors}
}

func vertical(code Code, ratio float64, colors ...string) Flag {
	return bands{base: base{code, ratio}, vertical: true, colors: colors}
}

func (f bands) Draw(c *turtle.Canvas, o turtle.Point, w, h float64) error {
	if f.vertical {
		return VerticalStrips(c, o, w, h, f.colors...)
	}
	return HorizontalStrips(c, o, w, h, f.colors...)
}

// disc is a plain field with a single disc.
type disc struct {
	base
	x, y, d float64
	bg, fg  string
}

func (f disc) Draw(c *turtle.Canvas, o turtle.Point, w, h float64) error {
	return RectangleWithCircle(c, o, w, h, f.x, f.y, f.d, f.bg, f.fg)
}

type crossBar struct {
	color  string
	wr, hr float64
}

// nordic is a Scandinavian cross, possibly bordered: bars are drawn widest
// first.
type nordic struct {
	base
	bg     string
	cx, cy float64
	bars   []crossBar
}

func (f nordic) Draw(c *turtle.Canvas, o turtle.Point, w, h float64) error {
	if err := HorizontalStrips(c, o, w, h, f.bg); err != nil {
		return err
	}
	for _, b := range f.bars {
		if err := CrossFilled(c, o, w, h, f.cx, f.cy, b.wr, b.hr, b.color); err != nil {
			return err
		}
	}
	return nil
}

// wholeFlag centers a bandsStar star on the whole flag instead of a stripe.
const wholeFlag = -1

// bandsStar is a striped flag with a star centered in one stripe, or on the
// whole flag.
type bandsStar struct {
	bands
	stripe int
	scale  float64
	star   string
}

func (f bandsStar) Draw(c *turtle.Canvas, o turtle.Point, w, h float64) error {
	if err := f.bands.Draw(c, o, w, h); err != nil {
		return err
	}
	n := float64(len(f.colors))
	var box turtle.Rect
	switch {
	case f.stripe == wholeFlag:
		box = turtle.Rect{X: o.X, Y: o.Y, Width: w, Height: h}
	case f.stripe < 0 || f.stripe >= len(f.colors):
		return fmt.Errorf("star stripe %d out of range", f.stripe)
	case f.vertical:
		box = turtle.Rect{X: o.X + w*float64(f.stripe)/n, Y: o.Y, Width: w / n, Height: h}
	default:
		box = turtle.Rect{X: o.X, Y: o.Y - h*float64(f.stripe)/n, Width: w, Height: h / n}
	}
	box = shrink(box, f.scale)
	_, err := StarInBox(c, box, 0, f.star)
	return err
}

// shrink scales r by f around its center.
func shrink(r turtle.Rect, f float64) turtle.Rect {
	m := r.Center()
	w, h := r.Width*f, r.Height*f
	return turtle.Rect{X: m.X - w/2, Y: m.Y + h/2, Width: w, Height: h}
}
