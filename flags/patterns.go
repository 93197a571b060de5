package flags

import (
	"fmt"
	"image/color"
	"math"

	"flaggallery/shape"
	"flaggallery/turtle"
)

func parseColors(names []string) ([]color.RGBA, error) {
	if len(names) == 0 {
		return nil, ErrNoColors
	}
	cols := make([]color.RGBA, len(names))
	for i, n := range names {
		c, err := turtle.ParseColor(n)
		if err != nil {
			return nil, err
		}
		cols[i] = c
	}
	return cols, nil
}

// HorizontalStrips splits the box into len(colors) bands of equal height,
// listed top to bottom.
func HorizontalStrips(c *turtle.Canvas, origin turtle.Point, w, h float64, colors ...string) error {
	cols, err := parseColors(colors)
	if err != nil {
		return fmt.Errorf("horizontal strips: %w", err)
	}
	n := float64(len(cols))
	for i, col := range cols {
		top := origin.Y - h*float64(i)/n
		bottom := origin.Y - h*float64(i+1)/n
		if i == len(cols)-1 {
			bottom = origin.Y - h
		}
		c.SetColor(col)
		shape.RectangleFilled(c, turtle.Pt(origin.X, top), w, top-bottom, 0)
	}
	return nil
}

// VerticalStrips splits the box into len(colors) bands of equal width,
// listed left to right.
func VerticalStrips(c *turtle.Canvas, origin turtle.Point, w, h float64, colors ...string) error {
	cols, err := parseColors(colors)
	if err != nil {
		return fmt.Errorf("vertical strips: %w", err)
	}
	n := float64(len(cols))
	for i, col := range cols {
		left := origin.X + w*float64(i)/n
		right := origin.X + w*float64(i+1)/n
		if i == len(cols)-1 {
			right = origin.X + w
		}
		c.SetColor(col)
		shape.RectangleFilled(c, turtle.Pt(left, origin.Y), right-left, h, 0)
	}
	return nil
}

// RectangleWithCircle fills the box with bg, then a disc of fg. The disc
// center is at (rx·w, ry·h) from the top-left corner and its diameter is
// rd·w.
func RectangleWithCircle(c *turtle.Canvas, origin turtle.Point, w, h, rx, ry, rd float64, bg, fg string) error {
	cols, err := parseColors([]string{bg, fg})
	if err != nil {
		return fmt.Errorf("rectangle with circle: %w", err)
	}
	c.SetColor(cols[0])
	shape.RectangleFilled(c, origin, w, h, 0)
	c.SetColor(cols[1])
	shape.CircleFilled(c, turtle.Pt(origin.X+w*rx, origin.Y-h*ry), w*rd)
	return nil
}

// CrossFilled draws a plus sign spanning the whole box. The bars cross at
// (cx·w, cy·h) from the top-left corner; the vertical bar is wr·w thick and
// the horizontal bar hr·h thick. Drawing a wide cross and then a narrower one
// in another color gives a bordered cross.
func CrossFilled(c *turtle.Canvas, origin turtle.Point, w, h, cx, cy, wr, hr float64, col string) error {
	rgba, err := turtle.ParseColor(col)
	if err != nil {
		return fmt.Errorf("cross: %w", err)
	}
	center := turtle.Pt(origin.X+w*cx, origin.Y-h*cy)
	c.SetColor(rgba)
	shape.RectangleFilled(c, turtle.Pt(origin.X, center.Y+h*hr/2), w, h*hr, 0)
	shape.RectangleFilled(c, turtle.Pt(center.X-w*wr/2, origin.Y), w*wr, h, 0)
	return nil
}

// StarInBox draws a filled star whose bounding rectangle is centered in box
// and as large as the box allows.
func StarInBox(c *turtle.Canvas, box turtle.Rect, rotation float64, col string) (turtle.Rect, error) {
	rgba, err := turtle.ParseColor(col)
	if err != nil {
		return turtle.Rect{}, fmt.Errorf("star: %w", err)
	}
	span := math.Min(box.Width, box.Height/shape.StarHeightRatio)
	// Place the star so that its bounding rectangle shares the box center.
	b := shape.StarBounds(turtle.Point{}, span)
	mid := box.Center()
	center := turtle.Pt(mid.X, mid.Y-(b.Y-b.Height/2))
	c.SetColor(rgba)
	return shape.FivePointedStarFilled(c, center, span, rotation), nil
}

// DiagonalBand fills a band of vertical half-thickness t running from the
// bottom-left corner of the box to its top-right corner.
func DiagonalBand(c *turtle.Canvas, origin turtle.Point, w, h, t float64, col string) error {
	rgba, err := turtle.ParseColor(col)
	if err != nil {
		return fmt.Errorf("diagonal band: %w", err)
	}
	run := t * w / h
	c.SetColor(rgba)
	shape.PolygonFilled(c, []turtle.Point{
		turtle.Pt(origin.X, origin.Y-h),
		turtle.Pt(origin.X+run, origin.Y-h),
		turtle.Pt(origin.X+w, origin.Y-t),
		turtle.Pt(origin.X+w, origin.Y),
		turtle.Pt(origin.X+w-run, origin.Y),
		turtle.Pt(origin.X, origin.Y-h+t),
	})
	return nil
}

// bar fills a length×thickness rectangle centered on center whose long side
// points at angle degrees.
func bar(c *turtle.Canvas, center turtle.Point, angle, length, thickness float64) {
	along := turtle.Pt(length/2, 0).Rotate(angle)
	normal := turtle.Pt(0, thickness/2).Rotate(angle)
	shape.RectangleFilled(c, center.Sub(along).Add(normal), length, thickness, angle)
}
