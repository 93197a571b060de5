// Package shape draws the geometric primitives flags are built from.
//
// Every primitive starts with MoveTo, so the shape drawn never depends on
// where the pen was left by the previous call. Filled variants bracket the
// whole outline with BeginFill/EndFill. Degenerate sizes (zero or negative)
// collapse the geometry instead of failing.
package shape

import (
	"flaggallery/turtle"
)

// Star proportions for a regular five-pointed star of span d
// (https://rechneronline.de/pi/pentagon.php).
const (
	StarPointAngle  = 144.0
	StarBranchRatio = 1 / 2.6
	StarHeightRatio = 0.951
	StarOuterRatio  = 0.526 // circumscribed radius
	StarInnerRatio  = 0.425 // inscribed radius
	StarSideRatio   = 0.618 // pentagon side
)

// MoveTo relocates the pen without drawing and faces heading.
func MoveTo(c *turtle.Canvas, p turtle.Point, heading float64) {
	c.MoveTo(p, heading)
}

// Rectangle outlines a w×h rectangle whose first corner is origin. With
// rotation 0 the first side runs east and the pen turns clockwise, so origin
// is the top-left corner.
func Rectangle(c *turtle.Canvas, origin turtle.Point, w, h, rotation float64) {
	MoveTo(c, origin, rotation)
	c.Forward(w)
	c.Right(90)
	c.Forward(h)
	c.Right(90)
	c.Forward(w)
	c.Right(90)
	c.Forward(h)
	c.Right(90)
}

func RectangleFilled(c *turtle.Canvas, origin turtle.Point, w, h, rotation float64) {
	c.BeginFill()
	Rectangle(c, origin, w, h, rotation)
	c.EndFill()
}

func Square(c *turtle.Canvas, origin turtle.Point, side float64) {
	Rectangle(c, origin, side, side, 0)
}

func SquareFilled(c *turtle.Canvas, origin turtle.Point, side float64) {
	RectangleFilled(c, origin, side, side, 0)
}

// Circle outlines a circle centered on center. Sizes are diameters so that
// shapes placed side by side touch without halving at the call site.
func Circle(c *turtle.Canvas, center turtle.Point, diameter float64) {
	// The turtle traces a circle from its bottom point, tangent to the
	// heading; start there so center is the true center.
	MoveTo(c, turtle.Pt(center.X, center.Y-diameter/2), 0)
	c.Circle(diameter/2, 360)
}

func CircleFilled(c *turtle.Canvas, center turtle.Point, diameter float64) {
	c.BeginFill()
	Circle(c, center, diameter)
	c.EndFill()
}

// Cross draws a plus sign of the given span centered on center: a horizontal
// stroke, then a vertical one.
func Cross(c *turtle.Canvas, center turtle.Point, span float64) {
	MoveTo(c, turtle.Pt(center.X-span/2, center.Y), 0)
	c.Forward(span)
	MoveTo(c, turtle.Pt(center.X, center.Y+span/2), 0)
	c.Right(90)
	c.Forward(span)
}

// FivePointedStar draws a star standing on two points with its arms spread
// horizontally, span wide, then turned by rotation degrees around center. It
// returns the rectangle surrounding the unrotated star, which callers use to
// align the star with other shapes.
func FivePointedStar(c *turtle.Canvas, center turtle.Point, span, rotation float64) turtle.Rect {
	branch := span * StarBranchRatio
	start := turtle.Pt(span/2-branch, span/6).Rotate(rotation)
	MoveTo(c, center.Add(start), rotation)
	for i := 0; i < 5; i++ {
		c.Forward(branch)
		c.Right(StarPointAngle)
		c.Forward(branch)
		c.Right(360/5 - StarPointAngle)
	}
	return StarBounds(center, span)
}

func FivePointedStarFilled(c *turtle.Canvas, center turtle.Point, span, rotation float64) turtle.Rect {
	c.BeginFill()
	r := FivePointedStar(c, center, span, rotation)
	c.EndFill()
	return r
}

// StarBounds is the rectangle FivePointedStar returns, without drawing.
func StarBounds(center turtle.Point, span float64) turtle.Rect {
	return turtle.Rect{
		X:      center.X - span/2,
		Y:      center.Y + StarOuterRatio*span,
		Width:  span,
		Height: StarHeightRatio * span,
	}
}

// Polygon outlines the closed polygon through vertices. Fewer than two
// vertices draw nothing.
func Polygon(c *turtle.Canvas, vertices []turtle.Point) {
	if len(vertices) < 2 {
		return
	}
	c.PenUp()
	c.Goto(vertices[0])
	c.PenDown()
	for _, v := range vertices[1:] {
		c.Goto(v)
	}
	c.Goto(vertices[0])
}

func PolygonFilled(c *turtle.Canvas, vertices []turtle.Point) {
	c.BeginFill()
	Polygon(c, vertices)
	c.EndFill()
}

// Pie draws a circular sector between two angles in degrees. Angles follow
// Circle: 0 is the bottom of the circle and they grow counter-clockwise. The
// arc is closed by two straight segments through the center.
func Pie(c *turtle.Canvas, center turtle.Point, diameter, startAngle, endAngle float64) {
	r := diameter / 2
	start := center.Add(turtle.Pt(0, -r).Rotate(startAngle))
	MoveTo(c, start, startAngle)
	c.Circle(r, endAngle-startAngle)
	c.Goto(center)
	c.Goto(start)
}

// PieFilled fills the sector. A fill already opened by the caller is kept
// open and the sector joins it; otherwise the sector gets its own fill.
func PieFilled(c *turtle.Canvas, center turtle.Point, diameter, startAngle, endAngle float64) {
	wasFilling := c.Filling()
	if !wasFilling {
		c.BeginFill()
	}
	Pie(c, center, diameter, startAngle, endAngle)
	if !wasFilling {
		c.EndFill()
	}
}
