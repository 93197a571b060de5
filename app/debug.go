package app

import (
	"context"

	"flaggallery/shape"
	"flaggallery/turtle"
)

var debugRed = turtle.MustParseColor("red")

// debugPass draws every primitive once, outline and filled, with black
// outlines and red fills. Stars get their bounding rectangle so the returned
// box can be checked by eye.
func debugPass(ctx context.Context, c *turtle.Canvas, vp turtle.Viewport) error {
	c.SetColors(turtle.Black, debugRed)
	c.SetPenWidth(1)

	shape.Cross(c, turtle.Pt(0, 0), 40)
	shape.Circle(c, turtle.Pt(0, 0), 40)
	shape.CircleFilled(c, turtle.Pt(40, 0), 40)
	shape.Square(c, turtle.Pt(60, 20), 40)
	shape.SquareFilled(c, turtle.Pt(100, 20), 40)
	if err := c.Update(); err != nil {
		return err
	}

	shape.Rectangle(c, turtle.Pt(-20, -20), 80, 40, 0)
	shape.RectangleFilled(c, turtle.Pt(60, -20), 80, 40, 0)
	shape.RectangleFilled(c, turtle.Pt(160, -20), 80, 40, 30)

	box := shape.FivePointedStar(c, turtle.Pt(0, -80), 40, 0)
	shape.Rectangle(c, box.TopLeft(), box.Width, box.Height, 0)
	shape.FivePointedStarFilled(c, turtle.Pt(40, -80), 40, 0)
	shape.FivePointedStarFilled(c, turtle.Pt(80, -80), 40, 36)

	shape.Polygon(c, []turtle.Point{{X: -120, Y: 0}, {X: -80, Y: 0}, {X: -100, Y: 35}})
	shape.PolygonFilled(c, []turtle.Point{{X: -120, Y: -60}, {X: -80, Y: -60}, {X: -100, Y: -25}})
	shape.Pie(c, turtle.Pt(-160, 0), 40, 0, 90)
	shape.PieFilled(c, turtle.Pt(-160, -60), 40, 45, 315)

	c.Text(turtle.Pt(0, vp.Height/2-30), "primitives")
	return ctx.Err()
}
