package flags

import (
	"fmt"
	"math"

	"flaggallery/shape"
	"flaggallery/turtle"
)

const (
	// spokeHalfTurn is how far, in turns, each spoke widens on either side
	// of its axis at mid-length.
	spokeHalfTurn = 1.0 / 96
	rimRatio      = 0.86 // inner rim diameter over outer diameter
	hubRatio      = 0.2
)

// polar returns the point at radius r and t turns (counter-clockwise from
// east) around center.
func polar(center turtle.Point, r, t float64) turtle.Point {
	return turtle.Pt(center.X+r*math.Cos(2*math.Pi*t), center.Y+r*math.Sin(2*math.Pi*t))
}

// spokeQuads computes the quadrilaterals of a wheel with n equally spaced
// spokes: hub, left shoulder, tip, right shoulder.
func spokeQuads(center turtle.Point, radius float64, n int) [][]turtle.Point {
	quads := make([][]turtle.Point, 0, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		quads = append(quads, []turtle.Point{
			center,
			polar(center, radius/2, t-spokeHalfTurn),
			polar(center, radius, t),
			polar(center, radius/2, t+spokeHalfTurn),
		})
	}
	return quads
}

// Wheel draws a spoked wheel: rim ring, n spokes and a hub, on the
// background color bg.
func Wheel(c *turtle.Canvas, center turtle.Point, diameter float64, n int, fg, bg string) error {
	cols, err := parseColors([]string{fg, bg})
	if err != nil {
		return fmt.Errorf("wheel: %w", err)
	}
	if n <= 0 {
		return fmt.Errorf("wheel: %d spokes", n)
	}
	inner := diameter * rimRatio

	c.SetColor(cols[0])
	shape.CircleFilled(c, center, diameter)
	c.SetColor(cols[1])
	shape.CircleFilled(c, center, inner)
	c.SetColor(cols[0])
	for _, q := range spokeQuads(center, inner/2, n) {
		shape.PolygonFilled(c, q)
	}
	shape.CircleFilled(c, center, diameter*hubRatio)
	return nil
}
