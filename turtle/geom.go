package turtle

import "math"

// Point is a position on the drawing plane. The plane is shared by the canvas
// and every flag: x grows to the right, y grows upward, and the origin sits at
// the center of the viewport.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) Add(q Point) Point        { return Point{X: p.X + q.X, Y: p.Y + q.Y} }
func (p Point) Sub(q Point) Point        { return Point{X: p.X - q.X, Y: p.Y - q.Y} }
func (p Point) Scale(f float64) Point    { return Point{X: p.X * f, Y: p.Y * f} }
func (p Point) Distance(q Point) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

// Rotate turns p by deg degrees counter-clockwise around the origin.
func (p Point) Rotate(deg float64) Point {
	s, c := math.Sincos(deg * math.Pi / 180)
	return Point{X: p.X*c - p.Y*s, Y: p.X*s + p.Y*c}
}

// Rect is an axis-aligned box. X and Y name the top-left corner; since y grows
// upward the box covers [X, X+Width] by [Y-Height, Y].
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func (r Rect) TopLeft() Point { return Point{X: r.X, Y: r.Y} }
func (r Rect) Center() Point  { return Point{X: r.X + r.Width/2, Y: r.Y - r.Height/2} }

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width && p.Y <= r.Y && p.Y >= r.Y-r.Height
}

// Viewport is the visible part of the plane, measured in pixels.
type Viewport struct {
	Width, Height float64
}

// ToScreen maps a plane point to pixel coordinates (origin top-left, y down).
func (v Viewport) ToScreen(p Point) (x, y float64) {
	return p.X + v.Width/2, v.Height/2 - p.Y
}

// TopLeft is the plane coordinate of the viewport's top-left pixel.
func (v Viewport) TopLeft() Point { return Point{X: -v.Width / 2, Y: v.Height / 2} }

// Bounds is the whole viewport as a plane rectangle.
func (v Viewport) Bounds() Rect {
	return Rect{X: -v.Width / 2, Y: v.Height / 2, Width: v.Width, Height: v.Height}
}
