// Package render turns recorded turtle drawings into pixels and documents.
//
// Plane adapts any hal.Painter (the desktop window, the raster image, the
// SVG document) to turtle.Surface by mapping plane coordinates, centered and
// y up, to pixel coordinates.
package render

import (
	"image/color"

	"flaggallery/hal"
	"flaggallery/turtle"
)

type presenter interface {
	Present() error
}

// Plane is a turtle.Surface drawing on a hal.Painter.
type Plane struct {
	p  hal.Painter
	vp turtle.Viewport
}

// NewPlane maps the plane onto p, with the plane origin at the center of p.
func NewPlane(p hal.Painter) *Plane {
	w, h := p.Size()
	return &Plane{p: p, vp: turtle.Viewport{Width: float64(w), Height: float64(h)}}
}

func (s *Plane) Viewport() turtle.Viewport { return s.vp }

func (s *Plane) StrokeLine(a, b turtle.Point, c color.RGBA, width float64) {
	x0, y0 := s.vp.ToScreen(a)
	x1, y1 := s.vp.ToScreen(b)
	s.p.StrokeLine(float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c)
}

func (s *Plane) FillPolygon(pts []turtle.Point, c color.RGBA) {
	if len(pts) < 3 {
		return
	}
	xs := make([]float32, len(pts))
	ys := make([]float32, len(pts))
	for i, p := range pts {
		x, y := s.vp.ToScreen(p)
		xs[i], ys[i] = float32(x), float32(y)
	}
	s.p.FillPolygon(xs, ys, c)
}

func (s *Plane) DrawText(at turtle.Point, str string, c color.RGBA) {
	x, y := s.vp.ToScreen(at)
	s.p.Text(float32(x), float32(y), str, c)
}

// Present forwards to the painter when it buffers its output.
func (s *Plane) Present() error {
	if p, ok := s.p.(presenter); ok {
		return p.Present()
	}
	return nil
}

// Paint clears p to bg and replays rec onto it.
func Paint(p hal.Painter, rec *turtle.Recorder, bg color.RGBA) error {
	p.Clear(bg)
	return rec.Replay(NewPlane(p))
}

// PaintFrame replays frame i of rec onto p, on top of the frames before it.
// Frame 0 clears p to bg first.
func PaintFrame(p hal.Painter, rec *turtle.Recorder, bg color.RGBA, i int) error {
	if i == 0 {
		p.Clear(bg)
	}
	return rec.ReplayFrame(NewPlane(p), i)
}
