package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"sync"

	"golang.org/x/image/vector"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"flaggallery/names"
)

// Raster is an anti-aliased software painter. Drawing goes to a back
// buffer; Present copies it to the front buffer that Image reads, so a
// reader never sees a half drawn frame.
type Raster struct {
	mu    sync.Mutex
	back  *image.RGBA
	front *image.RGBA
	z     *vector.Rasterizer
	font  tinyfont.Fonter
	disp  *imageDisplay
}

func NewRaster(width, height int) *Raster {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	r := image.Rect(0, 0, width, height)
	back := image.NewRGBA(r)
	return &Raster{
		back:  back,
		front: image.NewRGBA(r),
		z:     vector.NewRasterizer(width, height),
		font:  &proggy.TinySZ8pt7b,
		disp:  &imageDisplay{img: back},
	}
}

func (r *Raster) Size() (w, h int) {
	b := r.back.Bounds()
	return b.Dx(), b.Dy()
}

func (r *Raster) Clear(c color.RGBA) {
	draw.Draw(r.back, r.back.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// FillPolygon rasterizes only the polygon's bounding box, padded by a
// pixel and clipped to the image.
func (r *Raster) FillPolygon(xs, ys []float32, c color.RGBA) {
	if len(xs) < 3 || len(xs) != len(ys) {
		return
	}
	bb := polygonBounds(xs, ys).Intersect(r.back.Bounds())
	if bb.Empty() {
		return
	}
	ox, oy := float32(bb.Min.X), float32(bb.Min.Y)
	r.z.Reset(bb.Dx(), bb.Dy())
	r.z.DrawOp = draw.Over
	r.z.MoveTo(xs[0]-ox, ys[0]-oy)
	for i := 1; i < len(xs); i++ {
		r.z.LineTo(xs[i]-ox, ys[i]-oy)
	}
	r.z.ClosePath()
	r.z.Draw(r.back, bb, image.NewUniform(c), image.Point{})
}

func polygonBounds(xs, ys []float32) image.Rectangle {
	x0, x1, y0, y1 := xs[0], xs[0], ys[0], ys[0]
	for i := 1; i < len(xs); i++ {
		x0, x1 = min(x0, xs[i]), max(x1, xs[i])
		y0, y1 = min(y0, ys[i]), max(y1, ys[i])
	}
	return image.Rect(
		int(math.Floor(float64(x0)))-1, int(math.Floor(float64(y0)))-1,
		int(math.Ceil(float64(x1)))+1, int(math.Ceil(float64(y1)))+1,
	)
}

// StrokeLine draws the segment as a thin quad. Widths under one pixel are
// drawn one pixel wide.
func (r *Raster) StrokeLine(x0, y0, x1, y1, width float32, c color.RGBA) {
	dx, dy := float64(x1-x0), float64(y1-y0)
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	hw := math.Max(float64(width), 1) / 2
	nx, ny := float32(-dy/l*hw), float32(dx/l*hw)
	r.FillPolygon(
		[]float32{x0 + nx, x1 + nx, x1 - nx, x0 - nx},
		[]float32{y0 + ny, y1 + ny, y1 - ny, y0 - ny},
		c,
	)
}

// Text draws s centered on x with its baseline at y. The bitmap font only
// covers ASCII, so accents are dropped.
func (r *Raster) Text(x, y float32, s string, c color.RGBA) {
	s = names.Fold(s)
	_, outbox := tinyfont.LineWidth(r.font, s)
	x0 := int16(math.Round(float64(x) - float64(outbox)/2))
	tinyfont.WriteLine(r.disp, r.font, x0, int16(math.Round(float64(y))), s, c)
}

// Present publishes the back buffer.
func (r *Raster) Present() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copy(r.front.Pix, r.back.Pix)
	return nil
}

// Image returns a copy of the last presented frame.
func (r *Raster) Image() *image.RGBA {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := image.NewRGBA(r.front.Bounds())
	copy(out.Pix, r.front.Pix)
	return out
}

// imageDisplay lets tinyfont draw into an image.
type imageDisplay struct {
	img *image.RGBA
}

var _ drivers.Displayer = (*imageDisplay)(nil)

func (d *imageDisplay) Size() (x, y int16) {
	b := d.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (d *imageDisplay) SetPixel(x, y int16, c color.RGBA) {
	p := image.Pt(int(x), int(y))
	if !p.In(d.img.Bounds()) {
		return
	}
	if c.A == 0xff {
		d.img.SetRGBA(p.X, p.Y, c)
		return
	}
	draw.Draw(d.img, image.Rectangle{Min: p, Max: p.Add(image.Pt(1, 1))}, image.NewUniform(c), image.Point{}, draw.Over)
}

func (d *imageDisplay) Display() error { return nil }
