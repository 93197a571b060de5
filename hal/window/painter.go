//go:build cgo

package window

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// painter draws hal.Painter commands onto an ebiten image with vector paths.
type painter struct {
	dst      *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

func (p *painter) Size() (w, h int) {
	b := p.dst.Bounds()
	return b.Dx(), b.Dy()
}

func (p *painter) Clear(c color.RGBA) { p.dst.Fill(c) }

func (p *painter) FillPolygon(xs, ys []float32, c color.RGBA) {
	if len(xs) < 3 || len(xs) != len(ys) {
		return
	}
	var path vector.Path
	path.MoveTo(xs[0], ys[0])
	for i := 1; i < len(xs); i++ {
		path.LineTo(xs[i], ys[i])
	}
	path.Close()

	p.vertices, p.indices = path.AppendVerticesAndIndicesForFilling(p.vertices[:0], p.indices[:0])
	r := float32(c.R) / 255
	g := float32(c.G) / 255
	b := float32(c.B) / 255
	a := float32(c.A) / 255
	for i := range p.vertices {
		p.vertices[i].SrcX = 1
		p.vertices[i].SrcY = 1
		p.vertices[i].ColorR = r
		p.vertices[i].ColorG = g
		p.vertices[i].ColorB = b
		p.vertices[i].ColorA = a
	}
	p.dst.DrawTriangles(p.vertices, p.indices, whiteSubImage, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		FillRule:  ebiten.EvenOdd,
	})
}

func (p *painter) StrokeLine(x0, y0, x1, y1, width float32, c color.RGBA) {
	vector.StrokeLine(p.dst, x0, y0, x1, y1, width, c, true)
}

// Text centers s horizontally on x with its baseline at y.
func (p *painter) Text(x, y float32, s string, c color.RGBA) {
	face := basicfont.Face7x13
	w := font.MeasureString(face, s).Ceil()
	text.Draw(p.dst, s, face, int(x)-w/2, int(y), c)
}
