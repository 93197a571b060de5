package render

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"

	"flaggallery/turtle"
)

// SVG is a painter that keeps a vector document. Coordinates are written
// with two decimals; svgo's shape helpers take integers, so polygons and
// lines go out as paths.
type SVG struct {
	width, height int
	bg            *color.RGBA
	elems         []func(*svg.SVG)
	Title         string
}

func NewSVG(width, height int) *SVG {
	return &SVG{width: width, height: height}
}

func (s *SVG) Size() (w, h int) { return s.width, s.height }

// Clear drops everything drawn so far.
func (s *SVG) Clear(c color.RGBA) {
	s.bg = &c
	s.elems = s.elems[:0]
}

func (s *SVG) FillPolygon(xs, ys []float32, c color.RGBA) {
	if len(xs) < 3 || len(xs) != len(ys) {
		return
	}
	d := pathData(xs, ys, true)
	style := "fill:" + turtle.Hex(c) + opacity("fill", c)
	s.elems = append(s.elems, func(doc *svg.SVG) { doc.Path(d, style) })
}

func (s *SVG) StrokeLine(x0, y0, x1, y1, width float32, c color.RGBA) {
	d := pathData([]float32{x0, x1}, []float32{y0, y1}, false)
	style := fmt.Sprintf("fill:none;stroke:%s;stroke-width:%s;stroke-linecap:round%s",
		turtle.Hex(c), num(math.Max(float64(width), 1)), opacity("stroke", c))
	s.elems = append(s.elems, func(doc *svg.SVG) { doc.Path(d, style) })
}

func (s *SVG) Text(x, y float32, str string, c color.RGBA) {
	style := "text-anchor:middle;font-family:sans-serif;font-size:11px;fill:" + turtle.Hex(c)
	ix, iy := int(math.Round(float64(x))), int(math.Round(float64(y)))
	s.elems = append(s.elems, func(doc *svg.SVG) { doc.Text(ix, iy, str, style) })
}

// WriteTo writes the document to w.
func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	cw := &countWriter{w: w}
	doc := svg.New(cw)
	doc.Start(s.width, s.height)
	if s.Title != "" {
		doc.Title(s.Title)
	}
	if s.bg != nil {
		doc.Rect(0, 0, s.width, s.height, "fill:"+turtle.Hex(*s.bg))
	}
	for _, e := range s.elems {
		e(doc)
	}
	doc.End()
	return cw.n, cw.err
}

// Len is the number of drawn elements, background excluded.
func (s *SVG) Len() int { return len(s.elems) }

func pathData(xs, ys []float32, closed bool) string {
	var b strings.Builder
	for i := range xs {
		if i == 0 {
			b.WriteString("M")
		} else {
			b.WriteString(" L")
		}
		b.WriteString(num(float64(xs[i])))
		b.WriteByte(' ')
		b.WriteString(num(float64(ys[i])))
	}
	if closed {
		b.WriteString(" Z")
	}
	return b.String()
}

func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

func opacity(prop string, c color.RGBA) string {
	if c.A == 0xff {
		return ""
	}
	return ";" + prop + "-opacity:" + num(float64(c.A)/255)
}

type countWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *countWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.err = err
	return n, err
}
