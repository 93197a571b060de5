// Package layout places flags on a grid and draws them in one forward pass.
package layout

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"math"

	"flaggallery/flags"
	"flaggallery/hal"
	"flaggallery/shape"
	"flaggallery/turtle"
)

// ErrTooFewColumns is returned when fewer than two cells fit on a row, which
// leaves the gap between cells undefined.
var ErrTooFewColumns = errors.New("fewer than two cells per row")

// RatioMode selects the height of each cell.
type RatioMode uint8

const (
	// RatioFixed draws every flag at Config.DefaultRatio.
	RatioFixed RatioMode = iota
	// RatioFlag draws every flag at its own official ratio.
	RatioFlag
)

func ParseRatioMode(s string) (RatioMode, error) {
	switch s {
	case "", "fixed":
		return RatioFixed, nil
	case "flag":
		return RatioFlag, nil
	}
	return 0, fmt.Errorf("layout: unknown ratio mode %q", s)
}

func (m RatioMode) String() string {
	if m == RatioFlag {
		return "flag"
	}
	return "fixed"
}

// LabelMode selects where display names go.
type LabelMode uint8

const (
	LabelNone LabelMode = iota
	LabelBelow
	LabelOver
)

func ParseLabelMode(s string) (LabelMode, error) {
	switch s {
	case "", "none":
		return LabelNone, nil
	case "below":
		return LabelBelow, nil
	case "over":
		return LabelOver, nil
	}
	return 0, fmt.Errorf("layout: unknown label mode %q", s)
}

func (m LabelMode) String() string {
	switch m {
	case LabelBelow:
		return "below"
	case LabelOver:
		return "over"
	default:
		return "none"
	}
}

// labelDrop is the distance from a cell's bottom edge to the baseline of a
// label drawn below it.
const labelDrop = 14

// Config holds the layout parameters.
type Config struct {
	CellWidth float64
	Border    float64
	// MinGap is the smallest acceptable gap between cells. A negative value
	// means Border; zero accepts cells that touch.
	MinGap float64
	// RowPitchRatio times CellWidth, plus the gap, is the distance between
	// rows. It does not follow the flags' own ratios.
	RowPitchRatio float64
	DefaultRatio  float64
	Ratio         RatioMode
	Labels        LabelMode

	PenWidth    float64
	BorderColor color.RGBA
	LabelColor  color.RGBA
}

func DefaultConfig() Config {
	return Config{
		CellWidth:     100,
		Border:        20,
		MinGap:        -1,
		RowPitchRatio: 2.0 / 3,
		DefaultRatio:  2.0 / 3,
		Ratio:         RatioFixed,
		Labels:        LabelNone,
		PenWidth:      1,
		BorderColor:   turtle.Black,
		LabelColor:    turtle.Black,
	}
}

func (c Config) minGap() float64 {
	if c.MinGap < 0 {
		return c.Border
	}
	return c.MinGap
}

// Grid is the result of fitting cells into a viewport.
type Grid struct {
	PerRow    int
	Gap       float64
	Start     turtle.Point // top-left corner of the first cell
	CellWidth float64
	Pitch     float64 // vertical distance between rows
	// Corrected is set when the first fit left too small a gap and one
	// column was dropped.
	Corrected bool
}

// Fit computes the grid for cfg in vp.
//
// The gap is corrected at most once: if dropping one column still leaves a
// gap under the minimum, the grid is used as is.
func Fit(cfg Config, vp turtle.Viewport) (Grid, error) {
	if cfg.CellWidth <= 0 {
		return Grid{}, fmt.Errorf("layout: cell width %v", cfg.CellWidth)
	}
	inner := vp.Width - 2*cfg.Border
	perRow := int(math.Floor(inner / cfg.CellWidth))
	if perRow < 2 {
		return Grid{}, fmt.Errorf("layout: %v wide cells in %v: %w", cfg.CellWidth, inner, ErrTooFewColumns)
	}
	g := Grid{PerRow: perRow, CellWidth: cfg.CellWidth}
	g.Gap = gap(inner, cfg.CellWidth, perRow)
	if g.Gap < cfg.minGap() {
		g.PerRow--
		g.Corrected = true
		if g.PerRow < 2 {
			return Grid{}, fmt.Errorf("layout: gap %.2f under %.2f: %w", g.Gap, cfg.minGap(), ErrTooFewColumns)
		}
		g.Gap = gap(inner, cfg.CellWidth, g.PerRow)
	}
	g.Start = turtle.Pt(-vp.Width/2+cfg.Border, vp.Height/2-cfg.Border)
	g.Pitch = cfg.CellWidth*cfg.RowPitchRatio + g.Gap
	return g, nil
}

func gap(inner, cell float64, perRow int) float64 {
	return (inner - float64(perRow)*cell) / float64(perRow-1)
}

// Origin is the top-left corner of cell i.
func (g Grid) Origin(i int) turtle.Point {
	col, row := i%g.PerRow, i/g.PerRow
	return turtle.Pt(g.Start.X+float64(col)*(g.CellWidth+g.Gap), g.Start.Y-float64(row)*g.Pitch)
}

// Rows is the number of rows n cells occupy.
func (g Grid) Rows(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + g.PerRow - 1) / g.PerRow
}

// Cell is one placed flag.
type Cell struct {
	Code  flags.Code
	Row   int
	Col   int
	Box   turtle.Rect
	Label string
}

// Report describes a render pass.
type Report struct {
	Grid   Grid
	Cells  []Cell
	Rows   int
	Drawn  int
	Errors []error
}

// Err joins the per-flag errors, or returns nil.
func (r Report) Err() error { return errors.Join(r.Errors...) }

// Engine draws a list of flags on a canvas.
type Engine struct {
	Config Config
	// Label returns the display name for a code. Nil disables labels.
	Label func(flags.Code) string
	Log   hal.Logger
}

func NewEngine(cfg Config, label func(flags.Code) string, log hal.Logger) *Engine {
	if log == nil {
		log = hal.NopLogger{}
	}
	return &Engine{Config: cfg, Label: label, Log: log}
}

// Render fits the grid to vp and draws every flag in order, then presents
// the canvas. A flag that fails to draw is reported and the pass goes on;
// only a layout error or cancellation stops it. ctx is checked between
// flags.
func (e *Engine) Render(ctx context.Context, c *turtle.Canvas, list []flags.Flag, vp turtle.Viewport) (Report, error) {
	g, err := Fit(e.Config, vp)
	if err != nil {
		return Report{}, err
	}
	if g.Corrected {
		hal.Logf(e.Log, "layout: gap under minimum, %d per row", g.PerRow)
	}
	hal.Logf(e.Log, "layout: %d flags, %d per row, gap %.1f", len(list), g.PerRow, g.Gap)

	rep := Report{Grid: g, Rows: g.Rows(len(list))}
	for i, f := range list {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		cell := e.drawCell(c, g, i, f)
		if cell.err != nil {
			rep.Errors = append(rep.Errors, cell.err)
		} else {
			rep.Drawn++
		}
		rep.Cells = append(rep.Cells, cell.Cell)
	}
	return rep, c.Update()
}

type drawnCell struct {
	Cell
	err error
}

func (e *Engine) drawCell(c *turtle.Canvas, g Grid, i int, f flags.Flag) drawnCell {
	cfg := e.Config
	w := cfg.CellWidth
	ratio := cfg.DefaultRatio
	if cfg.Ratio == RatioFlag {
		ratio = f.Ratio()
	}
	h := w * ratio
	o := g.Origin(i)
	out := drawnCell{Cell: Cell{
		Code: f.Code(),
		Row:  i / g.PerRow,
		Col:  i % g.PerRow,
		Box:  turtle.Rect{X: o.X, Y: o.Y, Width: w, Height: h},
	}}

	c.SetPenWidth(cfg.PenWidth)
	if err := f.Draw(c, o, w, h); err != nil {
		out.err = fmt.Errorf("layout: flag %s: %w", f.Code(), err)
		c.Report(out.err)
	}
	if c.Filling() {
		c.Report(fmt.Errorf("layout: flag %s: %w", f.Code(), turtle.ErrOpenFill))
		c.EndFill()
	}

	c.SetColor(cfg.BorderColor)
	shape.Rectangle(c, o, w, h, 0)

	if cfg.Labels == LabelNone || e.Label == nil {
		return out
	}
	out.Label = e.Label(f.Code())
	if out.Label == "" {
		return out
	}
	at := turtle.Pt(o.X+w/2, o.Y-h-labelDrop)
	if cfg.Labels == LabelOver {
		at.Y = o.Y - h/2
	}
	c.SetColor(cfg.LabelColor)
	c.Text(at, out.Label)
	return out
}
