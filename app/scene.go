package app

import (
	"context"
	"fmt"
	"image/color"
	"math"

	"flaggallery/flags"
	"flaggallery/hal"
	"flaggallery/layout"
	"flaggallery/render"
	"flaggallery/shape"
	"flaggallery/turtle"
)

// pass draws one complete picture for a viewport.
type pass func(ctx context.Context, c *turtle.Canvas, vp turtle.Viewport) error

// scene is the hal.Scene shown by every host. Each Resize redraws the
// picture into a fresh display list; Paint only replays it.
type scene struct {
	draw     pass
	bg       color.RGBA
	buffered bool
	log      hal.Logger

	rec *turtle.Recorder
	vp  turtle.Viewport
}

var _ hal.Stepper = (*scene)(nil)

func newScene(draw pass, bg color.RGBA, buffered bool, log hal.Logger) *scene {
	return &scene{draw: draw, bg: bg, buffered: buffered, log: log, rec: turtle.NewRecorder()}
}

func (s *scene) Resize(ctx context.Context, width, height int) error {
	s.rec.Reset()
	s.vp = turtle.Viewport{Width: float64(width), Height: float64(height)}
	c := turtle.New(s.rec, s.log)
	c.SetBuffered(s.buffered)
	err := guard(s.log, "draw", func() error { return s.draw(ctx, c, s.vp) })
	if err != nil {
		return err
	}
	return c.Flush()
}

func (s *scene) Paint(p hal.Painter) error {
	return render.Paint(p, s.rec, s.bg)
}

// Steps is 1 for a buffered drawing, which is shown whole. An immediate
// drawing has one step per canvas present.
func (s *scene) Steps() int {
	if s.buffered || s.rec.Presents() == 0 {
		return 1
	}
	return s.rec.Presents()
}

func (s *scene) PaintStep(p hal.Painter, i int) error {
	if s.Steps() == 1 {
		return s.Paint(p)
	}
	return render.PaintFrame(p, s.rec, s.bg, i)
}

// frame is the last drawing, for export.
func (s *scene) frame(title string) render.Frame {
	return render.Frame{Ops: s.rec, Viewport: s.vp, Background: s.bg, Title: title}
}

// galleryPass draws every flag on the grid.
func galleryPass(e *layout.Engine, list []flags.Flag, log hal.Logger) pass {
	return func(ctx context.Context, c *turtle.Canvas, vp turtle.Viewport) error {
		rep, err := e.Render(ctx, c, list, vp)
		if err != nil {
			return err
		}
		hal.Logf(log, "gallery: %d of %d flags drawn in %d rows", rep.Drawn, len(rep.Cells), rep.Rows)
		return nil
	}
}

// previewPass draws one flag as large as the viewport allows, centered,
// with its name underneath.
func previewPass(f flags.Flag, cfg layout.Config, label func(flags.Code) string) pass {
	return func(ctx context.Context, c *turtle.Canvas, vp turtle.Viewport) error {
		w := math.Min(vp.Width*0.8, vp.Height*0.8/f.Ratio())
		h := w * f.Ratio()
		o := turtle.Pt(-w/2, h/2)
		c.SetPenWidth(cfg.PenWidth)
		if err := f.Draw(c, o, w, h); err != nil {
			return fmt.Errorf("preview %s: %w", f.Code(), err)
		}
		c.SetColor(cfg.BorderColor)
		shape.Rectangle(c, o, w, h, 0)
		if label != nil {
			if name := label(f.Code()); name != "" {
				c.SetColor(cfg.LabelColor)
				c.Text(turtle.Pt(0, -h/2-20), name)
			}
		}
		return nil
	}
}
