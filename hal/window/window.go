//go:build cgo

// Package window shows a hal.Scene in a desktop window.
package window

import (
	"context"
	"fmt"

	"flaggallery/hal"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Run opens a resizable window showing scene and blocks until the exit key or
// the left mouse button is pressed, the window is closed or ctx is done. In
// the last case ctx.Err() is returned.
//
// The scene is laid out again, with ctx, whenever the window size changes;
// between resizes the last frame is kept and redrawn as is. A hal.Stepper
// with more than one step is revealed one step per drawn frame.
func Run(ctx context.Context, scene hal.Scene, cfg hal.WindowConfig, log hal.Logger) error {
	key, err := exitKey(cfg.ExitKey)
	if err != nil {
		return err
	}
	if log == nil {
		log = hal.NopLogger{}
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("window: invalid size %dx%d", cfg.Width, cfg.Height)
	}

	g := &game{ctx: ctx, scene: scene, exit: key, log: log}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(30)
	return ebiten.RunGame(g)
}

func exitKey(name string) (ebiten.Key, error) {
	if name == "" {
		return ebiten.KeyEscape, nil
	}
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("window: exit key %q: %w", name, err)
	}
	return k, nil
}

type game struct {
	ctx   context.Context
	scene hal.Scene
	exit  ebiten.Key
	log   hal.Logger

	w, h  int
	dirty bool
	frame *ebiten.Image

	stepper     hal.Stepper
	step, steps int
}

func (g *game) Update() error {
	if err := g.ctx.Err(); err != nil {
		return err
	}
	if inpututil.IsKeyJustPressed(g.exit) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.dirty {
		g.dirty = false
		g.redraw()
	}
	if g.frame == nil {
		return
	}
	if g.step < g.steps {
		if err := g.stepper.PaintStep(&painter{dst: g.frame}, g.step); err != nil {
			hal.Logf(g.log, "window: paint step %d: %v", g.step, err)
			g.step = g.steps
		}
		g.step++
	}
	screen.DrawImage(g.frame, nil)
}

func (g *game) redraw() {
	if g.frame != nil {
		g.frame.Deallocate()
		g.frame = nil
	}
	g.stepper, g.step, g.steps = nil, 0, 0
	if err := g.scene.Resize(g.ctx, g.w, g.h); err != nil {
		hal.Logf(g.log, "window: layout %dx%d: %v", g.w, g.h, err)
		return
	}
	g.frame = ebiten.NewImage(g.w, g.h)
	if st, ok := g.scene.(hal.Stepper); ok && st.Steps() > 1 {
		g.stepper, g.steps = st, st.Steps()
		return
	}
	if err := g.scene.Paint(&painter{dst: g.frame}); err != nil {
		hal.Logf(g.log, "window: paint: %v", err)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.w || outsideHeight != g.h {
		g.w, g.h = outsideWidth, outsideHeight
		g.dirty = true
	}
	return outsideWidth, outsideHeight
}
