package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Width   int
	Height  int
	// Hz is the frame rate when Frames > 1.
	Hz int
	// Frames is the number of Paint calls before returning (0 = 1).
	Frames uint64
}

// RunHeadless lays the scene out once for the configured size and paints it
// onto p Frames times. The first paint goes step by step when the scene is a
// Stepper. Cancellation is checked between frames and steps only.
func RunHeadless(ctx context.Context, scene Scene, p Painter, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	if cfg.Frames == 0 {
		cfg.Frames = 1
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("invalid headless size: %dx%d", cfg.Width, cfg.Height)
	}

	if err := scene.Resize(ctx, cfg.Width, cfg.Height); err != nil {
		return err
	}
	if err := paintSteps(ctx, scene, p); err != nil {
		return err
	}
	if cfg.Frames == 1 {
		return nil
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	frame := uint64(1)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if err := scene.Paint(p); err != nil {
				return err
			}
			frame++
			if frame >= cfg.Frames {
				return nil
			}
		}
	}
}

func paintSteps(ctx context.Context, scene Scene, p Painter) error {
	st, ok := scene.(Stepper)
	if !ok || st.Steps() <= 1 {
		return scene.Paint(p)
	}
	for i := 0; i < st.Steps(); i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := st.PaintStep(p, i); err != nil {
			return err
		}
	}
	return nil
}
