// Package app wires a gallery session: configuration, catalog, display
// names, the drawing pass and the host that shows it.
package app

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"flaggallery/flags"
	"flaggallery/hal"
	"flaggallery/hal/window"
	"flaggallery/internal/buildinfo"
	"flaggallery/layout"
	"flaggallery/names"
	"flaggallery/render"
)

// Session is one configured gallery, ready to be shown.
type Session struct {
	cfg   Config
	log   hal.Logger
	names names.Table
	scene *scene

	// raster holds the last headless drawing, reused for PNG snapshots.
	raster *render.Raster
}

// New validates cfg and prepares the drawing pass. Nothing is drawn yet.
func New(cfg Config, log hal.Logger) (*Session, error) {
	if log == nil {
		log = hal.NopLogger{}
	}
	set, err := cfg.parse()
	if err != nil {
		return nil, err
	}

	var fsys fs.FS = names.Embedded()
	if cfg.NamesDir != "" {
		fsys = os.DirFS(cfg.NamesDir)
	}
	lang := cfg.language()
	tab := names.Load(fsys, lang, names.DefaultLanguage, log)
	if tab.Lang != "" {
		lang = tab.Lang
	}

	cat := flags.Default()
	hal.Logf(log, "flaggallery %s: %d flags, names %q", buildinfo.Short(), cat.Len(), lang)

	var draw pass
	switch {
	case cfg.Debug:
		draw = debugPass
	case set.preview != 0:
		f, err := cat.Get(set.preview)
		if err != nil {
			return nil, fmt.Errorf("app: preview: %w", err)
		}
		draw = previewPass(f, set.layout, tab.Name)
	default:
		list := cat.Sorted(set.sort, tab.Name, names.Tag(lang))
		draw = galleryPass(layout.NewEngine(set.layout, tab.Name, log), list, log)
	}

	return &Session{
		cfg:   cfg,
		log:   log,
		names: tab,
		scene: newScene(draw, set.background, cfg.Buffered, log),
	}, nil
}

// Run shows the session until the user closes it (or, headless, draws it
// once), then writes the configured snapshots.
func (s *Session) Run(ctx context.Context) error {
	var err error
	if s.cfg.Headless {
		err = s.RunHeadless(ctx)
	} else {
		err = window.Run(ctx, s.scene, hal.WindowConfig{
			Title:   s.cfg.Title,
			Width:   s.cfg.Width,
			Height:  s.cfg.Height,
			ExitKey: s.cfg.ExitKey,
		}, s.log)
	}
	if err != nil {
		return err
	}
	return s.Snapshot(ctx)
}

// RunHeadless draws the session into an off-screen raster of the configured
// size.
func (s *Session) RunHeadless(ctx context.Context) error {
	r := render.NewRaster(s.cfg.Width, s.cfg.Height)
	err := hal.RunHeadless(ctx, s.scene, r, hal.HeadlessConfig{
		Enabled: true,
		Width:   s.cfg.Width,
		Height:  s.cfg.Height,
	})
	if err != nil {
		return err
	}
	s.raster = r
	return nil
}

// Snapshot writes the last drawing to every configured path. If nothing has
// been drawn yet, the session is drawn at the configured size first.
func (s *Session) Snapshot(ctx context.Context) error {
	if len(s.cfg.Snapshots) == 0 {
		return nil
	}
	if s.scene.vp.Width == 0 {
		if err := s.scene.Resize(ctx, s.cfg.Width, s.cfg.Height); err != nil {
			return err
		}
	}
	fr := s.scene.frame(s.cfg.Title)
	if s.raster != nil {
		if w, h := s.raster.Size(); w == int(fr.Viewport.Width) && h == int(fr.Viewport.Height) {
			fr.Image = s.raster.Image()
		}
	}
	if err := render.Snapshot(ctx, fr, s.cfg.Snapshots...); err != nil {
		return err
	}
	for _, p := range s.cfg.Snapshots {
		hal.Logf(s.log, "snapshot: %s", p)
	}
	return nil
}

// Names is the display name table in use.
func (s *Session) Names() names.Table { return s.names }
