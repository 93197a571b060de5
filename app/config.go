package app

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/BurntSushi/toml"

	"flaggallery/flags"
	"flaggallery/layout"
	"flaggallery/names"
	"flaggallery/turtle"
)

// Config is everything a session needs. Defaults come from DefaultConfig, a
// TOML file may override them, and command-line flags override both.
type Config struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`

	CellWidth     float64 `toml:"cell_width"`
	Border        float64 `toml:"border"`
	MinGap        float64 `toml:"min_gap"` // negative: same as border
	RowPitchRatio float64 `toml:"row_pitch_ratio"`
	Ratio         string  `toml:"ratio"`  // fixed, flag
	Labels        string  `toml:"labels"` // none, below, over
	Sort          string  `toml:"sort"`   // code, name
	PenWidth      float64 `toml:"pen_width"`
	BorderColor   string  `toml:"border_color"`
	LabelColor    string  `toml:"label_color"`
	Background    string  `toml:"background"`

	// Lang is the display language; empty means the user's locale.
	Lang string `toml:"lang"`
	// NamesDir holds names_<lang>.txt files replacing the built-in ones.
	NamesDir string `toml:"names_dir"`

	Buffered  bool     `toml:"buffered"`
	Headless  bool     `toml:"headless"`
	Snapshots []string `toml:"snapshots"`
	ExitKey   string   `toml:"exit_key"`

	// Debug draws the primitive test sheet instead of the gallery.
	Debug bool `toml:"debug"`
	// Preview draws a single large flag instead of the gallery.
	Preview int `toml:"preview"`
}

func DefaultConfig() Config {
	return Config{
		Title:         "Flags",
		Width:         1280,
		Height:        800,
		CellWidth:     100,
		Border:        20,
		MinGap:        -1,
		RowPitchRatio: 2.0 / 3,
		Ratio:         "fixed",
		Labels:        "none",
		Sort:          "code",
		PenWidth:      1,
		BorderColor:   "black",
		LabelColor:    "black",
		Background:    "white",
		Buffered:      true,
		ExitKey:       "Escape",
	}
}

// LoadFile overlays the TOML file at path on cfg. Keys the file does not set
// keep their current value.
func LoadFile(path string, cfg *Config) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if und := md.Undecoded(); len(und) > 0 {
		return fmt.Errorf("config: %s: unknown key %q", path, und[0].String())
	}
	return nil
}

// settings is Config parsed into the types the packages use.
type settings struct {
	layout     layout.Config
	sort       flags.SortKey
	background color.RGBA
	preview    flags.Code
}

func (c Config) parse() (settings, error) {
	var s settings
	var errs []error
	add := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	if c.Width <= 0 || c.Height <= 0 {
		add(fmt.Errorf("config: invalid size %dx%d", c.Width, c.Height))
	}
	if c.Preview < 0 {
		add(fmt.Errorf("config: invalid preview code %d", c.Preview))
	}
	s.preview = flags.Code(c.Preview)

	lc := layout.DefaultConfig()
	lc.CellWidth = c.CellWidth
	lc.Border = c.Border
	lc.MinGap = c.MinGap
	if c.RowPitchRatio > 0 {
		lc.RowPitchRatio = c.RowPitchRatio
	}
	if c.PenWidth > 0 {
		lc.PenWidth = c.PenWidth
	}
	var err error
	lc.Ratio, err = layout.ParseRatioMode(c.Ratio)
	add(err)
	lc.Labels, err = layout.ParseLabelMode(c.Labels)
	add(err)
	s.sort, err = flags.ParseSortKey(c.Sort)
	add(err)
	lc.BorderColor, err = colorOr(c.BorderColor, turtle.Black)
	add(err)
	lc.LabelColor, err = colorOr(c.LabelColor, turtle.Black)
	add(err)
	s.background, err = colorOr(c.Background, turtle.White)
	add(err)
	s.layout = lc

	return s, errors.Join(errs...)
}

func colorOr(s string, def color.RGBA) (color.RGBA, error) {
	if s == "" {
		return def, nil
	}
	c, err := turtle.ParseColor(s)
	if err != nil {
		return def, fmt.Errorf("config: %w", err)
	}
	return c, nil
}

// language resolves the display language.
func (c Config) language() string {
	if c.Lang != "" {
		return names.BaseLanguage(c.Lang)
	}
	return names.DetectLanguage()
}
