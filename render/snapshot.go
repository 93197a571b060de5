package render

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"flaggallery/turtle"
)

// Format is a snapshot file format.
type Format uint8

const (
	FormatPNG Format = iota + 1
	FormatSVG
)

func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatSVG:
		return "svg"
	default:
		return "unknown"
	}
}

var ErrUnknownFormat = errors.New("unknown snapshot format")

// FormatFor picks the format from the file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".svg":
		return FormatSVG, nil
	}
	return 0, fmt.Errorf("render: %s: %w", path, ErrUnknownFormat)
}

// Frame is a finished drawing ready to export.
type Frame struct {
	Ops        *turtle.Recorder
	Viewport   turtle.Viewport
	Background color.RGBA
	Title      string
	// Image, when set, is Ops already rasterized at the viewport size. PNG
	// output encodes it as is.
	Image *image.RGBA
}

func (fr Frame) size() (int, int) {
	return int(fr.Viewport.Width), int(fr.Viewport.Height)
}

// Encode writes fr to w in format f.
func Encode(w io.Writer, f Format, fr Frame) error {
	width, height := fr.size()
	switch f {
	case FormatPNG:
		if fr.Image != nil {
			return png.Encode(w, fr.Image)
		}
		r := NewRaster(width, height)
		if err := Paint(r, fr.Ops, fr.Background); err != nil {
			return err
		}
		return png.Encode(w, r.Image())
	case FormatSVG:
		doc := NewSVG(width, height)
		doc.Title = fr.Title
		if err := Paint(doc, fr.Ops, fr.Background); err != nil {
			return err
		}
		_, err := doc.WriteTo(w)
		return err
	}
	return fmt.Errorf("render: %v: %w", f, ErrUnknownFormat)
}

// WriteFile encodes fr into path, choosing the format by extension.
func WriteFile(path string, fr Frame) (err error) {
	f, err := FormatFor(path)
	if err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	defer func() {
		if cerr := out.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("render: %w", cerr)
		}
	}()
	if err := Encode(out, f, fr); err != nil {
		return fmt.Errorf("render: %s: %w", path, err)
	}
	return nil
}

// Snapshot writes fr to every path in parallel. The recorder is only read,
// so it must not be drawn on until Snapshot returns.
func Snapshot(ctx context.Context, fr Frame, paths ...string) error {
	for _, p := range paths {
		if _, err := FormatFor(p); err != nil {
			return err
		}
	}
	g, ctx := errgroup.WithContext(ctx)
	for _, p := range paths {
		p := p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return WriteFile(p, fr)
		})
	}
	return g.Wait()
}
