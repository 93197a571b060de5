package hal

import (
	"context"
	"errors"
	"fmt"
	"image/color"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// NopLogger drops everything.
type NopLogger struct{}

func (NopLogger) WriteLineString(string) {}
func (NopLogger) WriteLineBytes([]byte)  {}

// Logf formats one log line. A nil logger is ignored.
func Logf(l Logger, format string, args ...any) {
	if l == nil {
		return
	}
	l.WriteLineString(fmt.Sprintf(format, args...))
}

var ErrNotImplemented = errors.New("not implemented")

// Painter is the pixel-space target a host hands to a Scene each frame.
// Coordinates have their origin at the top-left corner, y pointing down.
type Painter interface {
	Size() (w, h int)
	Clear(c color.RGBA)
	FillPolygon(xs, ys []float32, c color.RGBA)
	StrokeLine(x0, y0, x1, y1, width float32, c color.RGBA)
	Text(x, y float32, s string, c color.RGBA)
}

// Scene is what a host displays.
type Scene interface {
	// Resize lays the scene out again for a new size in pixels. It is only
	// called when the size changes.
	Resize(ctx context.Context, width, height int) error
	// Paint draws the current layout.
	Paint(p Painter) error
}

// Stepper is a Scene that can also be shown the way it was drawn, one
// presented step at a time. Hosts paint steps 0 to Steps()-1 in order onto
// the same target without clearing between them.
type Stepper interface {
	Scene
	Steps() int
	PaintStep(p Painter, i int) error
}

// WindowConfig controls the desktop window host.
type WindowConfig struct {
	Title  string
	Width  int
	Height int
	// ExitKey names the key that closes the window ("Escape", "Q", ...).
	// The left mouse button always closes it.
	ExitKey string
}
