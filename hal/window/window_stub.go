//go:build !cgo

package window

import (
	"context"
	"errors"

	"flaggallery/hal"
)

func Run(_ context.Context, _ hal.Scene, _ hal.WindowConfig, _ hal.Logger) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1), use -headless")
}
