// Package flags holds the drawable flag catalog.
//
// A flag is drawn into an arbitrary (origin, width, height) box with every
// coordinate expressed as a fraction of the box, so a flag keeps its
// proportions at any size. Draw calls are layered: later shapes cover earlier
// ones.
package flags

import (
	"errors"
	"fmt"

	"flaggallery/turtle"
)

var (
	ErrNoColors      = errors.New("no colors")
	ErrDuplicateCode = errors.New("duplicate country code")
	ErrUnknownCode   = errors.New("unknown country code")
)

// Code is an ISO 3166-1 numeric country code.
type Code int

func (c Code) String() string { return fmt.Sprintf("%03d", int(c)) }

// Flag is one drawable national flag.
type Flag interface {
	Code() Code
	// Ratio is the official height/width ratio.
	Ratio() float64
	// Draw paints the flag with its top-left corner at origin.
	Draw(c *turtle.Canvas, origin turtle.Point, w, h float64) error
}

type base struct {
	code  Code
	ratio float64
}

func (b base) Code() Code     { return b.code }
func (b base) Ratio() float64 { return b.ratio }
