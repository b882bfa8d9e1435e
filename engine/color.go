// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package engine

import (
	"errors"

	"github.com/lucasb-eyer/go-colorful"
)

// Hex parses a "#rrggbb" or "#rgb" color.
// The returned components are in the range [0, 1].
func Hex(s string) (r, g, b float32, err error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return 0, 0, 0, newColorErr(s)
	}
	return float32(c.R), float32(c.G), float32(c.B), nil
}

func newColorErr(s string) error { return errors.New("color: invalid hex color " + s) }

// encode converts linear RGB to sRGB, clamping the
// result to [0, 1].
func encode(r, g, b float32) (float32, float32, float32) {
	c := colorful.LinearRgb(float64(max(r, 0)), float64(max(g, 0)), float64(max(b, 0))).Clamped()
	return float32(c.R), float32(c.G), float32(c.B)
}

// decode converts sRGB to linear RGB.
func decode(r, g, b float32) (float32, float32, float32) {
	lr, lg, lb := colorful.Color{R: float64(r), G: float64(g), B: float64(b)}.LinearRgb()
	return float32(lr), float32(lg), float32(lb)
}
