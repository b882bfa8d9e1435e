// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package raster defines the surface into which the
// engine's renderer submits projected triangles.
package raster

import (
	"image"
	"image/color"
)

// Vertex is a projected vertex.
// X and Y are in pixels, with the origin at the
// top-left corner of the target.
// U and V are texture coordinates, with V=0 at the
// first row of the source image. Values outside
// [0, 1] wrap around.
// R, G, B and A are multiplied into the sampled
// color (straight alpha).
type Vertex struct {
	X, Y       float32
	U, V       float32
	R, G, B, A float32
}

// Target is the interface that defines a surface
// that triangles can be drawn into.
type Target interface {
	// Size returns the size of the surface in pixels.
	Size() (width, height int)

	// Resize resizes the surface.
	// The contents are undefined afterwards.
	// Resizing to the current size must not
	// change the surface.
	Resize(width, height int)

	// Clear fills the whole surface with c.
	Clear(c color.Color)

	// DrawTriangles draws the triangle list given by
	// indices into vertices.
	// src is the texture to sample. If src is nil,
	// the vertex colors are used as is.
	// Triangles are drawn in order, each one over
	// the previous ones.
	DrawTriangles(vertices []Vertex, indices []uint16, src image.Image)
}
