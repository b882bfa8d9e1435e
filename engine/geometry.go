// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package engine

import (
	"errors"
	"math"

	"github.com/gviegas/haunted/linear"
)

const geomPrefix = "geometry: "

func newGeomErr(reason string) error { return errors.New(geomPrefix + reason) }

// The maximum number of vertices in a Geometry.
const MaxVertex = math.MaxUint16 + 1

// Geometry is an indexed triangle list.
// Faces are wound counter-clockwise.
// Texture coordinates have their origin at the
// bottom-left corner of the image.
type Geometry struct {
	pos  []linear.V3
	norm []linear.V3
	uv   []linear.V2
	idx  []uint16
}

// Len returns the number of vertices in g.
func (g *Geometry) Len() int { return len(g.pos) }

// Positions returns the vertex positions of g.
// The caller must not modify the returned slice.
func (g *Geometry) Positions() []linear.V3 { return g.pos }

// Normals returns the vertex normals of g.
// The caller must not modify the returned slice.
func (g *Geometry) Normals() []linear.V3 { return g.norm }

// UVs returns the texture coordinates of g.
// The caller must not modify the returned slice.
func (g *Geometry) UVs() []linear.V2 { return g.uv }

// Indices returns the index list of g.
// Every three indices form a triangle.
// The caller must not modify the returned slice.
func (g *Geometry) Indices() []uint16 { return g.idx }

func (g *Geometry) vertex(p, n linear.V3, u, v float32) {
	g.pos = append(g.pos, p)
	g.norm = append(g.norm, n)
	g.uv = append(g.uv, linear.V2{u, v})
}

func (g *Geometry) face(a, b, c int) {
	g.idx = append(g.idx, uint16(a), uint16(b), uint16(c))
}

func checkVertexCount(n int) error {
	if n > MaxVertex {
		return newGeomErr("too many vertices")
	}
	return nil
}

// NewPlane creates a plane in the XY plane, facing +Z.
// It is subdivided in wseg by hseg quads.
func NewPlane(width, height float32, wseg, hseg int) (*Geometry, error) {
	switch {
	case width <= 0 || height <= 0:
		return nil, newGeomErr("plane size must be greater than 0.0")
	case wseg < 1 || hseg < 1:
		return nil, newGeomErr("plane segments must be at least 1")
	}
	if err := checkVertexCount((wseg + 1) * (hseg + 1)); err != nil {
		return nil, err
	}
	var g Geometry
	g.plane(0, 1, 2, 1, -1, width, height, 0, wseg, hseg)
	return &g, nil
}

// plane appends a subdivided plane whose u/v/w axes
// map to the given component indices.
// The plane is placed at depth/2 along w, facing the
// sign of depth (+w if depth is 0).
func (g *Geometry) plane(u, v, w int, udir, vdir, width, height, depth float32, wseg, hseg int) {
	var (
		start = len(g.pos)
		sw    = width / float32(wseg)
		sh    = height / float32(hseg)
		nw    = float32(1)
	)
	if depth < 0 {
		nw = -1
	}
	for iy := range hseg + 1 {
		y := float32(iy)*sh - height/2
		for ix := range wseg + 1 {
			x := float32(ix)*sw - width/2
			var p, n linear.V3
			p[u] = x * udir
			p[v] = y * vdir
			p[w] = depth / 2
			n[w] = nw
			g.vertex(p, n, float32(ix)/float32(wseg), 1-float32(iy)/float32(hseg))
		}
	}
	row := wseg + 1
	for iy := range hseg {
		for ix := range wseg {
			a := start + ix + row*iy
			b := start + ix + row*(iy+1)
			c := start + ix + 1 + row*(iy+1)
			d := start + ix + 1 + row*iy
			g.face(a, b, d)
			g.face(b, c, d)
		}
	}
}

// NewBox creates an axis-aligned box centered at the
// origin.
func NewBox(width, height, depth float32) (*Geometry, error) {
	if width <= 0 || height <= 0 || depth <= 0 {
		return nil, newGeomErr("box size must be greater than 0.0")
	}
	var g Geometry
	const x, y, z = 0, 1, 2
	g.plane(z, y, x, -1, -1, depth, height, width, 1, 1)
	g.plane(z, y, x, 1, -1, depth, height, -width, 1, 1)
	g.plane(x, z, y, 1, 1, width, depth, height, 1, 1)
	g.plane(x, z, y, 1, -1, width, depth, -height, 1, 1)
	g.plane(x, y, z, 1, -1, width, height, depth, 1, 1)
	g.plane(x, y, z, -1, -1, width, height, -depth, 1, 1)
	return &g, nil
}

// NewCone creates a cone with its base centered at
// -height/2 and its apex at +height/2 along Y.
// The first rim vertex lies on +Z.
func NewCone(radius, height float32, radial int) (*Geometry, error) {
	switch {
	case radius <= 0 || height <= 0:
		return nil, newGeomErr("cone size must be greater than 0.0")
	case radial < 3:
		return nil, newGeomErr("cone radial segments must be at least 3")
	}
	if err := checkVertexCount(4*radial + 3); err != nil {
		return nil, err
	}
	var g Geometry
	half := height / 2
	slope := radius / height
	// Side.
	for iy := range 2 {
		v := float32(iy)
		r := v * radius
		for ix := range radial + 1 {
			u := float32(ix) / float32(radial)
			s, c := math.Sincos(float64(u) * 2 * math.Pi)
			sin, cos := float32(s), float32(c)
			n := linear.V3{sin, slope, cos}
			n.Norm(&n)
			g.vertex(linear.V3{r * sin, -v*height + half, r * cos}, n, u, 1-v)
		}
	}
	row := radial + 1
	for ix := range radial {
		b := ix + row
		c := ix + 1 + row
		d := ix + 1
		g.face(b, c, d)
	}
	// Base.
	center := len(g.pos)
	down := linear.V3{0, -1, 0}
	for range radial {
		g.vertex(linear.V3{0, -half, 0}, down, 0.5, 0.5)
	}
	rim := len(g.pos)
	for ix := range radial + 1 {
		u := float32(ix) / float32(radial)
		s, c := math.Sincos(float64(u) * 2 * math.Pi)
		sin, cos := float32(s), float32(c)
		g.vertex(linear.V3{radius * sin, -half, radius * cos}, down, cos*0.5+0.5, sin*-0.5+0.5)
	}
	for ix := range radial {
		g.face(rim+ix+1, rim+ix, center+ix)
	}
	return &g, nil
}

// NewSphere creates a UV sphere centered at the origin.
func NewSphere(radius float32, wseg, hseg int) (*Geometry, error) {
	switch {
	case radius <= 0:
		return nil, newGeomErr("sphere radius must be greater than 0.0")
	case wseg < 3 || hseg < 2:
		return nil, newGeomErr("sphere segments must be at least 3x2")
	}
	if err := checkVertexCount((wseg + 1) * (hseg + 1)); err != nil {
		return nil, err
	}
	var g Geometry
	for iy := range hseg + 1 {
		v := float32(iy) / float32(hseg)
		var uoff float32
		switch iy {
		case 0:
			uoff = 0.5 / float32(wseg)
		case hseg:
			uoff = -0.5 / float32(wseg)
		}
		st, ct := math.Sincos(float64(v) * math.Pi)
		for ix := range wseg + 1 {
			u := float32(ix) / float32(wseg)
			sp, cp := math.Sincos(float64(u) * 2 * math.Pi)
			n := linear.V3{
				float32(-cp * st),
				float32(ct),
				float32(sp * st),
			}
			var p linear.V3
			p.Scale(radius, &n)
			if n.Len() > 0 {
				n.Norm(&n)
			}
			g.vertex(p, n, u+uoff, 1-v)
		}
	}
	row := wseg + 1
	for iy := range hseg {
		for ix := range wseg {
			a := iy*row + ix + 1
			b := iy*row + ix
			c := (iy+1)*row + ix
			d := (iy+1)*row + ix + 1
			if iy != 0 {
				g.face(a, b, d)
			}
			if iy != hseg-1 {
				g.face(b, c, d)
			}
		}
	}
	return &g, nil
}
