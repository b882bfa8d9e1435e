// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// Image is a Target backed by an *image.RGBA.
// It fills each triangle with a flat color: the mean
// of its vertex colors modulated by the mean color of
// the source image.
type Image struct {
	rgba  *image.RGBA
	z     vector.Rasterizer
	means map[image.Image]color.NRGBA
	poly  [][2]float32
}

// NewImage creates a new Image.
func NewImage(width, height int) *Image {
	return &Image{
		rgba:  image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0))),
		means: make(map[image.Image]color.NRGBA),
	}
}

// RGBA returns the underlying image.
// It becomes invalid after a call to Resize that
// changes the size.
func (m *Image) RGBA() *image.RGBA { return m.rgba }

// Size implements Target.
func (m *Image) Size() (width, height int) {
	b := m.rgba.Bounds()
	return b.Dx(), b.Dy()
}

// Resize implements Target.
func (m *Image) Resize(width, height int) {
	if w, h := m.Size(); w == width && h == height {
		return
	}
	m.rgba = image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))
}

// Clear implements Target.
func (m *Image) Clear(c color.Color) {
	draw.Draw(m.rgba, m.rgba.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// DrawTriangles implements Target.
func (m *Image) DrawTriangles(vertices []Vertex, indices []uint16, src image.Image) {
	tint := color.NRGBA{255, 255, 255, 255}
	if src != nil {
		tint = m.mean(src)
	}
	w, h := m.Size()
	for i := 0; i+2 < len(indices); i += 3 {
		v0 := &vertices[indices[i]]
		v1 := &vertices[indices[i+1]]
		v2 := &vertices[indices[i+2]]
		m.poly = append(m.poly[:0],
			[2]float32{v0.X, v0.Y},
			[2]float32{v1.X, v1.Y},
			[2]float32{v2.X, v2.Y})
		m.poly = clip(m.poly, float32(w), float32(h))
		if len(m.poly) < 3 {
			continue
		}
		minX, minY := float32(math.MaxFloat32), float32(math.MaxFloat32)
		maxX, maxY := float32(-math.MaxFloat32), float32(-math.MaxFloat32)
		for _, p := range m.poly {
			minX, maxX = min(minX, p[0]), max(maxX, p[0])
			minY, maxY = min(minY, p[1]), max(maxY, p[1])
		}
		r := image.Rect(int(minX), int(minY), int(math.Ceil(float64(maxX))), int(math.Ceil(float64(maxY))))
		if r.Empty() {
			continue
		}
		ox, oy := float32(r.Min.X), float32(r.Min.Y)
		m.z.Reset(r.Dx(), r.Dy())
		m.z.DrawOp = draw.Over
		m.z.MoveTo(m.poly[0][0]-ox, m.poly[0][1]-oy)
		for _, p := range m.poly[1:] {
			m.z.LineTo(p[0]-ox, p[1]-oy)
		}
		m.z.ClosePath()
		c := flat(v0, v1, v2, tint)
		m.z.Draw(m.rgba, r, image.NewUniform(c), image.Point{})
	}
}

// flat computes the fill color of a triangle.
func flat(v0, v1, v2 *Vertex, tint color.NRGBA) color.NRGBA {
	ch := func(a, b, c float32, t uint8) uint8 {
		x := (a + b + c) / 3 * float32(t)
		return uint8(max(0, min(255, x+0.5)))
	}
	return color.NRGBA{
		R: ch(v0.R, v1.R, v2.R, tint.R),
		G: ch(v0.G, v1.G, v2.G, tint.G),
		B: ch(v0.B, v1.B, v2.B, tint.B),
		A: ch(v0.A, v1.A, v2.A, tint.A),
	}
}

// mean returns the mean color of src.
// Results are cached by image.
func (m *Image) mean(src image.Image) color.NRGBA {
	if c, ok := m.means[src]; ok {
		return c
	}
	c := Mean(src)
	m.means[src] = c
	return c
}

// Mean computes the mean (non-premultiplied) color
// of img.
func Mean(img image.Image) color.NRGBA {
	b := img.Bounds()
	n := b.Dx() * b.Dy()
	if n == 0 {
		return color.NRGBA{}
	}
	var r, g, bl, a uint64
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			r += uint64(c.R)
			g += uint64(c.G)
			bl += uint64(c.B)
			a += uint64(c.A)
		}
	}
	d := uint64(n)
	return color.NRGBA{uint8(r / d), uint8(g / d), uint8(bl / d), uint8(a / d)}
}

// clip clips the convex polygon p against the
// rectangle [0, w] x [0, h].
func clip(p [][2]float32, w, h float32) [][2]float32 {
	type edge struct {
		in func([2]float32) bool
		at func(a, b [2]float32) [2]float32
	}
	lerpX := func(a, b [2]float32, x float32) [2]float32 {
		t := (x - a[0]) / (b[0] - a[0])
		return [2]float32{x, a[1] + t*(b[1]-a[1])}
	}
	lerpY := func(a, b [2]float32, y float32) [2]float32 {
		t := (y - a[1]) / (b[1] - a[1])
		return [2]float32{a[0] + t*(b[0]-a[0]), y}
	}
	edges := [4]edge{
		{func(q [2]float32) bool { return q[0] >= 0 }, func(a, b [2]float32) [2]float32 { return lerpX(a, b, 0) }},
		{func(q [2]float32) bool { return q[0] <= w }, func(a, b [2]float32) [2]float32 { return lerpX(a, b, w) }},
		{func(q [2]float32) bool { return q[1] >= 0 }, func(a, b [2]float32) [2]float32 { return lerpY(a, b, 0) }},
		{func(q [2]float32) bool { return q[1] <= h }, func(a, b [2]float32) [2]float32 { return lerpY(a, b, h) }},
	}
	for _, e := range edges {
		if len(p) == 0 {
			break
		}
		var out [][2]float32
		prev := p[len(p)-1]
		for _, cur := range p {
			switch cin, pin := e.in(cur), e.in(prev); {
			case cin && pin:
				out = append(out, cur)
			case cin:
				out = append(out, e.at(prev, cur), cur)
			case pin:
				out = append(out, e.at(prev, cur))
			}
			prev = cur
		}
		p = out
	}
	return p
}
