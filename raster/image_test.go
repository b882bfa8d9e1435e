// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package raster

import (
	"image"
	"image/color"
	"testing"
)

var _ Target = (*Image)(nil)

func white(x, y float32) Vertex { return Vertex{X: x, Y: y, R: 1, G: 1, B: 1, A: 1} }

// near compares colors allowing for coverage rounding.
func near(a, b color.RGBA) bool {
	d := func(x, y uint8) bool { return int(x)-int(y) <= 2 && int(y)-int(x) <= 2 }
	return d(a.R, b.R) && d(a.G, b.G) && d(a.B, b.B) && d(a.A, b.A)
}

func TestImageResize(t *testing.T) {
	m := NewImage(8, 6)
	if w, h := m.Size(); w != 8 || h != 6 {
		t.Fatalf("Image.Size\nhave %d, %d\nwant 8, 6", w, h)
	}
	rgba := m.RGBA()
	m.Resize(8, 6)
	if m.RGBA() != rgba {
		t.Fatal("Image.Resize: same size should not reallocate")
	}
	m.Resize(16, 2)
	if w, h := m.Size(); w != 16 || h != 2 {
		t.Fatalf("Image.Size\nhave %d, %d\nwant 16, 2", w, h)
	}
}

func TestImageClear(t *testing.T) {
	m := NewImage(4, 4)
	c := color.RGBA{10, 20, 30, 255}
	m.Clear(c)
	if have := m.RGBA().RGBAAt(3, 3); have != c {
		t.Fatalf("Image.Clear\nhave %v\nwant %v", have, c)
	}
}

func TestImageDrawTriangles(t *testing.T) {
	m := NewImage(10, 10)
	m.Clear(color.Black)
	vs := []Vertex{white(0, 0), white(10, 0), white(0, 10)}
	for i := range vs {
		vs[i].G, vs[i].B = 0, 0
	}
	m.DrawTriangles(vs, []uint16{0, 1, 2}, nil)

	if have := m.RGBA().RGBAAt(1, 1); !near(have, color.RGBA{255, 0, 0, 255}) {
		t.Fatalf("Image.DrawTriangles: inside\nhave %v\nwant red", have)
	}
	if have := m.RGBA().RGBAAt(9, 9); !near(have, color.RGBA{0, 0, 0, 255}) {
		t.Fatalf("Image.DrawTriangles: outside\nhave %v\nwant black", have)
	}
}

func TestImageDrawTrianglesClipped(t *testing.T) {
	m := NewImage(10, 10)
	m.Clear(color.Black)
	// Larger than the image in every direction.
	vs := []Vertex{white(-20, -20), white(40, -20), white(-20, 40)}
	m.DrawTriangles(vs, []uint16{0, 1, 2}, nil)
	for _, p := range [...]image.Point{{0, 0}, {9, 0}, {0, 9}, {5, 5}} {
		if have := m.RGBA().RGBAAt(p.X, p.Y); !near(have, color.RGBA{255, 255, 255, 255}) {
			t.Fatalf("Image.DrawTriangles: clipped at %v\nhave %v\nwant white", p, have)
		}
	}

	// Entirely outside.
	m.Clear(color.Black)
	vs = []Vertex{white(-5, -5), white(-1, -5), white(-5, -1)}
	m.DrawTriangles(vs, []uint16{0, 1, 2}, nil)
	if have := m.RGBA().RGBAAt(0, 0); !near(have, color.RGBA{0, 0, 0, 255}) {
		t.Fatalf("Image.DrawTriangles: outside\nhave %v\nwant black", have)
	}
}

func TestImageDrawTrianglesTinted(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{0, 200, 0, 255})
	src.SetNRGBA(1, 0, color.NRGBA{0, 100, 0, 255})
	if have := Mean(src); have != (color.NRGBA{0, 150, 0, 255}) {
		t.Fatalf("Mean\nhave %v\nwant {0 150 0 255}", have)
	}

	m := NewImage(4, 4)
	m.Clear(color.Black)
	vs := []Vertex{white(0, 0), white(4, 0), white(4, 4), white(0, 4)}
	m.DrawTriangles(vs, []uint16{0, 1, 2, 0, 2, 3}, src)
	if have := m.RGBA().RGBAAt(2, 1); !near(have, color.RGBA{0, 150, 0, 255}) {
		t.Fatalf("Image.DrawTriangles: tinted\nhave %v\nwant {0 150 0 255}", have)
	}
}

func TestClip(t *testing.T) {
	p := clip([][2]float32{{-1, 1}, {2, 1}, {2, 3}}, 4, 2)
	for _, q := range p {
		if q[0] < 0 || q[0] > 4 || q[1] < 0 || q[1] > 2 {
			t.Fatalf("clip: point out of bounds\nhave %v", p)
		}
	}
	if len(p) < 3 {
		t.Fatalf("clip: len\nhave %d\nwant >= 3", len(p))
	}
	if p := clip([][2]float32{{5, 5}, {6, 5}, {6, 6}}, 4, 2); len(p) != 0 {
		t.Fatalf("clip: outside\nhave %v\nwant []", p)
	}
}
