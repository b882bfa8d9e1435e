// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package engine

import (
	"math"
	"strings"
	"testing"

	"github.com/gviegas/haunted/linear"
)

// checkGeometry checks that g has consistent attribute
// counts, valid indices and counter-clockwise faces.
func checkGeometry(t *testing.T, g *Geometry, nvert, nidx int) {
	t.Helper()
	if n := g.Len(); n != nvert {
		t.Fatalf("Geometry.Len\nhave %d\nwant %d", n, nvert)
	}
	if len(g.Normals()) != nvert || len(g.UVs()) != nvert || len(g.Positions()) != nvert {
		t.Fatal("Geometry: attribute count mismatch")
	}
	if n := len(g.Indices()); n != nidx {
		t.Fatalf("len(Geometry.Indices)\nhave %d\nwant %d", n, nidx)
	}
	pos, norm, idx := g.Positions(), g.Normals(), g.Indices()
	for i := 0; i < len(idx); i += 3 {
		a, b, c := int(idx[i]), int(idx[i+1]), int(idx[i+2])
		if a >= nvert || b >= nvert || c >= nvert {
			t.Fatalf("Geometry.Indices: index out of range at %d", i)
		}
		var ab, ac, n, avg linear.V3
		ab.Sub(&pos[b], &pos[a])
		ac.Sub(&pos[c], &pos[a])
		n.Cross(&ab, &ac)
		avg.Add(&norm[a], &norm[b])
		avg.Add(&avg, &norm[c])
		if n.Dot(&avg) <= 0 {
			t.Fatalf("Geometry: face %d is not counter-clockwise\npositions %v %v %v\nnormals %v %v %v",
				i/3, pos[a], pos[b], pos[c], norm[a], norm[b], norm[c])
		}
	}
	for i, uv := range g.UVs() {
		if uv[0] < -0.5 || uv[0] > 1.5 || uv[1] < 0 || uv[1] > 1 {
			t.Fatalf("Geometry.UVs: [%d] out of range: %v", i, uv)
		}
	}
}

func TestPlane(t *testing.T) {
	g, err := NewPlane(20, 20, 100, 100)
	if err != nil {
		t.Fatalf("NewPlane failed:\n%#v", err)
	}
	checkGeometry(t, g, 101*101, 100*100*6)
	for i, n := range g.Normals() {
		if n != (linear.V3{0, 0, 1}) {
			t.Fatalf("NewPlane: Normals[%d]\nhave %v\nwant [0 0 1]", i, n)
		}
	}
	if p := g.Positions()[0]; p != (linear.V3{-10, 10, 0}) {
		t.Fatalf("NewPlane: Positions[0]\nhave %v\nwant [-10 10 0]", p)
	}
	if uv := g.UVs()[0]; uv != (linear.V2{0, 1}) {
		t.Fatalf("NewPlane: UVs[0]\nhave %v\nwant [0 1]", uv)
	}

	for _, x := range [...]struct {
		w, h     float32
		ws, hs   int
		contains string
	}{
		{0, 1, 1, 1, "size"},
		{1, -1, 1, 1, "size"},
		{1, 1, 0, 1, "segments"},
		{1, 1, 300, 300, "too many vertices"},
	} {
		if _, err := NewPlane(x.w, x.h, x.ws, x.hs); err == nil ||
			!strings.HasPrefix(err.Error(), geomPrefix) || !strings.Contains(err.Error(), x.contains) {
			t.Fatalf("NewPlane(%v, %v, %d, %d): unexpected error\nhave %v\nwant %s...%s",
				x.w, x.h, x.ws, x.hs, err, geomPrefix, x.contains)
		}
	}
}

func TestBox(t *testing.T) {
	g, err := NewBox(4, 2.5, 4)
	if err != nil {
		t.Fatalf("NewBox failed:\n%#v", err)
	}
	checkGeometry(t, g, 24, 36)
	for i, p := range g.Positions() {
		if math.Abs(float64(p[0])) != 2 || math.Abs(float64(p[1])) != 1.25 || math.Abs(float64(p[2])) != 2 {
			t.Fatalf("NewBox: Positions[%d] not on a corner: %v", i, p)
		}
		n := g.Normals()[i]
		if d := p.Dot(&n); d <= 0 {
			t.Fatalf("NewBox: Normals[%d] not facing outward: %v", i, n)
		}
	}
	if _, err := NewBox(1, 0, 1); err == nil {
		t.Fatal("NewBox: expected error")
	}
}

func TestCone(t *testing.T) {
	g, err := NewCone(3.5, 1.5, 4)
	if err != nil {
		t.Fatalf("NewCone failed:\n%#v", err)
	}
	checkGeometry(t, g, 19, 24)
	if p := g.Positions()[0]; p != (linear.V3{0, 0.75, 0}) {
		t.Fatalf("NewCone: apex\nhave %v\nwant [0 0.75 0]", p)
	}
	// First rim vertex lies on +Z.
	if p := g.Positions()[5]; p != (linear.V3{0, -0.75, 3.5}) {
		t.Fatalf("NewCone: first rim vertex\nhave %v\nwant [0 -0.75 3.5]", p)
	}
	var minY, maxY float32
	for _, p := range g.Positions() {
		minY, maxY = min(minY, p[1]), max(maxY, p[1])
	}
	if minY != -0.75 || maxY != 0.75 {
		t.Fatalf("NewCone: Y extent\nhave [%v, %v]\nwant [-0.75, 0.75]", minY, maxY)
	}
	if _, err := NewCone(1, 1, 2); err == nil {
		t.Fatal("NewCone: expected error")
	}
}

func TestSphere(t *testing.T) {
	g, err := NewSphere(1, 16, 16)
	if err != nil {
		t.Fatalf("NewSphere failed:\n%#v", err)
	}
	checkGeometry(t, g, 17*17, (16*16*2-2*16)*3)
	for i, p := range g.Positions() {
		if l := p.Len(); math.Abs(float64(l)-1) > 1e-5 {
			t.Fatalf("NewSphere: |Positions[%d]|\nhave %v\nwant 1", i, l)
		}
	}
	if _, err := NewSphere(-1, 16, 16); err == nil {
		t.Fatal("NewSphere: expected error")
	}
	if _, err := NewSphere(1, 2, 16); err == nil {
		t.Fatal("NewSphere: expected error")
	}
}
