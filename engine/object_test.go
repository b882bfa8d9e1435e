// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package engine

import (
	"math"
	"testing"

	"github.com/gviegas/haunted/linear"
	"github.com/gviegas/haunted/node"
)

func TestObject(t *testing.T) {
	var o Object
	o.Init()
	if !o.Changed() {
		t.Fatal("Object.Init: Changed should be true")
	}
	var id linear.M4
	id.I()
	if m := o.Local(); *m != id {
		t.Fatalf("Object.Local\nhave %v\nwant %v", *m, id)
	}
	if o.Changed() {
		t.Fatal("Object.Local: Changed should be false")
	}

	o.SetPosition(0, 1, 2.01)
	o.SetRotation(0, math.Pi/4, 0)
	o.SetScale(2, 2, 2)
	if !o.Changed() {
		t.Fatal("Object.Set*: Changed should be true")
	}
	if p := o.Position(); p != (linear.V3{0, 1, 2.01}) {
		t.Fatalf("Object.Position\nhave %v\nwant [0 1 2.01]", p)
	}
	if r := o.Rotation(); r != (linear.V3{0, math.Pi / 4, 0}) {
		t.Fatalf("Object.Rotation\nhave %v\nwant [0 π/4 0]", r)
	}
	if s := o.Scale(); s != (linear.V3{2, 2, 2}) {
		t.Fatalf("Object.Scale\nhave %v\nwant [2 2 2]", s)
	}
	m := o.Local()
	var p linear.V3
	m.Point(&p, &linear.V3{1, 0, 0})
	// (1,0,0) scaled by 2, rotated π/4 about Y and
	// then translated.
	want := linear.V3{float32(math.Sqrt2), 1, 2.01 - float32(math.Sqrt2)}
	for i := range p {
		if math.Abs(float64(p[i]-want[i])) > 1e-5 {
			t.Fatalf("Object.Local: transformed point\nhave %v\nwant %v", p, want)
		}
	}
}

func TestGroup(t *testing.T) {
	var s Scene
	g := NewGroup()
	g.SetPosition(1, 0, 0)
	gn := s.Insert(g, node.Nil)

	l := (&PointLight{Position: linear.V3{0, 2, 0}, Intensity: 1, R: 1, G: 1, B: 1}).Light()
	ln := s.Insert(l, gn)
	s.Update()

	var p linear.V3
	s.World(ln).Point(&p, &linear.V3{})
	if p != (linear.V3{1, 2, 0}) {
		t.Fatalf("Scene.World: light position\nhave %v\nwant [1 2 0]", p)
	}
	if n := s.Lights(); n != 1 {
		t.Fatalf("Scene.Lights\nhave %d\nwant 1", n)
	}
	if n := s.Meshes(); n != 0 {
		t.Fatalf("Scene.Meshes\nhave %d\nwant 0", n)
	}

	g.SetPosition(-1, 0, 0)
	s.Update()
	s.World(ln).Point(&p, &linear.V3{})
	if p != (linear.V3{-1, 2, 0}) {
		t.Fatalf("Scene.World: light position after move\nhave %v\nwant [-1 2 0]", p)
	}
}

func TestLight(t *testing.T) {
	amb := (&AmbientLight{Intensity: 0.5, R: 1, G: 1, B: 1}).Light()
	if !amb.IsAmbient() || amb.IsDistant() || amb.IsPoint() {
		t.Fatal("AmbientLight.Light: wrong light type")
	}
	if i := amb.Intensity(); i != 0.5 {
		t.Fatalf("Light.Intensity\nhave %v\nwant 0.5", i)
	}

	dir := linear.V3{0, -1, 0}
	dl := (&DistantLight{Direction: dir, Intensity: 1.5, R: 1, G: 0.5, B: 0}).Light()
	if !dl.IsDistant() {
		t.Fatal("DistantLight.Light: wrong light type")
	}
	if d := dl.Direction(); d != dir {
		t.Fatalf("Light.Direction\nhave %v\nwant %v", d, dir)
	}
	if r, g, b := dl.Color(); r != 1 || g != 0.5 || b != 0 {
		t.Fatalf("Light.Color\nhave %v, %v, %v\nwant 1, 0.5, 0", r, g, b)
	}

	pl := (&PointLight{Position: linear.V3{3, 2, -8}, Range: 10, Intensity: -1}).Light()
	if !pl.IsPoint() {
		t.Fatal("PointLight.Light: wrong light type")
	}
	if p := pl.Position(); p != (linear.V3{3, 2, -8}) {
		t.Fatalf("Light.Position\nhave %v\nwant [3 2 -8]", p)
	}
	if i := pl.Intensity(); i != 0 {
		t.Fatalf("Light.Intensity: negative input\nhave %v\nwant 0", i)
	}
	if r := pl.Range(); r != 10 {
		t.Fatalf("Light.Range\nhave %v\nwant 10", r)
	}
}

func TestHex(t *testing.T) {
	r, g, b, err := Hex("#ccffcc")
	if err != nil {
		t.Fatalf("Hex failed:\n%#v", err)
	}
	if r != 0.8 || g != 1 || b != 0.8 {
		t.Fatalf("Hex(#ccffcc)\nhave %v, %v, %v\nwant 0.8, 1, 0.8", r, g, b)
	}
	if r, g, b, _ = Hex("#fff"); r != 1 || g != 1 || b != 1 {
		t.Fatalf("Hex(#fff)\nhave %v, %v, %v\nwant 1, 1, 1", r, g, b)
	}
	if _, _, _, err = Hex("ccffcc"); err == nil {
		t.Fatal("Hex: expected error")
	}
}

func TestCamera(t *testing.T) {
	cam := NewCamera(75, 800.0/600.0, 0.1, 100)
	if f := cam.Fov(); f != 75 {
		t.Fatalf("Camera.Fov\nhave %v\nwant 75", f)
	}
	proj := *cam.Projection()
	cam.SetAspect(2)
	if *cam.Projection() != proj {
		t.Fatal("Camera.SetAspect: projection should not change before UpdateProjection")
	}
	cam.UpdateProjection()
	p := *cam.Projection()
	if p == proj {
		t.Fatal("Camera.UpdateProjection: projection should change")
	}
	if r := p[1][1] / p[0][0]; math.Abs(float64(r)-2) > 1e-5 {
		t.Fatalf("Camera.Projection: y/x scale\nhave %v\nwant 2", r)
	}
	cam.UpdateProjection()
	if *cam.Projection() != p {
		t.Fatal("Camera.UpdateProjection: should be idempotent")
	}

	cam.SetPosition(&linear.V3{4, 2, 5})
	cam.LookAt(&linear.V3{})
	view := cam.View()
	var o linear.V3
	view.Point(&o, &linear.V3{})
	// The target lies on the -Z axis of view space,
	// at the camera's distance.
	dist := float32(math.Sqrt(16 + 4 + 25))
	if math.Abs(float64(o[0])) > 1e-5 || math.Abs(float64(o[1])) > 1e-5 || math.Abs(float64(o[2]+dist)) > 1e-4 {
		t.Fatalf("Camera.View: target in view space\nhave %v\nwant [0 0 %v]", o, -dist)
	}

	// Looking straight down must not degenerate.
	cam.SetPosition(&linear.V3{0, 10, 0})
	view = cam.View()
	view.Point(&o, &linear.V3{})
	if math.Abs(float64(o[2]+10)) > 1e-4 {
		t.Fatalf("Camera.View: looking down\nhave %v\nwant [0 0 -10]", o)
	}
}
