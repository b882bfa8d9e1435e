// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package controls implements camera controls driven
// by wsi input events.
package controls

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gviegas/haunted/engine"
	"github.com/gviegas/haunted/linear"
	"github.com/gviegas/haunted/wsi"
)

const (
	stateNone = iota
	stateRotate
	statePan
	stateDolly
)

const eps = 1e-6

// Orbit moves a camera around a target point.
// Left-dragging rotates, right-dragging (or dragging
// with Shift, Ctrl or Meta held) pans, middle-dragging
// and scrolling dolly, and the arrow keys pan.
// Input only accumulates motion; the camera is moved
// by Update.
// Orbit implements wsi.PointerHandler and
// wsi.KeyboardHandler.
type Orbit struct {
	// Target is the point the camera orbits.
	Target linear.V3

	// EnableDamping smooths motion over successive
	// calls to Update.
	EnableDamping bool
	// DampingFactor is the fraction of the pending
	// motion applied by each Update when damping is
	// enabled.
	DampingFactor float32

	EnableRotate bool
	EnableZoom   bool
	EnablePan    bool
	RotateSpeed  float32
	ZoomSpeed    float32
	PanSpeed     float32
	// KeyPanSpeed is the number of pixels panned
	// per arrow key press.
	KeyPanSpeed float32

	MinDistance float32
	MaxDistance float32
	// Polar angles are measured from +Y.
	MinPolarAngle float32
	MaxPolarAngle float32

	cam    *engine.Camera
	width  int
	height int
	state  int
	x, y   int
	mods   wsi.Modifier
	azim   float32
	polar  float32
	scale  float32
	pan    linear.V3
}

// NewOrbit creates new orbit controls for cam.
// The initial target is the point cam is looking at.
func NewOrbit(cam *engine.Camera) *Orbit {
	return &Orbit{
		Target:        cam.Target(),
		DampingFactor: 0.05,
		EnableRotate:  true,
		EnableZoom:    true,
		EnablePan:     true,
		RotateSpeed:   1,
		ZoomSpeed:     1,
		PanSpeed:      1,
		KeyPanSpeed:   7,
		MaxDistance:   float32(math.Inf(1)),
		MaxPolarAngle: math.Pi,
		cam:           cam,
		width:         1,
		height:        1,
		scale:         1,
	}
}

// Camera returns the camera controlled by o.
func (o *Orbit) Camera() *engine.Camera { return o.cam }

// SetSize sets the size of the viewport in logical
// pixels.
// Pointer motion is scaled by it.
func (o *Orbit) SetSize(width, height int) {
	o.width = max(width, 1)
	o.height = max(height, 1)
}

// Distance returns the distance from the camera to
// the target.
func (o *Orbit) Distance() float32 {
	var d linear.V3
	p := o.cam.Position()
	d.Sub(&p, &o.Target)
	return d.Len()
}

// Update moves the camera by the motion accumulated
// since the last call.
// It returns whether the camera moved.
func (o *Orbit) Update() bool {
	pos := o.cam.Position()
	var off linear.V3
	off.Sub(&pos, &o.Target)
	if off.Len() < eps {
		return false
	}
	r, polar, azim := mgl32.CartesianToSpherical(mgl32.Vec3{off[2], off[0], off[1]})

	f := float32(1)
	if o.EnableDamping {
		f = o.DampingFactor
	}
	azim += o.azim * f
	polar += o.polar * f
	polar = mgl32.Clamp(polar, o.MinPolarAngle, o.MaxPolarAngle)
	polar = mgl32.Clamp(polar, eps, math.Pi-eps)
	r = mgl32.Clamp(r*o.scale, o.MinDistance, o.MaxDistance)

	target := o.Target
	var pan linear.V3
	pan.Scale(f, &o.pan)
	o.Target.Add(&o.Target, &pan)

	v := mgl32.SphericalToCartesian(r, polar, azim)
	off = linear.V3{v[1], v[2], v[0]}
	var npos linear.V3
	npos.Add(&o.Target, &off)
	o.cam.SetPosition(&npos)
	o.cam.LookAt(&o.Target)

	if o.EnableDamping {
		o.azim *= 1 - f
		o.polar *= 1 - f
		o.pan.Scale(1-f, &o.pan)
	} else {
		o.azim, o.polar = 0, 0
		o.pan = linear.V3{}
	}
	o.scale = 1

	var d linear.V3
	d.Sub(&npos, &pos)
	moved := d.Dot(&d) > eps
	d.Sub(&o.Target, &target)
	return moved || d.Dot(&d) > eps
}

func (o *Orbit) rotate(dx, dy float32) {
	h := float32(o.height)
	o.azim -= 2 * math.Pi * dx / h * o.RotateSpeed
	o.polar -= 2 * math.Pi * dy / h * o.RotateSpeed
}

// panBy pans by dx, dy pixels.
func (o *Orbit) panBy(dx, dy float32) {
	view := o.cam.View()
	right := linear.V3{view[0][0], view[1][0], view[2][0]}
	up := linear.V3{view[0][1], view[1][1], view[2][1]}
	dist := o.Distance() * float32(math.Tan(float64(o.cam.Fov())*math.Pi/360))
	h := float32(o.height)
	right.Scale(-2*dx*dist/h, &right)
	up.Scale(2*dy*dist/h, &up)
	o.pan.Add(&o.pan, &right)
	o.pan.Add(&o.pan, &up)
}

func (o *Orbit) zoomScale() float32 {
	return float32(math.Pow(0.95, float64(o.ZoomSpeed)))
}

func (o *Orbit) dollyIn()  { o.scale *= o.zoomScale() }
func (o *Orbit) dollyOut() { o.scale /= o.zoomScale() }

// PointerIn implements wsi.PointerHandler.
func (o *Orbit) PointerIn(_ wsi.Window, x, y int) { o.x, o.y = x, y }

// PointerOut implements wsi.PointerHandler.
func (o *Orbit) PointerOut(wsi.Window) { o.state = stateNone }

// PointerMotion implements wsi.PointerHandler.
func (o *Orbit) PointerMotion(newX, newY int) {
	dx, dy := float32(newX-o.x), float32(newY-o.y)
	o.x, o.y = newX, newY
	switch o.state {
	case stateRotate:
		o.rotate(dx, dy)
	case statePan:
		o.panBy(dx*o.PanSpeed, dy*o.PanSpeed)
	case stateDolly:
		switch {
		case dy > 0:
			o.dollyOut()
		case dy < 0:
			o.dollyIn()
		}
	}
}

// PointerButton implements wsi.PointerHandler.
func (o *Orbit) PointerButton(btn wsi.Button, pressed bool, x, y int) {
	o.x, o.y = x, y
	if !pressed {
		o.state = stateNone
		return
	}
	switch btn {
	case wsi.BtnLeft:
		if o.mods&(wsi.ModShift|wsi.ModCtrl|wsi.ModMeta) != 0 {
			if o.EnablePan {
				o.state = statePan
			}
		} else if o.EnableRotate {
			o.state = stateRotate
		}
	case wsi.BtnRight:
		if o.EnablePan {
			o.state = statePan
		}
	case wsi.BtnMiddle:
		if o.EnableZoom {
			o.state = stateDolly
		}
	}
}

// PointerScroll implements wsi.PointerHandler.
func (o *Orbit) PointerScroll(_, dy float64) {
	if !o.EnableZoom || o.state != stateNone {
		return
	}
	switch {
	case dy > 0:
		o.dollyIn()
	case dy < 0:
		o.dollyOut()
	}
}

// KeyboardIn implements wsi.KeyboardHandler.
func (o *Orbit) KeyboardIn(wsi.Window) {}

// KeyboardOut implements wsi.KeyboardHandler.
func (o *Orbit) KeyboardOut(wsi.Window) {
	o.mods = 0
	o.state = stateNone
}

// KeyboardKey implements wsi.KeyboardHandler.
func (o *Orbit) KeyboardKey(key wsi.Key, pressed bool, modMask wsi.Modifier) {
	o.mods = modMask
	if !pressed || !o.EnablePan {
		return
	}
	switch key {
	case wsi.KeyUp:
		o.panBy(0, o.KeyPanSpeed)
	case wsi.KeyDown:
		o.panBy(0, -o.KeyPanSpeed)
	case wsi.KeyLeft:
		o.panBy(o.KeyPanSpeed, 0)
	case wsi.KeyRight:
		o.panBy(-o.KeyPanSpeed, 0)
	}
}
