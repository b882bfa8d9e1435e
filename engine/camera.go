// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package engine

import (
	"math"

	"github.com/gviegas/haunted/linear"
)

// Camera is a perspective camera.
// Changes to the projection parameters only take
// effect after a call to UpdateProjection.
type Camera struct {
	fov, aspect, near, far float32
	proj                   linear.M4

	pos, target, up linear.V3
}

// NewCamera creates a new perspective camera.
// fov is the vertical field of view in degrees.
// The camera is placed at the origin looking down
// the -Z axis.
func NewCamera(fov, aspect, near, far float32) *Camera {
	c := &Camera{
		fov:    fov,
		aspect: aspect,
		near:   near,
		far:    far,
		target: linear.V3{0, 0, -1},
		up:     linear.V3{0, 1, 0},
	}
	c.UpdateProjection()
	return c
}

// Fov returns the vertical field of view in degrees.
func (c *Camera) Fov() float32 { return c.fov }

// SetFov sets the vertical field of view in degrees.
func (c *Camera) SetFov(fov float32) { c.fov = fov }

// Aspect returns the aspect ratio of c.
func (c *Camera) Aspect() float32 { return c.aspect }

// SetAspect sets the aspect ratio of c.
func (c *Camera) SetAspect(aspect float32) { c.aspect = aspect }

// Near returns the distance to the near plane.
func (c *Camera) Near() float32 { return c.near }

// Far returns the distance to the far plane.
func (c *Camera) Far() float32 { return c.far }

// UpdateProjection recomputes the projection
// transform from the current parameters.
func (c *Camera) UpdateProjection() {
	yfov := float32(float64(c.fov) * math.Pi / 180)
	c.proj.Perspective(yfov, c.aspect, c.near, c.far)
}

// Projection returns the projection transform of c.
func (c *Camera) Projection() *linear.M4 { return &c.proj }

// SetPosition sets the position of c.
// It does not change the point c is looking at.
func (c *Camera) SetPosition(p *linear.V3) { c.pos = *p }

// Position returns the position of c.
func (c *Camera) Position() linear.V3 { return c.pos }

// LookAt makes c look at target.
func (c *Camera) LookAt(target *linear.V3) { c.target = *target }

// Target returns the point c is looking at.
func (c *Camera) Target() linear.V3 { return c.target }

// View returns the view transform of c.
// If the camera's position and target coincide, it
// returns a translation by the negated position.
func (c *Camera) View() (m linear.M4) {
	var f linear.V3
	f.Sub(&c.target, &c.pos)
	if f.Len() < 1e-6 {
		m.Translate(-c.pos[0], -c.pos[1], -c.pos[2])
		return
	}
	up := c.up
	var s linear.V3
	if s.Cross(&f, &up); s.Len() < 1e-6 {
		up = linear.V3{0, 0, 1}
	}
	m.LookAt(&c.pos, &c.target, &up)
	return
}
