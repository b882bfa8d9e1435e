// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package engine

import (
	"github.com/gviegas/haunted/linear"
)

const (
	ambientLight = iota
	distantLight
	pointLight
)

// Light defines a light source.
// Lights are Objects: they are placed in a Scene
// and transformed along with their ancestors.
// The zero value for Light is not valid; one must
// call AmbientLight.Light, DistantLight.Light or
// PointLight.Light to create an initialized Light.
type Light struct {
	Object
	typ       int
	dir       linear.V3
	intensity float32
	rng       float32
	color     linear.V3
}

// SetDirection sets the direction of l.
// It does not normalize d.
// Only applies to distant lights.
func (l *Light) SetDirection(d *linear.V3) { l.dir = *d }

// Direction returns the direction of l.
// Only applies to distant lights.
func (l *Light) Direction() linear.V3 { return l.dir }

// SetIntensity sets the intensity of l.
func (l *Light) SetIntensity(i float32) { l.intensity = max(0, i) }

// Intensity returns the intensity of l.
func (l *Light) Intensity() float32 { return l.intensity }

// SetRange sets the falloff range of l.
// Only applies to point lights.
func (l *Light) SetRange(r float32) { l.rng = r }

// Range returns the falloff range of l.
// Only applies to point lights.
func (l *Light) Range() float32 { return l.rng }

// SetColor sets the RGB color of l.
func (l *Light) SetColor(r, g, b float32) { l.color = linear.V3{r, g, b} }

// Color returns the RGB color of l.
func (l *Light) Color() (r, g, b float32) {
	r, g, b = l.color[0], l.color[1], l.color[2]
	return
}

// IsAmbient returns whether l is an ambient light.
func (l *Light) IsAmbient() bool { return l.typ == ambientLight }

// IsDistant returns whether l is a distant light.
func (l *Light) IsDistant() bool { return l.typ == distantLight }

// IsPoint returns whether l is a point light.
func (l *Light) IsPoint() bool { return l.typ == pointLight }

// AmbientLight is a light that illuminates every
// surface equally, regardless of orientation.
type AmbientLight struct {
	Intensity float32
	R, G, B   float32
}

// Light creates the light source described by t.
// t.R/G/B must be in the range [0, 1].
func (t *AmbientLight) Light() *Light {
	light := &Light{typ: ambientLight}
	light.Init()
	light.SetIntensity(t.Intensity)
	light.SetColor(t.R, t.G, t.B)
	return light
}

// DistantLight is a directional light.
// The light is emitted in the given Direction.
// It behaves as if located infinitely far way.
type DistantLight struct {
	Direction linear.V3
	Intensity float32
	R, G, B   float32
}

// Light creates the light source described by t.
// t.Direction must have length 1.
// t.R/G/B must be in the range [0, 1].
func (t *DistantLight) Light() *Light {
	light := &Light{typ: distantLight}
	light.Init()
	light.SetIntensity(t.Intensity)
	light.SetColor(t.R, t.G, t.B)
	light.SetDirection(&t.Direction)
	return light
}

// PointLight is an omnidirectional, positional light.
// The light is emitted in all directions from the
// given Position.
// Range determines the area affected by the light.
type PointLight struct {
	Position  linear.V3
	Range     float32
	Intensity float32
	R, G, B   float32
}

// Light creates the light source described by t.
// t.R/G/B must be in the range [0, 1].
// t.Range may be set to 0 or less to indicate an
// infinite range.
func (t *PointLight) Light() *Light {
	light := &Light{typ: pointLight}
	light.Init()
	light.SetIntensity(t.Intensity)
	light.SetRange(t.Range)
	light.SetColor(t.R, t.G, t.B)
	light.SetPosition(t.Position[0], t.Position[1], t.Position[2])
	return light
}
