// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package engine

import (
	"errors"

	"github.com/gviegas/haunted/linear"
)

const matPrefix = "material: "

func newMatErr(reason string) error { return errors.New(matPrefix + reason) }

// Material defines the material properties to be applied
// to geometry during rendering.
type Material struct {
	prop Standard
}

// TexRef identifies a texture and how many times it
// repeats across the texture coordinate range.
// A Repeat component of 0 is the same as 1.
type TexRef struct {
	Texture *Texture
	Repeat  linear.V2
}

// repeat returns the effective repeat factors of p.
func (p *TexRef) repeat() (u, v float32) {
	u, v = p.Repeat[0], p.Repeat[1]
	if u == 0 {
		u = 1
	}
	if v == 0 {
		v = 1
	}
	return
}

// sample samples p.Texture at the given texture
// coordinates, applying p.Repeat.
func (p *TexRef) sample(uv *linear.V2) linear.V4 {
	ru, rv := p.repeat()
	return p.Texture.Sample(uv[0]*ru, uv[1]*rv)
}

// ready returns whether p refers to a texture whose
// contents are available.
func (p *TexRef) ready() bool { return p.Texture != nil && p.Texture.Ready() }

// Standard defines properties of the metallic-roughness
// material model.
// ARM textures (ambient occlusion, roughness and
// metalness packed in R, G and B) can be referred to
// by AOMap, RoughnessMap and MetalnessMap at once.
type Standard struct {
	// Base color as straight-alpha RGBA.
	Color [4]float32
	Map   TexRef

	// Ambient occlusion is read from the R channel.
	AOMap       TexRef
	AOIntensity float32

	// Roughness is read from the G channel.
	RoughnessMap TexRef
	Roughness    float32

	// Metalness is read from the B channel.
	MetalnessMap TexRef
	Metalness    float32

	// Alpha is read from the G channel and
	// multiplied by Color[3].
	// It is only used if Transparent is set.
	AlphaMap    TexRef
	Transparent bool
	// Triangles whose alpha is less than AlphaTest
	// are discarded.
	AlphaTest float32

	// Vertices are moved along their normals by
	// R * DisplacementScale + DisplacementBias.
	DisplacementMap   TexRef
	DisplacementScale float32
	DisplacementBias  float32

	DoubleSided bool
}

// NewStandard creates a new material using the
// metallic-roughness model.
func NewStandard(prop *Standard) (*Material, error) {
	if err := prop.validate(); err != nil {
		return nil, err
	}
	return &Material{prop: *prop}, nil
}

// Standard returns the properties of m.
func (m *Material) Standard() Standard { return m.prop }

// Parameter validation for New* functions.

func (p *TexRef) validate(name string) error {
	if p.Repeat[0] < 0 || p.Repeat[1] < 0 {
		return newMatErr(name + ".Repeat less than 0.0")
	}
	return nil
}

func (p *Standard) validate() error {
	for _, x := range p.Color {
		if x < 0 || x > 1 {
			return newMatErr("Standard.Color outside [0.0, 1.0] interval")
		}
	}
	refs := [...]struct {
		ref  *TexRef
		name string
	}{
		{&p.Map, "Map"},
		{&p.AOMap, "AOMap"},
		{&p.RoughnessMap, "RoughnessMap"},
		{&p.MetalnessMap, "MetalnessMap"},
		{&p.AlphaMap, "AlphaMap"},
		{&p.DisplacementMap, "DisplacementMap"},
	}
	for _, r := range refs {
		if err := r.ref.validate(r.name); err != nil {
			return err
		}
	}
	if p.AOIntensity < 0 {
		return newMatErr("Standard.AOIntensity less than 0.0")
	}
	if p.Roughness < 0 || p.Roughness > 1 {
		return newMatErr("Standard.Roughness outside [0.0, 1.0] interval")
	}
	if p.Metalness < 0 || p.Metalness > 1 {
		return newMatErr("Standard.Metalness outside [0.0, 1.0] interval")
	}
	if p.AlphaTest < 0 || p.AlphaTest > 1 {
		return newMatErr("Standard.AlphaTest outside [0.0, 1.0] interval")
	}
	return nil
}
