// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package haunted

import (
	"fmt"

	"github.com/gviegas/haunted/engine"
	"github.com/gviegas/haunted/linear"
)

// factory creates the primitives of the scene.
// Textures are requested from ld and may still be
// loading when the meshes are first rendered.
type factory struct {
	ld *engine.Loader
}

func (f *factory) ref(name string, repeat linear.V2) engine.TexRef {
	if name == "" {
		return engine.TexRef{}
	}
	return engine.TexRef{Texture: f.ld.Load(name), Repeat: repeat}
}

var white = [4]float32{1, 1, 1, 1}

// material creates a Standard material from tex.
// The metalness factor is 1 only when a metalness
// source exists, so the map alone decides it.
// dscale and dbias only matter if tex.Height is set.
func (f *factory) material(tex *Textures, color [4]float32, dscale, dbias float32) (*engine.Material, error) {
	prop := engine.Standard{
		Color:             color,
		Map:               f.ref(tex.Color, tex.Repeat),
		AOIntensity:       1,
		Roughness:         1,
		DisplacementScale: dscale,
		DisplacementBias:  dbias,
	}
	if tex.ARM != "" {
		arm := f.ref(tex.ARM, tex.Repeat)
		prop.AOMap = arm
		prop.RoughnessMap = arm
		prop.MetalnessMap = arm
	} else {
		prop.AOMap = f.ref(tex.AO, tex.Repeat)
		prop.RoughnessMap = f.ref(tex.Roughness, tex.Repeat)
		prop.MetalnessMap = f.ref(tex.Metalness, tex.Repeat)
	}
	if prop.MetalnessMap.Texture != nil {
		prop.Metalness = 1
	}
	if tex.Alpha != "" {
		prop.AlphaMap = f.ref(tex.Alpha, linear.V2{})
		prop.Transparent = true
	}
	prop.DisplacementMap = f.ref(tex.Height, tex.Repeat)
	return engine.NewStandard(&prop)
}

func (f *factory) mesh(what string, geom *engine.Geometry, mat *engine.Material) (*engine.Mesh, error) {
	m, err := engine.NewMesh(geom, mat)
	if err != nil {
		return nil, fmt.Errorf("haunted: %s: %w", what, err)
	}
	return m, nil
}

// ground creates the ground plane, laid flat.
func (f *factory) ground(p *GroundParams) (*engine.Mesh, error) {
	geom, err := engine.NewPlane(p.Width, p.Height, p.Segments, p.Segments)
	if err != nil {
		return nil, fmt.Errorf("haunted: ground: %w", err)
	}
	mat, err := f.material(&p.Textures, white, p.DisplacementScale, p.DisplacementBias)
	if err != nil {
		return nil, fmt.Errorf("haunted: ground: %w", err)
	}
	m, err := f.mesh("ground", geom, mat)
	if err != nil {
		return nil, err
	}
	m.SetRotation(p.RotationX, 0, 0)
	return m, nil
}

// walls creates the house walls, resting on the
// ground.
func (f *factory) walls(p *WallParams) (*engine.Mesh, error) {
	geom, err := engine.NewBox(p.Width, p.Height, p.Depth)
	if err != nil {
		return nil, fmt.Errorf("haunted: walls: %w", err)
	}
	mat, err := f.material(&p.Textures, white, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("haunted: walls: %w", err)
	}
	m, err := f.mesh("walls", geom, mat)
	if err != nil {
		return nil, err
	}
	m.SetPosition(0, p.Height/2, 0)
	return m, nil
}

// roof creates the roof on top of walls whose
// height is wallHeight.
func (f *factory) roof(p *RoofParams, wallHeight float32) (*engine.Mesh, error) {
	geom, err := engine.NewCone(p.Radius, p.Height, p.Segments)
	if err != nil {
		return nil, fmt.Errorf("haunted: roof: %w", err)
	}
	mat, err := f.material(&p.Textures, white, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("haunted: roof: %w", err)
	}
	m, err := f.mesh("roof", geom, mat)
	if err != nil {
		return nil, err
	}
	m.SetPosition(0, wallHeight+p.Height/2, 0)
	m.SetRotation(0, p.RotationY, 0)
	return m, nil
}

// door creates the door plane.
func (f *factory) door(p *DoorParams) (*engine.Mesh, error) {
	geom, err := engine.NewPlane(p.Width, p.Height, p.Segments, p.Segments)
	if err != nil {
		return nil, fmt.Errorf("haunted: door: %w", err)
	}
	mat, err := f.material(&p.Textures, white, p.DisplacementScale, p.DisplacementBias)
	if err != nil {
		return nil, fmt.Errorf("haunted: door: %w", err)
	}
	m, err := f.mesh("door", geom, mat)
	if err != nil {
		return nil, err
	}
	m.SetPosition(p.Position[0], p.Position[1], p.Position[2])
	return m, nil
}

// bushMaterial creates the material shared by
// every bush.
func (f *factory) bushMaterial(p *BushParams) (*engine.Material, error) {
	r, g, b, err := engine.Hex(p.Color)
	if err != nil {
		return nil, fmt.Errorf("haunted: bush: %w", err)
	}
	mat, err := f.material(&p.Textures, [4]float32{r, g, b, 1}, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("haunted: bush: %w", err)
	}
	return mat, nil
}

// bush creates a bush at the given placement.
func (f *factory) bush(p *BushParams, geom *engine.Geometry, mat *engine.Material, at *BushPlacement) (*engine.Mesh, error) {
	m, err := f.mesh("bush", geom, mat)
	if err != nil {
		return nil, err
	}
	m.SetScale(at.Scale, at.Scale, at.Scale)
	m.SetPosition(at.Position[0], at.Position[1], at.Position[2])
	m.SetRotation(p.RotationX, 0, 0)
	return m, nil
}

// grave creates a grave at the given placement.
func (f *factory) grave(geom *engine.Geometry, mat *engine.Material, at *GravePlacement) (*engine.Mesh, error) {
	m, err := f.mesh("grave", geom, mat)
	if err != nil {
		return nil, err
	}
	m.SetPosition(at.Position[0], at.Position[1], at.Position[2])
	m.SetRotation(at.Rotation[0], at.Rotation[1], at.Rotation[2])
	return m, nil
}
