// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package engine

import (
	"errors"
)

const meshPrefix = "mesh: "

// Mesh is a Geometry paired with a Material.
// It is an Object and thus can be placed in a Scene.
type Mesh struct {
	Object
	geom *Geometry
	mat  *Material
}

// NewMesh creates a new mesh.
func NewMesh(geom *Geometry, mat *Material) (*Mesh, error) {
	switch {
	case geom == nil:
		return nil, errors.New(meshPrefix + "nil Geometry in call to NewMesh")
	case mat == nil:
		return nil, errors.New(meshPrefix + "nil Material in call to NewMesh")
	case len(geom.idx)%3 != 0:
		return nil, errors.New(meshPrefix + "index count not a multiple of 3")
	}
	m := &Mesh{geom: geom, mat: mat}
	m.Init()
	return m, nil
}

// Geometry returns the geometry of m.
func (m *Mesh) Geometry() *Geometry { return m.geom }

// Material returns the material of m.
func (m *Mesh) Material() *Material { return m.mat }
