// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package engine

import (
	"github.com/gviegas/haunted/linear"
)

// Object is a transformable entity.
// It implements node.Interface, so anything that
// embeds an Object can be inserted into a Scene.
// The zero value for Object is not valid; one must
// call Init to initialize it.
type Object struct {
	pos linear.V3
	rot linear.V3
	scl linear.V3

	local linear.M4
	// Whether local must be recomputed.
	dirty bool
	// Whether local changed since the last
	// call to Local.
	changed bool
}

// Init initializes o to have no translation, no
// rotation and unit scale.
func (o *Object) Init() *Object {
	*o = Object{
		scl:     linear.V3{1, 1, 1},
		dirty:   true,
		changed: true,
	}
	return o
}

func (o *Object) touch() { o.dirty, o.changed = true, true }

// SetPosition sets the position of o relative to
// its parent.
func (o *Object) SetPosition(x, y, z float32) {
	o.pos = linear.V3{x, y, z}
	o.touch()
}

// Position returns the position of o.
func (o *Object) Position() linear.V3 { return o.pos }

// SetRotation sets the rotation of o as Euler angles
// in radians, applied in X, Y, Z order.
func (o *Object) SetRotation(x, y, z float32) {
	o.rot = linear.V3{x, y, z}
	o.touch()
}

// Rotation returns the Euler angles of o.
func (o *Object) Rotation() linear.V3 { return o.rot }

// SetScale sets the scale of o.
func (o *Object) SetScale(x, y, z float32) {
	o.scl = linear.V3{x, y, z}
	o.touch()
}

// Scale returns the scale of o.
func (o *Object) Scale() linear.V3 { return o.scl }

// Local returns the local transform of o.
// It implements node.Interface.
func (o *Object) Local() *linear.M4 {
	if o.dirty {
		var q linear.Q
		q.Euler(o.rot[0], o.rot[1], o.rot[2])
		o.local.TRS(&o.pos, &q, &o.scl)
		o.dirty = false
	}
	o.changed = false
	return &o.local
}

// Changed returns whether the local transform of o
// has changed since the last call to Local.
// It implements node.Interface.
func (o *Object) Changed() bool { return o.changed }

// Group is an Object that only serves to group other
// nodes under a common transform.
type Group struct {
	Object
}

// NewGroup creates a new group.
func NewGroup() *Group {
	g := new(Group)
	g.Init()
	return g
}
