// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package engine

import (
	"image/color"

	"github.com/gviegas/haunted/node"
)

// Scene is a node graph holding the objects to be
// rendered.
// Meshes and Lights are rendered. Other node.Interface
// values (such as Groups) only contribute their
// transforms.
type Scene struct {
	node.Graph
	// Background color.
	// The Renderer's clear color is used when
	// Background is nil.
	Background color.Color
}

// NewScene creates a new, empty scene.
func NewScene() *Scene { return new(Scene) }

// Meshes returns the number of meshes in s.
func (s *Scene) Meshes() (n int) {
	for x := range s.All(node.Nil) {
		if _, ok := s.Get(x).(*Mesh); ok {
			n++
		}
	}
	return
}

// Lights returns the number of lights in s.
func (s *Scene) Lights() (n int) {
	for x := range s.All(node.Nil) {
		if _, ok := s.Get(x).(*Light); ok {
			n++
		}
	}
	return
}
