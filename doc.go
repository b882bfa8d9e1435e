// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package haunted builds and renders a static haunted
// house: a textured ground, a house with walls, roof
// and door, four bushes, a ring of randomly placed
// graves and two lights.
//
// A Context holds the scene, the camera, the renderer
// and the orbit controls. Build populates the scene,
// OnResize adapts the view to a new viewport and Run
// drives the frame loop through package wsi.
package haunted
