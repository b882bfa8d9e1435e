// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package haunted

// MaxPixelRatio is the largest pixel ratio that
// OnResize applies.
const MaxPixelRatio = 2

// OnResize adapts the camera and the renderer to a
// viewport of width by height logical pixels on a
// device whose pixel ratio is deviceRatio, then
// renders a frame.
// The applied pixel ratio is min(deviceRatio, 2).
// Non-positive sizes (e.g., a minimized window) are
// ignored.
func (c *Context) OnResize(width, height int, deviceRatio float64) error {
	if width <= 0 || height <= 0 {
		return nil
	}
	ratio := min(deviceRatio, MaxPixelRatio)
	c.viewport = Viewport{width, height, ratio}
	c.Camera.SetAspect(float32(width) / float32(height))
	c.Camera.UpdateProjection()
	c.Renderer.SetSize(width, height)
	c.Renderer.SetPixelRatio(ratio)
	c.Controls.SetSize(width, height)
	return c.Renderer.Render(c.Scene, c.Camera)
}
