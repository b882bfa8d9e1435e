// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package haunted

import (
	"github.com/gviegas/haunted/wsi"
)

// Tick advances the orbit controls by one step and
// renders a frame.
func (c *Context) Tick() error {
	c.Controls.Update()
	return c.Renderer.Render(c.Scene, c.Camera)
}

// Run renders ctx into win until the window is
// closed.
// It installs ctx as the wsi event handler for the
// duration of the call.
func Run(ctx *Context, win wsi.Window) error {
	ctx.win = win
	wsi.SetWindowHandler(ctx)
	wsi.SetKeyboardHandler(ctx)
	wsi.SetPointerHandler(ctx)
	defer func() {
		wsi.SetWindowHandler(nil)
		wsi.SetKeyboardHandler(nil)
		wsi.SetPointerHandler(nil)
		ctx.win = nil
	}()
	return wsi.Run(ctx.Tick)
}

// WindowClose implements wsi.WindowHandler.
func (c *Context) WindowClose(win wsi.Window) { win.Close() }

// WindowResize implements wsi.WindowHandler.
func (c *Context) WindowResize(win wsi.Window, width, height int) {
	if err := c.OnResize(width, height, win.Scale()); err != nil {
		c.log.Print(err)
	}
}

// KeyboardIn implements wsi.KeyboardHandler.
func (c *Context) KeyboardIn(win wsi.Window) { c.Controls.KeyboardIn(win) }

// KeyboardOut implements wsi.KeyboardHandler.
func (c *Context) KeyboardOut(win wsi.Window) { c.Controls.KeyboardOut(win) }

// KeyboardKey implements wsi.KeyboardHandler.
// Esc closes the window.
func (c *Context) KeyboardKey(key wsi.Key, pressed bool, modMask wsi.Modifier) {
	if key == wsi.KeyEsc && pressed && c.win != nil {
		c.win.Close()
		return
	}
	c.Controls.KeyboardKey(key, pressed, modMask)
}

// PointerIn implements wsi.PointerHandler.
func (c *Context) PointerIn(win wsi.Window, x, y int) { c.Controls.PointerIn(win, x, y) }

// PointerOut implements wsi.PointerHandler.
func (c *Context) PointerOut(win wsi.Window) { c.Controls.PointerOut(win) }

// PointerMotion implements wsi.PointerHandler.
func (c *Context) PointerMotion(x, y int) { c.Controls.PointerMotion(x, y) }

// PointerButton implements wsi.PointerHandler.
func (c *Context) PointerButton(btn wsi.Button, pressed bool, x, y int) {
	c.Controls.PointerButton(btn, pressed, x, y)
}

// PointerScroll implements wsi.PointerHandler.
func (c *Context) PointerScroll(dx, dy float64) { c.Controls.PointerScroll(dx, dy) }
