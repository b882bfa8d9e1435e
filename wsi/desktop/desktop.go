// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package desktop implements wsi on top of ebiten.
// It must be imported for its side effect:
//
//	import _ "github.com/gviegas/haunted/wsi/desktop"
//
// Only one window can exist at a time.
package desktop

import (
	"errors"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gviegas/haunted/raster"
	"github.com/gviegas/haunted/wsi"
)

func init() {
	wsi.Register(&wsi.Backend{
		Platform:   wsi.Desktop,
		NewWindow:  newWindow,
		Dispatch:   dispatch,
		Run:        run,
		SetAppName: func(string) {},
	})
}

// The window in use, if any.
var current *window

type window struct {
	width, height int
	title         string
	closed        bool
	surf          *surface
	tracker       *wsi.Tracker
}

func newWindow(width, height int, title string) (wsi.Window, error) {
	if current != nil {
		return nil, errors.New("desktop: window already exists")
	}
	if width <= 0 || height <= 0 {
		return nil, errors.New("desktop: invalid window size")
	}
	win := &window{
		width:  width,
		height: height,
		title:  title,
		surf:   newSurface(width, height),
	}
	win.tracker = wsi.NewTracker(win)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	current = win
	return win, nil
}

// Resize implements wsi.Window.
func (w *window) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.New("desktop: invalid window size")
	}
	ebiten.SetWindowSize(width, height)
	return nil
}

// SetTitle implements wsi.Window.
func (w *window) SetTitle(title string) error {
	ebiten.SetWindowTitle(title)
	w.title = title
	return nil
}

// Close implements wsi.Window.
func (w *window) Close() {
	if w.closed {
		return
	}
	w.closed = true
	wsi.CloseWindow(w)
	if current == w {
		current = nil
	}
}

// Width implements wsi.Window.
func (w *window) Width() int { return w.width }

// Height implements wsi.Window.
func (w *window) Height() int { return w.height }

// Title implements wsi.Window.
func (w *window) Title() string { return w.title }

// Scale implements wsi.Window.
func (w *window) Scale() float64 {
	if m := ebiten.Monitor(); m != nil {
		return m.DeviceScaleFactor()
	}
	return 1
}

// Surface implements wsi.Window.
func (w *window) Surface() raster.Target { return w.surf }

var keymap = [...]struct {
	key  wsi.Key
	ekey ebiten.Key
}{
	{wsi.KeyEsc, ebiten.KeyEscape},
	{wsi.KeySpace, ebiten.KeySpace},
	{wsi.KeyReturn, ebiten.KeyEnter},
	{wsi.KeyUp, ebiten.KeyArrowUp},
	{wsi.KeyDown, ebiten.KeyArrowDown},
	{wsi.KeyLeft, ebiten.KeyArrowLeft},
	{wsi.KeyRight, ebiten.KeyArrowRight},
	{wsi.KeyW, ebiten.KeyW},
	{wsi.KeyA, ebiten.KeyA},
	{wsi.KeyS, ebiten.KeyS},
	{wsi.KeyD, ebiten.KeyD},
	{wsi.KeyF12, ebiten.KeyF12},
	{wsi.KeyShift, ebiten.KeyShift},
	{wsi.KeyCtrl, ebiten.KeyControl},
	{wsi.KeyAlt, ebiten.KeyAlt},
	{wsi.KeyMeta, ebiten.KeyMeta},
}

var modmap = [...]struct {
	mod  wsi.Modifier
	ekey ebiten.Key
}{
	{wsi.ModCapsLock, ebiten.KeyCapsLock},
	{wsi.ModShift, ebiten.KeyShift},
	{wsi.ModCtrl, ebiten.KeyControl},
	{wsi.ModAlt, ebiten.KeyAlt},
	{wsi.ModMeta, ebiten.KeyMeta},
}

var btnmap = [...]struct {
	btn  wsi.Button
	ebtn ebiten.MouseButton
}{
	{wsi.BtnLeft, ebiten.MouseButtonLeft},
	{wsi.BtnRight, ebiten.MouseButtonRight},
	{wsi.BtnMiddle, ebiten.MouseButtonMiddle},
	{wsi.BtnBackward, ebiten.MouseButton3},
	{wsi.BtnForward, ebiten.MouseButton4},
}

// dispatch samples ebiten's input state and feeds
// it to the window's tracker.
func dispatch() {
	w := current
	if w == nil {
		return
	}
	var s wsi.State
	s.Width, s.Height = w.width, w.height
	s.Focused = ebiten.IsFocused()
	s.CloseRequested = ebiten.IsWindowBeingClosed()
	for _, k := range keymap {
		s.Keys[k.key] = ebiten.IsKeyPressed(k.ekey)
	}
	for _, m := range modmap {
		if ebiten.IsKeyPressed(m.ekey) {
			s.Mods |= m.mod
		}
	}
	s.X, s.Y = ebiten.CursorPosition()
	s.PointerIn = s.Focused && s.X >= 0 && s.Y >= 0 && s.X < w.width && s.Y < w.height
	for _, b := range btnmap {
		s.Buttons[b.btn] = ebiten.IsMouseButtonPressed(b.ebtn)
	}
	s.ScrollX, s.ScrollY = ebiten.Wheel()
	w.tracker.Update(&s)
}

type game struct {
	step func() error
}

// Update implements ebiten.Game.
func (g *game) Update() error {
	wsi.Dispatch()
	if current == nil {
		return ebiten.Termination
	}
	if err := g.step(); err != nil {
		return err
	}
	if current == nil {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *game) Draw(screen *ebiten.Image) {
	w := current
	if w == nil {
		return
	}
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	bw, bh := w.surf.Size()
	if bw == 0 || bh == 0 {
		return
	}
	var opt ebiten.DrawImageOptions
	opt.GeoM.Scale(float64(sw)/float64(bw), float64(sh)/float64(bh))
	opt.Filter = ebiten.FilterLinear
	screen.DrawImage(w.surf.img, &opt)
}

// Layout implements ebiten.Game.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := current
	if w == nil {
		return outsideWidth, outsideHeight
	}
	w.width, w.height = outsideWidth, outsideHeight
	s := w.Scale()
	return int(float64(outsideWidth) * s), int(float64(outsideHeight) * s)
}

func run(step func() error) error {
	if current == nil {
		return errors.New("desktop: no window to run")
	}
	err := ebiten.RunGame(&game{step: step})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// surface is a raster.Target backed by an ebiten image.
type surface struct {
	img   *ebiten.Image
	white *ebiten.Image
	// Source images converted so far.
	// They are expected to be immutable.
	cache map[image.Image]*ebiten.Image
	verts []ebiten.Vertex
}

func newSurface(width, height int) *surface {
	white := ebiten.NewImage(1, 1)
	white.Fill(color.White)
	return &surface{
		img:   ebiten.NewImage(width, height),
		white: white,
		cache: make(map[image.Image]*ebiten.Image),
	}
}

// Size implements raster.Target.
func (s *surface) Size() (width, height int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Resize implements raster.Target.
func (s *surface) Resize(width, height int) {
	if w, h := s.Size(); w == width && h == height {
		return
	}
	s.img.Deallocate()
	s.img = ebiten.NewImage(max(width, 1), max(height, 1))
}

// Clear implements raster.Target.
func (s *surface) Clear(c color.Color) { s.img.Fill(c) }

// DrawTriangles implements raster.Target.
func (s *surface) DrawTriangles(vertices []raster.Vertex, indices []uint16, src image.Image) {
	eimg := s.white
	var sw, sh float32
	if src != nil {
		var ok bool
		if eimg, ok = s.cache[src]; !ok {
			eimg = ebiten.NewImageFromImage(src)
			s.cache[src] = eimg
		}
		b := eimg.Bounds()
		sw, sh = float32(b.Dx()), float32(b.Dy())
	}
	s.verts = s.verts[:0]
	for _, v := range vertices {
		ev := ebiten.Vertex{
			DstX:   v.X,
			DstY:   v.Y,
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: v.R,
			ColorG: v.G,
			ColorB: v.B,
			ColorA: v.A,
		}
		if src != nil {
			ev.SrcX, ev.SrcY = v.U*sw, v.V*sh
		}
		s.verts = append(s.verts, ev)
	}
	opt := ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModeStraightAlpha,
		Address:        ebiten.AddressRepeat,
		Filter:         ebiten.FilterLinear,
	}
	s.img.DrawTriangles(s.verts, indices, eimg, &opt)
}
