// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package wsi provides window system integration (WSI)
// for the renderer.
// Because a system need not have a window system, WSI
// is conditionally supported: a backend package must be
// imported for its side effect of calling Register.
// Without one, calls to NewWindow and Run fail.
package wsi

import (
	"errors"

	"github.com/gviegas/haunted/raster"
)

// Window is the interface that defines a drawable window.
// The purpose of a window is to provide a surface into
// which the renderer can draw.
type Window interface {
	// Resize resizes the window.
	Resize(width, height int) error

	// SetTitle sets the window's title.
	SetTitle(title string) error

	// Close closes the window.
	Close()

	// Width returns the window's width.
	Width() int

	// Height returns the window's height.
	Height() int

	// Title returns the window's title.
	Title() string

	// Scale returns the ratio of physical to logical
	// pixels of the display showing the window.
	Scale() float64

	// Surface returns the target whose contents are
	// presented on every display refresh.
	Surface() raster.Target
}

// NewWindow creates a new window.
func NewWindow(width, height int, title string) (Window, error) {
	if windowCount >= MaxWindows {
		return nil, errors.New("wsi: too many windows")
	}
	win, err := newWindow(width, height, title)
	if err != nil {
		return nil, err
	}
	for i := range createdWindows {
		if createdWindows[i] == nil {
			createdWindows[i] = win
			windowCount++
			break
		}
	}
	return win, nil
}

var newWindow func(int, int, string) (Window, error)

// The maximum number of windows that can exist at any
// given time.
const MaxWindows = 4

// Windows returns all created windows.
// The returned value becomes out of date after calls to
// NewWindow and Window.Close.
func Windows() []Window {
	if windowCount == 0 {
		return nil
	}
	wins := make([]Window, 0, windowCount)
	for i := range createdWindows {
		if createdWindows[i] != nil {
			wins = append(wins, createdWindows[i])
		}
	}
	return wins
}

// CloseWindow removes win from the set of created
// windows.
// It must be called by backends on Window.Close.
// Note that win must be comparable.
func CloseWindow(win Window) {
	for i := range createdWindows {
		if createdWindows[i] == win {
			createdWindows[i] = nil
			windowCount--
			return
		}
	}
}

var (
	windowCount    int
	createdWindows [MaxWindows]Window
)

// Key is the type of keyboard keys.
type Key int

// Keyboard keys.
const (
	KeyUnknown Key = iota
	KeyEsc
	KeySpace
	KeyReturn
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyW
	KeyA
	KeyS
	KeyD
	KeyF12
	KeyShift
	KeyCtrl
	KeyAlt
	KeyMeta
	// Number of Key values.
	KeyCount
)

// Modifier is the type of modifier flags.
type Modifier int

// Modifier flags.
const (
	ModCapsLock Modifier = 1 << iota
	ModShift
	ModCtrl
	ModAlt
	ModMeta
)

// Button is the type of pointer buttons.
type Button int

// Pointer buttons.
const (
	BtnUnknown Button = iota
	BtnLeft
	BtnRight
	BtnMiddle
	BtnSide
	BtnForward
	BtnBackward
	// Number of Button values.
	BtnCount
)

// WindowHandler is the interface that defines the methods
// for handling window events.
type WindowHandler interface {
	// WindowClose is called when a window is closed.
	WindowClose(win Window)

	// WindowResize is called when a window is resized.
	WindowResize(win Window, newWidth, newHeight int)
}

// SetWindowHandler sets the global WindowHandler.
func SetWindowHandler(wh WindowHandler) {
	windowHandler = wh
}

var windowHandler WindowHandler

// KeyboardHandler is the interface that defines the methods
// for handling keyboard events.
type KeyboardHandler interface {
	// KeyboardIn is called when focus is gained.
	KeyboardIn(win Window)

	// KeyboardOut is called when focus is lost.
	KeyboardOut(win Window)

	// KeyboardKey is called when a key is pressed/released.
	KeyboardKey(key Key, pressed bool, modMask Modifier)
}

// SetKeyboardHandler sets the global KeyboardHandler.
func SetKeyboardHandler(kh KeyboardHandler) {
	keyboardHandler = kh
}

var keyboardHandler KeyboardHandler

// PointerHandler is the interface that defines the methods
// for handling pointer events.
type PointerHandler interface {
	// PointerIn is called when the pointer enters a window.
	PointerIn(win Window, x, y int)

	// PointerOut is called when the pointer leaves a window.
	PointerOut(win Window)

	// PointerMotion is called when the pointer changes position.
	PointerMotion(newX, newY int)

	// PointerButton is called when a button is pressed/released.
	PointerButton(btn Button, pressed bool, x, y int)

	// PointerScroll is called when the scroll wheel moves.
	// Positive dy scrolls up (away from the user).
	PointerScroll(dx, dy float64)
}

// SetPointerHandler sets the global PointerHandler.
func SetPointerHandler(ph PointerHandler) {
	pointerHandler = ph
}

var pointerHandler PointerHandler

// Dispatch dispatches queued events.
func Dispatch() {
	dispatch()
}

var dispatch func()

// Run drives the display refresh loop.
// Once per refresh, it calls Dispatch and then step.
// Run blocks until every window is closed or step
// returns an error, which Run then returns.
// It must be called from the main goroutine.
func Run(step func() error) error {
	return run(step)
}

var run func(func() error) error

// AppName returns the string used to identify the application.
// Its use is platform-specific.
func AppName() string {
	return appName
}

// SetAppName updates the string used to identify the
// application.
func SetAppName(s string) {
	setAppName(s)
	appName = s
}

var (
	appName    string
	setAppName func(string)
)

// Platform identifies an underlying platform used to
// implement wsi.
type Platform int

// Platforms.
const (
	// None means that wsi is not available.
	// In this case, calls to NewWindow and Run
	// will always fail, and calls to Dispatch
	// will do nothing.
	None Platform = iota
	// Desktop windowing through ebiten
	// (see package wsi/desktop).
	Desktop
)

func (p Platform) String() string {
	switch p {
	case None:
		return "none"
	case Desktop:
		return "desktop"
	}
	return "unknown"
}

// PlatformInUse identifies the underlying platform which
// wsi is using.
func PlatformInUse() Platform {
	return platform
}

var platform Platform

// Backend is a window system implementation.
type Backend struct {
	Platform   Platform
	NewWindow  func(width, height int, title string) (Window, error)
	Dispatch   func()
	Run        func(step func() error) error
	SetAppName func(name string)
}

// Register makes b the implementation in use.
// Backends call it from an init function.
// It panics if any of b's functions is nil.
func Register(b *Backend) {
	if b.NewWindow == nil || b.Dispatch == nil || b.Run == nil || b.SetAppName == nil {
		panic("wsi: incomplete Backend in call to Register")
	}
	newWindow = b.NewWindow
	dispatch = b.Dispatch
	run = b.Run
	setAppName = b.SetAppName
	platform = b.Platform
}
