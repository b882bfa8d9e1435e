// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package wsi

import (
	"fmt"
	"image/color"
	"testing"

	"github.com/gviegas/haunted/raster"
)

func TestNone(t *testing.T) {
	if p := PlatformInUse(); p != None {
		t.Skipf("PlatformInUse: %v (a backend is registered)", p)
	}
	win, err := NewWindow(480, 360, "Will fail")
	if win != nil || err != errMissing {
		t.Fatalf("NewWindow: win, err\nhave %v, %v\nwant nil, %v", win, err, errMissing)
	}
	if n := len(Windows()); n != 0 {
		t.Fatalf("len(Windows())\nhave %v\nwant 0", n)
	}
	if err := Run(func() error { return nil }); err != errMissing {
		t.Fatalf("Run\nhave %v\nwant %v", err, errMissing)
	}
	// None's Dispatch does nothing.
	Dispatch()
	// None's SetAppName does nothing.
	SetAppName("Won't be displayed")
	if s := AppName(); s != "Won't be displayed" {
		t.Fatalf("AppName\nhave %s\nwant Won't be displayed", s)
	}
	SetAppName("")
}

// fakeWindow is a Window for testing.
type fakeWindow struct {
	w, h  int
	title string
	surf  *raster.Image
}

func (f *fakeWindow) Resize(w, h int) error       { f.w, f.h = w, h; return nil }
func (f *fakeWindow) SetTitle(title string) error { f.title = title; return nil }
func (f *fakeWindow) Close()                      { CloseWindow(f) }
func (f *fakeWindow) Width() int                  { return f.w }
func (f *fakeWindow) Height() int                 { return f.h }
func (f *fakeWindow) Title() string               { return f.title }
func (f *fakeWindow) Scale() float64              { return 1 }
func (f *fakeWindow) Surface() raster.Target      { return f.surf }

func TestRegister(t *testing.T) {
	defer initNone()
	var dispatched, stepped int
	Register(&Backend{
		Platform: Desktop,
		NewWindow: func(w, h int, title string) (Window, error) {
			return &fakeWindow{w: w, h: h, title: title, surf: raster.NewImage(w, h)}, nil
		},
		Dispatch: func() { dispatched++ },
		Run: func(step func() error) error {
			for len(Windows()) > 0 {
				Dispatch()
				if err := step(); err != nil {
					return err
				}
			}
			return nil
		},
		SetAppName: func(string) {},
	})
	if p := PlatformInUse(); p != Desktop {
		t.Fatalf("PlatformInUse\nhave %v\nwant %v", p, Desktop)
	}
	if s := Desktop.String(); s != "desktop" {
		t.Fatalf("Platform.String\nhave %s\nwant desktop", s)
	}
	win, err := NewWindow(64, 32, "Test")
	if err != nil {
		t.Fatalf("NewWindow: unexpected error: %v", err)
	}
	if n := len(Windows()); n != 1 {
		t.Fatalf("len(Windows())\nhave %v\nwant 1", n)
	}
	win.Surface().Clear(color.White)
	if c := win.Surface().(*raster.Image).RGBA().At(0, 0); c != (color.RGBA{255, 255, 255, 255}) {
		t.Fatalf("Window.Surface.Clear\nhave %v\nwant white", c)
	}
	err = Run(func() error {
		if stepped++; stepped == 3 {
			win.Close()
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Run: unexpected error: %v", err)
	}
	if stepped != 3 || dispatched != 3 {
		t.Fatalf("Run: step, dispatch calls\nhave %d, %d\nwant 3, 3", stepped, dispatched)
	}
	if n := len(Windows()); n != 0 {
		t.Fatalf("len(Windows())\nhave %v\nwant 0", n)
	}

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("Register: expected panic for incomplete Backend")
			}
		}()
		Register(&Backend{})
	}()
}

// recorder records handler calls as strings.
type recorder struct{ calls []string }

func (r *recorder) add(f string, a ...any) { r.calls = append(r.calls, fmt.Sprintf(f, a...)) }

func (r *recorder) WindowClose(Window)              { r.add("close") }
func (r *recorder) WindowResize(_ Window, w, h int) { r.add("resize %d %d", w, h) }
func (r *recorder) KeyboardIn(Window)               { r.add("kin") }
func (r *recorder) KeyboardOut(Window)              { r.add("kout") }
func (r *recorder) KeyboardKey(k Key, p bool, m Modifier) {
	r.add("key %d %t %d", k, p, m)
}
func (r *recorder) PointerIn(_ Window, x, y int) { r.add("pin %d %d", x, y) }
func (r *recorder) PointerOut(Window)            { r.add("pout") }
func (r *recorder) PointerMotion(x, y int)       { r.add("motion %d %d", x, y) }
func (r *recorder) PointerButton(b Button, p bool, x, y int) {
	r.add("button %d %t %d %d", b, p, x, y)
}
func (r *recorder) PointerScroll(dx, dy float64) { r.add("scroll %g %g", dx, dy) }

func TestTracker(t *testing.T) {
	var r recorder
	SetWindowHandler(&r)
	SetKeyboardHandler(&r)
	SetPointerHandler(&r)
	defer func() {
		SetWindowHandler(nil)
		SetKeyboardHandler(nil)
		SetPointerHandler(nil)
	}()

	win := &fakeWindow{w: 800, h: 600, surf: raster.NewImage(1, 1)}
	tr := NewTracker(win)

	check := func(s State, want ...string) {
		t.Helper()
		r.calls = nil
		tr.Update(&s)
		if fmt.Sprint(r.calls) != fmt.Sprint(want) {
			t.Fatalf("Tracker.Update\nhave %q\nwant %q", r.calls, want)
		}
	}

	base := State{Width: 800, Height: 600}
	check(base)

	s := base
	s.PointerIn, s.X, s.Y = true, 10, 20
	check(s, "pin 10 20", "motion 10 20")

	s.Buttons[BtnLeft] = true
	check(s, "button 1 true 10 20")
	check(s)

	s.X = 15
	check(s, "motion 15 20")

	s.Buttons[BtnLeft] = false
	s.ScrollY = -1
	check(s, "button 1 false 15 20", "scroll 0 -1")
	s.ScrollY = 0
	check(s)

	s.Focused = true
	s.Keys[KeyLeft] = true
	s.Mods = ModShift
	check(s, "kin", fmt.Sprintf("key %d true %d", KeyLeft, ModShift))

	s.Width, s.Height = 1024, 768
	check(s, "resize 1024 768")
	check(s)

	s.CloseRequested = true
	s.PointerIn = false
	check(s, "close", "pout")
}
