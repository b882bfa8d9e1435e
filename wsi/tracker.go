// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package wsi

// State is a snapshot of the input state of a window,
// as sampled by a backend once per refresh.
type State struct {
	// Logical size of the window.
	Width, Height int
	// Whether the window has keyboard focus.
	Focused bool
	// Whether closing the window was requested.
	CloseRequested bool
	Keys           [KeyCount]bool
	Mods           Modifier
	// Whether the pointer is inside the window.
	PointerIn bool
	X, Y      int
	Buttons   [BtnCount]bool
	// Scroll amount since the previous snapshot.
	ScrollX, ScrollY float64
}

// Tracker converts successive State snapshots of
// a window into calls to the global handlers.
// Backends that poll input (rather than receive
// events) use it to implement Dispatch.
type Tracker struct {
	win  Window
	prev State
}

// NewTracker creates a new Tracker for win.
// The initial state is the window's current size
// with no input.
func NewTracker(win Window) *Tracker {
	return &Tracker{
		win:  win,
		prev: State{Width: win.Width(), Height: win.Height()},
	}
}

// Update compares s to the previous snapshot and calls
// the appropriate handlers for every difference.
func (t *Tracker) Update(s *State) {
	p := &t.prev
	if wh := windowHandler; wh != nil {
		if s.CloseRequested && !p.CloseRequested {
			wh.WindowClose(t.win)
		}
		if s.Width != p.Width || s.Height != p.Height {
			wh.WindowResize(t.win, s.Width, s.Height)
		}
	}
	if kh := keyboardHandler; kh != nil {
		if s.Focused != p.Focused {
			if s.Focused {
				kh.KeyboardIn(t.win)
			} else {
				kh.KeyboardOut(t.win)
			}
		}
		for k := range s.Keys {
			if s.Keys[k] != p.Keys[k] {
				kh.KeyboardKey(Key(k), s.Keys[k], s.Mods)
			}
		}
	}
	if ph := pointerHandler; ph != nil {
		if s.PointerIn != p.PointerIn {
			if s.PointerIn {
				ph.PointerIn(t.win, s.X, s.Y)
			} else {
				ph.PointerOut(t.win)
			}
		}
		if s.X != p.X || s.Y != p.Y {
			ph.PointerMotion(s.X, s.Y)
		}
		for b := range s.Buttons {
			if s.Buttons[b] != p.Buttons[b] {
				ph.PointerButton(Button(b), s.Buttons[b], s.X, s.Y)
			}
		}
		if s.ScrollX != 0 || s.ScrollY != 0 {
			ph.PointerScroll(s.ScrollX, s.ScrollY)
		}
	}
	*p = *s
}
