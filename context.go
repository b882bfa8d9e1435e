// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package haunted

import (
	"io/fs"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/gviegas/haunted/controls"
	"github.com/gviegas/haunted/engine"
	"github.com/gviegas/haunted/wsi"
)

// Config is used to configure a Context.
type Config struct {
	// Initial viewport size.
	// Default is 800x600.
	Width, Height int
	// Initial device pixel ratio.
	// Default is 1.
	DeviceRatio float64
	// File system from which textures are loaded.
	// Default is os.DirFS("static").
	Assets fs.FS
	// Seed for the grave placement.
	// Default is 0, which means a time-based seed.
	Seed uint64
	// Disables damping of the orbit controls.
	// Default is false.
	NoDamping bool
	// Logger for texture failures and frame errors.
	// Default is log.Default().
	Logger *log.Logger
	// Scene parameters.
	// Default is DefaultParams().
	Params *Params
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Width:       800,
		Height:      600,
		DeviceRatio: 1,
		Assets:      os.DirFS("static"),
		Logger:      log.Default(),
	}
}

// Renderer is the interface that renders a scene.
// It is implemented by *engine.Onscreen and
// *engine.Offscreen.
type Renderer interface {
	SetSize(width, height int)
	SetPixelRatio(ratio float64)
	PixelRatio() float64
	BufferSize() (width, height int)
	Render(s *engine.Scene, cam *engine.Camera) error
	Info() engine.Info
}

// Viewport is the size of the drawing area in
// logical pixels and the pixel ratio applied to it.
type Viewport struct {
	Width, Height int
	PixelRatio    float64
}

// Context holds everything needed to render the
// haunted house.
type Context struct {
	Scene    *engine.Scene
	Camera   *engine.Camera
	Renderer Renderer
	Controls *controls.Orbit
	Loader   *engine.Loader
	Params   Params

	viewport Viewport
	rand     *rand.Rand
	log      *log.Logger
	win      wsi.Window
}

// NewContext creates a new Context that renders
// through rend.
// Zero fields of config are replaced by their
// defaults. A nil config means DefaultConfig().
// The camera is placed and the first (empty) frame is
// rendered. Call Build to populate the scene.
func NewContext(config *Config, rend Renderer) (*Context, error) {
	cfg := DefaultConfig()
	if config != nil {
		cfg = fill(*config)
	}
	ctx := &Context{
		Scene:    engine.NewScene(),
		Renderer: rend,
		Loader:   engine.NewLoader(cfg.Assets, cfg.Logger),
		log:      cfg.Logger,
	}
	if cfg.Params != nil {
		ctx.Params = *cfg.Params
	} else {
		ctx.Params = DefaultParams()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	ctx.rand = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	cp := &ctx.Params.Camera
	ctx.Camera = engine.NewCamera(cp.Fov, float32(cfg.Width)/float32(cfg.Height), cp.Near, cp.Far)
	ctx.Camera.SetPosition(&cp.Position)
	ctx.Camera.LookAt(&cp.Target)
	ctx.Controls = controls.NewOrbit(ctx.Camera)
	ctx.Controls.EnableDamping = !cfg.NoDamping

	if err := ctx.OnResize(cfg.Width, cfg.Height, cfg.DeviceRatio); err != nil {
		return nil, err
	}
	return ctx, nil
}

func fill(cfg Config) Config {
	dfl := DefaultConfig()
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = dfl.Width, dfl.Height
	}
	if cfg.DeviceRatio <= 0 {
		cfg.DeviceRatio = dfl.DeviceRatio
	}
	if cfg.Assets == nil {
		cfg.Assets = dfl.Assets
	}
	if cfg.Logger == nil {
		cfg.Logger = dfl.Logger
	}
	return cfg
}

// Viewport returns the current viewport.
func (c *Context) Viewport() Viewport { return c.viewport }
