// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Haunted renders a haunted house that can be
// orbited with the mouse and the arrow keys.
//
// Usage:
//
//	haunted [flags]
//
// With -o, a single frame is rendered offscreen and
// written to the given PNG file instead.
package main

import (
	"flag"
	"image/png"
	"log"
	"os"

	"github.com/gviegas/haunted"
	"github.com/gviegas/haunted/engine"
	"github.com/gviegas/haunted/wsi"
	_ "github.com/gviegas/haunted/wsi/desktop"
)

func main() {
	width := flag.Int("width", 800, "window width")
	height := flag.Int("height", 600, "window height")
	assets := flag.String("assets", "static", "texture directory")
	seed := flag.Uint64("seed", 0, "grave placement seed (0 means time-based)")
	title := flag.String("title", "Haunted House", "window title")
	noDamping := flag.Bool("nodamping", false, "disable orbit damping")
	out := flag.String("o", "", "render one frame to this PNG file and exit")
	flag.Parse()

	log.SetPrefix("haunted: ")
	log.SetFlags(0)

	cfg := haunted.DefaultConfig()
	cfg.Width, cfg.Height = *width, *height
	cfg.Assets = os.DirFS(*assets)
	cfg.Seed = *seed
	cfg.NoDamping = *noDamping

	if *out != "" {
		if err := snapshot(&cfg, *out); err != nil {
			log.Fatal(err)
		}
		return
	}

	wsi.SetAppName(*title)
	win, err := wsi.NewWindow(*width, *height, *title)
	if err != nil {
		log.Fatal(err)
	}
	cfg.DeviceRatio = win.Scale()
	rend, err := engine.NewOnscreen(win)
	if err != nil {
		log.Fatal(err)
	}
	ctx, err := haunted.NewContext(&cfg, rend)
	if err != nil {
		log.Fatal(err)
	}
	if err = haunted.Build(ctx); err != nil {
		log.Fatal(err)
	}
	log.Printf("running on %v, assets from %s", wsi.PlatformInUse(), *assets)
	if err = haunted.Run(ctx, win); err != nil {
		log.Fatal(err)
	}
}

// snapshot renders one frame offscreen, once every
// texture has loaded, and writes it to name.
func snapshot(cfg *haunted.Config, name string) error {
	rend, err := engine.NewOffscreen(cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	ctx, err := haunted.NewContext(cfg, rend)
	if err != nil {
		return err
	}
	if err = haunted.Build(ctx); err != nil {
		return err
	}
	ctx.Loader.Wait()
	if err = ctx.Tick(); err != nil {
		return err
	}
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err = png.Encode(f, rend.Target().RGBA()); err != nil {
		f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	info := rend.Info()
	log.Printf("wrote %s (%d triangles, %d dropped)", name, info.Triangles, info.Dropped)
	return nil
}
