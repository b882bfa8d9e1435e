// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package engine implements a software renderer for
// small static scenes.
package engine

const (
	// The maximum number of lights per frame.
	MaxLight = 16

	// The minimum number of triangles per frame.
	MinTriangle = 1024

	dflMaxLight    = 8
	dflMaxTriangle = 1 << 18
)

// Config is used to configure the engine.
type Config struct {
	// The maximum number of lights per frame.
	// Lights found past this limit are ignored.
	//
	// Default is 8.
	MaxLight int

	// The maximum number of triangles per frame.
	// Triangles found past this limit are not drawn.
	//
	// Default is 262144.
	MaxTriangle int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		MaxLight:    dflMaxLight,
		MaxTriangle: dflMaxTriangle,
	}
}

var cfg Config

// Configure replaces the engine's configuration
// with config.
// Out of range values are clamped.
func Configure(config *Config) {
	cfg = *config
	cfg.MaxLight = max(1, min(cfg.MaxLight, MaxLight))
	cfg.MaxTriangle = max(cfg.MaxTriangle, MinTriangle)
}

func init() {
	config := DefaultConfig()
	Configure(&config)
}
