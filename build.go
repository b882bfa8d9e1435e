// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package haunted

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/gviegas/haunted/engine"
	"github.com/gviegas/haunted/linear"
	"github.com/gviegas/haunted/node"
)

var errNotEmpty = errors.New("haunted: scene is not empty")

// Build populates the scene of ctx with the ground,
// the house, the bushes, the graves and the lights.
// The scene must be empty.
// Textures are requested from ctx.Loader and load in
// the background.
func Build(ctx *Context) error {
	s := ctx.Scene
	if s.Len() != 0 {
		return errNotEmpty
	}
	f := factory{ctx.Loader}
	p := &ctx.Params

	ground, err := f.ground(&p.Ground)
	if err != nil {
		return err
	}
	s.Insert(ground, node.Nil)

	house := s.Insert(engine.NewGroup(), node.Nil)
	wallHeight, err := buildWalls(s, house, &f, &p.Walls)
	if err != nil {
		return err
	}
	if err = buildRoof(s, house, &f, &p.Roof, wallHeight); err != nil {
		return err
	}
	door, err := f.door(&p.Door)
	if err != nil {
		return err
	}
	s.Insert(door, house)

	bushes := s.Insert(engine.NewGroup(), node.Nil)
	if err = buildBushes(s, bushes, &f, &p.Bushes); err != nil {
		return err
	}

	graves := s.Insert(engine.NewGroup(), node.Nil)
	if err = buildGraves(s, graves, &f, &p.Graves, DrawGraves(ctx.rand, &p.Graves)); err != nil {
		return err
	}

	return buildLights(s, &p.Ambient, &p.Directional)
}

// buildWalls inserts the walls into the house group
// and returns their height.
func buildWalls(s *engine.Scene, house node.Node, f *factory, p *WallParams) (float32, error) {
	walls, err := f.walls(p)
	if err != nil {
		return 0, err
	}
	s.Insert(walls, house)
	return p.Height, nil
}

func buildRoof(s *engine.Scene, house node.Node, f *factory, p *RoofParams, wallHeight float32) error {
	roof, err := f.roof(p, wallHeight)
	if err != nil {
		return err
	}
	s.Insert(roof, house)
	return nil
}

// buildBushes inserts one bush per placement.
// Bushes share geometry and material.
func buildBushes(s *engine.Scene, group node.Node, f *factory, p *BushParams) error {
	geom, err := engine.NewSphere(p.Radius, p.Segments, p.Segments)
	if err != nil {
		return fmt.Errorf("haunted: bush: %w", err)
	}
	mat, err := f.bushMaterial(p)
	if err != nil {
		return err
	}
	for i := range p.Placements {
		bush, err := f.bush(p, geom, mat, &p.Placements[i])
		if err != nil {
			return err
		}
		s.Insert(bush, group)
	}
	return nil
}

// buildGraves inserts one grave per placement.
// Graves share geometry and material.
func buildGraves(s *engine.Scene, group node.Node, f *factory, p *GraveParams, at []GravePlacement) error {
	geom, err := engine.NewBox(p.Width, p.Height, p.Depth)
	if err != nil {
		return fmt.Errorf("haunted: grave: %w", err)
	}
	mat, err := f.material(&p.Textures, white, 0, 0)
	if err != nil {
		return fmt.Errorf("haunted: grave: %w", err)
	}
	for i := range at {
		grave, err := f.grave(geom, mat, &at[i])
		if err != nil {
			return err
		}
		s.Insert(grave, group)
	}
	return nil
}

// DrawGraves draws p.Count grave placements from rng.
// Each grave is placed at a uniformly distributed
// angle around the origin, at a distance in
// [p.InnerRadius, p.InnerRadius+p.OuterRadius).
// Placements are independent and may overlap.
func DrawGraves(rng *rand.Rand, p *GraveParams) []GravePlacement {
	at := make([]GravePlacement, max(p.Count, 0))
	for i := range at {
		angle := rng.Float64() * 2 * math.Pi
		radius := p.InnerRadius + rng.Float32()*p.OuterRadius
		sin, cos := math.Sincos(angle)
		at[i].Position = linear.V3{
			float32(sin) * radius,
			rng.Float32() * p.HeightJitter,
			float32(cos) * radius,
		}
		for j := range at[i].Rotation {
			at[i].Rotation[j] = (rng.Float32() - 0.5) * p.TiltPower
		}
	}
	return at
}

// buildLights inserts the ambient light and the
// directional light.
// The directional light shines from its position
// toward the origin.
func buildLights(s *engine.Scene, ambient, directional *LightParams) error {
	r, g, b, err := engine.Hex(ambient.Color)
	if err != nil {
		return fmt.Errorf("haunted: ambient light: %w", err)
	}
	s.Insert((&engine.AmbientLight{Intensity: ambient.Intensity, R: r, G: g, B: b}).Light(), node.Nil)

	if r, g, b, err = engine.Hex(directional.Color); err != nil {
		return fmt.Errorf("haunted: directional light: %w", err)
	}
	pos := directional.Position
	if pos.Len() == 0 {
		return errors.New("haunted: directional light: position at the origin")
	}
	var dir linear.V3
	dir.Scale(-1, &pos)
	dir.Norm(&dir)
	light := (&engine.DistantLight{Direction: dir, Intensity: directional.Intensity, R: r, G: g, B: b}).Light()
	light.SetPosition(pos[0], pos[1], pos[2])
	s.Insert(light, node.Nil)
	return nil
}
