// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package engine

import (
	"image"
	"strings"
	"testing"

	"github.com/gviegas/haunted/linear"
)

func TestMaterial(t *testing.T) {
	tex, err := NewTexture(image.NewNRGBA(image.Rect(0, 0, 4, 4)))
	if err != nil {
		t.Fatalf("NewTexture failed:\n%#v", err)
	}
	arm := TexRef{Texture: tex, Repeat: linear.V2{8, 8}}

	prop := Standard{
		Color:             [4]float32{0.8, 1, 0.8, 1},
		Map:               TexRef{Texture: tex, Repeat: linear.V2{2, 1}},
		AOMap:             arm,
		AOIntensity:       1,
		RoughnessMap:      arm,
		Roughness:         1,
		MetalnessMap:      arm,
		Metalness:         1,
		AlphaMap:          TexRef{Texture: tex},
		Transparent:       true,
		DisplacementMap:   arm,
		DisplacementScale: 0.3,
		DisplacementBias:  -0.2,
	}
	m, err := NewStandard(&prop)
	if err != nil {
		t.Fatalf("NewStandard failed:\n%#v", err)
	}
	if s := m.Standard(); s != prop {
		t.Fatalf("Material.Standard\nhave %#v\nwant %#v", s, prop)
	}

	for _, x := range [...]struct {
		mod    func(*Standard)
		reason string
	}{
		{func(p *Standard) { p.Color[0] = 1.5 }, "Standard.Color"},
		{func(p *Standard) { p.Color[3] = -0.1 }, "Standard.Color"},
		{func(p *Standard) { p.Map.Repeat[0] = -1 }, "Map.Repeat"},
		{func(p *Standard) { p.DisplacementMap.Repeat[1] = -8 }, "DisplacementMap.Repeat"},
		{func(p *Standard) { p.AOIntensity = -1 }, "Standard.AOIntensity"},
		{func(p *Standard) { p.Roughness = 2 }, "Standard.Roughness"},
		{func(p *Standard) { p.Metalness = -1 }, "Standard.Metalness"},
		{func(p *Standard) { p.AlphaTest = 1.01 }, "Standard.AlphaTest"},
	} {
		p := prop
		x.mod(&p)
		m, err := NewStandard(&p)
		if m != nil || err == nil {
			t.Fatalf("NewStandard: expected error containing %q", x.reason)
		}
		if s := err.Error(); !strings.HasPrefix(s, matPrefix) || !strings.Contains(s, x.reason) {
			t.Fatalf("NewStandard: unexpected error\nhave %s\nwant %s...%s...", s, matPrefix, x.reason)
		}
	}
}

func TestTexRefRepeat(t *testing.T) {
	for _, x := range [...]struct {
		rep  linear.V2
		u, v float32
	}{
		{linear.V2{}, 1, 1},
		{linear.V2{8, 8}, 8, 8},
		{linear.V2{3, 0}, 3, 1},
		{linear.V2{0, 0.4}, 1, 0.4},
	} {
		ref := TexRef{Repeat: x.rep}
		if u, v := ref.repeat(); u != x.u || v != x.v {
			t.Fatalf("TexRef.repeat\nhave %v, %v\nwant %v, %v", u, v, x.u, x.v)
		}
	}
}
