// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package haunted

import (
	"math"

	"github.com/gviegas/haunted/linear"
)

// Textures names the texture files of a surface,
// relative to the asset file system.
// Empty names are not loaded.
type Textures struct {
	Color string
	Alpha string
	// ARM packs ambient occlusion, roughness and
	// metalness in R, G and B.
	ARM string
	// Separate maps, used when ARM is empty.
	AO        string
	Roughness string
	Metalness string
	// Height drives vertex displacement.
	Height string
	// Repeat applies to every map except Alpha.
	Repeat linear.V2
}

// GroundParams describes the ground plane.
type GroundParams struct {
	Width, Height     float32
	Segments          int
	RotationX         float32
	DisplacementScale float32
	DisplacementBias  float32
	Textures          Textures
}

// WallParams describes the house walls.
type WallParams struct {
	Width, Height, Depth float32
	Textures             Textures
}

// RoofParams describes the house roof.
type RoofParams struct {
	Radius, Height float32
	Segments       int
	RotationY      float32
	Textures       Textures
}

// DoorParams describes the house door.
type DoorParams struct {
	Width, Height     float32
	Segments          int
	Position          linear.V3
	DisplacementScale float32
	DisplacementBias  float32
	Textures          Textures
}

// BushPlacement is the scale and position of a bush.
type BushPlacement struct {
	Scale    float32
	Position linear.V3
}

// BushParams describes the bushes.
type BushParams struct {
	Radius     float32
	Segments   int
	RotationX  float32
	Color      string
	Placements []BushPlacement
	Textures   Textures
}

// GraveParams describes the graves and their
// random distribution around the house.
// The distance of a grave from the center is
// InnerRadius + U[0,1)⋅OuterRadius.
type GraveParams struct {
	Width, Height, Depth float32
	Count                int
	InnerRadius          float32
	OuterRadius          float32
	HeightJitter         float32
	TiltPower            float32
	Textures             Textures
}

// GravePlacement is the position and Euler rotation
// of a grave.
type GravePlacement struct {
	Position linear.V3
	Rotation linear.V3
}

// CameraParams describes the camera.
type CameraParams struct {
	// Vertical field of view in degrees.
	Fov       float32
	Near, Far float32
	Position  linear.V3
	Target    linear.V3
}

// LightParams describes a light.
// Position is only used by directional lights, which
// shine from Position toward the origin.
type LightParams struct {
	Color     string
	Intensity float32
	Position  linear.V3
}

// Params is the complete set of scene parameters.
type Params struct {
	Ground      GroundParams
	Walls       WallParams
	Roof        RoofParams
	Door        DoorParams
	Bushes      BushParams
	Graves      GraveParams
	Camera      CameraParams
	Ambient     LightParams
	Directional LightParams
}

// DefaultParams returns the parameters of the
// haunted house.
func DefaultParams() Params {
	return Params{
		Ground: GroundParams{
			Width:             20,
			Height:            20,
			Segments:          100,
			RotationX:         -math.Pi / 2,
			DisplacementScale: 0.3,
			DisplacementBias:  -0.2,
			Textures: Textures{
				Color:  "floor/coast_sand_rocks_02_1k/coast_sand_rocks_02_diff_1k.webp",
				Alpha:  "floor/alpha.webp",
				ARM:    "floor/coast_sand_rocks_02_1k/coast_sand_rocks_02_arm_1k.webp",
				Height: "floor/coast_sand_rocks_02_1k/coast_sand_rocks_02_disp_1k.webp",
				Repeat: linear.V2{8, 8},
			},
		},
		Walls: WallParams{
			Width:  4,
			Height: 2.5,
			Depth:  4,
			Textures: Textures{
				Color: "wall/castle_brick_broken_06_1k/castle_brick_broken_06_diff_1k.webp",
				ARM:   "wall/castle_brick_broken_06_1k/castle_brick_broken_06_arm_1k.webp",
			},
		},
		Roof: RoofParams{
			Radius:    3.5,
			Height:    1.5,
			Segments:  4,
			RotationY: math.Pi / 4,
			Textures: Textures{
				Color:  "roof/roof_slates_02_1k/roof_slates_02_diff_1k.webp",
				ARM:    "roof/roof_slates_02_1k/roof_slates_02_arm_1k.webp",
				Repeat: linear.V2{3, 1},
			},
		},
		Door: DoorParams{
			Width:             2.2,
			Height:            2.2,
			Segments:          100,
			Position:          linear.V3{0, 1, 2.01},
			DisplacementScale: 0.15,
			DisplacementBias:  -0.04,
			Textures: Textures{
				Color:     "door/color.webp",
				Alpha:     "door/alpha.webp",
				AO:        "door/ambientOcclusion.webp",
				Roughness: "door/roughness.webp",
				Metalness: "door/metalness.webp",
				Height:    "door/height.webp",
			},
		},
		Bushes: BushParams{
			Radius:    1,
			Segments:  16,
			RotationX: -0.75,
			Color:     "#ccffcc",
			Placements: []BushPlacement{
				{0.5, linear.V3{0.8, 0.2, 2.2}},
				{0.25, linear.V3{1.4, 0.1, 2.1}},
				{0.4, linear.V3{-0.8, 0.1, 2.2}},
				{0.15, linear.V3{-1, 0.05, 2.6}},
			},
			Textures: Textures{
				Color:  "bush/leaves_forest_ground_1k/leaves_forest_ground_diff_1k.webp",
				ARM:    "bush/leaves_forest_ground_1k/leaves_forest_ground_arm_1k.webp",
				Repeat: linear.V2{2, 1},
			},
		},
		Graves: GraveParams{
			Width:        0.6,
			Height:       0.8,
			Depth:        0.2,
			Count:        30,
			InnerRadius:  4,
			OuterRadius:  5,
			HeightJitter: 0.4,
			TiltPower:    0.4,
			Textures: Textures{
				Color:  "grave/plastered_stone_wall_1k/plastered_stone_wall_diff_1k.webp",
				ARM:    "grave/plastered_stone_wall_1k/plastered_stone_wall_arm_1k.webp",
				Repeat: linear.V2{0.3, 0.4},
			},
		},
		Camera: CameraParams{
			Fov:      75,
			Near:     0.1,
			Far:      100,
			Position: linear.V3{4, 2, 5},
		},
		Ambient: LightParams{
			Color:     "#ffffff",
			Intensity: 0.5,
		},
		Directional: LightParams{
			Color:     "#ffffff",
			Intensity: 1.5,
			Position:  linear.V3{3, 2, -8},
		},
	}
}
