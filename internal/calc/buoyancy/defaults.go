package buoyancy

import (
	"Ballast/internal/calc/geometry"
	"Ballast/internal/calc/loads"
	"Ballast/internal/calc/member"
	"Ballast/internal/calc/safety"
	"Ballast/internal/calc/stage"
)

const (
	defaultLevelHeightMM = 5380
	defaultLevels        = 2
)

var (
	defaultRoof = stage.Roof{
		Done: true,
		B1:   member.Section{WidthMM: 500, DepthMM: 900},
		G1:   member.Section{WidthMM: 500, DepthMM: 900},
		G2:   member.Section{WidthMM: 700, DepthMM: 900},
	}
	defaultLevel = stage.Level{
		Done:   true,
		B1:     member.Section{WidthMM: 400, DepthMM: 600},
		G1:     member.Section{WidthMM: 400, DepthMM: 600},
		G2:     member.Section{WidthMM: 500, DepthMM: 600},
		Column: member.Section{WidthMM: 500, DepthMM: 700},
	}
)

// DefaultInput is the two-level reference building with everything built.
func DefaultInput() Input {
	return WithLevels(defaultLevels)
}

// WithLevels returns the reference building resized to n levels. The first
// level keeps the 4050 mm storey height, added levels use 5380 mm.
func WithLevels(n int) Input {
	if n < 1 {
		n = 1
	}
	if n > geometry.MaxLevels {
		n = geometry.MaxLevels
	}
	heights := make([]float64, n)
	levels := make([]stage.Level, n)
	for i := range heights {
		heights[i] = defaultLevelHeightMM
		levels[i] = defaultLevel
	}
	heights[0] = 4050

	return Input{
		Input: stage.Input{
			Geometry: geometry.Geometry{
				PlanXMM:           8200,
				PlanYMM:           8200,
				SoilHeightMM:      1200,
				LevelHeightsMM:    heights,
				FootingWidthMM:    3000,
				FootingLengthMM:   3000,
				FootingThickMM:    900,
				GroundwaterDepthM: 2.35,
			},
			Materials: loads.Materials{UnitWeightConcrete: 24},
			Layers: loads.Layers{
				Roof:    loads.Layer{ToppingMM: 1100, PlainMM: 100, SlabMM: 250, CeilingKN: 0.3},
				Typical: loads.Layer{SlabMM: 150, CeilingKN: 0.3},
				Bottom:  loads.Layer{PlainMM: 100, SlabMM: 400},
			},
			Roof:   defaultRoof,
			Levels: levels,
		},
		TargetFS: safety.DefaultTarget,
	}
}
