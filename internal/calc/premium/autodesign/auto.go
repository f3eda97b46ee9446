package autodesign

import (
	"Ballast/internal/calc/buoyancy"
	"Ballast/internal/calc/geometry"
	"Ballast/internal/calc/loads"
	"Ballast/internal/calc/member"
	"math"
)

const (
	defaultStepMM = 50
	MaxSlabMM     = 10000
)

type SlabInput struct {
	buoyancy.Input `yaml:",inline"`
	StepMM         float64 `json:"step_mm,omitempty" yaml:"step_mm,omitempty"`
}

type SlabResult struct {
	CurrentSlabMM  float64         `json:"current_slab_mm"`
	RequiredSlabMM float64         `json:"required_slab_mm"`
	Result         buoyancy.Result `json:"result"`
	Notes          string          `json:"notes"`
}

// BottomSlab finds the thinnest bottom slab, in whole steps, that brings the
// snapshot to its target. Each extra millimetre adds concrete weight over the
// general zone but also adds the same depth of displaced water, so the slab
// only helps while the concrete outweighs target times water.
func BottomSlab(in SlabInput) (SlabResult, error) {
	step := in.StepMM
	if step == 0 {
		step = defaultStepMM
	}
	if step < 0 {
		return SlabResult{}, geometry.NewConfigError("step_mm", "must be positive")
	}
	base, err := buoyancy.Calculate(in.Input)
	if err != nil {
		return SlabResult{}, err
	}
	current := in.Layers.Bottom.SlabMM
	if base.Summary.Passed() {
		return SlabResult{
			CurrentSlabMM:  current,
			RequiredSlabMM: current,
			Result:         base,
			Notes:          "The current bottom slab already reaches the target.",
		}, nil
	}

	n := len(in.Levels)
	m := member.Multiplier(in.Levels[n-1].Done)
	target := base.Summary.Target
	gain := in.Materials.UnitWeightConcrete*m - loads.UnitWeightWater*target
	if gain <= 0 {
		return SlabResult{}, geometry.NewConfigError("layers.bottom.slab_mm", "a thicker bottom slab cannot reach the target at this stage")
	}
	area := in.Geometry.GeneralArea()
	shortfall := target*base.Summary.TotalUplift - base.Summary.TotalWeight
	required := current + shortfall*1000/(gain*area)
	required = math.Ceil(required/step) * step

	// Rounding can land exactly on the boundary; step up until the full
	// calculation agrees.
	for ; required <= MaxSlabMM; required += step {
		trial := in.Input
		trial.Layers.Bottom.SlabMM = required
		res, err := buoyancy.Calculate(trial)
		if err != nil {
			return SlabResult{}, err
		}
		if res.Summary.Passed() {
			return SlabResult{
				CurrentSlabMM:  current,
				RequiredSlabMM: required,
				Result:         res,
				Notes:          "Bottom slab thickness selected to reach the target factor.",
			}, nil
		}
	}
	return SlabResult{}, geometry.NewConfigError("layers.bottom.slab_mm", "required thickness exceeds %d mm", MaxSlabMM)
}
