package recommend

import (
	"Ballast/internal/calc/buoyancy"
	"Ballast/internal/calc/loads"
	"math"
)

type DewateringResult struct {
	CurrentDepthM  float64         `json:"current_depth_m"`
	RequiredDepthM float64         `json:"required_depth_m"`
	DrawdownM      float64         `json:"drawdown_m"`
	Result         buoyancy.Result `json:"result"`
	Notes          string          `json:"notes"`
}

// Dewatering returns the groundwater depth below GL at which the snapshot
// reaches its target. Uplift falls by γw times the plan area for every metre
// of drawdown; weight does not change.
func Dewatering(in buoyancy.Input) (DewateringResult, error) {
	base, err := buoyancy.Calculate(in)
	if err != nil {
		return DewateringResult{}, err
	}
	current := in.Geometry.GroundwaterDepthM
	out := DewateringResult{CurrentDepthM: current, RequiredDepthM: current, Result: base}
	if base.Summary.Passed() {
		out.Notes = "No dewatering needed at this stage."
		return out, nil
	}

	allowed := base.Summary.TotalWeight / base.Summary.Target
	excess := base.Summary.TotalUplift - allowed
	drawdown := excess / (loads.UnitWeightWater * in.Geometry.PlanArea())
	// Round to whole centimetres, upward.
	required := math.Ceil((current+drawdown)*100) / 100

	trial := in
	trial.Geometry.GroundwaterDepthM = required
	res, err := buoyancy.Calculate(trial)
	if err != nil {
		return DewateringResult{}, err
	}
	out.RequiredDepthM = required
	out.DrawdownM = required - current
	out.Result = res
	out.Notes = "Keep groundwater at or below the required depth until more of the structure is built."
	if !res.Summary.Passed() {
		out.Notes = "Uplift cannot be lowered enough by dewatering alone."
	}
	return out, nil
}
