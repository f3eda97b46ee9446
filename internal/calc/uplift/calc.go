package uplift

import (
	"Ballast/internal/calc/geometry"
	"Ballast/internal/calc/loads"
	"Ballast/internal/calc/stage"
	"fmt"
)

// Input carries only geometry and the bottom slab: completion flags have no
// bearing on uplift.
type Input struct {
	Geometry     geometry.Geometry `json:"geometry"`
	BottomSlabMM float64           `json:"bottom_slab_mm"`
}

type Result struct {
	WaterHeadM    float64       `json:"water_head_m"`
	GeneralAreaM2 float64       `json:"general_area_m2"`
	FootingAreaM2 float64       `json:"footing_area_m2"`
	GeneralKN     float64       `json:"u1_kn"`
	FootingKN     float64       `json:"u2_kn"`
	TotalKN       float64       `json:"total_kn"`
	Entries       []stage.Entry `json:"entries"`
	Warnings      []string      `json:"warnings,omitempty"`
	Notes         string        `json:"notes"`
}

func Calculate(in Input) (Result, error) {
	if err := in.Geometry.Validate(); err != nil {
		return Result{}, err
	}
	if in.BottomSlabMM <= 0 {
		return Result{}, geometry.NewConfigError("bottom_slab_mm", "must be positive")
	}
	g := in.Geometry
	head := g.WaterHeadM()
	plan := g.PlanArea()
	fa := g.FootingArea()

	u1 := loads.UnitWeightWater * (head + in.BottomSlabMM/1000) * (plan - fa)
	u2 := loads.UnitWeightWater * (head + g.FootingThickMM/1000) * fa
	total := u1 + u2

	res := Result{
		WaterHeadM:    head,
		GeneralAreaM2: plan - fa,
		FootingAreaM2: fa,
		GeneralKN:     u1,
		FootingKN:     u2,
		TotalKN:       total,
		Notes:         "Hydrostatic uplift on the general slab and the footing footprint.",
		Entries: []stage.Entry{
			{
				Group:   stage.GroupUplift,
				Label:   "General zone uplift (U1)",
				Formula: fmt.Sprintf("%g x (%.3f + %g) x (%.2f - %.2f)", loads.UnitWeightWater, head, in.BottomSlabMM/1000, plan, fa),
				Value:   u1,
			},
			{
				Group:   stage.GroupUplift,
				Label:   "Footing zone uplift (U2)",
				Formula: fmt.Sprintf("%g x (%.3f + %g) x %.2f", loads.UnitWeightWater, head, g.FootingThickMM/1000, fa),
				Value:   u2,
			},
			{
				Group:   stage.GroupUplift,
				Label:   "Total uplift (ΣU)",
				Formula: "U1 + U2",
				Value:   total,
			},
		},
	}
	if total <= 0 {
		res.Warnings = append(res.Warnings, fmt.Sprintf("no net uplift: groundwater at GL-%gm is below the foundation", g.GroundwaterDepthM))
	}
	return res, nil
}
