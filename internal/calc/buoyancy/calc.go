package buoyancy

import (
	"Ballast/internal/calc/anchors"
	"Ballast/internal/calc/geometry"
	"Ballast/internal/calc/loads"
	"Ballast/internal/calc/safety"
	"Ballast/internal/calc/stage"
	"Ballast/internal/calc/uplift"
)

// Input is a full construction-stage snapshot. TargetFS of 0 means the
// default 1.2; AnchorCapacityKN is optional and only used on a failed check.
type Input struct {
	stage.Input      `yaml:",inline"`
	TargetFS         float64 `json:"target_fs" yaml:"target_fs"`
	AnchorCapacityKN float64 `json:"anchor_capacity_kn,omitempty" yaml:"anchor_capacity_kn,omitempty"`
}

type Result struct {
	Summary    safety.Summary   `json:"summary"`
	Rates      loads.Result     `json:"rates"`
	Ledger     stage.Ledger     `json:"ledger"`
	Subtotals  []stage.Subtotal `json:"subtotals"`
	Uplift     uplift.Result    `json:"uplift"`
	Warnings   []string         `json:"warnings,omitempty"`
	Mitigation *anchors.Result  `json:"mitigation,omitempty"`
}

// Target resolves the required factor.
func (in Input) Target() float64 {
	if in.TargetFS == 0 {
		return safety.DefaultTarget
	}
	return in.TargetFS
}

func Validate(in Input) error {
	if in.TargetFS < 0 || !geometry.Finite(in.TargetFS) {
		return geometry.NewConfigError("target_fs", "must not be negative")
	}
	if in.AnchorCapacityKN < 0 || !geometry.Finite(in.AnchorCapacityKN) {
		return geometry.NewConfigError("anchor_capacity_kn", "must not be negative")
	}
	return stage.Validate(in.Input)
}

// Calculate runs the whole check: area rates, staged weight, uplift and the
// safety factor. The ledger lists weight lines first and uplift lines last.
func Calculate(in Input) (Result, error) {
	if err := Validate(in); err != nil {
		return Result{}, err
	}
	rates, err := loads.Calculate(loads.Input{Materials: in.Materials, Layers: in.Layers})
	if err != nil {
		return Result{}, err
	}
	weight, err := stage.Aggregate(in.Input)
	if err != nil {
		return Result{}, err
	}
	up, err := uplift.Calculate(uplift.Input{Geometry: in.Geometry, BottomSlabMM: in.Layers.Bottom.SlabMM})
	if err != nil {
		return Result{}, err
	}
	summary, err := safety.Evaluate(safety.Input{
		WeightKN: weight.TotalWeight,
		UpliftKN: up.TotalKN,
		Target:   in.Target(),
	})
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Summary:   summary,
		Rates:     rates,
		Ledger:    weight.Ledger.Join(up.Entries...),
		Subtotals: weight.Subtotals,
		Uplift:    up,
	}
	res.Warnings = append(res.Warnings, weight.Warnings...)
	res.Warnings = append(res.Warnings, up.Warnings...)

	if !summary.Passed() && up.TotalKN > 0 {
		m, err := anchors.Size(anchors.Input{
			WeightKN:   weight.TotalWeight,
			UpliftKN:   up.TotalKN,
			Target:     summary.Target,
			CapacityKN: in.AnchorCapacityKN,
		})
		if err != nil {
			return Result{}, err
		}
		res.Mitigation = &m
	}
	return res, nil
}
