package safety

import (
	"Ballast/internal/calc/geometry"
	"fmt"
	"math"
)

const DefaultTarget = 1.2

const Advisory = "buoyancy mitigation required"

type Verdict string

const (
	Pass Verdict = "OK"
	Fail Verdict = "NG"
)

type Input struct {
	WeightKN float64 `json:"weight_kn"`
	UpliftKN float64 `json:"uplift_kn"`
	Target   float64 `json:"target"`
}

type Summary struct {
	TotalWeight  float64 `json:"total_weight_kn"`
	TotalUplift  float64 `json:"total_uplift_kn"`
	SafetyFactor float64 `json:"safety_factor"`
	Target       float64 `json:"target"`
	Verdict      Verdict `json:"verdict"`
	Advisory     string  `json:"advisory,omitempty"`
}

func (s Summary) Passed() bool { return s.Verdict == Pass }

// Line renders the verdict the way the report prints it.
func (s Summary) Line() string {
	if s.Passed() {
		return fmt.Sprintf("%s (%.4f ≥ %g)", s.Verdict, s.SafetyFactor, s.Target)
	}
	return fmt.Sprintf("%s (%.4f < %g)", s.Verdict, s.SafetyFactor, s.Target)
}

// Evaluate divides weight by uplift. Without positive uplift the factor is 0,
// never an error or infinity.
func Evaluate(in Input) (Summary, error) {
	if in.Target <= 0 || math.IsNaN(in.Target) || math.IsInf(in.Target, 0) {
		return Summary{}, geometry.NewConfigError("target_fs", "must be positive")
	}
	fs := 0.0
	if in.UpliftKN > 0 {
		fs = in.WeightKN / in.UpliftKN
	}
	s := Summary{
		TotalWeight:  in.WeightKN,
		TotalUplift:  in.UpliftKN,
		SafetyFactor: fs,
		Target:       in.Target,
		Verdict:      Fail,
	}
	if fs >= in.Target {
		s.Verdict = Pass
	} else {
		s.Advisory = Advisory
	}
	return s, nil
}
