package anchors

import (
	"Ballast/internal/calc/geometry"
	"math"
)

// MaxAnchors bounds the count; a capacity that needs more is not a usable anchor.
const MaxAnchors = 10000

// Input describes a failed check. CapacityKN is the design tension capacity of
// one uplift anchor; zero means only the deficit is reported.
type Input struct {
	WeightKN   float64 `json:"weight_kn"`
	UpliftKN   float64 `json:"uplift_kn"`
	Target     float64 `json:"target"`
	CapacityKN float64 `json:"capacity_kn"`
}

type Result struct {
	RequiredResistanceKN float64 `json:"required_resistance_kn"`
	DeficitKN            float64 `json:"deficit_kn"`
	AnchorCount          int     `json:"anchor_count,omitempty"`
	CapacityKN           float64 `json:"capacity_kn,omitempty"`
	Notes                string  `json:"notes"`
}

// Size returns the extra resistance needed to reach the target factor and, when
// an anchor capacity is given, how many anchors provide it.
func Size(in Input) (Result, error) {
	if in.Target <= 0 {
		return Result{}, geometry.NewConfigError("target_fs", "must be positive")
	}
	if in.CapacityKN < 0 || !geometry.Finite(in.CapacityKN) {
		return Result{}, geometry.NewConfigError("anchor_capacity_kn", "must be a finite, non-negative number")
	}
	required := in.Target * in.UpliftKN
	deficit := math.Max(required-in.WeightKN, 0)
	res := Result{
		RequiredResistanceKN: required,
		DeficitKN:            deficit,
		Notes:                "Additional permanent resistance needed: ballast, tension anchors or tension piles.",
	}
	if in.CapacityKN > 0 && deficit > 0 {
		count := math.Ceil(deficit / in.CapacityKN)
		if count > MaxAnchors {
			return Result{}, geometry.NewConfigError("anchor_capacity_kn", "%g kN needs more than %d anchors", in.CapacityKN, MaxAnchors)
		}
		res.CapacityKN = in.CapacityKN
		res.AnchorCount = max(int(count), 1)
	}
	return res, nil
}
