package member

import (
	"Ballast/internal/calc/geometry"
	"fmt"
)

type Kind string

const (
	KindBeam   Kind = "beam"
	KindGirder Kind = "girder"
	KindColumn Kind = "column"
)

type Role string

const (
	RoleB1     Role = "B1"
	RoleG1     Role = "G1"
	RoleG2     Role = "G2"
	RoleColumn Role = "C"
)

// Axis is the plan direction a framing member runs along.
type Axis string

const (
	AxisX Axis = "x"
	AxisY Axis = "y"
)

// Section is a rectangular cross-section in mm.
type Section struct {
	WidthMM float64 `json:"width_mm" yaml:"width_mm"`
	DepthMM float64 `json:"depth_mm" yaml:"depth_mm"`
}

func (r Role) Kind() Kind {
	switch r {
	case RoleB1:
		return KindBeam
	case RoleColumn:
		return KindColumn
	default:
		return KindGirder
	}
}

// Axis is X for B1 and G2 and Y for G1. Columns have no plan axis.
func (r Role) Axis() Axis {
	if r == RoleG1 {
		return AxisY
	}
	return AxisX
}

type Input struct {
	Kind               Kind    `json:"kind"`
	WidthMM            float64 `json:"width_mm"`
	DepthMM            float64 `json:"depth_mm"`
	SpanM              float64 `json:"span_m"`
	BeltMM             float64 `json:"belt_mm"`
	UnitWeightConcrete float64 `json:"unit_weight_concrete"`
	Done               *bool   `json:"done,omitempty"`
}

type Result struct {
	WeightKN     float64 `json:"weight_kn"`
	Formula      string  `json:"formula"`
	NegativeBelt bool    `json:"negative_belt"`
	Notes        string  `json:"notes"`
}

func Calculate(in Input) (Result, error) {
	for _, v := range []float64{in.WidthMM, in.DepthMM, in.SpanM, in.BeltMM, in.UnitWeightConcrete} {
		if !geometry.Finite(v) {
			return Result{}, geometry.NewConfigError("member", "dimensions must be finite numbers")
		}
	}
	if in.WidthMM <= 0 || in.DepthMM <= 0 {
		return Result{}, geometry.NewConfigError("section", "width and depth must be positive")
	}
	if in.SpanM <= 0 {
		return Result{}, geometry.NewConfigError("span_m", "must be positive")
	}
	if in.BeltMM < 0 {
		return Result{}, geometry.NewConfigError("belt_mm", "must not be negative")
	}
	if in.UnitWeightConcrete <= 0 {
		return Result{}, geometry.NewConfigError("unit_weight_concrete", "must be positive")
	}
	if in.Kind == "" {
		in.Kind = KindBeam
	}
	m := 1.0
	if in.Done != nil {
		m = Multiplier(*in.Done)
	}
	sec := Section{WidthMM: in.WidthMM, DepthMM: in.DepthMM}
	w := Weight(in.Kind, sec, in.SpanM, in.BeltMM, in.UnitWeightConcrete, m)
	notes := "Self-weight below the slab belt."
	if in.Kind == KindColumn {
		notes = "Column self-weight over the full storey height."
	}
	neg := NegativeBelt(in.Kind, sec, in.BeltMM)
	if neg {
		notes = "Depth does not exceed the belt thickness; contribution is negative."
	}
	return Result{
		WeightKN:     w,
		Formula:      Explain(in.Kind, sec, in.SpanM, in.BeltMM, in.UnitWeightConcrete, m),
		NegativeBelt: neg,
		Notes:        notes,
	}, nil
}

// Multiplier turns a completion flag into the 0/1 weight factor.
func Multiplier(done bool) float64 {
	if done {
		return 1
	}
	return 0
}

// Weight is the self-weight in kN. For beams and girders the belt is subtracted
// from the depth and the result is not clamped; columns ignore the belt and
// spanM is the storey height.
func Weight(kind Kind, s Section, spanM, beltMM, unitWeight, m float64) float64 {
	if kind == KindColumn {
		return unitWeight * (s.WidthMM / 1000) * (s.DepthMM / 1000) * spanM * m
	}
	return unitWeight * (s.WidthMM / 1000) * ((s.DepthMM - beltMM) / 1000) * spanM * m
}

func NegativeBelt(kind Kind, s Section, beltMM float64) bool {
	return kind != KindColumn && s.DepthMM <= beltMM
}

func Explain(kind Kind, s Section, spanM, beltMM, unitWeight, m float64) string {
	if kind == KindColumn {
		return fmt.Sprintf("%g x %g x %g x %g x %g", unitWeight, s.WidthMM/1000, s.DepthMM/1000, spanM, m)
	}
	return fmt.Sprintf("%g x %g x (%g - %g) x %g x %g", unitWeight, s.WidthMM/1000, s.DepthMM/1000, beltMM/1000, spanM, m)
}
