package loads

import (
	"Ballast/internal/calc/geometry"
	"fmt"
)

type Class string

const (
	ClassRoof    Class = "roof"
	ClassTypical Class = "typical"
	ClassBottom  Class = "bottom"
)

// Unit weights in kN/m³ that are not user inputs.
const (
	UnitWeightTopping = 18.0
	UnitWeightPlain   = 23.0
	UnitWeightWater   = 10.0
)

type Materials struct {
	UnitWeightConcrete float64 `json:"unit_weight_concrete" yaml:"unit_weight_concrete"`
}

// Layer is the build-up of one level class. Thicknesses in mm, ceiling in kN/m².
type Layer struct {
	ToppingMM float64 `json:"topping_mm,omitempty" yaml:"topping_mm,omitempty"`
	PlainMM   float64 `json:"plain_mm,omitempty" yaml:"plain_mm,omitempty"`
	SlabMM    float64 `json:"slab_mm" yaml:"slab_mm"`
	CeilingKN float64 `json:"ceiling_kn_m2,omitempty" yaml:"ceiling_kn_m2,omitempty"`
}

type Layers struct {
	Roof    Layer `json:"roof" yaml:"roof"`
	Typical Layer `json:"typical" yaml:"typical"`
	Bottom  Layer `json:"bottom" yaml:"bottom"`
}

func (l Layers) For(class Class) Layer {
	switch class {
	case ClassRoof:
		return l.Roof
	case ClassBottom:
		return l.Bottom
	default:
		return l.Typical
	}
}

type Input struct {
	Materials Materials `json:"materials"`
	Layers    Layers    `json:"layers"`
}

type Rate struct {
	Class   Class   `json:"class"`
	KNM2    float64 `json:"kn_m2"`
	Formula string  `json:"formula"`
}

type Result struct {
	Roof    Rate `json:"roof"`
	Typical Rate `json:"typical"`
	Bottom  Rate `json:"bottom"`
}

func (r Result) For(class Class) Rate {
	switch class {
	case ClassRoof:
		return r.Roof
	case ClassBottom:
		return r.Bottom
	default:
		return r.Typical
	}
}

func Calculate(in Input) (Result, error) {
	if err := Validate(in); err != nil {
		return Result{}, err
	}
	rate := func(c Class) Rate {
		layer := in.Layers.For(c)
		return Rate{Class: c, KNM2: AreaRate(c, layer, in.Materials), Formula: Explain(c, layer, in.Materials)}
	}
	return Result{
		Roof:    rate(ClassRoof),
		Typical: rate(ClassTypical),
		Bottom:  rate(ClassBottom),
	}, nil
}

func Validate(in Input) error {
	if uc := in.Materials.UnitWeightConcrete; !geometry.Finite(uc) || uc <= 0 {
		return geometry.NewConfigError("unit_weight_concrete", "must be positive")
	}
	for _, c := range []Class{ClassRoof, ClassTypical, ClassBottom} {
		l := in.Layers.For(c)
		for _, v := range []float64{l.ToppingMM, l.PlainMM, l.SlabMM, l.CeilingKN} {
			if !geometry.Finite(v) {
				return geometry.NewConfigError(fmt.Sprintf("layers.%s", c), "must be a finite number")
			}
		}
		if l.ToppingMM < 0 || l.PlainMM < 0 || l.SlabMM < 0 {
			return geometry.NewConfigError(fmt.Sprintf("layers.%s", c), "thickness must not be negative")
		}
		if c != ClassRoof && l.SlabMM <= 0 {
			return geometry.NewConfigError(fmt.Sprintf("layers.%s.slab_mm", c), "must be positive")
		}
	}
	return nil
}

// AreaRate is the dead load of one square metre of the class build-up, kN/m².
func AreaRate(class Class, l Layer, m Materials) float64 {
	uc := m.UnitWeightConcrete
	switch class {
	case ClassRoof:
		return UnitWeightTopping*(l.ToppingMM/1000) + UnitWeightPlain*(l.PlainMM/1000) + uc*(l.SlabMM/1000) + l.CeilingKN
	case ClassBottom:
		return UnitWeightPlain*(l.PlainMM/1000) + uc*(l.SlabMM/1000)
	default:
		return uc*(l.SlabMM/1000) + l.CeilingKN
	}
}

// Explain renders AreaRate's expression with its operands.
func Explain(class Class, l Layer, m Materials) string {
	uc := num(m.UnitWeightConcrete)
	switch class {
	case ClassRoof:
		return fmt.Sprintf("(%s*(%s) + %s*(%s) + %s*(%s) + %s)",
			num(UnitWeightTopping), num(l.ToppingMM/1000), num(UnitWeightPlain), num(l.PlainMM/1000),
			uc, num(l.SlabMM/1000), num(l.CeilingKN))
	case ClassBottom:
		return fmt.Sprintf("(%s*(%s) + %s*(%s))",
			num(UnitWeightPlain), num(l.PlainMM/1000), uc, num(l.SlabMM/1000))
	default:
		return fmt.Sprintf("(%s*(%s) + %s)", uc, num(l.SlabMM/1000), num(l.CeilingKN))
	}
}

func num(v float64) string {
	return fmt.Sprintf("%g", v)
}
