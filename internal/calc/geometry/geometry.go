package geometry

import (
	"errors"
	"fmt"
	"math"
)

const MaxLevels = 10

// Geometry holds the plan, level and footing dimensions of one snapshot.
// Lengths are in mm except GroundwaterDepthM, which is metres below GL.
type Geometry struct {
	PlanXMM           float64   `json:"plan_x_mm" yaml:"plan_x_mm"`
	PlanYMM           float64   `json:"plan_y_mm" yaml:"plan_y_mm"`
	SoilHeightMM      float64   `json:"soil_height_mm" yaml:"soil_height_mm"`
	LevelHeightsMM    []float64 `json:"level_heights_mm" yaml:"level_heights_mm"`
	FootingWidthMM    float64   `json:"footing_width_mm" yaml:"footing_width_mm"`
	FootingLengthMM   float64   `json:"footing_length_mm" yaml:"footing_length_mm"`
	FootingThickMM    float64   `json:"footing_thickness_mm" yaml:"footing_thickness_mm"`
	GroundwaterDepthM float64   `json:"groundwater_depth_m" yaml:"groundwater_depth_m"`
}

// Finite reports whether v is neither NaN nor infinite.
func Finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func (g Geometry) NumLevels() int { return len(g.LevelHeightsMM) }

// PlanArea is X·Y in m².
func (g Geometry) PlanArea() float64 {
	return g.PlanXMM * g.PlanYMM / 1e6
}

// FootingArea is the footing footprint in m².
func (g Geometry) FootingArea() float64 {
	return g.FootingWidthMM * g.FootingLengthMM / 1e6
}

// GeneralArea is the plan area outside the footing footprint.
func (g Geometry) GeneralArea() float64 {
	return g.PlanArea() - g.FootingArea()
}

func (g Geometry) SpanXM() float64 { return g.PlanXMM / 1000 }
func (g Geometry) SpanYM() float64 { return g.PlanYMM / 1000 }

func (g Geometry) LevelHeightM(i int) float64 {
	return g.LevelHeightsMM[i] / 1000
}

// DepthToLevelTopMM is the distance from GL down to the top of level i.
func (g Geometry) DepthToLevelTopMM(i int) float64 {
	d := g.SoilHeightMM
	for k := 0; k < i && k < len(g.LevelHeightsMM); k++ {
		d += g.LevelHeightsMM[k]
	}
	return d
}

// TotalHeightM is soil plus every level height, GL to the top of the bottom slab.
func (g Geometry) TotalHeightM() float64 {
	return g.DepthToLevelTopMM(len(g.LevelHeightsMM)) / 1000
}

// WaterHeadM is measured from the groundwater table down to the top of the bottom slab.
func (g Geometry) WaterHeadM() float64 {
	return g.TotalHeightM() - g.GroundwaterDepthM
}

func (g Geometry) Validate() error {
	var errs []error
	check := func(ok bool, field, reason string) {
		if !ok {
			errs = append(errs, &ConfigError{Field: field, Reason: reason})
		}
	}
	finite := Finite

	check(finite(g.PlanXMM) && g.PlanXMM > 0, "plan_x_mm", "must be positive")
	check(finite(g.PlanYMM) && g.PlanYMM > 0, "plan_y_mm", "must be positive")
	check(finite(g.SoilHeightMM) && g.SoilHeightMM >= 0, "soil_height_mm", "must not be negative")
	n := len(g.LevelHeightsMM)
	check(n >= 1 && n <= MaxLevels, "level_heights_mm", fmt.Sprintf("level count %d outside 1..%d", n, MaxLevels))
	for i, h := range g.LevelHeightsMM {
		check(finite(h) && h > 0, fmt.Sprintf("level_heights_mm[%d]", i), "must be positive")
	}
	check(finite(g.FootingWidthMM) && g.FootingWidthMM >= 0, "footing_width_mm", "must not be negative")
	check(finite(g.FootingLengthMM) && g.FootingLengthMM >= 0, "footing_length_mm", "must not be negative")
	check(finite(g.FootingThickMM) && g.FootingThickMM > 0, "footing_thickness_mm", "must be positive")
	check(finite(g.GroundwaterDepthM), "groundwater_depth_m", "must be a finite number")
	if len(errs) == 0 && g.FootingArea() > g.PlanArea() {
		errs = append(errs, &ConfigError{
			Field:  "footing_width_mm",
			Reason: fmt.Sprintf("footing footprint %.2f m² exceeds plan area %.2f m²", g.FootingArea(), g.PlanArea()),
		})
	}
	return errors.Join(errs...)
}
