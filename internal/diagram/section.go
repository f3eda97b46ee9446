package diagram

import "Ballast/internal/calc/geometry"

// Section holds what the cross-section drawing needs.
type Section struct {
	SoilHeightMM      float64
	LevelHeightsMM    []float64
	FootingThickMM    float64
	GroundwaterDepthM float64
}

// Bands are the drawn heights of the soil band, of one level band and of the
// footing band, in whatever unit the renderer uses.
type Bands struct {
	Soil    float64
	Level   float64
	Footing float64
}

func FromGeometry(g geometry.Geometry) Section {
	return Section{
		SoilHeightMM:      g.SoilHeightMM,
		LevelHeightsMM:    g.LevelHeightsMM,
		FootingThickMM:    g.FootingThickMM,
		GroundwaterDepthM: g.GroundwaterDepthM,
	}
}

// Total is the drawn depth from GL to the underside of the footing band.
func (b Bands) Total(levels int) float64 {
	return b.Soil + float64(levels)*b.Level + b.Footing
}

// WaterMarkY places the groundwater marker below GL in band units. Bands are
// not drawn to scale, so the depth is interpolated within the band it falls
// into; below the last level it moves into the footing band by one band per
// metre, at most the full band.
func WaterMarkY(s Section, b Bands) float64 {
	depth := s.GroundwaterDepthM * 1000
	if depth <= s.SoilHeightMM {
		if s.SoilHeightMM <= 0 {
			return 0
		}
		return depth / s.SoilHeightMM * b.Soil
	}
	y := b.Soil
	rem := depth - s.SoilHeightMM
	for _, h := range s.LevelHeightsMM {
		if rem <= h {
			return y + rem/h*b.Level
		}
		y += b.Level
		rem -= h
	}
	return y + min(rem/1000, 1)*b.Footing
}
