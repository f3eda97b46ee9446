package slab

import "fmt"

// Area returns the weight of a slab zone: rate (kN/m²) over area (m²) times the
// completion multiplier.
func Area(rateKNM2, areaM2, m float64) float64 {
	return rateKNM2 * areaM2 * m
}

// FootingZoneRate is the bottom-slab rate plus the concrete between the bottom
// of the slab and the bottom of the footing.
func FootingZoneRate(bottomRate, unitWeight, footingThickMM, bottomSlabMM float64) float64 {
	return bottomRate + unitWeight*(footingThickMM-bottomSlabMM)/1000
}

// FootingZone is the weight of the footing footprint. The footing is always
// built, so no multiplier applies.
func FootingZone(bottomRate, unitWeight, footingThickMM, bottomSlabMM, footingAreaM2 float64) float64 {
	return FootingZoneRate(bottomRate, unitWeight, footingThickMM, bottomSlabMM) * footingAreaM2
}

func ExplainArea(rateExpr string, areaM2, m float64) string {
	return fmt.Sprintf("%s x %.2f x %g", rateExpr, areaM2, m)
}

func ExplainGeneralZone(rateExpr string, planM2, footingM2, m float64) string {
	return fmt.Sprintf("%s x (%.2f-%.2f) x %g", rateExpr, planM2, footingM2, m)
}

func ExplainFootingZone(rateExpr string, unitWeight, footingThickMM, bottomSlabMM, footingAreaM2 float64) string {
	return fmt.Sprintf("(%s + %g x (%g-%g)) x %.2f", rateExpr, unitWeight, footingThickMM/1000, bottomSlabMM/1000, footingAreaM2)
}
