package slab

import (
	"math"
	"testing"
)

func TestArea(t *testing.T) {
	if got := Area(28.4, 67.24, 1); math.Abs(got-1909.616) > 1e-9 {
		t.Fatalf("roof slab = %v", got)
	}
	if got := Area(28.4, 67.24, 0); got != 0 {
		t.Fatalf("unbuilt slab = %v", got)
	}
}

func TestFootingZone(t *testing.T) {
	if got := FootingZoneRate(11.9, 24, 900, 400); math.Abs(got-23.9) > 1e-9 {
		t.Fatalf("footing rate = %v", got)
	}
	if got := FootingZone(11.9, 24, 900, 400, 9); math.Abs(got-215.1) > 1e-9 {
		t.Fatalf("footing zone = %v", got)
	}
}

func TestExplain(t *testing.T) {
	if got := ExplainArea("(24*(0.15) + 0.3)", 67.24, 1); got != "(24*(0.15) + 0.3) x 67.24 x 1" {
		t.Fatalf("area formula = %q", got)
	}
	if got := ExplainGeneralZone("(23*(0.1) + 24*(0.4))", 67.24, 9, 0); got != "(23*(0.1) + 24*(0.4)) x (67.24-9.00) x 0" {
		t.Fatalf("general formula = %q", got)
	}
	if got := ExplainFootingZone("(23*(0.1) + 24*(0.4))", 24, 900, 400, 9); got != "((23*(0.1) + 24*(0.4)) + 24 x (0.9-0.4)) x 9.00" {
		t.Fatalf("footing formula = %q", got)
	}
}
