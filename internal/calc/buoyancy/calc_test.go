package buoyancy

import (
	"Ballast/internal/calc/geometry"
	"Ballast/internal/calc/safety"
	"Ballast/internal/calc/stage"
	"math"
	"testing"
)

func near(a, b float64) bool { return math.Abs(a-b) <= 1e-9*math.Max(1, math.Abs(b)) }

func cloneInput(in Input) Input {
	in.Geometry.LevelHeightsMM = append([]float64(nil), in.Geometry.LevelHeightsMM...)
	in.Levels = append([]stage.Level(nil), in.Levels...)
	return in
}

func TestDefaultScenario(t *testing.T) {
	res, err := Calculate(DefaultInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := res.Summary
	if !near(s.TotalWeight, 3491.812) {
		t.Fatalf("ΣW = %v", s.TotalWeight)
	}
	if !near(s.TotalUplift, 5881.432) {
		t.Fatalf("ΣU = %v", s.TotalUplift)
	}
	if !near(res.Uplift.GeneralKN, 5055.232) || !near(res.Uplift.FootingKN, 826.2) {
		t.Fatalf("U1 = %v, U2 = %v", res.Uplift.GeneralKN, res.Uplift.FootingKN)
	}
	if !near(res.Uplift.WaterHeadM, 8.28) {
		t.Fatalf("water head = %v", res.Uplift.WaterHeadM)
	}
	if !near(s.SafetyFactor, 0.5937009898269673) {
		t.Fatalf("fs = %v", s.SafetyFactor)
	}
	if s.Verdict != safety.Fail || s.Advisory != safety.Advisory {
		t.Fatalf("verdict = %v advisory = %q", s.Verdict, s.Advisory)
	}
	if !near(res.Rates.Roof.KNM2, 28.4) || !near(res.Rates.Typical.KNM2, 3.9) || !near(res.Rates.Bottom.KNM2, 11.9) {
		t.Fatalf("rates = %+v", res.Rates)
	}
	if res.Mitigation == nil || !near(res.Mitigation.DeficitKN, 1.2*5881.432-3491.812) {
		t.Fatalf("mitigation = %+v", res.Mitigation)
	}
	groups := res.Ledger.Groups()
	if groups[0] != stage.GroupRoof || groups[len(groups)-1] != stage.GroupUplift {
		t.Fatalf("ledger groups = %v", groups)
	}
	if res.Ledger.Len() != 15 {
		t.Fatalf("ledger length = %d", res.Ledger.Len())
	}
}

func TestMitigationAnchors(t *testing.T) {
	in := DefaultInput()
	in.AnchorCapacityKN = 400
	res, err := Calculate(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Mitigation == nil || res.Mitigation.AnchorCount != 9 {
		t.Fatalf("mitigation = %+v", res.Mitigation)
	}
}

func TestFlagsOnlyMoveWeight(t *testing.T) {
	base, err := Calculate(DefaultInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range DefaultInput().Levels {
		off := cloneInput(DefaultInput())
		off.Levels[i].Done = false
		res, err := Calculate(off)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want, err := stage.LevelContribution(off.Input, i)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !near(base.Summary.TotalWeight-res.Summary.TotalWeight, want) {
			t.Fatalf("level %d delta = %v, want %v", i, base.Summary.TotalWeight-res.Summary.TotalWeight, want)
		}
		if res.Summary.TotalUplift != base.Summary.TotalUplift {
			t.Fatalf("uplift changed with level %d flag: %v", i, res.Summary.TotalUplift)
		}
	}

	none := cloneInput(DefaultInput())
	none.Roof.Done = false
	for i := range none.Levels {
		none.Levels[i].Done = false
	}
	res, err := Calculate(none)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Summary.TotalUplift != base.Summary.TotalUplift {
		t.Fatalf("uplift changed with flags: %v", res.Summary.TotalUplift)
	}
	if res.Summary.SafetyFactor >= base.Summary.SafetyFactor {
		t.Fatalf("fs did not drop: %v", res.Summary.SafetyFactor)
	}
}

func TestZeroUplift(t *testing.T) {
	in := cloneInput(DefaultInput())
	in.Geometry.SoilHeightMM = 0
	in.Geometry.LevelHeightsMM = []float64{4000}
	in.Geometry.FootingWidthMM = 0
	in.Geometry.FootingLengthMM = 0
	in.Geometry.GroundwaterDepthM = 4.5
	in.Layers.Bottom.SlabMM = 500
	in.Levels = in.Levels[:1]
	res, err := Calculate(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Summary.TotalUplift != 0 || res.Summary.SafetyFactor != 0 {
		t.Fatalf("summary = %+v", res.Summary)
	}
	if res.Summary.Verdict != safety.Fail {
		t.Fatalf("verdict = %v", res.Summary.Verdict)
	}
	if res.Mitigation != nil {
		t.Fatalf("no mitigation without uplift, got %+v", res.Mitigation)
	}
	if len(res.Warnings) == 0 {
		t.Fatalf("expected a no-uplift warning")
	}
}

func TestTarget(t *testing.T) {
	in := DefaultInput()
	in.TargetFS = 0
	res, err := Calculate(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Summary.Target != safety.DefaultTarget {
		t.Fatalf("target = %v", res.Summary.Target)
	}

	in.TargetFS = 0.5
	res, err = Calculate(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Summary.Passed() || res.Mitigation != nil {
		t.Fatalf("expected pass at 0.5: %+v", res.Summary)
	}

	in.TargetFS = -1
	if _, err := Calculate(in); !geometry.IsConfigError(err) {
		t.Fatalf("expected config error, got %v", err)
	}
}

func TestInvalidInput(t *testing.T) {
	in := cloneInput(DefaultInput())
	in.Geometry.PlanXMM = 0
	if _, err := Calculate(in); !geometry.IsConfigError(err) {
		t.Fatalf("expected config error, got %v", err)
	}
	in = cloneInput(DefaultInput())
	in.AnchorCapacityKN = -5
	if _, err := Calculate(in); !geometry.IsConfigError(err) {
		t.Fatalf("expected config error, got %v", err)
	}
	// An infinite member must not turn into an infinite factor and a pass.
	in = cloneInput(DefaultInput())
	in.Roof.B1.WidthMM = math.Inf(1)
	if res, err := Calculate(in); !geometry.IsConfigError(err) {
		t.Fatalf("expected config error, got %v (verdict %v)", err, res.Summary.Verdict)
	}
	in = cloneInput(DefaultInput())
	in.Layers.Typical.CeilingKN = math.NaN()
	if _, err := Calculate(in); !geometry.IsConfigError(err) {
		t.Fatalf("expected config error, got %v", err)
	}
	in = cloneInput(DefaultInput())
	in.TargetFS = math.Inf(1)
	if _, err := Calculate(in); !geometry.IsConfigError(err) {
		t.Fatalf("expected config error, got %v", err)
	}
}

func TestWithLevels(t *testing.T) {
	in := WithLevels(4)
	if len(in.Levels) != 4 || len(in.Geometry.LevelHeightsMM) != 4 {
		t.Fatalf("levels = %d heights = %d", len(in.Levels), len(in.Geometry.LevelHeightsMM))
	}
	if in.Geometry.LevelHeightsMM[0] != 4050 || in.Geometry.LevelHeightsMM[3] != 5380 {
		t.Fatalf("heights = %v", in.Geometry.LevelHeightsMM)
	}
	if _, err := Calculate(in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := len(WithLevels(40).Levels); n != geometry.MaxLevels {
		t.Fatalf("levels clamped to %d", n)
	}
}
