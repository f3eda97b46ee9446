package stage

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"Ballast/internal/calc/geometry"
	"Ballast/internal/calc/loads"
	"Ballast/internal/calc/member"
)

func near(a, b float64) bool { return math.Abs(a-b) <= 1e-9*math.Max(1, math.Abs(b)) }

func level(done bool) Level {
	return Level{
		Done:   done,
		B1:     member.Section{WidthMM: 400, DepthMM: 600},
		G1:     member.Section{WidthMM: 400, DepthMM: 600},
		G2:     member.Section{WidthMM: 500, DepthMM: 600},
		Column: member.Section{WidthMM: 500, DepthMM: 700},
	}
}

func sampleInput() Input {
	return Input{
		Geometry: geometry.Geometry{
			PlanXMM:           8200,
			PlanYMM:           8200,
			SoilHeightMM:      1200,
			LevelHeightsMM:    []float64{4050, 5380},
			FootingWidthMM:    3000,
			FootingLengthMM:   3000,
			FootingThickMM:    900,
			GroundwaterDepthM: 2.35,
		},
		Materials: loads.Materials{UnitWeightConcrete: 24},
		Layers: loads.Layers{
			Roof:    loads.Layer{ToppingMM: 1100, PlainMM: 100, SlabMM: 250, CeilingKN: 0.3},
			Typical: loads.Layer{SlabMM: 150, CeilingKN: 0.3},
			Bottom:  loads.Layer{PlainMM: 100, SlabMM: 400},
		},
		Roof: Roof{
			Done: true,
			B1:   member.Section{WidthMM: 500, DepthMM: 900},
			G1:   member.Section{WidthMM: 500, DepthMM: 900},
			G2:   member.Section{WidthMM: 700, DepthMM: 900},
		},
		Levels: []Level{level(true), level(true)},
	}
}

func clone(in Input) Input {
	in.Geometry.LevelHeightsMM = append([]float64(nil), in.Geometry.LevelHeightsMM...)
	in.Levels = append([]Level(nil), in.Levels...)
	return in
}

func TestAggregateDefaultScenario(t *testing.T) {
	out, err := Aggregate(sampleInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !near(out.TotalWeight, 3491.812) {
		t.Fatalf("total weight = %v", out.TotalWeight)
	}
	wantLabels := []string{
		"Roof slab", "Roof B1", "Roof G1", "Roof G2",
		"B1F column", "B1F slab", "B1F B1", "B1F G1", "B1F G2",
		"B2F column", "B2F slab", "B2F footing zone",
	}
	var got []string
	for _, e := range out.Ledger.Entries() {
		got = append(got, e.Label)
	}
	if !reflect.DeepEqual(got, wantLabels) {
		t.Fatalf("labels = %v", got)
	}
	wantSubtotals := []Subtotal{{GroupRoof, 2127.08}, {"B1F", 411.384}, {"B2F", 953.348}}
	if len(out.Subtotals) != len(wantSubtotals) {
		t.Fatalf("subtotals = %+v", out.Subtotals)
	}
	for i, s := range wantSubtotals {
		if out.Subtotals[i].Group != s.Group || !near(out.Subtotals[i].Value, s.Value) {
			t.Fatalf("subtotal %d = %+v, want %+v", i, out.Subtotals[i], s)
		}
	}
	if len(out.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", out.Warnings)
	}
}

func TestRoofExample(t *testing.T) {
	out, err := Aggregate(sampleInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	roof := out.Ledger.Group(GroupRoof)
	if !near(roof[0].Value, 1909.616) {
		t.Fatalf("roof slab = %v", roof[0].Value)
	}
	if roof[0].Formula != "(18*(1.1) + 23*(0.1) + 24*(0.25) + 0.3) x 67.24 x 1" {
		t.Fatalf("roof slab formula = %q", roof[0].Formula)
	}
	if !near(roof[1].Value, 63.96) || !near(roof[2].Value, 63.96) || !near(roof[3].Value, 89.544) {
		t.Fatalf("roof framing = %v %v %v", roof[1].Value, roof[2].Value, roof[3].Value)
	}
}

func TestBottomLevelSplit(t *testing.T) {
	in := sampleInput()
	out, err := Aggregate(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g := in.Geometry
	fa := g.FootingArea()
	rate := loads.AreaRate(loads.ClassBottom, in.Layers.Bottom, in.Materials)
	general := rate * (g.PlanArea() - fa)
	footing := (rate + 24*(g.FootingThickMM-in.Layers.Bottom.SlabMM)/1000) * fa

	bottom := out.Ledger.Group("B2F")
	if bottom[1].Label != "B2F slab" || !near(bottom[1].Value, general) {
		t.Fatalf("general zone = %+v, want %v", bottom[1], general)
	}
	if bottom[2].Label != "B2F footing zone" || !near(bottom[2].Value, footing) {
		t.Fatalf("footing zone = %+v, want %v", bottom[2], footing)
	}
	if !near(bottom[1].Value+bottom[2].Value, 908.156) {
		t.Fatalf("bottom slab portion = %v", bottom[1].Value+bottom[2].Value)
	}
}

func TestMonotonicCompletion(t *testing.T) {
	for i := range sampleInput().Levels {
		base := clone(sampleInput())
		base.Levels[i].Done = false
		before, err := Aggregate(base)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		contribution, err := LevelContribution(base, i)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if contribution <= 0 {
			t.Fatalf("level %d contribution = %v", i, contribution)
		}
		done := clone(base)
		done.Levels[i].Done = true
		after, err := Aggregate(done)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !near(after.TotalWeight-before.TotalWeight, contribution) {
			t.Fatalf("level %d: delta %v, want %v", i, after.TotalWeight-before.TotalWeight, contribution)
		}
	}

	base := sampleInput()
	base.Roof.Done = false
	before, _ := Aggregate(base)
	roof, err := RoofContribution(base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	base.Roof.Done = true
	after, _ := Aggregate(base)
	if !near(after.TotalWeight-before.TotalWeight, roof) || !near(roof, 2127.08) {
		t.Fatalf("roof delta = %v, contribution %v", after.TotalWeight-before.TotalWeight, roof)
	}
}

func TestUnbuiltLevelKeepsFooting(t *testing.T) {
	in := clone(sampleInput())
	in.Roof.Done = false
	for i := range in.Levels {
		in.Levels[i].Done = false
	}
	out, err := Aggregate(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !near(out.TotalWeight, 215.1) {
		t.Fatalf("weight with nothing built = %v, want footing zone only", out.TotalWeight)
	}
	if out.Ledger.Len() != 12 {
		t.Fatalf("ledger keeps every line, got %d", out.Ledger.Len())
	}
}

func TestSingleLevel(t *testing.T) {
	in := clone(sampleInput())
	in.Geometry.LevelHeightsMM = []float64{4000}
	in.Levels = []Level{level(true)}
	out, err := Aggregate(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	labels := []string{}
	for _, e := range out.Ledger.Group("B1F") {
		labels = append(labels, e.Label)
	}
	if !reflect.DeepEqual(labels, []string{"B1F column", "B1F slab", "B1F footing zone"}) {
		t.Fatalf("labels = %v", labels)
	}
}

func TestDeterministic(t *testing.T) {
	a, _ := Aggregate(sampleInput())
	b, _ := Aggregate(sampleInput())
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("aggregate is not deterministic")
	}
}

func TestNegativeBeltWarning(t *testing.T) {
	in := clone(sampleInput())
	in.Levels[0].B1 = member.Section{WidthMM: 400, DepthMM: 120}
	out, err := Aggregate(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Warnings) != 1 || !strings.Contains(out.Warnings[0], "B1F B1") {
		t.Fatalf("warnings = %v", out.Warnings)
	}
	b1 := out.Ledger.Group("B1F")[2]
	if b1.Value >= 0 {
		t.Fatalf("negative belt contribution was clamped: %v", b1.Value)
	}
}

func TestValidate(t *testing.T) {
	in := clone(sampleInput())
	in.Levels = in.Levels[:1]
	if _, err := Aggregate(in); !geometry.IsConfigError(err) {
		t.Fatalf("expected config error for level count mismatch, got %v", err)
	}
	in = clone(sampleInput())
	in.Roof.G2.WidthMM = 0
	if _, err := Aggregate(in); !geometry.IsConfigError(err) {
		t.Fatalf("expected config error for roof section, got %v", err)
	}
	in = clone(sampleInput())
	in.Roof.B1.WidthMM = math.Inf(1)
	if _, err := Aggregate(in); !geometry.IsConfigError(err) {
		t.Fatalf("expected config error for infinite roof beam, got %v", err)
	}
	in = clone(sampleInput())
	in.Levels[0].Column.DepthMM = math.NaN()
	if _, err := Aggregate(in); !geometry.IsConfigError(err) {
		t.Fatalf("expected config error for nan column, got %v", err)
	}
	in = clone(sampleInput())
	in.Materials.UnitWeightConcrete = math.NaN()
	if _, err := Aggregate(in); !geometry.IsConfigError(err) {
		t.Fatalf("expected config error for nan unit weight, got %v", err)
	}
	in = clone(sampleInput())
	in.Levels[1].B1 = member.Section{}
	if _, err := Aggregate(in); err != nil {
		t.Fatalf("bottom level framing is not used, got %v", err)
	}
	if _, err := LevelContribution(sampleInput(), 5); err == nil {
		t.Fatalf("expected out of range error")
	}
}

func TestLedgerIsReadOnly(t *testing.T) {
	out, _ := Aggregate(sampleInput())
	entries := out.Ledger.Entries()
	entries[0].Value = -1
	if out.Ledger.Entries()[0].Value == -1 {
		t.Fatalf("ledger mutated through Entries")
	}
	joined := out.Ledger.Join(Entry{Group: GroupUplift, Label: "x"})
	if joined.Len() != out.Ledger.Len()+1 {
		t.Fatalf("join length = %d", joined.Len())
	}
	if !reflect.DeepEqual(joined.Groups(), []string{GroupRoof, "B1F", "B2F", GroupUplift}) {
		t.Fatalf("groups = %v", joined.Groups())
	}
}
