package autodesign

import (
	"Ballast/internal/calc/buoyancy"
	"Ballast/internal/calc/geometry"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestBottomSlab(t *testing.T) {
	in := SlabInput{Input: buoyancy.DefaultInput()}
	in.TargetFS = 0.6
	res, err := BottomSlab(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.CurrentSlabMM != 400 || res.RequiredSlabMM != 450 {
		t.Fatalf("current = %v required = %v", res.CurrentSlabMM, res.RequiredSlabMM)
	}
	if !res.Result.Summary.Passed() {
		t.Fatalf("selected slab does not pass: %+v", res.Result.Summary)
	}

	below := in
	below.Layers.Bottom.SlabMM = res.RequiredSlabMM - defaultStepMM
	check, err := buoyancy.Calculate(below.Input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if check.Summary.Passed() {
		t.Fatalf("one step thinner also passes, selection is not minimal")
	}
}

func TestBottomSlabAlreadyPassing(t *testing.T) {
	in := SlabInput{Input: buoyancy.DefaultInput()}
	in.TargetFS = 0.5
	res, err := BottomSlab(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.RequiredSlabMM != res.CurrentSlabMM {
		t.Fatalf("required = %v", res.RequiredSlabMM)
	}
}

func TestBottomSlabImpossible(t *testing.T) {
	in := SlabInput{Input: buoyancy.DefaultInput()}
	in.Levels = append(in.Levels[:0:0], in.Levels...)
	in.Levels[len(in.Levels)-1].Done = false
	if _, err := BottomSlab(in); !geometry.IsConfigError(err) {
		t.Fatalf("expected config error, got %v", err)
	}

	in = SlabInput{Input: buoyancy.DefaultInput()}
	in.TargetFS = 2.5
	if _, err := BottomSlab(in); !geometry.IsConfigError(err) {
		t.Fatalf("expected config error for target above concrete/water ratio, got %v", err)
	}

	in = SlabInput{Input: buoyancy.DefaultInput(), StepMM: -5}
	if _, err := BottomSlab(in); !geometry.IsConfigError(err) {
		t.Fatalf("expected config error for negative step, got %v", err)
	}
}

func TestHandler(t *testing.T) {
	in := SlabInput{Input: buoyancy.DefaultInput()}
	in.TargetFS = 0.6
	body, _ := json.Marshal(in)
	rr := httptest.NewRecorder()
	(&Handler{}).BottomSlab(rr, httptest.NewRequest(http.MethodPost, "/api/premium/design/bottom-slab", bytes.NewReader(body)))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rr.Code, rr.Body.String())
	}
	var res SlabResult
	json.NewDecoder(rr.Body).Decode(&res)
	if res.RequiredSlabMM != 450 {
		t.Fatalf("required = %v", res.RequiredSlabMM)
	}
}
