package buoyancy

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHandlerCalc(t *testing.T) {
	body, _ := json.Marshal(DefaultInput())
	req := httptest.NewRequest(http.MethodPost, "/api/tools/buoyancy/calc", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	(&Handler{}).Calc(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rr.Code, rr.Body.String())
	}
	var res struct {
		Summary struct {
			Verdict      string  `json:"verdict"`
			SafetyFactor float64 `json:"safety_factor"`
		} `json:"summary"`
		Ledger []struct {
			Label string `json:"label"`
		} `json:"ledger"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Summary.Verdict != "NG" || len(res.Ledger) != 15 {
		t.Fatalf("unexpected response %+v", res)
	}
}

func TestHandlerErrors(t *testing.T) {
	rr := httptest.NewRecorder()
	(&Handler{}).Calc(rr, httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString("{")))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("bad json status = %d", rr.Code)
	}

	in := DefaultInput()
	in.Geometry.PlanYMM = -1
	body, _ := json.Marshal(in)
	rr = httptest.NewRecorder()
	(&Handler{}).Calc(rr, httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body)))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("invalid input status = %d", rr.Code)
	}
}

func TestHandlerDefaults(t *testing.T) {
	rr := httptest.NewRecorder()
	(&Handler{}).Defaults(rr, httptest.NewRequest(http.MethodGet, "/api/tools/buoyancy/defaults?levels=3", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var in Input
	if err := json.NewDecoder(rr.Body).Decode(&in); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(in.Levels) != 3 {
		t.Fatalf("levels = %d", len(in.Levels))
	}

	rr = httptest.NewRecorder()
	(&Handler{}).Defaults(rr, httptest.NewRequest(http.MethodGet, "/?levels=0", nil))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rr.Code)
	}
}
