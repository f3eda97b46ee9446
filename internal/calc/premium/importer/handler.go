package importer

import (
	"Ballast/internal/calc/buoyancy"
	"encoding/json"
	"net/http"
)

type Handler struct{}

type ImportResult struct {
	Count  int             `json:"count"`
	Input  buoyancy.Input  `json:"input"`
	Result buoyancy.Result `json:"result"`
}

// Levels reads an uploaded level schedule into the default snapshot, or into
// the JSON snapshot in the "input" form field, and runs the check.
func (h *Handler) Levels(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	base := buoyancy.DefaultInput()
	if raw := r.FormValue("input"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &base); err != nil {
			http.Error(w, "Invalid request payload", http.StatusBadRequest)
			return
		}
	}

	heights, levels, err := ReadLevels(file)
	if err != nil {
		buoyancy.WriteError(w, err)
		return
	}
	in := Apply(base, heights, levels)
	res, err := buoyancy.Calculate(in)
	if err != nil {
		buoyancy.WriteError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ImportResult{Count: len(levels), Input: in, Result: res})
}
