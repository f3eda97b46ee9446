package diagram

import (
	"Ballast/internal/calc/geometry"
	"encoding/json"
	"net/http"
)

type Handler struct{}

// Render accepts a snapshot (only its geometry is read) and returns a PNG.
func (h *Handler) Render(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Geometry geometry.Geometry `json:"geometry"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if err := input.Geometry.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	if err := WritePNG(w, FromGeometry(input.Geometry)); err != nil {
		http.Error(w, "Diagram generation error", http.StatusInternalServerError)
	}
}
