package recommend

import (
	"Ballast/internal/calc/buoyancy"
	"encoding/json"
	"net/http"
)

type Handler struct{}

func (h *Handler) Dewatering(w http.ResponseWriter, r *http.Request) {
	var input buoyancy.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Dewatering(input)
	if err != nil {
		buoyancy.WriteError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
