package buoyancy

import (
	"Ballast/internal/calc/geometry"
	"encoding/json"
	"net/http"
	"strconv"
)

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Calculate(input)
	if err != nil {
		WriteError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

// Defaults serves the reference input, resized by the optional ?levels=N.
func (h *Handler) Defaults(w http.ResponseWriter, r *http.Request) {
	in := DefaultInput()
	if s := r.URL.Query().Get("levels"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > geometry.MaxLevels {
			http.Error(w, "levels must be between 1 and 10", http.StatusBadRequest)
			return
		}
		in = WithLevels(n)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(in)
}

// WriteError maps invalid input to 400 and everything else to 500.
func WriteError(w http.ResponseWriter, err error) {
	if geometry.IsConfigError(err) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Error(w, "Internal error", http.StatusInternalServerError)
}
