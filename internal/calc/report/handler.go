package report

import (
	"Ballast/internal/calc/buoyancy"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
)

type Handler struct {
	Links     *Signer
	PublicURL string
}

type LinkResponse struct {
	Token     string    `json:"token"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

func decode(w http.ResponseWriter, r *http.Request) (Input, bool) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return Input{}, false
	}
	return input, true
}

func (h *Handler) PDF(w http.ResponseWriter, r *http.Request) {
	input, ok := decode(w, r)
	if !ok {
		return
	}
	h.renderPDF(w, input)
}

func (h *Handler) XLSX(w http.ResponseWriter, r *http.Request) {
	input, ok := decode(w, r)
	if !ok {
		return
	}
	doc, err := Build(input)
	if err != nil {
		buoyancy.WriteError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"buoyancy.xlsx\"")
	if err := WriteXLSX(w, doc); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
	}
}

// Link validates the snapshot and returns a signed URL that renders it as PDF.
func (h *Handler) Link(w http.ResponseWriter, r *http.Request) {
	input, ok := decode(w, r)
	if !ok {
		return
	}
	if err := buoyancy.Validate(input.Input); err != nil {
		buoyancy.WriteError(w, err)
		return
	}
	token, exp, err := h.Links.Sign(input)
	if errors.Is(err, ErrLinksDisabled) {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	if err != nil {
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(LinkResponse{
		Token:     token,
		URL:       strings.TrimRight(h.PublicURL, "/") + "/api/tools/report/pdf/" + token,
		ExpiresAt: exp,
	})
}

func (h *Handler) Shared(w http.ResponseWriter, r *http.Request) {
	input, err := h.Links.Verify(mux.Vars(r)["token"])
	if errors.Is(err, ErrLinksDisabled) {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	if err != nil {
		http.Error(w, "Invalid or expired link", http.StatusUnauthorized)
		return
	}
	h.renderPDF(w, input)
}

func (h *Handler) renderPDF(w http.ResponseWriter, input Input) {
	doc, err := Build(input)
	if err != nil {
		buoyancy.WriteError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"report.pdf\"")
	if err := WritePDF(w, doc); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
