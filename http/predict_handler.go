package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"housing-agent/domain"
	"housing-agent/repository"
	"housing-agent/service"
)

type PredictHandler struct {
	advisor *service.AdvisorService
}

func NewPredictHandler(advisor *service.AdvisorService) *PredictHandler {
	return &PredictHandler{advisor: advisor}
}

// Predict handles POST /predict: a FinancialProfile in, the predicted safe
// rent plus the in-budget listings out.
func (h *PredictHandler) Predict(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	var profile domain.FinancialProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		log.Printf("Error decoding request body: %v", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	rec, err := h.advisor.Advise(r.Context(), profile)
	if err != nil {
		log.Printf("Error advising: %v", err)
		if errors.Is(err, service.ErrInsufficientData) || errors.Is(err, repository.ErrDataUnavailable) {
			http.Error(w, "no training data available", http.StatusServiceUnavailable)
			return
		}
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	rec.Listings = service.SortByRent(rec.Listings)

	writeJSON(w, rec)
}
