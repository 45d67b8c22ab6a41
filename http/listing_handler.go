package http

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"housing-agent/domain"
	"housing-agent/repository"
	"housing-agent/service"
)

type ListingHandler struct {
	listings repository.ListingStore
}

func NewListingHandler(listings repository.ListingStore) *ListingHandler {
	return &ListingHandler{listings: listings}
}

type affordableResponse struct {
	Budget     int              `json:"budget"`
	Count      int              `json:"count"`
	Apartments []domain.Listing `json:"apartments"`
}

// Affordable handles GET /affordable/{budget}: every listing with monthly
// rent at or under the budget, ascending by rent. Listings are reloaded on
// each request so source edits show up without a restart.
func (h *ListingHandler) Affordable(w http.ResponseWriter, r *http.Request) {
	budget, err := strconv.Atoi(r.PathValue("budget"))
	if err != nil || budget < 0 {
		http.Error(w, "budget must be a non-negative integer", http.StatusBadRequest)
		return
	}

	listings, err := h.listings.Load()
	if err != nil {
		log.Printf("Error loading listings: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	affordable := service.SortByRent(service.Recommend(float64(budget), listings))

	writeJSON(w, affordableResponse{
		Budget:     budget,
		Count:      len(affordable),
		Apartments: affordable,
	})
}

// writeJSON encodes into a buffer first so no header is written on a
// marshaling failure.
func writeJSON(w http.ResponseWriter, payload any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		log.Printf("Error encoding response: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}
