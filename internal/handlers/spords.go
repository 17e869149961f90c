package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/madelynseal/spord-tracker/internal/models"
	"github.com/madelynseal/spord-tracker/internal/store"
)

// SpordHandler is the JSON API the index page's client talks to. All of its
// routes are wrapped with SessionAuth.RequireAPI.
type SpordHandler struct {
	Store *store.Store
}

type spordListResponse struct {
	Spords  []models.Spord `json:"spords"`
	Skipped int            `json:"skipped"`
}

func (h *SpordHandler) List(w http.ResponseWriter, r *http.Request) {
	spords, skipped, err := h.Store.ListSpords()
	if err != nil {
		slog.Error("Failed to list spords", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if spords == nil {
		spords = []models.Spord{}
	}
	writeJSON(w, http.StatusOK, spordListResponse{Spords: spords, Skipped: skipped})
}

func (h *SpordHandler) Create(w http.ResponseWriter, r *http.Request) {
	var sp models.Spord
	if err := json.NewDecoder(r.Body).Decode(&sp); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	if sp.CustomerName == "" {
		http.Error(w, "customer_name is required", http.StatusBadRequest)
		return
	}

	sp.ID = 0 // the store assigns the real id
	if sp.CreationDate.IsZero() {
		sp.CreationDate = time.Now()
	}

	if err := h.Store.CreateSpord(&sp); err != nil {
		slog.Error("Failed to create spord", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, sp)
}

func (h *SpordHandler) Update(w http.ResponseWriter, r *http.Request) {
	var sp models.Spord
	if err := json.NewDecoder(r.Body).Decode(&sp); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	if sp.ID == 0 {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}

	err := h.Store.UpdateSpord(&sp)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "Spord not found", http.StatusNotFound)
		return
	}
	if err != nil {
		slog.Error("Failed to update spord", "error", err, "id", sp.ID)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, sp)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
	}
}
