package pet

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/studybuddy/backend/internal/middleware"
	"github.com/studybuddy/backend/internal/models"
	"github.com/studybuddy/backend/internal/progress"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetPet(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	p, err := h.service.Get(userID, time.Now().UTC())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load pet"})
		return
	}

	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) UpdatePet(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	var req models.UpdatePetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	p, err := h.service.Update(userID, req, time.Now().UTC())
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) FeedPet(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	resp, err := h.service.Feed(userID, time.Now().UTC())
	if errors.Is(err, ErrNotHungry) {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Your pet is not hungry right now"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to feed pet"})
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) ListAccessories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"accessories": Catalog})
}

func (h *Handler) UnlockAccessory(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	var req models.UnlockAccessoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if req.AccessoryID == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "accessory_id is required"})
		return
	}

	resp, err := h.service.UnlockAccessory(userID, req.AccessoryID, time.Now().UTC())
	if errors.Is(err, progress.ErrInsufficientXP) {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Not enough XP"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
