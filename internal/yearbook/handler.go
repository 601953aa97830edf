package yearbook

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/studybuddy/backend/internal/middleware"
	"github.com/studybuddy/backend/internal/models"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ── Memories ────────────────────────────────────────────

func (h *Handler) CreateMemory(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	var req models.CreateMemoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	m, err := h.service.CreateMemory(userID, req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, m)
}

func (h *Handler) ListMemories(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	memories, err := h.service.ListMemories(userID)
	if err != nil {
		log.WithError(err).Warn("[yearbook] failed to list memories")
		memories = []models.Memory{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"memories": memories})
}

// ── Yearbooks ───────────────────────────────────────────

func (h *Handler) ListYearbooks(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	yearbooks, err := h.service.ListYearbooks(userID)
	if err != nil {
		log.WithError(err).Warn("[yearbook] failed to list yearbooks")
		yearbooks = []models.Yearbook{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"yearbooks": yearbooks})
}

func (h *Handler) GenerateYearbook(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	var req models.GenerateYearbookRequest
	if r.Body != nil {
		// Body is optional; a bare POST gets the default title.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	y, err := h.service.Generate(r.Context(), userID, req.Title, time.Now().UTC())
	if errors.Is(err, ErrTooFewMemories) {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Add at least 3 memories before generating a yearbook"})
		return
	}
	if err != nil {
		log.WithError(err).WithField("user_id", userID).Error("[yearbook] generation failed")
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to generate yearbook"})
		return
	}

	writeJSON(w, http.StatusCreated, y)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
