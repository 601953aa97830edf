package progress

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
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

// ── Activities ──────────────────────────────────────────

func (h *Handler) RecordActivity(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	var req models.RecordActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if req.ActivityType == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "activity_type is required"})
		return
	}

	if err := h.service.Record(userID, req.ActivityType, req.ActivityDate, req.Details); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"status": "recorded"})
}

func (h *Handler) ListActivities(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	limit := intQueryParam(r.URL.Query(), "limit", 100)
	records, err := h.service.RecentActivities(userID, limit)
	if err != nil {
		log.WithError(err).Warn("[progress] failed to list activities")
		writeJSON(w, http.StatusOK, map[string]interface{}{"activities": []models.ActivityRecord{}})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"activities": records})
}

// ── Progress Summary ────────────────────────────────────

func (h *Handler) GetProgress(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	resp, err := h.service.Summary(userID, time.Now().UTC())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to get progress"})
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) ListAchievements(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	achievements, err := h.service.ListAchievements(userID)
	if err != nil {
		log.WithError(err).Warn("[progress] failed to list achievements")
		achievements = []models.Achievement{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"achievements": achievements})
}

// ── XP ──────────────────────────────────────────────────

func (h *Handler) AwardXP(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	var req models.AwardXPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if req.Points <= 0 {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "points must be positive"})
		return
	}

	resp, err := h.service.AwardXP(userID, req.Points, req.Reason)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to award XP"})
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) XPHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	limit := intQueryParam(r.URL.Query(), "limit", 100)
	events, err := h.service.XPHistory(userID, limit)
	if err != nil {
		log.WithError(err).Warn("[progress] failed to list xp events")
		events = []models.XPEvent{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"events": events})
}

func (h *Handler) SpendXP(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	var req models.SpendXPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if req.Cost <= 0 {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "cost must be positive"})
		return
	}

	remaining, err := h.service.SpendXP(userID, req.Cost, req.Item)
	if errors.Is(err, ErrInsufficientXP) {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Not enough XP"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to spend XP"})
		return
	}

	writeJSON(w, http.StatusOK, models.SpendResponse{TotalXP: remaining, Item: req.Item})
}

// ── Reset ───────────────────────────────────────────────

func (h *Handler) ResetProgress(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	if err := h.service.Reset(userID); err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to reset progress"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

// ── Helpers ─────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func intQueryParam(query url.Values, key string, defaultVal int) int {
	s := query.Get(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return defaultVal
	}
	return v
}
