package yearbook

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/studybuddy/backend/internal/models"
)

const (
	minMemoriesForYearbook = 3
	yearbookXPReward       = 20
)

var ErrTooFewMemories = errors.New("not enough memories to generate a yearbook")

// Ledger is the slice of the progress service the yearbook feature needs.
type Ledger interface {
	RecordBestEffort(userID int64, activityType models.ActivityType, details string)
	AwardXPBestEffort(userID int64, points int, reason string)
}

type Service struct {
	store  *Store
	llm    LLMClient
	ledger Ledger
}

func NewService(store *Store, llm LLMClient, ledger Ledger) *Service {
	return &Service{store: store, llm: llm, ledger: ledger}
}

// ── Memories ────────────────────────────────────────────

// CreateMemory stores a journal entry and feeds the activity ledger.
func (s *Service) CreateMemory(userID int64, req models.CreateMemoryRequest) (*models.Memory, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Journal = strings.TrimSpace(req.Journal)
	if req.Title == "" || req.Journal == "" {
		return nil, fmt.Errorf("title and journal are required")
	}
	if req.MemoryDate == "" {
		req.MemoryDate = time.Now().UTC().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", req.MemoryDate); err != nil {
		return nil, fmt.Errorf("memory_date must be 2006-01-02")
	}

	m, err := s.store.CreateMemory(userID, req)
	if err != nil {
		return nil, err
	}

	s.ledger.RecordBestEffort(userID, models.ActivityMemoryAdded, m.Title)
	return m, nil
}

func (s *Service) ListMemories(userID int64) ([]models.Memory, error) {
	return s.store.ListMemories(userID)
}

// ── Yearbook Generation ─────────────────────────────────

// Generate turns the user's memories into a yearbook chapter. At least
// three memories are required for a chapter worth writing.
func (s *Service) Generate(ctx context.Context, userID int64, title string, now time.Time) (*models.Yearbook, error) {
	memories, err := s.store.ListMemories(userID)
	if err != nil {
		return nil, fmt.Errorf("load memories: %w", err)
	}
	if len(memories) < minMemoriesForYearbook {
		return nil, ErrTooFewMemories
	}

	name, err := s.store.UserName(userID)
	if err != nil {
		return nil, fmt.Errorf("look up student: %w", err)
	}

	schoolYear := SchoolYear(now)
	if strings.TrimSpace(title) == "" {
		title = fmt.Sprintf("My %s Yearbook", schoolYear)
	}

	userPrompt, err := BuildUserPrompt(name, schoolYear, memories)
	if err != nil {
		return nil, err
	}

	resp, err := s.llm.Generate(ctx, SystemPrompt(), userPrompt)
	if err != nil {
		return nil, fmt.Errorf("generate yearbook: %w", err)
	}

	generated, err := ParseResponse(resp.Content)
	if err != nil {
		return nil, fmt.Errorf("parse yearbook response: %w", err)
	}

	y, err := s.store.CreateYearbook(userID, title, schoolYear, generated.Content, generated.MainThemes, len(memories))
	if err != nil {
		return nil, fmt.Errorf("save yearbook: %w", err)
	}

	log.WithFields(log.Fields{
		"user_id":       userID,
		"memories":      len(memories),
		"prompt_tokens": resp.PromptTokens,
		"output_tokens": resp.OutputTokens,
	}).Info("[yearbook] generated yearbook")

	s.ledger.RecordBestEffort(userID, models.ActivityAIChat, "generated yearbook")
	s.ledger.AwardXPBestEffort(userID, yearbookXPReward, "yearbook generated")

	return y, nil
}

func (s *Service) ListYearbooks(userID int64) ([]models.Yearbook, error) {
	return s.store.ListYearbooks(userID)
}
