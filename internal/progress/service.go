package progress

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/studybuddy/backend/internal/models"
)

// Service owns the activity/achievement/XP pipeline. Writes issued from
// other features go through the best-effort methods: a failed activity or
// award write is logged and dropped, never surfaced as a blocking error.
type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// ── Activity Ingestion ──────────────────────────────────

// Record creates one activity record. The date defaults to today and must
// be a calendar date when provided.
func (s *Service) Record(userID int64, activityType models.ActivityType, activityDate, details string) error {
	if !models.ValidActivityTypes[activityType] {
		return fmt.Errorf("unknown activity type %q", activityType)
	}
	if activityDate == "" {
		activityDate = time.Now().UTC().Format(DateLayout)
	} else if _, err := time.Parse(DateLayout, activityDate); err != nil {
		return fmt.Errorf("activity_date must be %s", DateLayout)
	}
	return s.store.CreateActivity(userID, activityType, activityDate, details)
}

// RecordBestEffort is the ingestion boundary used by other features. The
// caller guarantees at-most-once invocation per logical action; failures
// are logged and the action proceeds.
func (s *Service) RecordBestEffort(userID int64, activityType models.ActivityType, details string) {
	if err := s.Record(userID, activityType, "", details); err != nil {
		log.WithError(err).WithFields(log.Fields{
			"user_id":       userID,
			"activity_type": activityType,
		}).Warn("[progress] failed to record activity")
	}
}

func (s *Service) RecentActivities(userID int64, limit int) ([]models.ActivityRecord, error) {
	return s.store.ListActivities(userID, clampLimit(limit))
}

// clampLimit bounds list page sizes, falling back to the default page.
func clampLimit(limit int) int {
	if limit <= 0 || limit > 500 {
		return 100
	}
	return limit
}

// ── XP Awards ───────────────────────────────────────────

// AwardXP applies an award to the user's ledger and logs an audit event.
// The activity record and the XP award for one action are independent
// writes; a failure between them leaves the activity recorded with no XP,
// which is accepted.
func (s *Service) AwardXP(userID int64, points int, reason string) (*models.XPResponse, error) {
	if points <= 0 {
		return nil, fmt.Errorf("points must be positive")
	}

	xp, level, err := s.store.GetLedger(userID)
	if err != nil {
		return nil, err
	}

	newXP, newLevel := Award(xp, level, points)
	if err := s.store.UpdateLedger(userID, newXP, newLevel); err != nil {
		return nil, err
	}

	if err := s.store.LogXPEvent(userID, "award", points, map[string]interface{}{
		"reason":    reason,
		"new_level": newLevel,
	}); err != nil {
		log.WithError(err).WithField("user_id", userID).Warn("[progress] failed to log xp event")
	}

	return &models.XPResponse{
		TotalXP:   newXP,
		Level:     newLevel,
		LeveledUp: newLevel > level,
	}, nil
}

// AwardXPBestEffort awards XP from another feature without blocking it.
func (s *Service) AwardXPBestEffort(userID int64, points int, reason string) {
	if _, err := s.AwardXP(userID, points, reason); err != nil {
		log.WithError(err).WithFields(log.Fields{
			"user_id": userID,
			"points":  points,
		}).Warn("[progress] failed to award xp")
	}
}

// SpendXP deducts XP for a cosmetic unlock. ErrInsufficientXP leaves the
// ledger untouched.
func (s *Service) SpendXP(userID int64, cost int, item string) (int64, error) {
	if cost <= 0 {
		return 0, fmt.Errorf("cost must be positive")
	}

	xp, level, err := s.store.GetLedger(userID)
	if err != nil {
		return 0, err
	}

	remaining, err := Spend(xp, cost)
	if err != nil {
		return xp, err
	}
	if err := s.store.UpdateLedger(userID, remaining, level); err != nil {
		return xp, err
	}

	if err := s.store.LogXPEvent(userID, "spend", -cost, map[string]interface{}{
		"item": item,
	}); err != nil {
		log.WithError(err).WithField("user_id", userID).Warn("[progress] failed to log xp event")
	}

	return remaining, nil
}

// XPHistory returns the audit trail of awards and spends, newest first.
func (s *Service) XPHistory(userID int64, limit int) ([]models.XPEvent, error) {
	return s.store.ListXPEvents(userID, clampLimit(limit))
}

// ── Summary ─────────────────────────────────────────────

// Summary assembles the full progress picture for a user as of now:
// ledger state, streak, per-type counts, and earned achievements. It also
// runs one evaluation pass and persists any newly-qualifying achievements.
// Read failures degrade to empty data rather than failing the page.
func (s *Service) Summary(userID int64, now time.Time) (*models.ProgressResponse, error) {
	xp, level, err := s.store.GetLedger(userID)
	if err != nil {
		return nil, err
	}

	dates, err := s.store.ActivityDates(userID)
	if err != nil {
		log.WithError(err).WithField("user_id", userID).Warn("[progress] failed to load activity dates")
		dates = nil
	}
	streak := CurrentStreak(NewDateSet(dates), now)

	counts, total, err := s.store.ActivityCounts(userID)
	if err != nil {
		log.WithError(err).WithField("user_id", userID).Warn("[progress] failed to load activity counts")
		counts, total = map[models.ActivityType]int{}, 0
	}

	newlyUnlocked := s.evaluateAndGrant(userID, Tally{Counts: counts, Total: total, Streak: streak}, now)

	achievements, err := s.store.ListAchievements(userID)
	if err != nil {
		log.WithError(err).WithField("user_id", userID).Warn("[progress] failed to load achievements")
		achievements = []models.Achievement{}
	}

	return &models.ProgressResponse{
		TotalXP:         xp,
		Level:           level,
		NextLevelCost:   NextLevelCost(level),
		CurrentStreak:   streak,
		TotalActivities: total,
		ActivityCounts:  counts,
		Achievements:    achievements,
		NewlyUnlocked:   newlyUnlocked,
	}, nil
}

// evaluateAndGrant runs the rule table against the tally and persists new
// grants. Each grant is independent; one failure does not stop the rest.
func (s *Service) evaluateAndGrant(userID int64, tally Tally, now time.Time) []string {
	earned, err := s.store.AchievementTitles(userID)
	if err != nil {
		log.WithError(err).WithField("user_id", userID).Warn("[progress] failed to load earned titles")
		return []string{}
	}

	earnedDate := now.UTC().Format(DateLayout)
	newlyUnlocked := []string{}
	for _, rule := range Evaluate(tally, earned) {
		if err := s.store.GrantAchievement(userID, rule, earnedDate); err != nil {
			log.WithError(err).WithFields(log.Fields{
				"user_id": userID,
				"title":   rule.Title,
			}).Warn("[progress] failed to grant achievement")
			continue
		}
		newlyUnlocked = append(newlyUnlocked, rule.Title)
	}
	return newlyUnlocked
}

func (s *Service) ListAchievements(userID int64) ([]models.Achievement, error) {
	return s.store.ListAchievements(userID)
}

// Reset returns the user's progress to its initial state.
func (s *Service) Reset(userID int64) error {
	return s.store.ResetProgress(userID)
}

// ── Sweep ───────────────────────────────────────────────

// SweepAll re-evaluates achievements for every user. Used by the nightly
// job; per-user failures are logged and skipped.
func (s *Service) SweepAll(now time.Time) {
	ids, err := s.store.AllUserIDs()
	if err != nil {
		log.WithError(err).Error("[progress] sweep: failed to list users")
		return
	}

	granted := 0
	for _, userID := range ids {
		dates, err := s.store.ActivityDates(userID)
		if err != nil {
			log.WithError(err).WithField("user_id", userID).Warn("[progress] sweep: failed to load dates")
			continue
		}
		counts, total, err := s.store.ActivityCounts(userID)
		if err != nil {
			log.WithError(err).WithField("user_id", userID).Warn("[progress] sweep: failed to load counts")
			continue
		}
		tally := Tally{
			Counts: counts,
			Total:  total,
			Streak: CurrentStreak(NewDateSet(dates), now),
		}
		granted += len(s.evaluateAndGrant(userID, tally, now))
	}

	log.WithFields(log.Fields{"users": len(ids), "granted": granted}).Info("[progress] achievement sweep complete")
}
