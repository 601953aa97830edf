// Package jobs runs background tasks on a cron schedule.
package jobs

import (
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"github.com/studybuddy/backend/internal/progress"
)

type Scheduler struct {
	cron     *cron.Cron
	progress *progress.Service
}

func NewScheduler(progressService *progress.Service) *Scheduler {
	return &Scheduler{
		cron:     cron.New(cron.WithLocation(time.UTC)),
		progress: progressService,
	}
}

// Start registers the nightly achievement sweep and begins running.
func (s *Scheduler) Start(schedule string) error {
	_, err := s.cron.AddFunc(schedule, func() {
		log.Info("[CRON] nightly achievement sweep")
		s.progress.SweepAll(time.Now().UTC())
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	log.WithField("schedule", schedule).Info("[CRON] scheduler started (UTC)")
	return nil
}

// Stop waits for any running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Info("[CRON] scheduler stopped")
}
