package services

import (
	"context"
	"log"
	"time"

	"rentmate/internal/adapters/persistence/repositories"
	"rentmate/internal/core/billing"

	"github.com/robfig/cron/v3"
)

// ReminderService runs scheduled background jobs. Currently one job: a
// daily morning check that logs occupied rooms still missing the current
// month's water reading, so billing is never blocked at month end.
type ReminderService struct {
	propertyRepo *repositories.PropertyRepository
	clock        billing.Clock
	scheduler    *cron.Cron
}

// NewReminderService creates a new reminder service
func NewReminderService(propertyRepo *repositories.PropertyRepository, clock billing.Clock) *ReminderService {
	return &ReminderService{
		propertyRepo: propertyRepo,
		clock:        clock,
		scheduler:    cron.New(),
	}
}

// Start schedules and launches the background jobs
func (s *ReminderService) Start() error {
	_, err := s.scheduler.AddFunc("30 8 * * *", s.checkMissingReadings)
	if err != nil {
		return err
	}
	s.scheduler.Start()
	log.Println("🚀 ReminderService started")
	return nil
}

// Stop stops the scheduler and waits for running jobs to finish
func (s *ReminderService) Stop() {
	ctx := s.scheduler.Stop()
	<-ctx.Done()
	log.Println("🛑 ReminderService stopped")
}

func (s *ReminderService) checkMissingReadings() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	properties, err := s.propertyRepo.List(ctx)
	if err != nil {
		log.Printf("❌ Reminder: failed to load occupancies: %v", err)
		return
	}

	now := s.clock.Now()
	key := billing.Key(now.Year(), now.Month())

	missing := 0
	for _, p := range properties {
		if !billing.IsOccupied(p) {
			continue
		}
		if _, ok := p.WaterReadings[key]; !ok {
			log.Printf("💧 Reminder: room %s has no water reading for %s", p.RoomNo, key)
			missing++
		}
	}

	if missing == 0 {
		log.Printf("✅ Reminder: all occupied rooms have readings for %s", key)
	}
}
