package cronjob

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/webcode-studio/studio-backend/internal/suggestions/repository"
)

// HistoryRetention is how long suggestion-run audit rows are kept.
const HistoryRetention = 30 * 24 * time.Hour

type Scheduler struct {
	history *repository.HistoryRepository
	cache   *repository.CacheRepository
}

func NewScheduler(history *repository.HistoryRepository, cache *repository.CacheRepository) *Scheduler {
	return &Scheduler{history: history, cache: cache}
}

// Start initializes cron tasks
func (s *Scheduler) Start() {
	c := cron.New(cron.WithSeconds())

	// (3:00 AM)
	_, err := c.AddFunc("0 0 3 * * *", func() {
		s.runNightlyPurge()
	})

	if err != nil {
		log.Printf("Failed to create cron job: %v", err)
		return
	}

	log.Println("Cron scheduler started (purging nightly at 3:00AM)")
	c.Start()
}

func (s *Scheduler) runNightlyPurge() {
	log.Println("Nightly purge started (history + cache markers)...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	rows, err := s.history.PurgeOlderThan(ctx, HistoryRetention)
	if err != nil {
		log.Printf("History purge failed: %v", err)
	} else {
		log.Printf("History purge removed %d rows", rows)
	}

	markers, err := s.cache.PurgeOrphanedMarkers(ctx)
	if err != nil {
		log.Printf("Marker purge failed: %v", err)
	} else {
		log.Printf("Marker purge removed %d keys", markers)
	}

	log.Println("Nightly purge completed at:", time.Now().Format(time.RFC1123))
}
