package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"weather-lookup/internal/session"
	"weather-lookup/internal/weather"
)

// Scheduler periodically re-fetches the active location so the session
// state stays fresh between user interactions.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   *weather.Service
	state     *session.State
	interval  time.Duration
}

// New creates a new Scheduler.
func New(service *weather.Service, state *session.State, interval time.Duration) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		service:   service,
		state:     state,
		interval:  interval,
	}
}

// Start schedules the periodic refresh job and starts the underlying
// scheduler.
func (s *Scheduler) Start() error {
	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 15
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(s.refresh)
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

func (s *Scheduler) refresh() {
	q, ok := s.state.ActiveQuery()
	if !ok {
		// Nothing has been looked up yet.
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	current, forecast, err := s.service.Fetch(ctx, q)
	if err != nil {
		log.Printf("scheduler: refresh failed for %s: %v", q.Key(), err)
		return
	}
	s.state.Set(q, current, forecast)
	log.Printf("scheduler: refreshed weather for %s", q.Key())
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
