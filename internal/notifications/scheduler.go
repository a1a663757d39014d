package notifications

import (
	"context"
	"log"
	"time"
)

// OwnersLister enumerates owners with a stored profile.
type OwnersLister interface {
	ListProfileOwners(ctx context.Context) ([]string, error)
}

// Scheduler runs the reminder check once per interval for every known
// owner, plus once immediately on start.
type Scheduler struct {
	service  *Service
	owners   OwnersLister
	interval time.Duration
}

// NewScheduler creates a scheduler with the default one-minute interval.
func NewScheduler(service *Service, owners OwnersLister) *Scheduler {
	return &Scheduler{
		service:  service,
		owners:   owners,
		interval: time.Minute,
	}
}

// WithInterval overrides the check interval, for tests.
func (s *Scheduler) WithInterval(interval time.Duration) *Scheduler {
	if interval > 0 {
		s.interval = interval
	}
	return s
}

// Start launches the check loop. It returns immediately; the loop stops
// when ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	go func() {
		s.runOnce(ctx)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.runOnce(ctx)
			}
		}
	}()
}

// RunOnce executes a single check pass for every owner.
func (s *Scheduler) RunOnce(ctx context.Context) {
	s.runOnce(ctx)
}

func (s *Scheduler) runOnce(ctx context.Context) {
	owners, err := s.owners.ListProfileOwners(ctx)
	if err != nil {
		log.Printf("reminder check: failed to list owners: %v", err)
		return
	}

	for _, owner := range owners {
		if _, err := s.service.Generate(ctx, GenerateRequest{OwnerUserID: owner}); err != nil {
			log.Printf("reminder check: owner %s: %v", owner, err)
		}
	}
}
