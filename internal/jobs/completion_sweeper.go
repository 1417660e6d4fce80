package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"

	domain "github.com/careslot/clinic-scheduler/internal/domain/appointment"
	"github.com/careslot/clinic-scheduler/internal/metrics"
	"github.com/careslot/clinic-scheduler/internal/timezone"
	"github.com/careslot/clinic-scheduler/internal/usecase/booking"
)

// CompletionSweeper promotes confirmed appointments to completed once
// their interval has elapsed. The transition runs as the system actor; it
// is deliberately outside the ledger's synchronous API.
type CompletionSweeper struct {
	repo     domain.Repository
	cache    booking.Invalidator
	log      *zap.Logger
	interval time.Duration
}

func NewCompletionSweeper(
	repo domain.Repository,
	cache booking.Invalidator,
	log *zap.Logger,
) *CompletionSweeper {
	return &CompletionSweeper{
		repo:     repo,
		cache:    cache,
		log:      log,
		interval: 5 * time.Minute,
	}
}

// Start runs the sweep loop until ctx is cancelled.
func (s *CompletionSweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Sweep(ctx)
			}
		}
	}()
}

// Sweep completes every confirmed appointment whose end time has passed.
func (s *CompletionSweeper) Sweep(ctx context.Context) {
	now := timezone.Now()
	elapsed, err := s.repo.ListElapsedConfirmed(
		ctx,
		now.Format("2006-01-02"),
		now.Format("15:04"),
	)
	if err != nil {
		s.log.Warn("completion sweep failed", zap.Error(err))
		return
	}

	for i := range elapsed {
		ap := &elapsed[i]
		if err := domain.CanTransition(
			domain.Status(ap.Status),
			domain.StatusCompleted,
			domain.ActorSystem,
		); err != nil {
			continue
		}

		domain.Transition(ap, domain.StatusCompleted, now)
		if err := s.repo.Update(ctx, ap); err != nil {
			s.log.Warn("appointment not completed",
				zap.Uint("id", ap.ID), zap.Error(err))
			continue
		}

		s.cache.InvalidateAvailability(ctx, ap.DoctorID, ap.Date)
		metrics.StatusTransitions.WithLabelValues(string(domain.StatusCompleted)).Inc()
	}
}
