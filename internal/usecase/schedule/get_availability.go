package schedule

import (
	"context"

	apdomain "github.com/careslot/clinic-scheduler/internal/domain/appointment"
	domain "github.com/careslot/clinic-scheduler/internal/domain/schedule"
	"github.com/careslot/clinic-scheduler/internal/httperr"
	"github.com/careslot/clinic-scheduler/internal/metrics"
	"github.com/careslot/clinic-scheduler/internal/timezone"
)

// AvailabilityCache is the subset of the redis cache the materializer
// needs; nil-safe so tests run without redis.
type AvailabilityCache interface {
	GetAvailability(ctx context.Context, doctorID uint, date string, out any) bool
	SetAvailability(ctx context.Context, doctorID uint, date string, slots any)
}

type GetAvailability struct {
	templates    domain.Repository
	appointments apdomain.Repository
	cache        AvailabilityCache
}

func NewGetAvailability(
	templates domain.Repository,
	appointments apdomain.Repository,
	cache AvailabilityCache,
) *GetAvailability {
	return &GetAvailability{
		templates:    templates,
		appointments: appointments,
		cache:        cache,
	}
}

// Execute derives the bookable slots for one doctor and date: the weekday
// template in stored order, with booked=true on every interval an active
// appointment holds. An empty template means the doctor is unavailable
// that day, not an error. Past dates are rejected; booking the past is
// meaningless.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	doctorID uint,
	date string,
) ([]domain.DerivedSlot, error) {

	day, err := timezone.ParseDate(date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	if date < timezone.Today() {
		return nil, httperr.ErrBusiness("date_in_past")
	}

	if uc.cache != nil {
		var cached []domain.DerivedSlot
		if uc.cache.GetAvailability(ctx, doctorID, date, &cached) {
			metrics.AvailabilityCacheHits.WithLabelValues("hit").Inc()
			return cached, nil
		}
		metrics.AvailabilityCacheHits.WithLabelValues("miss").Inc()
	}

	intervals, err := uc.templates.GetTemplate(ctx, doctorID, domain.WeekdayOf(day))
	if err != nil {
		return nil, err
	}
	if len(intervals) == 0 {
		return []domain.DerivedSlot{}, nil
	}

	active, err := uc.appointments.ListActiveForDay(ctx, doctorID, date)
	if err != nil {
		return nil, err
	}

	booked := make(map[domain.Interval]bool, len(active))
	for _, ap := range active {
		booked[domain.Interval{Start: ap.StartTime, End: ap.EndTime}] = true
	}

	slots := make([]domain.DerivedSlot, 0, len(intervals))
	for _, iv := range intervals {
		slots = append(slots, domain.DerivedSlot{
			Start:  iv.Start,
			End:    iv.End,
			Booked: booked[iv],
		})
	}

	if uc.cache != nil {
		uc.cache.SetAvailability(ctx, doctorID, date, slots)
	}

	return slots, nil
}
