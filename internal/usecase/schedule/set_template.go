package schedule

import (
	"context"

	"github.com/careslot/clinic-scheduler/internal/audit"
	domain "github.com/careslot/clinic-scheduler/internal/domain/schedule"
	"github.com/careslot/clinic-scheduler/internal/httperr"
)

type SetTemplate struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSetTemplate(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *SetTemplate {
	return &SetTemplate{
		repo:  repo,
		audit: audit,
	}
}

// Execute replaces the doctor's full interval set for one weekday.
// Rejects inverted intervals and overlapping pairs before touching the
// store; touching bounds (10:00/10:00) are allowed.
func (uc *SetTemplate) Execute(
	ctx context.Context,
	doctorID uint,
	weekday string,
	intervals []domain.Interval,
) error {

	if !domain.IsWeekday(weekday) {
		return httperr.ErrBusiness("invalid_weekday")
	}

	if err := domain.ValidateTemplate(intervals); err != nil {
		return err
	}

	if err := uc.repo.ReplaceTemplate(ctx, doctorID, weekday, intervals); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ActorRole: "doctor",
		ActorID:   &doctorID,
		Action:    "schedule_updated",
		Entity:    "schedule",
		Metadata: map[string]any{
			"weekday": weekday,
			"slots":   len(intervals),
		},
	})

	return nil
}
