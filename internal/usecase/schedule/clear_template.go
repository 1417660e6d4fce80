package schedule

import (
	"context"

	"github.com/careslot/clinic-scheduler/internal/audit"
	domain "github.com/careslot/clinic-scheduler/internal/domain/schedule"
	"github.com/careslot/clinic-scheduler/internal/httperr"
)

type ClearTemplate struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewClearTemplate(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ClearTemplate {
	return &ClearTemplate{
		repo:  repo,
		audit: audit,
	}
}

func (uc *ClearTemplate) Execute(
	ctx context.Context,
	doctorID uint,
	weekday string,
) error {

	if !domain.IsWeekday(weekday) {
		return httperr.ErrBusiness("invalid_weekday")
	}

	if err := uc.repo.ClearTemplate(ctx, doctorID, weekday); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ActorRole: "doctor",
		ActorID:   &doctorID,
		Action:    "schedule_cleared",
		Entity:    "schedule",
		Metadata:  map[string]any{"weekday": weekday},
	})

	return nil
}
