package schedule

import (
	"context"

	domain "github.com/careslot/clinic-scheduler/internal/domain/schedule"
	"github.com/careslot/clinic-scheduler/internal/httperr"
)

type GetTemplate struct {
	repo domain.Repository
}

func NewGetTemplate(repo domain.Repository) *GetTemplate {
	return &GetTemplate{repo: repo}
}

func (uc *GetTemplate) Execute(
	ctx context.Context,
	doctorID uint,
	weekday string,
) ([]domain.Interval, error) {

	if !domain.IsWeekday(weekday) {
		return nil, httperr.ErrBusiness("invalid_weekday")
	}

	return uc.repo.GetTemplate(ctx, doctorID, weekday)
}
