package appointment

import (
	"context"

	"github.com/careslot/clinic-scheduler/internal/audit"
	"github.com/careslot/clinic-scheduler/internal/auth"
	domain "github.com/careslot/clinic-scheduler/internal/domain/appointment"
	"github.com/careslot/clinic-scheduler/internal/httperr"
	"github.com/careslot/clinic-scheduler/internal/metrics"
	"github.com/careslot/clinic-scheduler/internal/models"
	"github.com/careslot/clinic-scheduler/internal/timezone"
	"github.com/careslot/clinic-scheduler/internal/usecase/booking"
)

type UpdateStatus struct {
	repo  domain.Repository
	cache booking.Invalidator
	audit *audit.Dispatcher
}

func NewUpdateStatus(
	repo domain.Repository,
	cache booking.Invalidator,
	auditd *audit.Dispatcher,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		cache: cache,
		audit: auditd,
	}
}

// Execute performs one status transition on behalf of the session's actor.
// Ownership is checked first: a patient may only touch their own
// appointments, a doctor only those assigned to them. Then the transition
// table decides legality. Cancellation releases the slot for subsequent
// availability reads.
func (uc *UpdateStatus) Execute(
	ctx context.Context,
	sess auth.Session,
	appointmentID uint,
	newStatus domain.Status,
) (*models.Appointment, error) {

	if !domain.IsValidStatus(newStatus) {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	ap, err := uc.repo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	var actor domain.Actor
	switch sess.Role {
	case auth.RoleDoctor:
		if ap.DoctorID != sess.UserID {
			return nil, httperr.ErrBusiness("not_authorized")
		}
		actor = domain.ActorDoctor
	case auth.RolePatient:
		if ap.PatientID != sess.UserID {
			return nil, httperr.ErrBusiness("not_authorized")
		}
		actor = domain.ActorPatient
	default:
		return nil, httperr.ErrBusiness("not_authorized")
	}

	if err := domain.CanTransition(domain.Status(ap.Status), newStatus, actor); err != nil {
		return nil, err
	}

	domain.Transition(ap, newStatus, timezone.Now())

	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, err
	}

	uc.cache.InvalidateAvailability(ctx, ap.DoctorID, ap.Date)
	metrics.StatusTransitions.WithLabelValues(string(newStatus)).Inc()

	actorID := sess.UserID
	uc.audit.Dispatch(audit.Event{
		ActorRole: sess.Role,
		ActorID:   &actorID,
		Action:    "appointment_" + string(newStatus),
		Entity:    "appointment",
		EntityID:  &ap.ID,
	})

	return ap, nil
}
