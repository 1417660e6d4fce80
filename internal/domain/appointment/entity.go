package appointment

import (
	"time"

	"github.com/careslot/clinic-scheduler/internal/models"
)

// Transition applies a status change to the record after the legality
// matrix has approved it. Cancellation and completion stamp the moment
// they happened; records are never deleted.
func Transition(ap *models.Appointment, to Status, now time.Time) {
	ap.Status = string(to)
	switch to {
	case StatusCancelled:
		ap.CancelledAt = &now
	case StatusCompleted:
		ap.CompletedAt = &now
	}
}
