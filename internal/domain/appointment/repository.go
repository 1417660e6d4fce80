package appointment

import (
	"context"

	"github.com/careslot/clinic-scheduler/internal/models"
)

type Repository interface {
	// -------- Create (the serialization point) --------

	// CreateBooked inserts a new booked appointment after re-checking,
	// inside one transaction with the conflicting rows locked, that no
	// active appointment holds the same (doctor, date, interval). A lost
	// race fails with slot_conflict.
	CreateBooked(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- State change --------

	GetByID(
		ctx context.Context,
		appointmentID uint,
	) (*models.Appointment, error)

	Update(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Availability --------

	// ListActiveForDay returns booked/confirmed appointments for one
	// doctor and date, ordered by start time.
	ListActiveForDay(
		ctx context.Context,
		doctorID uint,
		date string,
	) ([]models.Appointment, error)

	// -------- Dashboards --------

	ListForDoctor(
		ctx context.Context,
		doctorID uint,
	) ([]models.Appointment, error)

	ListForPatient(
		ctx context.Context,
		patientID uint,
	) ([]models.Appointment, error)

	// -------- Background completion --------

	// ListElapsedConfirmed returns confirmed appointments whose interval
	// ended before the given clinic-local instant.
	ListElapsedConfirmed(
		ctx context.Context,
		date string,
		clock string,
	) ([]models.Appointment, error)
}
