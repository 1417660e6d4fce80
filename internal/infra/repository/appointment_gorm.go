package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/careslot/clinic-scheduler/internal/domain/appointment"
	"github.com/careslot/clinic-scheduler/internal/httperr"
	"github.com/careslot/clinic-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Create (check-then-insert, one transaction)
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateBooked(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var conflicts []models.Appointment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"doctor_id = ? AND date = ? AND start_time = ? AND end_time = ? AND status IN ?",
				ap.DoctorID, ap.Date, ap.StartTime, ap.EndTime,
				[]string{string(domain.StatusBooked), string(domain.StatusConfirmed)},
			).
			Find(&conflicts).Error; err != nil {
			return err
		}

		if len(conflicts) > 0 {
			return httperr.ErrBusiness("slot_conflict")
		}

		ap.Status = string(domain.InitialStatus())
		return tx.Create(ap).Error
	})

	if err != nil && httperr.IsUniqueConflict(err) {
		return httperr.ErrBusiness("slot_conflict")
	}
	return err
}

// --------------------------------------------------
// State change
// --------------------------------------------------

func (r *AppointmentGormRepository) GetByID(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		First(&ap, appointmentID).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) Update(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *AppointmentGormRepository) ListActiveForDay(
	ctx context.Context,
	doctorID uint,
	date string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("start_time", "end_time", "status").
		Where(
			"doctor_id = ? AND date = ? AND status IN ?",
			doctorID, date,
			[]string{string(domain.StatusBooked), string(domain.StatusConfirmed)},
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// --------------------------------------------------
// Dashboards
// --------------------------------------------------

func (r *AppointmentGormRepository) ListForDoctor(
	ctx context.Context,
	doctorID uint,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Patient").
		Where("doctor_id = ?", doctorID).
		Order("date ASC, start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *AppointmentGormRepository) ListForPatient(
	ctx context.Context,
	patientID uint,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Doctor").
		Preload("Doctor.Department").
		Where("patient_id = ?", patientID).
		Order("date ASC, start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// --------------------------------------------------
// Background completion
// --------------------------------------------------

func (r *AppointmentGormRepository) ListElapsedConfirmed(
	ctx context.Context,
	date string,
	clock string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"status = ? AND (date < ? OR (date = ? AND end_time <= ?))",
			string(domain.StatusConfirmed), date, date, clock,
		).
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
