package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/careslot/clinic-scheduler/internal/domain/schedule"
	"github.com/careslot/clinic-scheduler/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

func (r *ScheduleGormRepository) GetTemplate(
	ctx context.Context,
	doctorID uint,
	weekday string,
) ([]domain.Interval, error) {

	var rows []models.ScheduleSlot
	if err := r.db.WithContext(ctx).
		Where("doctor_id = ? AND weekday = ?", doctorID, weekday).
		Order("position ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	intervals := make([]domain.Interval, 0, len(rows))
	for _, row := range rows {
		intervals = append(intervals, domain.Interval{
			Start: row.StartTime,
			End:   row.EndTime,
		})
	}
	return intervals, nil
}

func (r *ScheduleGormRepository) ReplaceTemplate(
	ctx context.Context,
	doctorID uint,
	weekday string,
	intervals []domain.Interval,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("doctor_id = ? AND weekday = ?", doctorID, weekday).
			Delete(&models.ScheduleSlot{}).Error; err != nil {
			return err
		}

		if len(intervals) == 0 {
			return nil
		}

		rows := make([]models.ScheduleSlot, 0, len(intervals))
		for i, iv := range intervals {
			rows = append(rows, models.ScheduleSlot{
				DoctorID:  doctorID,
				Weekday:   weekday,
				Position:  i,
				StartTime: iv.Start,
				EndTime:   iv.End,
			})
		}
		return tx.Create(&rows).Error
	})
}

func (r *ScheduleGormRepository) ClearTemplate(
	ctx context.Context,
	doctorID uint,
	weekday string,
) error {
	return r.db.WithContext(ctx).
		Where("doctor_id = ? AND weekday = ?", doctorID, weekday).
		Delete(&models.ScheduleSlot{}).Error
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)
