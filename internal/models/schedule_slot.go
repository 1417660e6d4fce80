package models

import "time"

// ScheduleSlot is one interval of a doctor's weekly template. The set of
// rows for a (doctor, weekday) pair is replaced wholesale on save; Position
// preserves the order the doctor entered the intervals in.
type ScheduleSlot struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	DoctorID uint `gorm:"index:idx_doctor_weekday" json:"doctor_id"`

	Weekday  string `gorm:"size:10;index:idx_doctor_weekday" json:"weekday"`
	Position int    `json:"position"`

	StartTime string `gorm:"size:5" json:"start"`
	EndTime   string `gorm:"size:5" json:"end"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
