package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	DoctorID uint   `json:"doctor_id"`
	Doctor   Doctor `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"doctor"`

	PatientID uint    `json:"patient_id"`
	Patient   Patient `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"patient"`

	// Date and the interval bounds are stored as the exact strings the
	// client selected ("2006-01-02" / "15:04", clinic-local). Structural
	// equality on these columns is the join key against template slots
	// and the uniqueness key for active bookings.
	Date      string `gorm:"size:10;index" json:"date"`
	StartTime string `gorm:"size:5" json:"start"`
	EndTime   string `gorm:"size:5" json:"end"`

	Reason string  `gorm:"size:255" json:"reason"`
	Fee    float64 `json:"fee"`

	Status string `gorm:"size:20;default:'booked'" json:"status"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
