package models

import "time"

// PaymentOrder statuses.
const (
	OrderPending       = "pending"
	OrderConsumed      = "consumed"
	OrderRefundPending = "refund_pending"
	OrderRefunded      = "refunded"
)

// PaymentOrder is the payment session created by InitiateBooking. It never
// holds the slot: until CompleteBooking succeeds the slot stays open to
// other patients. Orders left in refund_pending form the manual review
// queue for payments that lost the booking race.
type PaymentOrder struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	PatientID uint `json:"patient_id"`
	DoctorID  uint `json:"doctor_id"`

	Date      string `gorm:"size:10" json:"date"`
	StartTime string `gorm:"size:5" json:"start"`
	EndTime   string `gorm:"size:5" json:"end"`

	Reason string  `gorm:"size:255" json:"reason"`
	Fee    float64 `json:"fee"`

	PreferenceID string `gorm:"size:100" json:"preference_id"`
	PaymentID    int    `json:"payment_id"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
