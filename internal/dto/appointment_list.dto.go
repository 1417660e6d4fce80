package dto

import "time"

// DoctorAppointmentDTO is the doctor dashboard row: the appointment plus a
// patient summary.
type DoctorAppointmentDTO struct {
	ID        uint      `json:"id"`
	Date      string    `json:"date"`
	Start     string    `json:"start"`
	End       string    `json:"end"`
	Status    string    `json:"status"`
	Reason    string    `json:"reason"`
	Fee       float64   `json:"fee"`
	CreatedAt time.Time `json:"created_at"`

	PatientName   string `json:"patient_name"`
	PatientEmail  string `json:"patient_email"`
	PatientPhone  string `json:"patient_phone"`
	PatientGender string `json:"patient_gender"`
}

// PatientAppointmentDTO is the patient bookings row: the appointment plus
// a doctor summary.
type PatientAppointmentDTO struct {
	ID        uint      `json:"id"`
	Date      string    `json:"date"`
	Start     string    `json:"start"`
	End       string    `json:"end"`
	Status    string    `json:"status"`
	Reason    string    `json:"reason"`
	Fee       float64   `json:"fee"`
	CreatedAt time.Time `json:"created_at"`

	DoctorName string `json:"doctor_name"`
	Department string `json:"department"`
}
