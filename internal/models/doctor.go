package models

import "time"

type Doctor struct {
	ID uint `gorm:"primaryKey" json:"id"`

	DepartmentID uint       `json:"department_id"`
	Department   Department `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"department"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`

	ExperienceYears int     `json:"experience_years"`
	Fee             float64 `json:"fee"`
	AdditionalInfo  string  `gorm:"size:255" json:"additional_info"`
	ProfilePhotoURL string  `gorm:"size:255" json:"profile_photo_url"`

	Verified bool `gorm:"default:false" json:"verified"`
	Blocked  bool `gorm:"default:false" json:"blocked"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
