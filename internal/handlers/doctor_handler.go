package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/careslot/clinic-scheduler/internal/httperr"
	"github.com/careslot/clinic-scheduler/internal/httpresp"
	"github.com/careslot/clinic-scheduler/internal/models"
	ucschedule "github.com/careslot/clinic-scheduler/internal/usecase/schedule"
)

// DoctorHandler serves the public doctor directory and per-date
// availability.
type DoctorHandler struct {
	db           *gorm.DB
	availability *ucschedule.GetAvailability
}

func NewDoctorHandler(db *gorm.DB, availability *ucschedule.GetAvailability) *DoctorHandler {
	return &DoctorHandler{db: db, availability: availability}
}

type doctorSummary struct {
	ID              uint    `json:"id"`
	Name            string  `json:"name"`
	Department      string  `json:"department"`
	ExperienceYears int     `json:"experience_years"`
	Fee             float64 `json:"fee"`
	AdditionalInfo  string  `json:"additional_info"`
	ProfilePhotoURL string  `json:"profile_photo_url"`
}

// List returns verified, unblocked doctors, optionally filtered by
// department.
func (h *DoctorHandler) List(c *gin.Context) {
	q := h.db.Preload("Department").
		Where("verified = ? AND blocked = ?", true, false)

	if dept := c.Query("department"); dept != "" {
		id, err := strconv.ParseUint(dept, 10, 32)
		if err != nil {
			httperr.BadRequest(c, "invalid_department", "Invalid department id.")
			return
		}
		q = q.Where("department_id = ?", uint(id))
	}

	var doctors []models.Doctor
	if err := q.Order("name ASC").Find(&doctors).Error; err != nil {
		httperr.Internal(c, "failed_to_list_doctors", "Could not load doctors.")
		return
	}

	out := make([]doctorSummary, 0, len(doctors))
	for _, d := range doctors {
		out = append(out, doctorSummary{
			ID:              d.ID,
			Name:            d.Name,
			Department:      d.Department.Name,
			ExperienceYears: d.ExperienceYears,
			Fee:             d.Fee,
			AdditionalInfo:  d.AdditionalInfo,
			ProfilePhotoURL: d.ProfilePhotoURL,
		})
	}

	httpresp.List(c, out)
}

func (h *DoctorHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid doctor id.")
		return
	}

	var doctor models.Doctor
	if err := h.db.Preload("Department").
		Where("id = ? AND verified = ? AND blocked = ?", uint(id), true, false).
		First(&doctor).Error; err != nil {
		httperr.NotFound(c, "doctor_not_found", "Doctor not found.")
		return
	}

	httpresp.OK(c, doctorSummary{
		ID:              doctor.ID,
		Name:            doctor.Name,
		Department:      doctor.Department.Name,
		ExperienceYears: doctor.ExperienceYears,
		Fee:             doctor.Fee,
		AdditionalInfo:  doctor.AdditionalInfo,
		ProfilePhotoURL: doctor.ProfilePhotoURL,
	})
}

// Availability derives the bookable slots for one doctor and date.
func (h *DoctorHandler) Availability(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid doctor id.")
		return
	}

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	var count int64
	h.db.Model(&models.Doctor{}).
		Where("id = ? AND verified = ? AND blocked = ?", uint(id), true, false).
		Count(&count)
	if count == 0 {
		httperr.NotFound(c, "doctor_not_found", "Doctor not found.")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), uint(id), date)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"date": date, "slots": slots})
}
