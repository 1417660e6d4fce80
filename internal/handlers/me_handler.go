package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/careslot/clinic-scheduler/internal/auth"
	"github.com/careslot/clinic-scheduler/internal/httperr"
	"github.com/careslot/clinic-scheduler/internal/httpresp"
	"github.com/careslot/clinic-scheduler/internal/middleware"
	"github.com/careslot/clinic-scheduler/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

type UpdateProfileRequest struct {
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	ProfilePhotoURL string `json:"profile_photo_url"`
}

func (h *MeHandler) Get(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	switch sess.Role {
	case auth.RolePatient:
		var p models.Patient
		if err := h.db.First(&p, sess.UserID).Error; err != nil {
			httperr.NotFound(c, "patient_not_found", "Account not found.")
			return
		}
		httpresp.OK(c, p)
	case auth.RoleDoctor:
		var d models.Doctor
		if err := h.db.Preload("Department").First(&d, sess.UserID).Error; err != nil {
			httperr.NotFound(c, "doctor_not_found", "Account not found.")
			return
		}
		httpresp.OK(c, d)
	default:
		httpresp.OK(c, gin.H{"role": sess.Role})
	}
}

func (h *MeHandler) Update(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid profile payload.")
		return
	}

	updates := map[string]any{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Phone != "" {
		updates["phone"] = req.Phone
	}
	if req.ProfilePhotoURL != "" {
		updates["profile_photo_url"] = req.ProfilePhotoURL
	}
	if len(updates) == 0 {
		httperr.BadRequest(c, "empty_update", "Nothing to update.")
		return
	}

	var err error
	switch sess.Role {
	case auth.RolePatient:
		err = h.db.Model(&models.Patient{}).
			Where("id = ?", sess.UserID).
			Updates(updates).Error
	case auth.RoleDoctor:
		err = h.db.Model(&models.Doctor{}).
			Where("id = ?", sess.UserID).
			Updates(updates).Error
	default:
		httperr.Forbidden(c, "forbidden_for_role", "Admins have no profile.")
		return
	}

	if err != nil {
		httperr.Internal(c, "failed_to_update_profile", "Could not update profile.")
		return
	}

	httpresp.OK(c, gin.H{"status": "ok"})
}
