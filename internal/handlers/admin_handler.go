package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/careslot/clinic-scheduler/internal/audit"
	"github.com/careslot/clinic-scheduler/internal/auth"
	domain "github.com/careslot/clinic-scheduler/internal/domain/appointment"
	"github.com/careslot/clinic-scheduler/internal/httperr"
	"github.com/careslot/clinic-scheduler/internal/httpresp"
	"github.com/careslot/clinic-scheduler/internal/middleware"
	"github.com/careslot/clinic-scheduler/internal/models"
)

// AdminHandler covers doctor verification, account blocking and the
// revenue summary.
type AdminHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewAdminHandler(db *gorm.DB, auditd *audit.Dispatcher) *AdminHandler {
	return &AdminHandler{db: db, audit: auditd}
}

type flagRequest struct {
	Value bool `json:"value"`
}

// --------- Doctors ---------

func (h *AdminHandler) ListDoctors(c *gin.Context) {
	var doctors []models.Doctor
	if err := h.db.Preload("Department").
		Order("created_at DESC").
		Find(&doctors).Error; err != nil {
		httperr.Internal(c, "failed_to_list_doctors", "Could not load doctors.")
		return
	}
	httpresp.List(c, doctors)
}

func (h *AdminHandler) VerifyDoctor(c *gin.Context) {
	h.setDoctorFlag(c, "verified", "doctor_verified")
}

func (h *AdminHandler) BlockDoctor(c *gin.Context) {
	h.setDoctorFlag(c, "blocked", "doctor_block_changed")
}

func (h *AdminHandler) setDoctorFlag(c *gin.Context, column, action string) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid doctor id.")
		return
	}

	var req flagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Value is required.")
		return
	}

	var doctor models.Doctor
	if err := h.db.First(&doctor, uint(id)).Error; err != nil {
		httperr.NotFound(c, "doctor_not_found", "Doctor not found.")
		return
	}

	if err := h.db.Model(&doctor).Update(column, req.Value).Error; err != nil {
		httperr.Internal(c, "failed_to_update_doctor", "Could not update doctor.")
		return
	}

	sess := middleware.SessionFrom(c)
	adminID := sess.UserID
	h.audit.Dispatch(audit.Event{
		ActorRole: auth.RoleAdmin,
		ActorID:   &adminID,
		Action:    action,
		Entity:    "doctor",
		EntityID:  &doctor.ID,
		Metadata:  map[string]any{column: req.Value},
	})

	httpresp.OK(c, gin.H{"id": doctor.ID, column: req.Value})
}

// --------- Patients ---------

func (h *AdminHandler) ListPatients(c *gin.Context) {
	var patients []models.Patient
	if err := h.db.Order("created_at DESC").Find(&patients).Error; err != nil {
		httperr.Internal(c, "failed_to_list_patients", "Could not load patients.")
		return
	}
	httpresp.List(c, patients)
}

func (h *AdminHandler) BlockPatient(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid patient id.")
		return
	}

	var req flagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Value is required.")
		return
	}

	var patient models.Patient
	if err := h.db.First(&patient, uint(id)).Error; err != nil {
		httperr.NotFound(c, "patient_not_found", "Patient not found.")
		return
	}

	if err := h.db.Model(&patient).Update("blocked", req.Value).Error; err != nil {
		httperr.Internal(c, "failed_to_update_patient", "Could not update patient.")
		return
	}

	sess := middleware.SessionFrom(c)
	adminID := sess.UserID
	h.audit.Dispatch(audit.Event{
		ActorRole: auth.RoleAdmin,
		ActorID:   &adminID,
		Action:    "patient_block_changed",
		Entity:    "patient",
		EntityID:  &patient.ID,
		Metadata:  map[string]any{"blocked": req.Value},
	})

	httpresp.OK(c, gin.H{"id": patient.ID, "blocked": req.Value})
}

// --------- Wallet ---------

// Wallet sums collected fees by appointment status. Cancelled rows stay in
// the ledger, so refund exposure is visible here too.
func (h *AdminHandler) Wallet(c *gin.Context) {
	type row struct {
		Status string  `json:"status"`
		Count  int64   `json:"count"`
		Total  float64 `json:"total"`
	}

	var rows []row
	if err := h.db.Model(&models.Appointment{}).
		Select("status, COUNT(*) AS count, COALESCE(SUM(fee), 0) AS total").
		Group("status").
		Scan(&rows).Error; err != nil {
		httperr.Internal(c, "failed_to_load_wallet", "Could not load wallet.")
		return
	}

	var collected float64
	for _, r := range rows {
		if domain.IsActive(domain.Status(r.Status)) || r.Status == string(domain.StatusCompleted) {
			collected += r.Total
		}
	}

	httpresp.OK(c, gin.H{
		"by_status": rows,
		"collected": collected,
	})
}
