package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/careslot/clinic-scheduler/internal/domain/appointment"
	"github.com/careslot/clinic-scheduler/internal/httperr"
	"github.com/careslot/clinic-scheduler/internal/httpresp"
	"github.com/careslot/clinic-scheduler/internal/middleware"
	ucappointment "github.com/careslot/clinic-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	updateStatus   *ucappointment.UpdateStatus
	listForDoctor  *ucappointment.ListForDoctor
	listForPatient *ucappointment.ListForPatient
}

func NewAppointmentHandler(
	updateStatus *ucappointment.UpdateStatus,
	listForDoctor *ucappointment.ListForDoctor,
	listForPatient *ucappointment.ListForPatient,
) *AppointmentHandler {
	return &AppointmentHandler{
		updateStatus:   updateStatus,
		listForDoctor:  listForDoctor,
		listForPatient: listForPatient,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListForDoctor(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	appointments, err := h.listForDoctor.Execute(c.Request.Context(), sess.UserID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not load appointments.")
		return
	}

	httpresp.List(c, appointments)
}

func (h *AppointmentHandler) ListForPatient(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	appointments, err := h.listForPatient.Execute(c.Request.Context(), sess.UserID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not load appointments.")
		return
	}

	httpresp.List(c, appointments)
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Status is required.")
		return
	}

	ap, err := h.updateStatus.Execute(
		c.Request.Context(),
		sess,
		uint(id),
		domain.Status(req.Status),
	)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, ap)
}
