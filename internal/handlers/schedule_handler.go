package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/careslot/clinic-scheduler/internal/domain/schedule"
	"github.com/careslot/clinic-scheduler/internal/httperr"
	"github.com/careslot/clinic-scheduler/internal/httpresp"
	"github.com/careslot/clinic-scheduler/internal/middleware"
	ucschedule "github.com/careslot/clinic-scheduler/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type ScheduleHandler struct {
	getTemplate   *ucschedule.GetTemplate
	setTemplate   *ucschedule.SetTemplate
	clearTemplate *ucschedule.ClearTemplate
}

func NewScheduleHandler(
	getTemplate *ucschedule.GetTemplate,
	setTemplate *ucschedule.SetTemplate,
	clearTemplate *ucschedule.ClearTemplate,
) *ScheduleHandler {
	return &ScheduleHandler{
		getTemplate:   getTemplate,
		setTemplate:   setTemplate,
		clearTemplate: clearTemplate,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type SetTemplateRequest struct {
	Weekday string            `json:"weekday" binding:"required"`
	Slots   []domain.Interval `json:"slots" binding:"required"`
}

// ======================================================
// ROUTES
// ======================================================

func (h *ScheduleHandler) Get(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	weekday := c.Param("weekday")

	intervals, err := h.getTemplate.Execute(c.Request.Context(), sess.UserID, weekday)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"weekday": weekday, "slots": intervals})
}

func (h *ScheduleHandler) Set(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	var req SetTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid schedule payload.")
		return
	}

	if err := h.setTemplate.Execute(
		c.Request.Context(),
		sess.UserID,
		req.Weekday,
		req.Slots,
	); err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"status": "ok"})
}

func (h *ScheduleHandler) Clear(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	weekday := c.Param("weekday")

	if err := h.clearTemplate.Execute(c.Request.Context(), sess.UserID, weekday); err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"status": "ok"})
}
