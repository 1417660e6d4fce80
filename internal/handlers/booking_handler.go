package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/careslot/clinic-scheduler/internal/domain/schedule"
	"github.com/careslot/clinic-scheduler/internal/httperr"
	"github.com/careslot/clinic-scheduler/internal/httpresp"
	"github.com/careslot/clinic-scheduler/internal/middleware"
	ucbooking "github.com/careslot/clinic-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	initiate *ucbooking.InitiateBooking
	complete *ucbooking.CompleteBooking
}

func NewBookingHandler(
	initiate *ucbooking.InitiateBooking,
	complete *ucbooking.CompleteBooking,
) *BookingHandler {
	return &BookingHandler{
		initiate: initiate,
		complete: complete,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type InitiateBookingRequest struct {
	DoctorID uint    `json:"doctor_id" binding:"required"`
	Date     string  `json:"date" binding:"required"`
	Start    string  `json:"start" binding:"required"`
	End      string  `json:"end" binding:"required"`
	Reason   string  `json:"reason" binding:"required"`
	Fee      float64 `json:"fee" binding:"required"`
}

type CompleteBookingRequest struct {
	OrderID   string `json:"order_id" binding:"required"`
	PaymentID int    `json:"payment_id" binding:"required"`

	// The client echoes the slot it paid for; the stored session is
	// authoritative, a mismatch is rejected rather than trusted.
	DoctorID uint   `json:"doctor_id" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Start    string `json:"start" binding:"required"`
	End      string `json:"end" binding:"required"`
}

// ======================================================
// ROUTES
// ======================================================

func (h *BookingHandler) Initiate(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	var req InitiateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking payload.")
		return
	}

	handle, err := h.initiate.Execute(c.Request.Context(), ucbooking.InitiateInput{
		PatientID: sess.UserID,
		DoctorID:  req.DoctorID,
		Date:      req.Date,
		Interval:  domain.Interval{Start: req.Start, End: req.End},
		Reason:    req.Reason,
		Fee:       req.Fee,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Created(c, handle)
}

func (h *BookingHandler) Complete(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	var req CompleteBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking payload.")
		return
	}

	ap, err := h.complete.Execute(c.Request.Context(), ucbooking.CompleteInput{
		PatientID: sess.UserID,
		OrderID:   req.OrderID,
		PaymentID: req.PaymentID,
		DoctorID:  req.DoctorID,
		Date:      req.Date,
		Start:     req.Start,
		End:       req.End,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Created(c, ap)
}
