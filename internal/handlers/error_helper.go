package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/careslot/clinic-scheduler/internal/httperr"
)

// User-facing messages per business code. Conflicts in particular need an
// actionable message, not a generic failure.
var businessMessages = map[string]string{
	"invalid_interval":         "Slot start must be before slot end (HH:mm).",
	"slot_overlap":             "Slots for a day must not overlap.",
	"invalid_weekday":          "Unknown weekday.",
	"invalid_date":             "Date must be YYYY-MM-DD.",
	"date_in_past":             "Appointments cannot be booked in the past.",
	"missing_reason":           "Please provide a reason for the visit.",
	"slot_not_offered":         "This slot is not part of the doctor's schedule.",
	"slot_conflict":            "This slot was just taken, please pick another.",
	"slot_taken_after_payment": "This slot was taken while your payment completed. A refund has been initiated.",
	"payment_not_confirmed":    "The payment could not be confirmed.",
	"payment_amount_mismatch":  "The payment amount does not match the fee.",
	"order_not_found":          "Payment session not found.",
	"order_already_processed":  "This payment session was already used.",
	"session_mismatch":         "The booking details do not match the payment session.",
	"not_authorized":           "You are not allowed to modify this appointment.",
	"invalid_transition":       "The appointment cannot change to that status.",
	"invalid_status":           "Unknown appointment status.",
	"appointment_not_found":    "Appointment not found.",
	"doctor_not_found":         "Doctor not found.",
}

func messageFor(code string) string {
	if msg, ok := businessMessages[code]; ok {
		return msg
	}
	return "Request failed."
}

// writeBusinessError maps a usecase error to its HTTP status. Anything
// that is not a BusinessError is an internal failure.
func writeBusinessError(c *gin.Context, err error) {
	var be httperr.BusinessError
	if !errors.As(err, &be) {
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}

	switch be.Code {
	case "slot_conflict", "slot_taken_after_payment", "order_already_processed":
		httperr.Conflict(c, be.Code, messageFor(be.Code))
	case "not_authorized":
		httperr.Forbidden(c, be.Code, messageFor(be.Code))
	case "appointment_not_found", "order_not_found", "doctor_not_found":
		httperr.NotFound(c, be.Code, messageFor(be.Code))
	default:
		httperr.BadRequest(c, be.Code, messageFor(be.Code))
	}
}
