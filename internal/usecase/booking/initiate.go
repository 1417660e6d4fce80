package booking

import (
	"context"
	"strings"

	"github.com/google/uuid"

	domain "github.com/careslot/clinic-scheduler/internal/domain/booking"
	scdomain "github.com/careslot/clinic-scheduler/internal/domain/schedule"
	"github.com/careslot/clinic-scheduler/internal/httperr"
	"github.com/careslot/clinic-scheduler/internal/models"
	"github.com/careslot/clinic-scheduler/internal/payment"
	"github.com/careslot/clinic-scheduler/internal/timezone"
	ucschedule "github.com/careslot/clinic-scheduler/internal/usecase/schedule"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type InitiateInput struct {
	PatientID uint
	DoctorID  uint
	Date      string
	Interval  scdomain.Interval
	Reason    string
	Fee       float64
}

// SessionHandle is what the client needs to open checkout and come back:
// our order id plus the gateway's redirect URL.
type SessionHandle struct {
	OrderID      string  `json:"order_id"`
	PreferenceID string  `json:"preference_id"`
	InitPoint    string  `json:"init_point"`
	Amount       float64 `json:"amount"`
}

// ======================================================
// USE CASE
// ======================================================

type InitiateBooking struct {
	orders       domain.OrderRepository
	availability *ucschedule.GetAvailability
	gateway      payment.Gateway
}

func NewInitiateBooking(
	orders domain.OrderRepository,
	availability *ucschedule.GetAvailability,
	gateway payment.Gateway,
) *InitiateBooking {
	return &InitiateBooking{
		orders:       orders,
		availability: availability,
		gateway:      gateway,
	}
}

// Execute validates the request, re-derives availability as an advisory
// check, and opens a payment session. No hold is placed on the slot: two
// patients may both reach checkout, and the ledger resolves the race at
// complete time.
func (uc *InitiateBooking) Execute(
	ctx context.Context,
	in InitiateInput,
) (*SessionHandle, error) {

	if strings.TrimSpace(in.Reason) == "" {
		return nil, httperr.ErrBusiness("missing_reason")
	}
	if err := in.Interval.Validate(); err != nil {
		return nil, err
	}
	if _, err := timezone.ParseDate(in.Date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	if in.Date < timezone.Today() {
		return nil, httperr.ErrBusiness("date_in_past")
	}

	slots, err := uc.availability.Execute(ctx, in.DoctorID, in.Date)
	if err != nil {
		return nil, err
	}

	offered := false
	for _, slot := range slots {
		if slot.Start == in.Interval.Start && slot.End == in.Interval.End {
			if slot.Booked {
				return nil, httperr.ErrBusiness("slot_conflict")
			}
			offered = true
			break
		}
	}
	if !offered {
		return nil, httperr.ErrBusiness("slot_not_offered")
	}

	orderID := uuid.NewString()

	order, err := uc.gateway.CreateOrder(ctx, in.Fee, orderID)
	if err != nil {
		return nil, err
	}

	record := &models.PaymentOrder{
		ID:           orderID,
		PatientID:    in.PatientID,
		DoctorID:     in.DoctorID,
		Date:         in.Date,
		StartTime:    in.Interval.Start,
		EndTime:      in.Interval.End,
		Reason:       strings.TrimSpace(in.Reason),
		Fee:          in.Fee,
		PreferenceID: order.PreferenceID,
		Status:       models.OrderPending,
	}
	if err := uc.orders.CreateOrder(ctx, record); err != nil {
		return nil, err
	}

	return &SessionHandle{
		OrderID:      orderID,
		PreferenceID: order.PreferenceID,
		InitPoint:    order.InitPoint,
		Amount:       in.Fee,
	}, nil
}
