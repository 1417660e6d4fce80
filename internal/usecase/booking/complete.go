package booking

import (
	"context"

	"go.uber.org/zap"

	"github.com/careslot/clinic-scheduler/internal/audit"
	apdomain "github.com/careslot/clinic-scheduler/internal/domain/appointment"
	domain "github.com/careslot/clinic-scheduler/internal/domain/booking"
	"github.com/careslot/clinic-scheduler/internal/httperr"
	"github.com/careslot/clinic-scheduler/internal/metrics"
	"github.com/careslot/clinic-scheduler/internal/models"
	"github.com/careslot/clinic-scheduler/internal/payment"
)

// ======================================================
// INPUT
// ======================================================

type CompleteInput struct {
	PatientID uint
	OrderID   string
	PaymentID int

	// Echo of the slot the client paid for. The stored order is
	// authoritative; a mismatch fails before anything is persisted.
	DoctorID uint
	Date     string
	Start    string
	End      string
}

// ======================================================
// USE CASE
// ======================================================

// Invalidator drops cached availability after a write so the next read
// reflects the ledger.
type Invalidator interface {
	InvalidateAvailability(ctx context.Context, doctorID uint, date string)
}

type CompleteBooking struct {
	orders  domain.OrderRepository
	ledger  apdomain.Repository
	gateway payment.Gateway
	cache   Invalidator
	audit   *audit.Dispatcher
	log     *zap.Logger
}

func NewCompleteBooking(
	orders domain.OrderRepository,
	ledger apdomain.Repository,
	gateway payment.Gateway,
	cache Invalidator,
	auditd *audit.Dispatcher,
	log *zap.Logger,
) *CompleteBooking {
	return &CompleteBooking{
		orders:  orders,
		ledger:  ledger,
		gateway: gateway,
		cache:   cache,
		audit:   auditd,
		log:     log,
	}
}

// Execute turns an approved payment into a persisted appointment. The
// stored order is authoritative for doctor/date/interval/fee; the payment
// is verified against the gateway, never trusted from the client. Create
// is never retried: a conflict here means another patient won the race,
// and the payment moves into the refund flow instead.
func (uc *CompleteBooking) Execute(
	ctx context.Context,
	in CompleteInput,
) (*models.Appointment, error) {

	order, err := uc.orders.GetOrder(ctx, in.OrderID)
	if err != nil {
		return nil, httperr.ErrBusiness("order_not_found")
	}
	if order.PatientID != in.PatientID {
		return nil, httperr.ErrBusiness("not_authorized")
	}
	if order.Status != models.OrderPending {
		return nil, httperr.ErrBusiness("order_already_processed")
	}
	if order.DoctorID != in.DoctorID || order.Date != in.Date ||
		order.StartTime != in.Start || order.EndTime != in.End {
		return nil, httperr.ErrBusiness("session_mismatch")
	}

	conf, err := uc.gateway.VerifyPayment(ctx, in.PaymentID)
	if err != nil {
		return nil, err
	}
	if !conf.Approved || conf.Reference != order.ID {
		return nil, httperr.ErrBusiness("payment_not_confirmed")
	}
	if conf.Amount < order.Fee {
		return nil, httperr.ErrBusiness("payment_amount_mismatch")
	}

	ap := &models.Appointment{
		DoctorID:  order.DoctorID,
		PatientID: order.PatientID,
		Date:      order.Date,
		StartTime: order.StartTime,
		EndTime:   order.EndTime,
		Reason:    order.Reason,
		Fee:       order.Fee,
	}

	if err := uc.ledger.CreateBooked(ctx, ap); err != nil {
		if httperr.IsBusiness(err, "slot_conflict") {
			metrics.BookingConflicts.Inc()
			uc.compensate(ctx, order, in.PaymentID)
			return nil, httperr.ErrBusiness("slot_taken_after_payment")
		}
		return nil, err
	}

	order.PaymentID = in.PaymentID
	order.Status = models.OrderConsumed
	if err := uc.orders.UpdateOrder(ctx, order); err != nil {
		uc.log.Error("order not marked consumed",
			zap.String("order_id", order.ID), zap.Error(err))
	}

	uc.cache.InvalidateAvailability(ctx, order.DoctorID, order.Date)
	metrics.BookingsCreated.Inc()

	uc.audit.Dispatch(audit.Event{
		ActorRole: "patient",
		ActorID:   &order.PatientID,
		Action:    "appointment_booked",
		Entity:    "appointment",
		EntityID:  &ap.ID,
		Metadata: map[string]any{
			"doctor_id": order.DoctorID,
			"date":      order.Date,
			"start":     order.StartTime,
		},
	})

	return ap, nil
}

// compensate handles a payment that lost the booking race: best-effort
// gateway refund, with the order row tracking the outcome. Orders left in
// refund_pending are the manual review queue.
func (uc *CompleteBooking) compensate(
	ctx context.Context,
	order *models.PaymentOrder,
	paymentID int,
) {

	order.PaymentID = paymentID
	order.Status = models.OrderRefundPending
	if err := uc.orders.UpdateOrder(ctx, order); err != nil {
		uc.log.Error("conflicted order not marked for refund",
			zap.String("order_id", order.ID), zap.Error(err))
	}

	if err := uc.gateway.Refund(ctx, paymentID); err != nil {
		metrics.RefundsAttempted.WithLabelValues("failed").Inc()
		uc.log.Error("automatic refund failed",
			zap.String("order_id", order.ID),
			zap.Int("payment_id", paymentID),
			zap.Error(err))
	} else {
		metrics.RefundsAttempted.WithLabelValues("ok").Inc()
		order.Status = models.OrderRefunded
		if err := uc.orders.UpdateOrder(ctx, order); err != nil {
			uc.log.Error("refunded order not marked",
				zap.String("order_id", order.ID), zap.Error(err))
		}
	}

	uc.audit.Dispatch(audit.Event{
		ActorRole: "patient",
		ActorID:   &order.PatientID,
		Action:    "booking_conflict_after_payment",
		Entity:    "payment_order",
		Metadata: map[string]any{
			"order_id":   order.ID,
			"payment_id": paymentID,
			"refund":     order.Status,
		},
	})
}
