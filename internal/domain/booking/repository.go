package booking

import (
	"context"

	"github.com/careslot/clinic-scheduler/internal/models"
)

// OrderRepository persists payment sessions. Orders are write-once rows
// plus status updates; an abandoned checkout simply stays pending and
// never reserves the slot.
type OrderRepository interface {
	CreateOrder(
		ctx context.Context,
		order *models.PaymentOrder,
	) error

	GetOrder(
		ctx context.Context,
		id string,
	) (*models.PaymentOrder, error)

	UpdateOrder(
		ctx context.Context,
		order *models.PaymentOrder,
	) error
}
