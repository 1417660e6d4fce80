package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/careslot/clinic-scheduler/internal/domain/booking"
	"github.com/careslot/clinic-scheduler/internal/models"
)

type PaymentOrderGormRepository struct {
	db *gorm.DB
}

func NewPaymentOrderGormRepository(db *gorm.DB) *PaymentOrderGormRepository {
	return &PaymentOrderGormRepository{db: db}
}

func (r *PaymentOrderGormRepository) CreateOrder(
	ctx context.Context,
	order *models.PaymentOrder,
) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *PaymentOrderGormRepository) GetOrder(
	ctx context.Context,
	id string,
) (*models.PaymentOrder, error) {

	var order models.PaymentOrder
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *PaymentOrderGormRepository) UpdateOrder(
	ctx context.Context,
	order *models.PaymentOrder,
) error {
	return r.db.WithContext(ctx).Save(order).Error
}

// Compile-time check
var _ domain.OrderRepository = (*PaymentOrderGormRepository)(nil)
