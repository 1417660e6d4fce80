package payment

import (
	"context"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	mppayment "github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/mercadopago/sdk-go/pkg/refund"
)

type MercadoPagoGateway struct {
	preferences preference.Client
	payments    mppayment.Client
	refunds     refund.Client
}

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, err
	}

	return &MercadoPagoGateway{
		preferences: preference.NewClient(cfg),
		payments:    mppayment.NewClient(cfg),
		refunds:     refund.NewClient(cfg),
	}, nil
}

func (g *MercadoPagoGateway) CreateOrder(
	ctx context.Context,
	amount float64,
	reference string,
) (Order, error) {

	resp, err := g.preferences.Create(ctx, preference.Request{
		Items: []preference.ItemRequest{
			{
				Title:     "Doctor appointment fee",
				Quantity:  1,
				UnitPrice: amount,
			},
		},
		ExternalReference: reference,
	})
	if err != nil {
		return Order{}, err
	}

	return Order{
		PreferenceID: resp.ID,
		InitPoint:    resp.InitPoint,
	}, nil
}

func (g *MercadoPagoGateway) VerifyPayment(
	ctx context.Context,
	paymentID int,
) (Confirmation, error) {

	resp, err := g.payments.Get(ctx, paymentID)
	if err != nil {
		return Confirmation{}, err
	}

	return Confirmation{
		PaymentID: resp.ID,
		Approved:  resp.Status == "approved",
		Amount:    resp.TransactionAmount,
		Reference: resp.ExternalReference,
	}, nil
}

func (g *MercadoPagoGateway) Refund(ctx context.Context, paymentID int) error {
	_, err := g.refunds.Create(ctx, paymentID)
	return err
}

var _ Gateway = (*MercadoPagoGateway)(nil)
