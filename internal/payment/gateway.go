package payment

import "context"

// Order is the handle returned when a checkout is opened. InitPoint is the
// URL the client redirects the patient to.
type Order struct {
	PreferenceID string
	InitPoint    string
}

// Confirmation is the provider-verified result of a payment lookup.
type Confirmation struct {
	PaymentID int
	Approved  bool
	Amount    float64
	// Reference echoes the external_reference the order was created
	// with; it ties the payment back to our session.
	Reference string
}

// Gateway abstracts the payment provider. The orchestrator only ever
// consumes "payment confirmed"; checkout itself happens client-side.
type Gateway interface {
	CreateOrder(ctx context.Context, amount float64, reference string) (Order, error)
	VerifyPayment(ctx context.Context, paymentID int) (Confirmation, error)
	Refund(ctx context.Context, paymentID int) error
}
