package interfaces

import "context"

// CommissionCharge is one card charge for a commission.
type CommissionCharge struct {
	ExternalReference string
	Amount            int64
	Description       string
	PaymentMethodID   string
	Token             string
	Installments      int
	PayerEmail        string
}

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
type IPaymentGateway interface {
	Charge(ctx context.Context, charge CommissionCharge) (ProviderReceipt, error)
}
