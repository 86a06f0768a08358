package interfaces

import (
	"context"
	"encoding/json"
	"loki/internal/domain/entities"
	"time"
)

type PaymentFilter struct {
	Status    entities.PaymentStatus
	PayableBy string
}

// ProviderReceipt is what the payment provider returned for a charge.
type ProviderReceipt struct {
	PaymentID string
	Status    string
	Payload   json.RawMessage
}

// IPaymentRepository abstracts persistence for fees and commissions.
//
// Commissions are created by IContactRepository.AdvanceStatus; this repository
// only reads them and records their settlement.
type IPaymentRepository interface {
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	List(ctx context.Context, filter PaymentFilter) ([]entities.Payment, error)
	MarkPaid(ctx context.Context, id string, receipt ProviderReceipt, paidAt time.Time) (entities.Payment, error)
}
