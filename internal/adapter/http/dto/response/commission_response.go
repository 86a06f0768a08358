package response

import (
	"loki/internal/domain/entities"
	"time"
)

// CommissionResponse omits the raw provider payload, which can carry payer
// details.
type CommissionResponse struct {
	ID                string     `json:"id"`
	ContactID         string     `json:"contact_id"`
	PayableBy         string     `json:"payable_by"`
	Amount            int64      `json:"amount"`
	Type              string     `json:"type"`
	Status            string     `json:"status"`
	CreatedAt         time.Time  `json:"created_at"`
	ProviderPaymentID string     `json:"provider_payment_id,omitempty"`
	ProviderStatus    string     `json:"provider_status,omitempty"`
	PaidAt            *time.Time `json:"paid_at,omitempty"`
}

func FromCommission(p entities.Payment) CommissionResponse {
	return CommissionResponse{
		ID:                p.ID,
		ContactID:         p.ContactID,
		PayableBy:         p.PayableBy,
		Amount:            p.Amount,
		Type:              string(p.Type),
		Status:            string(p.Status),
		CreatedAt:         p.CreatedAt,
		ProviderPaymentID: p.ProviderPaymentID,
		ProviderStatus:    p.ProviderStatus,
		PaidAt:            p.PaidAt,
	}
}

func FromCommissions(in []entities.Payment) []CommissionResponse {
	out := make([]CommissionResponse, 0, len(in))
	for _, p := range in {
		out = append(out, FromCommission(p))
	}
	return out
}
