package entities

import (
	"encoding/json"
	"time"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

type PaymentType string

const PaymentTypeCommission PaymentType = "commission"

// Payment is a fee owed to the platform. Commissions are payable by the owner,
// never by the tenant.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (payable_by-index): payable_by
//
// A commission id is derived from its contact id (CommissionIDForContact), which
// makes a second commission for the same contact a conditional-write failure.
type Payment struct {
	ID        string        `json:"id"`
	ContactID string        `json:"contact_id"`
	PayableBy string        `json:"payable_by"`
	Amount    int64         `json:"amount"`
	Type      PaymentType   `json:"type"`
	Status    PaymentStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`

	ProviderPaymentID string          `json:"provider_payment_id,omitempty"`
	ProviderStatus    string          `json:"provider_status,omitempty"`
	ProviderPayload   json.RawMessage `json:"provider_payload,omitempty"`
	PaidAt            *time.Time      `json:"paid_at,omitempty"`
}

func CommissionIDForContact(contactID string) string {
	return "commission-" + contactID
}

// NewContactCommission builds the pending commission generated when contact
// enters rental_confirmed.
func NewContactCommission(contact ContactRecord, now time.Time) Payment {
	return Payment{
		ID:        CommissionIDForContact(contact.ID),
		ContactID: contact.ID,
		PayableBy: contact.OwnerID,
		Amount:    contact.PropertyType.ContactCommission(),
		Type:      PaymentTypeCommission,
		Status:    PaymentStatusPending,
		CreatedAt: now,
	}
}
