package response

import (
	"loki/internal/domain/entities"
	"loki/internal/usecase"
	"time"
)

type ContactResponse struct {
	ID           string    `json:"id"`
	HouseID      string    `json:"house_id"`
	OwnerID      string    `json:"owner_id"`
	TenantID     string    `json:"tenant_id,omitempty"`
	TenantName   string    `json:"tenant_name"`
	TenantPhone  string    `json:"tenant_phone"`
	PropertyType string    `json:"property_type"`
	Status       string    `json:"status"`
	ContactDate  time.Time `json:"contact_date"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ContactReceiptResponse is what the tenant sees after asking for a number.
type ContactReceiptResponse struct {
	Contact    ContactResponse `json:"contact"`
	OwnerPhone string          `json:"owner_phone"`
}

type ContactSummaryResponse struct {
	ContactResponse
	HouseTitle string `json:"house_title"`
	OwnerName  string `json:"owner_name"`
	OwnerPhone string `json:"owner_phone"`
}

type AdvanceContactResponse struct {
	Contact    ContactResponse     `json:"contact"`
	Commission *CommissionResponse `json:"commission,omitempty"`
}

func FromContact(c entities.ContactRecord) ContactResponse {
	return ContactResponse{
		ID:           c.ID,
		HouseID:      c.HouseID,
		OwnerID:      c.OwnerID,
		TenantID:     c.TenantID,
		TenantName:   c.TenantName,
		TenantPhone:  c.TenantPhone,
		PropertyType: string(c.PropertyType),
		Status:       string(c.Status),
		ContactDate:  c.ContactDate,
		UpdatedAt:    c.UpdatedAt,
	}
}

func FromContactReceipt(r usecase.ContactReceipt) ContactReceiptResponse {
	return ContactReceiptResponse{Contact: FromContact(r.Contact), OwnerPhone: r.OwnerPhone}
}

func FromContactSummary(s entities.ContactSummary) ContactSummaryResponse {
	return ContactSummaryResponse{
		ContactResponse: FromContact(s.ContactRecord),
		HouseTitle:      s.HouseTitle,
		OwnerName:       s.OwnerName,
		OwnerPhone:      s.OwnerPhone,
	}
}

func FromContactSummaries(in []entities.ContactSummary) []ContactSummaryResponse {
	out := make([]ContactSummaryResponse, 0, len(in))
	for _, s := range in {
		out = append(out, FromContactSummary(s))
	}
	return out
}

func FromAdvanceResult(r usecase.AdvanceResult) AdvanceContactResponse {
	res := AdvanceContactResponse{Contact: FromContact(r.Contact)}
	if r.Commission != nil {
		c := FromCommission(*r.Commission)
		res.Commission = &c
	}
	return res
}
