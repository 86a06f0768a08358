package entities

import "time"

// ContactStatus is the stage of a lead in the contact funnel.
//
// Stages only move forward:
//
//	contact_initiated -> reservation_made -> rental_confirmed
//
// rental_confirmed is terminal and is the only stage that generates a commission.
type ContactStatus string

const (
	ContactStatusInitiated       ContactStatus = "contact_initiated"
	ContactStatusReservationMade ContactStatus = "reservation_made"
	ContactStatusRentalConfirmed ContactStatus = "rental_confirmed"
)

var contactFunnel = []ContactStatus{
	ContactStatusInitiated,
	ContactStatusReservationMade,
	ContactStatusRentalConfirmed,
}

func (s ContactStatus) Valid() bool {
	return s.rank() >= 0
}

func (s ContactStatus) IsTerminal() bool {
	return s == ContactStatusRentalConfirmed
}

// Next returns the stage following s. ok is false for the terminal stage and for
// unknown values.
func (s ContactStatus) Next() (next ContactStatus, ok bool) {
	i := s.rank()
	if i < 0 || i == len(contactFunnel)-1 {
		return "", false
	}
	return contactFunnel[i+1], true
}

func (s ContactStatus) rank() int {
	for i, st := range contactFunnel {
		if st == s {
			return i
		}
	}
	return -1
}

// ContactStatuses lists the funnel in order.
func ContactStatuses() []ContactStatus {
	out := make([]ContactStatus, len(contactFunnel))
	copy(out, contactFunnel)
	return out
}

// ContactRecord is one tenant's interest in one property.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (owner_id-index): owner_id
//
// PropertyType is copied from the house when the contact is created.
type ContactRecord struct {
	ID           string        `json:"id"`
	HouseID      string        `json:"house_id"`
	OwnerID      string        `json:"owner_id"`
	TenantID     string        `json:"tenant_id,omitempty"`
	TenantName   string        `json:"tenant_name"`
	TenantPhone  string        `json:"tenant_phone"`
	PropertyType PropertyType  `json:"property_type"`
	Status       ContactStatus `json:"status"`
	ContactDate  time.Time     `json:"contact_date"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// ContactSummary is a contact joined with the listing and owner fields shown in
// the back office.
type ContactSummary struct {
	ContactRecord
	HouseTitle string `json:"house_title"`
	OwnerName  string `json:"owner_name"`
	OwnerPhone string `json:"owner_phone"`
}
