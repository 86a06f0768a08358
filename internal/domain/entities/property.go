package entities

import "strings"

// PropertyType is the kind of listing. It drives the commission amounts.
type PropertyType string

const (
	PropertyTypeResidence PropertyType = "residence"
	PropertyTypeHouse     PropertyType = "house"
	PropertyTypeLand      PropertyType = "land"
	PropertyTypeShop      PropertyType = "shop"
)

// Commission amounts, in FCFA.
const (
	ResidenceCommission int64 = 2000
	StandardCommission  int64 = 5000
)

func ParsePropertyType(v string) (PropertyType, bool) {
	t := PropertyType(strings.ToLower(strings.TrimSpace(v)))
	return t, t.Valid()
}

func (t PropertyType) Valid() bool {
	switch t {
	case PropertyTypeResidence, PropertyTypeHouse, PropertyTypeLand, PropertyTypeShop:
		return true
	}
	return false
}

// ContactCommission is the fee owed by the owner once a lead on this property
// reaches rental_confirmed.
func (t PropertyType) ContactCommission() int64 {
	if t == PropertyTypeResidence {
		return ResidenceCommission
	}
	return StandardCommission
}

// BookingCommission is the intermediation fee snapshotted on a booking request.
// Land and shop listings have no booking fee.
func (t PropertyType) BookingCommission() (int64, bool) {
	switch t {
	case PropertyTypeResidence:
		return ResidenceCommission, true
	case PropertyTypeHouse:
		return StandardCommission, true
	}
	return 0, false
}
