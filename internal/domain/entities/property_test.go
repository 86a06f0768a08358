package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPropertyType_ContactCommission(t *testing.T) {
	assert.Equal(t, int64(2000), PropertyTypeResidence.ContactCommission())
	assert.Equal(t, int64(5000), PropertyTypeHouse.ContactCommission())
	assert.Equal(t, int64(5000), PropertyTypeLand.ContactCommission())
	assert.Equal(t, int64(5000), PropertyTypeShop.ContactCommission())
}

func TestPropertyType_BookingCommission(t *testing.T) {
	cases := []struct {
		typ    PropertyType
		amount int64
		ok     bool
	}{
		{PropertyTypeResidence, 2000, true},
		{PropertyTypeHouse, 5000, true},
		{PropertyTypeLand, 0, false},
		{PropertyTypeShop, 0, false},
	}
	for _, tc := range cases {
		t.Run(string(tc.typ), func(t *testing.T) {
			amount, ok := tc.typ.BookingCommission()
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.amount, amount)
		})
	}
}

func TestParsePropertyType(t *testing.T) {
	got, ok := ParsePropertyType(" Residence ")
	assert.True(t, ok)
	assert.Equal(t, PropertyTypeResidence, got)

	_, ok = ParsePropertyType("villa")
	assert.False(t, ok)
}
