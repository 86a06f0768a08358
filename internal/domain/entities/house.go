package entities

import "time"

// House is a listing published by an owner. Despite the name it covers every
// PropertyType.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (owner_id-index): owner_id
type House struct {
	ID          string       `json:"id"`
	OwnerID     string       `json:"owner_id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Type        PropertyType `json:"type"`
	City        string       `json:"city"`
	District    string       `json:"district"`
	Price       float64      `json:"price"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}
