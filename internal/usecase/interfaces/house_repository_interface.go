package interfaces

import (
	"context"
	"loki/internal/domain/entities"
)

// HouseFilter narrows ListHouses. Empty fields match everything.
type HouseFilter struct {
	Type    entities.PropertyType
	City    string
	OwnerID string
}

// IHouseRepository abstracts persistence for listings.
//
// GetByID returns a zero House (empty ID) when the listing does not exist.
type IHouseRepository interface {
	Create(ctx context.Context, h entities.House) (entities.House, error)
	GetByID(ctx context.Context, id string) (entities.House, error)
	List(ctx context.Context, filter HouseFilter) ([]entities.House, error)
}
