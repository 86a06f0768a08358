package response

import (
	"loki/internal/domain/entities"
	"time"
)

type HouseResponse struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Type        string    `json:"type"`
	City        string    `json:"city,omitempty"`
	District    string    `json:"district,omitempty"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromHouse(h entities.House) HouseResponse {
	return HouseResponse{
		ID:          h.ID,
		OwnerID:     h.OwnerID,
		Title:       h.Title,
		Description: h.Description,
		Type:        string(h.Type),
		City:        h.City,
		District:    h.District,
		Price:       h.Price,
		CreatedAt:   h.CreatedAt,
	}
}

func FromHouses(in []entities.House) []HouseResponse {
	out := make([]HouseResponse, 0, len(in))
	for _, h := range in {
		out = append(out, FromHouse(h))
	}
	return out
}
