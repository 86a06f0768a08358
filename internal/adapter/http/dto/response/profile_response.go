package response

import (
	"loki/internal/domain/entities"
	"time"
)

type ProfileResponse struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromProfile(p entities.Profile) ProfileResponse {
	return ProfileResponse{
		ID:        p.ID,
		FullName:  p.FullName,
		Phone:     p.Phone,
		Role:      string(p.Role),
		UpdatedAt: p.UpdatedAt,
	}
}
