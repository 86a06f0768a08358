package interfaces

import (
	"context"
	"loki/internal/domain/entities"
)

// IProfileRepository abstracts persistence for user profiles.
type IProfileRepository interface {
	GetByID(ctx context.Context, id string) (entities.Profile, error)
	Put(ctx context.Context, p entities.Profile) (entities.Profile, error)
}
