package usecase

import (
	"context"
	"log"
	"loki/internal/domain/entities"
	"loki/internal/usecase/interfaces"
)

// ownerProfile reads the owner's profile after a write already succeeded.
// A failed read is logged and yields an empty profile; the write is still
// reported as successful.
func ownerProfile(ctx context.Context, profiles interfaces.IProfileRepository, ownerID string) entities.Profile {
	if profiles == nil || ownerID == "" {
		return entities.Profile{}
	}
	p, err := profiles.GetByID(ctx, ownerID)
	if err != nil {
		log.Printf("[owner][lookup] profile read failed owner_id=%s err=%v", ownerID, err)
		return entities.Profile{}
	}
	if p.ID == "" {
		log.Printf("[owner][lookup] profile missing owner_id=%s", ownerID)
	}
	return p
}
