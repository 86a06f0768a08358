package interfaces

import (
	"context"
	"loki/internal/domain/entities"
)

type ContactFilter struct {
	Status  entities.ContactStatus
	OwnerID string
}

// IContactRepository abstracts persistence for contact records.
//
// AdvanceStatus moves a contact from one stage to the next only if it is still at
// from. When commission is non-nil it is inserted in the same atomic write; if
// either part fails nothing is applied and ErrConditionFailed is returned for a
// lost condition.
type IContactRepository interface {
	Create(ctx context.Context, c entities.ContactRecord) (entities.ContactRecord, error)
	GetByID(ctx context.Context, id string) (entities.ContactRecord, error)
	List(ctx context.Context, filter ContactFilter) ([]entities.ContactRecord, error)
	AdvanceStatus(ctx context.Context, id string, from, to entities.ContactStatus, commission *entities.Payment) (entities.ContactRecord, error)
}
