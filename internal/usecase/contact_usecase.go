package usecase

import (
	"context"
	"errors"
	"log"
	"loki/internal/domain/entities"
	"loki/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrContactNotFound          = errors.New("contact not found")
	ErrInvalidContactID         = errors.New("invalid contact id")
	ErrInvalidContactStatus     = errors.New("invalid contact status")
	ErrMissingTenantDetails     = errors.New("tenant name and phone are required")
	ErrContactFunnelCompleted   = errors.New("contact already at rental_confirmed")
	ErrInvalidContactTransition = errors.New("invalid contact status transition")
	ErrContactStatusConflict    = errors.New("contact status changed concurrently")
)

type InitiateContactCommand struct {
	HouseID     string
	TenantID    string
	TenantName  string
	TenantPhone string
}

// ContactReceipt is returned to the tenant: the recorded lead and the owner's
// phone number it unlocks.
type ContactReceipt struct {
	Contact    entities.ContactRecord
	OwnerPhone string
}

// AdvanceResult is the outcome of one funnel transition. Commission is set only
// on entry to rental_confirmed.
type AdvanceResult struct {
	Contact    entities.ContactRecord
	Commission *entities.Payment
}

// IContactUseCase drives the contact funnel:
//
//	contact_initiated -> reservation_made -> rental_confirmed
type IContactUseCase interface {
	InitiateContact(ctx context.Context, cmd InitiateContactCommand) (ContactReceipt, error)
	AdvanceContact(ctx context.Context, id string, requested entities.ContactStatus) (AdvanceResult, error)
	GetByID(ctx context.Context, id string) (entities.ContactSummary, error)
	List(ctx context.Context, filter interfaces.ContactFilter) ([]entities.ContactSummary, error)
}

type ContactUseCase struct {
	contacts interfaces.IContactRepository
	houses   interfaces.IHouseRepository
	profiles interfaces.IProfileRepository
	now      func() time.Time
}

var _ IContactUseCase = (*ContactUseCase)(nil)

func NewContactUseCase(contacts interfaces.IContactRepository, houses interfaces.IHouseRepository, profiles interfaces.IProfileRepository) *ContactUseCase {
	return &ContactUseCase{contacts: contacts, houses: houses, profiles: profiles, now: time.Now}
}

func (u *ContactUseCase) InitiateContact(ctx context.Context, cmd InitiateContactCommand) (ContactReceipt, error) {
	houseID := strings.TrimSpace(cmd.HouseID)
	if houseID == "" {
		return ContactReceipt{}, ErrInvalidHouseID
	}
	name := strings.TrimSpace(cmd.TenantName)
	phone := normalizePhone(cmd.TenantPhone)
	if name == "" || phone == "" {
		return ContactReceipt{}, ErrMissingTenantDetails
	}

	house, err := u.houses.GetByID(ctx, houseID)
	if err != nil {
		return ContactReceipt{}, err
	}
	if house.ID == "" {
		return ContactReceipt{}, ErrHouseNotFound
	}

	now := u.now().UTC()
	c := entities.ContactRecord{
		ID:           uuid.NewString(),
		HouseID:      house.ID,
		OwnerID:      house.OwnerID,
		TenantID:     strings.TrimSpace(cmd.TenantID),
		TenantName:   name,
		TenantPhone:  phone,
		PropertyType: house.Type,
		Status:       entities.ContactStatusInitiated,
		ContactDate:  now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	created, err := u.contacts.Create(ctx, c)
	if err != nil {
		log.Printf("[contact][usecase] create failed house_id=%s err=%v", house.ID, err)
		return ContactReceipt{}, err
	}
	log.Printf("[contact][usecase] initiated contact_id=%s house_id=%s owner_id=%s", created.ID, created.HouseID, created.OwnerID)

	owner := ownerProfile(ctx, u.profiles, house.OwnerID)
	return ContactReceipt{Contact: created, OwnerPhone: owner.Phone}, nil
}

// AdvanceContact moves a contact to the stage after its current one. When
// requested is set it must name that next stage; skipping and reverting are
// rejected. Entering rental_confirmed writes the status and the owner's
// commission atomically.
func (u *ContactUseCase) AdvanceContact(ctx context.Context, id string, requested entities.ContactStatus) (AdvanceResult, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return AdvanceResult{}, ErrInvalidContactID
	}
	if requested != "" && !requested.Valid() {
		return AdvanceResult{}, ErrInvalidContactStatus
	}

	current, err := u.contacts.GetByID(ctx, id)
	if err != nil {
		return AdvanceResult{}, err
	}
	if current.ID == "" {
		return AdvanceResult{}, ErrContactNotFound
	}

	next, ok := current.Status.Next()
	if !ok {
		if current.Status.IsTerminal() {
			return AdvanceResult{}, ErrContactFunnelCompleted
		}
		return AdvanceResult{}, ErrInvalidContactTransition
	}
	if requested != "" && requested != next {
		log.Printf("[contact][usecase] rejected transition contact_id=%s from=%s requested=%s", id, current.Status, requested)
		return AdvanceResult{}, ErrInvalidContactTransition
	}

	var commission *entities.Payment
	if next.IsTerminal() {
		c := entities.NewContactCommission(current, u.now().UTC())
		commission = &c
	}

	updated, err := u.contacts.AdvanceStatus(ctx, id, current.Status, next, commission)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			log.Printf("[contact][usecase] stale transition contact_id=%s from=%s to=%s", id, current.Status, next)
			return AdvanceResult{}, ErrContactStatusConflict
		}
		log.Printf("[contact][usecase] advance failed contact_id=%s from=%s to=%s err=%v", id, current.Status, next, err)
		return AdvanceResult{}, err
	}
	if commission != nil {
		log.Printf("[contact][usecase] rental confirmed contact_id=%s commission_id=%s amount=%d", id, commission.ID, commission.Amount)
	} else {
		log.Printf("[contact][usecase] advanced contact_id=%s to=%s", id, next)
	}
	return AdvanceResult{Contact: updated, Commission: commission}, nil
}

func (u *ContactUseCase) GetByID(ctx context.Context, id string) (entities.ContactSummary, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ContactSummary{}, ErrInvalidContactID
	}

	c, err := u.contacts.GetByID(ctx, id)
	if err != nil {
		return entities.ContactSummary{}, err
	}
	if c.ID == "" {
		return entities.ContactSummary{}, ErrContactNotFound
	}
	return u.summarize(ctx, c), nil
}

func (u *ContactUseCase) List(ctx context.Context, filter interfaces.ContactFilter) ([]entities.ContactSummary, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, ErrInvalidContactStatus
	}

	records, err := u.contacts.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]entities.ContactSummary, 0, len(records))
	for _, c := range records {
		out = append(out, u.summarize(ctx, c))
	}
	return out, nil
}

// summarize joins a contact with its listing title and owner details. Lookups
// that fail leave the joined fields empty.
func (u *ContactUseCase) summarize(ctx context.Context, c entities.ContactRecord) entities.ContactSummary {
	s := entities.ContactSummary{ContactRecord: c}
	if h, err := u.houses.GetByID(ctx, c.HouseID); err != nil {
		log.Printf("[contact][usecase] house lookup failed contact_id=%s house_id=%s err=%v", c.ID, c.HouseID, err)
	} else {
		s.HouseTitle = h.Title
	}
	owner := ownerProfile(ctx, u.profiles, c.OwnerID)
	s.OwnerName = owner.FullName
	s.OwnerPhone = owner.Phone
	return s
}
