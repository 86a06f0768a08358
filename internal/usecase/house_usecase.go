package usecase

import (
	"context"
	"errors"
	"loki/internal/domain/entities"
	"loki/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrHouseNotFound       = errors.New("house not found")
	ErrInvalidHouseID      = errors.New("invalid house id")
	ErrInvalidOwnerID      = errors.New("invalid owner id")
	ErrInvalidHouseTitle   = errors.New("invalid house title")
	ErrInvalidPropertyType = errors.New("invalid property type")
	ErrInvalidHousePrice   = errors.New("invalid house price")
)

type CreateHouseCommand struct {
	OwnerID     string
	Title       string
	Description string
	Type        entities.PropertyType
	City        string
	District    string
	Price       float64
}

// IHouseUseCase exposes listing operations.
type IHouseUseCase interface {
	CreateHouse(ctx context.Context, cmd CreateHouseCommand) (entities.House, error)
	GetByID(ctx context.Context, id string) (entities.House, error)
	List(ctx context.Context, filter interfaces.HouseFilter) ([]entities.House, error)
}

type HouseUseCase struct {
	repo interfaces.IHouseRepository
	now  func() time.Time
}

var _ IHouseUseCase = (*HouseUseCase)(nil)

func NewHouseUseCase(repo interfaces.IHouseRepository) *HouseUseCase {
	return &HouseUseCase{repo: repo, now: time.Now}
}

func (u *HouseUseCase) CreateHouse(ctx context.Context, cmd CreateHouseCommand) (entities.House, error) {
	ownerID := strings.TrimSpace(cmd.OwnerID)
	if ownerID == "" {
		return entities.House{}, ErrInvalidOwnerID
	}
	title := strings.TrimSpace(cmd.Title)
	if title == "" {
		return entities.House{}, ErrInvalidHouseTitle
	}
	if !cmd.Type.Valid() {
		return entities.House{}, ErrInvalidPropertyType
	}
	if cmd.Price <= 0 {
		return entities.House{}, ErrInvalidHousePrice
	}

	now := u.now().UTC()
	h := entities.House{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Title:       title,
		Description: strings.TrimSpace(cmd.Description),
		Type:        cmd.Type,
		City:        strings.TrimSpace(cmd.City),
		District:    strings.TrimSpace(cmd.District),
		Price:       cmd.Price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return u.repo.Create(ctx, h)
}

func (u *HouseUseCase) GetByID(ctx context.Context, id string) (entities.House, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.House{}, ErrInvalidHouseID
	}

	h, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.House{}, err
	}
	if h.ID == "" {
		return entities.House{}, ErrHouseNotFound
	}
	return h, nil
}

func (u *HouseUseCase) List(ctx context.Context, filter interfaces.HouseFilter) ([]entities.House, error) {
	if filter.Type != "" && !filter.Type.Valid() {
		return nil, ErrInvalidPropertyType
	}
	filter.City = strings.TrimSpace(filter.City)
	filter.OwnerID = strings.TrimSpace(filter.OwnerID)
	return u.repo.List(ctx, filter)
}
