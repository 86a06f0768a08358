package usecase

import (
	"context"
	"errors"
	"loki/internal/domain/entities"
	"loki/internal/usecase/interfaces"
	"strings"
	"time"
)

var (
	ErrProfileNotFound   = errors.New("profile not found")
	ErrInvalidProfileID  = errors.New("invalid profile id")
	ErrInvalidProfile    = errors.New("full name and phone are required")
	ErrRoleNotAssignable = errors.New("role cannot be self-assigned")
)

type UpsertProfileCommand struct {
	ID       string
	FullName string
	Phone    string
	Role     entities.Role
}

type IProfileUseCase interface {
	GetByID(ctx context.Context, id string) (entities.Profile, error)
	Upsert(ctx context.Context, cmd UpsertProfileCommand) (entities.Profile, error)
}

type ProfileUseCase struct {
	repo interfaces.IProfileRepository
	now  func() time.Time
}

var _ IProfileUseCase = (*ProfileUseCase)(nil)

func NewProfileUseCase(repo interfaces.IProfileRepository) *ProfileUseCase {
	return &ProfileUseCase{repo: repo, now: time.Now}
}

func (u *ProfileUseCase) GetByID(ctx context.Context, id string) (entities.Profile, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Profile{}, ErrInvalidProfileID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Profile{}, err
	}
	if p.ID == "" {
		return entities.Profile{}, ErrProfileNotFound
	}
	return p, nil
}

// Upsert creates or replaces the caller's profile. The admin role is granted out
// of band and is kept when an admin edits their own profile.
func (u *ProfileUseCase) Upsert(ctx context.Context, cmd UpsertProfileCommand) (entities.Profile, error) {
	id := strings.TrimSpace(cmd.ID)
	if id == "" {
		return entities.Profile{}, ErrInvalidProfileID
	}
	fullName := strings.TrimSpace(cmd.FullName)
	phone := normalizePhone(cmd.Phone)
	if fullName == "" || phone == "" {
		return entities.Profile{}, ErrInvalidProfile
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Profile{}, err
	}

	role := cmd.Role
	switch {
	case role == "" && existing.Role != "":
		role = existing.Role
	case role == "":
		role = entities.RoleTenant
	case role == entities.RoleAdmin && existing.Role != entities.RoleAdmin:
		return entities.Profile{}, ErrRoleNotAssignable
	case !role.Valid():
		return entities.Profile{}, ErrRoleNotAssignable
	}
	if existing.Role == entities.RoleAdmin {
		role = entities.RoleAdmin
	}

	now := u.now().UTC()
	createdAt := existing.CreatedAt
	if existing.ID == "" {
		createdAt = now
	}
	return u.repo.Put(ctx, entities.Profile{
		ID:        id,
		FullName:  fullName,
		Phone:     phone,
		Role:      role,
		CreatedAt: createdAt,
		UpdatedAt: now,
	})
}

// normalizePhone drops formatting characters. Ivorian numbers are commonly
// written with spaces or dots ("07 07 12 34 56").
func normalizePhone(v string) string {
	var b strings.Builder
	for i, r := range strings.TrimSpace(v) {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}
