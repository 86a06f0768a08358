package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"loki/internal/domain/entities"
	mock_interfaces "loki/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestProfileUseCase_Upsert(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewProfileUseCase(nil)
		_, err := uc.Upsert(context.Background(), UpsertProfileCommand{FullName: "Yao", Phone: "0101"})
		if !errors.Is(err, ErrInvalidProfileID) {
			t.Fatalf("expected ErrInvalidProfileID, got %v", err)
		}
	})

	t.Run("missing phone", func(t *testing.T) {
		uc := NewProfileUseCase(nil)
		_, err := uc.Upsert(context.Background(), UpsertProfileCommand{ID: "u-1", FullName: "Yao"})
		if !errors.Is(err, ErrInvalidProfile) {
			t.Fatalf("expected ErrInvalidProfile, got %v", err)
		}
	})

	t.Run("new profile defaults to tenant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIProfileRepository(ctrl)
		uc := NewProfileUseCase(repo)
		uc.now = func() time.Time { return fixedNow }

		repo.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.Profile{}, nil)
		repo.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Profile) (entities.Profile, error) { return p, nil },
		)

		p, err := uc.Upsert(context.Background(), UpsertProfileCommand{ID: "u-1", FullName: " Yao ", Phone: "07.07.12.34.56"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Role != entities.RoleTenant || p.Phone != "0707123456" || p.FullName != "Yao" {
			t.Fatalf("unexpected profile: %+v", p)
		}
		if !p.CreatedAt.Equal(fixedNow) {
			t.Fatalf("expected created_at to be set, got %v", p.CreatedAt)
		}
	})

	t.Run("self-assigned admin is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIProfileRepository(ctrl)
		uc := NewProfileUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.Profile{ID: "u-1", Role: entities.RoleOwner}, nil)

		_, err := uc.Upsert(context.Background(), UpsertProfileCommand{ID: "u-1", FullName: "Yao", Phone: "0101", Role: entities.RoleAdmin})
		if !errors.Is(err, ErrRoleNotAssignable) {
			t.Fatalf("expected ErrRoleNotAssignable, got %v", err)
		}
	})

	t.Run("existing admin keeps admin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIProfileRepository(ctrl)
		uc := NewProfileUseCase(repo)
		created := fixedNow.Add(-24 * time.Hour)

		repo.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.Profile{ID: "u-1", Role: entities.RoleAdmin, CreatedAt: created}, nil)
		repo.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Profile) (entities.Profile, error) { return p, nil },
		)

		p, err := uc.Upsert(context.Background(), UpsertProfileCommand{ID: "u-1", FullName: "Yao", Phone: "0101", Role: entities.RoleOwner})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Role != entities.RoleAdmin || !p.CreatedAt.Equal(created) {
			t.Fatalf("unexpected profile: %+v", p)
		}
	})

	t.Run("empty role keeps existing role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIProfileRepository(ctrl)
		uc := NewProfileUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.Profile{ID: "u-1", Role: entities.RoleOwner}, nil)
		repo.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Profile) (entities.Profile, error) { return p, nil },
		)

		p, err := uc.Upsert(context.Background(), UpsertProfileCommand{ID: "u-1", FullName: "Yao", Phone: "0101"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Role != entities.RoleOwner {
			t.Fatalf("expected owner, got %s", p.Role)
		}
	})
}

func TestProfileUseCase_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIProfileRepository(ctrl)
	uc := NewProfileUseCase(repo)
	repo.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.Profile{}, nil)

	_, err := uc.GetByID(context.Background(), "u-1")
	if !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestNormalizePhone(t *testing.T) {
	cases := map[string]string{
		"07 07 12 34 56":     "0707123456",
		"+225 07.07.12.34.56": "+2250707123456",
		"07+07":              "0707",
		"  ":                 "",
	}
	for in, want := range cases {
		if got := normalizePhone(in); got != want {
			t.Fatalf("normalizePhone(%q) = %q, want %q", in, got, want)
		}
	}
}
