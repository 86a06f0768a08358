package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"loki/internal/domain/entities"
	"loki/internal/usecase/interfaces"
	mock_interfaces "loki/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func newContactUseCaseWithMocks(t *testing.T) (*ContactUseCase, *mock_interfaces.MockIContactRepository, *mock_interfaces.MockIHouseRepository, *mock_interfaces.MockIProfileRepository) {
	ctrl := gomock.NewController(t)
	contacts := mock_interfaces.NewMockIContactRepository(ctrl)
	houses := mock_interfaces.NewMockIHouseRepository(ctrl)
	profiles := mock_interfaces.NewMockIProfileRepository(ctrl)
	uc := NewContactUseCase(contacts, houses, profiles)
	uc.now = func() time.Time { return fixedNow }
	return uc, contacts, houses, profiles
}

func TestContactUseCase_InitiateContact(t *testing.T) {
	t.Run("missing house id", func(t *testing.T) {
		uc := NewContactUseCase(nil, nil, nil)
		_, err := uc.InitiateContact(context.Background(), InitiateContactCommand{TenantName: "Awa", TenantPhone: "0707"})
		if !errors.Is(err, ErrInvalidHouseID) {
			t.Fatalf("expected ErrInvalidHouseID, got %v", err)
		}
	})

	t.Run("missing tenant details", func(t *testing.T) {
		uc := NewContactUseCase(nil, nil, nil)
		_, err := uc.InitiateContact(context.Background(), InitiateContactCommand{HouseID: "h-1", TenantName: "  ", TenantPhone: "0707"})
		if !errors.Is(err, ErrMissingTenantDetails) {
			t.Fatalf("expected ErrMissingTenantDetails, got %v", err)
		}
	})

	t.Run("house not found", func(t *testing.T) {
		uc, _, houses, _ := newContactUseCaseWithMocks(t)
		houses.EXPECT().GetByID(gomock.Any(), "h-1").Return(entities.House{}, nil)

		_, err := uc.InitiateContact(context.Background(), InitiateContactCommand{HouseID: "h-1", TenantName: "Awa", TenantPhone: "0707"})
		if !errors.Is(err, ErrHouseNotFound) {
			t.Fatalf("expected ErrHouseNotFound, got %v", err)
		}
	})

	t.Run("create error", func(t *testing.T) {
		uc, contacts, houses, _ := newContactUseCaseWithMocks(t)
		houses.EXPECT().GetByID(gomock.Any(), "h-1").Return(entities.House{ID: "h-1", OwnerID: "o-1", Type: entities.PropertyTypeShop}, nil)
		contacts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.ContactRecord{}, errors.New("db"))

		_, err := uc.InitiateContact(context.Background(), InitiateContactCommand{HouseID: "h-1", TenantName: "Awa", TenantPhone: "0707"})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success returns owner phone", func(t *testing.T) {
		uc, contacts, houses, profiles := newContactUseCaseWithMocks(t)
		houses.EXPECT().GetByID(gomock.Any(), "h-1").Return(entities.House{ID: "h-1", OwnerID: "o-1", Type: entities.PropertyTypeShop}, nil)
		contacts.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ContactRecord{})).DoAndReturn(
			func(_ context.Context, c entities.ContactRecord) (entities.ContactRecord, error) {
				if c.ID == "" || c.HouseID != "h-1" || c.OwnerID != "o-1" || c.TenantID != "t-1" {
					t.Fatalf("unexpected references: %+v", c)
				}
				if c.Status != entities.ContactStatusInitiated || c.PropertyType != entities.PropertyTypeShop {
					t.Fatalf("unexpected status/type: %+v", c)
				}
				if c.TenantPhone != "0707123456" || c.TenantName != "Awa Koné" {
					t.Fatalf("unexpected tenant details: %+v", c)
				}
				if !c.ContactDate.Equal(fixedNow) || !c.CreatedAt.Equal(fixedNow) {
					t.Fatalf("unexpected timestamps: %+v", c)
				}
				return c, nil
			},
		)
		profiles.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Profile{ID: "o-1", Phone: "+2250101010101"}, nil)

		res, err := uc.InitiateContact(context.Background(), InitiateContactCommand{
			HouseID: " h-1 ", TenantID: "t-1", TenantName: " Awa Koné ", TenantPhone: "07 07 12 34 56",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.OwnerPhone != "+2250101010101" {
			t.Fatalf("expected owner phone, got %q", res.OwnerPhone)
		}
	})

	t.Run("owner profile failure does not fail the contact", func(t *testing.T) {
		uc, contacts, houses, profiles := newContactUseCaseWithMocks(t)
		houses.EXPECT().GetByID(gomock.Any(), "h-1").Return(entities.House{ID: "h-1", OwnerID: "o-1", Type: entities.PropertyTypeLand}, nil)
		contacts.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.ContactRecord) (entities.ContactRecord, error) { return c, nil },
		)
		profiles.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Profile{}, errors.New("timeout"))

		res, err := uc.InitiateContact(context.Background(), InitiateContactCommand{HouseID: "h-1", TenantName: "Awa", TenantPhone: "0707"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Contact.ID == "" || res.OwnerPhone != "" {
			t.Fatalf("unexpected receipt: %+v", res)
		}
	})
}

func TestContactUseCase_AdvanceContact(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewContactUseCase(nil, nil, nil)
		_, err := uc.AdvanceContact(context.Background(), " ", "")
		if !errors.Is(err, ErrInvalidContactID) {
			t.Fatalf("expected ErrInvalidContactID, got %v", err)
		}
	})

	t.Run("invalid requested status", func(t *testing.T) {
		uc := NewContactUseCase(nil, nil, nil)
		_, err := uc.AdvanceContact(context.Background(), "c-1", "archived")
		if !errors.Is(err, ErrInvalidContactStatus) {
			t.Fatalf("expected ErrInvalidContactStatus, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, contacts, _, _ := newContactUseCaseWithMocks(t)
		contacts.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.ContactRecord{}, nil)

		_, err := uc.AdvanceContact(context.Background(), "c-1", "")
		if !errors.Is(err, ErrContactNotFound) {
			t.Fatalf("expected ErrContactNotFound, got %v", err)
		}
	})

	t.Run("initiated to reservation made creates no commission", func(t *testing.T) {
		uc, contacts, _, _ := newContactUseCaseWithMocks(t)
		current := entities.ContactRecord{ID: "c-1", OwnerID: "o-1", PropertyType: entities.PropertyTypeHouse, Status: entities.ContactStatusInitiated}
		contacts.EXPECT().GetByID(gomock.Any(), "c-1").Return(current, nil)
		advanced := current
		advanced.Status = entities.ContactStatusReservationMade
		contacts.EXPECT().AdvanceStatus(gomock.Any(), "c-1", entities.ContactStatusInitiated, entities.ContactStatusReservationMade, (*entities.Payment)(nil)).Return(advanced, nil)

		res, err := uc.AdvanceContact(context.Background(), "c-1", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Commission != nil || res.Contact.Status != entities.ContactStatusReservationMade {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	feeCases := []struct {
		typ    entities.PropertyType
		amount int64
	}{
		{entities.PropertyTypeResidence, 2000},
		{entities.PropertyTypeHouse, 5000},
		{entities.PropertyTypeLand, 5000},
		{entities.PropertyTypeShop, 5000},
	}
	for _, tc := range feeCases {
		t.Run("rental confirmed "+string(tc.typ)+" generates one pending commission", func(t *testing.T) {
			uc, contacts, _, _ := newContactUseCaseWithMocks(t)
			current := entities.ContactRecord{ID: "c-1", OwnerID: "o-1", PropertyType: tc.typ, Status: entities.ContactStatusReservationMade}
			contacts.EXPECT().GetByID(gomock.Any(), "c-1").Return(current, nil)
			contacts.EXPECT().AdvanceStatus(gomock.Any(), "c-1", entities.ContactStatusReservationMade, entities.ContactStatusRentalConfirmed, gomock.Not(gomock.Nil())).DoAndReturn(
				func(_ context.Context, _ string, _, to entities.ContactStatus, p *entities.Payment) (entities.ContactRecord, error) {
					if p.Amount != tc.amount || p.Status != entities.PaymentStatusPending || p.Type != entities.PaymentTypeCommission {
						t.Fatalf("unexpected commission: %+v", p)
					}
					if p.PayableBy != "o-1" || p.ContactID != "c-1" || p.ID != entities.CommissionIDForContact("c-1") {
						t.Fatalf("unexpected commission references: %+v", p)
					}
					out := current
					out.Status = to
					return out, nil
				},
			)

			res, err := uc.AdvanceContact(context.Background(), "c-1", entities.ContactStatusRentalConfirmed)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Commission == nil || res.Commission.Amount != tc.amount {
				t.Fatalf("expected commission of %d, got %+v", tc.amount, res.Commission)
			}
		})
	}

	t.Run("terminal stage cannot advance", func(t *testing.T) {
		uc, contacts, _, _ := newContactUseCaseWithMocks(t)
		contacts.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.ContactRecord{ID: "c-1", Status: entities.ContactStatusRentalConfirmed}, nil)

		_, err := uc.AdvanceContact(context.Background(), "c-1", "")
		if !errors.Is(err, ErrContactFunnelCompleted) {
			t.Fatalf("expected ErrContactFunnelCompleted, got %v", err)
		}
	})

	t.Run("skipping a stage is rejected", func(t *testing.T) {
		uc, contacts, _, _ := newContactUseCaseWithMocks(t)
		contacts.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.ContactRecord{ID: "c-1", Status: entities.ContactStatusInitiated}, nil)

		_, err := uc.AdvanceContact(context.Background(), "c-1", entities.ContactStatusRentalConfirmed)
		if !errors.Is(err, ErrInvalidContactTransition) {
			t.Fatalf("expected ErrInvalidContactTransition, got %v", err)
		}
	})

	t.Run("reverting is rejected", func(t *testing.T) {
		uc, contacts, _, _ := newContactUseCaseWithMocks(t)
		contacts.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.ContactRecord{ID: "c-1", Status: entities.ContactStatusReservationMade}, nil)

		_, err := uc.AdvanceContact(context.Background(), "c-1", entities.ContactStatusInitiated)
		if !errors.Is(err, ErrInvalidContactTransition) {
			t.Fatalf("expected ErrInvalidContactTransition, got %v", err)
		}
	})

	t.Run("lost condition maps to conflict", func(t *testing.T) {
		uc, contacts, _, _ := newContactUseCaseWithMocks(t)
		contacts.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.ContactRecord{ID: "c-1", Status: entities.ContactStatusReservationMade}, nil)
		contacts.EXPECT().AdvanceStatus(gomock.Any(), "c-1", gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.ContactRecord{}, interfaces.ErrConditionFailed)

		_, err := uc.AdvanceContact(context.Background(), "c-1", "")
		if !errors.Is(err, ErrContactStatusConflict) {
			t.Fatalf("expected ErrContactStatusConflict, got %v", err)
		}
	})

	t.Run("write failure surfaces without commission", func(t *testing.T) {
		uc, contacts, _, _ := newContactUseCaseWithMocks(t)
		contacts.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.ContactRecord{ID: "c-1", Status: entities.ContactStatusReservationMade}, nil)
		contacts.EXPECT().AdvanceStatus(gomock.Any(), "c-1", gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.ContactRecord{}, errors.New("db"))

		res, err := uc.AdvanceContact(context.Background(), "c-1", "")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
		if res.Commission != nil {
			t.Fatalf("expected no commission on failed write")
		}
	})
}

func TestContactUseCase_List(t *testing.T) {
	t.Run("invalid status filter", func(t *testing.T) {
		uc := NewContactUseCase(nil, nil, nil)
		_, err := uc.List(context.Background(), interfaces.ContactFilter{Status: "lost"})
		if !errors.Is(err, ErrInvalidContactStatus) {
			t.Fatalf("expected ErrInvalidContactStatus, got %v", err)
		}
	})

	t.Run("joins house and owner", func(t *testing.T) {
		uc, contacts, houses, profiles := newContactUseCaseWithMocks(t)
		filter := interfaces.ContactFilter{Status: entities.ContactStatusInitiated}
		contacts.EXPECT().List(gomock.Any(), filter).Return([]entities.ContactRecord{
			{ID: "c-1", HouseID: "h-1", OwnerID: "o-1", Status: entities.ContactStatusInitiated},
			{ID: "c-2", HouseID: "h-2", OwnerID: "o-2", Status: entities.ContactStatusInitiated},
		}, nil)
		houses.EXPECT().GetByID(gomock.Any(), "h-1").Return(entities.House{ID: "h-1", Title: "Villa Cocody"}, nil)
		houses.EXPECT().GetByID(gomock.Any(), "h-2").Return(entities.House{}, errors.New("db"))
		profiles.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Profile{ID: "o-1", FullName: "Yao", Phone: "0101"}, nil)
		profiles.EXPECT().GetByID(gomock.Any(), "o-2").Return(entities.Profile{}, nil)

		res, err := uc.List(context.Background(), filter)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 2 {
			t.Fatalf("expected 2 summaries, got %d", len(res))
		}
		if res[0].HouseTitle != "Villa Cocody" || res[0].OwnerName != "Yao" || res[0].OwnerPhone != "0101" {
			t.Fatalf("unexpected summary: %+v", res[0])
		}
		if res[1].HouseTitle != "" || res[1].OwnerName != "" {
			t.Fatalf("expected empty joined fields, got %+v", res[1])
		}
	})
}

func TestContactUseCase_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, contacts, _, _ := newContactUseCaseWithMocks(t)
		contacts.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.ContactRecord{}, nil)

		_, err := uc.GetByID(context.Background(), "c-1")
		if !errors.Is(err, ErrContactNotFound) {
			t.Fatalf("expected ErrContactNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, contacts, houses, profiles := newContactUseCaseWithMocks(t)
		contacts.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.ContactRecord{ID: "c-1", HouseID: "h-1", OwnerID: "o-1"}, nil)
		houses.EXPECT().GetByID(gomock.Any(), "h-1").Return(entities.House{ID: "h-1", Title: "Studio Marcory"}, nil)
		profiles.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Profile{ID: "o-1", FullName: "Yao"}, nil)

		res, err := uc.GetByID(context.Background(), " c-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "c-1" || res.HouseTitle != "Studio Marcory" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}
