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

func newBookingUseCaseWithMocks(t *testing.T) (*BookingUseCase, *mock_interfaces.MockIBookingRepository, *mock_interfaces.MockIHouseRepository, *mock_interfaces.MockIProfileRepository) {
	ctrl := gomock.NewController(t)
	bookings := mock_interfaces.NewMockIBookingRepository(ctrl)
	houses := mock_interfaces.NewMockIHouseRepository(ctrl)
	profiles := mock_interfaces.NewMockIProfileRepository(ctrl)
	uc := NewBookingUseCase(bookings, houses, profiles)
	uc.now = func() time.Time { return fixedNow }
	return uc, bookings, houses, profiles
}

func validBookingCommand(dates ...string) SubmitBookingCommand {
	return SubmitBookingCommand{
		HouseID:     "h-1",
		TenantID:    "t-1",
		TenantName:  "Awa Koné",
		TenantPhone: "0707123456",
		Dates:       dates,
		Message:     " Disponible le matin ",
	}
}

func TestBookingUseCase_SubmitBooking_Validations(t *testing.T) {
	t.Run("missing tenant id", func(t *testing.T) {
		uc := NewBookingUseCase(nil, nil, nil)
		cmd := validBookingCommand("2025-03-05")
		cmd.TenantID = " "
		_, err := uc.SubmitBooking(context.Background(), cmd)
		if !errors.Is(err, ErrInvalidTenantID) {
			t.Fatalf("expected ErrInvalidTenantID, got %v", err)
		}
	})

	t.Run("missing phone", func(t *testing.T) {
		uc := NewBookingUseCase(nil, nil, nil)
		cmd := validBookingCommand("2025-03-05")
		cmd.TenantPhone = "--"
		_, err := uc.SubmitBooking(context.Background(), cmd)
		if !errors.Is(err, ErrMissingTenantDetails) {
			t.Fatalf("expected ErrMissingTenantDetails, got %v", err)
		}
	})

	t.Run("no dates", func(t *testing.T) {
		uc := NewBookingUseCase(nil, nil, nil)
		_, err := uc.SubmitBooking(context.Background(), validBookingCommand())
		if !errors.Is(err, ErrNoReservationDates) {
			t.Fatalf("expected ErrNoReservationDates, got %v", err)
		}
	})

	t.Run("house not found", func(t *testing.T) {
		uc, _, houses, _ := newBookingUseCaseWithMocks(t)
		houses.EXPECT().GetByID(gomock.Any(), "h-1").Return(entities.House{}, nil)

		_, err := uc.SubmitBooking(context.Background(), validBookingCommand("2025-03-05"))
		if !errors.Is(err, ErrHouseNotFound) {
			t.Fatalf("expected ErrHouseNotFound, got %v", err)
		}
	})

	t.Run("date before tomorrow is rejected", func(t *testing.T) {
		uc, _, houses, _ := newBookingUseCaseWithMocks(t)
		houses.EXPECT().GetByID(gomock.Any(), "h-1").Return(entities.House{ID: "h-1", Type: entities.PropertyTypeHouse}, nil)

		_, err := uc.SubmitBooking(context.Background(), validBookingCommand("2025-03-05", "2025-03-01"))
		if !errors.Is(err, entities.ErrReservationDateOutOfWindow) {
			t.Fatalf("expected ErrReservationDateOutOfWindow, got %v", err)
		}
	})

	t.Run("date after six months is rejected", func(t *testing.T) {
		uc, _, houses, _ := newBookingUseCaseWithMocks(t)
		houses.EXPECT().GetByID(gomock.Any(), "h-1").Return(entities.House{ID: "h-1", Type: entities.PropertyTypeHouse}, nil)

		_, err := uc.SubmitBooking(context.Background(), validBookingCommand("2025-09-02"))
		if !errors.Is(err, entities.ErrReservationDateOutOfWindow) {
			t.Fatalf("expected ErrReservationDateOutOfWindow, got %v", err)
		}
	})

	t.Run("malformed date", func(t *testing.T) {
		uc, _, houses, _ := newBookingUseCaseWithMocks(t)
		houses.EXPECT().GetByID(gomock.Any(), "h-1").Return(entities.House{ID: "h-1", Type: entities.PropertyTypeHouse}, nil)

		_, err := uc.SubmitBooking(context.Background(), validBookingCommand("05/03/2025"))
		if !errors.Is(err, entities.ErrInvalidReservationDate) {
			t.Fatalf("expected ErrInvalidReservationDate, got %v", err)
		}
	})
}

func TestBookingUseCase_SubmitBooking(t *testing.T) {
	t.Run("house booking spans the selected dates", func(t *testing.T) {
		uc, bookings, houses, profiles := newBookingUseCaseWithMocks(t)
		houses.EXPECT().GetByID(gomock.Any(), "h-1").Return(entities.House{ID: "h-1", OwnerID: "o-1", Type: entities.PropertyTypeHouse, Price: 150000}, nil)
		bookings.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.BookingRequest) (entities.BookingRequest, error) {
				return b, nil
			},
		)
		profiles.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Profile{ID: "o-1", Phone: "+2250101010101"}, nil)

		res, err := uc.SubmitBooking(context.Background(), validBookingCommand("2025-03-10", "2025-03-05", "2025-03-20", "2025-03-10"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		b := res.Booking
		if b.StartDate != "2025-03-05" || b.MoveInDate != "2025-03-05" || b.EndDate != "2025-03-20" {
			t.Fatalf("unexpected range: start=%s move_in=%s end=%s", b.StartDate, b.MoveInDate, b.EndDate)
		}
		if len(b.ReservationDates) != 3 || b.ReservationDates[1] != "2025-03-10" {
			t.Fatalf("unexpected reservation dates: %v", b.ReservationDates)
		}
		if b.CommissionFee == nil || *b.CommissionFee != 5000 {
			t.Fatalf("expected fee 5000, got %v", b.CommissionFee)
		}
		if b.MonthlyRent != 150000 || b.Status != entities.BookingStatusPending {
			t.Fatalf("unexpected snapshot: rent=%v status=%s", b.MonthlyRent, b.Status)
		}
		if b.OwnerID != "o-1" || b.TenantID != "t-1" || b.Notes != "Disponible le matin" {
			t.Fatalf("unexpected booking: %+v", b)
		}
		if res.OwnerPhone != "+2250101010101" {
			t.Fatalf("expected owner phone, got %q", res.OwnerPhone)
		}
	})

	t.Run("residence fee is 2000", func(t *testing.T) {
		uc, bookings, houses, profiles := newBookingUseCaseWithMocks(t)
		houses.EXPECT().GetByID(gomock.Any(), "h-1").Return(entities.House{ID: "h-1", OwnerID: "o-1", Type: entities.PropertyTypeResidence, Price: 25000}, nil)
		bookings.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.BookingRequest) (entities.BookingRequest, error) { return b, nil },
		)
		profiles.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Profile{ID: "o-1"}, nil)

		res, err := uc.SubmitBooking(context.Background(), validBookingCommand("2025-03-02"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Booking.CommissionFee == nil || *res.Booking.CommissionFee != 2000 {
			t.Fatalf("expected fee 2000, got %v", res.Booking.CommissionFee)
		}
		if res.Booking.StartDate != res.Booking.EndDate {
			t.Fatalf("single date should give start == end, got %s..%s", res.Booking.StartDate, res.Booking.EndDate)
		}
	})

	for _, typ := range []entities.PropertyType{entities.PropertyTypeLand, entities.PropertyTypeShop} {
		t.Run(string(typ)+" has no fee", func(t *testing.T) {
			uc, bookings, houses, profiles := newBookingUseCaseWithMocks(t)
			houses.EXPECT().GetByID(gomock.Any(), "h-1").Return(entities.House{ID: "h-1", OwnerID: "o-1", Type: typ, Price: 80000}, nil)
			bookings.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, b entities.BookingRequest) (entities.BookingRequest, error) { return b, nil },
			)
			profiles.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Profile{ID: "o-1"}, nil)

			res, err := uc.SubmitBooking(context.Background(), validBookingCommand("2025-09-01"))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Booking.CommissionFee != nil {
				t.Fatalf("expected nil fee, got %d", *res.Booking.CommissionFee)
			}
		})
	}

	t.Run("persistence error surfaces and skips owner lookup", func(t *testing.T) {
		uc, bookings, houses, _ := newBookingUseCaseWithMocks(t)
		houses.EXPECT().GetByID(gomock.Any(), "h-1").Return(entities.House{ID: "h-1", OwnerID: "o-1", Type: entities.PropertyTypeHouse}, nil)
		bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.BookingRequest{}, errors.New("db"))

		_, err := uc.SubmitBooking(context.Background(), validBookingCommand("2025-03-05"))
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("owner lookup failure still returns the booking", func(t *testing.T) {
		uc, bookings, houses, profiles := newBookingUseCaseWithMocks(t)
		houses.EXPECT().GetByID(gomock.Any(), "h-1").Return(entities.House{ID: "h-1", OwnerID: "o-1", Type: entities.PropertyTypeHouse}, nil)
		bookings.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.BookingRequest) (entities.BookingRequest, error) { return b, nil },
		)
		profiles.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Profile{}, errors.New("timeout"))

		res, err := uc.SubmitBooking(context.Background(), validBookingCommand("2025-03-05"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Booking.ID == "" || res.OwnerPhone != "" {
			t.Fatalf("unexpected receipt: %+v", res)
		}
	})
}

func TestBookingUseCase_Quote(t *testing.T) {
	uc, _, houses, _ := newBookingUseCaseWithMocks(t)
	houses.EXPECT().GetByID(gomock.Any(), "h-1").Return(entities.House{ID: "h-1", Type: entities.PropertyTypeResidence, Price: 30000}, nil)

	q, err := uc.Quote(context.Background(), "h-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Window.First != "2025-03-02" || q.Window.Last != "2025-09-01" {
		t.Fatalf("unexpected window: %+v", q.Window)
	}
	if q.CommissionFee == nil || *q.CommissionFee != 2000 || q.MonthlyRent != 30000 {
		t.Fatalf("unexpected quote: %+v", q)
	}
}

func TestBookingUseCase_GetByID(t *testing.T) {
	booking := entities.BookingRequest{ID: "b-1", TenantID: "t-1", OwnerID: "o-1"}

	t.Run("invalid id", func(t *testing.T) {
		uc := NewBookingUseCase(nil, nil, nil)
		_, err := uc.GetByID(context.Background(), "", Viewer{UserID: "t-1"})
		if !errors.Is(err, ErrInvalidBookingID) {
			t.Fatalf("expected ErrInvalidBookingID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, bookings, _, _ := newBookingUseCaseWithMocks(t)
		bookings.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.BookingRequest{}, nil)

		_, err := uc.GetByID(context.Background(), "b-1", Viewer{UserID: "t-1"})
		if !errors.Is(err, ErrBookingNotFound) {
			t.Fatalf("expected ErrBookingNotFound, got %v", err)
		}
	})

	cases := []struct {
		name    string
		viewer  Viewer
		wantErr error
	}{
		{"tenant", Viewer{UserID: "t-1"}, nil},
		{"owner", Viewer{UserID: "o-1"}, nil},
		{"admin", Viewer{UserID: "a-1", IsAdmin: true}, nil},
		{"stranger", Viewer{UserID: "x-1"}, ErrBookingForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, bookings, _, _ := newBookingUseCaseWithMocks(t)
			bookings.EXPECT().GetByID(gomock.Any(), "b-1").Return(booking, nil)

			_, err := uc.GetByID(context.Background(), "b-1", tc.viewer)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestBookingUseCase_List(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := NewBookingUseCase(nil, nil, nil)
		_, err := uc.List(context.Background(), interfaces.BookingFilter{Status: "archived"})
		if !errors.Is(err, ErrInvalidBookingStatus) {
			t.Fatalf("expected ErrInvalidBookingStatus, got %v", err)
		}
	})

	t.Run("delegates the filter", func(t *testing.T) {
		uc, bookings, _, _ := newBookingUseCaseWithMocks(t)
		filter := interfaces.BookingFilter{OwnerID: "o-1"}
		bookings.EXPECT().List(gomock.Any(), filter).Return([]entities.BookingRequest{{ID: "b-1"}}, nil)

		res, err := uc.List(context.Background(), filter)
		if err != nil || len(res) != 1 {
			t.Fatalf("unexpected result: %v %v", res, err)
		}
	})
}
