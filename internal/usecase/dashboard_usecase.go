package usecase

import (
	"context"
	"loki/internal/domain/entities"
	"loki/internal/usecase/interfaces"
)

// CommissionTotals aggregates commissions by settlement state. Amounts in FCFA.
type CommissionTotals struct {
	PendingCount  int   `json:"pending_count"`
	PendingAmount int64 `json:"pending_amount"`
	PaidCount     int   `json:"paid_count"`
	PaidAmount    int64 `json:"paid_amount"`
}

// DashboardStats is the back office overview of the funnel.
type DashboardStats struct {
	ContactsByStatus map[entities.ContactStatus]int `json:"contacts_by_status"`
	BookingsByStatus map[entities.BookingStatus]int `json:"bookings_by_status"`
	Commissions      CommissionTotals              `json:"commissions"`
	TotalContacts    int                           `json:"total_contacts"`
	ConversionRate   float64                       `json:"conversion_rate"`
}

type IDashboardUseCase interface {
	Stats(ctx context.Context) (DashboardStats, error)
}

type DashboardUseCase struct {
	contacts interfaces.IContactRepository
	bookings interfaces.IBookingRepository
	payments interfaces.IPaymentRepository
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(contacts interfaces.IContactRepository, bookings interfaces.IBookingRepository, payments interfaces.IPaymentRepository) *DashboardUseCase {
	return &DashboardUseCase{contacts: contacts, bookings: bookings, payments: payments}
}

func (u *DashboardUseCase) Stats(ctx context.Context) (DashboardStats, error) {
	stats := DashboardStats{
		ContactsByStatus: map[entities.ContactStatus]int{},
		BookingsByStatus: map[entities.BookingStatus]int{},
	}
	for _, s := range entities.ContactStatuses() {
		stats.ContactsByStatus[s] = 0
	}

	contacts, err := u.contacts.List(ctx, interfaces.ContactFilter{})
	if err != nil {
		return DashboardStats{}, err
	}
	for _, c := range contacts {
		stats.ContactsByStatus[c.Status]++
	}
	stats.TotalContacts = len(contacts)
	if stats.TotalContacts > 0 {
		stats.ConversionRate = float64(stats.ContactsByStatus[entities.ContactStatusRentalConfirmed]) / float64(stats.TotalContacts)
	}

	bookings, err := u.bookings.List(ctx, interfaces.BookingFilter{})
	if err != nil {
		return DashboardStats{}, err
	}
	for _, b := range bookings {
		stats.BookingsByStatus[b.Status]++
	}

	payments, err := u.payments.List(ctx, interfaces.PaymentFilter{})
	if err != nil {
		return DashboardStats{}, err
	}
	for _, p := range payments {
		switch p.Status {
		case entities.PaymentStatusPending:
			stats.Commissions.PendingCount++
			stats.Commissions.PendingAmount += p.Amount
		case entities.PaymentStatusPaid:
			stats.Commissions.PaidCount++
			stats.Commissions.PaidAmount += p.Amount
		}
	}
	return stats, nil
}
