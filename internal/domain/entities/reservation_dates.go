package entities

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// DateLayout is the ISO calendar date format used for reservation dates.
const DateLayout = "2006-01-02"

// MaxReservationDates bounds how many dates a single booking can carry.
const MaxReservationDates = 31

var (
	ErrInvalidReservationDate     = errors.New("invalid reservation date")
	ErrReservationDateOutOfWindow = errors.New("reservation date outside booking window")
	ErrTooManyReservationDates    = errors.New("too many reservation dates")
)

// BookingWindow is the inclusive range of dates a tenant may pick:
// from tomorrow up to six months from today.
type BookingWindow struct {
	First string `json:"first"`
	Last  string `json:"last"`
}

// NewBookingWindow computes the window relative to today. Only the calendar date
// of today is used.
func NewBookingWindow(today time.Time) BookingWindow {
	d := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return BookingWindow{
		First: d.AddDate(0, 0, 1).Format(DateLayout),
		Last:  d.AddDate(0, 6, 0).Format(DateLayout),
	}
}

// Contains reports whether date (ISO layout) falls inside the window.
// ISO dates compare correctly as strings.
func (w BookingWindow) Contains(date string) bool {
	return date >= w.First && date <= w.Last
}

// ReservationDates accumulates the distinct dates selected for one booking.
type ReservationDates struct {
	window BookingWindow
	dates  map[string]struct{}
}

func NewReservationDates(window BookingWindow) *ReservationDates {
	return &ReservationDates{window: window, dates: map[string]struct{}{}}
}

// Add inserts date into the set. It returns false without error when the date is
// already selected.
func (r *ReservationDates) Add(date string) (bool, error) {
	parsed, err := time.Parse(DateLayout, date)
	if err != nil {
		return false, fmt.Errorf("%w: %q", ErrInvalidReservationDate, date)
	}
	date = parsed.Format(DateLayout)

	if !r.window.Contains(date) {
		return false, fmt.Errorf("%w: %s not in [%s, %s]", ErrReservationDateOutOfWindow, date, r.window.First, r.window.Last)
	}
	if _, ok := r.dates[date]; ok {
		return false, nil
	}
	if len(r.dates) >= MaxReservationDates {
		return false, ErrTooManyReservationDates
	}
	r.dates[date] = struct{}{}
	return true, nil
}

func (r *ReservationDates) Len() int {
	return len(r.dates)
}

// Sorted returns the selected dates in ascending order.
func (r *ReservationDates) Sorted() []string {
	out := make([]string, 0, len(r.dates))
	for d := range r.dates {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// Range returns the earliest and latest selected dates. ok is false when the set
// is empty.
func (r *ReservationDates) Range() (start, end string, ok bool) {
	sorted := r.Sorted()
	if len(sorted) == 0 {
		return "", "", false
	}
	return sorted[0], sorted[len(sorted)-1], true
}
