package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"adventurestay/internal/domain/packages"
	"adventurestay/internal/domain/shared/daterange"
	"adventurestay/internal/domain/shared/money"
)

var (
	ErrInvalidDateRange    = errors.New("booking: invalid date range")
	ErrInvalidGuestCount   = errors.New("booking: invalid guest count")
	ErrPackageNotAvailable = errors.New("booking: package not available")
	ErrBookingNotFound     = errors.New("booking: not found")
	ErrInvalidState        = errors.New("booking: invalid state transition")
	ErrGuestDetailsMissing = errors.New("booking: guest name and email are required")
)

type BookingID string

type Status string

const (
	StatusConfirmed Status = "CONFIRMED"
	StatusPending   Status = "PENDING"
	StatusCancelled Status = "CANCELLED"
)

// Booking is the persisted record of a validated and priced request.
// Immutable once created except for status transitions.
type Booking struct {
	ID          BookingID
	PackageCode packages.Code
	GuestName   string
	GuestEmail  string
	Range       daterange.DateRange
	Guests      int
	Nights      int
	Total       money.Money
	Status      Status
	CreatedAt   time.Time
}

type Repository interface {
	ByID(ctx context.Context, id BookingID) (*Booking, error)
	Save(ctx context.Context, booking *Booking) error
	// ListActiveForPackage returns every non-cancelled booking for the
	// package. Availability checks depend on this set being complete.
	ListActiveForPackage(ctx context.Context, code packages.Code) ([]*Booking, error)
}

type CreateParams struct {
	ID         BookingID
	Request    Request
	GuestName  string
	GuestEmail string
	Total      money.Money
	CreatedAt  time.Time
}

// New assembles a confirmed Booking from a validated request and a quoted
// total. Structural validation of dates and guests happened in NewRequest.
func New(params CreateParams) (*Booking, error) {
	if strings.TrimSpace(string(params.ID)) == "" {
		return nil, errors.New("booking: id is required")
	}
	if strings.TrimSpace(params.GuestName) == "" || strings.TrimSpace(params.GuestEmail) == "" {
		return nil, ErrGuestDetailsMissing
	}
	return &Booking{
		ID:          params.ID,
		PackageCode: params.Request.PackageCode,
		GuestName:   strings.TrimSpace(params.GuestName),
		GuestEmail:  strings.TrimSpace(params.GuestEmail),
		Range:       params.Request.Range,
		Guests:      params.Request.Guests,
		Nights:      params.Request.Nights,
		Total:       params.Total,
		Status:      StatusConfirmed,
		CreatedAt:   params.CreatedAt.UTC(),
	}, nil
}

// Cancel frees the booked date range for future requests.
func (b *Booking) Cancel() error {
	if b.Status == StatusCancelled {
		return ErrInvalidState
	}
	b.Status = StatusCancelled
	return nil
}
