package booking

import (
	"fmt"
	"time"

	"adventurestay/internal/domain/packages"
	"adventurestay/internal/domain/shared/daterange"
)

// Request is a validated, normalized intent to book a package. It is never
// persisted; it becomes a Booking once availability and pricing succeed.
type Request struct {
	PackageCode packages.Code
	Range       daterange.DateRange
	Guests      int
	Nights      int
}

// NewRequest validates raw dates and guest count against the package
// constraints. Date checks run before guest checks so that a caller with
// both wrong always sees the date error first.
func NewRequest(pkg *packages.Package, start, end time.Time, guests int) (Request, error) {
	dr, err := daterange.New(start, end)
	if err != nil {
		return Request{}, fmt.Errorf("%w: end date must be after start date", ErrInvalidDateRange)
	}
	nights := dr.Nights()
	if nights < pkg.MinNights {
		return Request{}, fmt.Errorf("%w: %d night(s) is below the %d night minimum for %s",
			ErrInvalidDateRange, nights, pkg.MinNights, pkg.Code)
	}
	if nights > pkg.MaxNights {
		return Request{}, fmt.Errorf("%w: %d night(s) exceeds the %d night maximum for %s",
			ErrInvalidDateRange, nights, pkg.MaxNights, pkg.Code)
	}
	if guests < 1 {
		return Request{}, fmt.Errorf("%w: at least one guest is required", ErrInvalidGuestCount)
	}
	if guests > pkg.MaxGuests {
		return Request{}, fmt.Errorf("%w: %d guests exceeds the limit of %d for %s",
			ErrInvalidGuestCount, guests, pkg.MaxGuests, pkg.Code)
	}
	return Request{
		PackageCode: pkg.Code,
		Range:       dr,
		Guests:      guests,
		Nights:      nights,
	}, nil
}
