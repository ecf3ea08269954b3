package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adventurestay/internal/domain/packages"
	"adventurestay/internal/domain/shared/daterange"
	"adventurestay/internal/domain/shared/money"
)

func existingBooking(t *testing.T, code packages.Code, start, end time.Time, status Status) *Booking {
	t.Helper()
	dr, err := daterange.New(start, end)
	require.NoError(t, err)
	return &Booking{
		ID:          BookingID("existing-" + start.Format(time.DateOnly)),
		PackageCode: code,
		GuestName:   "Aditi Rao",
		GuestEmail:  "aditi@example.com",
		Range:       dr,
		Guests:      2,
		Nights:      dr.Nights(),
		Total:       money.Must(24000, money.DefaultCurrency),
		Status:      status,
		CreatedAt:   start,
	}
}

func TestCheckAvailabilityNoBookings(t *testing.T) {
	pkg := lodgePackage(t)
	req, err := NewRequest(pkg, day(2025, 6, 1), day(2025, 6, 3), 2)
	require.NoError(t, err)

	assert.NoError(t, CheckAvailability(req, pkg, nil))
}

func TestCheckAvailabilityOverlap(t *testing.T) {
	pkg := lodgePackage(t)
	existing := []*Booking{
		existingBooking(t, pkg.Code, day(2025, 6, 1), day(2025, 6, 3), StatusConfirmed),
	}

	req, err := NewRequest(pkg, day(2025, 6, 2), day(2025, 6, 4), 2)
	require.NoError(t, err)

	err = CheckAvailability(req, pkg, existing)
	require.ErrorIs(t, err, ErrPackageNotAvailable)
	assert.Contains(t, err.Error(), "2025-06-01 to 2025-06-03")
}

func TestCheckAvailabilityAdjacentStaysDoNotConflict(t *testing.T) {
	pkg := lodgePackage(t)
	existing := []*Booking{
		existingBooking(t, pkg.Code, day(2025, 6, 1), day(2025, 6, 3), StatusConfirmed),
	}

	// check-in on the previous stay's checkout day is fine
	req, err := NewRequest(pkg, day(2025, 6, 3), day(2025, 6, 5), 2)
	require.NoError(t, err)
	assert.NoError(t, CheckAvailability(req, pkg, existing))
}

func TestCheckAvailabilityIgnoresCancelled(t *testing.T) {
	pkg := lodgePackage(t)
	existing := []*Booking{
		existingBooking(t, pkg.Code, day(2025, 6, 1), day(2025, 6, 3), StatusCancelled),
	}

	req, err := NewRequest(pkg, day(2025, 6, 2), day(2025, 6, 4), 2)
	require.NoError(t, err)
	assert.NoError(t, CheckAvailability(req, pkg, existing))
}

func TestCheckAvailabilityIgnoresOtherPackages(t *testing.T) {
	pkg := lodgePackage(t)
	existing := []*Booking{
		existingBooking(t, "OTHER", day(2025, 6, 1), day(2025, 6, 3), StatusConfirmed),
	}

	req, err := NewRequest(pkg, day(2025, 6, 2), day(2025, 6, 4), 2)
	require.NoError(t, err)
	assert.NoError(t, CheckAvailability(req, pkg, existing))
}

func TestCheckAvailabilityInactivePackage(t *testing.T) {
	pkg := lodgePackage(t)
	req, err := NewRequest(pkg, day(2025, 6, 1), day(2025, 6, 3), 2)
	require.NoError(t, err)

	pkg.Active = false
	assert.ErrorIs(t, CheckAvailability(req, pkg, nil), ErrPackageNotAvailable)
}

func TestCancelFreesRange(t *testing.T) {
	pkg := lodgePackage(t)
	b := existingBooking(t, pkg.Code, day(2025, 6, 1), day(2025, 6, 3), StatusConfirmed)

	require.NoError(t, b.Cancel())
	assert.Equal(t, StatusCancelled, b.Status)
	assert.ErrorIs(t, b.Cancel(), ErrInvalidState)

	req, err := NewRequest(pkg, day(2025, 6, 2), day(2025, 6, 4), 2)
	require.NoError(t, err)
	assert.NoError(t, CheckAvailability(req, pkg, []*Booking{b}))
}
