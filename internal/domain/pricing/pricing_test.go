package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adventurestay/internal/domain/booking"
	"adventurestay/internal/domain/packages"
	"adventurestay/internal/domain/shared/money"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newPackage(t *testing.T, perNight, perPerson *money.Money, maxGuests int) *packages.Package {
	t.Helper()
	pkg, err := packages.NewPackage(packages.CreateParams{
		Code:           "PKG-1",
		Category:       packages.CategoryLodging,
		Name:           "Test Package",
		Location:       "Coorg",
		PricePerNight:  perNight,
		PricePerPerson: perPerson,
		MaxGuests:      maxGuests,
		MinNights:      1,
		MaxNights:      10,
		Active:         true,
		Now:            day(2025, 1, 1),
	})
	require.NoError(t, err)
	return pkg
}

func rate(major int64) *money.Money {
	m, err := money.FromMajor(major, money.DefaultCurrency)
	if err != nil {
		panic(err)
	}
	return &m
}

func TestQuotePerNight(t *testing.T) {
	// 120/night, 2 nights, 2 guests -> 240.00; guests are not a factor
	pkg := newPackage(t, rate(120), nil, 4)
	req, err := booking.NewRequest(pkg, day(2025, 6, 1), day(2025, 6, 3), 2)
	require.NoError(t, err)

	total, err := Quote(req, pkg)
	require.NoError(t, err)
	assert.Equal(t, "240.00", total.String())
}

func TestQuotePerPerson(t *testing.T) {
	// 1400/person, 8 guests, 3 nights -> 11200.00; nights are not a factor
	pkg := newPackage(t, nil, rate(1400), 12)
	req, err := booking.NewRequest(pkg, day(2025, 6, 1), day(2025, 6, 4), 8)
	require.NoError(t, err)

	total, err := Quote(req, pkg)
	require.NoError(t, err)
	assert.Equal(t, "11200.00", total.String())
}

func TestQuoteNoRateConfigured(t *testing.T) {
	pkg := newPackage(t, rate(120), nil, 4)
	req, err := booking.NewRequest(pkg, day(2025, 6, 1), day(2025, 6, 3), 2)
	require.NoError(t, err)

	// simulate bad upstream data slipping past package construction
	pkg.PricePerNight = nil
	_, err = Quote(req, pkg)
	assert.ErrorIs(t, err, ErrRateNotConfigured)
}
