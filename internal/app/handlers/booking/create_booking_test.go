package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adventurestay/internal/app/dto"
	domainbooking "adventurestay/internal/domain/booking"
	domainpackages "adventurestay/internal/domain/packages"
	"adventurestay/internal/domain/shared/money"
	"adventurestay/internal/infra/storage/memory"
)

type recordingSink struct {
	mu        sync.Mutex
	published []dto.BookingRecord
	notified  []dto.BookingRecord
	archived  []dto.BookingRecord
	fail      bool
}

func (s *recordingSink) PublishBookingCreated(_ context.Context, r dto.BookingRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errors.New("broker down")
	}
	s.published = append(s.published, r)
	return nil
}

func (s *recordingSink) SendConfirmation(_ context.Context, r dto.BookingRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errors.New("smtp down")
	}
	s.notified = append(s.notified, r)
	return nil
}

func (s *recordingSink) ArchiveBooking(_ context.Context, r dto.BookingRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.archived = append(s.archived, r)
	return nil
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedLodge(t *testing.T, repo *memory.PackageRepository) *domainpackages.Package {
	t.Helper()
	rate, err := money.FromMajor(120, money.DefaultCurrency)
	require.NoError(t, err)
	pkg, err := domainpackages.NewPackage(domainpackages.CreateParams{
		Code:          "LODGE",
		Category:      domainpackages.CategoryLodging,
		Name:          "Forest Lodge",
		Location:      "Wayanad",
		PricePerNight: &rate,
		MaxGuests:     4,
		MinNights:     1,
		MaxNights:     5,
		IncludesMeals: true,
		Active:        true,
		Now:           day(2025, 1, 1),
	})
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), pkg))
	return pkg
}

func newHandler(t *testing.T) (*CreateHandler, *memory.BookingRepository, *recordingSink) {
	t.Helper()
	pkgRepo := memory.NewPackageRepository()
	seedLodge(t, pkgRepo)
	bookingRepo := memory.NewBookingRepository()
	sink := &recordingSink{}
	h := &CreateHandler{
		Packages:  pkgRepo,
		Bookings:  bookingRepo,
		Publisher: sink,
		Notifier:  sink,
		Archiver:  sink,
		Now:       func() time.Time { return day(2025, 5, 1) },
	}
	return h, bookingRepo, sink
}

func command() CreateCommand {
	return CreateCommand{
		PackageCode: "LODGE",
		GuestName:   "Aditi Rao",
		GuestEmail:  "aditi@example.com",
		StartDate:   day(2025, 6, 1),
		EndDate:     day(2025, 6, 3),
		Guests:      2,
	}
}

func TestCreateBooking(t *testing.T) {
	h, repo, sink := newHandler(t)

	result, err := h.Handle(context.Background(), command())
	require.NoError(t, err)
	assert.Equal(t, "240.00", result.TotalPrice)
	assert.Equal(t, 2, result.Nights)
	assert.NotEmpty(t, result.BookingID)

	saved, err := repo.ByID(context.Background(), domainbooking.BookingID(result.BookingID))
	require.NoError(t, err)
	assert.Equal(t, domainbooking.StatusConfirmed, saved.Status)

	require.Len(t, sink.published, 1)
	record := sink.published[0]
	assert.Equal(t, "booking_created", record.EventType)
	assert.Equal(t, "2025-06-01", record.StartDate)
	assert.Equal(t, "2025-06-03", record.EndDate)
	assert.Equal(t, "240.00", record.TotalPrice)
	assert.Contains(t, record.Itinerary, "2 nights at Forest Lodge")
	assert.Contains(t, record.Itinerary, "meals included")
	require.Len(t, sink.notified, 1)
	require.Len(t, sink.archived, 1)
}

func TestCreateBookingConflict(t *testing.T) {
	h, _, _ := newHandler(t)
	ctx := context.Background()

	_, err := h.Handle(ctx, command())
	require.NoError(t, err)

	second := command()
	second.StartDate = day(2025, 6, 2)
	second.EndDate = day(2025, 6, 4)
	_, err = h.Handle(ctx, second)
	assert.ErrorIs(t, err, domainbooking.ErrPackageNotAvailable)
}

func TestCreateBookingAdjacentSucceeds(t *testing.T) {
	h, _, _ := newHandler(t)
	ctx := context.Background()

	_, err := h.Handle(ctx, command())
	require.NoError(t, err)

	next := command()
	next.StartDate = day(2025, 6, 3)
	next.EndDate = day(2025, 6, 5)
	_, err = h.Handle(ctx, next)
	assert.NoError(t, err)
}

func TestCreateBookingValidationPassthrough(t *testing.T) {
	h, _, _ := newHandler(t)
	ctx := context.Background()

	bad := command()
	bad.Guests = 5
	_, err := h.Handle(ctx, bad)
	assert.ErrorIs(t, err, domainbooking.ErrInvalidGuestCount)

	bad = command()
	bad.EndDate = bad.StartDate
	_, err = h.Handle(ctx, bad)
	assert.ErrorIs(t, err, domainbooking.ErrInvalidDateRange)

	bad = command()
	bad.PackageCode = "MISSING"
	_, err = h.Handle(ctx, bad)
	assert.ErrorIs(t, err, domainpackages.ErrPackageNotFound)
}

func TestCreateBookingSinkFailureDoesNotRollBack(t *testing.T) {
	h, repo, sink := newHandler(t)
	sink.fail = true

	result, err := h.Handle(context.Background(), command())
	require.NoError(t, err)

	saved, err := repo.ByID(context.Background(), domainbooking.BookingID(result.BookingID))
	require.NoError(t, err)
	assert.Equal(t, domainbooking.StatusConfirmed, saved.Status)
	// archive sink does not share the failure flag path for publish/notify
	assert.Len(t, sink.archived, 1)
}

func TestCreateBookingConcurrentSameRange(t *testing.T) {
	h, _, _ := newHandler(t)
	ctx := context.Background()

	const attempts = 8
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = h.Handle(ctx, command())
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, domainbooking.ErrPackageNotAvailable)
	}
	assert.Equal(t, 1, succeeded, "exactly one concurrent request may win the range")
}
