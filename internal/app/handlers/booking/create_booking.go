package booking

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"adventurestay/internal/app/dto"
	"adventurestay/internal/app/policies"
	domainbooking "adventurestay/internal/domain/booking"
	domainpackages "adventurestay/internal/domain/packages"
	"adventurestay/internal/domain/pricing"
)

type CreateCommand struct {
	PackageCode string
	GuestName   string
	GuestEmail  string
	StartDate   time.Time
	EndDate     time.Time
	Guests      int
}

type CreateResult struct {
	BookingID  string `json:"booking_id"`
	TotalPrice string `json:"total_price"`
	Currency   string `json:"currency"`
	Nights     int    `json:"nights"`
	Itinerary  string `json:"itinerary"`
}

// CreateHandler runs the booking flow: validate, check availability against
// the current booking snapshot, price, persist, then fan out to the sinks.
// The availability read and the save are serialized per package code so two
// concurrent requests for the same dates cannot both observe a free range.
type CreateHandler struct {
	Packages  domainpackages.Repository
	Bookings  domainbooking.Repository
	Publisher policies.Publisher
	Notifier  policies.Notifier
	Archiver  policies.Archiver
	Logger    *slog.Logger
	Now       func() time.Time

	mu    sync.Mutex
	locks map[domainpackages.Code]*sync.Mutex
}

func (h *CreateHandler) Handle(ctx context.Context, cmd CreateCommand) (*CreateResult, error) {
	pkg, err := h.Packages.ByCode(ctx, domainpackages.Code(cmd.PackageCode))
	if err != nil {
		return nil, err
	}

	req, err := domainbooking.NewRequest(pkg, cmd.StartDate, cmd.EndDate, cmd.Guests)
	if err != nil {
		return nil, err
	}

	lock := h.packageLock(pkg.Code)
	lock.Lock()

	existing, err := h.Bookings.ListActiveForPackage(ctx, pkg.Code)
	if err != nil {
		lock.Unlock()
		return nil, err
	}
	if err := domainbooking.CheckAvailability(req, pkg, existing); err != nil {
		lock.Unlock()
		return nil, err
	}
	total, err := pricing.Quote(req, pkg)
	if err != nil {
		lock.Unlock()
		return nil, err
	}

	b, err := domainbooking.New(domainbooking.CreateParams{
		ID:         domainbooking.BookingID(uuid.NewString()),
		Request:    req,
		GuestName:  cmd.GuestName,
		GuestEmail: cmd.GuestEmail,
		Total:      total,
		CreatedAt:  h.now(),
	})
	if err != nil {
		lock.Unlock()
		return nil, err
	}
	if err := h.Bookings.Save(ctx, b); err != nil {
		lock.Unlock()
		return nil, err
	}
	lock.Unlock()

	record := dto.NewBookingRecord(b, pkg)
	h.emit(ctx, record)

	return &CreateResult{
		BookingID:  string(b.ID),
		TotalPrice: b.Total.String(),
		Currency:   b.Total.Currency,
		Nights:     b.Nights,
		Itinerary:  record.Itinerary,
	}, nil
}

// emit delivers the finalized record to each configured sink. Failures are
// logged independently and never invalidate the already-saved booking.
func (h *CreateHandler) emit(ctx context.Context, record dto.BookingRecord) {
	log := h.logger()
	if h.Publisher != nil {
		if err := h.Publisher.PublishBookingCreated(ctx, record); err != nil {
			log.Error("booking event publish failed", "booking_id", record.BookingID, "error", err)
		}
	}
	if h.Notifier != nil {
		if err := h.Notifier.SendConfirmation(ctx, record); err != nil {
			log.Error("booking confirmation failed", "booking_id", record.BookingID, "error", err)
		}
	}
	if h.Archiver != nil {
		if err := h.Archiver.ArchiveBooking(ctx, record); err != nil {
			log.Error("booking archive failed", "booking_id", record.BookingID, "error", err)
		}
	}
}

func (h *CreateHandler) packageLock(code domainpackages.Code) *sync.Mutex {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.locks == nil {
		h.locks = make(map[domainpackages.Code]*sync.Mutex)
	}
	lock, ok := h.locks[code]
	if !ok {
		lock = &sync.Mutex{}
		h.locks[code] = lock
	}
	return lock
}

func (h *CreateHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now().UTC()
}

func (h *CreateHandler) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}
