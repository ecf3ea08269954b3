package booking

import (
	"context"
	"errors"

	"adventurestay/internal/app/dto"
	domainbooking "adventurestay/internal/domain/booking"
	domainpackages "adventurestay/internal/domain/packages"
)

// GetHandler loads a booking together with its package snapshot for the
// confirmation screen.
type GetHandler struct {
	Packages domainpackages.Repository
	Bookings domainbooking.Repository
}

func (h *GetHandler) Handle(ctx context.Context, id string) (*dto.BookingView, error) {
	b, err := h.Bookings.ByID(ctx, domainbooking.BookingID(id))
	if err != nil {
		return nil, err
	}
	pkg, err := h.Packages.ByCode(ctx, b.PackageCode)
	if err != nil {
		// the booking still renders without package metadata
		if !errors.Is(err, domainpackages.ErrPackageNotFound) {
			return nil, err
		}
		pkg = nil
	}
	view := dto.MapBookingView(b, pkg)
	return &view, nil
}
