package s3

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"adventurestay/internal/app/dto"
	"adventurestay/internal/app/policies"
)

// BookingArchive keeps a durable JSON copy of every confirmed booking
// in object storage, one object per booking.
type BookingArchive struct {
	Uploader Uploader
	Logger   *slog.Logger
}

func NewBookingArchive(uploader Uploader, logger *slog.Logger) *BookingArchive {
	return &BookingArchive{Uploader: uploader, Logger: logger}
}

func (a *BookingArchive) ArchiveBooking(ctx context.Context, record dto.BookingRecord) error {
	payload, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("archive booking %s: marshal: %w", record.BookingID, err)
	}

	key := fmt.Sprintf("bookings/%s.json", record.BookingID)
	if _, err := a.Uploader.Upload(ctx, key, bytes.NewReader(payload), "application/json"); err != nil {
		return fmt.Errorf("archive booking %s: %w", record.BookingID, err)
	}

	if a.Logger != nil {
		a.Logger.Info("booking archived", "booking_id", record.BookingID, "key", key)
	}
	return nil
}

var _ policies.Archiver = (*BookingArchive)(nil)
