package kafka

import (
	"context"
	"encoding/json"
	"log/slog"

	"adventurestay/internal/app/dto"
	"adventurestay/internal/app/policies"
)

// BookingEvents publishes booking_created records to a single topic, keyed by
// package code so consumers see a package's bookings in order.
type BookingEvents struct {
	Producer *Producer
	Topic    string
	Logger   *slog.Logger
}

func (e *BookingEvents) PublishBookingCreated(ctx context.Context, record dto.BookingRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return err
	}
	headers := map[string]string{"event_type": record.EventType}
	if err := e.Producer.Publish(ctx, e.Topic, record.PackageCode, payload, headers); err != nil {
		return err
	}
	if e.Logger != nil {
		e.Logger.Info("booking event published", "topic", e.Topic, "booking_id", record.BookingID)
	}
	return nil
}

var _ policies.Publisher = (*BookingEvents)(nil)
