package policies

import (
	"context"

	"adventurestay/internal/app/dto"
)

// Publisher emits the booking_created event to the message broker.
type Publisher interface {
	PublishBookingCreated(ctx context.Context, record dto.BookingRecord) error
}

// Notifier delivers a guest-facing booking confirmation.
type Notifier interface {
	SendConfirmation(ctx context.Context, record dto.BookingRecord) error
}

// Archiver stores a copy of the finalized booking record in object storage.
type Archiver interface {
	ArchiveBooking(ctx context.Context, record dto.BookingRecord) error
}

// ImageURLs is a package's gallery and thumbnail location.
type ImageURLs struct {
	ImageURL     string `json:"image_url"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// ImageURLCache is a read-through cache in front of the package store for
// image URL lookups.
type ImageURLCache interface {
	GetImageURLs(ctx context.Context, code string) (ImageURLs, bool)
	SetImageURLs(ctx context.Context, code string, urls ImageURLs) error
}
