package dto

import (
	"time"

	domainbooking "adventurestay/internal/domain/booking"
	"adventurestay/internal/domain/packages"
)

// BookingRecord is the flat, typed payload handed to the notification and
// archive sinks once a booking is finalized. Dates are ISO-8601 day strings
// and the total is a two-decimal string so no consumer ever sees a float.
type BookingRecord struct {
	EventType   string `json:"event_type"`
	BookingID   string `json:"booking_id"`
	PackageCode string `json:"package_code"`
	PackageName string `json:"package_name"`
	Category    string `json:"category"`
	Location    string `json:"location"`
	GuestName   string `json:"guest_name"`
	GuestEmail  string `json:"guest_email"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Nights      int    `json:"nights"`
	NumGuests   int    `json:"num_guests"`
	TotalPrice  string `json:"total_price"`
	Currency    string `json:"currency"`
	Itinerary   string `json:"itinerary"`
	CreatedAt   string `json:"created_at"`
}

func NewBookingRecord(b *domainbooking.Booking, pkg *packages.Package) BookingRecord {
	return BookingRecord{
		EventType:   "booking_created",
		BookingID:   string(b.ID),
		PackageCode: string(b.PackageCode),
		PackageName: pkg.Name,
		Category:    string(pkg.Category),
		Location:    pkg.Location,
		GuestName:   b.GuestName,
		GuestEmail:  b.GuestEmail,
		StartDate:   b.Range.Start.Format(time.DateOnly),
		EndDate:     b.Range.End.Format(time.DateOnly),
		Nights:      b.Nights,
		NumGuests:   b.Guests,
		TotalPrice:  b.Total.String(),
		Currency:    b.Total.Currency,
		Itinerary:   domainbooking.Itinerary(b, pkg),
		CreatedAt:   b.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// BookingView is the read model returned by the HTTP layer.
type BookingView struct {
	ID          string    `json:"id"`
	PackageCode string    `json:"package_code"`
	PackageName string    `json:"package_name"`
	Location    string    `json:"location"`
	GuestName   string    `json:"guest_name"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	Nights      int       `json:"nights"`
	Guests      int       `json:"guests"`
	Total       MoneyDTO  `json:"total"`
	Status      string    `json:"status"`
	Itinerary   string    `json:"itinerary"`
	CreatedAt   time.Time `json:"created_at"`
}

type MoneyDTO struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

func MapBookingView(b *domainbooking.Booking, pkg *packages.Package) BookingView {
	view := BookingView{
		ID:          string(b.ID),
		PackageCode: string(b.PackageCode),
		GuestName:   b.GuestName,
		StartDate:   b.Range.Start.Format(time.DateOnly),
		EndDate:     b.Range.End.Format(time.DateOnly),
		Nights:      b.Nights,
		Guests:      b.Guests,
		Total:       MoneyDTO{Amount: b.Total.String(), Currency: b.Total.Currency},
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt,
	}
	if pkg != nil {
		view.PackageName = pkg.Name
		view.Location = pkg.Location
		view.Itinerary = domainbooking.Itinerary(b, pkg)
	}
	return view
}
