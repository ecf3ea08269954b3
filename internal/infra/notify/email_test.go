package notify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"adventurestay/internal/app/dto"
)

func sampleRecord() dto.BookingRecord {
	return dto.BookingRecord{
		EventType:   "booking_created",
		BookingID:   "b-1",
		PackageCode: "TREK-001",
		PackageName: "Himalayan Ridge Trek",
		GuestName:   "Asha",
		GuestEmail:  "asha@example.com",
		StartDate:   "2025-06-01",
		EndDate:     "2025-06-03",
		Nights:      2,
		NumGuests:   2,
		TotalPrice:  "22000.00",
		Currency:    "INR",
		Itinerary:   "2 nights at Himalayan Ridge Trek for 2 guests",
	}
}

func TestEmailNotifier_SendConfirmation(t *testing.T) {
	n := NewEmailNotifier("smtp.example.com", 587, "user", "pass", "bookings@adventurestay.in", nil)

	var sent *gomail.Message
	n.dial = func(m *gomail.Message) error {
		sent = m
		return nil
	}

	err := n.SendConfirmation(context.Background(), sampleRecord())
	require.NoError(t, err)
	require.NotNil(t, sent)

	assert.Equal(t, []string{"asha@example.com"}, sent.GetHeader("To"))
	assert.Equal(t, []string{"AdventureStay Booking Confirmed"}, sent.GetHeader("Subject"))
}

func TestEmailNotifier_RejectsEmptyRecipient(t *testing.T) {
	n := NewEmailNotifier("smtp.example.com", 587, "user", "pass", "bookings@adventurestay.in", nil)
	n.dial = func(m *gomail.Message) error {
		t.Fatal("dial should not be reached")
		return nil
	}

	record := sampleRecord()
	record.GuestEmail = ""

	err := n.SendConfirmation(context.Background(), record)
	assert.Error(t, err)
}

func TestConfirmationBody(t *testing.T) {
	body := confirmationBody(sampleRecord())

	assert.Contains(t, body, "Hi Asha,")
	assert.Contains(t, body, "Booking reference: b-1")
	assert.Contains(t, body, "Himalayan Ridge Trek (TREK-001)")
	assert.Contains(t, body, "2025-06-01 to 2025-06-03 (2 nights)")
	assert.Contains(t, body, "Total: 22000.00 INR")
}
