package notify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"gopkg.in/gomail.v2"

	"adventurestay/internal/app/dto"
	"adventurestay/internal/app/policies"
)

// EmailNotifier sends booking confirmations to guests over SMTP.
type EmailNotifier struct {
	Host   string
	Port   int
	User   string
	Pass   string
	From   string
	Logger *slog.Logger

	// dial is swappable in tests.
	dial func(m *gomail.Message) error
}

func NewEmailNotifier(host string, port int, user, pass, from string, logger *slog.Logger) *EmailNotifier {
	n := &EmailNotifier{
		Host:   host,
		Port:   port,
		User:   user,
		Pass:   pass,
		From:   from,
		Logger: logger,
	}
	n.dial = func(m *gomail.Message) error {
		d := gomail.NewDialer(n.Host, n.Port, n.User, n.Pass)
		return d.DialAndSend(m)
	}
	return n
}

func (n *EmailNotifier) SendConfirmation(ctx context.Context, record dto.BookingRecord) error {
	if record.GuestEmail == "" {
		return fmt.Errorf("send confirmation for booking %s: guest email is empty", record.BookingID)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.From)
	m.SetHeader("To", record.GuestEmail)
	m.SetHeader("Subject", "AdventureStay Booking Confirmed")
	m.SetBody("text/plain", confirmationBody(record))

	if err := n.dial(m); err != nil {
		return fmt.Errorf("send confirmation for booking %s: %w", record.BookingID, err)
	}
	if n.Logger != nil {
		n.Logger.Info("confirmation email sent", "booking_id", record.BookingID, "to", record.GuestEmail)
	}
	return nil
}

func confirmationBody(record dto.BookingRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", record.GuestName)
	b.WriteString("Your adventure is booked!\n\n")
	fmt.Fprintf(&b, "Booking reference: %s\n", record.BookingID)
	fmt.Fprintf(&b, "Package: %s (%s)\n", record.PackageName, record.PackageCode)
	fmt.Fprintf(&b, "Dates: %s to %s (%d nights)\n", record.StartDate, record.EndDate, record.Nights)
	fmt.Fprintf(&b, "Guests: %d\n", record.NumGuests)
	fmt.Fprintf(&b, "Total: %s %s\n\n", record.TotalPrice, record.Currency)
	fmt.Fprintf(&b, "%s\n\n", record.Itinerary)
	b.WriteString("See you on the trail,\nThe AdventureStay Team\n")
	return b.String()
}

var _ policies.Notifier = (*EmailNotifier)(nil)
