package booking

import (
	"fmt"
	"strings"

	"adventurestay/internal/domain/packages"
)

// Itinerary builds the one-line stay summary shown on confirmations,
// e.g. "3 nights at Himalayan Ridge Trek, Manali for 2 guests (meals, guide included)".
func Itinerary(b *Booking, pkg *packages.Package) string {
	nightsWord := "nights"
	if b.Nights == 1 {
		nightsWord = "night"
	}
	guestsWord := "guests"
	if b.Guests == 1 {
		guestsWord = "guest"
	}
	summary := fmt.Sprintf("%d %s at %s, %s for %d %s",
		b.Nights, nightsWord, pkg.Name, pkg.Location, b.Guests, guestsWord)

	var extras []string
	if pkg.IncludesMeals {
		extras = append(extras, "meals")
	}
	if pkg.IncludesGuide {
		extras = append(extras, "guide")
	}
	if len(extras) > 0 {
		summary += fmt.Sprintf(" (%s included)", strings.Join(extras, ", "))
	}
	return summary
}
