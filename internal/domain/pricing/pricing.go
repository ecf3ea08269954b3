package pricing

import (
	"errors"
	"fmt"

	"adventurestay/internal/domain/booking"
	"adventurestay/internal/domain/packages"
	"adventurestay/internal/domain/shared/money"
)

// ErrRateNotConfigured marks a data integrity fault: a package reached the
// quote step without any rate set. This is a server-side problem, not a
// user-facing validation failure.
var ErrRateNotConfigured = errors.New("pricing: package has no rate configured")

// Quote computes the total for a validated request. Nightly-rated packages
// charge rate * nights; per-person packages charge rate * guests with nights
// not a factor. No discounts or taxes apply.
func Quote(req booking.Request, pkg *packages.Package) (money.Money, error) {
	switch {
	case pkg.PricePerNight != nil:
		return pkg.PricePerNight.Mul(int64(req.Nights)), nil
	case pkg.PricePerPerson != nil:
		return pkg.PricePerPerson.Mul(int64(req.Guests)), nil
	default:
		return money.Money{}, fmt.Errorf("%w: %s", ErrRateNotConfigured, pkg.Code)
	}
}
