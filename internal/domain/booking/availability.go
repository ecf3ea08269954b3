package booking

import (
	"fmt"

	"adventurestay/internal/domain/packages"
)

// CheckAvailability reports whether the requested range is free. existing is
// the full snapshot of bookings currently on record for the package; the
// caller is responsible for loading it and for serializing the check with the
// subsequent write (two concurrent requests reading the same snapshot would
// otherwise both pass).
func CheckAvailability(req Request, pkg *packages.Package, existing []*Booking) error {
	if !pkg.Active {
		return fmt.Errorf("%w: package %s is not accepting bookings", ErrPackageNotAvailable, pkg.Code)
	}
	for _, b := range existing {
		if b.Status == StatusCancelled {
			continue
		}
		if b.PackageCode != req.PackageCode {
			continue
		}
		if req.Range.Overlaps(b.Range) {
			return fmt.Errorf("%w: dates conflict with an existing stay %s", ErrPackageNotAvailable, b.Range)
		}
	}
	return nil
}
