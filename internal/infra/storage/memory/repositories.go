package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	domainbooking "adventurestay/internal/domain/booking"
	domainpackages "adventurestay/internal/domain/packages"
)

// PackageRepository is an in-memory implementation used in dev mode and tests.
type PackageRepository struct {
	mu    sync.RWMutex
	items map[domainpackages.Code]*domainpackages.Package
}

func NewPackageRepository() *PackageRepository {
	return &PackageRepository{
		items: make(map[domainpackages.Code]*domainpackages.Package),
	}
}

// ByCode returns a package or packages.ErrPackageNotFound.
func (r *PackageRepository) ByCode(ctx context.Context, code domainpackages.Code) (*domainpackages.Package, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pkg, ok := r.items[code]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domainpackages.ErrPackageNotFound, code)
	}
	return pkg, nil
}

// Save stores/updates a package entry.
func (r *PackageRepository) Save(ctx context.Context, pkg *domainpackages.Package) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[pkg.Code] = pkg
	return nil
}

// List returns packages matching the filter, sorted by name.
func (r *PackageRepository) List(ctx context.Context, params domainpackages.ListParams) ([]*domainpackages.Package, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]*domainpackages.Package, 0, len(r.items))
	for _, pkg := range r.items {
		if params.OnlyActive && !pkg.Active {
			continue
		}
		if params.Category != "" && pkg.Category != params.Category {
			continue
		}
		matches = append(matches, pkg)
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Name < matches[j].Name
	})
	if params.Limit > 0 && len(matches) > params.Limit {
		matches = matches[:params.Limit]
	}
	return matches, nil
}

// BookingRepository keeps bookings in memory, indexed per package.
type BookingRepository struct {
	mu        sync.RWMutex
	items     map[domainbooking.BookingID]*domainbooking.Booking
	byPackage map[domainpackages.Code][]domainbooking.BookingID
}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{
		items:     make(map[domainbooking.BookingID]*domainbooking.Booking),
		byPackage: make(map[domainpackages.Code][]domainbooking.BookingID),
	}
}

func (r *BookingRepository) ByID(ctx context.Context, id domainbooking.BookingID) (*domainbooking.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.items[id]
	if !ok {
		return nil, domainbooking.ErrBookingNotFound
	}
	return b, nil
}

func (r *BookingRepository) Save(ctx context.Context, b *domainbooking.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.items[b.ID]; !exists {
		r.byPackage[b.PackageCode] = append(r.byPackage[b.PackageCode], b.ID)
	}
	r.items[b.ID] = b
	return nil
}

func (r *BookingRepository) ListActiveForPackage(ctx context.Context, code domainpackages.Code) ([]*domainbooking.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := r.byPackage[code]
	out := make([]*domainbooking.Booking, 0, len(ids))
	for _, id := range ids {
		b := r.items[id]
		if b == nil || b.Status == domainbooking.StatusCancelled {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

var _ domainpackages.Repository = (*PackageRepository)(nil)
var _ domainbooking.Repository = (*BookingRepository)(nil)
