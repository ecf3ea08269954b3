package packages

import (
	"context"
	"errors"
	"strings"
	"time"

	"adventurestay/internal/domain/shared/money"
)

var (
	ErrCodeRequired    = errors.New("packages: package code is required")
	ErrNameRequired    = errors.New("packages: name is required")
	ErrInvalidCategory = errors.New("packages: unknown category")
	ErrGuestsLimit     = errors.New("packages: max guests must be at least 1")
	ErrNightsRange     = errors.New("packages: min nights must be >= 1 and <= max nights")
	ErrRateRequired    = errors.New("packages: a nightly or per-person rate must be set")
	ErrAmbiguousRate   = errors.New("packages: nightly and per-person rates are mutually exclusive")
	ErrPackageNotFound = errors.New("packages: not found")
)

type Code string

// Package is the bookable offering with its pricing and capacity constraints.
// Exactly one of PricePerNight and PricePerPerson is set.
type Package struct {
	Code           Code
	Category       Category
	Name           string
	Description    string
	Location       string
	PricePerNight  *money.Money
	PricePerPerson *money.Money
	MaxGuests      int
	MinNights      int
	MaxNights      int
	IncludesMeals  bool
	IncludesGuide  bool
	ImageURL       string
	ThumbnailURL   string
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Version        int64
}

type ListParams struct {
	Category   Category
	OnlyActive bool
	Limit      int
}

type Repository interface {
	ByCode(ctx context.Context, code Code) (*Package, error)
	Save(ctx context.Context, pkg *Package) error
	List(ctx context.Context, params ListParams) ([]*Package, error)
}

type CreateParams struct {
	Code           Code
	Category       Category
	Name           string
	Description    string
	Location       string
	PricePerNight  *money.Money
	PricePerPerson *money.Money
	MaxGuests      int
	MinNights      int
	MaxNights      int
	IncludesMeals  bool
	IncludesGuide  bool
	ImageURL       string
	Active         bool
	Now            time.Time
}

func NewPackage(params CreateParams) (*Package, error) {
	if strings.TrimSpace(string(params.Code)) == "" {
		return nil, ErrCodeRequired
	}
	if strings.TrimSpace(params.Name) == "" {
		return nil, ErrNameRequired
	}
	if !params.Category.Valid() {
		return nil, ErrInvalidCategory
	}
	if params.MaxGuests < 1 {
		return nil, ErrGuestsLimit
	}
	if params.MinNights < 1 || params.MinNights > params.MaxNights {
		return nil, ErrNightsRange
	}
	if params.PricePerNight == nil && params.PricePerPerson == nil {
		return nil, ErrRateRequired
	}
	if params.PricePerNight != nil && params.PricePerPerson != nil {
		return nil, ErrAmbiguousRate
	}
	now := params.Now.UTC()
	return &Package{
		Code:           params.Code,
		Category:       params.Category,
		Name:           strings.TrimSpace(params.Name),
		Description:    params.Description,
		Location:       params.Location,
		PricePerNight:  params.PricePerNight,
		PricePerPerson: params.PricePerPerson,
		MaxGuests:      params.MaxGuests,
		MinNights:      params.MinNights,
		MaxNights:      params.MaxNights,
		IncludesMeals:  params.IncludesMeals,
		IncludesGuide:  params.IncludesGuide,
		ImageURL:       params.ImageURL,
		Active:         params.Active,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// SetImages records freshly uploaded URLs after an image refresh run.
func (p *Package) SetImages(imageURL, thumbnailURL string, now time.Time) {
	p.ImageURL = imageURL
	p.ThumbnailURL = thumbnailURL
	p.UpdatedAt = now.UTC()
}

// Rate returns the configured rate together with its unit label
// ("night" or "person"). ok is false when no rate is set.
func (p *Package) Rate() (rate money.Money, unit string, ok bool) {
	switch {
	case p.PricePerNight != nil:
		return *p.PricePerNight, "night", true
	case p.PricePerPerson != nil:
		return *p.PricePerPerson, "person", true
	default:
		return money.Money{}, "", false
	}
}
