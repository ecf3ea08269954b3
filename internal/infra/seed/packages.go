package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"adventurestay/internal/domain/packages"
	"adventurestay/internal/domain/shared/money"
)

// Fixture is the on-disk shape of a seed package. Prices are whole rupees;
// exactly one of price_per_night and price_per_person must be set.
type Fixture struct {
	Code           string `json:"package_code"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Category       string `json:"category"`
	Location       string `json:"location"`
	PricePerNight  int64  `json:"price_per_night,omitempty"`
	PricePerPerson int64  `json:"price_per_person,omitempty"`
	MaxGuests      int    `json:"max_guests"`
	MinNights      int    `json:"min_nights"`
	MaxNights      int    `json:"max_nights"`
	IncludesMeals  bool   `json:"includes_meals"`
	IncludesGuide  bool   `json:"includes_guide"`
}

// Load returns fixtures from the given JSON file, or the built-in dataset
// when path is empty.
func Load(path string) ([]Fixture, error) {
	if path == "" {
		return builtinFixtures, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed: read fixtures: %w", err)
	}
	var fixtures []Fixture
	if err := json.Unmarshal(raw, &fixtures); err != nil {
		return nil, fmt.Errorf("seed: parse fixtures: %w", err)
	}
	return fixtures, nil
}

// Apply inserts the fixtures that are not already present. Existing codes
// are left untouched so manual edits survive restarts.
func Apply(ctx context.Context, repo packages.Repository, fixtures []Fixture, logger *slog.Logger) error {
	seeded := 0
	for _, f := range fixtures {
		code := packages.Code(f.Code)
		if _, err := repo.ByCode(ctx, code); err == nil {
			continue
		} else if !errors.Is(err, packages.ErrPackageNotFound) {
			return fmt.Errorf("seed: lookup %s: %w", f.Code, err)
		}

		pkg, err := fixturePackage(f)
		if err != nil {
			return fmt.Errorf("seed: fixture %s: %w", f.Code, err)
		}
		if err := repo.Save(ctx, pkg); err != nil {
			return fmt.Errorf("seed: save %s: %w", f.Code, err)
		}
		seeded++
	}
	logger.Info("package fixtures applied", "total", len(fixtures), "seeded", seeded)
	return nil
}

func fixturePackage(f Fixture) (*packages.Package, error) {
	params := packages.CreateParams{
		Code:          packages.Code(f.Code),
		Category:      packages.Category(f.Category),
		Name:          f.Name,
		Description:   f.Description,
		Location:      f.Location,
		MaxGuests:     f.MaxGuests,
		MinNights:     f.MinNights,
		MaxNights:     f.MaxNights,
		IncludesMeals: f.IncludesMeals,
		IncludesGuide: f.IncludesGuide,
		Active:        true,
		Now:           time.Now(),
	}
	if f.PricePerNight > 0 {
		rate, err := money.FromMajor(f.PricePerNight, money.DefaultCurrency)
		if err != nil {
			return nil, err
		}
		params.PricePerNight = &rate
	}
	if f.PricePerPerson > 0 {
		rate, err := money.FromMajor(f.PricePerPerson, money.DefaultCurrency)
		if err != nil {
			return nil, err
		}
		params.PricePerPerson = &rate
	}
	return packages.NewPackage(params)
}

var builtinFixtures = []Fixture{
	{
		Code: "TREK-001", Name: "Himalayan Ridge Trek",
		Description: "Multi-day guided trek along snow-capped ridges with alpine camps.",
		Category: "TREKKING", Location: "Manali",
		PricePerPerson: 11000, MinNights: 3, MaxNights: 7, MaxGuests: 12,
		IncludesGuide: true,
	},
	{
		Code: "TREK-002", Name: "Nilgiri Sunset Trail",
		Description: "Evening trek through Nilgiri slopes with cliff-side camping.",
		Category: "TREKKING", Location: "Ooty",
		PricePerPerson: 7500, MinNights: 2, MaxNights: 4, MaxGuests: 15,
		IncludesGuide: true,
	},
	{
		Code: "TREK-003", Name: "Sikkim Summit Quest",
		Description: "High-altitude route covering rhododendron forests and icy ridges.",
		Category: "TREKKING", Location: "Sikkim",
		PricePerPerson: 14500, MinNights: 4, MaxNights: 8, MaxGuests: 8,
		IncludesGuide: true, IncludesMeals: true,
	},
	{
		Code: "TREK-004", Name: "Western Ghats Monsoon Trek",
		Description: "Waterfall chasing and ridge walks with lush valley views.",
		Category: "TREKKING", Location: "Maharashtra",
		PricePerPerson: 6200, MinNights: 2, MaxNights: 5, MaxGuests: 20,
		IncludesGuide: true,
	},
	{
		Code: "TREK-005", Name: "Valley of Flowers Expedition",
		Description: "UNESCO trail exploring alpine meadows and glacier-fed rivers.",
		Category: "TREKKING", Location: "Uttarakhand",
		PricePerPerson: 9900, MinNights: 3, MaxNights: 6, MaxGuests: 12,
		IncludesGuide: true, IncludesMeals: true,
	},
	{
		Code: "HILL-001", Name: "Tea Estate Hill Stay",
		Description: "Boutique chalet overlooking misty tea estates with curated meals.",
		Category: "HILLS_STAYCATION", Location: "Munnar",
		PricePerNight: 1800, MinNights: 2, MaxNights: 6, MaxGuests: 4,
		IncludesMeals: true,
	},
	{
		Code: "HILL-002", Name: "Himalayan Cedar Chalet",
		Description: "Designer loft with bonfire deck and valley-facing windows.",
		Category: "HILLS_STAYCATION", Location: "Shimla",
		PricePerNight: 2500, MinNights: 2, MaxNights: 7, MaxGuests: 5,
	},
	{
		Code: "HILL-003", Name: "Binsar Forest Cottage",
		Description: "Glasshouse-style stay inside an oak forest reserve.",
		Category: "HILLS_STAYCATION", Location: "Binsar",
		PricePerNight: 2100, MinNights: 2, MaxNights: 5, MaxGuests: 4,
		IncludesMeals: true,
	},
	{
		Code: "HILL-004", Name: "Darjeeling Heritage Villa",
		Description: "Colonial-era villa with private butler and tea tasting.",
		Category: "HILLS_STAYCATION", Location: "Darjeeling",
		PricePerNight: 3200, MinNights: 3, MaxNights: 6, MaxGuests: 6,
		IncludesMeals: true,
	},
	{
		Code: "HILL-005", Name: "Kodaikanal Artist Loft",
		Description: "Loft space with rooftop greenhouse and studio corner.",
		Category: "HILLS_STAYCATION", Location: "Kodaikanal",
		PricePerNight: 1900, MinNights: 1, MaxNights: 4, MaxGuests: 3,
	},
	{
		Code: "JUNG-001", Name: "Kanha Jungle Safari",
		Description: "Certified naturalist-led jeep safaris with lakeside eco-lodging.",
		Category: "JUNGLE_SAFARI", Location: "Kanha",
		PricePerPerson: 1400, MinNights: 2, MaxNights: 5, MaxGuests: 8,
		IncludesGuide: true,
	},
	{
		Code: "JUNG-002", Name: "Kaziranga Rhino Watch",
		Description: "Boat and jeep combo safaris to catch sight of grazing rhinos.",
		Category: "JUNGLE_SAFARI", Location: "Kaziranga",
		PricePerPerson: 1750, MinNights: 3, MaxNights: 6, MaxGuests: 6,
		IncludesGuide: true, IncludesMeals: true,
	},
	{
		Code: "JUNG-003", Name: "Bandipur Night Drive",
		Description: "Exclusive night drives plus day treks with birding focus.",
		Category: "JUNGLE_SAFARI", Location: "Bandipur",
		PricePerPerson: 1300, MinNights: 2, MaxNights: 4, MaxGuests: 10,
		IncludesGuide: true,
	},
	{
		Code: "JUNG-004", Name: "Gir Lion Expedition",
		Description: "Open jeep drives through Gir with lion tracking guides.",
		Category: "JUNGLE_SAFARI", Location: "Gir",
		PricePerPerson: 1600, MinNights: 2, MaxNights: 5, MaxGuests: 6,
		IncludesGuide: true,
	},
	{
		Code: "JUNG-005", Name: "Periyar Lake Safari",
		Description: "Houseboat stay and kayak safari through Periyar backwaters.",
		Category: "JUNGLE_SAFARI", Location: "Periyar",
		PricePerPerson: 1550, MinNights: 2, MaxNights: 4, MaxGuests: 9,
		IncludesGuide: true, IncludesMeals: true,
	},
	{
		Code: "LODGE-001", Name: "Spiti Mudhouse Retreat",
		Description: "Rustic mudhouse lodging with star-studded night skies and local cuisine.",
		Category: "LODGING", Location: "Spiti",
		PricePerNight: 1500, MinNights: 2, MaxNights: 5, MaxGuests: 3,
		IncludesMeals: true,
	},
	{
		Code: "LODGE-002", Name: "Coorg Forest Homestead",
		Description: "Coffee-estate homestay with DIY plantation trails.",
		Category: "LODGING", Location: "Coorg",
		PricePerNight: 2200, MinNights: 2, MaxNights: 6, MaxGuests: 5,
	},
	{
		Code: "LODGE-003", Name: "Desert Camp Haven",
		Description: "Luxury tents with camel safaris and rooftop dining.",
		Category: "LODGING", Location: "Jaisalmer",
		PricePerNight: 2400, MinNights: 1, MaxNights: 4, MaxGuests: 4,
		IncludesMeals: true,
	},
	{
		Code: "LODGE-004", Name: "Backwater Clay Homestay",
		Description: "Traditional clay cottages with paddle canoe and Ayurvedic meals.",
		Category: "LODGING", Location: "Alleppey",
		PricePerNight: 2000, MinNights: 1, MaxNights: 5, MaxGuests: 5,
		IncludesMeals: true,
	},
	{
		Code: "LODGE-005", Name: "Kumaon Stone Lodge",
		Description: "Stone-crafted lodge with private chef and orchard walks.",
		Category: "LODGING", Location: "Kumaon",
		PricePerNight: 2600, MinNights: 2, MaxNights: 6, MaxGuests: 4,
		IncludesMeals: true,
	},
}
