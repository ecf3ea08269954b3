package dto

import (
	"fmt"

	"adventurestay/internal/domain/packages"
)

type PackageCard struct {
	Code          string `json:"code"`
	Name          string `json:"name"`
	Location      string `json:"location"`
	Description   string `json:"description"`
	PricingText   string `json:"pricing_text"`
	Rate          string `json:"rate"`
	RateUnit      string `json:"rate_unit"`
	MaxGuests     int    `json:"max_guests"`
	MinNights     int    `json:"min_nights"`
	MaxNights     int    `json:"max_nights"`
	IncludesMeals bool   `json:"includes_meals"`
	IncludesGuide bool   `json:"includes_guide"`
	ImageURL      string `json:"image_url"`
	ThumbnailURL  string `json:"thumbnail_url"`
}

type CatalogSection struct {
	Key         string        `json:"key"`
	Label       string        `json:"label"`
	Description string        `json:"description"`
	Packages    []PackageCard `json:"packages"`
}

type Catalog struct {
	Sections []CatalogSection `json:"sections"`
}

func MapPackageCard(pkg *packages.Package) PackageCard {
	card := PackageCard{
		Code:          string(pkg.Code),
		Name:          pkg.Name,
		Location:      pkg.Location,
		Description:   pkg.Description,
		MaxGuests:     pkg.MaxGuests,
		MinNights:     pkg.MinNights,
		MaxNights:     pkg.MaxNights,
		IncludesMeals: pkg.IncludesMeals,
		IncludesGuide: pkg.IncludesGuide,
		ImageURL:      pkg.ImageURL,
		ThumbnailURL:  pkg.ThumbnailURL,
	}
	if rate, unit, ok := pkg.Rate(); ok {
		card.Rate = rate.String()
		card.RateUnit = unit
		card.PricingText = fmt.Sprintf("From ₹%s / %s", rate, unit)
	}
	return card
}
