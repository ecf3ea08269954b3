package packages

import (
	"context"

	"adventurestay/internal/app/dto"
	domainpackages "adventurestay/internal/domain/packages"
)

// sectionLimit caps how many packages each category section shows,
// matching the storefront layout.
const sectionLimit = 5

// CatalogHandler builds the category-sectioned package catalog.
type CatalogHandler struct {
	Packages domainpackages.Repository
}

func (h *CatalogHandler) Handle(ctx context.Context) (*dto.Catalog, error) {
	catalog := &dto.Catalog{}
	for _, category := range domainpackages.Categories {
		items, err := h.Packages.List(ctx, domainpackages.ListParams{
			Category:   category,
			OnlyActive: true,
			Limit:      sectionLimit,
		})
		if err != nil {
			return nil, err
		}
		section := dto.CatalogSection{
			Key:         string(category),
			Label:       category.Label(),
			Description: category.Blurb(),
			Packages:    make([]dto.PackageCard, 0, len(items)),
		}
		for _, pkg := range items {
			section.Packages = append(section.Packages, dto.MapPackageCard(pkg))
		}
		catalog.Sections = append(catalog.Sections, section)
	}
	return catalog, nil
}

// GetHandler returns a single package card by code.
type GetHandler struct {
	Packages domainpackages.Repository
}

func (h *GetHandler) Handle(ctx context.Context, code string) (*dto.PackageCard, error) {
	pkg, err := h.Packages.ByCode(ctx, domainpackages.Code(code))
	if err != nil {
		return nil, err
	}
	card := dto.MapPackageCard(pkg)
	return &card, nil
}
