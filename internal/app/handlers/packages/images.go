package packages

import (
	"context"

	"adventurestay/internal/app/policies"
	domainpackages "adventurestay/internal/domain/packages"
)

// ImagesHandler resolves a package's image URLs, preferring the cache and
// falling back to the package store. Cache write failures are ignored, the
// store remains the source of truth.
type ImagesHandler struct {
	Packages domainpackages.Repository
	Cache    policies.ImageURLCache
}

func (h *ImagesHandler) Handle(ctx context.Context, code string) (policies.ImageURLs, error) {
	if h.Cache != nil {
		if urls, ok := h.Cache.GetImageURLs(ctx, code); ok {
			return urls, nil
		}
	}

	pkg, err := h.Packages.ByCode(ctx, domainpackages.Code(code))
	if err != nil {
		return policies.ImageURLs{}, err
	}

	urls := policies.ImageURLs{ImageURL: pkg.ImageURL, ThumbnailURL: pkg.ThumbnailURL}
	if h.Cache != nil {
		_ = h.Cache.SetImageURLs(ctx, code, urls)
	}
	return urls, nil
}
