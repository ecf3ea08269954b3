package images

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"adventurestay/internal/domain/packages"
	"adventurestay/internal/infra/cache"
	"adventurestay/internal/infra/storage/s3"
)

// CategoryFetcher supplies raw image bytes for a package category.
type CategoryFetcher interface {
	FetchForCategory(ctx context.Context, category packages.Category) ([]byte, error)
}

// Refresher walks the catalog and fills in missing package images: fetch a
// curated shot, upload the original, derive and upload a thumbnail, then
// persist both URLs on the package. Packages that already carry an image
// URL are skipped.
type Refresher struct {
	Packages    packages.Repository
	Fetcher     CategoryFetcher
	Thumbnailer *Thumbnailer
	Uploader    s3.Uploader
	Cache       *cache.ImageURLCache
	Logger      *slog.Logger
	Now         func() time.Time
}

// RefreshResult summarizes one refresh run.
type RefreshResult struct {
	Total   int
	Updated int
	Skipped int
	Failed  int
}

func (r *Refresher) RefreshAll(ctx context.Context) (RefreshResult, error) {
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}

	list, err := r.Packages.List(ctx, packages.ListParams{})
	if err != nil {
		return RefreshResult{}, fmt.Errorf("refresh images: list packages: %w", err)
	}

	log := r.logger()
	result := RefreshResult{Total: len(list)}
	for _, pkg := range list {
		if strings.HasPrefix(pkg.ImageURL, "http") {
			result.Skipped++
			continue
		}

		if err := r.refreshOne(ctx, pkg, now()); err != nil {
			result.Failed++
			log.Error("image refresh failed", "code", pkg.Code, "error", err)
			continue
		}
		result.Updated++
	}

	log.Info("image refresh completed",
		"total", result.Total, "updated", result.Updated,
		"skipped", result.Skipped, "failed", result.Failed)
	return result, nil
}

func (r *Refresher) refreshOne(ctx context.Context, pkg *packages.Package, now time.Time) error {
	raw, err := r.Fetcher.FetchForCategory(ctx, pkg.Category)
	if err != nil {
		return err
	}

	name := fmt.Sprintf("%s-%s.jpg", strings.ToLower(string(pkg.Code)), uuid.NewString())
	imageURL, err := r.Uploader.Upload(ctx, "packages/"+name, bytes.NewReader(raw), "image/jpeg")
	if err != nil {
		return err
	}

	thumb, err := r.Thumbnailer.Thumbnail(raw)
	if err != nil {
		return err
	}
	thumbURL, err := r.Uploader.Upload(ctx, "thumbnails/"+name, bytes.NewReader(thumb), "image/jpeg")
	if err != nil {
		return err
	}

	pkg.SetImages(imageURL, thumbURL, now)
	if err := r.Packages.Save(ctx, pkg); err != nil {
		return fmt.Errorf("save package %s: %w", pkg.Code, err)
	}

	if r.Cache != nil {
		if err := r.Cache.Invalidate(ctx, string(pkg.Code)); err != nil {
			r.logger().Warn("image cache invalidation failed", "code", pkg.Code, "error", err)
		}
	}

	r.logger().Info("package image refreshed", "code", pkg.Code, "image_url", imageURL)
	return nil
}

func (r *Refresher) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}
