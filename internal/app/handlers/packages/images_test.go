package packages

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adventurestay/internal/app/policies"
	domainpackages "adventurestay/internal/domain/packages"
	"adventurestay/internal/infra/storage/memory"
)

type fakeImageCache struct {
	entries map[string]policies.ImageURLs
	gets    int
	sets    int
}

func (f *fakeImageCache) GetImageURLs(_ context.Context, code string) (policies.ImageURLs, bool) {
	f.gets++
	urls, ok := f.entries[code]
	return urls, ok
}

func (f *fakeImageCache) SetImageURLs(_ context.Context, code string, urls policies.ImageURLs) error {
	f.sets++
	f.entries[code] = urls
	return nil
}

func TestImages_ReadThrough(t *testing.T) {
	repo := memory.NewPackageRepository()
	seed(t, repo, "HILL-001", domainpackages.CategoryHillsStay, "Tea Estate Hill Stay", true, true)

	pkg, err := repo.ByCode(context.Background(), "HILL-001")
	require.NoError(t, err)
	pkg.SetImages("https://cdn.example/packages/hill-001.jpg", "https://cdn.example/thumbnails/hill-001.jpg", time.Now())
	require.NoError(t, repo.Save(context.Background(), pkg))

	cache := &fakeImageCache{entries: map[string]policies.ImageURLs{}}
	h := &ImagesHandler{Packages: repo, Cache: cache}

	urls, err := h.Handle(context.Background(), "HILL-001")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/packages/hill-001.jpg", urls.ImageURL)
	assert.Equal(t, "https://cdn.example/thumbnails/hill-001.jpg", urls.ThumbnailURL)
	assert.Equal(t, 1, cache.sets, "miss populates the cache")

	again, err := h.Handle(context.Background(), "HILL-001")
	require.NoError(t, err)
	assert.Equal(t, urls, again)
	assert.Equal(t, 1, cache.sets, "hit skips the store")
	assert.Equal(t, 2, cache.gets)
}

func TestImages_WorksWithoutCache(t *testing.T) {
	repo := memory.NewPackageRepository()
	seed(t, repo, "HILL-001", domainpackages.CategoryHillsStay, "Tea Estate Hill Stay", true, true)

	h := &ImagesHandler{Packages: repo}
	urls, err := h.Handle(context.Background(), "HILL-001")
	require.NoError(t, err)
	assert.Empty(t, urls.ImageURL)

	_, err = h.Handle(context.Background(), "NOPE")
	assert.ErrorIs(t, err, domainpackages.ErrPackageNotFound)
}
