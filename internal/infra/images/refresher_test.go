package images

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adventurestay/internal/domain/packages"
	"adventurestay/internal/domain/shared/money"
	"adventurestay/internal/infra/storage/memory"
)

type stubFetcher struct {
	data []byte
	err  error
}

func (s *stubFetcher) FetchForCategory(ctx context.Context, category packages.Category) ([]byte, error) {
	return s.data, s.err
}

type recordingUploader struct {
	keys []string
}

func (u *recordingUploader) Upload(ctx context.Context, key string, reader io.Reader, contentType string) (string, error) {
	if _, err := io.Copy(io.Discard, reader); err != nil {
		return "", err
	}
	u.keys = append(u.keys, key)
	return "https://cdn.adventurestay.in/media/" + key, nil
}

func testPackage(t *testing.T, code string, imageURL string) *packages.Package {
	t.Helper()
	rate := money.Must(450000, "INR")
	pkg, err := packages.NewPackage(packages.CreateParams{
		Code:          packages.Code(code),
		Category:      packages.CategoryTrekking,
		Name:          "Trek " + code,
		MaxGuests:     6,
		MinNights:     1,
		MaxNights:     7,
		PricePerNight: &rate,
		ImageURL:      imageURL,
		Active:        true,
		Now:           time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return pkg
}

func TestRefreshAll_UploadsImageAndThumbnail(t *testing.T) {
	repo := memory.NewPackageRepository()
	pkg := testPackage(t, "TREK-001", "")
	require.NoError(t, repo.Save(context.Background(), pkg))

	uploader := &recordingUploader{}
	r := &Refresher{
		Packages:    repo,
		Fetcher:     &stubFetcher{data: encodeTestImage(t, 800, 600)},
		Thumbnailer: NewThumbnailer(300),
		Uploader:    uploader,
		Logger:      slog.New(slog.DiscardHandler),
	}

	res, err := r.RefreshAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, RefreshResult{Total: 1, Updated: 1}, res)
	require.Len(t, uploader.keys, 2)
	assert.True(t, strings.HasPrefix(uploader.keys[0], "packages/trek-001-"))
	assert.True(t, strings.HasPrefix(uploader.keys[1], "thumbnails/trek-001-"))

	stored, err := repo.ByCode(context.Background(), "TREK-001")
	require.NoError(t, err)
	assert.Contains(t, stored.ImageURL, "/media/packages/trek-001-")
	assert.Contains(t, stored.ThumbnailURL, "/media/thumbnails/trek-001-")
}

func TestRefreshAll_SkipsPackagesWithImages(t *testing.T) {
	repo := memory.NewPackageRepository()
	pkg := testPackage(t, "TREK-002", "https://cdn.adventurestay.in/media/packages/existing.jpg")
	require.NoError(t, repo.Save(context.Background(), pkg))

	uploader := &recordingUploader{}
	r := &Refresher{
		Packages:    repo,
		Fetcher:     &stubFetcher{err: fmt.Errorf("fetcher must not be called")},
		Thumbnailer: NewThumbnailer(300),
		Uploader:    uploader,
		Logger:      slog.New(slog.DiscardHandler),
	}

	res, err := r.RefreshAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, RefreshResult{Total: 1, Skipped: 1}, res)
	assert.Empty(t, uploader.keys)
}

func TestRefreshAll_CountsFailures(t *testing.T) {
	repo := memory.NewPackageRepository()
	require.NoError(t, repo.Save(context.Background(), testPackage(t, "TREK-003", "")))

	r := &Refresher{
		Packages:    repo,
		Fetcher:     &stubFetcher{err: fmt.Errorf("upstream unavailable")},
		Thumbnailer: NewThumbnailer(300),
		Uploader:    &recordingUploader{},
		Logger:      slog.New(slog.DiscardHandler),
	}

	res, err := r.RefreshAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, RefreshResult{Total: 1, Failed: 1}, res)
}

func TestRefreshAll_NoLoggerConfigured(t *testing.T) {
	repo := memory.NewPackageRepository()
	require.NoError(t, repo.Save(context.Background(), testPackage(t, "TREK-004", "")))

	r := &Refresher{
		Packages:    repo,
		Fetcher:     &stubFetcher{err: fmt.Errorf("upstream unavailable")},
		Thumbnailer: NewThumbnailer(300),
		Uploader:    &recordingUploader{},
	}

	res, err := r.RefreshAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, RefreshResult{Total: 1, Failed: 1}, res)
}
