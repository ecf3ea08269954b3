package images

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"

	"adventurestay/internal/domain/packages"
)

// Curated Unsplash shots per category. The fetch URL gets sizing params
// appended so we pull a consistent 1600px-wide crop.
var categoryImages = map[packages.Category][]string{
	packages.CategoryHillsStay: {
		"https://images.unsplash.com/photo-1521119989659-a83eee488004",
		"https://images.unsplash.com/photo-1505691938895-1758d7feb511",
		"https://images.unsplash.com/photo-1522708323590-d24dbb6b0267",
		"https://images.unsplash.com/photo-1500530855697-b586d89ba3ee",
		"https://images.unsplash.com/photo-1482192596544-9eb780fc7f66",
		"https://images.unsplash.com/photo-1501785888041-af3ef285b470",
	},
	packages.CategoryTrekking: {
		"https://images.unsplash.com/photo-1469854523086-cc02fe5d8800",
		"https://images.unsplash.com/photo-1470246973918-29a93221c455",
		"https://images.unsplash.com/photo-1501785888041-af3ef285b470",
		"https://images.unsplash.com/photo-1500534314209-a25ddb2bd429",
		"https://images.unsplash.com/photo-1500048993953-d23a436266cf",
	},
	packages.CategoryJungleSafari: {
		"https://images.unsplash.com/photo-1484406566174-9da000fda645",
		"https://images.unsplash.com/photo-1470770841072-f978cf4d019e",
		"https://images.unsplash.com/photo-1456926631375-92c8ce872def",
		"https://images.unsplash.com/photo-1430026996702-608b84ce9281",
		"https://images.unsplash.com/photo-1500530855697-b586d89ba3ee",
	},
	packages.CategoryLodging: {
		"https://images.unsplash.com/photo-1502672260266-1c1ef2d93688",
		"https://images.unsplash.com/photo-1465101162946-4377e57745c3",
		"https://images.unsplash.com/photo-1554995207-c18c203602cb",
		"https://images.unsplash.com/photo-1598928506311-c55ded91a20c",
		"https://images.unsplash.com/photo-1496417263034-38ec4f0b665a",
	},
}

const fetchParams = "?auto=format&fit=crop&w=1600&q=80"

// Fetcher downloads a curated stock photo for a package category.
type Fetcher struct {
	client *http.Client
	rand   *rand.Rand
}

func NewFetcher() *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: 15 * time.Second},
		rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// FetchForCategory picks a random curated shot for the category and returns
// the raw image bytes. Unknown categories fall back to the lodging set.
func (f *Fetcher) FetchForCategory(ctx context.Context, category packages.Category) ([]byte, error) {
	urls, ok := categoryImages[category]
	if !ok {
		urls = categoryImages[packages.CategoryLodging]
	}
	url := urls[f.rand.Intn(len(urls))] + fetchParams

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch image for %s: %w", category, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch image for %s: %w", category, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch image for %s: unexpected status %d", category, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch image for %s: read body: %w", category, err)
	}
	return data, nil
}
