package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"

	"adventurestay/internal/app/policies"
)

const imageKeyFormat = "pkgimages:%s"

// ImageURLCache keeps per-package image URLs in Redis so image lookups do
// not hit the package store on every request.
type ImageURLCache struct {
	cli    *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewImageURLCache(addr string, ttl time.Duration, logger *slog.Logger) *ImageURLCache {
	client := redis.NewClient(&redis.Options{Addr: addr})
	return &ImageURLCache{cli: client, ttl: ttl, logger: logger}
}

func (c *ImageURLCache) Ping(ctx context.Context) error {
	return c.cli.Ping(ctx).Err()
}

// GetImageURLs returns the cached URLs for a package code, ok=false on a miss.
// Redis errors are treated as misses so a cache outage never breaks reads.
func (c *ImageURLCache) GetImageURLs(ctx context.Context, code string) (policies.ImageURLs, bool) {
	raw, err := c.cli.Get(ctx, imageKey(code)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) && c.logger != nil {
			c.logger.Warn("image cache read failed", "code", code, "error", err)
		}
		return policies.ImageURLs{}, false
	}

	var urls policies.ImageURLs
	if err := json.Unmarshal(raw, &urls); err != nil {
		return policies.ImageURLs{}, false
	}
	return urls, true
}

func (c *ImageURLCache) SetImageURLs(ctx context.Context, code string, urls policies.ImageURLs) error {
	raw, err := json.Marshal(urls)
	if err != nil {
		return fmt.Errorf("cache images for %s: marshal: %w", code, err)
	}
	if err := c.cli.Set(ctx, imageKey(code), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache images for %s: %w", code, err)
	}
	return nil
}

// Invalidate drops the cached entry, typically after a refresh run rewrites
// the stored URLs.
func (c *ImageURLCache) Invalidate(ctx context.Context, code string) error {
	if err := c.cli.Del(ctx, imageKey(code)).Err(); err != nil {
		return fmt.Errorf("invalidate images for %s: %w", code, err)
	}
	return nil
}

func (c *ImageURLCache) Close() error {
	return c.cli.Close()
}

func imageKey(code string) string {
	return fmt.Sprintf(imageKeyFormat, code)
}

var _ policies.ImageURLCache = (*ImageURLCache)(nil)
