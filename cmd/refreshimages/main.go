// Command refreshimages fetches stock photos for packages that are missing
// one, uploads original plus thumbnail to object storage and stores the
// resulting URLs on the package.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"adventurestay/internal/infra/cache"
	"adventurestay/internal/infra/config"
	"adventurestay/internal/infra/db/mongo"
	"adventurestay/internal/infra/images"
	"adventurestay/internal/infra/obs"
	"adventurestay/internal/infra/storage/s3"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("configuration invalid: " + err.Error() + "\n")
		os.Exit(1)
	}
	logger := obs.NewLogger(cfg.Env)

	if cfg.Storage != "mongo" {
		logger.Warn("image refresh needs persistent storage, set STORAGE=mongo")
		return
	}

	client, err := mongo.New(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Error("mongo connection failed", "error", err)
		os.Exit(1)
	}

	uploader, err := s3.NewClient(cfg.S3Endpoint, cfg.S3UseSSL, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3PublicEndpoint, logger)
	if err != nil {
		logger.Error("object storage setup failed", "error", err)
		os.Exit(1)
	}

	var urlCache *cache.ImageURLCache
	if cfg.RedisAddr != "" {
		urlCache = cache.NewImageURLCache(cfg.RedisAddr, cfg.CacheTTL, logger)
		if err := urlCache.Ping(ctx); err != nil {
			logger.Warn("redis unavailable, cache invalidation skipped", "error", err)
			urlCache = nil
		} else {
			defer urlCache.Close()
		}
	}

	refresher := &images.Refresher{
		Packages:    mongo.NewPackageRepository(client.DB),
		Fetcher:     images.NewFetcher(),
		Thumbnailer: images.NewThumbnailer(cfg.ThumbnailWidth),
		Uploader:    uploader,
		Cache:       urlCache,
		Logger:      logger,
	}

	result, err := refresher.RefreshAll(ctx)
	if err != nil {
		logger.Error("image refresh failed", "error", err)
		os.Exit(1)
	}
	if result.Failed > 0 {
		os.Exit(1)
	}
}
