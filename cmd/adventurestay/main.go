package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	bookingapp "adventurestay/internal/app/handlers/booking"
	packagesapp "adventurestay/internal/app/handlers/packages"
	"adventurestay/internal/app/policies"
	domainbooking "adventurestay/internal/domain/booking"
	domainpackages "adventurestay/internal/domain/packages"
	"adventurestay/internal/infra/broker/kafka"
	"adventurestay/internal/infra/cache"
	"adventurestay/internal/infra/config"
	"adventurestay/internal/infra/db/mongo"
	ginserver "adventurestay/internal/infra/http/gin"
	"adventurestay/internal/infra/notify"
	"adventurestay/internal/infra/obs"
	"adventurestay/internal/infra/seed"
	"adventurestay/internal/infra/storage/memory"
	"adventurestay/internal/infra/storage/s3"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration invalid", "error", err)
		os.Exit(1)
	}
	logger := obs.NewLogger(cfg.Env)

	repos, ready, err := buildRepositories(cfg, logger)
	if err != nil {
		logger.Error("storage setup failed", "error", err)
		os.Exit(1)
	}

	sinks, closeSinks := buildSinks(cfg, logger)
	defer closeSinks()

	fixtures, err := seed.Load(cfg.FixturesPath)
	if err != nil {
		logger.Warn("package fixtures unavailable", "error", err, "path", cfg.FixturesPath)
	} else if err := seed.Apply(ctx, repos.packages, fixtures, logger); err != nil {
		logger.Warn("package seeding failed", "error", err)
	}

	var imageCache policies.ImageURLCache
	if cfg.RedisAddr != "" {
		urlCache := cache.NewImageURLCache(cfg.RedisAddr, cfg.CacheTTL, logger)
		if err := urlCache.Ping(ctx); err != nil {
			logger.Warn("redis unavailable, image cache disabled", "error", err)
		} else {
			imageCache = urlCache
			defer urlCache.Close()
		}
	}

	handlers := ginserver.Handlers{
		Booking: ginserver.BookingHandler{
			CreateBooking: &bookingapp.CreateHandler{
				Packages:  repos.packages,
				Bookings:  repos.bookings,
				Publisher: sinks.publisher,
				Notifier:  sinks.notifier,
				Archiver:  sinks.archiver,
				Logger:    logger,
			},
			GetBooking: &bookingapp.GetHandler{
				Packages: repos.packages,
				Bookings: repos.bookings,
			},
			Logger: logger,
		},
		Package: ginserver.PackageHandler{
			CatalogQuery: &packagesapp.CatalogHandler{Packages: repos.packages},
			GetQuery:     &packagesapp.GetHandler{Packages: repos.packages},
			ImagesQuery:  &packagesapp.ImagesHandler{Packages: repos.packages, Cache: imageCache},
			Logger:       logger,
		},
	}

	server := ginserver.NewServer(cfg, obs.Middleware{Logger: logger}, obs.HealthHandlers{
		Ready: ready,
	}, handlers)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown failed", "error", err)
		}
	}()

	logger.Info("HTTP server starting", "addr", cfg.HTTPAddr, "storage", cfg.Storage, "cloud_sinks", cfg.CloudSinks)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("HTTP server stopped")
}

type repositories struct {
	packages domainpackages.Repository
	bookings domainbooking.Repository
}

func buildRepositories(cfg config.Config, logger *slog.Logger) (repositories, func() error, error) {
	if cfg.Storage == "mongo" {
		client, err := mongo.New(cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return repositories{}, nil, err
		}
		logger.Info("mongo storage configured", "db", cfg.MongoDB)
		ready := func() error {
			ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
			defer cancel()
			return client.Ping(ctx)
		}
		return repositories{
			packages: mongo.NewPackageRepository(client.DB),
			bookings: mongo.NewBookingRepository(client.DB),
		}, ready, nil
	}

	logger.Info("in-memory storage configured")
	return repositories{
		packages: memory.NewPackageRepository(),
		bookings: memory.NewBookingRepository(),
	}, func() error { return nil }, nil
}

type sinks struct {
	publisher policies.Publisher
	notifier  policies.Notifier
	archiver  policies.Archiver
}

// buildSinks wires the optional fan-out targets. Each sink is independent:
// a missing or failing one is logged and skipped, never fatal.
func buildSinks(cfg config.Config, logger *slog.Logger) (sinks, func()) {
	var s sinks
	closers := []func(){}

	if !cfg.CloudSinks {
		logger.Info("cloud sinks disabled, bookings stay local")
		return s, func() {}
	}

	producer, err := kafka.NewProducer(cfg.KafkaBrokers, nil)
	if err != nil {
		logger.Warn("kafka unavailable, booking events disabled", "error", err)
	} else {
		s.publisher = &kafka.BookingEvents{Producer: producer, Topic: cfg.KafkaTopic, Logger: logger}
		closers = append(closers, func() {
			if err := producer.Close(); err != nil {
				logger.Warn("kafka producer close failed", "error", err)
			}
		})
	}

	if cfg.SMTPHost != "" {
		s.notifier = notify.NewEmailNotifier(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, logger)
	} else {
		logger.Info("SMTP_HOST not set, confirmation emails disabled")
	}

	uploader, err := s3.NewClient(cfg.S3Endpoint, cfg.S3UseSSL, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3PublicEndpoint, logger)
	if err != nil {
		logger.Warn("object storage unavailable, booking archive disabled", "error", err)
	} else {
		s.archiver = s3.NewBookingArchive(uploader, logger)
	}

	return s, func() {
		for _, c := range closers {
			c()
		}
	}
}
