package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	cacheredis "github.com/moto-tn/catalog-service/internal/adapter/cache/redis"
	"github.com/moto-tn/catalog-service/internal/adapter/httpapi"
	natsadapter "github.com/moto-tn/catalog-service/internal/adapter/messaging/nats"
	"github.com/moto-tn/catalog-service/internal/adapter/repository/mongodb"
	filestorage "github.com/moto-tn/catalog-service/internal/adapter/storage/file"
	redisstorage "github.com/moto-tn/catalog-service/internal/adapter/storage/redis"
	"github.com/moto-tn/catalog-service/internal/catalog/domain"
	"github.com/moto-tn/catalog-service/internal/catalog/engine"
	"github.com/moto-tn/catalog-service/internal/catalog/snapshot"
	catalogusecase "github.com/moto-tn/catalog-service/internal/catalog/usecase"
	"github.com/moto-tn/catalog-service/internal/config"
	"github.com/moto-tn/catalog-service/internal/geo"
	newsusecase "github.com/moto-tn/catalog-service/internal/news/usecase"
	"github.com/moto-tn/catalog-service/internal/platform/metrics"
	"github.com/moto-tn/catalog-service/internal/platform/tracer"
	"github.com/moto-tn/catalog-service/internal/port/cache"
	"github.com/moto-tn/catalog-service/internal/port/storage"
	"github.com/moto-tn/catalog-service/internal/scheduler"
	"github.com/moto-tn/catalog-service/internal/store"
)

const serviceName = "catalog-service"

func main() {
	configPath := "config.yaml"
	if cp := os.Getenv("CONFIG_PATH"); cp != "" {
		configPath = cp
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("can't initialize zap logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" {
		tp, err := tracer.InitTracer(serviceName)
		if err != nil {
			logger.Fatal("Failed to initialize tracer", zap.Error(err))
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				logger.Error("Failed to shut down tracer provider", zap.Error(err))
			}
		}()
		logger.Info("Tracer initialized")
	}

	mongoClient, err := mongodb.NewMongoDBConnection(&cfg.Mongo)
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			logger.Error("Failed to disconnect MongoDB", zap.Error(err))
		}
	}()
	logger.Info("Successfully connected to MongoDB")

	listingRepo := mongodb.NewListingRepository(mongoClient, cfg.Mongo.Database)
	garageRepo := mongodb.NewGarageRepository(mongoClient, cfg.Mongo.Database)
	brandRepo := mongodb.NewBrandRepository(mongoClient, cfg.Mongo.Database)
	newsRepo := mongodb.NewNewsRepository(mongoClient, cfg.Mongo.Database)

	var newsCache cache.CacheRepository
	var stateStorage storage.Store

	redisClient, redisErr := redisstorage.NewRedisClient(&cfg.Redis, logger)
	if redisErr == nil {
		newsCache = cacheredis.NewRedisCacheRepository(redisClient, logger)
	} else {
		logger.Warn("Redis unavailable, news cache disabled", zap.Error(redisErr))
	}

	switch cfg.Storage.Backend {
	case "redis":
		if redisErr != nil {
			logger.Fatal("Storage backend is redis but Redis is unavailable", zap.Error(redisErr))
		}
		stateStorage = redisstorage.NewStorage(redisClient, logger)
	default:
		fs, err := filestorage.NewStorage(cfg.Storage.Dir)
		if err != nil {
			logger.Fatal("Failed to initialize file storage", zap.Error(err))
		}
		stateStorage = fs
	}

	favorites := store.NewFavoritesStore(ctx, stateStorage, logger)
	ads := store.NewAdsStore(ctx, stateStorage, logger)

	var publisher *natsadapter.Publisher
	if p, err := natsadapter.NewPublisher(cfg.NATS.URL); err != nil {
		logger.Warn("NATS unavailable, events disabled", zap.Error(err))
	} else {
		publisher = p
		defer publisher.Close()
		logger.Info("Successfully connected to NATS", zap.String("url", cfg.NATS.URL))
	}

	snap := snapshot.New(listingRepo, garageRepo, logger)
	sched := scheduler.New(snap, cfg.Snapshot.RefreshInterval, logger)
	if err := sched.Start(ctx); err != nil {
		logger.Fatal("Failed to start snapshot scheduler", zap.Error(err))
	}
	defer sched.Stop()

	var locator geo.Locator
	if cfg.Geo.DefaultLat != 0 || cfg.Geo.DefaultLng != 0 {
		locator = geo.StaticLocator{Coords: &domain.Coordinates{Lat: cfg.Geo.DefaultLat, Lng: cfg.Geo.DefaultLng}}
	}

	m := metrics.New(prometheus.DefaultRegisterer)
	eng := engine.New()
	catalogUC := catalogusecase.NewCatalogUsecase(snap, eng, favorites, m, logger)

	var newsPublisher newsusecase.NATSPublisherInterface
	var eventPublisher httpapi.EventPublisher
	if publisher != nil {
		newsPublisher = publisher
		eventPublisher = publisher
	}
	newsUC := newsusecase.NewNewsUseCase(newsRepo, newsPublisher, newsCache, logger)

	handlers := httpapi.Handlers{
		Catalog:   httpapi.NewCatalogHandler(catalogUC, brandRepo, locator, logger),
		Favorites: httpapi.NewFavoritesHandler(favorites, catalogUC, eventPublisher, m, locator, logger),
		Ads:       httpapi.NewAdsHandler(ads, eventPublisher, m, logger),
		News:      httpapi.NewNewsHandler(newsUC, logger),
		Admin:     httpapi.NewAdminHandler(garageRepo, brandRepo, ads, snap, logger),
	}
	router := httpapi.NewRouter(handlers, cfg.Auth.JWTSecret, logger)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTP.Port,
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", zap.Error(err))
	}
}
