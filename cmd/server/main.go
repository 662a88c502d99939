package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/triosart/storefront/internal/admin"
	"github.com/triosart/storefront/internal/api"
	"github.com/triosart/storefront/internal/api/handler"
	"github.com/triosart/storefront/internal/api/router"
	"github.com/triosart/storefront/internal/auth"
	"github.com/triosart/storefront/internal/cache"
	"github.com/triosart/storefront/internal/cart"
	"github.com/triosart/storefront/internal/catalog"
	"github.com/triosart/storefront/internal/config"
	"github.com/triosart/storefront/internal/port"
	"github.com/triosart/storefront/internal/repository"
	"github.com/triosart/storefront/internal/storage"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	if err := run(logger); err != nil {
		logger.Fatal().Err(err).Msg("server exited")
	}
}

func run(logger zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cf, err := config.Load(".")
	if err != nil {
		return err
	}

	pool, err := pgxpool.New(ctx, cf.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	var productCache port.ProductCache
	if cf.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: cf.RedisAddr})
		defer redisClient.Close()
		productCache = cache.NewProductCache(redisClient, cf.ProductCacheTTL)
	}

	minioClient, err := minio.New(cf.S3Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cf.S3AccessKey, cf.S3SecretKey, ""),
		Secure: cf.S3UseSSL,
	})
	if err != nil {
		return err
	}
	if err := storage.EnsureBucket(ctx, minioClient, cf.S3Bucket); err != nil {
		return err
	}
	objectStore := storage.NewMinio(minioClient, cf.S3Bucket, cf.S3PublicURL)

	productRepo := repository.NewProduct(pool)
	catalogService := catalog.NewService(productRepo, productCache, logger)
	carts := cart.NewStore()
	session := auth.NewSession()
	provider := auth.NewMockProvider(cf.AuthDelay)
	uploader := admin.NewUploader(objectStore, catalogService, logger)

	server := api.NewServer(
		handler.NewCatalogHandler(catalogService),
		handler.NewCartHandler(carts, catalogService),
		handler.NewAuthHandler(provider, session),
		handler.NewAdminHandler(uploader),
	)

	httpServer := &http.Server{
		Addr:              ":" + cf.ServerPort,
		Handler:           router.SetupRouter(server, session, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info().Str("addr", httpServer.Addr).Msg("listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		logger.Info().Msg("shutting down")
		return httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
