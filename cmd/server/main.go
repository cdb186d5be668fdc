// @title cidgate API
// @version 1.0
// @description Authenticated upload gateway that pins images to an IPFS-backed object store and records their CIDs.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Identity provider ID token, prefixed with "Bearer "
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"cidgate/internal/auth/firebase"
	"cidgate/internal/auth/google"
	"cidgate/internal/auth/hmac"
	"cidgate/internal/config"
	"cidgate/internal/domain"
	"cidgate/internal/handler"
	"cidgate/internal/logging"
	"cidgate/internal/metrics"
	"cidgate/internal/middleware"
	"cidgate/internal/port"
	"cidgate/internal/repository/memory"
	"cidgate/internal/repository/mongo"
	"cidgate/internal/repository/postgres"
	"cidgate/internal/router"
	"cidgate/internal/service"
	"cidgate/internal/storage/localfs"
	miniostorage "cidgate/internal/storage/minio"
	s3storage "cidgate/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()
	m := metrics.New()
	m.Registry().MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	opts := router.Options{Logger: logger, Metrics: m, RequestTimeout: cfg.Gateway.RequestTimeout}

	var engine *gin.Engine
	switch cfg.Server.Mode {
	case domain.ModeLocal:
		slot, err := localfs.NewSlot(afero.NewOsFs(), cfg.Upload.LocalDir)
		if err != nil {
			return fmt.Errorf("failed to initialize upload dir: %w", err)
		}
		imageSvc := service.NewImageService(slot, logger)
		engine = router.SetupLocal(
			handler.NewImageHandler(imageSvc, logger),
			handler.NewHealthHandler(nil),
			opts,
		)
	default:
		verifier, err := newVerifier(ctx, &cfg.Auth)
		if err != nil {
			return fmt.Errorf("failed to initialize identity verifier: %w", err)
		}
		storage, err := newObjectStorage(&cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to initialize object store: %w", err)
		}
		store, closeStore, err := openMetadataStore(ctx, &cfg.Metadata)
		if err != nil {
			return fmt.Errorf("failed to connect to metadata store: %w", err)
		}
		defer closeStore()

		// Initialize services
		regSvc := service.NewRegistrationService(store.users, logger)
		uploadSvc := service.NewUploadService(storage, store.records, m, logger)

		engine = router.SetupGateway(
			verifier,
			cfg.Gateway.LookupRequiresAuth,
			handler.NewUserHandler(regSvc, logger),
			handler.NewUploadHandler(uploadSvc, cfg.Upload.MaxBytes(), logger),
			handler.NewHealthHandler(store.pinger),
			opts,
		)
		logger.Info("gateway configured",
			zap.String("auth", verifier.Provider()),
			zap.String("storage", string(cfg.Storage.Provider)),
			zap.String("metadata", string(cfg.Metadata.Backend)),
			zap.Bool("lookup_requires_auth", cfg.Gateway.LookupRequiresAuth))
	}

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      middleware.CORS(cfg.CORS.AllowedOrigins)(engine),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			zap.String("addr", cfg.Server.Port),
			zap.String("mode", string(cfg.Server.Mode)),
			zap.String("env", cfg.Server.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-quit:
	}

	logger.Info("shutting down gracefully")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

func newVerifier(ctx context.Context, cfg *config.AuthConfig) (port.IdentityVerifier, error) {
	switch cfg.Provider {
	case domain.AuthProviderFirebase:
		projectID, err := cfg.ProjectID()
		if err != nil {
			return nil, err
		}
		return firebase.NewVerifier(ctx, projectID), nil
	case domain.AuthProviderGoogle:
		return google.NewVerifier(cfg.GoogleClientID), nil
	case domain.AuthProviderHMAC:
		return hmac.NewVerifier(cfg.HMACSecret, cfg.HMACIssuer), nil
	default:
		return nil, fmt.Errorf("unknown auth provider %q", cfg.Provider)
	}
}

func newObjectStorage(cfg *config.StorageConfig) (port.ObjectStorage, error) {
	switch cfg.Provider {
	case domain.StorageProviderS3:
		return s3storage.NewS3Client(cfg)
	case domain.StorageProviderMinio:
		return miniostorage.NewStorage(cfg)
	default:
		return nil, fmt.Errorf("unknown storage provider %q", cfg.Provider)
	}
}

type metadataStore struct {
	users   port.UserRepository
	records port.UploadRecordRepository
	pinger  port.Pinger
}

func openMetadataStore(ctx context.Context, cfg *config.MetadataConfig) (*metadataStore, func(), error) {
	switch cfg.Backend {
	case domain.MetadataBackendMongo:
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		client, err := mongo.Connect(connectCtx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Close(closeCtx)
		}
		return &metadataStore{
			users:   mongo.NewUserRepo(client),
			records: mongo.NewUploadRecordRepo(client),
			pinger:  client,
		}, closeFn, nil
	case domain.MetadataBackendPostgres:
		db, err := postgres.NewDB(&cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		return &metadataStore{
			users:   postgres.NewUserRepo(db),
			records: postgres.NewUploadRecordRepo(db),
			pinger:  db,
		}, func() { _ = db.Close() }, nil
	case domain.MetadataBackendMemory:
		store := memory.NewStore()
		return &metadataStore{
			users:   store.Users(),
			records: store.UploadRecords(),
			pinger:  store,
		}, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown metadata backend %q", cfg.Backend)
	}
}
