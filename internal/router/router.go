package router

import (
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "cidgate/docs"
	"cidgate/internal/handler"
	"cidgate/internal/metrics"
	"cidgate/internal/middleware"
	"cidgate/internal/port"
)

const (
	gatewayBanner = "Server is running! Use POST /upload to upload an image."
	localBanner   = "Hello World! Try uploading an image to /upload or access /image"
)

// Options carries the process-wide collaborators shared by both modes.
type Options struct {
	Logger         *zap.Logger
	Metrics        *metrics.Metrics
	RequestTimeout time.Duration
}

// SetupGateway configures the authenticated upload gateway routes.
func SetupGateway(
	verifier port.IdentityVerifier,
	lookupRequiresAuth bool,
	userH *handler.UserHandler,
	uploadH *handler.UploadHandler,
	healthH *handler.HealthHandler,
	opts Options,
) *gin.Engine {
	r := newEngine(healthH, opts)
	r.GET("/", handler.Banner(gatewayBanner))

	authMW := middleware.AuthMiddleware(verifier, opts.Logger)

	// Protected routes - require a verified bearer token
	protected := r.Group("")
	protected.Use(authMW)
	protected.POST("/register", userH.Register)
	protected.POST("/upload", uploadH.Upload)

	if lookupRequiresAuth {
		protected.GET("/user-cids/:email", uploadH.ListByEmail)
	} else {
		r.GET("/user-cids/:email", uploadH.ListByEmail)
	}

	return r
}

// SetupLocal configures the unauthenticated single-slot image routes.
func SetupLocal(imageH *handler.ImageHandler, healthH *handler.HealthHandler, opts Options) *gin.Engine {
	r := newEngine(healthH, opts)
	r.GET("/", handler.Banner(localBanner))
	r.POST("/upload", imageH.Upload)
	r.GET("/image", imageH.Get)
	return r
}

func newEngine(healthH *handler.HealthHandler, opts Options) *gin.Engine {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(opts.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(opts.Logger))
	r.Use(middleware.Metrics(opts.Metrics))
	r.Use(middleware.Timeout(opts.RequestTimeout))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	if opts.Metrics != nil {
		r.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
