package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"zapbytes/pkg/config"
	"zapbytes/pkg/handlers"
	"zapbytes/pkg/logger"
	"zapbytes/pkg/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "zapbytes/docs" // swagger docs
)

// Server constants
const (
	DefaultReadTimeout  = 30 * time.Second
	DefaultWriteTimeout = 30 * time.Second
	DefaultIdleTimeout  = 120 * time.Second
	DefaultVersion      = "1.0.0"
	ServiceName         = "zapbytes"
)

// Config holds HTTP server configuration
type Config struct {
	Address  string
	Port     int
	Config   *config.Config
	Services *handlers.Services
}

// HTTPServer represents the HTTP server component
type HTTPServer struct {
	server     *http.Server
	engine     *gin.Engine
	config     *Config
	ctx        context.Context
	handlerSvc *handlers.HandlerService
}

// NewHTTPServer creates a new HTTP server instance
func NewHTTPServer(ctx context.Context, cfg *Config) (*HTTPServer, error) {
	logger.Info("Initializing HTTP server",
		zap.String("address", cfg.Address),
		zap.Int("port", cfg.Port))

	if cfg.Config.App != nil && cfg.Config.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// Create handler service
	handlerSvc := handlers.NewHandlerService(ctx, cfg.Config, cfg.Services)

	server := &HTTPServer{
		engine:     engine,
		config:     cfg,
		ctx:        ctx,
		handlerSvc: handlerSvc,
	}

	// Setup routes
	server.setupRoutes()

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Address, cfg.Port)
	server.server = &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  DefaultReadTimeout,
		WriteTimeout: DefaultWriteTimeout,
		IdleTimeout:  DefaultIdleTimeout,
	}

	logger.Info("HTTP server initialized", zap.String("listen_addr", addr))
	return server, nil
}

// SetScheduler sets the scheduler reference in the handler service
func (s *HTTPServer) SetScheduler(scheduler interface{}) {
	s.handlerSvc.SetScheduler(scheduler)
}

// setupRoutes configures all HTTP routes
func (s *HTTPServer) setupRoutes() {
	// Add middleware
	s.addMiddleware()

	// Health check endpoint
	s.engine.GET("/health", s.handlerSvc.HealthCheck)

	// Swagger documentation
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup API routes
	s.setupAPIRoutes()

	logger.Info("HTTP routes configured")
}

// Start starts the HTTP server
func (s *HTTPServer) Start() error {
	logger.Info("Starting HTTP server", zap.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server failed: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down HTTP server")

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("HTTP server shutdown failed: %w", err)
	}

	return nil
}

// addMiddleware adds all middleware to the engine
func (s *HTTPServer) addMiddleware() {
	s.engine.Use(middleware.Recovery())
	s.engine.Use(middleware.RequestID())
	s.engine.Use(middleware.VisitorID())
	s.engine.Use(middleware.GinZapLogger(logger.Logger))
	s.engine.Use(middleware.ErrorHandler())
	s.engine.Use(s.corsMiddleware())
}

// corsMiddleware builds the CORS policy from configuration. The unload
// beacon and the visitor header both need to pass preflight.
func (s *HTTPServer) corsMiddleware() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	origins := s.config.Config.Server.AllowedOrigins
	if len(origins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
	}

	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "X-Request-ID", middleware.VisitorIDHeader}

	return cors.New(corsConfig)
}

// setupAPIRoutes configures API v1 routes
func (s *HTTPServer) setupAPIRoutes() {
	api := s.engine.Group("/api/v1")

	// Setup route groups
	s.setupSystemRoutes(api)
	s.setupLocationRoutes(api)
	s.setupLeadRoutes(api)
	s.setupSessionRoutes(api)
	s.setupContentRoutes(api)
	s.setupSchedulerRoutes(api)
}

// setupSystemRoutes configures system endpoints
func (s *HTTPServer) setupSystemRoutes(api *gin.RouterGroup) {
	api.GET("/status", s.handlerSvc.GetStatus)
	api.GET("/config", s.handlerSvc.GetAppConfig)
	api.PUT("/config/loglevel", s.handlerSvc.UpdateLogLevel)
}

// setupLocationRoutes configures location capture endpoints
func (s *HTTPServer) setupLocationRoutes(api *gin.RouterGroup) {
	api.POST("/location", s.handlerSvc.CaptureLocation)
}

// setupLeadRoutes configures submission endpoints, rate limited per IP
func (s *HTTPServer) setupLeadRoutes(api *gin.RouterGroup) {
	group := api.Group("")
	if rlCfg := s.config.Config.RateLimit; rlCfg != nil && rlCfg.Enabled {
		group.Use(middleware.NewRateLimiter(rlCfg).Middleware())
	}

	group.POST("/leads", s.handlerSvc.SubmitLead)
	group.POST("/contact", s.handlerSvc.SubmitContact)
}

// setupSessionRoutes configures session state endpoints
func (s *HTTPServer) setupSessionRoutes(api *gin.RouterGroup) {
	api.GET("/session", s.handlerSvc.GetSession)
	api.POST("/session/close", s.handlerSvc.CloseSession)
	api.POST("/session/cta-dismissed", s.handlerSvc.DismissCTA)
}

// setupContentRoutes configures marketing content endpoints
func (s *HTTPServer) setupContentRoutes(api *gin.RouterGroup) {
	api.GET("/content/catalog", s.handlerSvc.GetCatalog)
	api.GET("/content/plans", s.handlerSvc.GetPlans)
	api.GET("/content/bundles", s.handlerSvc.GetBundles)
	api.GET("/content/faqs", s.handlerSvc.GetFAQs)
}

// setupSchedulerRoutes configures scheduler endpoints
func (s *HTTPServer) setupSchedulerRoutes(api *gin.RouterGroup) {
	api.GET("/scheduler/status", s.handlerSvc.GetSchedulerStatus)
	api.GET("/scheduler/jobs", s.handlerSvc.GetScheduledJobs)
	api.GET("/scheduler/jobs/:id", s.handlerSvc.GetScheduledJob)
	api.DELETE("/scheduler/jobs/:id", s.handlerSvc.DeleteScheduledJob)
	api.POST("/scheduler/sweep", s.handlerSvc.TriggerSweep)
}
