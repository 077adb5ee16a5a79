package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"zapbytes/pkg/abandon"
	"zapbytes/pkg/config"
	"zapbytes/pkg/content"
	"zapbytes/pkg/dispatch"
	"zapbytes/pkg/geocoder"
	"zapbytes/pkg/handlers"
	"zapbytes/pkg/leads"
	"zapbytes/pkg/location"
	"zapbytes/pkg/logger"
	"zapbytes/pkg/scheduler"
	"zapbytes/pkg/server"
	"zapbytes/pkg/store"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const shutdownTimeout = 15 * time.Second

// @title ZapBytes Lead Capture API
// @version 1.0.0
// @description Lead capture and attribution backend for the ZapBytes fiber broadband landing page.
// @BasePath /api/v1
func main() {
	configPath := flag.String("config", "", "path to configuration file")
	flag.Parse()

	// Load .env if present, environment variables win over file values
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.ValidateConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	isDevelopment := cfg.App.Environment == "development"
	if err := logger.InitLogger(isDevelopment, cfg.App.LogFile, cfg.App.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting zapbytes",
		zap.String("environment", cfg.App.Environment),
		zap.String("log_level", cfg.App.LogLevel))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svcs, err := buildServices(cfg)
	if err != nil {
		logger.Fatal("Failed to build services", zap.Error(err))
	}

	httpServer, err := server.NewHTTPServer(ctx, &server.Config{
		Address:  cfg.Server.Address,
		Port:     cfg.Server.Port,
		Config:   cfg,
		Services: svcs,
	})
	if err != nil {
		logger.Fatal("Failed to create HTTP server", zap.Error(err))
	}

	var taskScheduler *scheduler.TaskScheduler
	if cfg.Scheduler == nil || cfg.Scheduler.Enabled {
		taskScheduler, err = scheduler.NewTaskScheduler(ctx, cfg, svcs.Abandon)
		if err != nil {
			logger.Fatal("Failed to create scheduler", zap.Error(err))
		}

		httpServer.SetScheduler(taskScheduler)

		go func() {
			if err := taskScheduler.Start(); err != nil {
				logger.Error("Scheduler stopped with error", zap.Error(err))
			}
		}()
	} else {
		logger.Info("Scheduler disabled by configuration")
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- httpServer.Start()
	}()

	// Wait for shutdown signal or server failure
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-serverErr:
		if err != nil {
			logger.Error("HTTP server failed", zap.Error(err))
		}
	}

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", zap.Error(err))
	}

	if taskScheduler != nil {
		if err := taskScheduler.Shutdown(shutdownCtx); err != nil {
			logger.Error("Scheduler shutdown failed", zap.Error(err))
		}
	}

	logger.Info("Shutdown complete")
}

// buildServices wires the visitor store, outbound clients, and domain
// services from configuration.
func buildServices(cfg *config.Config) (*handlers.Services, error) {
	var visitorStore store.Store
	var err error

	storeCfg := cfg.GetStoreConfig()
	switch storeCfg.Driver {
	case "memory":
		visitorStore = store.NewMemoryStore()
		logger.Info("Using in-memory visitor store")
	default:
		visitorStore, err = store.NewGormStore(storeCfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("failed to open visitor store: %w", err)
		}
		logger.Info("Using sqlite visitor store", zap.String("dsn", storeCfg.DSN))
	}

	geocoderClient := geocoder.NewHTTPClient(&geocoder.Config{
		BaseURL: cfg.GetGeocoderConfig().BaseURL,
		Timeout: cfg.GetGeocoderConfig().Timeout,
	})

	dispatcher := dispatch.NewWebhookDispatcher(&dispatch.Config{
		WebhookURL: cfg.GetSinkConfig().WebhookURL,
		Timeout:    cfg.GetSinkConfig().Timeout,
	})

	locationSvc := location.NewService(visitorStore, geocoderClient)
	serviceArea := leads.NewServiceArea(cfg.GetLeadsConfig().ServiceArea)
	leadsSvc := leads.NewService(visitorStore, dispatcher, locationSvc, serviceArea)

	sessionTTL := time.Duration(cfg.GetSessionConfig().TTLMinutes) * time.Minute
	abandonSvc := abandon.NewService(visitorStore, dispatcher, locationSvc, sessionTTL)

	catalogPath := ""
	if cfg.Content != nil {
		catalogPath = cfg.Content.CatalogPath
	}
	catalog, err := content.LoadCatalog(catalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load content catalog: %w", err)
	}

	return &handlers.Services{
		Store:    visitorStore,
		Location: locationSvc,
		Leads:    leadsSvc,
		Abandon:  abandonSvc,
		Catalog:  catalog,
	}, nil
}
