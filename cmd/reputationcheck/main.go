package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rajasatyajit/ReputationCheck/config"
	"github.com/rajasatyajit/ReputationCheck/internal/api"
	"github.com/rajasatyajit/ReputationCheck/internal/checker"
	"github.com/rajasatyajit/ReputationCheck/internal/logger"
	"github.com/rajasatyajit/ReputationCheck/internal/metrics"
	middlewares "github.com/rajasatyajit/ReputationCheck/internal/middleware"
	"github.com/rajasatyajit/ReputationCheck/internal/news"
	"github.com/rajasatyajit/ReputationCheck/internal/registry"
	"github.com/rajasatyajit/ReputationCheck/internal/sentiment"
	"github.com/rajasatyajit/ReputationCheck/internal/social"
)

// Version information (set by build)
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger.Init(cfg.Logging.Level, cfg.Logging.Format)
	logger.Info("Starting ReputationCheck application",
		"version", Version,
		"build_time", BuildTime,
		"git_commit", GitCommit,
	)

	// Initialize metrics
	if cfg.Metrics.Enabled {
		metrics.Init()
		logger.Info("Metrics enabled", "port", cfg.Metrics.Port)
	}

	if cfg.News.APIKey == "" {
		logger.Warn("NEWS_API_KEY not set; news searches will degrade to placeholders")
	}

	// Initialize evidence collaborators
	analyzer := sentiment.New()
	newsAggregator := news.NewAggregator(news.NewClient(cfg.News), analyzer)
	socialAggregator := social.NewAggregator(social.NewExecScraper(cfg.Scraper), analyzer, cfg.Scraper)
	reg := registry.New(cfg.Registry)
	probe := checker.NewWebPresenceProbe()

	backgroundChecker := checker.New(newsAggregator, socialAggregator, reg, probe)

	// Setup HTTP server
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewares.Logging)
	r.Use(middlewares.Metrics)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.Server.WriteTimeout))
	r.Use(middlewares.Security)
	r.Use(middlewares.CORS([]string{"*"}))

	// Initialize API handlers
	apiHandler := api.NewHandler(backgroundChecker, Version, BuildTime, GitCommit)
	apiHandler.RegisterRoutes(r)

	// Metrics endpoint
	if cfg.Metrics.Enabled {
		go startMetricsServer(cfg.Metrics.Port, cfg.Metrics.Path)
	}

	// HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting HTTP server", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server failed", "error", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.GracefulShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	logger.Info("Server exited")
}

func startMetricsServer(port int, path string) {
	mux := http.NewServeMux()
	mux.Handle(path, metrics.Handler())

	addr := fmt.Sprintf(":%d", port)
	logger.Info("Starting metrics server", "address", addr, "path", path)

	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("Metrics server failed", "error", err)
	}
}
