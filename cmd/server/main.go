package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/raahsarthi/service-route/internal/application"
	"github.com/raahsarthi/service-route/internal/config"
	"github.com/raahsarthi/service-route/internal/handler"
	"github.com/raahsarthi/service-route/internal/logger"
	"github.com/raahsarthi/service-route/internal/middleware"
	"github.com/raahsarthi/service-route/internal/upstream/geocode"
	"github.com/raahsarthi/service-route/internal/upstream/places"
	"github.com/raahsarthi/service-route/internal/upstream/routing"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewNamed(cfg.AppEnv, "service-route")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting service-route",
		zap.String("port", cfg.Port),
		zap.String("routing_geometry", cfg.RoutingGeometry),
	)
	if cfg.PlacesAPIKey == "" {
		log.Warn("no place search API key configured, POI search will fail")
	}

	// Initialize upstream clients
	geocoder := geocode.NewClient(cfg.GeocoderBaseURL, cfg.GeocoderTimeout, log)
	router := routing.NewClient(cfg.RoutingBaseURL,
		routing.GeometryFormat(cfg.RoutingGeometry), cfg.RoutingTimeout, log)
	searcher := places.NewClient(cfg.PlacesBaseURL, cfg.PlacesAPIKey, cfg.PlacesTimeout, log)

	// Initialize application services
	tripService := application.NewTripService(geocoder, router, log)
	placeService := application.NewPlaceService(searcher, log)

	// Initialize HTTP handlers
	tripHandler := handler.NewTripHandler(tripService)
	placeHandler := handler.NewPlaceHandler(placeService)
	healthHandler := handler.NewHealthHandler("service-route")

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	// Apply global middleware
	engine.Use(middleware.RecoveryMiddleware(log))
	engine.Use(middleware.LoggerMiddleware(log))
	engine.Use(middleware.RequestIDMiddleware())
	engine.Use(middleware.CORSMiddleware())
	engine.Use(middleware.SecurityHeadersMiddleware())

	// Register routes
	tripHandler.RegisterRoutes(&engine.RouterGroup)
	placeHandler.RegisterRoutes(&engine.RouterGroup)
	healthHandler.RegisterRoutes(&engine.RouterGroup)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down service-route...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info("service-route stopped")
}
