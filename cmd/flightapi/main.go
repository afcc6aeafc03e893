package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cx-tal-miterani/flight-data-api/internal/config"
	"github.com/cx-tal-miterani/flight-data-api/internal/database"
	"github.com/cx-tal-miterani/flight-data-api/internal/handlers"
	"github.com/cx-tal-miterani/flight-data-api/internal/router"
	"github.com/cx-tal-miterani/flight-data-api/internal/service"
	"github.com/cx-tal-miterani/flight-data-api/internal/stream"
)

const (
	defaultPort  = "8080"
	pollInterval = 5 * time.Second
)

func main() {
	// Get configuration from environment
	cfg, err := config.Load(defaultPort)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to Postgres
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	repo := database.NewRepository(pool)

	// Initialize services
	flightService := service.NewFlightService(repo, cfg.Defaults)

	// Initialize handlers
	h := handlers.NewFlightHandler(flightService, cfg.Metadata)

	// Start the WebSocket hub and the flight status watcher
	hub := stream.NewHub()
	go hub.Run()

	watcher := stream.NewWatcher(hub, repo, pollInterval)
	go watcher.Run(ctx)

	// Create router
	r := router.NewFlightRouter(h, hub)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Flight API starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
