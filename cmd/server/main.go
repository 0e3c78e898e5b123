package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/campanini-sabores/storefront/internal/config"
	"github.com/campanini-sabores/storefront/internal/handlers"
	"github.com/campanini-sabores/storefront/internal/messaging"
	"github.com/campanini-sabores/storefront/internal/middleware"
	"github.com/campanini-sabores/storefront/internal/ratings"
	"github.com/campanini-sabores/storefront/internal/repository"
	"github.com/campanini-sabores/storefront/internal/storefront"
	"github.com/campanini-sabores/storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const version = "1.0.0"

func main() {
	// Load configuration from flags, config file and environment
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting campanini storefront server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
		"ratings_backend", cfg.Ratings.Backend,
	)

	ctx := context.Background()

	// Initialize rating store
	backend, err := openRatingsBackend(cfg.Ratings)
	if err != nil {
		log.Error("failed to open ratings backend", "error", err)
		os.Exit(1)
	}
	defer backend.Close()

	ratingStore := ratings.NewStore(backend, log)
	ratingStore.Load(ctx)

	// Initialize session controller
	productRepo := repository.NewInMemoryProductRepository()
	sender := messaging.NewWhatsApp(cfg.Messaging.WhatsAppNumber)
	ctrl, err := storefront.NewController(ctx, productRepo, ratingStore, sender, log)
	if err != nil {
		log.Error("failed to initialize storefront", "error", err)
		os.Exit(1)
	}

	healthHandler := handlers.NewHealthHandler(log, version)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "api_key"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Register health check endpoint
	r.Get("/health", healthHandler.ServeHTTP)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.ServeHTTP)

		r.Group(func(r chi.Router) {
			r.Use(middleware.APIKeyAuth(cfg.Auth))
			handlers.RegisterAPI(r, ctrl, log)
		})
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		return
	}

	log.Info("server stopped gracefully")
}

// openRatingsBackend selects where ratings are persisted
func openRatingsBackend(cfg config.RatingsConfig) (ratings.Backend, error) {
	switch cfg.Backend {
	case config.BackendLevelDB:
		return ratings.OpenLevelDB(filepath.Join(cfg.Path, "ratings.ldb"))
	case config.BackendMemory:
		return ratings.NewMemoryBackend(), nil
	default:
		return ratings.NewFileBackend(cfg.Path)
	}
}
