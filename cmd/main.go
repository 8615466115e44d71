package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dosada05/swiss-tournament/config"
	"github.com/Dosada05/swiss-tournament/db"
	"github.com/Dosada05/swiss-tournament/handlers"
	"github.com/Dosada05/swiss-tournament/hub"
	"github.com/Dosada05/swiss-tournament/repositories"
	api "github.com/Dosada05/swiss-tournament/routes"
	"github.com/Dosada05/swiss-tournament/services"
	"github.com/Dosada05/swiss-tournament/storage"
	"github.com/go-chi/chi/v5"
)

// @title Swiss Tournament API
// @version 1.0
// @description Player registry, match results, standings and Swiss pairings.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Bootstrap logger until the configured level is known.
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort), slog.String("log_level", cfg.LogLevel.String()))

	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	logger.Info("database connection established", slog.String("dialect", string(dbConn.Dialect)))

	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), 30*time.Second)
	err = dbConn.Migrate(migrateCtx)
	cancelMigrate()
	if err != nil {
		logger.Error("failed to apply database schema", slog.Any("error", err))
		os.Exit(1)
	}

	// Archive bucket is optional; without it POST /rounds/archive answers 503.
	var archiveUploader storage.FileUploader
	if cfg.Archive.Enabled() {
		archiveUploader, err = storage.NewS3Uploader(context.Background(), storage.S3UploaderConfig{
			AccountID:       cfg.Archive.AccountID,
			Endpoint:        cfg.Archive.Endpoint,
			Region:          cfg.Archive.Region,
			AccessKeyID:     cfg.Archive.AccessKeyID,
			SecretAccessKey: cfg.Archive.SecretAccessKey,
			BucketName:      cfg.Archive.BucketName,
			PublicBaseURL:   cfg.Archive.PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize archive uploader", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("archive uploader initialized", slog.String("bucket", cfg.Archive.BucketName))
	} else {
		logger.Warn("archive bucket not configured, round archiving disabled")
	}

	hubCtx, stopHub := context.WithCancel(context.Background())
	defer stopHub()
	wsHub := hub.New(logger)
	go wsHub.Run(hubCtx)
	logger.Info("WebSocket Hub started")

	playerRepo := repositories.NewPlayerRepository(dbConn)
	matchRepo := repositories.NewMatchRepository(dbConn)

	if cfg.OrganizerPasswordHash == "" {
		logger.Warn("ORGANIZER_PASSWORD_HASH not set, organizer login disabled")
	}
	authService := services.NewAuthService(cfg.OrganizerPasswordHash)
	tournamentService := services.NewTournamentService(dbConn, playerRepo, matchRepo, wsHub, logger)
	archiveService := services.NewArchiveService(tournamentService, archiveUploader, logger)
	logger.Info("Services initialized")

	router := chi.NewRouter()
	api.SetupRoutes(router,
		api.Options{
			JWTSecret:      cfg.JWTSecretKey,
			AllowedOrigins: cfg.CORSAllowedOrigins,
			Logger:         logger,
		},
		api.Handlers{
			Auth:      handlers.NewAuthHandler(authService, cfg.JWTSecretKey),
			Player:    handlers.NewPlayerHandler(tournamentService),
			Match:     handlers.NewMatchHandler(tournamentService),
			Standings: handlers.NewStandingsHandler(tournamentService, archiveService),
			WebSocket: handlers.NewWebSocketHandler(wsHub, logger),
			Health:    handlers.NewHealthHandler(dbConn),
		},
	)
	logger.Info("Routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 35 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		// Closing the hub first releases hijacked websocket connections.
		stopHub()

		logger.Info("shutting down server", slog.Duration("timeout", 15*time.Second))
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}
