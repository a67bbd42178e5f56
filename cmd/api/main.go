// Package main provides the entrypoint for the AquaWatch API server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/aquawatch/aquawatch/internal/api"
	"github.com/aquawatch/aquawatch/internal/api/handler"
	"github.com/aquawatch/aquawatch/internal/api/middleware"
	"github.com/aquawatch/aquawatch/internal/coordinate"
	"github.com/aquawatch/aquawatch/internal/database"
	"github.com/aquawatch/aquawatch/internal/record"
	"github.com/aquawatch/aquawatch/internal/report"
	"github.com/aquawatch/aquawatch/internal/storage"
	"github.com/aquawatch/aquawatch/internal/telemetry"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// Collection names, shared by both storage backends.
const (
	reportsCollection     = "reports"
	coordinatesCollection = "coordinates"
)

func main() {
	const serviceName = "aquawatch-api"

	// Local development convenience; absence of a .env file is not an error.
	_ = godotenv.Load()

	// Setup structured logging
	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	log.Info().
		Str("build_time", BuildTime).
		Msg("starting AquaWatch API")

	// Get configuration from environment
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	backend := os.Getenv("STORAGE_BACKEND")
	if backend == "" {
		backend = "mongo"
	}

	otlpEndpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if otlpEndpoint == "" {
		otlpEndpoint = "localhost:4317"
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	// Initialize OpenTelemetry
	ctx := context.Background()
	telemetryEnabled := os.Getenv("OTEL_ENABLED") == "true"

	tp, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    serviceName,
		ServiceVersion: Version,
		Environment:    env,
		OTLPEndpoint:   otlpEndpoint,
		Enabled:        telemetryEnabled,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telemetry")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tp.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("failed to shutdown telemetry")
		}
	}()

	if telemetryEnabled {
		log.Info().
			Str("otlp_endpoint", otlpEndpoint).
			Msg("OpenTelemetry initialized")
	}

	// Initialize metrics
	metrics, err := middleware.NewMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	storageMetrics, err := middleware.NewStorageMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize storage metrics")
	}

	// Initialize the storage backend. A backend that cannot be reached at
	// startup is fatal: the service never runs against broken storage.
	var (
		reportStore     storage.ReportStore
		coordinateStore storage.CoordinateStore
		pinger          handler.Pinger
	)

	switch backend {
	case "mongo":
		dbConfig := database.ConfigFromEnv()
		client, err := database.Connect(ctx, dbConfig)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if disconnectErr := client.Disconnect(disconnectCtx); disconnectErr != nil {
				log.Error().Err(disconnectErr).Msg("failed to disconnect from database")
			}
		}()
		log.Info().
			Str("uri", dbConfig.RedactedURI()).
			Str("database", dbConfig.Database).
			Msg("database connected")

		db := client.Database(dbConfig.Database)
		if err := database.EnsureIndexes(ctx, db, reportsCollection, coordinatesCollection); err != nil {
			log.Warn().Err(err).Msg("index creation incomplete")
		}

		reports := storage.NewMongoStore[record.Report, *record.Report](db, reportsCollection)
		coordinates := storage.NewMongoStore[record.Coordinate, *record.Coordinate](db, coordinatesCollection)
		reportStore = storage.Instrument[record.Report, *record.Report](reports, backend, reportsCollection, storageMetrics)
		coordinateStore = storage.Instrument[record.Coordinate, *record.Coordinate](coordinates, backend, coordinatesCollection, storageMetrics)
		pinger = reports

	case "file":
		dataDir := os.Getenv("DATA_DIR")
		if dataDir == "" {
			dataDir = "./data"
		}
		log.Info().Str("data_dir", dataDir).Msg("using file storage")

		reports := storage.NewFileStore[record.Report, *record.Report](dataDir, reportsCollection)
		coordinates := storage.NewFileStore[record.Coordinate, *record.Coordinate](dataDir, coordinatesCollection)
		reportStore = storage.Instrument[record.Report, *record.Report](reports, backend, reportsCollection, storageMetrics)
		coordinateStore = storage.Instrument[record.Coordinate, *record.Coordinate](coordinates, backend, coordinatesCollection, storageMetrics)
		pinger = reports

	default:
		log.Fatal().Str("backend", backend).Msg("unknown STORAGE_BACKEND, expected mongo or file")
	}

	// Initialize services
	reportService := report.NewService(reportStore)
	coordinateService := coordinate.NewService(coordinateStore)
	log.Info().Str("backend", backend).Msg("services initialized")

	// Create router with configuration
	router := api.NewRouter(api.RouterConfig{
		Version:           Version,
		BuildTime:         BuildTime,
		Logger:            log,
		ServiceName:       serviceName,
		StorageBackend:    backend,
		Metrics:           metrics,
		ReportService:     reportService,
		CoordinateService: coordinateService,
		StoragePinger:     pinger,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("addr", server.Addr).
			Msg("server listening")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
