package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cedbrasil/enrolld/config"
	"github.com/cedbrasil/enrolld/internal/adapter/academic"
	httpHandler "github.com/cedbrasil/enrolld/internal/adapter/http/handler"
	"github.com/cedbrasil/enrolld/internal/adapter/mercadopago"
	"github.com/cedbrasil/enrolld/internal/adapter/notify"
	pgStorage "github.com/cedbrasil/enrolld/internal/adapter/storage/postgres"
	redisStorage "github.com/cedbrasil/enrolld/internal/adapter/storage/redis"
	"github.com/cedbrasil/enrolld/internal/core/domain"
	"github.com/cedbrasil/enrolld/internal/core/ports"
	"github.com/cedbrasil/enrolld/internal/service"
	"github.com/cedbrasil/enrolld/pkg/logger"
)

// webhookClaimTTL absorbs delivery bursts for one resource. Status changes
// on the same resource are picked up after expiry; the repository
// compare-and-set keeps correctness either way.
const webhookClaimTTL = 10 * time.Minute

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting enrollment reconciliation service")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize storage adapters
	enrollmentRepo := pgStorage.NewEnrollmentRepo(pool)
	dedupStore := redisStorage.NewDedupStore(rdb, webhookClaimTTL)

	// Initialize external collaborators
	academicClient := academic.NewClient(cfg.Academic, log)
	paymentClient := mercadopago.NewClient(cfg.Payment, log)
	notifier := notify.NewNotifier(cfg.Notify, log)

	// Course catalog: built-in table unless a file override is configured
	table := domain.DefaultCourseTable()
	if cfg.Catalog.FilePath != "" {
		table, err = service.LoadCourseTable(cfg.Catalog.FilePath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.Catalog.FilePath).Msg("Failed to load course table")
		}
		log.Info().Int("courses", len(table)).Str("path", cfg.Catalog.FilePath).Msg("Course table loaded from file")
	}
	catalog := service.NewCatalogService(table, cfg.Catalog.SimilarityThreshold, log)

	// Initialize core services
	metrics := service.NewMetricsService()
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.Auth.JWTSecret, cfg.Auth.JWTExpiry, cfg.Auth.JWTIssuer)
	authSvc := service.NewOperatorAuthService(cfg.Auth.OperatorUsername, cfg.Auth.OperatorPassword, hashSvc, tokenSvc)

	// Initialize business services
	policy := service.AttemptPolicy{MaxAttempts: cfg.Allocator.MaxAttempts}
	allocator := service.NewAllocatorService(academicClient, cfg.Allocator.Prefix, cfg.Allocator.PadWidth, policy, log)
	registrationSvc := service.NewRegistrationService(catalog, allocator, academicClient, notifier, cfg.Academic.DefaultPassword, policy, log)
	reconcilerSvc := service.NewReconcilerService(enrollmentRepo, dedupStore, paymentClient, registrationSvc, notifier, metrics, log)
	enrollmentSvc := service.NewEnrollmentAppService(enrollmentRepo, catalog, paymentClient, registrationSvc, notifier, metrics, log)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		EnrollmentSvc:  enrollmentSvc,
		Reconciler:     reconcilerSvc,
		AuthSvc:        authSvc,
		TokenSvc:       tokenSvc,
		Catalog:        catalog,
		Metrics:        metrics,
		WebhookSecret:  cfg.Payment.WebhookSecret,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
