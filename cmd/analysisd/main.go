package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/credora/credit-analysis-service/internal/application/usecase"
	"github.com/credora/credit-analysis-service/internal/domain/service"
	"github.com/credora/credit-analysis-service/internal/infrastructure/cache"
	"github.com/credora/credit-analysis-service/internal/infrastructure/config"
	"github.com/credora/credit-analysis-service/internal/infrastructure/kafka"
	pgRepo "github.com/credora/credit-analysis-service/internal/infrastructure/persistence/postgres"
	grpcPresentation "github.com/credora/credit-analysis-service/internal/presentation/grpc"
	"github.com/credora/credit-analysis-service/internal/presentation/rest"
	"github.com/credora/credit-analysis-service/pkg/auth"
	pkgkafka "github.com/credora/credit-analysis-service/pkg/kafka"
	"github.com/credora/credit-analysis-service/pkg/observability"
	pkgpostgres "github.com/credora/credit-analysis-service/pkg/postgres"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration.
	cfg := config.Load()
	cfg.Validate()

	// Initialize structured logger via shared observability package.
	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: "json",
	})
	slog.SetDefault(logger)

	logger.Info("starting credit-analysis-service",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
	)

	// Metrics exporter; the handler is mounted on the HTTP server below.
	_, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		logger.Error("failed to initialize metrics", "error", err)
		os.Exit(1)
	}

	// Database connection.
	dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
	defer dbCancel()

	pgCfg := pkgpostgres.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
	}
	pool, err := pkgpostgres.NewPool(dbCtx, pgCfg)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	// Run database migrations.
	if migErr := pkgpostgres.RunMigrations(pgCfg.DSN(), "file://internal/infrastructure/persistence/postgres/migrations"); migErr != nil {
		logger.Warn("migration warning", "error", migErr)
	}

	// Redis client cache.
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	// Wire infrastructure adapters.
	analysisRepo := pgRepo.NewAnalysisRepo(pool)
	documentRepo := pgRepo.NewDocumentRepo(pool)
	clientRepo := cache.NewCachedClientRepo(
		pgRepo.NewClientRepo(pool),
		redisClient,
		time.Duration(cfg.Redis.TTLSecs)*time.Second,
		logger,
	)
	kafkaProducer := pkgkafka.NewProducer(pkgkafka.Config{
		Brokers: cfg.Kafka.Brokers,
	})
	defer kafkaProducer.Close()
	publisher := kafka.NewEventPublisher(kafkaProducer, cfg.Kafka.Topic, logger)

	// Domain services.
	scorer := service.NewScoringEngine()
	evaluator := service.NewApprovalEvaluator()

	// Wire use cases.
	registerClientUC := usecase.NewRegisterClientUseCase(clientRepo, publisher)
	getClientUC := usecase.NewGetClientUseCase(clientRepo)
	submitUC := usecase.NewSubmitAnalysisUseCase(analysisRepo, clientRepo, publisher, scorer, evaluator)
	getAnalysisUC := usecase.NewGetAnalysisUseCase(analysisRepo)
	listAnalysesUC := usecase.NewListClientAnalysesUseCase(analysisRepo)
	decideUC := usecase.NewDecideAnalysisUseCase(analysisRepo, publisher)
	reevaluateUC := usecase.NewReevaluateAnalysisUseCase(analysisRepo, publisher, scorer, evaluator)
	attachDocumentUC := usecase.NewAttachDocumentUseCase(documentRepo, analysisRepo, publisher)
	quoteUC := usecase.NewQuoteLoanUseCase(scorer, evaluator)

	// JWT service (validation-only: public key preferred, secret as fallback).
	jwtCfg := auth.JWTConfig{
		Issuer: "credora-gateway",
	}
	switch {
	case os.Getenv("JWT_PUBLIC_KEY") != "":
		jwtCfg.PublicKeyPEM = os.Getenv("JWT_PUBLIC_KEY")
	case os.Getenv("JWT_PUBLIC_KEY_FILE") != "":
		keyData, loadErr := auth.LoadKeyFromFile(os.Getenv("JWT_PUBLIC_KEY_FILE"))
		if loadErr != nil {
			logger.Error("failed to load JWT public key file", "error", loadErr)
			os.Exit(1)
		}
		jwtCfg.PublicKeyPEM = string(keyData)
	default:
		jwtSecret := os.Getenv("JWT_SECRET")
		if jwtSecret == "" {
			logger.Error("JWT_SECRET or a public key is required")
			os.Exit(1)
		}
		jwtCfg.Secret = jwtSecret
	}
	jwtSvc, err := auth.NewJWTService(jwtCfg)
	if err != nil {
		logger.Error("failed to initialize JWT service", "error", err)
		os.Exit(1)
	}

	// gRPC server.
	handler := grpcPresentation.NewAnalysisHandler(
		registerClientUC, getClientUC,
		submitUC, getAnalysisUC, listAnalysesUC,
		decideUC, reevaluateUC, attachDocumentUC, quoteUC,
	)
	grpcServer := grpcPresentation.NewServer(handler, logger, jwtSvc)

	// HTTP server (health checks and metrics).
	mux := http.NewServeMux()
	healthHandler := rest.NewHealthHandler(logger, map[string]rest.ReadinessCheck{
		"postgres": func(ctx context.Context) error {
			return pkgpostgres.HealthCheck(ctx, pool)
		},
	})
	healthHandler.RegisterRoutes(mux)
	mux.Handle("GET /metrics", metricsHandler)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start servers.
	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Wait for shutdown signal.
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	// Graceful shutdown.
	grpcServer.GracefulStop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("credit-analysis-service stopped")
}
