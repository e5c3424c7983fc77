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

	"github.com/stellarcredit/credit-service/internal/application/usecase"
	"github.com/stellarcredit/credit-service/internal/domain/port"
	"github.com/stellarcredit/credit-service/internal/domain/service"
	authgate "github.com/stellarcredit/credit-service/internal/infrastructure/auth"
	"github.com/stellarcredit/credit-service/internal/infrastructure/config"
	"github.com/stellarcredit/credit-service/internal/infrastructure/kafka"
	"github.com/stellarcredit/credit-service/internal/infrastructure/persistence"
	memstore "github.com/stellarcredit/credit-service/internal/infrastructure/persistence/memory"
	pgstore "github.com/stellarcredit/credit-service/internal/infrastructure/persistence/postgres"
	redisstore "github.com/stellarcredit/credit-service/internal/infrastructure/persistence/redis"
	grpcPresentation "github.com/stellarcredit/credit-service/internal/presentation/grpc"
	"github.com/stellarcredit/credit-service/internal/presentation/rest"
	"github.com/stellarcredit/credit-service/internal/storage"
	"github.com/stellarcredit/credit-service/pkg/auth"
	pkgkafka "github.com/stellarcredit/credit-service/pkg/kafka"
	"github.com/stellarcredit/credit-service/pkg/observability"
	pkgpostgres "github.com/stellarcredit/credit-service/pkg/postgres"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration.
	cfg := config.Load()
	cfg.Validate()

	// Initialize structured logger via shared observability package.
	logger := observability.InitLogger(observability.LogConfig{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: cfg.ServiceName,
	})
	slog.SetDefault(logger)

	logger.Info("starting credit-service",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
		"storage_backend", cfg.StorageBackend,
	)

	// Initialize tracing.
	shutdown, err := observability.InitTracer(ctx, observability.TracingConfig{
		ServiceName: cfg.ServiceName,
		Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
		Insecure:    true,
	})
	if err != nil {
		logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
	} else {
		defer func() { _ = shutdown(ctx) }() //nolint:errcheck // best-effort tracer shutdown
	}

	// Initialize metrics.
	var rpcMetrics *observability.RPCMetrics
	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		logger.Warn("failed to initialize metrics, continuing without metrics", "error", err)
	} else {
		rpcMetrics, err = observability.NewRPCMetrics(meterProvider, cfg.ServiceName)
		if err != nil {
			logger.Warn("failed to create RPC metrics", "error", err)
		}
	}

	// The tick clock anchors score lifetimes to the ledger epoch.
	epoch, err := cfg.Epoch()
	if err != nil {
		logger.Error("invalid ledger epoch", "error", err)
		os.Exit(1)
	}
	clock := storage.NewLedgerClock(epoch)

	// Storage backend.
	var store storage.Store
	switch cfg.StorageBackend {
	case config.BackendPostgres:
		dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
		defer dbCancel()

		pool, poolErr := pkgpostgres.NewPool(dbCtx, pkgpostgres.Config{
			Host:     cfg.DB.Host,
			Port:     cfg.DB.Port,
			User:     cfg.DB.User,
			Password: cfg.DB.Password,
			Database: cfg.DB.Name,
			SSLMode:  cfg.DB.SSLMode,
		})
		if poolErr != nil {
			logger.Error("failed to connect to database", "error", poolErr)
			os.Exit(1)
		}
		logger.Info("connected to database")

		migDSN := pkgpostgres.Config{
			Host:     cfg.DB.Host,
			Port:     cfg.DB.Port,
			User:     cfg.DB.User,
			Password: cfg.DB.Password,
			Database: cfg.DB.Name,
			SSLMode:  cfg.DB.SSLMode,
		}.DSN()
		if migErr := pkgpostgres.RunMigrations(migDSN, cfg.DB.MigrationsDir); migErr != nil {
			logger.Warn("migration warning", "error", migErr)
		}

		store = pgstore.NewStore(pool, clock)

	case config.BackendRedis:
		redisStore, redisErr := redisstore.NewStore(ctx, redisstore.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if redisErr != nil {
			logger.Error("failed to connect to redis", "error", redisErr)
			os.Exit(1)
		}
		logger.Info("connected to redis")
		store = redisStore

	default:
		logger.Warn("using in-memory storage; records do not survive restarts")
		store = memstore.NewStore(clock)
	}
	defer func() { _ = store.Close() }() //nolint:errcheck // best-effort store shutdown

	// Wire infrastructure adapters.
	scoreRepo := persistence.NewScoreRepo(store)
	loanRepo := persistence.NewLoanRepo(store)
	adminRepo := persistence.NewAdminRepo(store)
	gate := authgate.NewGate(adminRepo)

	var publisher port.EventPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaProducer := pkgkafka.NewProducer(pkgkafka.Config{
			Brokers: cfg.Kafka.Brokers,
		})
		defer kafkaProducer.Close()
		publisher = kafka.NewEventPublisher(kafkaProducer, cfg.Kafka.Topic, logger)
		logger.Info("publishing domain events", "topic", cfg.Kafka.Topic)
	} else {
		publisher = kafka.NewLogPublisher(logger)
		logger.Info("no kafka brokers configured, logging domain events instead")
	}

	// Domain services.
	scoringEngine := service.NewScoringEngine()
	advisor := service.NewAdvisor()
	termsEngine := service.NewLoanTermsEngine()
	catalog := service.NewOfferCatalog()

	// Wire use cases.
	initializeUC := usecase.NewInitializeUseCase(gate, adminRepo, publisher, clock)
	storeScoreUC := usecase.NewStoreScoreUseCase(gate, scoreRepo, scoringEngine, advisor, publisher, clock)
	getScoreUC := usecase.NewGetScoreUseCase(scoreRepo)
	requestLoanUC := usecase.NewRequestLoanUseCase(gate, scoreRepo, loanRepo, termsEngine, publisher, clock)
	approveLoanUC := usecase.NewApproveLoanUseCase(gate, loanRepo, publisher, clock)
	rejectLoanUC := usecase.NewRejectLoanUseCase(gate, loanRepo, publisher, clock)
	getLoanUC := usecase.NewGetLoanUseCase(loanRepo)
	getOffersUC := usecase.NewGetLoanOffersUseCase(catalog)

	// JWT service (validation-only: public key preferred, secret as fallback).
	jwtCfg := auth.JWTConfig{
		Issuer: "stellarcredit-gateway",
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
			jwtSecret = "dev-credit-secret" // Local development only.
		}
		jwtCfg.Secret = jwtSecret
	}
	jwtSvc, err := auth.NewJWTService(jwtCfg)
	if err != nil {
		logger.Error("failed to initialize JWT service", "error", err)
		os.Exit(1)
	}

	// gRPC server.
	handler := grpcPresentation.NewCreditHandler(
		initializeUC, storeScoreUC, getScoreUC,
		requestLoanUC, approveLoanUC, rejectLoanUC,
		getLoanUC, getOffersUC,
	)
	grpcServer := grpcPresentation.NewServer(handler, cfg.GRPCPort, logger, jwtSvc, rpcMetrics)

	// HTTP server (health checks and metrics).
	mux := http.NewServeMux()
	healthHandler := rest.NewHealthHandler(cfg.ServiceName, store, metricsHandler, logger)
	healthHandler.RegisterRoutes(mux)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start servers.
	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Start(); err != nil {
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
	grpcServer.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("credit-service stopped")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
