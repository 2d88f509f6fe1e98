package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"custodial-voucher/config"
	apidocs "custodial-voucher/docs/api"
	httpHandler "custodial-voucher/internal/adapter/http/handler"
	"custodial-voucher/internal/adapter/http/middleware"
	pgStorage "custodial-voucher/internal/adapter/storage/postgres"
	redisStorage "custodial-voucher/internal/adapter/storage/redis"
	"custodial-voucher/internal/core/ports"
	"custodial-voucher/internal/service"
	"custodial-voucher/pkg/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load(os.Getenv("CVS_CONFIG_FILE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New("custodial-voucher", cfg.Log.Level, cfg.Log.Pretty)

	// Missing keys block issuance, so they stop startup.
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	vault, err := service.NewAESVault(cfg.Vault.Key)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize vault")
	}
	signer, err := service.NewEd25519VoucherSigner(cfg.Signer.Key)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize voucher signer")
	}

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("issuer", signer.Address()).
		Msg("Starting Custodial Voucher Service")

	ctx := context.Background()

	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	if cfg.Database.Migrate {
		if err := pgStorage.Migrate(ctx, pool, log); err != nil {
			log.Fatal().Err(err).Msg("Failed to apply migrations")
		}
	}

	healthCheckers := []ports.HealthChecker{pgStorage.NewHealthCheck(pool)}

	// Redis is optional: issuance stays correct on the CAS update alone.
	var (
		issuanceLock   ports.IssuanceLock
		rateLimitStore *redisStorage.RateLimitStore
	)
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()

		issuanceLock = redisStorage.NewIssuanceLock(rdb).WithNamespace(cfg.Redis.KeyPrefix)
		if cfg.RateLimit.Enabled {
			rateLimitStore = redisStorage.NewRateLimitStore(rdb).WithNamespace(cfg.Redis.KeyPrefix)
		}
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	} else {
		log.Warn().Msg("Redis disabled: no issuance lock, no rate limiting")
	}

	reservationRepo := pgStorage.NewReservationRepo(pool)
	walletRepo := pgStorage.NewWalletRepo(pool)
	auditRepo := pgStorage.NewAuditRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	clock := service.SystemClock{}
	auditSvc := service.NewAuditService(auditRepo, logger.Component(log, "audit"))
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer, clock)

	walletSvc := service.NewWalletService(
		walletRepo,
		service.NewEd25519WalletGenerator(),
		vault,
		auditSvc,
		clock,
		logger.Component(log, "wallet"),
	)
	voucherSvc := service.NewVoucherService(
		reservationRepo,
		walletSvc,
		service.NewVoucherBuilder(clock),
		signer,
		transactor,
		issuanceLock,
		auditSvc,
		clock,
		service.VoucherPolicy{
			Issuer:        signer.Address(),
			ExpiryDays:    cfg.Voucher.ExpiryDays,
			IssueAttempts: cfg.Voucher.IssueAttempts,
			LockTTL:       cfg.Voucher.LockTTL,
		},
		logger.Component(log, "lifecycle"),
	)

	gin.SetMode(cfg.Server.Mode)
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		VoucherSvc:     voucherSvc,
		WalletSvc:      walletSvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		RateLimitRules: map[string]middleware.RateLimitRule{
			middleware.GroupVoucherIssue:    rule(cfg.RateLimit.Issue),
			middleware.GroupWalletProvision: rule(cfg.RateLimit.Provision),
			middleware.GroupVoucherCheck:    rule(cfg.RateLimit.Check),
		},
		HealthCheckers: healthCheckers,
		OpenAPISpec:    apidocs.OpenAPI,
		MaxBodyBytes:   cfg.Server.MaxBodyBytes,
		Logger:         log,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	// Pending audit writes finish before the pool closes.
	auditSvc.Wait()
	log.Info().Msg("Server exited")
}

func rule(r config.LimitRule) middleware.RateLimitRule {
	return middleware.RateLimitRule{Limit: r.Limit, Window: r.Window}
}
