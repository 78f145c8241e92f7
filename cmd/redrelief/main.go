package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/redrelief/internal/config"
	"github.com/kailas-cloud/redrelief/internal/db"
	dbRedis "github.com/kailas-cloud/redrelief/internal/db/redis"
	dbValkey "github.com/kailas-cloud/redrelief/internal/db/valkey"
	"github.com/kailas-cloud/redrelief/internal/identity"
	logpkg "github.com/kailas-cloud/redrelief/internal/logger"
	"github.com/kailas-cloud/redrelief/internal/metrics"
	bankrepo "github.com/kailas-cloud/redrelief/internal/repository/bank"
	campaignrepo "github.com/kailas-cloud/redrelief/internal/repository/campaign"
	inventoryrepo "github.com/kailas-cloud/redrelief/internal/repository/inventory"
	"github.com/kailas-cloud/redrelief/internal/repository/ratelimit"
	requestrepo "github.com/kailas-cloud/redrelief/internal/repository/request"
	chiTransport "github.com/kailas-cloud/redrelief/internal/transport/chi"
	bankuc "github.com/kailas-cloud/redrelief/internal/usecase/bank"
	campaignuc "github.com/kailas-cloud/redrelief/internal/usecase/campaign"
	healthuc "github.com/kailas-cloud/redrelief/internal/usecase/health"
	inventoryuc "github.com/kailas-cloud/redrelief/internal/usecase/inventory"
	requestuc "github.com/kailas-cloud/redrelief/internal/usecase/request"
	searchuc "github.com/kailas-cloud/redrelief/internal/usecase/search"
	"github.com/kailas-cloud/redrelief/internal/version"
)

// indexed is a repository that owns a search index.
type indexed interface {
	EnsureIndex(ctx context.Context) error
	IndexReady(ctx context.Context) (bool, error)
}

func main() {
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting RedRelief API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("db_driver", cfg.Database.Driver),
		zap.Strings("db_addrs", cfg.Database.Addrs),
		zap.String("key_prefix", cfg.Storage.KeyPrefix),
	)

	var store db.Store
	switch cfg.Database.Driver {
	case "valkey":
		store, err = dbValkey.NewStore(dbValkey.Config{
			Addrs:    cfg.Database.Addrs,
			Password: cfg.Database.Password,
		})
	case "redis":
		store, err = dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Database.Addrs,
			Password: cfg.Database.Password,
		})
	default:
		logger.Fatal("Unknown database driver", zap.String("driver", cfg.Database.Driver))
	}
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}
	logger.Info("Connected to database")

	prefix := cfg.Storage.KeyPrefix
	invRepo := inventoryrepo.New(store, prefix)
	bankRepo := bankrepo.New(store, prefix)
	reqRepo := requestrepo.New(store, prefix)
	campRepo := campaignrepo.New(store, prefix)

	indexes := map[string]indexed{
		"inventory": invRepo,
		"banks":     bankRepo,
		"requests":  reqRepo,
		"campaigns": campRepo,
	}
	if cfg.Storage.ShouldCreateIndexes() {
		ensureIndexes(ctx, indexes, logger)
	}
	checkers := make(map[string]healthuc.IndexChecker, len(indexes))
	for name, ix := range indexes {
		checkers[name] = ix
	}

	recorder := metrics.Recorder{}
	services := chiTransport.Services{
		Search:    searchuc.New(invRepo, bankRepo, recorder),
		Campaigns: campaignuc.New(campRepo, recorder),
		Inventory: inventoryuc.New(invRepo, bankRepo),
		Banks:     bankuc.New(bankRepo, invRepo),
		Requests:  requestuc.New(reqRepo),
		Health:    healthuc.New(store, checkers),
	}

	verifier, err := buildVerifier(&cfg.Auth)
	if err != nil {
		logger.Fatal("Failed to configure token verification", zap.Error(err))
	}

	opts := chiTransport.Options{
		Verifier:              verifier,
		AdminRole:             cfg.Auth.AdminRole,
		RequireAdminForStatus: cfg.Auth.RequireAdminForStatus,
		AllowedOrigins:        cfg.CORS.AllowedOrigins,
	}
	if cfg.RateLimit.IsEnabled() {
		opts.Limiter = ratelimit.New(store, prefix, cfg.RateLimit.Requests,
			time.Duration(cfg.RateLimit.WindowSec)*time.Second)
	}

	server := chiTransport.NewServer(services, opts, logger)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      server.Routes(),
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server",
			zap.String("addr", addr),
			zap.Bool("auth", verifier != nil),
			zap.Bool("rate_limit", opts.Limiter != nil),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// ensureIndexes creates missing search indexes. Failures are logged and the
// affected listings run on the scan path.
func ensureIndexes(ctx context.Context, indexes map[string]indexed, logger *zap.Logger) {
	for name, ix := range indexes {
		if err := ix.EnsureIndex(ctx); err != nil {
			logger.Warn("Search index unavailable, listings will scan",
				zap.String("collection", name), zap.Error(err))
			continue
		}
		logger.Info("Search index ready", zap.String("collection", name))
	}
}

// buildVerifier returns nil when auth is not configured.
func buildVerifier(cfg *config.AuthConfig) (*identity.Verifier, error) {
	switch {
	case cfg.HMACSecret != "":
		return identity.NewHMACVerifier(cfg.HMACSecret, cfg.Issuer, cfg.Audience), nil
	case cfg.PublicKeyFile != "":
		v, err := identity.NewRSAVerifierFromFile(cfg.PublicKeyFile, cfg.Issuer, cfg.Audience)
		if err != nil {
			return nil, fmt.Errorf("load public key: %w", err)
		}
		return v, nil
	default:
		return nil, nil
	}
}
