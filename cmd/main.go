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

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/time/rate"

	"campaign-desk/internal/adapter/catalog"
	"campaign-desk/internal/adapter/copywriter"
	httpadapter "campaign-desk/internal/adapter/http"
	"campaign-desk/internal/adapter/ident"
	"campaign-desk/internal/adapter/memory"
	"campaign-desk/internal/adapter/metrics"
	"campaign-desk/internal/adapter/postgres"
	"campaign-desk/internal/adapter/security"
	"campaign-desk/internal/adapter/usecase"
	"campaign-desk/internal/config"
	"campaign-desk/internal/config/configs"
	"campaign-desk/internal/core/domain"
	"campaign-desk/internal/core/port"
	"campaign-desk/internal/db"
)

// main is the entry point of campaign-desk. It loads configuration, wires
// the store, the usecases and the HTTP adapter, then starts the HTTP server.
// On receiving a termination signal it gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler).With(slog.String("env", cfg.Env))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewCollector(reg)

	targeting, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		logger.Error("catalog error", slog.Any("error", err))
		return
	}

	repo, closeStore, err := newStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("store error", slog.Any("error", err))
		return
	}
	defer closeStore()

	provider, err := newCopyProvider(ctx, cfg.Copy)
	if err != nil {
		logger.Error("copy provider error", slog.Any("error", err))
		return
	}
	if provider == nil {
		logger.Warn("no ad copy provider configured, fallback templates will be used")
	} else {
		logger.Info("ad copy provider ready", slog.String("provider", provider.Name()))
	}

	copyUC, err := usecase.NewCopyUseCase(provider, cfg.Copy.Timeout, collector, logger)
	if err != nil {
		logger.Error("copy usecase error", slog.Any("error", err))
		return
	}
	campaigns := usecase.NewCampaignUseCase(repo, targeting, copyUC,
		usecase.NewSynthesizer(usecase.DefaultAnalyticsModel(), nil),
		usecase.CampaignOptions{
			LockReviewed: cfg.Campaign.LockReviewed,
			Metrics:      collector,
			Logger:       logger,
		})

	identity, err := newIdentity(cfg.Auth)
	if err != nil {
		logger.Error("identity error", slog.Any("error", err))
		return
	}
	gate := usecase.NewAuthUseCase(identity, cfg.Auth.Delay, collector, logger)

	tokens, err := newTokenIssuer(cfg.Auth)
	if err != nil {
		logger.Error("token issuer error", slog.Any("error", err))
		return
	}

	if cfg.Store.SeedDemo {
		seeded, err := db.Seed(ctx, campaigns)
		if err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return
		}
		if seeded {
			logger.Info("demo campaigns seeded")
		} else {
			logger.Info("store already holds campaigns, demo seed skipped")
		}
	}

	var limiter *rate.Limiter
	if cfg.Copy.RatePerMinute > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(cfg.Copy.RatePerMinute)/60), max(1, cfg.Copy.RateBurst))
	}

	handler := httpadapter.NewHandler(httpadapter.Deps{
		Campaigns:      campaigns,
		Copy:           copyUC,
		Auth:           gate,
		Tokens:         tokens,
		Metrics:        collector,
		MetricsHandler: metrics.Handler(reg),
		Limiter:        limiter,
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		Logger:         logger,
	})
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()
	exitCode = 0

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}

// newStore returns the configured campaign store and its close function.
func newStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (port.CampaignRepository, func(), error) {
	ids := ident.NewGenerator()
	if cfg.Store.Driver != configs.StorePostgres {
		logger.Info("using in-memory campaign store")
		return memory.NewCampaignRepository(ids), func() {}, nil
	}

	// Optionally run migrations if configured. We use the Psql sub-config.
	if cfg.Psql.RunMigrations {
		if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied successfully")
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("using postgres campaign store")
	return postgres.NewCampaignRepository(pool, ids), pool.Close, nil
}

// newCopyProvider returns nil when the selected provider has no credential.
func newCopyProvider(ctx context.Context, cfg configs.Copy) (port.CopyProvider, error) {
	switch cfg.Provider {
	case configs.ProviderOpenAI:
		if cfg.OpenAIKey == "" {
			return nil, nil
		}
		return copywriter.NewOpenAI(cfg.OpenAIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL, &http.Client{Timeout: cfg.Timeout})
	case configs.ProviderBedrock:
		return copywriter.NewBedrock(ctx, cfg.AWSRegion, cfg.BedrockModelID)
	default:
		return nil, nil
	}
}

func newIdentity(cfg configs.Auth) (*security.StaticIdentity, error) {
	user := domain.User{ID: cfg.UserID, Email: cfg.Email, DisplayName: cfg.DisplayName}
	if cfg.PasswordHash != "" {
		return security.NewStaticIdentityFromHash(user, cfg.PasswordHash)
	}
	return security.NewStaticIdentity(user, cfg.Password, 0)
}

func newTokenIssuer(cfg configs.Auth) (*security.JWTIssuer, error) {
	if cfg.JWTSecret == "" {
		return security.NewEphemeralJWTIssuer(cfg.TokenTTL)
	}
	return security.NewJWTIssuer(cfg.JWTSecret, cfg.TokenTTL)
}
