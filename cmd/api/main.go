package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"campaignfinance/internal/adapter/cache"
	"campaignfinance/internal/adapter/repo"
	"campaignfinance/internal/domain"
	"campaignfinance/internal/http/handlers"
	httpapi "campaignfinance/internal/http/httpapi"
	"campaignfinance/internal/infra"
	"campaignfinance/internal/infra/geoip"
)

func main() {
	cfg, err := infra.LoadConfig()
	if err != nil {
		boot := zerolog.New(os.Stderr)
		boot.Fatal().Err(err).Msg("invalid configuration")
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := infra.SetupTracing(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to set up tracing")
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Error().Err(err).Msg("failed to flush traces")
		}
	}()

	if cfg.AutoMigrate {
		reports, err := infra.Migrate(ctx, cfg.DatabaseURL, infra.MigrateUp)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to apply migrations")
		}
		logger.Info().Int("applied", len(reports)).Msg("migrations up to date")
	}

	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	runner := infra.NewSQLRunner(dbpool, logger)

	var (
		committees   domain.CommitteeRepository   = repo.NewCommitteeRepository(runner)
		contributors domain.ContributorRepository = repo.NewContributorRepository(runner)
	)
	if cfg.RedisURL != "" {
		store, err := cache.NewRedisStore(ctx, cfg.RedisURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect redis")
		}
		defer store.Close()
		committees = cache.NewCommitteeRepository(committees, store, cfg.CacheTTL, logger)
		contributors = cache.NewContributorRepository(contributors, store, cfg.CacheTTL, logger)
		logger.Info().Dur("ttl", cfg.CacheTTL).Msg("response cache enabled")
	}

	resolver, err := geoip.Open(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip disabled")
	}
	defer resolver.Close()

	app := &handlers.App{
		Config:        cfg,
		Logger:        logger,
		Committees:    committees,
		Contributors:  contributors,
		Contributions: repo.NewContributionRepository(runner),
		Expenditures:  repo.NewExpenditureRepository(runner),
	}
	router := httpapi.NewRouter(app, resolver.Lookup())
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Str("addr", server.Addr()).Str("env", cfg.AppEnv).Msg("API listening")
		if err := server.Start(); err != nil {
			logger.Error().Err(err).Msg("http server failed")
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
