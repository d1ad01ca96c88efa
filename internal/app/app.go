package app

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/yungbote/connective-drills/internal/config"
	"github.com/yungbote/connective-drills/internal/data/db"
	httpserver "github.com/yungbote/connective-drills/internal/http"
	"github.com/yungbote/connective-drills/internal/observability"
	"github.com/yungbote/connective-drills/internal/platform/logger"
)

type App struct {
	Log     *logger.Logger
	DB      *gorm.DB
	Cfg     *config.Config
	Metrics *observability.Metrics
	Repos   Repos
	Clients Clients
	Server  *httpserver.Server

	store        *db.Service
	otelShutdown func(context.Context) error
}

// New loads nothing itself; callers pass a validated config.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	log, err := logger.New(cfg.Log.Mode, cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	otelShutdown := observability.InitOTel(ctx, log, cfg.Otel)

	var metrics *observability.Metrics
	if cfg.Metrics.Enabled {
		metrics = observability.Init(log)
	}

	store, err := db.NewService(cfg.DB, log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init db: %w", err)
	}
	if err := store.AutoMigrateAll(); err != nil {
		_ = store.Close()
		log.Sync()
		return nil, fmt.Errorf("db automigrate: %w", err)
	}
	theDB := store.DB()
	if sqlDB, err := theDB.DB(); err == nil {
		if err := metrics.RegisterDBStats(sqlDB, cfg.DB.Driver); err != nil {
			log.Warn("db stats collector not registered", "error", err)
		}
	}

	reposet := wireRepos(theDB, log)
	clientset, err := wireClients(cfg, log)
	if err != nil {
		_ = store.Close()
		log.Sync()
		return nil, err
	}
	usecases := wireUsecases(cfg, log, reposet, clientset, metrics)
	handlerset := wireHandlers(log, usecases, theDB, clientset)

	server := httpserver.NewServer(httpserver.RouterConfig{
		Log:              log,
		Metrics:          metrics,
		MetricsPath:      cfg.Metrics.Path,
		ServiceName:      otelServiceName(cfg),
		AllowedOrigins:   cfg.HTTP.AllowedOrigins,
		MaxBodyBytes:     cfg.HTTP.MaxBodyBytes,
		ChallengeHandler: handlerset.Challenge,
		SpecHandler:      handlerset.Spec,
		HealthHandler:    handlerset.Health,
	}, cfg.HTTP.Addr, cfg.HTTP.ReadHeaderTimeout)

	return &App{
		Log:          log,
		DB:           theDB,
		Cfg:          cfg,
		Metrics:      metrics,
		Repos:        reposet,
		Clients:      clientset,
		Server:       server,
		store:        store,
		otelShutdown: otelShutdown,
	}, nil
}

func otelServiceName(cfg *config.Config) string {
	if !cfg.Otel.Enabled {
		return ""
	}
	return cfg.Otel.ServiceName
}

// Run serves HTTP until ctx is canceled or the server fails.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.Server == nil {
		return fmt.Errorf("app not initialized")
	}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.Server.Run(gctx, a.Cfg.HTTP.ShutdownTimeout)
	})
	return g.Wait()
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.otelShutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := a.otelShutdown(ctx); err != nil {
			a.Log.Warn("otel shutdown failed", "error", err)
		}
		cancel()
	}
	if a.Clients.Cache != nil {
		_ = a.Clients.Cache.Close()
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.Log.Warn("db close failed", "error", err)
		}
	}
	a.Log.Sync()
}
