package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/sns-consult-backend/internal/http"
	"github.com/yungbote/sns-consult-backend/internal/observability"
	"github.com/yungbote/sns-consult-backend/internal/platform/envutil"
	"github.com/yungbote/sns-consult-backend/internal/platform/logger"
)

type App struct {
	Log      *logger.Logger
	Router   *gin.Engine
	Cfg      Config
	Clients  Clients
	Services Services

	shutdownOtel func(context.Context) error
}

func New(ctx context.Context) (*App, error) {
	log, err := logger.New(envutil.String("LOG_MODE", "development"), envutil.String("LOG_LEVEL", ""))
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading environment variables...")
	cfg := LoadConfig(log)

	shutdownOtel := observability.InitOTel(ctx, log, observability.OtelConfig{
		ServiceName: observability.ServiceName,
		Environment: cfg.Environment,
		Version:     cfg.Version,
	})
	var metrics *observability.Metrics
	if observability.Enabled() {
		metrics = observability.Init(log)
	}

	corpus, err := loadCorpus(ctx, log, cfg)
	if err != nil {
		log.Sync()
		return nil, err
	}

	clients, err := wireClients(ctx, log)
	if err != nil {
		log.Sync()
		return nil, err
	}

	serviceset := wireServices(log, cfg, clients, corpus)
	handlerset := wireHandlers(log, cfg, serviceset, len(corpus))
	router := wireRouter(log, cfg, handlerset, metrics)

	return &App{
		Log:          log,
		Router:       router,
		Cfg:          cfg,
		Clients:      clients,
		Services:     serviceset,
		shutdownOtel: shutdownOtel,
	}, nil
}

// Run serves until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.Router == nil {
		return fmt.Errorf("app not initialized")
	}
	addr := ":" + a.Cfg.Port
	a.Log.Info("HTTP server listening", "addr", addr)
	srv := &http.Server{Engine: a.Router}
	return srv.Run(ctx, addr)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.shutdownOtel != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := a.shutdownOtel(ctx); err != nil && a.Log != nil {
			a.Log.Warn("otel shutdown failed", "error", err)
		}
		cancel()
	}
	if a.Clients.Artifacts != nil {
		if err := a.Clients.Artifacts.Close(); err != nil && a.Log != nil {
			a.Log.Warn("artifact store close failed", "error", err)
		}
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
