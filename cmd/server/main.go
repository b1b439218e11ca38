// Command server runs the production planner HTTP API.
//
//	@title			Factory Planner API
//	@version		1.0
//	@description	Plan factory production lines: catalog lookup, line editing and item/power summaries.
//	@BasePath		/
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						X-API-Key
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

	"golang.org/x/sync/errgroup"

	_ "github.com/osse101/FactoryPlanner_Go/docs"
	"github.com/osse101/FactoryPlanner_Go/internal/bootstrap"
	"github.com/osse101/FactoryPlanner_Go/internal/config"
	"github.com/osse101/FactoryPlanner_Go/internal/production"
	"github.com/osse101/FactoryPlanner_Go/internal/productionline"
	"github.com/osse101/FactoryPlanner_Go/internal/server"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	bootstrap.InitLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cat, err := bootstrap.LoadCatalog(cfg)
	if err != nil {
		return err
	}

	storage, err := bootstrap.InitializeStorage(ctx, cfg)
	if err != nil {
		return err
	}

	svc := productionline.NewService(storage.Lines, cat, production.NewEngine(cat), productionline.CacheConfig{
		Size: cfg.SummaryCacheSize,
		TTL:  cfg.SummaryCacheTTL,
	})

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		Version:        cfg.Version,
		MaxBodyBytes:   cfg.MaxBodyBytes,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	}, cat, svc, storage.Lines)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), bootstrap.ShutdownTimeout)
		defer cancel()
		bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
			Server:  srv,
			Storage: storage,
		})
		return nil
	})

	return g.Wait()
}
