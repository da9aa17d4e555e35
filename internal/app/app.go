// Package app wires the components shared by the server and the ops CLI.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/actions-insider/webhook-ingest/internal/config"
	"github.com/actions-insider/webhook-ingest/internal/costs"
	"github.com/actions-insider/webhook-ingest/internal/github"
	"github.com/actions-insider/webhook-ingest/internal/ingest"
	"github.com/actions-insider/webhook-ingest/internal/processor"
	"github.com/actions-insider/webhook-ingest/internal/reconcile"
	"github.com/actions-insider/webhook-ingest/internal/replay"
	"github.com/actions-insider/webhook-ingest/internal/store"
)

// App holds the wired ingestion pipeline.
type App struct {
	Config    *config.Config
	Store     *store.SQL
	Receiver  *ingest.Receiver
	Processor *processor.Processor
	Rates     *costs.Rates
}

// SetupLogging installs the default slog logger from LOG_LEVEL and LOG_FORMAT.
func SetupLogging(cfg *config.Config) {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	var h slog.Handler
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		h = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(h))
}

// New opens the store, applies the schema and wires the pipeline.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	rates, err := costs.LoadRates(cfg.CostConfigPath)
	if err != nil {
		return nil, err
	}
	st, err := store.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	if err := st.Migrate(ctx); err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	slog.Info("database ready", "dialect", st.Dialect())
	return &App{
		Config:    cfg,
		Store:     st,
		Receiver:  ingest.NewReceiver(st),
		Processor: processor.NewProcessor(st, reconcile.NewReconciler(st, nil)),
		Rates:     rates,
	}, nil
}

// Close releases the store.
func (a *App) Close() error {
	return a.Store.Close()
}

// NewDriver returns a replay driver with its own token pool.
func (a *App) NewDriver() (*replay.Driver, error) {
	client := github.NewClient("")
	client.BaseURL = a.Config.GHAPIURL
	return replay.NewDriver(a.Store, a.Receiver, a.Processor, replay.GitHubClients(client), a.Config.GHTokens, replay.Demo{
		WebhookID:      a.Config.DemoWebhookID,
		InstallationID: a.Config.DemoInstallationID,
	})
}

// NewScheduler returns the periodic replay scheduler.
func (a *App) NewScheduler() *replay.Scheduler {
	return replay.NewScheduler(a.Store, a.NewDriver, a.Config.ReplaySchedule,
		time.Duration(a.Config.ReplayStartedMinutesAgo)*time.Minute, a.Config.ReplayTimeLimit)
}
