package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/actions-insider/webhook-ingest/internal/app"
	"github.com/actions-insider/webhook-ingest/internal/config"
	"github.com/actions-insider/webhook-ingest/internal/pubsub"
	"github.com/actions-insider/webhook-ingest/internal/server"
)

func main() {
	cfg := config.Load()
	app.SetupLogging(cfg)

	slog.Info("starting", "consumer_workers", cfg.ConsumerWorkers, "channel_size", cfg.ChannelSize,
		"http_addr", cfg.HTTPAddr, "sweep_interval", cfg.SweepInterval, "replay", cfg.ReplayEnabled())

	ctx := context.Background()
	a, err := app.New(ctx, cfg)
	if err != nil {
		slog.Error("setup", "err", err)
		os.Exit(1)
	}
	defer a.Close()

	// Bounded channel for backpressure
	jobs := make(chan pubsub.EventJob, cfg.ChannelSize)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Consumer workers
	cons := pubsub.NewConsumer(a.Processor, jobs)
	var wg sync.WaitGroup
	for i := 0; i < cfg.ConsumerWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cons.Run(runCtx)
		}()
	}
	slog.Info("consumer workers started", "workers", cfg.ConsumerWorkers)

	// Retry sweep
	sweeper := pubsub.NewSweeper(a.Store, jobs, cfg.SweepInterval, cfg.SweepGrace, cfg.SweepLimit)
	wg.Add(1)
	go func() {
		defer wg.Done()
		sweeper.Run(runCtx)
	}()

	// Demo replay
	if cfg.ReplayEnabled() {
		sched := a.NewScheduler()
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := sched.Run(runCtx); err != nil {
				slog.Error("replay scheduler", "err", err)
			}
		}()
	} else {
		slog.Info("replay disabled", "reason", "GH_TOKENS or DEMO_WEBHOOK_ID unset")
	}

	// HTTP server
	enqueue := func(id int64) {
		if !pubsub.TryEnqueue(jobs, pubsub.EventJob{EventID: id}) {
			slog.Warn("queue full, event left for sweep", "event_id", id)
		}
	}
	srv := server.NewServer(cfg.HTTPAddr, a.Store, a.Receiver, enqueue, a.Rates)
	go func() {
		slog.Info("http server listening", "addr", cfg.HTTPAddr)
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			slog.Error("http server", "err", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	s := <-sig
	slog.Info("shutting down", "signal", s.String())

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Warn("http server shutdown", "err", err)
	} else {
		slog.Info("http server stopped")
	}

	cancel()
	wg.Wait()
	slog.Info("workers stopped")
}
