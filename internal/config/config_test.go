package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	os.Clearenv()
	cfg := Load()
	if cfg.HTTPAddr != DefaultHTTPAddr {
		t.Errorf("HTTPAddr want %s got %s", DefaultHTTPAddr, cfg.HTTPAddr)
	}
	if cfg.ConsumerWorkers != DefaultConsumerWorkers {
		t.Errorf("ConsumerWorkers want %d got %d", DefaultConsumerWorkers, cfg.ConsumerWorkers)
	}
	if cfg.ChannelSize != DefaultChannelSize {
		t.Errorf("ChannelSize want %d got %d", DefaultChannelSize, cfg.ChannelSize)
	}
	if cfg.SweepInterval != 5*time.Minute {
		t.Errorf("SweepInterval want 5m got %s", cfg.SweepInterval)
	}
	if cfg.SweepLimit != DefaultSweepLimit {
		t.Errorf("SweepLimit want %d got %d", DefaultSweepLimit, cfg.SweepLimit)
	}
	if cfg.ReplaySchedule != DefaultReplaySchedule {
		t.Errorf("ReplaySchedule want %s got %s", DefaultReplaySchedule, cfg.ReplaySchedule)
	}
	if cfg.ReplayStartedMinutesAgo != 70 {
		t.Errorf("ReplayStartedMinutesAgo want 70 got %d", cfg.ReplayStartedMinutesAgo)
	}
	if cfg.ReplayTimeLimit != 5700*time.Second {
		t.Errorf("ReplayTimeLimit want 5700s got %s", cfg.ReplayTimeLimit)
	}
	if cfg.ReplayEnabled() {
		t.Errorf("ReplayEnabled want false without tokens")
	}
	if cfg.SlogLevel() != slog.LevelInfo {
		t.Errorf("SlogLevel want info got %s", cfg.SlogLevel())
	}
}

func TestLoad_FromEnv(t *testing.T) {
	os.Clearenv()
	os.Setenv("HTTP_ADDR", ":9090")
	os.Setenv("CONSUMER_WORKERS", "5")
	os.Setenv("CHANNEL_SIZE", "500")
	os.Setenv("SWEEP_INTERVAL_SEC", "30")
	os.Setenv("GH_TOKENS", "one, two,,three ")
	os.Setenv("DATABASE_URL", "postgres://local/db")
	os.Setenv("DEMO_WEBHOOK_ID", "555")
	os.Setenv("DEMO_INSTALLATION_ID", "777")
	os.Setenv("LOG_LEVEL", "DEBUG")
	cfg := Load()
	if cfg.HTTPAddr != ":9090" {
		t.Errorf("HTTPAddr want :9090 got %s", cfg.HTTPAddr)
	}
	if cfg.ConsumerWorkers != 5 {
		t.Errorf("ConsumerWorkers want 5 got %d", cfg.ConsumerWorkers)
	}
	if cfg.ChannelSize != 500 {
		t.Errorf("ChannelSize want 500 got %d", cfg.ChannelSize)
	}
	if cfg.SweepInterval != 30*time.Second {
		t.Errorf("SweepInterval want 30s got %s", cfg.SweepInterval)
	}
	if len(cfg.GHTokens) != 3 || cfg.GHTokens[1] != "two" || cfg.GHTokens[2] != "three" {
		t.Errorf("GHTokens want [one two three] got %v", cfg.GHTokens)
	}
	if cfg.DatabaseURL != "postgres://local/db" {
		t.Errorf("DatabaseURL want postgres://local/db got %s", cfg.DatabaseURL)
	}
	if cfg.DemoWebhookID != 555 || cfg.DemoInstallationID != 777 {
		t.Errorf("demo ids want 555/777 got %d/%d", cfg.DemoWebhookID, cfg.DemoInstallationID)
	}
	if !cfg.ReplayEnabled() {
		t.Errorf("ReplayEnabled want true")
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("SlogLevel want debug got %s", cfg.SlogLevel())
	}
}

func TestLoad_InvalidValuesUseDefaults(t *testing.T) {
	os.Clearenv()
	os.Setenv("CONSUMER_WORKERS", "0")
	os.Setenv("CHANNEL_SIZE", "-1")
	os.Setenv("SWEEP_INTERVAL_SEC", "soon")
	os.Setenv("DEMO_WEBHOOK_ID", "abc")
	cfg := Load()
	if cfg.ConsumerWorkers != DefaultConsumerWorkers {
		t.Errorf("ConsumerWorkers want %d got %d", DefaultConsumerWorkers, cfg.ConsumerWorkers)
	}
	if cfg.ChannelSize != DefaultChannelSize {
		t.Errorf("ChannelSize want %d got %d", DefaultChannelSize, cfg.ChannelSize)
	}
	if cfg.SweepInterval != DefaultSweepIntervalSec*time.Second {
		t.Errorf("SweepInterval want default got %s", cfg.SweepInterval)
	}
	if cfg.DemoWebhookID != 0 {
		t.Errorf("DemoWebhookID want 0 got %d", cfg.DemoWebhookID)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	os.Clearenv()
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("HTTP_ADDR=:7070\nCHANNEL_SIZE=64\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	os.Setenv("CHANNEL_SIZE", "32")
	cfg := Load(path)
	if cfg.HTTPAddr != ":7070" {
		t.Errorf("HTTPAddr want :7070 got %s", cfg.HTTPAddr)
	}
	if cfg.ChannelSize != 32 {
		t.Errorf("ChannelSize want environment value 32 got %d", cfg.ChannelSize)
	}
}
