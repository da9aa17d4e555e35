package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration from environment.
type Config struct {
	DatabaseURL     string
	HTTPAddr        string
	ConsumerWorkers int
	ChannelSize     int
	SweepInterval   time.Duration
	SweepGrace      time.Duration
	SweepLimit      int

	GHTokens                []string
	GHAPIURL                string
	ReplaySchedule          string
	ReplayStartedMinutesAgo int
	ReplayTimeLimit         time.Duration
	DemoWebhookID           int64
	DemoInstallationID      int64

	CostConfigPath string
	LogLevel       string
	LogFormat      string
}

// Default values when env vars are unset.
const (
	DefaultHTTPAddr                = ":8080"
	DefaultConsumerWorkers         = 3
	DefaultChannelSize             = 1000
	DefaultSweepIntervalSec        = 300
	DefaultSweepGraceSec           = 60
	DefaultSweepLimit              = 10000
	DefaultReplaySchedule          = "46 * * * *"
	DefaultReplayStartedMinutesAgo = 70
	DefaultReplayTimeLimitSec      = 5700
	DefaultLogLevel                = "info"
	DefaultLogFormat               = "text"
)

// Load reads configuration from the environment.
// Variables from the given .env files (default ".env") are merged first without overriding the
// environment; missing files are ignored. Uses defaults for optional values when unset.
func Load(envFiles ...string) *Config {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("load env file", "err", err)
	}
	c := &Config{
		DatabaseURL:             os.Getenv("DATABASE_URL"),
		HTTPAddr:                DefaultHTTPAddr,
		ConsumerWorkers:         DefaultConsumerWorkers,
		ChannelSize:             DefaultChannelSize,
		SweepInterval:           DefaultSweepIntervalSec * time.Second,
		SweepGrace:              DefaultSweepGraceSec * time.Second,
		SweepLimit:              DefaultSweepLimit,
		GHTokens:                splitList(os.Getenv("GH_TOKENS")),
		GHAPIURL:                os.Getenv("GH_API_URL"),
		ReplaySchedule:          DefaultReplaySchedule,
		ReplayStartedMinutesAgo: DefaultReplayStartedMinutesAgo,
		ReplayTimeLimit:         DefaultReplayTimeLimitSec * time.Second,
		CostConfigPath:          os.Getenv("COST_CONFIG_PATH"),
		LogLevel:                DefaultLogLevel,
		LogFormat:               DefaultLogFormat,
	}
	if v := os.Getenv("HTTP_ADDR"); v != "" {
		c.HTTPAddr = v
	}
	if v := os.Getenv("REPLAY_SCHEDULE"); v != "" {
		c.ReplaySchedule = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		c.LogFormat = strings.ToLower(v)
	}
	positiveInt("CONSUMER_WORKERS", &c.ConsumerWorkers)
	positiveInt("CHANNEL_SIZE", &c.ChannelSize)
	positiveInt("SWEEP_LIMIT", &c.SweepLimit)
	positiveInt("REPLAY_STARTED_MINUTES_AGO", &c.ReplayStartedMinutesAgo)
	positiveSeconds("SWEEP_INTERVAL_SEC", &c.SweepInterval)
	positiveSeconds("SWEEP_GRACE_SEC", &c.SweepGrace)
	positiveSeconds("REPLAY_TIME_LIMIT_SEC", &c.ReplayTimeLimit)
	if v := os.Getenv("DEMO_WEBHOOK_ID"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.DemoWebhookID = n
		}
	}
	if v := os.Getenv("DEMO_INSTALLATION_ID"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.DemoInstallationID = n
		}
	}
	return c
}

// ReplayEnabled reports whether the replay scheduler has credentials and a demo webhook to act as.
func (c *Config) ReplayEnabled() bool {
	return len(c.GHTokens) > 0 && c.DemoWebhookID != 0
}

// SlogLevel maps LogLevel onto slog levels; unknown values mean info.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func positiveInt(key string, dst *int) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			*dst = n
		}
	}
}

func positiveSeconds(key string, dst *time.Duration) {
	n := 0
	positiveInt(key, &n)
	if n > 0 {
		*dst = time.Duration(n) * time.Second
	}
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
