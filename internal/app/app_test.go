package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/actions-insider/webhook-ingest/internal/config"
	"github.com/actions-insider/webhook-ingest/internal/replay"
)

func TestNew_SQLite(t *testing.T) {
	cfg := &config.Config{
		DatabaseURL:             "sqlite://" + filepath.Join(t.TempDir(), "app.db"),
		GHTokens:                []string{"a"},
		DemoWebhookID:           1,
		ReplayStartedMinutesAgo: 70,
		ReplayTimeLimit:         time.Minute,
	}
	a, err := New(context.Background(), cfg)
	require.NoError(t, err)
	defer a.Close()

	require.NoError(t, a.Store.Ping(context.Background()))
	require.Equal(t, 0.008, a.Rates.Rates["ubuntu-latest"])

	d, err := a.NewDriver()
	require.NoError(t, err)
	require.NotNil(t, d)
	require.NotNil(t, a.NewScheduler())
}

func TestNew_Errors(t *testing.T) {
	_, err := New(context.Background(), &config.Config{})
	require.Error(t, err)

	_, err = New(context.Background(), &config.Config{
		DatabaseURL:    "sqlite://" + filepath.Join(t.TempDir(), "app.db"),
		CostConfigPath: filepath.Join(t.TempDir(), "missing.yaml"),
	})
	require.Error(t, err)
}

func TestNewDriver_RequiresTokens(t *testing.T) {
	a, err := New(context.Background(), &config.Config{DatabaseURL: "sqlite://" + filepath.Join(t.TempDir(), "app.db")})
	require.NoError(t, err)
	defer a.Close()

	_, err = a.NewDriver()
	require.ErrorIs(t, err, replay.ErrNoTokens)
}
