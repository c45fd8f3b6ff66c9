package main

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/ontomap/config"
)

func TestAppStartStopWithoutOptionalComponents(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.NATS.URL = ""
	cfg.Metrics.ListenAddr = ""

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	app := NewApp(cfg, logger)

	require.NoError(t, app.Start())
	assert.Nil(t, app.natsConn)
	assert.Nil(t, app.metricsServer)

	app.Stop()
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLogLevel(tt.input), "level %q", tt.input)
	}
}

func TestRootCmdFlags(t *testing.T) {
	cmd := rootCmd()

	for _, name := range []string{"config", "output", "log-level", "watch"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "flag %q should be registered", name)
	}

	version, _, err := cmd.Find([]string{"version"})
	require.NoError(t, err)
	assert.Equal(t, "version", version.Name())
}
