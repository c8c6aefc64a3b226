package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetup_AddsSubsystem(t *testing.T) {
	previous := slog.Default()
	defer slog.SetDefault(previous)

	var buf bytes.Buffer
	Setup(&buf, "debug")
	Info("period created", Notifications, "id", 7)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "period created", line["msg"])
	require.Equal(t, string(Notifications), line["subsystem"])
	require.Equal(t, float64(7), line["id"])
}

func TestSetup_LevelFilters(t *testing.T) {
	previous := slog.Default()
	defer slog.SetDefault(previous)

	var buf bytes.Buffer
	Setup(&buf, "warn")
	Info("hidden", App)
	Debug("hidden", App)
	require.Zero(t, buf.Len())

	Warn("shown", App)
	require.NotZero(t, buf.Len())
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	require.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	require.Equal(t, slog.LevelError, ParseLevel("error"))
	require.Equal(t, slog.LevelInfo, ParseLevel(""))
}

func TestWithNoopLogger(t *testing.T) {
	previous := slog.Default()
	defer slog.SetDefault(previous)

	var buf bytes.Buffer
	Setup(&buf, "debug")
	result, err := WithNoopLogger(func() (any, error) {
		Error("swallowed", Client)
		return 42, nil
	})
	require.NoError(t, err)
	require.Equal(t, 42, result)
	require.Zero(t, buf.Len())
}
