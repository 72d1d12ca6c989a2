// Package logger_test contains tests for the logger package
package logger_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flashmind/flashmind-api/internal/config"
	"github.com/flashmind/flashmind-api/internal/platform/logger"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
	}{
		{name: "debug level", logLevel: "debug"},
		{name: "info level", logLevel: "info"},
		{name: "warn level", logLevel: "warn"},
		{name: "error level", logLevel: "error"},
		{name: "case insensitive", logLevel: "INFO"},
		{name: "invalid level falls back to info", logLevel: "verbose"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := logger.Setup(config.ServerConfig{Port: 8080, LogLevel: tt.logLevel})
			require.NoError(t, err)
			require.NotNil(t, log, "Setup should return a usable logger")
		})
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	// An empty context must still yield a usable logger so call sites can
	// log unconditionally.
	ctx := context.Background()
	got := logger.FromContext(ctx)
	require.NotNil(t, got, "empty context should fall back to the default logger")
	assert.NotPanics(t, func() { got.Error("fallback logger is callable") })

	stored := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx = logger.WithLogger(ctx, stored)
	assert.Same(t, stored, logger.FromContext(ctx))
}

func TestFromContextOrDefault(t *testing.T) {
	t.Parallel()

	def := slog.New(slog.NewTextHandler(io.Discard, nil))

	// Falls back to the provided default
	got := logger.FromContextOrDefault(context.Background(), def)
	assert.Same(t, def, got)

	// Context logger wins over the default
	stored := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := logger.WithLogger(context.Background(), stored)
	got = logger.FromContextOrDefault(ctx, def)
	assert.Same(t, stored, got)

	// Nil default falls back to slog.Default
	got = logger.FromContextOrDefault(context.Background(), nil)
	assert.NotNil(t, got)
}
