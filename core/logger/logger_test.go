package logger_test

import (
	"testing"

	"translations-manager/core/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     logger.Config
		enabled zapcore.Level
		blocked []zapcore.Level
	}{
		{name: "debug console", cfg: logger.Config{Level: "debug", Format: "console"}, enabled: zapcore.DebugLevel},
		{name: "info json", cfg: logger.Config{Level: "info", Format: "json"}, enabled: zapcore.InfoLevel, blocked: []zapcore.Level{zapcore.DebugLevel}},
		{name: "warn console", cfg: logger.Config{Level: "warn", Format: "console"}, enabled: zapcore.WarnLevel, blocked: []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel}},
		{name: "unknown level falls back to info", cfg: logger.Config{Level: "loud", Format: "json"}, enabled: zapcore.InfoLevel, blocked: []zapcore.Level{zapcore.DebugLevel}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := logger.New(&tt.cfg)
			require.NoError(t, err)
			require.NotNil(t, l)

			assert.True(t, l.Core().Enabled(tt.enabled))
			for _, lvl := range tt.blocked {
				assert.False(t, l.Core().Enabled(lvl))
			}
		})
	}
}

func TestWithRunID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	id := logger.NewRunID()
	_, err := uuid.Parse(id)
	require.NoError(t, err)

	logger.WithRunID(base, id).Info("hello")
	logger.WithRunID(base, "").Info("plain")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, id, entries[0].ContextMap()["run_id"])
	_, ok := entries[1].ContextMap()["run_id"]
	assert.False(t, ok)
}
