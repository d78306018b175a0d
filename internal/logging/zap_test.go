package logging

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObserved(t *testing.T) (*ZapLogger, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	return NewZapLogger(zap.New(core)), logs
}

func TestZapLogger_Levels(t *testing.T) {
	log, logs := newObserved(t)
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)

	entries := logs.All()
	require.Len(t, entries, 4)

	want := []struct {
		level zapcore.Level
		msg   string
		key   string
	}{
		{zapcore.DebugLevel, "dbg", "a"},
		{zapcore.InfoLevel, "inf", "b"},
		{zapcore.WarnLevel, "wrn", "c"},
		{zapcore.ErrorLevel, "err", "d"},
	}
	for i, w := range want {
		assert.Equal(t, w.level, entries[i].Level)
		assert.Equal(t, w.msg, entries[i].Message)
		assert.Contains(t, entries[i].ContextMap(), w.key)
	}
}

func TestZapLogger_WithAddsFields(t *testing.T) {
	log, logs := newObserved(t)

	log.With("component", "session").Info(context.Background(), "restored", "user", "alice")

	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "session", fields["component"])
	assert.Equal(t, "alice", fields["user"])
}

func TestZapLogger_RequestIDFromContext(t *testing.T) {
	log, logs := newObserved(t)

	ctx := WithRequestID(context.Background(), "req-42")
	log.Info(ctx, "request done")

	assert.Equal(t, "req-42", logs.All()[0].ContextMap()["request_id"])
}

func TestRequestID_Missing(t *testing.T) {
	_, ok := RequestID(context.Background())
	assert.False(t, ok)
}

func TestLevelFromString(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, levelFromString("DEBUG"))
	assert.Equal(t, zapcore.WarnLevel, levelFromString("warning"))
	assert.Equal(t, zapcore.ErrorLevel, levelFromString("error"))
	assert.Equal(t, zapcore.InfoLevel, levelFromString("bogus"))
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")

	log, err := New(Config{Level: "info", OutputPath: path})
	require.NoError(t, err)

	log.Info(context.Background(), "hello", "k", "v")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.Contains(t, string(data), `"k":"v"`)
}

func TestNewNop_DoesNotPanic(t *testing.T) {
	log := NewNop()
	require.NotPanics(t, func() {
		log.Info(context.Background(), "ignored")
		log.With("a", 1).Error(context.Background(), "ignored")
	})
}
