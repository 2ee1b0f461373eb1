package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedZap(t *testing.T) (*ZapLogger, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	return NewZapLogger(zap.New(core).Sugar()), logs
}

func TestZapLogger_LevelsAndFields(t *testing.T) {
	log, logs := newObservedZap(t)
	ctx := context.Background()

	log.Info(ctx, "points fetched", "count", 3)
	log.Warn(ctx, "stale result discarded")
	log.Error(ctx, "fetch failed", "err", "boom")

	entries := logs.All()
	require.Len(t, entries, 3)

	require.Equal(t, "points fetched", entries[0].Message)
	require.Equal(t, int64(3), entries[0].ContextMap()["count"])
	require.Equal(t, zapcore.WarnLevel, entries[1].Level)
	require.Equal(t, "boom", entries[2].ContextMap()["err"])
}

func TestZapLogger_With_PropagatesFields(t *testing.T) {
	log, logs := newObservedZap(t)

	child := log.With("component", "lister")
	child.Info(context.Background(), "applied filter")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "lister", entries[0].ContextMap()["component"])
}
