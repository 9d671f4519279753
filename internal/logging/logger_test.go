package logging_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvmath/internal/logging"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]logging.Level{
		"debug":   logging.LevelDebug,
		"INFO":    logging.LevelInfo,
		"":        logging.LevelInfo,
		" warn ":  logging.LevelWarn,
		"warning": logging.LevelWarn,
		"error":   logging.LevelError,
	}
	for in, want := range cases {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := logging.ParseLevel("loud")
	require.ErrorIs(t, err, logging.ErrUnknownLevel)
	assert.Equal(t, "warn", logging.LevelWarn.String())
}

func TestLogger_FieldsReachZap(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := logging.FromZap(zap.New(core))

	boom := errors.New("boom")
	l.With(logging.String("run_id", "r1")).Info("scenario done",
		logging.Int("index", 3),
		logging.Bool("pass", true),
		logging.Float64("tolerance", 1e-9),
		logging.Duration("elapsed", time.Millisecond),
		logging.Uint64("fingerprint", 42),
		logging.Int64("bytes", -1),
		logging.Error(boom),
		logging.Stringer("level", logging.LevelWarn),
		logging.Any("point", []float64{5, 0}),
	)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "scenario done", entry.Message)
	ctx := entry.ContextMap()
	assert.Equal(t, "r1", ctx["run_id"])
	assert.Equal(t, int64(3), ctx["index"])
	assert.Equal(t, true, ctx["pass"])
	assert.Equal(t, 1e-9, ctx["tolerance"])
	assert.Equal(t, time.Millisecond, ctx["elapsed"])
	assert.Equal(t, uint64(42), ctx["fingerprint"])
	assert.Equal(t, "boom", ctx["error"])
	assert.Equal(t, "warn", ctx["level"])
}

func TestLogger_LevelThreshold(t *testing.T) {
	var buf bytes.Buffer
	l := logging.NewWriter(logging.LevelWarn, &buf)
	l.Info("dropped")
	l.Warn("kept", logging.String("k", "v"))
	require.NoError(t, l.Sync())

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line), "exactly one JSON line")
	assert.Equal(t, "kept", line["msg"])
	assert.Equal(t, "v", line["k"])

	l.SetLevel(logging.LevelDebug)
	assert.Equal(t, logging.LevelDebug, l.GetLevel())
	buf.Reset()
	l.Debug("now visible")
	assert.Contains(t, buf.String(), "now visible")
}

func TestNop(t *testing.T) {
	l := logging.Nop()
	assert.NotPanics(t, func() {
		l.With(logging.String("a", "b")).Error("ignored", logging.Error(errors.New("x")))
	})
}
