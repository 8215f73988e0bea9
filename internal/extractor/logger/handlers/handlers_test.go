package handlers

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTextHandler(t *testing.T) {
	type testCase struct {
		name     string
		level    slog.Level
		logFunc  func(l *slog.Logger)
		expected string
	}

	testCases := []testCase{
		{
			name:  "Message with attrs",
			level: slog.LevelInfo,
			logFunc: func(l *slog.Logger) {
				l.Info("page written", slog.Int("page", 3), slog.Int64("rows", 20))
			},
			expected: "INFO page written page=3 rows=20",
		},
		{
			name:  "Attrs from With",
			level: slog.LevelInfo,
			logFunc: func(l *slog.Logger) {
				l.With(slog.String("run_id", "abc")).Warn("overwriting")
			},
			expected: "WARN overwriting run_id=abc",
		},
		{
			name:  "Level below minimum",
			level: slog.LevelInfo,
			logFunc: func(l *slog.Logger) {
				l.Debug("hidden")
			},
			expected: "",
		},
		{
			name:  "Debug level",
			level: slog.LevelDebug,
			logFunc: func(l *slog.Logger) {
				l.Debug("visible")
			},
			expected: "DEBUG visible",
		},
	}

	testFunc := func(t *testing.T, tc testCase) {
		t.Helper()

		var out bytes.Buffer

		logger := slog.New(NewTextHandler(&out, &slog.HandlerOptions{Level: tc.level}))
		tc.logFunc(logger)

		if tc.expected == "" {
			require.Empty(t, out.String())

			return
		}

		// first field is date and second is time
		fields := strings.SplitN(strings.TrimSpace(out.String()), " ", 3)
		require.Len(t, fields, 3)
		require.Equal(t, tc.expected, fields[2])
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) { testFunc(t, tc) })
	}
}

func TestDummyLogger(t *testing.T) {
	require.False(t, DummyLogger.Enabled(context.Background(), slog.LevelError))
	require.NotPanics(t, func() { DummyLogger.With("k", "v").WithGroup("g").Error("nothing") })
}
