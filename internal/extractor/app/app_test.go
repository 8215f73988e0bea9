package app

import (
	"bytes"
	"log/slog"
	"syscall"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestSignalError(t *testing.T) {
	err := NewSignalError(syscall.SIGTERM)

	require.Equal(t, "terminated signal", err.Error())
}

func TestLogStackTrace(t *testing.T) {
	type testCase struct {
		name        string
		err         error
		expectTrace bool
	}

	testCases := []testCase{
		{
			name:        "Error with stack",
			err:         errors.WithMessage(errors.New("api is down"), "failed to extract"),
			expectTrace: true,
		},
		{
			name:        "Error without stack",
			err:         NewSignalError(syscall.SIGINT),
			expectTrace: false,
		},
	}

	testFunc := func(t *testing.T, tc testCase) {
		t.Helper()

		var logs bytes.Buffer

		defaultLogger := slog.Default()
		slog.SetDefault(slog.New(slog.NewTextHandler(&logs, nil)))

		t.Cleanup(func() { slog.SetDefault(defaultLogger) })

		logStackTrace(tc.err)

		if tc.expectTrace {
			require.Contains(t, logs.String(), "TestLogStackTrace")
		} else {
			require.Empty(t, logs.String())
		}
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) { testFunc(t, tc) })
	}
}
