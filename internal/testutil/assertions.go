// Package testutil provides common test utilities and assertions for tirocks tests
package testutil

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabokie/tirocks/ffi"
)

// TempDBPath returns a database path inside a fresh test directory. Nothing
// exists at the path itself.
func TempDBPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "db")
}

// DiscardLogger returns a logger that drops every record.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// RequireStatusError asserts that err wraps a native status error with the
// given code and returns it.
func RequireStatusError(t *testing.T, err error, code ffi.Code, msgAndArgs ...interface{}) *ffi.Error {
	t.Helper()

	require.Error(t, err, msgAndArgs...)
	var e *ffi.Error
	require.True(t, errors.As(err, &e), "error %v does not wrap *ffi.Error", err)
	require.Equal(t, code, e.Code, msgAndArgs...)
	return e
}

// AssertStatusMessageContains asserts that a status error carries a valid
// message containing substr.
func AssertStatusMessageContains(t *testing.T, e *ffi.Error, substr string) {
	t.Helper()

	msg, ok, err := e.Message()
	require.NoError(t, err)
	require.True(t, ok, "status has no message")
	assert.Contains(t, msg, substr)
}

// AssertJSONEqual compares two JSON strings for equality, ignoring formatting
func AssertJSONEqual(t *testing.T, expected, actual string, msgAndArgs ...interface{}) {
	t.Helper()

	var expectedJSON, actualJSON interface{}
	require.NoError(t, json.Unmarshal([]byte(expected), &expectedJSON), "expected JSON is invalid")
	require.NoError(t, json.Unmarshal([]byte(actual), &actualJSON), "actual JSON is invalid")

	assert.Equal(t, expectedJSON, actualJSON, msgAndArgs...)
}
