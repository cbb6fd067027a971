package main

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealth(t *testing.T) {
	var ready atomic.Bool
	server := newMetricsServer(":0", &ready)

	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	ready.Store(true)
	rec = httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	var ready atomic.Bool
	server := newMetricsServer(":0", &ready)

	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSetupLogger(t *testing.T) {
	assert.True(t, setupLogger("DEBUG").Enabled(t.Context(), slog.LevelDebug))
	assert.False(t, setupLogger("warn").Enabled(t.Context(), slog.LevelInfo))
	assert.True(t, setupLogger("bogus").Enabled(t.Context(), slog.LevelInfo))
}

func TestGetEnv(t *testing.T) {
	t.Setenv("GEYSER_TEST_STR", "x")
	t.Setenv("GEYSER_TEST_BOOL", "true")
	t.Setenv("GEYSER_TEST_FLOAT", "nope")

	assert.Equal(t, "x", getEnv("GEYSER_TEST_STR", "d"))
	assert.Equal(t, "d", getEnv("GEYSER_TEST_UNSET", "d"))
	assert.True(t, getEnvBool("GEYSER_TEST_BOOL", false))
	assert.Equal(t, 1.5, getEnvFloat("GEYSER_TEST_FLOAT", 1.5))
}

func TestParseKeys(t *testing.T) {
	keys, err := parseKeys(" TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA, ,11111111111111111111111111111111")
	assert.NoError(t, err)
	assert.Len(t, keys, 2)

	keys, err = parseKeys("")
	assert.NoError(t, err)
	assert.Empty(t, keys)

	_, err = parseKeys("not-base58!")
	assert.Error(t, err)
}
