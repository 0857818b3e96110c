package handler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/minato369/bookstack/config"
	"github.com/minato369/bookstack/data"
	"github.com/minato369/bookstack/internal/jsonlog"
	"github.com/minato369/bookstack/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

const testSecret = "test-secret"

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	var cfg config.Config
	cfg.JWT.Secret = testSecret
	cfg.JWT.TTL = "30m"
	logger := jsonlog.New(io.Discard, jsonlog.LevelFatal)
	limiters := ttlcache.New(ttlcache.WithTTL[string, *rate.Limiter](3 * time.Minute))
	return New(cfg, logger, limiters, nil)
}

func TestAuthenticate(t *testing.T) {
	h := newTestHandler(t)

	var gotIdentity data.Identity
	var nextCalled bool
	next := func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		gotIdentity = h.contextGetIdentity(r)
		w.WriteHeader(http.StatusOK)
	}

	jwt, err := token.New(testSecret, 7, "alice@example.com", time.Minute)
	require.NoError(t, err)

	t.Run("missing token", func(t *testing.T) {
		nextCalled = false
		r := httptest.NewRequest(http.MethodGet, "/v1/books", nil)
		w := httptest.NewRecorder()
		h.authenticate(next).ServeHTTP(w, r)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, nextCalled)
	})

	t.Run("malformed authorization header", func(t *testing.T) {
		nextCalled = false
		r := httptest.NewRequest(http.MethodGet, "/v1/books", nil)
		r.Header.Set("Authorization", jwt)
		w := httptest.NewRecorder()
		h.authenticate(next).ServeHTTP(w, r)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, nextCalled)
	})

	t.Run("invalid token", func(t *testing.T) {
		nextCalled = false
		r := httptest.NewRequest(http.MethodGet, "/v1/books", nil)
		r.Header.Set("Authorization", "Bearer not-a-token")
		w := httptest.NewRecorder()
		h.authenticate(next).ServeHTTP(w, r)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.False(t, nextCalled)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		nextCalled = false
		forged, err := token.New("another-secret", 7, "alice@example.com", time.Minute)
		require.NoError(t, err)
		r := httptest.NewRequest(http.MethodGet, "/v1/books", nil)
		r.Header.Set("Authorization", "Bearer "+forged)
		w := httptest.NewRecorder()
		h.authenticate(next).ServeHTTP(w, r)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.False(t, nextCalled)
	})

	t.Run("valid bearer token", func(t *testing.T) {
		nextCalled = false
		r := httptest.NewRequest(http.MethodGet, "/v1/books", nil)
		r.Header.Set("Authorization", "Bearer "+jwt)
		w := httptest.NewRecorder()
		h.authenticate(next).ServeHTTP(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
		require.True(t, nextCalled)
		assert.Equal(t, int64(7), gotIdentity.UserID)
		assert.Equal(t, "alice@example.com", gotIdentity.Email)
	})

	t.Run("valid cookie", func(t *testing.T) {
		nextCalled = false
		r := httptest.NewRequest(http.MethodGet, "/v1/books", nil)
		r.AddCookie(&http.Cookie{Name: "token", Value: jwt})
		w := httptest.NewRecorder()
		h.authenticate(next).ServeHTTP(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
		require.True(t, nextCalled)
		assert.Equal(t, int64(7), gotIdentity.UserID)
	})

	t.Run("cookie takes precedence over header", func(t *testing.T) {
		nextCalled = false
		r := httptest.NewRequest(http.MethodGet, "/v1/books", nil)
		r.AddCookie(&http.Cookie{Name: "token", Value: "garbage"})
		r.Header.Set("Authorization", "Bearer "+jwt)
		w := httptest.NewRecorder()
		h.authenticate(next).ServeHTTP(w, r)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.False(t, nextCalled)
	})
}

func TestRateLimit(t *testing.T) {
	h := newTestHandler(t)
	h.config.Limiter.Enabled = true
	h.config.Limiter.RPS = 1
	h.config.Limiter.Burst = 2

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	limited := h.rateLimit(next)

	for i := 0; i < 2; i++ {
		r := httptest.NewRequest(http.MethodGet, "/v1/healthcheck", nil)
		r.RemoteAddr = "10.0.0.1:5000"
		w := httptest.NewRecorder()
		limited.ServeHTTP(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	r := httptest.NewRequest(http.MethodGet, "/v1/healthcheck", nil)
	r.RemoteAddr = "10.0.0.1:5000"
	w := httptest.NewRecorder()
	limited.ServeHTTP(w, r)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// A different client IP gets its own limiter.
	r = httptest.NewRequest(http.MethodGet, "/v1/healthcheck", nil)
	r.RemoteAddr = "10.0.0.2:5000"
	w = httptest.NewRecorder()
	limited.ServeHTTP(w, r)
	assert.Equal(t, http.StatusOK, w.Code)
}
