package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func doFrom(h http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/phonemes", nil)
	req.RemoteAddr = remoteAddr
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiter_AllowsUnderLimit(t *testing.T) {
	rl := NewRateLimiter(10, time.Minute)
	defer rl.Stop()

	handler := rl.Middleware()(okHandler())

	for i := 0; i < 10; i++ {
		rec := doFrom(handler, "1.2.3.4:1234")
		assert.Equal(t, http.StatusOK, rec.Code, "request %d should be allowed", i)
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	rl := NewRateLimiter(5, time.Minute)
	defer rl.Stop()

	handler := rl.Middleware()(okHandler())

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, doFrom(handler, "1.2.3.4:1234").Code)
	}

	rec := doFrom(handler, "1.2.3.4:1234")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}

func TestRateLimiter_SameIPDifferentPortsShareBucket(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)
	defer rl.Stop()

	handler := rl.Middleware()(okHandler())

	assert.Equal(t, http.StatusOK, doFrom(handler, "5.5.5.5:1000").Code)
	assert.Equal(t, http.StatusOK, doFrom(handler, "5.5.5.5:2000").Code)
	assert.Equal(t, http.StatusTooManyRequests, doFrom(handler, "5.5.5.5:3000").Code)
}

func TestRateLimiter_DifferentIPsIndependent(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)
	defer rl.Stop()

	handler := rl.Middleware()(okHandler())

	for i := 0; i < 2; i++ {
		doFrom(handler, "1.1.1.1:1234")
	}

	assert.Equal(t, http.StatusOK, doFrom(handler, "2.2.2.2:5678").Code)
}

func TestRateLimiter_TokenRefill(t *testing.T) {
	rl := NewRateLimiter(60, time.Minute)
	defer rl.Stop()

	// 60 per minute = 1 per second
	handler := rl.Middleware()(okHandler())

	for i := 0; i < 60; i++ {
		doFrom(handler, "3.3.3.3:1234")
	}
	assert.Equal(t, http.StatusTooManyRequests, doFrom(handler, "3.3.3.3:1234").Code)

	time.Sleep(1100 * time.Millisecond)

	assert.Equal(t, http.StatusOK, doFrom(handler, "3.3.3.3:1234").Code)
}

func TestRateLimiter_StopIsIdempotent(t *testing.T) {
	rl := NewRateLimiter(1, time.Millisecond)
	rl.Stop()
	rl.Stop()
}
