package worker

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestHealthServer() *HealthServer {
	return NewHealthServer(":0", nil, slog.New(slog.DiscardHandler))
}

func TestHealthServer_Liveness(t *testing.T) {
	hs := newTestHealthServer()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	hs.handleLiveness(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHealthServer_Readiness_NotReadyByDefault(t *testing.T) {
	hs := newTestHealthServer()

	req := httptest.NewRequest(http.MethodGet, "/healthz/ready", nil)
	rec := httptest.NewRecorder()

	hs.handleReadiness(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"status":"not ready"}`, rec.Body.String())
}

func TestHealthServer_Readiness_AfterSetReady(t *testing.T) {
	hs := newTestHealthServer()
	hs.SetReady(true)

	req := httptest.NewRequest(http.MethodGet, "/healthz/ready", nil)
	rec := httptest.NewRecorder()

	hs.handleReadiness(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	// 準備解除も反映される
	hs.SetReady(false)
	rec = httptest.NewRecorder()
	hs.handleReadiness(rec, req)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
