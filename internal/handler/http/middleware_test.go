package http

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"news-aggregator/internal/handler/http/requestid"
	"news-aggregator/internal/observability/logging"
)

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/news?page=2", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusTeapot {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusTeapot)
	}

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v (%s)", err, buf.String())
	}
	if entry["msg"] != "request completed" {
		t.Errorf("msg = %v, want %q", entry["msg"], "request completed")
	}
	if entry["method"] != http.MethodGet {
		t.Errorf("method = %v, want GET", entry["method"])
	}
	if entry["path"] != "/api/news" {
		t.Errorf("path = %v, want /api/news", entry["path"])
	}
	if entry["query"] != "page=2" {
		t.Errorf("query = %v, want page=2", entry["query"])
	}
	if entry["status"] != float64(http.StatusTeapot) {
		t.Errorf("status = %v, want %d", entry["status"], http.StatusTeapot)
	}
	if entry["bytes"] != float64(len("short and stout")) {
		t.Errorf("bytes = %v, want %d", entry["bytes"], len("short and stout"))
	}
}

func TestLogging_ContextLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// ハンドラ側はコンテキストからロガーを取り出す
		logging.FromContext(r.Context()).Info("handled")
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/news", nil)
	req = req.WithContext(requestid.WithRequestID(req.Context(), "req-123"))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	dec := json.NewDecoder(&buf)
	var first map[string]any
	if err := dec.Decode(&first); err != nil {
		t.Fatalf("decode first entry: %v (%s)", err, buf.String())
	}
	if first["msg"] != "handled" {
		t.Errorf("msg = %v, want handled", first["msg"])
	}
	if first["request_id"] != "req-123" {
		t.Errorf("request_id = %v, want req-123", first["request_id"])
	}

	var second map[string]any
	if err := dec.Decode(&second); err != nil {
		t.Fatalf("decode second entry: %v", err)
	}
	if second["msg"] != "request completed" {
		t.Errorf("msg = %v, want %q", second["msg"], "request completed")
	}
	if second["request_id"] != "req-123" {
		t.Errorf("request_id = %v, want req-123", second["request_id"])
	}
}

func TestRecover(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := Recover(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/news", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	if !strings.Contains(buf.String(), "panic recovered") {
		t.Errorf("log output missing panic record: %s", buf.String())
	}
	if !strings.Contains(buf.String(), "boom") {
		t.Errorf("log output missing panic value: %s", buf.String())
	}
}

func TestRecover_NoPanic(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	handler := Recover(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/news", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusOK)
	}
}

func TestMetrics(t *testing.T) {
	handler := Metrics(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/news/123", nil)
	rr := httptest.NewRecorder()

	// パニックせずに記録されることを確認
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusOK)
	}
}

func TestTimeout_CompletesInTime(t *testing.T) {
	handler := Timeout(1 * time.Second)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/news", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusOK)
	}
	if rr.Body.String() != "ok" {
		t.Errorf("body = %q, want %q", rr.Body.String(), "ok")
	}
}

func TestTimeout_Exceeded(t *testing.T) {
	handler := Timeout(50 * time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/news", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusGatewayTimeout {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusGatewayTimeout)
	}
	if !strings.Contains(rr.Body.String(), "request timeout") {
		t.Errorf("body = %q, want timeout error", rr.Body.String())
	}
}

func TestTimeout_HandlerWinsNoDoubleWrite(t *testing.T) {
	handler := Timeout(50 * time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		// タイムアウトを過ぎてからの書き込みは破棄される
		time.Sleep(100 * time.Millisecond)
		_, _ = w.Write([]byte("late"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/news", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusCreated)
	}
	if strings.Contains(rr.Body.String(), "late") {
		t.Errorf("late write leaked into response: %q", rr.Body.String())
	}
}
