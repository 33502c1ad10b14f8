package handler

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func captureDefaultLogger(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestRequestID_GeneratesID(t *testing.T) {
	var seen string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	})

	rec := httptest.NewRecorder()
	RequestID(inner).ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	if _, err := uuid.Parse(seen); err != nil {
		t.Fatalf("expected a UUID request id in context, got %q", seen)
	}
	if got := rec.Header().Get(RequestIDHeader); got != seen {
		t.Errorf("expected response header %q, got %q", seen, got)
	}
}

func TestRequestID_ReusesValidIncoming(t *testing.T) {
	incoming := uuid.NewString()
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(RequestIDHeader, incoming)

	rec := httptest.NewRecorder()
	RequestID(okHandler).ServeHTTP(rec, req)

	if got := rec.Header().Get(RequestIDHeader); got != incoming {
		t.Errorf("expected incoming id %q to be reused, got %q", incoming, got)
	}
}

func TestRequestID_ReplacesMalformedIncoming(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(RequestIDHeader, "<script>")

	rec := httptest.NewRecorder()
	RequestID(okHandler).ServeHTTP(rec, req)

	got := rec.Header().Get(RequestIDHeader)
	if got == "<script>" {
		t.Error("malformed request id must not be echoed")
	}
	if _, err := uuid.Parse(got); err != nil {
		t.Errorf("expected a generated UUID, got %q", got)
	}
}

func TestRequestLogger_LogsRequest(t *testing.T) {
	buf := captureDefaultLogger(t)

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	rec := httptest.NewRecorder()
	RequestID(RequestLogger(inner)).ServeHTTP(rec, httptest.NewRequest("POST", "/api/maintenance", nil))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected one JSON log record, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "request" || entry["method"] != "POST" || entry["path"] != "/api/maintenance" {
		t.Errorf("unexpected log entry %v", entry)
	}
	if entry["status"] != float64(http.StatusCreated) {
		t.Errorf("expected status 201 in log, got %v", entry["status"])
	}
	if entry["request_id"] != rec.Header().Get(RequestIDHeader) {
		t.Errorf("expected request_id to match response header, got %v", entry["request_id"])
	}
}

func TestRequestLogger_ServerErrorAtWarn(t *testing.T) {
	buf := captureDefaultLogger(t)

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	RequestLogger(inner).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))

	var entry map[string]any
	_ = json.Unmarshal(buf.Bytes(), &entry)
	if entry["level"] != "WARN" {
		t.Errorf("expected WARN level for 5xx, got %v", entry["level"])
	}
}
