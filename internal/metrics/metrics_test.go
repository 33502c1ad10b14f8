package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func scrape(t *testing.T) string {
	t.Helper()
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from metrics handler, got %d", rec.Code)
	}
	body, _ := io.ReadAll(rec.Body)
	return string(body)
}

func TestPrometheusMiddleware_RecordsRoutePattern(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/things", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("ok"))
	})

	rec := httptest.NewRecorder()
	PrometheusMiddleware(mux).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/things", nil))

	if rec.Code != http.StatusTeapot {
		t.Fatalf("expected inner status to pass through, got %d", rec.Code)
	}
	body := scrape(t)
	want := `http_requests_total{method="GET",route="GET /api/things",status_code="418"}`
	if !strings.Contains(body, want) {
		t.Errorf("expected %s in scrape output", want)
	}
}

func TestPrometheusMiddleware_Unmatched(t *testing.T) {
	mux := http.NewServeMux()

	rec := httptest.NewRecorder()
	PrometheusMiddleware(mux).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	if !strings.Contains(scrape(t), `route="unmatched"`) {
		t.Error("expected unmatched route label for 404s")
	}
}

func TestBusinessMetrics(t *testing.T) {
	RecordContactSubmission(true)
	RecordContactSubmission(false)
	RecordMaintenanceRequest("scheduled")
	n := 3
	ObserveMaintenanceItems(func() int { return n })
	n = 4

	body := scrape(t)
	for _, want := range []string{
		`contact_submissions_total{result="accepted"}`,
		`contact_submissions_total{result="rejected"}`,
		`maintenance_requests_total{result="scheduled"}`,
		"maintenance_items 4",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("expected %q in scrape output", want)
		}
	}
}
