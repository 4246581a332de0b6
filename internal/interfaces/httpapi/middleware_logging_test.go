package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/riskibarqy/football-sim/internal/platform/logging"
)

func TestRequestLogging_RequestID(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})
	handler := RequestLogging(logging.NewNop(), next)

	t.Run("echoes caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/matches/current/tick", nil)
		req.Header.Set("X-Request-ID", "req-42")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if got := rec.Header().Get("X-Request-ID"); got != "req-42" {
			t.Fatalf("expected caller request id, got %q", got)
		}
		if rec.Code != http.StatusAccepted {
			t.Fatalf("expected wrapped status %d, got %d", http.StatusAccepted, rec.Code)
		}
	})

	t.Run("generates id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/standings", nil))

		if got := rec.Header().Get("X-Request-ID"); len(got) != 36 {
			t.Fatalf("expected generated uuid request id, got %q", got)
		}
	})
}
