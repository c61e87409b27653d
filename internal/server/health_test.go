package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHealthChecker_Readiness(t *testing.T) {
	sc := newTestContext(t)
	h := NewHealthChecker(sc)

	rec := httptest.NewRecorder()
	h.ReadinessHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("ready status = %d, want %d", rec.Code, http.StatusOK)
	}

	h.SetReady(false)
	rec = httptest.NewRecorder()
	h.ReadinessHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("not-ready status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
}

func TestHealthChecker_DetailedReportsCalendarDependencies(t *testing.T) {
	sc := newTestContext(t)
	h := NewHealthChecker(sc)

	rec := httptest.NewRecorder()
	h.DetailedHealthHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz/detailed", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp DetailedHealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Status != healthStatusOK {
		t.Errorf("Status = %q, want %q", resp.Status, healthStatusOK)
	}
	if resp.Calendar != "primary" {
		t.Errorf("Calendar = %q, want %q", resp.Calendar, "primary")
	}
	// newTestContext isolates the credential chain, so no credentials
	// should be visible and the probe must still report healthy.
	if got := resp.Dependencies["google_credentials"]; got != "not configured" {
		t.Errorf("google_credentials = %q, want %q", got, "not configured")
	}
}
