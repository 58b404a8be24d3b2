package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func corsRequest(t *testing.T, m *CORSMiddleware, method, origin string) *httptest.ResponseRecorder {
	t.Helper()

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(method, "/api/v1/doctors", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	rec := httptest.NewRecorder()
	m.Handle(next).ServeHTTP(rec, req)

	if method == http.MethodOptions && called {
		t.Error("preflight request reached the next handler")
	}
	return rec
}

func TestCORSWildcard(t *testing.T) {
	m := NewCORSMiddleware([]string{"*"})

	rec := corsRequest(t, m, http.MethodGet, "https://anywhere.example")
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}

func TestCORSRestrictedOrigins(t *testing.T) {
	m := NewCORSMiddleware([]string{"https://health.aui.ma"})

	rec := corsRequest(t, m, http.MethodGet, "https://health.aui.ma")
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://health.aui.ma" {
		t.Errorf("allowed origin not echoed, got %q", got)
	}
	if got := rec.Header().Get("Vary"); got != "Origin" {
		t.Errorf("Vary = %q, want Origin", got)
	}

	rec = corsRequest(t, m, http.MethodGet, "https://evil.example")
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("unknown origin was allowed: %q", got)
	}
}

func TestCORSPreflightShortCircuits(t *testing.T) {
	m := NewCORSMiddleware([]string{"*"})

	rec := corsRequest(t, m, http.MethodOptions, "https://health.aui.ma")
	if rec.Code != http.StatusOK {
		t.Errorf("preflight status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Header().Get("Access-Control-Allow-Methods"); got == "" {
		t.Error("preflight response missing Access-Control-Allow-Methods")
	}
}
