package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSessionMintsIDWhenHeaderAbsent(t *testing.T) {
	var captured string
	handler := Session(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = SessionIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if captured == "" {
		t.Fatalf("expected a minted session id in context")
	}
	if got := rec.Header().Get("X-Session-Id"); got != captured {
		t.Fatalf("expected response header %q to match context id %q", got, captured)
	}
}

func TestSessionReusesProvidedID(t *testing.T) {
	var captured string
	handler := Session(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = SessionIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Session-Id", "sess_abc123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if captured != "sess_abc123" {
		t.Fatalf("expected provided session id, got %q", captured)
	}
	if got := rec.Header().Get("X-Session-Id"); got != "sess_abc123" {
		t.Fatalf("expected header echo, got %q", got)
	}
}
