package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vncorpora/bicorpus-backend/pkg/ctxutil"
)

func TestRequestID_Generated(t *testing.T) {
	var seen string

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = ctxutil.RequestIDFromCtx(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	RequestID(handler).ServeHTTP(rec, req)

	if seen == "" {
		t.Error("expected generated request id in context")
	}
	if got := rec.Header().Get("X-Request-Id"); got != seen {
		t.Errorf("response header = %q, context = %q", got, seen)
	}
}

func TestRequestID_Propagated(t *testing.T) {
	var seen string

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = ctxutil.RequestIDFromCtx(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "req-42")
	rec := httptest.NewRecorder()

	RequestID(handler).ServeHTTP(rec, req)

	if seen != "req-42" {
		t.Errorf("request id = %q, want req-42", seen)
	}
}
