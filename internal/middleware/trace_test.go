package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

func tracedRouter(t *testing.T) (http.Handler, *tracetest.SpanRecorder) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler { return traceWith(tp.Tracer("test"), next) })
	r.Get("/committees/{id}", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "id") == "broken" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	return r, sr
}

func TestTraceNamesSpanAfterRoute(t *testing.T) {
	h, sr := tracedRouter(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/committees/STA-C0001", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	ended := sr.Ended()
	if len(ended) != 1 {
		t.Fatalf("expected 1 span, got %d", len(ended))
	}
	span := ended[0]
	if span.Name() != "GET /committees/{id}" {
		t.Fatalf("span name = %q", span.Name())
	}
	if span.Status().Code != codes.Unset {
		t.Fatalf("status code = %v, want unset", span.Status().Code)
	}
	var route string
	for _, kv := range span.Attributes() {
		if kv.Key == semconv.HTTPRouteKey {
			route = kv.Value.AsString()
		}
	}
	if route != "/committees/{id}" {
		t.Fatalf("http.route = %q", route)
	}
}

func TestTraceMarksServerErrors(t *testing.T) {
	h, sr := tracedRouter(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/committees/broken", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}

	ended := sr.Ended()
	if len(ended) != 1 {
		t.Fatalf("expected 1 span, got %d", len(ended))
	}
	if got := ended[0].Status(); got.Code != codes.Error || got.Description != "status 500" {
		t.Fatalf("span status = %+v, want error", got)
	}
}
