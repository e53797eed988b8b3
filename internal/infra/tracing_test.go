package infra

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
)

func TestSetupTracingWithoutEndpointIsNoop(t *testing.T) {
	before := otel.GetTracerProvider()

	for _, cfg := range []*Config{nil, {OTelEndpoint: "  "}} {
		shutdown, err := SetupTracing(context.Background(), cfg)
		if err != nil {
			t.Fatalf("SetupTracing() error: %v", err)
		}
		if err := shutdown(context.Background()); err != nil {
			t.Fatalf("shutdown() error: %v", err)
		}
	}
	if otel.GetTracerProvider() != before {
		t.Fatalf("global tracer provider replaced without an endpoint")
	}
}
