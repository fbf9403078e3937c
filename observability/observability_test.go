package observability

import (
	"context"
	"testing"
	"time"

	"go.opentelemetry.io/otel/metric/noop"
)

func TestDefaultTracerConfig(t *testing.T) {
	cfg := DefaultTracerConfig("apistate")
	if cfg.ServiceName != "apistate" {
		t.Errorf("ServiceName = %q, want %q", cfg.ServiceName, "apistate")
	}
	if cfg.Endpoint == "" || cfg.SampleRate != 1.0 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestDefaultMeterConfig(t *testing.T) {
	cfg := DefaultMeterConfig("apistate")
	if cfg.Interval != 15*time.Second {
		t.Errorf("Interval = %v, want 15s", cfg.Interval)
	}
}

func TestStartSpan(t *testing.T) {
	ctx, span := StartSpan(context.Background(), SpanAPICall)
	if span == nil {
		t.Fatal("expected a span")
	}
	span.End()
	if SpanFromContext(ctx) == nil {
		t.Error("expected span retrievable from context")
	}
}

func TestMetrics_RecordAgainstNoopMeter(t *testing.T) {
	m, err := NewMetrics(noop.NewMeterProvider().Meter("test"))
	if err != nil {
		t.Fatalf("NewMetrics: %v", err)
	}
	ctx := context.Background()
	m.RecordCallStart(ctx, "user")
	m.RecordCallEnd(ctx, "user", "success", 20*time.Millisecond)

	var nilMetrics *Metrics
	nilMetrics.RecordCallStart(ctx, "user")
	nilMetrics.RecordCallEnd(ctx, "user", "error", time.Millisecond)
}
