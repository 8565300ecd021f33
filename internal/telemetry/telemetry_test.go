package telemetry

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestTracerUsesGlobalProvider(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	defer otel.SetTracerProvider(prev)

	_, span := Tracer("test").Start(context.Background(), "op")
	span.End()

	ended := recorder.Ended()
	if len(ended) != 1 {
		t.Fatalf("Expected 1 span, got %d", len(ended))
	}
	if ended[0].Name() != "op" {
		t.Errorf("Expected span name 'op', got %q", ended[0].Name())
	}
	if got := ended[0].InstrumentationScope().Name; got != "tilewalk/test" {
		t.Errorf("Expected scope 'tilewalk/test', got %q", got)
	}
}

func TestTracerWithoutSetupRecordsNothing(t *testing.T) {
	_, span := Tracer("test").Start(context.Background(), "op")
	defer span.End()
	if span.IsRecording() {
		t.Error("Spans should not record before Setup installs a provider")
	}
}

func TestEnabled(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", "")
	if Enabled() {
		t.Error("Enabled should be false without an endpoint")
	}
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://localhost:4318")
	if !Enabled() {
		t.Error("Enabled should be true with an endpoint")
	}
}
