package capp

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/fx"
)

const tracingInitTimeout = 5 * time.Second

// NewTracerProvider creates and configures the OpenTelemetry TracerProvider.
// Supported exporters via CHTTP_OTEL_EXPORTER: "stdout" (default), "none".
// Shutdown is handled automatically via fx.Lifecycle.
func NewTracerProvider(lc fx.Lifecycle, env Environment) (trace.TracerProvider, error) {
	ctx, cancel := context.WithTimeout(context.Background(), tracingInitTimeout)
	defer cancel()

	if env.otelExporter() == "none" {
		return noop.NewTracerProvider(), nil
	}

	exporter, err := newExporter(env.otelExporter())
	if err != nil {
		return nil, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(env.serviceName())))
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(exporter)),
		sdktrace.WithResource(res),
	)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return tp.Shutdown(ctx)
		},
	})

	return tp, nil
}

// NewPropagator creates the W3C TraceContext + Baggage composite propagator.
func NewPropagator() propagation.TextMapPropagator {
	return propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	)
}

// newExporter creates a span exporter based on the exporter type.
func newExporter(exporterType string) (sdktrace.SpanExporter, error) {
	switch exporterType {
	case "stdout", "":
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	default:
		return nil, fmt.Errorf("unknown exporter type: %q", exporterType) //nolint:goerr113
	}
}
