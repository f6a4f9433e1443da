package capp

import (
	"net/http"

	"github.com/chainhttp/chttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// NewHTTPTransport creates an HTTP RoundTripper instrumented with
// OpenTelemetry tracing. The TracerProvider and Propagator are explicitly
// injected to avoid global state.
func NewHTTPTransport(tp trace.TracerProvider, prop propagation.TextMapPropagator) http.RoundTripper {
	return otelhttp.NewTransport(http.DefaultTransport,
		otelhttp.WithTracerProvider(tp),
		otelhttp.WithPropagators(prop),
	)
}

// NewHTTPClient creates an *http.Client over the instrumented transport with
// the environment's request timeout. Outbound requests automatically create
// child spans and propagate trace context.
func NewHTTPClient(env Environment, t http.RoundTripper) *http.Client {
	return &http.Client{Transport: t, Timeout: env.requestTimeout()}
}

// NewClient creates the chttp client over the instrumented http client. The
// root configuration level carries the built-in codecs plus the environment's
// default charset.
func NewClient(env Environment, hc *http.Client, logs chttp.Logger) *chttp.Client {
	base := chttp.DefaultConfig()
	base.Request.SetCharset(env.defaultCharset())

	return chttp.NewClient(hc, base, logs)
}
