// Package capp provides batteries-included wiring for applications using the
// chttp client: environment parsing, structured logging, OpenTelemetry
// tracing on the outbound transport, and lifecycle management via fx.
//
// A complete application:
//
//	capp.New[Env](func(c *chttp.Client) {
//	    // use the fully wired client
//	}).Run()
//
// Define the environment by embedding [BaseEnvironment]:
//
//	type Env struct {
//	    capp.BaseEnvironment
//	    APIBaseURL string `env:"API_BASE_URL,required"`
//	}
package capp
