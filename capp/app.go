package capp

import (
	"context"

	"go.uber.org/fx"
)

// App wraps an fx.App for lifecycle management.
type App struct {
	app *fx.App
}

// New creates a batteries-included app with dependency injection. The invoke
// function can request any provided type; at minimum it usually accepts the
// wired *chttp.Client. Extra fx options can provide application-specific
// constructors.
func New[E Environment](invoke any, opts ...fx.Option) *App {
	baseOpts := make([]fx.Option, 0, 10+len(opts))
	baseOpts = append(baseOpts, []fx.Option{
		fx.NopLogger,
		fx.Provide(ParseEnv[E]()),
		fx.Provide(func(e E) Environment { return e }),
		fx.Provide(NewLogger),
		fx.Provide(NewChttpLogger),
		fx.Provide(NewTracerProvider),
		fx.Provide(NewPropagator),
		fx.Provide(NewHTTPTransport),
		fx.Provide(NewHTTPClient),
		fx.Provide(NewClient),
		fx.Invoke(invoke),
	}...)

	baseOpts = append(baseOpts, opts...)

	return &App{app: fx.New(baseOpts...)}
}

// Run starts the app and blocks until shutdown.
func (a *App) Run() { a.app.Run() }

// Start starts the app without blocking.
func (a *App) Start(ctx context.Context) error { return a.app.Start(ctx) }

// Stop stops the app, running lifecycle hooks such as tracer shutdown.
func (a *App) Stop(ctx context.Context) error { return a.app.Stop(ctx) }
