package chttp

import "context"

// Exchange performs one full request/response cycle for the given config
// chain and returns the handled result.
type Exchange func(ctx context.Context, method, url string, cfg *Config) (any, error)

// Interceptor wraps an exchange for cross-cutting concerns.
type Interceptor func(Exchange) Exchange

// WrapExchange takes the inner exchange and wraps it with interceptors. The
// order is that of the Gorilla and Chi routers: the interceptor provided
// first is called first and is the "outer" most wrapping, the interceptor
// provided last is the "inner" most wrapping (closest to the exchange).
func WrapExchange(inner Exchange, is ...Interceptor) Exchange {
	if len(is) < 1 {
		return inner
	}

	wrapped := inner
	for i := len(is) - 1; i >= 0; i-- {
		wrapped = is[i](wrapped)
	}

	return wrapped
}
