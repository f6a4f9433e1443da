// Package example implements an example interceptor in an outside package.
package example

import (
	"context"
	"log/slog"

	"github.com/chainhttp/chttp"
)

// Interceptor provides an example for an interceptor that logs every
// exchange before handing it to the next layer.
func Interceptor(logs *slog.Logger) chttp.Interceptor {
	return func(next chttp.Exchange) chttp.Exchange {
		return func(ctx context.Context, method, url string, cfg *chttp.Config) (any, error) {
			logs.Info("exchange",
				slog.String("method", method),
				slog.String("url", url))

			return next(ctx, method, url, cfg)
		}
	}
}
