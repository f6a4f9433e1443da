package chttp

import (
	"context"
	"log"
	"net/http"

	"github.com/cockroachdb/errors"
)

// Client executes request/response cycles against configuration chains. It is
// a thin synchronous executor: encoding strictly precedes transmission, which
// strictly precedes parsing. The underlying *http.Client owns connection
// management, redirects and timeouts.
type Client struct {
	http *http.Client
	base *Config
	logs Logger
	exch Exchange
}

// NewClient creates a client over hc with the given root configuration level,
// typically [DefaultConfig]. Interceptors wrap every exchange, outermost
// first.
func NewClient(hc *http.Client, base *Config, logs Logger, is ...Interceptor) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	if base == nil {
		base = DefaultConfig()
	}
	if logs == nil {
		logs = NewStdLogger(log.Default())
	}

	c := &Client{http: hc, base: base, logs: logs}
	c.exch = WrapExchange(c.do, is...)

	return c
}

// Base returns the client's root configuration level. Derive per-verb
// templates and per-call levels from it with [NewConfig]; never mutate it
// after the client is in use.
func (c *Client) Base() *Config { return c.base }

// Do runs one exchange. cfg must be a descendant of [Client.Base] (nil means
// a bare child of it). The result is whatever the resolved status handler
// returns, by default the parsed body for statuses below 400 and a
// [*StatusError] otherwise.
func (c *Client) Do(ctx context.Context, method, url string, cfg *Config) (any, error) {
	return c.exch(ctx, method, url, cfg)
}

// Get is shorthand for [Client.Do] with the GET method.
func (c *Client) Get(ctx context.Context, url string, cfg *Config) (any, error) {
	return c.Do(ctx, http.MethodGet, url, cfg)
}

// Post is shorthand for [Client.Do] with the POST method.
func (c *Client) Post(ctx context.Context, url string, cfg *Config) (any, error) {
	return c.Do(ctx, http.MethodPost, url, cfg)
}

// Put is shorthand for [Client.Do] with the PUT method.
func (c *Client) Put(ctx context.Context, url string, cfg *Config) (any, error) {
	return c.Do(ctx, http.MethodPut, url, cfg)
}

// Delete is shorthand for [Client.Do] with the DELETE method.
func (c *Client) Delete(ctx context.Context, url string, cfg *Config) (any, error) {
	return c.Do(ctx, http.MethodDelete, url, cfg)
}

func (c *Client) do(ctx context.Context, method, url string, cfg *Config) (any, error) {
	if cfg == nil {
		cfg = NewConfig(c.base)
	}

	sink := NewRequestSink()
	body := cfg.Request.ActualBody()
	if body != nil {
		enc, err := cfg.FindEncoder()
		if err != nil {
			return nil, err
		}
		if err := enc(cfg.Request, sink); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, url, sink.Body())
	if err != nil {
		return nil, NewError(KindTransfer, errors.Wrap(err, "build request"))
	}

	if body != nil {
		ct, err := cfg.FindContentType()
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", ct+"; charset="+cfg.Request.ActualCharset())
	}

	for name, value := range cfg.Request.ActualHeaders() {
		req.Header.Set(name, value)
	}

	for _, ck := range cfg.Request.ActualCookies() {
		req.AddCookie(&http.Cookie{Name: ck.Name, Value: ck.Value, Domain: ck.Domain, Path: ck.Path})
	}

	// Only basic auth is executed here; other descriptors are resolved for
	// the transport to act on.
	if a := cfg.Request.ActualAuth(); a != nil && a.Type == AuthBasic {
		req.SetBasicAuth(a.User, a.Password)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, NewError(KindTransfer, errors.Wrap(err, "round trip"))
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logs.LogBodyCloseError(cerr)
		}
	}()

	fs := NewHTTPFromServer(resp)

	parser := cfg.Response.ActualParser(fs.ContentType())
	if parser == nil {
		c.logs.LogParserFallback(fs.ContentType())
		parser = ParseBytes
	}

	parsed, err := parser(fs)
	if err != nil {
		return nil, err
	}

	return cfg.HandleResponse(fs, parsed)
}
