package chttp_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chainhttp/chttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*chttp.Client, *chttp.TestLogger) {
	t.Helper()
	logs := chttp.NewTestLogger(t)
	return chttp.NewClient(nil, chttp.DefaultConfig(), logs), logs
}

func TestClientPostJSONRoundTrip(t *testing.T) {
	var gotBody []byte
	var gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		gotContentType = r.Header.Get("Content-Type")

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write([]byte(`{"echo":true}`))
	}))
	defer srv.Close()

	client, _ := newTestClient(t)

	cfg := chttp.NewConfig(client.Base())
	cfg.Request.SetContentType(chttp.ContentJSON)
	cfg.Request.SetBody(chttp.StructuredBody(map[string]any{"a": float64(1)}))

	out, err := client.Post(context.Background(), srv.URL, cfg)
	require.NoError(t, err)

	assert.JSONEq(t, `{"a":1}`, string(gotBody))
	assert.Equal(t, "application/json; charset=utf-8", gotContentType)
	assert.Equal(t, map[string]any{"echo": true}, out)
}

func TestClientEncoderResolvedFromRootWithLeafBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write(data)
	}))
	defer srv.Close()

	client, _ := newTestClient(t)

	// content type only at the verb level, body only at the call level
	verb := chttp.NewConfig(client.Base())
	verb.Request.SetContentType(chttp.ContentJSON)

	call := chttp.NewConfig(verb)
	call.Request.SetBody(chttp.StructuredBody(map[string]any{"a": float64(1)}))

	out, err := client.Post(context.Background(), srv.URL, call)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, out.(string))
}

func TestClientAppliesHeadersCookiesAuth(t *testing.T) {
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
	}))
	defer srv.Close()

	client, _ := newTestClient(t)

	verb := chttp.NewConfig(client.Base())
	verb.Request.SetHeader("X-From-Verb", "1").SetBasicAuth("alice", "secret")
	verb.Request.AddCookie(chttp.Cookie{Name: "session", Value: "abc"})

	call := chttp.NewConfig(verb)
	call.Request.SetHeader("X-From-Call", "2")
	call.Request.AddCookie(chttp.Cookie{Name: "session", Value: "override"})

	_, err := client.Get(context.Background(), srv.URL, call)
	require.NoError(t, err)

	assert.Equal(t, "1", got.Header.Get("X-From-Verb"))
	assert.Equal(t, "2", got.Header.Get("X-From-Call"))

	user, pass, ok := got.BasicAuth()
	require.True(t, ok)
	assert.Equal(t, "alice", user)
	assert.Equal(t, "secret", pass)

	cookies := got.Cookies()
	require.Len(t, cookies, 2, "cookies from both levels, no dedup")
}

func TestClientFailureStatusBecomesStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("gone"))
	}))
	defer srv.Close()

	client, _ := newTestClient(t)

	_, err := client.Get(context.Background(), srv.URL, nil)
	require.Error(t, err)

	var serr *chttp.StatusError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, http.StatusNotFound, serr.Status)
	assert.Equal(t, "gone", serr.Body)
}

func TestClientCustomStatusHandler(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	client, _ := newTestClient(t)

	cfg := chttp.NewConfig(client.Base())
	cfg.Response.When(http.StatusTeapot, func(fs chttp.FromServer, _ any) (any, error) {
		return "short and stout", nil
	})

	out, err := client.Get(context.Background(), srv.URL, cfg)
	require.NoError(t, err)
	assert.Equal(t, "short and stout", out)
}

func TestClientUnknownContentTypeFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/x-mystery")
		_, _ = w.Write([]byte{1, 2, 3})
	}))
	defer srv.Close()

	client, logs := newTestClient(t)

	out, err := client.Get(context.Background(), srv.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, out)
	assert.EqualValues(t, 1, logs.NumLogParserFallback)
}

func TestClientMissingContentTypeForBody(t *testing.T) {
	client, _ := newTestClient(t)

	cfg := chttp.NewConfig(client.Base())
	cfg.Request.SetBody(chttp.TextBody("payload"))

	_, err := client.Post(context.Background(), "http://localhost:0", cfg)
	require.Error(t, err)
	assert.Equal(t, chttp.KindConfiguration, chttp.KindOf(err))
}

func TestClientInterceptorWrapsExchange(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	var seen string
	tap := func(next chttp.Exchange) chttp.Exchange {
		return func(ctx context.Context, method, url string, cfg *chttp.Config) (any, error) {
			seen = method
			return next(ctx, method, url, cfg)
		}
	}

	client := chttp.NewClient(nil, chttp.DefaultConfig(), chttp.NewTestLogger(t), tap)

	out, err := client.Get(context.Background(), srv.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
	assert.Equal(t, http.MethodGet, seen)
}
