package chttp_test

import (
	"testing"

	"github.com/chainhttp/chttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActualHeadersMergeAllLevels(t *testing.T) {
	root := chttp.NewRequestSpec(nil).SetHeader("X", "1")
	leaf := chttp.NewRequestSpec(root).SetHeader("Y", "2")

	headers := leaf.ActualHeaders()
	assert.Equal(t, map[string]string{"X": "1", "Y": "2"}, headers)
}

func TestActualHeadersNearestDescendantWins(t *testing.T) {
	root := chttp.NewRequestSpec(nil).SetHeader("X", "root")
	mid := chttp.NewRequestSpec(root).SetHeader("X", "mid")
	leaf := chttp.NewRequestSpec(mid)

	assert.Equal(t, "mid", leaf.ActualHeaders()["X"])
}

func TestActualCookiesKeepEveryLevel(t *testing.T) {
	root := chttp.NewRequestSpec(nil).AddCookie(chttp.Cookie{Name: "session", Value: "root"})
	leaf := chttp.NewRequestSpec(root).AddCookie(chttp.Cookie{Name: "session", Value: "leaf"})

	cookies := leaf.ActualCookies()
	require.Len(t, cookies, 2, "same-name cookies from both levels must survive")
	assert.Equal(t, "leaf", cookies[0].Value)
	assert.Equal(t, "root", cookies[1].Value)
}

func TestActualAuthSkipsKindlessDescriptor(t *testing.T) {
	root := chttp.NewRequestSpec(nil).SetBasicAuth("alice", "secret")
	leaf := chttp.NewRequestSpec(root).SetAuth(&chttp.Auth{})

	auth := leaf.ActualAuth()
	require.NotNil(t, auth)
	assert.Equal(t, chttp.AuthBasic, auth.Type)
	assert.Equal(t, "alice", auth.User)
}

func TestActualAuthAbsent(t *testing.T) {
	leaf := chttp.NewRequestSpec(chttp.NewRequestSpec(nil))
	assert.Nil(t, leaf.ActualAuth())
}

func TestActualCharsetDefaults(t *testing.T) {
	leaf := chttp.NewRequestSpec(nil)
	assert.Equal(t, chttp.DefaultCharset, leaf.ActualCharset())

	root := chttp.NewRequestSpec(nil).SetCharset("iso-8859-1")
	assert.Equal(t, "iso-8859-1", chttp.NewRequestSpec(root).ActualCharset())
}

func TestFindContentTypeRequiresOneWhenBodyPresent(t *testing.T) {
	cfg := chttp.NewConfig(nil)
	cfg.Request.SetBody(chttp.TextBody("hello"))

	_, err := cfg.FindContentType()
	require.Error(t, err)
	assert.Equal(t, chttp.KindConfiguration, chttp.KindOf(err))
	assert.Contains(t, err.Error(), "content type is undefined")
}

func TestFindContentTypeWithoutBody(t *testing.T) {
	ct, err := chttp.NewConfig(nil).FindContentType()
	require.NoError(t, err)
	assert.Empty(t, ct)
}

func TestFindEncoderResolvedFromRoot(t *testing.T) {
	root := chttp.DefaultConfig()
	root.Request.SetContentType(chttp.ContentJSON)

	leaf := chttp.NewConfig(root)
	leaf.Request.SetBody(chttp.StructuredBody(map[string]any{"a": 1}))

	enc, err := leaf.FindEncoder()
	require.NoError(t, err)

	sink := chttp.NewRequestSink()
	require.NoError(t, enc(leaf.Request, sink))
	assert.JSONEq(t, `{"a":1}`, string(drain(t, sink.Body())))
}

func TestFindEncoderMissing(t *testing.T) {
	cfg := chttp.NewConfig(nil)
	cfg.Request.SetContentType("application/weird")
	cfg.Request.SetBody(chttp.TextBody("x"))

	_, err := cfg.FindEncoder()
	require.Error(t, err)
	assert.Equal(t, chttp.KindConfiguration, chttp.KindOf(err))
	assert.Contains(t, err.Error(), "no encoder found")
}

func TestFindParserFallsBackToRawBytes(t *testing.T) {
	cfg := chttp.NewConfig(nil)

	parser := cfg.FindParser("text/unknown")
	require.NotNil(t, parser)

	parsed, err := parser(fromString("text/unknown", "opaque payload"))
	require.NoError(t, err)
	assert.Equal(t, []byte("opaque payload"), parsed)
}

func TestActualParserNearestRegistrationWins(t *testing.T) {
	root := chttp.NewResponseSpec(nil).RegisterParser("text/plain", chttp.ParseText)
	leaf := chttp.NewResponseSpec(root).RegisterParser("text/plain", chttp.ParseBytes)

	parsed, err := leaf.ActualParser("text/plain")(fromString("text/plain", "hi"))
	require.NoError(t, err)
	assert.Equal(t, []byte("hi"), parsed, "leaf registration must shadow root's text parser")
}

func TestActualHandlerResolvesAcrossChain(t *testing.T) {
	root := chttp.NewResponseSpec(nil).When(404, func(fs chttp.FromServer, data any) (any, error) {
		return "root handled", nil
	})
	leaf := chttp.NewResponseSpec(root)

	h := leaf.ActualHandler(404)
	require.NotNil(t, h)

	out, err := h(fromString("text/plain", ""), nil)
	require.NoError(t, err)
	assert.Equal(t, "root handled", out)

	assert.Nil(t, leaf.ActualHandler(500))
}

func TestActualBodyResolvesAcrossChain(t *testing.T) {
	root := chttp.NewRequestSpec(nil).SetBody(chttp.TextBody("from root"))
	leaf := chttp.NewRequestSpec(root)

	body := leaf.ActualBody()
	require.NotNil(t, body)
	assert.Equal(t, chttp.BodyText, body.Kind())
}
