package chttp

import (
	"io"
	"mime"
	"net/http"
	"strings"
)

// DefaultCharset is assumed when neither the chain nor the server declares
// one.
const DefaultCharset = "utf-8"

// ToServer is the sink an encoder delivers into, owned by the transport
// collaborator. An encoder either calls ToServer exactly once, or not at all
// when it fails first.
type ToServer interface {
	ToServer(body io.Reader) error
}

// FromServer is the transport's handle on a response body: a readable byte
// stream plus the declared or resolved charset and the content type used for
// parser lookup. The transport owns the stream's lifetime; parsers drain it
// but do not close it.
type FromServer interface {
	Reader() io.Reader
	Charset() string
	ContentType() string
	Status() int
}

// RequestSink is a [ToServer] that captures the encoded body so it can be
// handed to an *http.Request.
type RequestSink struct {
	body io.Reader
	set  bool
}

// NewRequestSink inits an empty sink.
func NewRequestSink() *RequestSink { return &RequestSink{} }

// ToServer implements [ToServer].
func (s *RequestSink) ToServer(body io.Reader) error {
	s.body, s.set = body, true
	return nil
}

// Body returns the captured stream, or nil when the encoder never delivered.
func (s *RequestSink) Body() io.Reader { return s.body }

// Delivered reports whether the encoder called ToServer.
func (s *RequestSink) Delivered() bool { return s.set }

// httpFromServer adapts an *http.Response to [FromServer].
type httpFromServer struct {
	resp        *http.Response
	contentType string
	charset     string
}

// NewHTTPFromServer wraps resp, splitting its Content-Type header into the
// bare media type and the declared charset. A missing or malformed header
// degrades to an empty content type and [DefaultCharset]; parser selection
// then falls back to raw bytes rather than failing.
func NewHTTPFromServer(resp *http.Response) FromServer {
	fs := &httpFromServer{resp: resp, charset: DefaultCharset}

	mediaType, params, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err == nil {
		fs.contentType = mediaType
		if cs, ok := params["charset"]; ok {
			fs.charset = strings.ToLower(cs)
		}
	}

	return fs
}

func (fs *httpFromServer) Reader() io.Reader   { return fs.resp.Body }
func (fs *httpFromServer) Charset() string     { return fs.charset }
func (fs *httpFromServer) ContentType() string { return fs.contentType }
func (fs *httpFromServer) Status() int         { return fs.resp.StatusCode }
