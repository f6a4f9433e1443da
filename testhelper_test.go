package chttp_test

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeFromServer is a transport handle over an in-memory body.
type fakeFromServer struct {
	body        io.Reader
	charset     string
	contentType string
	status      int
}

func fromBytes(contentType string, body []byte) *fakeFromServer {
	return &fakeFromServer{
		body:        strings.NewReader(string(body)),
		charset:     "utf-8",
		contentType: contentType,
		status:      200,
	}
}

func fromString(contentType, body string) *fakeFromServer {
	return fromBytes(contentType, []byte(body))
}

func (f *fakeFromServer) Reader() io.Reader   { return f.body }
func (f *fakeFromServer) Charset() string     { return f.charset }
func (f *fakeFromServer) ContentType() string { return f.contentType }
func (f *fakeFromServer) Status() int         { return f.status }

func drain(t *testing.T, r io.Reader) []byte {
	t.Helper()
	require.NotNil(t, r, "encoder should have delivered a stream")

	data, err := io.ReadAll(r)
	require.NoError(t, err)

	return data
}
