package chttp

import (
	"io"
	"net/url"
	"os"
)

// BodyKind is the closed set of shapes a request body can take. A body is
// tagged exactly once, when it is accepted into a [RequestSpec] through one of
// the Body constructors; codecs dispatch on the tag instead of re-inspecting
// the runtime type.
type BodyKind int

const (
	// BodyStream is a raw byte stream. Encoders deliver it to the sink as-is,
	// bypassing all type-specific transforms.
	BodyStream BodyKind = iota + 1

	// BodyFile is an open file handle, streamed like [BodyStream].
	BodyFile

	// BodyBytes is an in-memory byte sequence.
	BodyBytes

	// BodyText is a string value.
	BodyText

	// BodyMapping is a string multimap, the natural shape for form payloads.
	BodyMapping

	// BodyStructured is an arbitrary value destined for a structural codec
	// such as json.
	BodyStructured

	// BodyMarkup is a value serialized through encoding/xml, the closest Go
	// analog to a markup builder.
	BodyMarkup
)

// String returns the tag name used in diagnostics.
func (k BodyKind) String() string {
	switch k {
	case BodyStream:
		return "stream"
	case BodyFile:
		return "file"
	case BodyBytes:
		return "bytes"
	case BodyText:
		return "text"
	case BodyMapping:
		return "mapping"
	case BodyStructured:
		return "structured"
	case BodyMarkup:
		return "markup"
	default:
		return "none"
	}
}

// Body is a request payload tagged with its kind. The zero value is no body at
// all; use the constructors below.
type Body struct {
	kind   BodyKind
	reader io.Reader
	file   *os.File
	bytes  []byte
	text   string
	form   url.Values
	value  any
}

// StreamBody tags r as a raw byte stream. The encoder hands it to the sink
// without transformation and without closing it; the caller keeps ownership.
func StreamBody(r io.Reader) *Body { return &Body{kind: BodyStream, reader: r} }

// FileBody tags an open file. The encoder streams its contents and leaves
// closing to the caller, like [StreamBody].
func FileBody(f *os.File) *Body { return &Body{kind: BodyFile, file: f} }

// BytesBody tags an in-memory byte sequence.
func BytesBody(b []byte) *Body { return &Body{kind: BodyBytes, bytes: b} }

// TextBody tags a string payload.
func TextBody(s string) *Body { return &Body{kind: BodyText, text: s} }

// FormBody tags a string multimap for the form codec.
func FormBody(v url.Values) *Body { return &Body{kind: BodyMapping, form: v} }

// StructuredBody tags an arbitrary value for a structural codec.
func StructuredBody(v any) *Body { return &Body{kind: BodyStructured, value: v} }

// MarkupBody tags a value to be serialized through encoding/xml.
func MarkupBody(v any) *Body { return &Body{kind: BodyMarkup, value: v} }

// Kind returns the body's tag.
func (b *Body) Kind() BodyKind {
	if b == nil {
		return 0
	}
	return b.kind
}

// raw returns the stream to deliver directly, and whether the body is one of
// the raw transferable kinds.
func (b *Body) raw() (io.Reader, bool) {
	switch b.kind {
	case BodyStream:
		return b.reader, true
	case BodyFile:
		return b.file, true
	default:
		return nil, false
	}
}

// is reports whether the body's kind is in the accepted set.
func (b *Body) is(accepted ...BodyKind) bool {
	for _, k := range accepted {
		if b.kind == k {
			return true
		}
	}
	return false
}
