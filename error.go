package chttp

import (
	"errors"
	"fmt"
)

// Kind classifies the failures this package can produce. It can be used to
// handle errors structurally across the layers that sit on top of the core.
type Kind int

const (
	// KindUnknown is returned by [KindOf] for errors that did not originate here.
	KindUnknown Kind = iota

	// KindConfiguration signals that resolution walked the whole chain without
	// finding a required value: a body without a content type, or a content
	// type without a registered encoder. It indicates a setup mistake, never a
	// transient condition.
	KindConfiguration

	// KindNilBody signals that an encoder was invoked without any body set
	// anywhere in the chain.
	KindNilBody

	// KindUnsupportedBody signals that a body is present but its kind is not
	// in the selected codec's accepted set.
	KindUnsupportedBody

	// KindTransfer wraps an I/O failure while streaming or transcoding. The
	// core never retries; that is the transport's call to make.
	KindTransfer

	// KindParse signals malformed input in a structured parser (xml, html,
	// json, form). The raw-bytes fallback never produces this kind.
	KindParse
)

// String returns a stable name for the kind, for logs and messages.
func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindNilBody:
		return "nil body"
	case KindUnsupportedBody:
		return "unsupported body"
	case KindTransfer:
		return "transfer"
	case KindParse:
		return "parse"
	default:
		return "unknown"
	}
}

// Error describes a failure in configuration resolution or codec dispatch.
type Error struct {
	kind Kind
	err  error
}

// NewError inits a new error given the kind.
func NewError(k Kind, underlying error) *Error {
	return &Error{k, underlying}
}

func (e *Error) Kind() Kind { return e.kind }
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.kind, e.err.Error())
}

// Unwrap exposes the underlying error to errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// KindOf returns the error's kind if it is or wraps an [*Error] and
// [KindUnknown] otherwise.
func KindOf(err error) Kind {
	if cerr, ok := asError(err); ok {
		return cerr.Kind()
	}
	return KindUnknown
}

// asError uses errors.As to unwrap any error and look for an [*Error].
func asError(err error) (*Error, bool) {
	var cerr *Error
	ok := errors.As(err, &cerr)
	return cerr, ok
}

// StatusError is what the default [Failure] handler returns for non-2xx
// responses. It carries the status code and whatever the resolved parser
// produced, so callers can still inspect an error body.
type StatusError struct {
	Status int
	Body   any
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server returned status %d", e.Status)
}
