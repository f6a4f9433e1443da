package chttp

import (
	"log"
	"sync/atomic"
	"testing"
)

// Logger can be implemented to get informed about events the core never turns
// into errors: parser selection falling back to raw bytes, and response body
// close failures after the exchange already produced its result.
type Logger interface {
	LogParserFallback(contentType string)
	LogBodyCloseError(err error)
}

type stdLogger struct{ *log.Logger }

func (l stdLogger) LogParserFallback(contentType string) {
	l.Logger.Printf("chttp: no parser for content type %q, falling back to raw bytes", contentType)
}

func (l stdLogger) LogBodyCloseError(err error) {
	l.Logger.Printf("chttp: error while closing response body: %s", err)
}

func NewStdLogger(l *log.Logger) Logger {
	return stdLogger{l}
}

type TestLogger struct {
	tb testing.TB

	NumLogParserFallback int64
	NumLogBodyCloseError int64
}

func NewTestLogger(tb testing.TB) *TestLogger {
	return &TestLogger{tb: tb}
}

func (l *TestLogger) LogParserFallback(contentType string) {
	atomic.AddInt64(&l.NumLogParserFallback, 1)
	l.tb.Logf("chttp: no parser for content type %q, falling back to raw bytes", contentType)
}

func (l *TestLogger) LogBodyCloseError(err error) {
	atomic.AddInt64(&l.NumLogBodyCloseError, 1)
	l.tb.Logf("chttp: error while closing response body: %s", err)
}

var _ Logger = &TestLogger{}
