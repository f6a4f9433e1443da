package chttp

import "sync"

// textBufferInitialCap is the capacity a fresh buffer starts with.
const textBufferInitialCap = 2048

// TextBuffer accumulates decoded response text without pre-knowing its
// length. Capacity starts at 2048 and doubles, repeatedly if needed, whenever
// an append would overflow; Reset empties it while keeping the capacity. A
// buffer must not be shared across concurrently executing parses: acquire one
// per call, or take one from the pool via [AcquireTextBuffer].
type TextBuffer struct {
	buf []byte
}

// NewTextBuffer inits a buffer at the initial capacity.
func NewTextBuffer() *TextBuffer {
	return &TextBuffer{buf: make([]byte, 0, textBufferInitialCap)}
}

// Append adds p, growing first when the remaining capacity is short.
func (b *TextBuffer) Append(p []byte) {
	if cap(b.buf)-len(b.buf) < len(p) {
		b.grow(len(p))
	}

	b.buf = append(b.buf, p...)
}

// grow doubles the capacity until the remaining room fits need, then moves
// the content over in one copy.
func (b *TextBuffer) grow(need int) {
	next := cap(b.buf) << 1
	for next-len(b.buf) < need {
		next <<= 1
	}

	tmp := make([]byte, len(b.buf), next)
	copy(tmp, b.buf)
	b.buf = tmp
}

// Reset empties the buffer, retaining capacity.
func (b *TextBuffer) Reset() { b.buf = b.buf[:0] }

// Len returns the current content length in bytes.
func (b *TextBuffer) Len() int { return len(b.buf) }

// Cap returns the current capacity in bytes.
func (b *TextBuffer) Cap() int { return cap(b.buf) }

// String returns the accumulated content.
func (b *TextBuffer) String() string { return string(b.buf) }

var textBufferPool = sync.Pool{New: func() any { return NewTextBuffer() }}

// AcquireTextBuffer takes a reset buffer from the pool. Call [TextBuffer.Free]
// when done with it.
func AcquireTextBuffer() *TextBuffer {
	buf, _ := textBufferPool.Get().(*TextBuffer)
	buf.Reset()
	return buf
}

// Free returns the buffer to the pool. The buffer must not be used afterward.
func (b *TextBuffer) Free() { textBufferPool.Put(b) }
