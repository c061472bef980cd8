package flushio

import (
	"bufio"
	"io"
)

// WriteFlusher is an io.Writer whose writes may be held until Flush.
type WriteFlusher interface {
	io.Writer
	Flush() error
}

// NewWriteFlusher adapts w for output that must reach its destination by the
// end of each input unit: writers that already flush are returned as is,
// in-memory buffers and io.Discard get a no-op Flush, and anything else is
// buffered with bufio.
func NewWriteFlusher(w io.Writer) WriteFlusher {
	switch impl := w.(type) {
	case nil:
		return nopFlusher{io.Discard}
	case WriteFlusher:
		return impl
	case buffer:
		return nopFlusher{w}
	}
	if w == io.Discard {
		return nopFlusher{w}
	}
	return bufio.NewWriter(w)
}

// buffer matches in memory writers, like bytes.Buffer and strings.Builder,
// which have nothing to flush.
type buffer interface {
	io.Writer
	Len() int
	Grow(n int)
	Reset()
}

type nopFlusher struct{ io.Writer }

func (nf nopFlusher) Flush() error { return nil }
