package codec

import "io"

// Writer is the byte-oriented output surface the Encoder drives.
type Writer interface {
	WriteByte(b byte) error
	WriteSlice(b []byte) error
}

// GrowableWriter is an unbounded, append-growing Writer for host-side
// callers that hold a heap. It is the writer a top-level Encode call hands
// back its bytes through by default.
type GrowableWriter struct {
	buf []byte
}

// NewGrowableWriter returns a GrowableWriter with the given initial
// capacity hint.
func NewGrowableWriter(capHint int) *GrowableWriter {
	return &GrowableWriter{buf: make([]byte, 0, capHint)}
}

func (w *GrowableWriter) WriteByte(b byte) error {
	w.buf = append(w.buf, b)
	return nil
}

func (w *GrowableWriter) WriteSlice(b []byte) error {
	w.buf = append(w.buf, b...)
	return nil
}

// Bytes returns the accumulated output. The returned slice aliases the
// writer's internal buffer.
func (w *GrowableWriter) Bytes() []byte {
	return w.buf
}

// ErrWriteCapacity is returned by FixedWriter when the destination buffer is
// exhausted.
var ErrWriteCapacity = &DecodeError{Kind: KindCapacity}

// FixedWriter is a bounded Writer over a pre-allocated, caller-owned byte
// slice: the no-heap path. Writes past the slice's length return
// ErrWriteCapacity rather than growing.
type FixedWriter struct {
	buf []byte
	n   int
}

// NewFixedWriter wraps dst as a fixed-capacity Writer. len(dst) is the hard
// ceiling on how many bytes can be written.
func NewFixedWriter(dst []byte) *FixedWriter {
	return &FixedWriter{buf: dst}
}

func (w *FixedWriter) WriteByte(b byte) error {
	if w.n >= len(w.buf) {
		return ErrWriteCapacity
	}
	w.buf[w.n] = b
	w.n++
	return nil
}

func (w *FixedWriter) WriteSlice(b []byte) error {
	if len(w.buf)-w.n < len(b) {
		return ErrWriteCapacity
	}
	copy(w.buf[w.n:], b)
	w.n += len(b)
	return nil
}

// Bytes returns the portion of the destination slice written so far.
func (w *FixedWriter) Bytes() []byte {
	return w.buf[:w.n]
}

// StreamWriter adapts any io.Writer (a socket, a file) to the Writer
// interface.
type StreamWriter struct {
	w io.Writer
}

// NewStreamWriter wraps w for streaming output.
func NewStreamWriter(w io.Writer) *StreamWriter {
	return &StreamWriter{w: w}
}

func (s *StreamWriter) WriteByte(b byte) error {
	_, err := s.w.Write([]byte{b})
	return err
}

func (s *StreamWriter) WriteSlice(b []byte) error {
	_, err := s.w.Write(b)
	return err
}

// CountingWriter discards every byte written to it and only accumulates a
// length. Driving the same per-field Encoder code over a CountingWriter
// instead of a real Writer yields the exact number of bytes that code
// writes. The Size* functions in size.go compute the same counts
// arithmetically, without running the encoder.
type CountingWriter struct {
	n int
}

func (c *CountingWriter) WriteByte(byte) error {
	c.n++
	return nil
}

func (c *CountingWriter) WriteSlice(b []byte) error {
	c.n += len(b)
	return nil
}

// Len returns the number of bytes that would have been written.
func (c *CountingWriter) Len() int {
	return c.n
}
