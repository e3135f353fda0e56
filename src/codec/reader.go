package codec

import "io"

// Reader is the byte-oriented input surface the Decoder drives. It is
// implemented once per backing store (a borrowed slice, a socket-like
// io.Reader) so the same Decoder methods run unmodified over either.
type Reader interface {
	// RemainingHint reports how many bytes are known to remain, or -1 if the
	// backing store cannot report a bound (e.g. an unbuffered socket).
	RemainingHint() int
	// ReadByte reads and consumes a single byte.
	ReadByte() (byte, error)
	// ReadExact fills dst entirely or returns an error; after an error the
	// contents of dst are unspecified (a StreamReader may have filled part
	// of it).
	ReadExact(dst []byte) error
	// Skip advances the read position by n bytes without copying them out.
	Skip(n int) error
}

// SlicePeeker is implemented by Readers that can hand back a borrowed view
// into their backing slice instead of copying. The zero-copy decode path
// (Decoder.DecodeLenSliceView) uses this to avoid allocation.
type SlicePeeker interface {
	// PeekSlice returns a borrowed view of the next n bytes, consuming them
	// from the read position, and whether such a view is available.
	// Implementations that cannot borrow (e.g. a streaming socket reader)
	// report ok=false with the position unchanged.
	PeekSlice(n int) (s []byte, ok bool)
}

// SliceReader is the zero-allocation Reader over a borrowed []byte. This is
// the default reader for fixed-buffer, no-heap callers.
type SliceReader struct {
	buf []byte
	pos int
}

// NewSliceReader wraps buf for reading. The returned reader borrows buf for
// its entire lifetime; the caller must not mutate buf while in use.
func NewSliceReader(buf []byte) *SliceReader {
	return &SliceReader{buf: buf}
}

func (r *SliceReader) RemainingHint() int {
	return len(r.buf) - r.pos
}

func (r *SliceReader) ReadByte() (byte, error) {
	if r.pos >= len(r.buf) {
		return 0, ErrUnexpectedEOF
	}
	b := r.buf[r.pos]
	r.pos++
	return b, nil
}

func (r *SliceReader) ReadExact(dst []byte) error {
	if len(r.buf)-r.pos < len(dst) {
		return ErrUnexpectedEOF
	}
	copy(dst, r.buf[r.pos:])
	r.pos += len(dst)
	return nil
}

func (r *SliceReader) Skip(n int) error {
	if n < 0 || len(r.buf)-r.pos < n {
		return ErrUnexpectedEOF
	}
	r.pos += n
	return nil
}

// PeekSlice implements SlicePeeker.
func (r *SliceReader) PeekSlice(n int) ([]byte, bool) {
	if n < 0 || len(r.buf)-r.pos < n {
		return nil, false
	}
	s := r.buf[r.pos : r.pos+n]
	r.pos += n
	return s, true
}

// StreamReader adapts any io.Reader (a socket, a pipe, a bufio.Reader) to the
// Reader interface. It never borrows: every read copies into caller- or
// Decoder-provided storage, and RemainingHint always reports -1 since a
// general io.Reader cannot bound its own input.
type StreamReader struct {
	r io.Reader
}

// NewStreamReader wraps an io.Reader for streaming, allocation-light decode
// where the full message is not buffered up front.
func NewStreamReader(r io.Reader) *StreamReader {
	return &StreamReader{r: r}
}

func (s *StreamReader) RemainingHint() int {
	return -1
}

func (s *StreamReader) ReadByte() (byte, error) {
	var b [1]byte
	if err := s.ReadExact(b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

func (s *StreamReader) ReadExact(dst []byte) error {
	if len(dst) == 0 {
		return nil
	}
	if _, err := io.ReadFull(s.r, dst); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return ErrUnexpectedEOF
		}
		return ReaderError(err)
	}
	return nil
}

func (s *StreamReader) Skip(n int) error {
	if n <= 0 {
		return nil
	}
	if _, err := io.CopyN(io.Discard, s.r, int64(n)); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return ErrUnexpectedEOF
		}
		return ReaderError(err)
	}
	return nil
}
