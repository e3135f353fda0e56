package container

// GrowableSeq is the unbounded, heap-backed Sequence implementation:
// ordinary append growth, for host-side callers that do not need a memory
// ceiling.
type GrowableSeq[T any] struct {
	vals []T
}

// NewGrowableSeq returns an empty GrowableSeq with the given initial
// capacity hint.
func NewGrowableSeq[T any](capHint int) *GrowableSeq[T] {
	return &GrowableSeq[T]{vals: make([]T, 0, capHint)}
}

func (s *GrowableSeq[T]) Len() int { return len(s.vals) }

func (s *GrowableSeq[T]) Push(v T) error {
	s.vals = append(s.vals, v)
	return nil
}

func (s *GrowableSeq[T]) Reset() { s.vals = s.vals[:0] }

func (s *GrowableSeq[T]) AsSlice() []T { return s.vals }

func (s *GrowableSeq[T]) WriteSlice(v []T) error {
	s.vals = append(s.vals, v...)
	return nil
}

// FixedSeq is the bounded, no-heap Sequence implementation: it is handed a
// pre-allocated backing array once and never grows it. Push and WriteSlice
// return ErrOverflow once that backing array is full, which is the only way
// this type ever signals failure.
type FixedSeq[T any] struct {
	backing []T
	n       int
}

// NewFixedSeq wraps backing as a fixed-capacity Sequence. len(backing) is
// the hard ceiling on how many elements can be stored; cap(backing) is
// irrelevant, this type never reslices past the length it was given.
func NewFixedSeq[T any](backing []T) *FixedSeq[T] {
	return &FixedSeq[T]{backing: backing}
}

func (s *FixedSeq[T]) Len() int { return s.n }

func (s *FixedSeq[T]) Push(v T) error {
	if s.n >= len(s.backing) {
		return ErrOverflow
	}
	s.backing[s.n] = v
	s.n++
	return nil
}

func (s *FixedSeq[T]) Reset() { s.n = 0 }

func (s *FixedSeq[T]) AsSlice() []T { return s.backing[:s.n] }

func (s *FixedSeq[T]) WriteSlice(v []T) error {
	if len(s.backing)-s.n < len(v) {
		return ErrOverflow
	}
	copy(s.backing[s.n:], v)
	s.n += len(v)
	return nil
}
