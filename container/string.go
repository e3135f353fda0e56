package container

import "strings"

// GrowableString is the unbounded String implementation backed by a
// strings.Builder.
type GrowableString struct {
	b strings.Builder
}

func (s *GrowableString) Len() int { return s.b.Len() }

func (s *GrowableString) Reset() { s.b.Reset() }

func (s *GrowableString) WriteString(v string) error {
	_, err := s.b.WriteString(v)
	return err
}

func (s *GrowableString) String() string { return s.b.String() }

// FixedString is the bounded, no-heap String implementation: a
// pre-allocated byte slice that WriteString fills and never grows.
type FixedString struct {
	backing []byte
	n       int
}

// NewFixedString wraps backing as a fixed-capacity String. len(backing) is
// the maximum string length this container can ever hold.
func NewFixedString(backing []byte) *FixedString {
	return &FixedString{backing: backing}
}

func (s *FixedString) Len() int { return s.n }

func (s *FixedString) Reset() { s.n = 0 }

func (s *FixedString) WriteString(v string) error {
	if len(s.backing)-s.n < len(v) {
		return ErrOverflow
	}
	s.n += copy(s.backing[s.n:], v)
	return nil
}

func (s *FixedString) String() string { return string(s.backing[:s.n]) }
