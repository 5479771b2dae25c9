package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Sequence generates monotonic string ids of the form "<prefix><n>". After a
// snapshot restore it is reseeded from the maximum numeric suffix observed so
// that newly created ids never collide with restored ones.
type Sequence struct {
	prefix string
	last   int
}

// NewSequence creates a sequence with the given id prefix (e.g. "tx-").
func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

// Next returns the next id in the sequence.
func (s *Sequence) Next() string {
	s.last++
	return fmt.Sprintf("%s%d", s.prefix, s.last)
}

// Observe reseeds the sequence from an existing id. Ids with a foreign prefix
// or a non-numeric suffix are ignored.
func (s *Sequence) Observe(id string) {
	if !strings.HasPrefix(id, s.prefix) {
		return
	}
	n, err := strconv.Atoi(id[len(s.prefix):])
	if err != nil {
		return
	}
	if n > s.last {
		s.last = n
	}
}

// Last returns the highest counter value seen or generated.
func (s *Sequence) Last() int {
	return s.last
}
