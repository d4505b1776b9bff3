package repository

import (
	"fmt"
	"strconv"
	"strings"
)

// Sequence issues monotonically increasing human-readable identifiers
// such as BK00001. It is not persisted directly: after a reload the
// caller feeds every stored id through Observe so the next issued id is
// strictly past the maximum suffix seen.
type Sequence struct {
	prefix string
	width  int
	next   int
}

func NewSequence(prefix string, width int) *Sequence {
	return &Sequence{prefix: prefix, width: width, next: 1}
}

func (s *Sequence) Next() string {
	id := fmt.Sprintf("%s%0*d", s.prefix, s.width, s.next)
	s.next++
	return id
}

// Observe advances the counter past id's numeric suffix. Ids with a
// foreign prefix or a non-numeric suffix are ignored.
func (s *Sequence) Observe(id string) {
	if !strings.HasPrefix(id, s.prefix) {
		return
	}
	n, err := strconv.Atoi(id[len(s.prefix):])
	if err != nil {
		return
	}
	if n >= s.next {
		s.next = n + 1
	}
}
