package id

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator creates opaque IDs for careers and matches.
type Generator interface {
	NewID() (string, error)
}

type UUIDGenerator struct {
	prefix string
}

// NewUUIDGenerator returns a generator producing v7 UUIDs, so IDs sort by
// creation time. prefix may be empty.
func NewUUIDGenerator(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

func (g *UUIDGenerator) NewID() (string, error) {
	u, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}
	if g.prefix == "" {
		return u.String(), nil
	}
	return g.prefix + "_" + u.String(), nil
}

// Sequence is a deterministic generator for tests and replays.
type Sequence struct {
	prefix string
	next   int
}

func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

func (s *Sequence) NewID() (string, error) {
	s.next++
	return fmt.Sprintf("%s-%d", s.prefix, s.next), nil
}
