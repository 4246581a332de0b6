package id

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator(t *testing.T) {
	t.Parallel()

	got, err := NewUUIDGenerator("match").NewID()
	if err != nil {
		t.Fatalf("NewID: %v", err)
	}
	raw, ok := strings.CutPrefix(got, "match_")
	if !ok {
		t.Fatalf("expected prefix in %q", got)
	}
	parsed, err := uuid.Parse(raw)
	if err != nil {
		t.Fatalf("parse uuid %q: %v", raw, err)
	}
	if parsed.Version() != 7 {
		t.Fatalf("expected v7 uuid, got v%d", parsed.Version())
	}
}

func TestSequence(t *testing.T) {
	t.Parallel()

	seq := NewSequence("career")
	first, _ := seq.NewID()
	second, _ := seq.NewID()
	if first != "career-1" || second != "career-2" {
		t.Fatalf("unexpected sequence %q %q", first, second)
	}
}
