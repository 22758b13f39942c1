package ident

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNew(t *testing.T) {
	a, b := New(), New()
	if a == b {
		t.Fatalf("two ids collide: %q", a)
	}
	for _, id := range []string{a, b} {
		if _, err := uuid.Parse(id); err != nil {
			t.Fatalf("id %q is not a uuid: %v", id, err)
		}
	}
}

func TestTimestamp(t *testing.T) {
	before := time.Now().Unix()
	got := Timestamp()
	after := time.Now().Unix()
	if got < before || got > after {
		t.Fatalf("Timestamp() = %d, want within [%d, %d]", got, before, after)
	}

	stamp := Stamp()
	if stamp == nil || *stamp < before {
		t.Fatalf("Stamp() = %v, want pointer to current seconds", stamp)
	}
}
