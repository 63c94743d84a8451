package parser

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator hands out record identifiers.
type IDGenerator interface {
	Next() string
}

// CounterIDs produces "<prefix>-1", "<prefix>-2", ... in order of creation.
type CounterIDs struct {
	prefix string
	n      atomic.Int64
}

// NewCounterIDs returns a deterministic generator starting at 1.
func NewCounterIDs(prefix string) *CounterIDs {
	return &CounterIDs{prefix: prefix}
}

// Next returns the next identifier.
func (c *CounterIDs) Next() string {
	return fmt.Sprintf("%s-%d", c.prefix, c.n.Add(1))
}

// UUIDIDs produces time-ordered UUIDs.
type UUIDIDs struct{}

// NewUUIDIDs returns a generator of UUID v7 strings.
func NewUUIDIDs() UUIDIDs { return UUIDIDs{} }

// Next returns a new UUID, falling back to v4 if v7 generation fails.
func (UUIDIDs) Next() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return id.String()
}
