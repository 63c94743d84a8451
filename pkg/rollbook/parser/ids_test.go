package parser

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounterIDs(t *testing.T) {
	ids := NewCounterIDs("row")
	assert.Equal(t, "row-1", ids.Next())
	assert.Equal(t, "row-2", ids.Next())

	other := NewCounterIDs("row")
	assert.Equal(t, "row-1", other.Next())
}

func TestCounterIDsConcurrent(t *testing.T) {
	ids := NewCounterIDs("c")
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = map[string]bool{}
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				id := ids.Next()
				mu.Lock()
				seen[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Len(t, seen, 400)
}

func TestUUIDIDs(t *testing.T) {
	ids := NewUUIDIDs()
	a, b := ids.Next(), ids.Next()
	assert.NotEqual(t, a, b)

	parsed, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}
