package comment

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/rollbook-go/pkg/rollbook/models"
)

type fakeGenerator struct {
	mu      sync.Mutex
	batches [][]string
	failOn  map[string]error // keyed by the first id of a batch
}

func (f *fakeGenerator) Generate(_ context.Context, records []models.Record, role models.Role, subject string) (map[string]string, error) {
	ids := make([]string, len(records))
	for i, r := range records {
		ids[i] = r.ID
	}
	f.mu.Lock()
	f.batches = append(f.batches, ids)
	f.mu.Unlock()

	if err, ok := f.failOn[ids[0]]; ok {
		return nil, err
	}
	out := make(map[string]string, len(records))
	for _, r := range records {
		out[r.ID] = fmt.Sprintf("%s/%s/%s", role, subject, r.Name)
	}
	return out, nil
}

func makeRecords(n int) []models.Record {
	records := make([]models.Record, n)
	for i := range records {
		records[i] = models.Record{ID: fmt.Sprintf("r-%d", i+1), Name: fmt.Sprintf("Học sinh %d", i+1)}
	}
	return records
}

func TestServiceAnnotate(t *testing.T) {
	gen := &fakeGenerator{}
	svc := NewService(gen, WithBatchSize(2))

	input := makeRecords(5)
	out, err := svc.Annotate(context.Background(), input, models.RoleSubject, "Toán")
	require.NoError(t, err)
	require.Len(t, out, 5)

	for i, r := range out {
		assert.Equal(t, input[i].ID, r.ID)
		assert.Equal(t, "GVBM/Toán/"+input[i].Name, r.Comment)
		assert.False(t, r.Processing)
	}
	for _, r := range input {
		assert.Empty(t, r.Comment, "input must not be modified")
	}
	assert.Equal(t, [][]string{{"r-1", "r-2"}, {"r-3", "r-4"}, {"r-5"}}, gen.batches)
}

func TestServiceAnnotatePartialFailure(t *testing.T) {
	boom := fmt.Errorf("%w: quota", ErrRateLimited)
	gen := &fakeGenerator{failOn: map[string]error{"r-5": boom}}
	svc := NewService(gen, WithBatchSize(2))

	out, err := svc.Annotate(context.Background(), MarkProcessing(makeRecords(8)), models.RoleHomeroom, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRateLimited))
	require.Len(t, out, 8)

	for i, r := range out {
		if i < 4 {
			assert.NotEmpty(t, r.Comment, r.ID)
		} else {
			assert.Empty(t, r.Comment, r.ID)
		}
		assert.False(t, r.Processing, r.ID)
	}
	// The batch after the failed one is never sent.
	assert.Len(t, gen.batches, 3)
}

func TestServiceOnBatch(t *testing.T) {
	gen := &fakeGenerator{}
	svc := NewService(gen, WithBatchSize(3), WithConcurrency(2))

	var (
		mu    sync.Mutex
		total int
	)
	svc.OnBatch = func(batch []models.Record) {
		mu.Lock()
		defer mu.Unlock()
		total += len(batch)
		for _, r := range batch {
			assert.NotEmpty(t, r.Comment)
			assert.False(t, r.Processing)
		}
	}

	out, err := svc.Annotate(context.Background(), MarkProcessing(makeRecords(7)), models.RoleSubject, "Văn")
	require.NoError(t, err)
	assert.Len(t, out, 7)
	assert.Equal(t, 7, total)
	assert.Len(t, gen.batches, 3)
}

func TestServiceAnnotateEmpty(t *testing.T) {
	gen := &fakeGenerator{}
	out, err := NewService(gen).Annotate(context.Background(), nil, models.RoleSubject, "")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Empty(t, gen.batches)
}

func TestServiceAnnotateCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gen := &fakeGenerator{}
	out, err := NewService(gen).Annotate(ctx, makeRecords(3), models.RoleSubject, "")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, out, 3)
	assert.Empty(t, gen.batches)
}

func TestServiceOptionsIgnoreInvalid(t *testing.T) {
	svc := NewService(&fakeGenerator{}, WithBatchSize(0), WithConcurrency(-1))
	assert.Equal(t, DefaultBatchSize, svc.batchSize)
	assert.Equal(t, 1, svc.concurrency)
}

func TestMarkProcessing(t *testing.T) {
	in := makeRecords(2)
	out := MarkProcessing(in)
	assert.True(t, out[0].Processing)
	assert.True(t, out[1].Processing)
	assert.False(t, in[0].Processing)
}

func TestChunk(t *testing.T) {
	records := makeRecords(65)
	chunks := Chunk(records, 30)
	require.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 30)
	assert.Len(t, chunks[1], 30)
	assert.Len(t, chunks[2], 5)
	assert.Equal(t, "r-31", chunks[1][0].ID)

	assert.Len(t, Chunk(records, 0), 3)
	assert.Empty(t, Chunk(nil, 10))
}
