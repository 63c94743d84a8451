// Package comment generates report-card comments for extracted records.
package comment

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"github.com/ukaji3/rollbook-go/pkg/rollbook/models"
	"golang.org/x/sync/errgroup"
)

// DefaultBatchSize is the number of records sent per request.
const DefaultBatchSize = 30

// Generator produces comments for one batch of records, keyed by record id.
type Generator interface {
	Generate(ctx context.Context, records []models.Record, role models.Role, subject string) (map[string]string, error)
}

// Service splits records into batches and merges the generated comments.
type Service struct {
	gen         Generator
	batchSize   int
	concurrency int
	log         zerolog.Logger

	// OnBatch, if set, is called with the updated records of each finished batch.
	OnBatch func(batch []models.Record)
}

// Option configures a Service.
type Option func(*Service)

// WithBatchSize sets the number of records per request.
func WithBatchSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.batchSize = n
		}
	}
}

// WithConcurrency sets how many batches may be in flight at once.
func WithConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Service) { s.log = l }
}

// NewService creates a Service. Batches run one at a time by default.
func NewService(gen Generator, opts ...Option) *Service {
	s := &Service{
		gen:         gen,
		batchSize:   DefaultBatchSize,
		concurrency: 1,
		log:         zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Annotate returns copies of records with comments filled in. The input is
// not modified. When a batch fails, no further batches are started and the
// error is returned together with every comment received so far.
func (s *Service) Annotate(ctx context.Context, records []models.Record, role models.Role, subject string) ([]models.Record, error) {
	out := make([]models.Record, len(records))
	copy(out, records)
	if len(out) == 0 {
		return out, nil
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, chunk := range Chunk(out, s.batchSize) {
		start := i * s.batchSize
		batch := append([]models.Record(nil), chunk...)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			comments, err := s.gen.Generate(gctx, batch, role, subject)
			if err != nil {
				s.log.Warn().Err(err).Int("batch", i).Msg("comment batch failed")
				return err
			}

			mu.Lock()
			updated := out[start : start+len(batch)]
			for j := range updated {
				if c, ok := comments[updated[j].ID]; ok {
					updated[j].Comment = c
				}
				updated[j].Processing = false
			}
			snapshot := append([]models.Record(nil), updated...)
			mu.Unlock()

			s.log.Debug().Int("batch", i).Int("size", len(batch)).Int("comments", len(comments)).Msg("batch merged")
			if s.OnBatch != nil {
				s.OnBatch(snapshot)
			}
			return nil
		})
	}

	err := g.Wait()
	for i := range out {
		out[i].Processing = false
	}
	return out, err
}

// MarkProcessing returns copies of records flagged as in progress.
func MarkProcessing(records []models.Record) []models.Record {
	out := make([]models.Record, len(records))
	for i, r := range records {
		r.Processing = true
		out[i] = r
	}
	return out
}

// Chunk splits records into consecutive slices of at most size elements.
// The slices share the input's backing array.
func Chunk(records []models.Record, size int) [][]models.Record {
	if size <= 0 {
		size = DefaultBatchSize
	}
	var chunks [][]models.Record
	for i := 0; i < len(records); i += size {
		end := i + size
		if end > len(records) {
			end = len(records)
		}
		chunks = append(chunks, records[i:end])
	}
	return chunks
}
