package aggregate

import (
	"context"
	"sync"
	"time"

	"github.com/Crashthatch/openroutermodeltable/pkg/constants"
	"github.com/Crashthatch/openroutermodeltable/pkg/logging"
	"github.com/Crashthatch/openroutermodeltable/pkg/openrouter"
)

// Batcher runs per-model aggregation over the full model list in
// fixed-size batches, with a pause between batches as a crude self-imposed
// rate limit. Within a batch all aggregations run concurrently and the
// batch settles completely before the next one starts.
type Batcher struct {
	agg   *Aggregator
	size  int
	delay time.Duration
}

// BatcherOption configures a Batcher.
type BatcherOption func(*Batcher)

// WithBatchSize overrides the number of models aggregated per batch.
func WithBatchSize(n int) BatcherOption {
	return func(b *Batcher) {
		if n > 0 {
			b.size = n
		}
	}
}

// WithBatchDelay overrides the pause between batches.
func WithBatchDelay(d time.Duration) BatcherOption {
	return func(b *Batcher) { b.delay = d }
}

// NewBatcher creates a Batcher around the given aggregator.
func NewBatcher(agg *Aggregator, opts ...BatcherOption) *Batcher {
	b := &Batcher{
		agg:   agg,
		size:  constants.StatsBatchSize,
		delay: constants.StatsBatchDelay,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Aggregate collects stats for the first limit models (limit <= 0 means
// all). Every requested model is attempted exactly once; attempts are
// independent, and the returned mapping contains entries only for models
// whose aggregation produced a usable record. Results are merged strictly
// after each batch settles, so the map is never written concurrently.
// A canceled context stops before the next batch and returns what has been
// collected so far along with the context's error.
func (b *Batcher) Aggregate(ctx context.Context, models []openrouter.Model, limit int) (map[string]*ModelStats, error) {
	logger := logging.FromContext(ctx)

	if limit > 0 && limit < len(models) {
		models = models[:limit]
	}

	collected := make(map[string]*ModelStats)
	batches := (len(models) + b.size - 1) / b.size

	for i := 0; i < len(models); i += b.size {
		end := i + b.size
		if end > len(models) {
			end = len(models)
		}
		batch := models[i:end]

		logger.Debug().
			Int("batch", i/b.size+1).
			Int("batches", batches).
			Int("size", len(batch)).
			Msg("Aggregating stats batch")

		var wg sync.WaitGroup
		results := make(chan Result, len(batch))

		for _, m := range batch {
			wg.Add(1)
			go func(slug string) {
				defer wg.Done()
				results <- b.agg.ModelStats(ctx, slug)
			}(m.Slug())
		}

		// Join barrier: the batch does not proceed on first completion.
		wg.Wait()
		close(results)

		for res := range results {
			if res.Outcome == OutcomeOK {
				collected[res.Slug] = res.Stats
			}
		}

		if end < len(models) {
			select {
			case <-time.After(b.delay):
			case <-ctx.Done():
				logger.Warn().
					Int("collected", len(collected)).
					Msg("Stats aggregation interrupted")
				return collected, ctx.Err()
			}
		}
	}

	logger.Info().
		Int("models", len(models)).
		Int("collected", len(collected)).
		Msg("Aggregated model stats")

	return collected, nil
}
