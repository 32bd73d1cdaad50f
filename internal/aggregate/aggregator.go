package aggregate

import (
	"context"
	"fmt"
	"sync"

	"github.com/Crashthatch/openroutermodeltable/pkg/logging"
	"github.com/Crashthatch/openroutermodeltable/pkg/openrouter"
	"github.com/Crashthatch/openroutermodeltable/pkg/stats"
)

// StatsFetcher is the slice of the OpenRouter client the aggregator needs.
type StatsFetcher interface {
	SeriesPoints(ctx context.Context, permaslug string, series openrouter.Series) ([]float64, error)
	UptimeRecent(ctx context.Context, permaslug string) ([]*float64, error)
	EndpointStats(ctx context.Context, permaslug, variant string) (*openrouter.ProviderSnapshot, error)
}

// Aggregator folds the five per-model statistic fetches into one
// ModelStats record.
type Aggregator struct {
	fetcher StatsFetcher
}

// New creates an Aggregator backed by the given fetcher.
func New(fetcher StatsFetcher) *Aggregator {
	return &Aggregator{fetcher: fetcher}
}

// ModelStats aggregates all statistic series for one model. The five
// fetches run concurrently and settle independently: a failed or
// unparsable series leaves its field empty without disturbing the others.
// An empty slug resolves to Absent without any network traffic. A panic
// anywhere in the aggregation resolves to Unexpected and is logged with
// the model's slug; it never propagates to the caller.
func (a *Aggregator) ModelStats(ctx context.Context, slug string) Result {
	if slug == "" {
		return Absent(slug)
	}

	var (
		wg sync.WaitGroup

		throughput []float64
		latency    []float64
		e2eLatency []float64
		uptime     []*float64
		snapshot   *openrouter.ProviderSnapshot
		uptimeErr  error
		snapErr    error

		mu       sync.Mutex
		panicErr error
	)

	// run executes one fetch in its own goroutine. Each fetch writes only
	// its own result slot; the WaitGroup is the barrier before any read.
	run := func(fn func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					mu.Lock()
					if panicErr == nil {
						panicErr = fmt.Errorf("panic: %v", r)
					}
					mu.Unlock()
				}
			}()
			fn()
		}()
	}

	run(func() { throughput, _ = a.fetcher.SeriesPoints(ctx, slug, openrouter.SeriesThroughput) })
	run(func() { latency, _ = a.fetcher.SeriesPoints(ctx, slug, openrouter.SeriesLatency) })
	run(func() { e2eLatency, _ = a.fetcher.SeriesPoints(ctx, slug, openrouter.SeriesE2ELatency) })
	run(func() { uptime, uptimeErr = a.fetcher.UptimeRecent(ctx, slug) })
	run(func() { snapshot, snapErr = a.fetcher.EndpointStats(ctx, slug, openrouter.DefaultVariant) })

	wg.Wait()

	if panicErr != nil {
		logging.FromContext(ctx).Error().
			Str("model", slug).
			Err(panicErr).
			Msg("Unexpected failure aggregating model stats")
		return Unexpected(slug, panicErr)
	}

	record := &ModelStats{
		Throughput: stats.Reduce(throughput),
		Latency:    stats.Reduce(latency),
		E2ELatency: stats.Reduce(e2eLatency),
	}
	if uptimeErr == nil {
		record.Uptime = stats.Average(uptime)
	}
	if snapErr == nil {
		record.TopProvider = snapshot
	}

	// A record with no usable data at all counts as absent, keeping
	// models whose every series failed out of the final mapping.
	if record.empty() {
		return Absent(slug)
	}

	return OK(slug, record)
}

func (s *ModelStats) empty() bool {
	return s.Throughput.IsZero() &&
		s.Latency.IsZero() &&
		s.E2ELatency.IsZero() &&
		s.Uptime == nil &&
		s.TopProvider == nil
}
