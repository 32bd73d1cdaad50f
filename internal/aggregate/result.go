// Package aggregate fetches per-model statistic series, reduces them to
// summary statistics, and orchestrates batched aggregation across the full
// model list.
package aggregate

import (
	"github.com/Crashthatch/openroutermodeltable/pkg/openrouter"
	"github.com/Crashthatch/openroutermodeltable/pkg/stats"
)

// ModelStats is the aggregated statistics record for one model. Field names
// in the serialized form match the stats snapshot consumed by the renderer.
type ModelStats struct {
	Throughput  stats.Summary                `json:"throughput"`
	Latency     stats.Summary                `json:"latency"`
	E2ELatency  stats.Summary                `json:"e2eLatency"`
	Uptime      *float64                     `json:"uptime"`
	TopProvider *openrouter.ProviderSnapshot `json:"topProvider"`
}

// Outcome classifies how one model's aggregation resolved.
type Outcome int

// Aggregation outcomes. Absent covers both a missing slug and an
// aggregation that found no usable data; Unexpected covers failures that
// should not happen and are logged.
const (
	OutcomeOK Outcome = iota
	OutcomeAbsent
	OutcomeUnexpected
)

// Result is the outcome of aggregating one model's statistics. Exactly one
// of Stats and Err is set for OK and Unexpected; both are empty for Absent.
type Result struct {
	Slug    string
	Outcome Outcome
	Stats   *ModelStats
	Err     error
}

// OK builds a successful result.
func OK(slug string, s *ModelStats) Result {
	return Result{Slug: slug, Outcome: OutcomeOK, Stats: s}
}

// Absent builds a result for a model that could not be aggregated for an
// expected reason (no slug, no data).
func Absent(slug string) Result {
	return Result{Slug: slug, Outcome: OutcomeAbsent}
}

// Unexpected builds a result for a failure that should not happen. The
// orchestrator treats it like Absent but it is surfaced to the log.
func Unexpected(slug string, err error) Result {
	return Result{Slug: slug, Outcome: OutcomeUnexpected, Err: err}
}
