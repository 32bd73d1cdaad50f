package snapshot_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Crashthatch/openroutermodeltable/internal/aggregate"
	"github.com/Crashthatch/openroutermodeltable/internal/snapshot"
	"github.com/Crashthatch/openroutermodeltable/pkg/openrouter"
	"github.com/Crashthatch/openroutermodeltable/pkg/stats"
)

func TestModelsRoundTrip(t *testing.T) {
	store := snapshot.NewStore(t.TempDir())

	models := []openrouter.Model{
		{
			ID:                  "openai/gpt-4o",
			Name:                "OpenAI: GPT-4o",
			CanonicalSlug:       "openai/gpt-4o",
			ContextLength:       128000,
			Created:             1715558400,
			Pricing:             openrouter.Pricing{Prompt: "0.0000025", Completion: "0.00001"},
			SupportedParameters: []string{"tools"},
		},
	}

	require.NoError(t, store.SaveModels(models))

	loaded, err := store.LoadModels()
	require.NoError(t, err)
	if diff := cmp.Diff(models, loaded.Data); diff != "" {
		t.Errorf("model list changed through the round trip (-want +got):\n%s", diff)
	}
	assert.False(t, loaded.FetchedAt.IsZero())
}

func TestStatsRoundTripPreservesNulls(t *testing.T) {
	store := snapshot.NewStore(t.TempDir())

	statsBySlug := map[string]*aggregate.ModelStats{
		"openai/gpt-4o": {
			Throughput: stats.Reduce([]float64{10, 20, 30}),
			Uptime:     stats.Ptr(0.97),
		},
	}

	require.NoError(t, store.SaveStats(statsBySlug))

	loaded, err := store.LoadStats()
	require.NoError(t, err)
	record := loaded.Data["openai/gpt-4o"]
	require.NotNil(t, record)
	assert.Equal(t, 20.0, *record.Throughput.Median)
	assert.True(t, record.Latency.IsZero(), "missing summaries stay null through the round trip")
	assert.Nil(t, record.TopProvider)
	require.NotNil(t, record.Uptime)
	assert.Equal(t, 0.97, *record.Uptime)
}

func TestLoadStatsMissingFile(t *testing.T) {
	store := snapshot.NewStore(t.TempDir())

	loaded, err := store.LoadStats()
	require.NoError(t, err)
	assert.Empty(t, loaded.Data)
}

func TestLoadAnalyticsMissingFile(t *testing.T) {
	store := snapshot.NewStore(t.TempDir())

	loaded, err := store.LoadAnalytics()
	require.NoError(t, err)
	assert.Empty(t, loaded.Data)
}

func TestLoadModelsMissingFileIsError(t *testing.T) {
	store := snapshot.NewStore(t.TempDir())

	_, err := store.LoadModels()
	assert.Error(t, err, "a run cannot proceed without the model list")
}

func TestAnalyticsRoundTrip(t *testing.T) {
	store := snapshot.NewStore(t.TempDir())

	counts := map[string]openrouter.TokenCounts{
		"openai/gpt-4o": {TotalPromptTokens: 10, TotalCompletionTokens: 5, TotalTokens: 15},
	}
	require.NoError(t, store.SaveAnalytics(counts))

	loaded, err := store.LoadAnalytics()
	require.NoError(t, err)
	assert.Equal(t, int64(15), loaded.Data["openai/gpt-4o"].TotalTokens)
}

func TestWriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := snapshot.NewStore(dir)

	require.NoError(t, store.SaveModels(nil))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "models_data.json", entries[0].Name())
}

func TestCorruptSnapshotIsParseError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "models_data.json"), []byte("{broken"), 0o644))

	store := snapshot.NewStore(dir)
	_, err := store.LoadModels()
	assert.Error(t, err)
}

func TestStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	store := snapshot.NewStore(dir)

	require.NoError(t, store.SaveModels(nil))
	_, err := os.Stat(filepath.Join(dir, "models_data.json"))
	assert.NoError(t, err)
}
