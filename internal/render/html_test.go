package render

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Crashthatch/openroutermodeltable/internal/aggregate"
	"github.com/Crashthatch/openroutermodeltable/pkg/openrouter"
	"github.com/Crashthatch/openroutermodeltable/pkg/stats"
)

func testModels() []openrouter.Model {
	return []openrouter.Model{
		{
			ID:            "openai/gpt-4o",
			Name:          "OpenAI: GPT-4o",
			CanonicalSlug: "openai/gpt-4o",
			ContextLength: 128000,
			Created:       1715558400,
			Architecture:  openrouter.Architecture{Modality: "text+image->text", Tokenizer: "GPT"},
			Pricing:       openrouter.Pricing{Prompt: "0.0000025", Completion: "0.00001"},
			TopProvider:   openrouter.TopProvider{Name: "OpenAI"},
		},
		{
			ID:      "mystery/model",
			Name:    "Mystery <Model> & Co",
			Pricing: openrouter.Pricing{Prompt: "bogus", Completion: ""},
		},
	}
}

func testStats() map[string]*aggregate.ModelStats {
	return map[string]*aggregate.ModelStats{
		"openai/gpt-4o": {
			Throughput: stats.Reduce([]float64{10, 20, 30}),
			Latency:    stats.Reduce([]float64{0.5, 1.5}),
			Uptime:     stats.Ptr(0.97),
		},
	}
}

func TestBuildPage(t *testing.T) {
	counts := map[string]openrouter.TokenCounts{
		"openai/gpt-4o": {TotalTokens: 1234567},
	}

	page := BuildPage(testModels(), testStats(), counts)
	require.Len(t, page.Rows, 2)

	first := page.Rows[0]
	assert.Equal(t, "openai/gpt-4o", first.ID)
	assert.Equal(t, "128,000", first.ContextDisplay)
	assert.Equal(t, "$2.5000", first.PromptPrice)
	assert.Equal(t, "$10.0000", first.CompletionPrice)
	assert.Equal(t, "2024-05-13", first.Created)
	assert.Equal(t, "OpenAI", first.TopProvider)
	assert.Equal(t, "20.0", first.Throughput)
	assert.Equal(t, "1.00", first.Latency)
	assert.Equal(t, "0.97", first.Uptime)
	assert.Equal(t, "1,234,567", first.Tokens)

	// No slug, no stats record, unparsable pricing: everything degrades
	// to N/A without dropping the row.
	second := page.Rows[1]
	assert.Equal(t, NA, second.PromptPrice)
	assert.Equal(t, NA, second.Throughput)
	assert.Equal(t, "-1", second.ThroughputOrder)
	assert.Equal(t, NA, second.Uptime)
	assert.Equal(t, NA, second.Tokens)
	assert.Equal(t, NA, second.TopProvider)
	assert.Equal(t, NA, second.Created)
}

func TestHTMLRender(t *testing.T) {
	renderer, err := NewHTML()
	require.NoError(t, err)

	page := BuildPage(testModels(), testStats(), nil)

	var buf bytes.Buffer
	require.NoError(t, renderer.Render(&buf, page))
	out := buf.String()

	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, "OpenRouter Models Table")
	assert.Contains(t, out, "openai/gpt-4o")
	assert.Contains(t, out, `data-order="20"`)
	assert.Contains(t, out, "$2.5000")
	assert.Contains(t, out, "modelsTable")

	// html/template escapes model-supplied text.
	assert.NotContains(t, out, "<Model>")
	assert.Contains(t, out, "Mystery")

	// One row per model, no more.
	assert.Equal(t, 2, strings.Count(out, `<td class="model-id">`))
}

func TestMarkdownRender(t *testing.T) {
	page := BuildPage(testModels(), testStats(), nil)

	var buf bytes.Buffer
	require.NoError(t, NewMarkdown().Render(&buf, page))
	out := buf.String()

	assert.Contains(t, out, "# OpenRouter Models Table")
	assert.Contains(t, out, "openai/gpt-4o")
	assert.Contains(t, out, "| Model ID |")
	assert.Contains(t, out, "N/A")
}

func TestRenderToFile(t *testing.T) {
	renderer, err := NewHTML()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, renderer.RenderToFile(path, BuildPage(testModels(), nil, nil)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "modelsTable")
}
