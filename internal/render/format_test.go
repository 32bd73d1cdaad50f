package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Crashthatch/openroutermodeltable/pkg/openrouter"
	"github.com/Crashthatch/openroutermodeltable/pkg/stats"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		name     string
		perToken string
		display  string
		numeric  float64
	}{
		{"typical prompt price", "0.0000025", "$2.5000", 2.5},
		{"free model", "0", "$0.0000", 0},
		{"sub-cent price", "0.00000015", "$0.1500", 0.15},
		{"unparsable", "not-a-number", "N/A", 0},
		{"empty", "", "N/A", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			display, numeric := FormatPrice(tt.perToken)
			assert.Equal(t, tt.display, display)
			assert.InDelta(t, tt.numeric, numeric, 1e-9)
		})
	}
}

func TestFormatContextLength(t *testing.T) {
	assert.Equal(t, "128,000", FormatContextLength(128000))
	assert.Equal(t, "0", FormatContextLength(0))
	assert.Equal(t, "2,000,000", FormatContextLength(2000000))
}

func TestFormatCreated(t *testing.T) {
	assert.Equal(t, "2024-05-13", FormatCreated(1715558400))
	assert.Equal(t, "N/A", FormatCreated(0))
}

func TestFormatArchitecture(t *testing.T) {
	instruct := "chatml"

	tests := []struct {
		name string
		arch openrouter.Architecture
		want string
	}{
		{
			"all fields",
			openrouter.Architecture{Modality: "text->text", Tokenizer: "GPT", InstructType: &instruct},
			"text->text | GPT | chatml",
		},
		{
			"modality only",
			openrouter.Architecture{Modality: "text->text"},
			"text->text",
		},
		{
			"no instruct type",
			openrouter.Architecture{Modality: "text+image->text", Tokenizer: "Claude"},
			"text+image->text | Claude",
		},
		{"empty", openrouter.Architecture{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatArchitecture(tt.arch))
		})
	}
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "42.5", FormatFloat(stats.Ptr(42.5), 1))
	assert.Equal(t, "0.97", FormatFloat(stats.Ptr(0.97), 2))
	assert.Equal(t, "N/A", FormatFloat(nil, 2))
}

func TestSortOrder(t *testing.T) {
	assert.Equal(t, "-1", SortOrder(nil))
	assert.Equal(t, "42.5", SortOrder(stats.Ptr(42.5)))
	assert.Equal(t, "20", SortOrder(stats.Ptr(20)))
}

func TestFormatTokens(t *testing.T) {
	assert.Equal(t, "1,234,567", FormatTokens(1234567, true))
	assert.Equal(t, "N/A", FormatTokens(0, false))
}
