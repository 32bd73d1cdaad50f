package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Crashthatch/openroutermodeltable/pkg/openrouter"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"JSON", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"table", FormatTable, false},
		{"wide", FormatWide, false},
		{"", Format(""), false},
		{"xml", Format(""), true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if tt.wantErr {
			assert.Error(t, err, tt.input)
			continue
		}
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatJSON)
	require.NoError(t, f.Format(&buf, map[string]int{"total": 42}))
	assert.JSONEq(t, `{"total": 42}`, buf.String())
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatYAML)
	require.NoError(t, f.Format(&buf, map[string]string{"id": "openai/gpt-4o"}))
	assert.Contains(t, buf.String(), "id: openai/gpt-4o")
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatTable)
	data := Data{
		Headers: []string{"ID", "Name"},
		Rows:    [][]string{{"openai/gpt-4o", "GPT-4o"}},
	}
	require.NoError(t, f.Format(&buf, data))
	out := buf.String()
	assert.Contains(t, out, "openai/gpt-4o")
	assert.Contains(t, out, "GPT-4o")
}

func TestTableFormatterFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatTable)
	require.NoError(t, f.Format(&buf, map[string]bool{"ok": true}))
	assert.JSONEq(t, `{"ok": true}`, buf.String())
}

func TestModelsToTableData(t *testing.T) {
	models := []openrouter.Model{
		{
			ID:            "openai/gpt-4o",
			Name:          "GPT-4o",
			ContextLength: 128000,
			Created:       1715558400,
			Pricing:       openrouter.Pricing{Prompt: "0.0000025", Completion: "0.00001"},
		},
	}

	data := ModelsToTableData(models, false)
	require.Len(t, data.Rows, 1)
	assert.Equal(t, []string{"ID", "Name", "Context", "Created"}, data.Headers)
	assert.Equal(t, "128,000", data.Rows[0][2])

	wide := ModelsToTableData(models, true)
	require.Len(t, wide.Headers, 8)
	assert.Equal(t, "$2.5000", wide.Rows[0][4])
}
