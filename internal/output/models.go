package output

import (
	"github.com/olekukonko/tablewriter/tw"

	"github.com/Crashthatch/openroutermodeltable/internal/aggregate"
	"github.com/Crashthatch/openroutermodeltable/internal/render"
	"github.com/Crashthatch/openroutermodeltable/pkg/openrouter"
)

// ModelsToTableData converts a model list to tabular form. Wide adds the
// architecture and pricing columns.
func ModelsToTableData(models []openrouter.Model, wide bool) Data {
	headers := []string{"ID", "Name", "Context", "Created"}
	alignment := []tw.Align{tw.AlignLeft, tw.AlignLeft, tw.AlignRight, tw.AlignLeft}
	if wide {
		headers = append(headers, "Prompt $/1M", "Completion $/1M", "Architecture", "Top Provider")
		alignment = append(alignment, tw.AlignRight, tw.AlignRight, tw.AlignLeft, tw.AlignLeft)
	}

	rows := make([][]string, 0, len(models))
	for i := range models {
		m := &models[i]
		row := []string{
			m.ID,
			m.Name,
			render.FormatContextLength(m.ContextLength),
			render.FormatCreated(m.Created),
		}
		if wide {
			prompt, _ := render.FormatPrice(m.Pricing.Prompt)
			completion, _ := render.FormatPrice(m.Pricing.Completion)
			row = append(row, prompt, completion, render.FormatArchitecture(m.Architecture), m.TopProvider.Name)
		}
		rows = append(rows, row)
	}

	return Data{Headers: headers, Rows: rows, ColumnAlignment: alignment}
}

// StatsToTableData converts aggregated model stats to tabular form, keyed
// and sorted the way the caller passes them.
func StatsToTableData(slugs []string, statsBySlug map[string]*aggregate.ModelStats) Data {
	headers := []string{"Slug", "Throughput (tok/s)", "Latency (s)", "Uptime"}
	alignment := []tw.Align{tw.AlignLeft, tw.AlignRight, tw.AlignRight, tw.AlignRight}

	rows := make([][]string, 0, len(slugs))
	for _, slug := range slugs {
		ms := statsBySlug[slug]
		var throughput, latency, uptime *float64
		if ms != nil {
			throughput = ms.Throughput.Median
			latency = ms.Latency.Median
			uptime = ms.Uptime
		}
		rows = append(rows, []string{
			slug,
			render.FormatFloat(throughput, 1),
			render.FormatFloat(latency, 2),
			render.FormatFloat(uptime, 2),
		})
	}

	return Data{Headers: headers, Rows: rows, ColumnAlignment: alignment}
}
