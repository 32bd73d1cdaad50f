package render

import (
	"io"

	md "github.com/nao1215/markdown"

	"github.com/Crashthatch/openroutermodeltable/pkg/errors"
)

// Markdown renders the models table as a markdown document, for embedding
// in READMEs or docs sites.
type Markdown struct{}

// NewMarkdown creates a markdown renderer.
func NewMarkdown() *Markdown {
	return &Markdown{}
}

// Render writes the page as a markdown document to w.
func (r *Markdown) Render(w io.Writer, page Page) error {
	rows := make([][]string, 0, len(page.Rows))
	for _, row := range page.Rows {
		rows = append(rows, []string{
			row.ID,
			row.Name,
			row.ContextDisplay,
			row.PromptPrice,
			row.CompletionPrice,
			row.Created,
			row.TopProvider,
			row.Throughput,
			row.Latency,
			row.Uptime,
		})
	}

	doc := md.NewMarkdown(w).
		H1(page.Title).
		PlainTextf("Last updated: %s", page.GeneratedAt).
		LF().
		Table(md.TableSet{
			Header: []string{
				"Model ID", "Name", "Context", "Prompt $/1M", "Completion $/1M",
				"Created", "Top Provider", "Throughput (tok/s)", "Latency (s)", "Uptime",
			},
			Rows: rows,
		})

	if err := doc.Build(); err != nil {
		return errors.WrapResource("render", "page", "markdown", err)
	}
	return nil
}
