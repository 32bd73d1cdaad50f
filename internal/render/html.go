package render

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"os"

	"github.com/agentstation/utc"

	"github.com/Crashthatch/openroutermodeltable/internal/aggregate"
	"github.com/Crashthatch/openroutermodeltable/internal/analytics"
	"github.com/Crashthatch/openroutermodeltable/pkg/constants"
	"github.com/Crashthatch/openroutermodeltable/pkg/errors"
	"github.com/Crashthatch/openroutermodeltable/pkg/openrouter"
)

//go:embed templates/*.tmpl
var templates embed.FS

// Page is the full data set behind the rendered HTML document.
type Page struct {
	Title       string
	GeneratedAt string
	Rows        []Row
}

// Row holds one model's cells, preformatted. Order fields feed the table
// widget's numeric sorting via data-order attributes.
type Row struct {
	ID              string
	Name            string
	ContextLength   int64
	ContextDisplay  string
	PromptPrice     string
	PromptOrder     float64
	CompletionPrice string
	CompletionOrder float64
	Architecture    string
	Created         string
	TopProvider     string
	Throughput      string
	ThroughputOrder string
	Latency         string
	LatencyOrder    string
	Uptime          string
	UptimeOrder     string
	Tokens          string
	TokensOrder     string
}

// BuildPage joins the model list with the aggregated stats (keyed by slug)
// and the analytics token counts (keyed by identifier variants). Models
// without a stats record render with N/A statistic cells.
func BuildPage(models []openrouter.Model, statsBySlug map[string]*aggregate.ModelStats, counts map[string]openrouter.TokenCounts) Page {
	page := Page{
		Title:       "OpenRouter Models Table",
		GeneratedAt: utc.Now().Format("2006-01-02 15:04:05 UTC"),
		Rows:        make([]Row, 0, len(models)),
	}
	for i := range models {
		page.Rows = append(page.Rows, buildRow(&models[i], statsBySlug[models[i].Slug()], counts))
	}
	return page
}

func buildRow(m *openrouter.Model, ms *aggregate.ModelStats, counts map[string]openrouter.TokenCounts) Row {
	row := Row{
		ID:             m.ID,
		Name:           m.Name,
		ContextLength:  m.ContextLength,
		ContextDisplay: FormatContextLength(m.ContextLength),
		Architecture:   FormatArchitecture(m.Architecture),
		Created:        FormatCreated(m.Created),
		TopProvider:    m.TopProvider.Name,
	}
	if row.TopProvider == "" {
		row.TopProvider = NA
	}

	row.PromptPrice, row.PromptOrder = FormatPrice(m.Pricing.Prompt)
	row.CompletionPrice, row.CompletionOrder = FormatPrice(m.Pricing.Completion)

	var throughput, latency, uptime *float64
	if ms != nil {
		throughput = ms.Throughput.Median
		latency = ms.Latency.Median
		uptime = ms.Uptime
	}
	row.Throughput = FormatFloat(throughput, 1)
	row.ThroughputOrder = SortOrder(throughput)
	row.Latency = FormatFloat(latency, 2)
	row.LatencyOrder = SortOrder(latency)
	row.Uptime = FormatFloat(uptime, 2)
	row.UptimeOrder = SortOrder(uptime)

	tc, ok := analytics.Lookup(counts, m)
	row.Tokens = FormatTokens(tc.TotalTokens, ok)
	if ok {
		row.TokensOrder = FormatFloat(ptr(float64(tc.TotalTokens)), 0)
	} else {
		row.TokensOrder = "-1"
	}

	return row
}

// HTML renders pages from the embedded template.
type HTML struct {
	tmpl *template.Template
}

// NewHTML parses the embedded page template.
func NewHTML() (*HTML, error) {
	tmpl, err := template.ParseFS(templates, "templates/index.html.tmpl")
	if err != nil {
		return nil, errors.WrapResource("parse", "page", "template", err)
	}
	return &HTML{tmpl: tmpl}, nil
}

// Render writes the page document to w.
func (h *HTML) Render(w io.Writer, page Page) error {
	// Render to a buffer first so a template fault cannot leave a
	// truncated document behind the writer.
	var buf bytes.Buffer
	if err := h.tmpl.Execute(&buf, page); err != nil {
		return errors.WrapResource("render", "page", "", err)
	}
	_, err := w.Write(buf.Bytes())
	return errors.WrapIO("write", "page", err)
}

// RenderToFile writes the page document to path.
func (h *HTML) RenderToFile(path string, page Page) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, constants.FilePermissions)
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	defer func() { _ = f.Close() }()
	return h.Render(f, page)
}

func ptr(v float64) *float64 { return &v }
