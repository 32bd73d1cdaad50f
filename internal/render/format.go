// Package render joins the model list with aggregated stats and analytics
// and emits the models table as HTML or markdown.
package render

import (
	"fmt"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Crashthatch/openroutermodeltable/pkg/openrouter"
)

// NA is the cell placeholder for absent values.
const NA = "N/A"

// printer renders integers with thousands separators.
var printer = message.NewPrinter(language.English)

// FormatPrice converts a per-token decimal price string to a per-million-
// tokens display value. The numeric return feeds the table's sort order;
// unparsable prices display as N/A and sort as zero, matching the page's
// historical behavior.
func FormatPrice(perToken string) (display string, numeric float64) {
	v, err := strconv.ParseFloat(perToken, 64)
	if err != nil {
		return NA, 0
	}
	numeric = v * 1_000_000
	return fmt.Sprintf("$%.4f", numeric), numeric
}

// FormatContextLength renders a context length with thousands separators.
func FormatContextLength(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatCreated renders a Unix timestamp as a UTC calendar date. Zero means
// the API reported no creation time.
func FormatCreated(unix int64) string {
	if unix == 0 {
		return NA
	}
	return time.Unix(unix, 0).UTC().Format("2006-01-02")
}

// FormatArchitecture joins the architecture descriptor fields the way the
// page has always shown them: modality, then tokenizer, then instruct type,
// separated by pipes, omitting empty parts after the first.
func FormatArchitecture(a openrouter.Architecture) string {
	out := a.Modality
	if a.Tokenizer != "" {
		out += " | " + a.Tokenizer
	}
	if a.InstructType != nil && *a.InstructType != "" {
		out += " | " + *a.InstructType
	}
	return out
}

// FormatFloat renders a nullable float with the given precision, or N/A.
func FormatFloat(v *float64, decimals int) string {
	if v == nil {
		return NA
	}
	return strconv.FormatFloat(*v, 'f', decimals, 64)
}

// FormatCount renders a nullable integer count with thousands separators.
func FormatCount(v *int64) string {
	if v == nil {
		return NA
	}
	return printer.Sprintf("%d", *v)
}

// FormatTokens renders a token total with thousands separators; zero totals
// mean the model had no analytics record.
func FormatTokens(total int64, ok bool) string {
	if !ok {
		return NA
	}
	return printer.Sprintf("%d", total)
}

// SortOrder renders the numeric sort key for a nullable value. Absent
// values sort before every real measurement.
func SortOrder(v *float64) string {
	if v == nil {
		return "-1"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
