// Package analytics matches per-model token-usage records against models.
// The analytics endpoint keys its records by whichever identifier variant
// it had on hand, so lookups try several known variants in a fixed
// priority order.
package analytics

import (
	"strings"

	"github.com/Crashthatch/openroutermodeltable/pkg/openrouter"
)

// Lookup finds the token counts for a model. Key variants are tried in
// priority order: the raw model ID, the ID with its ":variant" suffix
// stripped, the canonical slug, then the permaslug. The first match wins
// even if later variants would disagree.
func Lookup(counts map[string]openrouter.TokenCounts, m *openrouter.Model) (openrouter.TokenCounts, bool) {
	for _, key := range keyVariants(m) {
		if key == "" {
			continue
		}
		if tc, ok := counts[key]; ok {
			return tc, true
		}
	}
	return openrouter.TokenCounts{}, false
}

// keyVariants returns the candidate analytics keys for a model in
// match-priority order.
func keyVariants(m *openrouter.Model) []string {
	return []string{
		m.ID,
		stripVariant(m.ID),
		m.CanonicalSlug,
		m.Permaslug,
	}
}

// stripVariant removes a ":variant" suffix from a model ID, e.g.
// "openai/gpt-4o:extended" becomes "openai/gpt-4o".
func stripVariant(id string) string {
	if i := strings.IndexByte(id, ':'); i >= 0 {
		return id[:i]
	}
	return id
}
