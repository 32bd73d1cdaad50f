// Package openrouter provides a client for the OpenRouter model-list and
// frontend statistics APIs, along with the response types they return.
package openrouter

import "slices"

// Model represents a model in OpenRouter API format.
// Field order matches the OpenRouter API response schema.
type Model struct {
	ID                  string       `json:"id"`
	Name                string       `json:"name"`
	Created             int64        `json:"created"`
	Description         string       `json:"description"`
	Architecture        Architecture `json:"architecture"`
	TopProvider         TopProvider  `json:"top_provider"`
	Pricing             Pricing      `json:"pricing"`
	CanonicalSlug       string       `json:"canonical_slug"`
	Permaslug           string       `json:"permaslug,omitempty"`
	ContextLength       int64        `json:"context_length"`
	HuggingFaceID       string       `json:"hugging_face_id,omitempty"`
	PerRequestLimits    any          `json:"per_request_limits"`
	SupportedParameters []string     `json:"supported_parameters"`
}

// Slug returns the identifier used to query per-model statistics. The
// frontend API accepts the permaslug where present, otherwise the canonical
// slug. An empty return means the model cannot be queried for stats.
func (m *Model) Slug() string {
	if m.Permaslug != "" {
		return m.Permaslug
	}
	return m.CanonicalSlug
}

// Supports reports whether the given parameter name appears in the model's
// supported_parameters set.
func (m *Model) Supports(param string) bool {
	return slices.Contains(m.SupportedParameters, param)
}

// SupportsTools reports whether the model accepts tool definitions.
func (m *Model) SupportsTools() bool { return m.Supports("tools") }

// SupportsReasoning reports whether the model accepts reasoning parameters.
func (m *Model) SupportsReasoning() bool { return m.Supports("reasoning") }

// SupportsIncludeReasoning reports whether reasoning traces can be returned.
func (m *Model) SupportsIncludeReasoning() bool { return m.Supports("include_reasoning") }

// SupportsResponseFormat reports whether the model accepts response_format.
func (m *Model) SupportsResponseFormat() bool { return m.Supports("response_format") }

// SupportsStructuredOutputs reports whether the model supports structured outputs.
func (m *Model) SupportsStructuredOutputs() bool { return m.Supports("structured_outputs") }

// SupportsCaching reports whether the model supports prompt caching.
func (m *Model) SupportsCaching() bool { return m.Supports("caching") }

// Architecture represents the architecture object in OpenRouter format.
type Architecture struct {
	Modality         string   `json:"modality,omitempty"`
	InputModalities  []string `json:"input_modalities,omitempty"`
	OutputModalities []string `json:"output_modalities,omitempty"`
	Tokenizer        string   `json:"tokenizer,omitempty"`
	InstructType     *string  `json:"instruct_type"`
}

// Pricing represents the pricing object in OpenRouter format. Values are
// decimal strings of cost per token (or per operation for request/image).
type Pricing struct {
	Prompt            string `json:"prompt"`
	Completion        string `json:"completion"`
	Request           string `json:"request,omitempty"`
	Image             string `json:"image,omitempty"`
	WebSearch         string `json:"web_search,omitempty"`
	InternalReasoning string `json:"internal_reasoning,omitempty"`
	InputCacheRead    string `json:"input_cache_read,omitempty"`
	InputCacheWrite   string `json:"input_cache_write,omitempty"`
}

// TopProvider represents the top provider object in OpenRouter format.
type TopProvider struct {
	Name                string `json:"name,omitempty"`
	ContextLength       int64  `json:"context_length,omitempty"`
	MaxCompletionTokens int64  `json:"max_completion_tokens,omitempty"`
	IsModerated         bool   `json:"is_moderated,omitempty"`
}

// ModelsResponse represents the root response object for the OpenRouter
// models API.
type ModelsResponse struct {
	Data []Model `json:"data"`
}

// TokenCounts holds per-model aggregate token usage from the analytics
// endpoint.
type TokenCounts struct {
	TotalPromptTokens     int64 `json:"total_prompt_tokens"`
	TotalCompletionTokens int64 `json:"total_completion_tokens"`
	TotalTokens           int64 `json:"total_tokens"`
	RequestCount          int64 `json:"request_count,omitempty"`
}

// ProviderSnapshot is the observed performance of a model's top-ranked
// endpoint. Missing fields stay nil.
type ProviderSnapshot struct {
	P50Throughput *float64 `json:"p50_throughput"`
	P50Latency    *float64 `json:"p50_latency"`
	RequestCount  *int64   `json:"request_count"`
}

// Series names a per-model statistic series served by the frontend API.
type Series string

// Statistic series parameterizing the frontend stats endpoints.
const (
	SeriesThroughput Series = "throughput-comparison"
	SeriesLatency    Series = "latency-comparison"
	SeriesE2ELatency Series = "latency-e2e-comparison"
	SeriesUptime     Series = "uptime-recent"
)

// DefaultVariant is the endpoint-stats variant queried when none is given.
const DefaultVariant = "standard"
