// Package constants provides shared constants used throughout the modeltable codebase.
// This includes timeouts, batch sizing, file permissions, and other configuration
// values that should be consistent across the application.
package constants

import "time"

// API endpoint constants define the default OpenRouter API locations.
const (
	// DefaultAPIBaseURL is the base URL for the public OpenRouter API
	DefaultAPIBaseURL = "https://openrouter.ai/api/v1"

	// DefaultFrontendBaseURL is the base URL for the OpenRouter frontend API
	// that serves per-model statistics and analytics
	DefaultFrontendBaseURL = "https://openrouter.ai/api/frontend"

	// UserAgent is sent with every outbound request
	UserAgent = "OpenRouterModelTable/1.0"
)

// Timeout constants define various timeout durations used in the application
const (
	// DefaultHTTPTimeout is the standard timeout for HTTP requests to the API
	DefaultHTTPTimeout = 30 * time.Second

	// CommandTimeout is the default timeout for CLI commands
	CommandTimeout = 10 * time.Minute
)

// Batch constants control the stats aggregation pipeline
const (
	// StatsBatchSize is the number of models aggregated concurrently per batch
	StatsBatchSize = 10

	// StatsBatchDelay is the pause between consecutive batches, a crude
	// self-imposed rate limit against the frontend API
	StatsBatchDelay = 1 * time.Second

	// StatsFetchCount is the number of statistic series fetched per model
	StatsFetchCount = 5
)

// Cache constants
const (
	// CacheTTL is the time-to-live for cached API responses
	CacheTTL = 15 * time.Minute

	// CacheCleanupInterval is how often to clean expired cache entries
	CacheCleanupInterval = 5 * time.Minute
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Output constants
const (
	// DefaultOutputDir is where snapshots and the rendered page are written
	DefaultOutputDir = "."

	// ModelsSnapshotFile is the raw model-list snapshot filename
	ModelsSnapshotFile = "models_data.json"

	// StatsSnapshotFile is the aggregated-stats snapshot filename
	StatsSnapshotFile = "model_stats.json"

	// AnalyticsSnapshotFile is the analytics snapshot filename
	AnalyticsSnapshotFile = "analytics_data.json"

	// PageFile is the rendered HTML page filename
	PageFile = "index.html"
)
