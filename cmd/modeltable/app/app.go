// Package app provides the application context and dependency management
// for the modeltable CLI. It centralizes configuration, logging, and the
// OpenRouter client so commands share one set of wired dependencies.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/Crashthatch/openroutermodeltable/internal/aggregate"
	"github.com/Crashthatch/openroutermodeltable/internal/snapshot"
	"github.com/Crashthatch/openroutermodeltable/pkg/errors"
	"github.com/Crashthatch/openroutermodeltable/pkg/openrouter"
)

// App represents the modeltable application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Client instance (lazy-initialized, singleton)
	mu     sync.RWMutex
	client *openrouter.Client
}

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Client returns the OpenRouter client, creating it lazily if needed.
// This is thread-safe and ensures only one instance is created.
func (a *App) Client() *openrouter.Client {
	a.mu.RLock()
	if a.client != nil {
		c := a.client
		a.mu.RUnlock()
		return c
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.client != nil {
		return a.client
	}

	a.client = openrouter.NewClient(a.buildClientOptions()...)
	return a.client
}

// Batcher returns a batch orchestrator wired to the app client.
func (a *App) Batcher() *aggregate.Batcher {
	agg := aggregate.New(a.Client())
	var opts []aggregate.BatcherOption
	if a.config.BatchSize > 0 {
		opts = append(opts, aggregate.WithBatchSize(a.config.BatchSize))
	}
	if a.config.BatchDelay > 0 {
		opts = append(opts, aggregate.WithBatchDelay(a.config.BatchDelay))
	}
	return aggregate.NewBatcher(agg, opts...)
}

// Store returns the snapshot store rooted at the configured data directory.
func (a *App) Store() *snapshot.Store {
	return snapshot.NewStore(a.config.DataDir)
}

// buildClientOptions constructs client options from the app configuration.
func (a *App) buildClientOptions() []openrouter.Option {
	var opts []openrouter.Option
	if a.config.APIBaseURL != "" {
		opts = append(opts, openrouter.WithBaseURL(a.config.APIBaseURL))
	}
	if a.config.FrontendBaseURL != "" {
		opts = append(opts, openrouter.WithFrontendURL(a.config.FrontendBaseURL))
	}
	return opts
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithClient sets a custom client instance (useful for testing).
func WithClient(client *openrouter.Client) Option {
	return func(a *App) error {
		a.client = client
		return nil
	}
}
