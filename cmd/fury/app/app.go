// Package app provides the application context and dependency management
// for the fury CLI. It centralizes configuration, logging, and lazy
// construction of the SDK client shared by all commands.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/furylabs/fury-go"
)

// App represents the fury CLI application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// SDK client (lazy-initialized, singleton)
	mu     sync.RWMutex
	client *fury.Client
}

// New creates a new App instance with the given version information.
func New(version, commit, date string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, err
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

// Version returns the version string.
func (a *App) Version() string {
	return a.version
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Client returns the SDK client, creating it lazily on first use. This is
// thread-safe and ensures only one instance is created.
func (a *App) Client() (*fury.Client, error) {
	a.mu.RLock()
	if a.client != nil {
		c := a.client
		a.mu.RUnlock()
		return c, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.client != nil {
		return a.client, nil
	}

	opts := []fury.Option{
		fury.WithLogger(*a.logger),
	}
	if a.config.APIKey != "" {
		opts = append(opts, fury.WithAPIKey(a.config.APIKey))
	}
	if a.config.Timeout > 0 {
		opts = append(opts, fury.WithTimeout(a.config.Timeout))
	}

	client, err := fury.New(a.config.BaseURL, opts...)
	if err != nil {
		return nil, err
	}

	a.client = client
	return client, nil
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

// WithClient sets a custom SDK client (useful for testing).
func WithClient(client *fury.Client) Option {
	return func(a *App) error {
		a.client = client
		return nil
	}
}
