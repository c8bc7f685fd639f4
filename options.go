package tirocks

import "log/slog"

// openConfig holds everything Open needs, serializable or not.
type openConfig struct {
	Config
	logger *slog.Logger
}

func defaultOpenConfig() openConfig {
	return openConfig{
		Config: DefaultConfig(),
		logger: slog.Default(),
	}
}

// Option configures Open and DestroyDB.
type Option func(*openConfig)

// WithConfig replaces the whole Config, e.g. one returned by LoadConfig.
// Options applied after it still take effect.
func WithConfig(cfg Config) Option {
	return func(c *openConfig) {
		c.Config = cfg
	}
}

// WithCreateIfMissing creates the database when none exists.
func WithCreateIfMissing(enabled bool) Option {
	return func(c *openConfig) {
		c.CreateIfMissing = enabled
	}
}

// WithErrorIfExists fails the open when a database already exists.
func WithErrorIfExists(enabled bool) Option {
	return func(c *openConfig) {
		c.ErrorIfExists = enabled
	}
}

// WithReadOnly opens without write access.
func WithReadOnly(enabled bool) Option {
	return func(c *openConfig) {
		c.ReadOnly = enabled
	}
}

// WithParallelism sizes the background thread pools.
func WithParallelism(threads int) Option {
	return func(c *openConfig) {
		c.Parallelism = threads
	}
}

// WithSyncWrites fsyncs the log before each write returns.
func WithSyncWrites(enabled bool) Option {
	return func(c *openConfig) {
		c.SyncWrites = enabled
	}
}

// WithLogger sets the logger. A nil logger keeps slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *openConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}
