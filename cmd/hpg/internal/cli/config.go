// Package cli provides common configuration and utility functions for the hpg CLI.
package cli

import (
	"fmt"

	"github.com/lerenn/hdfs-playground/pkg/config"
	"github.com/lerenn/hdfs-playground/pkg/fs"
	"github.com/lerenn/hdfs-playground/pkg/logger"
	"github.com/lerenn/hdfs-playground/pkg/session"
)

var (
	// Quiet suppresses all output except errors.
	Quiet bool
	// Verbose enables verbose output.
	Verbose bool
	// ConfigPath specifies a custom config file path.
	ConfigPath string
	// Endpoint overrides the configured endpoint.
	Endpoint string
	// Impl overrides the configured implementation identifier.
	Impl string
	// Directory overrides the configured working directory.
	Directory string
)

// NewConfigManager creates a new Manager with the appropriate config path.
func NewConfigManager() config.Manager {
	path := ConfigPath
	if path == "" {
		path = config.DefaultConfigPath()
	}
	if expanded, err := fs.ExpandPath(path); err == nil {
		path = expanded
	}
	return config.NewManager(path)
}

// LoadConfig loads the configuration file (or the embedded default when it is
// missing) with environment overrides, then applies flag overrides.
func LoadConfig() (config.Config, error) {
	return LoadConfigFrom(NewConfigManager())
}

// LoadConfigFrom is LoadConfig reading through manager.
func LoadConfigFrom(manager config.Manager) (config.Config, error) {
	cfg, err := manager.GetConfigWithFallback()
	if err != nil {
		return config.Config{}, err
	}

	if Endpoint != "" {
		cfg.Endpoint = Endpoint
	}
	if Impl != "" {
		cfg.Impl = Impl
	}
	if Directory != "" {
		cfg.Directory = Directory
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// NewLogger returns the logger matching the verbosity flags.
func NewLogger() logger.Logger {
	if Verbose && !Quiet {
		return logger.NewDefaultLogger()
	}
	return logger.NewNoopLogger()
}

// OpenSession loads the configuration and opens a session on it.
func OpenSession(opts ...session.Option) (*session.Session, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	opts = append([]session.Option{session.WithLogger(NewLogger())}, opts...)
	return session.Open(cfg, opts...)
}
