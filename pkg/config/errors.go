package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigNotFound  = errors.New("configuration not found")
	ErrConfigFileParse = errors.New("failed to parse config file")

	// Configuration validation errors.
	ErrEndpointEmpty        = errors.New("endpoint cannot be empty")
	ErrEndpointInvalid      = errors.New("endpoint is not a valid URL")
	ErrDirectoryEmpty       = errors.New("directory cannot be empty")
	ErrDirectoryNotAbsolute = errors.New("directory must be an absolute path")
	ErrUnknownImpl          = errors.New("unknown filesystem implementation")
)
