package main

import "errors"

// Error definitions for the hpg command.
var (
	ErrConfigExists = errors.New("configuration already exists")
	ErrCheckFailed  = errors.New("round-trip check failed")
)
