package roundtrip

import "errors"

// Error definitions for roundtrip package.
var (
	// ErrAssertion marks every failure where the observed state differs from the expected one.
	ErrAssertion = errors.New("assertion failed")

	// Assertion details, always wrapped together with ErrAssertion.
	ErrNotCreated      = errors.New("path does not report as a file after write")
	ErrContentMismatch = errors.New("content read back differs from content written")
	ErrNotRemoved      = errors.New("path still reports as a file after delete")

	// Input errors.
	ErrInvalidContent = errors.New("content is not valid UTF-8")
	ErrUnknownVariant = errors.New("unknown round-trip variant")
)
