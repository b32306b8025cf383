// Package config provides configuration types and defaults for smartcrf.
package config

import "errors"

// Sentinel errors for configuration validation.
var (
	// ErrInvalidRange indicates a target range where min is not below max.
	ErrInvalidRange = errors.New("target range min must be below max")

	// ErrNonPositiveRange indicates a target range bound at or below zero.
	ErrNonPositiveRange = errors.New("target range bounds must be positive")

	// ErrIdealOutOfRange indicates an ideal bitrate outside [min, max].
	ErrIdealOutOfRange = errors.New("ideal bitrate outside target range")

	// ErrInvalidRoundMode indicates an unknown rounding mode name.
	ErrInvalidRoundMode = errors.New("invalid rounding mode")

	// ErrNoInputDir indicates a missing input directory.
	ErrNoInputDir = errors.New("input directory is required")
)
