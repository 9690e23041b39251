package config

import "errors"

var (
	// ErrInvalidThreshold is returned when the valid threshold is not positive
	ErrInvalidThreshold = errors.New("valid threshold must be positive")
	// ErrInvalidWorkers is returned when the worker count is not positive
	ErrInvalidWorkers = errors.New("worker count must be positive")
)

// Validate checks configuration invariants that env parsing cannot enforce
func (c *Config) Validate() error {
	if c.ValidThreshold <= 0 {
		return ErrInvalidThreshold
	}

	if c.Workers <= 0 {
		return ErrInvalidWorkers
	}

	return nil
}
