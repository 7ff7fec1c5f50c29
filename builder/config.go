// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • newBuilderConfig applies options in order (later overrides earlier).
//   • An invalid option is recorded, not panicked on; Build reports it.

package builder

import "fmt"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// scale multiplies every generated coordinate (>0).
	scale float32
	// soup unshares positions after all constructors ran.
	soup bool

	err error
}

const defaultScale = float32(1)

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{scale: defaultScale}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// BuilderOption customizes construction by mutating a builderConfig.
type BuilderOption func(*builderConfig)

// WithScale sets the uniform scale applied to generated coordinates.
// s must be positive and finite; otherwise Build returns ErrOptionViolation.
func WithScale(s float32) BuilderOption {
	return func(c *builderConfig) {
		if !(s > 0) || s > maxScale {
			c.err = fmt.Errorf("%w: scale must be in (0, %g], got %g", ErrOptionViolation, maxScale, s)
			return
		}
		c.scale = s
	}
}

// WithSoup makes Build emit one position per triangle corner and per
// segment endpoint, as an unindexed mesh export would.
func WithSoup() BuilderOption {
	return func(c *builderConfig) { c.soup = true }
}

// maxScale keeps scaled coordinates finite in float32.
const maxScale = float32(1e30)
