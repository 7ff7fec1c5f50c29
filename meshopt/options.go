// SPDX-License-Identifier: MIT

// Package meshopt configures the construction facades of the ifs, halfedge
// and bmesh packages.
//
// Options follow the functional style used across the module: Option values
// mutate an Options struct seeded by DefaultOptions. Invalid values are
// recorded and surfaced as ErrOptionViolation by Resolve, so facades never
// panic on bad configuration.
package meshopt

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrOptionViolation is returned by Resolve when an Option received an
// invalid value.
var ErrOptionViolation = errors.New("meshopt: invalid option supplied")

// Option configures construction via functional arguments.
type Option func(*Options)

// Options holds the resolved construction settings.
type Options struct {
	// Logger receives build summaries (Debug) and skipped input (Warn).
	Logger *slog.Logger

	// Weld merges source vertices with bit-identical positions.
	// When false every source index becomes its own vertex.
	Weld bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns welding enabled and a logger that discards output.
func DefaultOptions() Options {
	return Options{
		Logger: slog.New(slog.DiscardHandler),
		Weld:   true,
	}
}

// WithLogger routes construction logs to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			o.err = fmt.Errorf("%w: nil logger", ErrOptionViolation)
			return
		}
		o.Logger = l
	}
}

// WithWelding toggles position-based vertex deduplication.
func WithWelding(on bool) Option {
	return func(o *Options) { o.Weld = on }
}

// Resolve applies opts over DefaultOptions.
func Resolve(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return Options{}, o.err
	}
	return o, nil
}
