// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// api.go - the Build orchestrator and the Constructor contract.
//
// Design contract:
//   • One orchestrator: Build(opts, cons...). Resolves cfg, runs cons in order
//     on a fresh buffer, applies soup, validates the result.
//   • Constructors append; they never rewrite what earlier ones produced.

package builder

import (
	"fmt"

	"cogentcore.org/core/math32"

	"github.com/katalvlaran/lvmesh/buffer"
)

// Constructor appends one shape to b using the resolved builderConfig.
// Constructors validate their parameters first and return sentinel errors.
type Constructor func(b *buffer.Buffer, cfg builderConfig) error

// Build creates an empty buffer, resolves the configuration from opts and
// applies all constructors in order. Any constructor error is wrapped with
// "Build: %w" and returned immediately.
//
// Complexity: Σ cost of each constructor, plus O(T+L) for soup.
func Build(opts []BuilderOption, cons ...Constructor) (*buffer.Buffer, error) {
	cfg := newBuilderConfig(opts...)
	if cfg.err != nil {
		return nil, fmt.Errorf("Build: %w", cfg.err)
	}

	b := &buffer.Buffer{}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(b, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}
	if cfg.soup {
		b = unshare(b)
	}
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("Build: %w: %w", ErrConstructFailed, err)
	}

	return b, nil
}

// unshare copies every referenced position once per use.
func unshare(b *buffer.Buffer) *buffer.Buffer {
	out := &buffer.Buffer{
		Positions: make([]math32.Vector3, 0, len(b.Indices)+len(b.Lines)),
		Indices:   make([]uint32, 0, len(b.Indices)),
		Lines:     make([]uint32, 0, len(b.Lines)),
	}
	for _, i := range b.Indices {
		out.Indices = append(out.Indices, uint32(len(out.Positions)))
		out.Positions = append(out.Positions, b.Positions[i])
	}
	for _, i := range b.Lines {
		out.Lines = append(out.Lines, uint32(len(out.Positions)))
		out.Positions = append(out.Positions, b.Positions[i])
	}
	return out
}
