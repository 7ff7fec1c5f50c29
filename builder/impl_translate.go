// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// impl_translate.go - Translate(offset, c) decorator.

package builder

import (
	"fmt"

	"cogentcore.org/core/math32"

	"github.com/katalvlaran/lvmesh/buffer"
)

// Translate returns a Constructor that runs c and moves every position c
// appended by offset. The offset is not scaled.
func Translate(offset math32.Vector3, c Constructor) Constructor {
	return func(b *buffer.Buffer, cfg builderConfig) error {
		if c == nil {
			return fmt.Errorf("Translate: nil constructor: %w", ErrConstructFailed)
		}
		from := len(b.Positions)
		if err := c(b, cfg); err != nil {
			return err
		}
		for i := from; i < len(b.Positions); i++ {
			b.Positions[i] = b.Positions[i].Add(offset)
		}
		return nil
	}
}
