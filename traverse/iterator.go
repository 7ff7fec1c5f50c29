// SPDX-License-Identifier: MIT

package traverse

import (
	"errors"
	"iter"
)

// None is the empty reference for index-based cycles.
const None = -1

var (
	// ErrExhausted is returned by Next when no element remains.
	ErrExhausted = errors.New("traverse: iteration exhausted")

	// ErrUnsupported is returned by Remove on views that cannot edit topology.
	ErrUnsupported = errors.New("traverse: remove not supported")
)

// Iterator is a lazy, single-pass sequence.
type Iterator[T any] interface {
	// HasNext reports whether Next will yield a value.
	HasNext() bool
	// Next returns the next value, or ErrExhausted.
	Next() (T, error)
	// Remove deletes the last value returned by Next from the underlying
	// structure, where supported.
	Remove() error
}

// All adapts it to a range-over-func sequence. The sequence drains it.
func All[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for it.HasNext() {
			v, err := it.Next()
			if err != nil || !yield(v) {
				return
			}
		}
	}
}

// Collect drains it into a slice.
func Collect[T any](it Iterator[T]) ([]T, error) {
	var out []T
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
	return out, nil
}
