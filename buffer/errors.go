// SPDX-License-Identifier: MIT

package buffer

import "errors"

var (
	// ErrNilBuffer indicates a nil *Buffer.
	ErrNilBuffer = errors.New("buffer: buffer is nil")

	// ErrNotTriangles indicates len(Indices) is not a multiple of 3.
	ErrNotTriangles = errors.New("buffer: triangle indices not a multiple of 3")

	// ErrNotLines indicates len(Lines) is not a multiple of 2.
	ErrNotLines = errors.New("buffer: line indices not a multiple of 2")

	// ErrIndexOutOfRange indicates an index past the end of Positions.
	ErrIndexOutOfRange = errors.New("buffer: index out of range")

	// ErrDecode indicates malformed YAML input.
	ErrDecode = errors.New("buffer: decode failed")
)
