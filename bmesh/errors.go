// SPDX-License-Identifier: MIT

package bmesh

import "errors"

var (
	// ErrNotFound is returned when an operation names a dead element.
	ErrNotFound = errors.New("bmesh: element not found")

	// ErrDegenerate is returned for a face with fewer than three distinct
	// corners or an edge joining a vertex to itself.
	ErrDegenerate = errors.New("bmesh: degenerate element")

	// ErrCorrupt is returned by Validate when a cycle is broken.
	ErrCorrupt = errors.New("bmesh: corrupt topology")
)
