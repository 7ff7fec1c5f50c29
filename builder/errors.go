// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Context is attached with %w at the failure site.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (rows, cols, n) is below
// the minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrOptionViolation indicates that a WithX(...) option received a
// meaningless value (e.g. WithScale(0)). It surfaces from Build.
var ErrOptionViolation = errors.New("builder: invalid option value")

// ErrConstructFailed indicates a construction failure that is not a
// parameter problem, such as a nil constructor or an invalid result buffer.
var ErrConstructFailed = errors.New("builder: construction failed")
