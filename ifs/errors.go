// SPDX-License-Identifier: MIT

package ifs

import "errors"

var (
	// ErrNotFound indicates a slot that holds no live element.
	ErrNotFound = errors.New("ifs: element not found")

	// ErrInUse indicates an element still referenced by another element.
	ErrInUse = errors.New("ifs: element still referenced")

	// ErrDegenerate indicates an edge or face repeating a vertex.
	ErrDegenerate = errors.New("ifs: degenerate element")
)
