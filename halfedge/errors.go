// SPDX-License-Identifier: MIT

package halfedge

import "errors"

var (
	// ErrNonManifold indicates input a half-edge graph cannot hold: a
	// directed edge used twice (more than two faces on an edge, or
	// inconsistent winding).
	ErrNonManifold = errors.New("halfedge: non-manifold input")

	// ErrCorrupt indicates a broken link found by Validate.
	ErrCorrupt = errors.New("halfedge: inconsistent connectivity")
)
