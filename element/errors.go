// SPDX-License-Identifier: MIT

package element

import "errors"

var (
	// ErrNotLive indicates a pool slot that is free or out of range.
	ErrNotLive = errors.New("element: slot is not live")

	// ErrStaleHandle indicates a handle whose element was reset or moved.
	ErrStaleHandle = errors.New("element: stale handle")
)
