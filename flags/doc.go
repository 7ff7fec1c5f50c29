// SPDX-License-Identifier: MIT

// Package flags provides the fixed-width bit set carried by every mesh element.
//
// What
//
//   - Set is a 64-bit value type addressed by Bit position.
//   - Bits 25..31 are reserved and carry the same meaning in every encoding:
//     Virtual, Visited, Modified, Selected, Culled, Duplicated, IndexModified.
//   - Bits below RoleBits are free for representation-specific role tags
//     (boundary half-edges, wire edges, loose edges, ...).
//
// Copy semantics
//
//	Set is a plain value. Copy returns an independent Set; mutating the copy
//	never affects the original. Elements own exactly one Set and hand out a
//	pointer to it, so flags are never shared between elements.
//
// Complexity
//
//	Every operation is O(1) and allocation free.
package flags
