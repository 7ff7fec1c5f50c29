// SPDX-License-Identifier: MIT

// Package element defines the lifecycle contract shared by every mesh element
// (vertex, edge, face, loop) of every encoding, and the arena Pool that
// recycles elements through that contract.
//
// What
//
//   - Kind: closed enumeration of concrete element types, one per
//     (encoding, role) pair.
//   - Indexed: {Index, SetIndex, Flags, Kind, Initialized, Release, Reset}.
//   - Base: embeddable index + flag storage implementing the shared half of
//     Indexed. Concrete types add Kind, Release and Reset.
//   - Pool: arena addressed by integer slots with a free list and per-slot
//     generations, so stale references are detectable.
//
// Lifecycle
//
//	NewBase            index = NoIndex, flags empty         (unallocated)
//	SetIndex(i)        first placement, IndexModified stays false
//	SetIndex(j), j!=i  re-placement, IndexModified is raised
//	Release()          connectivity back to its empty sentinels
//	Reset()            Release(), then index = NoIndex, then flags cleared
//
//	Reset must run Release first: Release may read Kind or connectivity
//	that the blanking step wipes.
//
// Concurrency
//
//	Elements and pools are plain mutable state owned by one mesh. Callers
//	serialize access; nothing here takes locks.
package element
