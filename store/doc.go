// Package store provides an in-memory hierarchy store with referential
// integrity and cascading deletes.
//
// Arbor organizes a flat collection of labeled items into a forest of rooted
// trees via parent references, and answers hierarchical queries (direct
// children, descendant closures, ancestor chains) over that forest.
//
// # Key Features
//
//   - Parent validation on insert and update
//   - Acyclicity enforcement (an item can never become its own ancestor)
//   - Cascading delete of the full descendant subtree
//   - Breadth-first descendant queries and ancestor-chain queries
//   - Mixed string and integer identifiers with no cross-variant coercion
//
// # Identifiers
//
// [ID] is a tagged union of a string variant and an integer variant. Two IDs
// are equal only when both the variant and the value match, so
// StringID("1") and IntID(1) are distinct keys that can coexist in one
// store.
//
// # Indices
//
// The store maintains two coupled indices over the same record set: a
// primary index from id to item (in insertion order) and a child index from
// parent id to the ordered list of direct children. Every successful
// mutation leaves the child index exactly inverse to the parent fields of
// the stored items.
//
// # Validation
//
// [New] bulk-loads its input without validation: parent references are not
// resolved and cycles are not detected, so a malformed input list produces a
// store with dangling references. [Store.Add] and [Store.Update] are fully
// checked and never leave a partial mutation visible on failure.
//
// # Errors
//
// The package defines domain-specific errors:
//
//   - [ErrNotFound] - no item with the given id
//   - [ErrAlreadyExists] - an item with the given id is already stored
//   - [ErrParentNotFound] - a parent reference does not resolve
//   - [ErrCircularRef] - the mutation would make an item its own ancestor
//
// The store is not internally synchronized. Callers sharing a store across
// goroutines must serialize access themselves.
package store
