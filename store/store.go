package store

import "fmt"

// Store organizes a flat set of labeled items into a forest of rooted trees
// via parent references. It maintains a primary index (id to item, in
// insertion order) and a child index (parent id to ordered child ids), and
// keeps the two consistent across every successful mutation.
//
// All operations are synchronous and free of I/O. The store is not
// internally synchronized.
type Store struct {
	items    map[ID]Item
	order    []ID // insertion order of the primary index
	children map[ID][]ID
}

// New builds a store from the initial item list.
//
// The load is unchecked: items are indexed in input order and each child is
// appended to its parent's child list without verifying that the parent
// exists or that the parent chains are acyclic. A malformed input therefore
// produces a store with dangling references; only Add and Update enforce
// referential integrity.
func New(items []Item) *Store {
	s := &Store{
		items:    make(map[ID]Item, len(items)),
		children: make(map[ID][]ID),
	}
	for _, it := range items {
		it = it.clone()
		if _, ok := s.items[it.ID]; !ok {
			s.order = append(s.order, it.ID)
		}
		s.items[it.ID] = it
		if it.Parent != nil {
			s.children[*it.Parent] = append(s.children[*it.Parent], it.ID)
		}
	}
	return s
}

// All returns every item in insertion order.
func (s *Store) All() []Item {
	out := make([]Item, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.items[id].clone())
	}
	return out
}

// Get returns the item with the given id. The second return is false when
// the id is unknown.
func (s *Store) Get(id ID) (Item, bool) {
	it, ok := s.items[id]
	if !ok {
		return Item{}, false
	}
	return it.clone(), true
}

// Children returns the direct children of id in the order they were
// attached. The result is empty when id has no children or is unknown.
func (s *Store) Children(id ID) []Item {
	ids := s.children[id]
	out := make([]Item, 0, len(ids))
	for _, cid := range ids {
		if it, ok := s.items[cid]; ok {
			out = append(out, it.clone())
		}
	}
	return out
}

// Descendants returns the full descendant closure of id in breadth-first
// level order, seeded with the direct children. Each descendant appears
// exactly once. The result is empty for leaves and unknown ids. Cost is
// O(subtree size).
func (s *Store) Descendants(id ID) []Item {
	dids := s.descendantIDs(id)
	out := make([]Item, 0, len(dids))
	for _, did := range dids {
		if it, ok := s.items[did]; ok {
			out = append(out, it.clone())
		}
	}
	return out
}

// Ancestors returns the chain from the item up to its root, starting with
// the item itself: [self, parent, grandparent, ...]. The walk stops at the
// first root or, silently, at the first dangling parent reference. The
// result is empty when id itself is unknown.
func (s *Store) Ancestors(id ID) []Item {
	cur, ok := s.items[id]
	if !ok {
		return nil
	}
	var out []Item
	for {
		out = append(out, cur.clone())
		if cur.Parent == nil {
			return out
		}
		next, ok := s.items[*cur.Parent]
		if !ok {
			return out
		}
		cur = next
	}
}

// Add inserts a new item. It fails with ErrAlreadyExists when the id is
// taken, ErrCircularRef when the item references itself or a current
// descendant as parent, and ErrParentNotFound when the parent reference
// does not resolve. All checks run before any index is touched; a failed
// Add leaves the store unchanged.
func (s *Store) Add(item Item) error {
	if _, ok := s.items[item.ID]; ok {
		return fmt.Errorf("add %v: %w", item.ID, ErrAlreadyExists)
	}
	if err := s.checkParent(item); err != nil {
		return fmt.Errorf("add %v: %w", item.ID, err)
	}
	item = item.clone()
	s.items[item.ID] = item
	s.order = append(s.order, item.ID)
	if item.Parent != nil {
		s.children[*item.Parent] = append(s.children[*item.Parent], item.ID)
	}
	return nil
}

// Update replaces the stored record for item.ID in full: label, parent, and
// extra fields all take the new values. It fails with ErrNotFound when no
// such item exists, ErrCircularRef when the new parent is the item itself
// or one of its current descendants (checked against the tree shape before
// the move), and ErrParentNotFound when the new parent does not resolve. On
// a parent change the id is spliced out of the old parent's child list and
// appended to the new parent's; sibling order on both sides is preserved. A
// failed Update leaves the store unchanged.
func (s *Store) Update(item Item) error {
	prev, ok := s.items[item.ID]
	if !ok {
		return fmt.Errorf("update %v: %w", item.ID, ErrNotFound)
	}
	if err := s.checkParent(item); err != nil {
		return fmt.Errorf("update %v: %w", item.ID, err)
	}
	if !sameParent(prev.Parent, item.Parent) {
		if prev.Parent != nil {
			s.children[*prev.Parent] = removeID(s.children[*prev.Parent], item.ID)
		}
		if item.Parent != nil {
			s.children[*item.Parent] = append(s.children[*item.Parent], item.ID)
		}
	}
	s.items[item.ID] = item.clone()
	return nil
}

// Remove deletes the item and its entire descendant subtree from both
// indices, and splices the id out of its parent's child list (preserving
// the order of the remaining siblings). Removing an unknown id is an
// idempotent no-op. Cost is O(subtree size).
func (s *Store) Remove(id ID) {
	it, ok := s.items[id]
	if !ok {
		return
	}
	for _, did := range s.descendantIDs(id) {
		s.deleteItem(did)
	}
	s.deleteItem(id)
	if it.Parent != nil {
		s.children[*it.Parent] = removeID(s.children[*it.Parent], id)
	}
}

// checkParent validates item's parent reference against the current tree
// shape: a nil parent is always valid; otherwise the parent must not be the
// item itself or one of its current descendants, and must resolve to a
// stored item.
func (s *Store) checkParent(item Item) error {
	if item.Parent == nil {
		return nil
	}
	parent := *item.Parent
	if parent == item.ID {
		return fmt.Errorf("%w: %v", ErrCircularRef, parent)
	}
	if _, ok := s.items[parent]; !ok {
		return fmt.Errorf("%w: %v", ErrParentNotFound, parent)
	}
	for _, did := range s.descendantIDs(item.ID) {
		if did == parent {
			return fmt.Errorf("%w: %v", ErrCircularRef, parent)
		}
	}
	return nil
}

// descendantIDs walks the descendant closure of id breadth-first: dequeue a
// node, emit it, enqueue its direct children. The tree is acyclic by
// invariant, so no revisit guard is needed.
func (s *Store) descendantIDs(id ID) []ID {
	var out []ID
	queue := append([]ID(nil), s.children[id]...)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		out = append(out, cur)
		queue = append(queue, s.children[cur]...)
	}
	return out
}

// deleteItem drops one id from the primary index, the order list, and the
// child index. The caller untangles the parent's child list.
func (s *Store) deleteItem(id ID) {
	delete(s.items, id)
	delete(s.children, id)
	s.order = removeID(s.order, id)
}

// removeID removes the first occurrence of id from ids, preserving the
// order of the remaining entries.
func removeID(ids []ID, id ID) []ID {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
