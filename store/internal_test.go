package store

import "testing"

// checkIndexes verifies the structural invariants that every successful
// mutation must preserve: the order list mirrors the primary index, and the
// child index is exactly the inverse of the parent fields.
func checkIndexes(t *testing.T, s *Store) {
	t.Helper()

	if len(s.order) != len(s.items) {
		t.Fatalf("order list has %d ids, primary index has %d", len(s.order), len(s.items))
	}
	seen := make(map[ID]bool, len(s.order))
	for _, id := range s.order {
		if seen[id] {
			t.Fatalf("duplicate id %v in order list", id)
		}
		seen[id] = true
		if _, ok := s.items[id]; !ok {
			t.Fatalf("order list holds %v but primary index does not", id)
		}
	}

	// Every non-root item appears exactly once under its parent.
	for id, it := range s.items {
		if it.Parent == nil {
			continue
		}
		count := 0
		for _, cid := range s.children[*it.Parent] {
			if cid == id {
				count++
			}
		}
		if count != 1 {
			t.Fatalf("item %v appears %d times in children[%v]", id, count, *it.Parent)
		}
	}

	// Every child index entry points back at its key.
	for pid, cids := range s.children {
		for _, cid := range cids {
			it, ok := s.items[cid]
			if !ok {
				t.Fatalf("children[%v] holds %v, which is not stored", pid, cid)
			}
			if it.Parent == nil || *it.Parent != pid {
				t.Fatalf("children[%v] holds %v, whose parent field is %v", pid, cid, it.Parent)
			}
		}
	}
}

func TestIndexes_ConsistentAcrossMutations(t *testing.T) {
	root := IntID(1)
	s := New([]Item{
		{ID: root, Label: "root"},
		{ID: IntID(2), Parent: &root, Label: "left"},
		{ID: IntID(3), Parent: &root, Label: "right"},
	})
	checkIndexes(t, s)

	two := IntID(2)
	if err := s.Add(Item{ID: IntID(4), Parent: &two, Label: "grandchild"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	checkIndexes(t, s)

	three := IntID(3)
	if err := s.Update(Item{ID: IntID(4), Parent: &three, Label: "moved"}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	checkIndexes(t, s)

	s.Remove(IntID(2))
	checkIndexes(t, s)

	s.Remove(root)
	checkIndexes(t, s)
	if len(s.items) != 0 {
		t.Fatalf("expected empty store after removing the root, got %d items", len(s.items))
	}
}

// --- removeID Tests ---

func TestRemoveID_First(t *testing.T) {
	got := removeID([]ID{IntID(1), IntID(2), IntID(3)}, IntID(1))
	if len(got) != 2 || got[0] != IntID(2) || got[1] != IntID(3) {
		t.Errorf("expected [2 3], got %v", got)
	}
}

func TestRemoveID_Middle(t *testing.T) {
	got := removeID([]ID{IntID(1), IntID(2), IntID(3)}, IntID(2))
	if len(got) != 2 || got[0] != IntID(1) || got[1] != IntID(3) {
		t.Errorf("expected [1 3], got %v", got)
	}
}

func TestRemoveID_Absent(t *testing.T) {
	got := removeID([]ID{IntID(1)}, IntID(9))
	if len(got) != 1 || got[0] != IntID(1) {
		t.Errorf("expected [1], got %v", got)
	}
}

// --- sameParent Tests ---

func TestSameParent(t *testing.T) {
	a, b := IntID(1), IntID(1)
	other := IntID(2)

	tests := []struct {
		name     string
		x, y     *ID
		expected bool
	}{
		{"both roots", nil, nil, true},
		{"one root", &a, nil, false},
		{"equal values", &a, &b, true},
		{"different values", &a, &other, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sameParent(tt.x, tt.y); got != tt.expected {
				t.Errorf("sameParent = %v, expected %v", got, tt.expected)
			}
		})
	}
}
