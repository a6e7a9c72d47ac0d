// Package grid materializes display rows for a tree-grid over a hierarchy
// store.
//
// The grid is a read-only collaborator: it consumes only the store's
// public read operations and positions each item within the rendered
// hierarchy by its label path from the root. Rendering policy itself lives
// with the caller.
package grid

import (
	"slices"

	"github.com/jacentio/arbor/store"
)

// Row pairs an item with its materialized label path.
type Row struct {
	// Item is the store record backing the row.
	Item store.Item

	// Path holds the labels from the item's root down to the item itself:
	// [rootLabel, ..., itemLabel].
	Path []string
}

// Path returns the label chain from the item's root down to the item. It is
// empty for unknown ids. A dangling parent reference truncates the chain at
// the deepest resolvable ancestor, so the result always ends with the
// item's own label.
func Path(s *store.Store, id store.ID) []string {
	it, ok := s.Get(id)
	if !ok {
		return nil
	}
	var labels []string
	for {
		labels = append(labels, it.Label)
		if it.Parent == nil {
			break
		}
		next, ok := s.Get(*it.Parent)
		if !ok {
			break
		}
		it = next
	}
	slices.Reverse(labels)
	return labels
}

// Rows returns the full row set for display: every stored item in store
// order, each with its materialized path.
func Rows(s *store.Store) []Row {
	items := s.All()
	rows := make([]Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, Row{Item: it, Path: Path(s, it.ID)})
	}
	return rows
}
