package store

import (
	"maps"
	"strconv"
)

// idKind tags the variant of an ID.
type idKind uint8

const (
	kindInvalid idKind = iota
	kindString
	kindInt
)

// ID identifies an item within a store. It is a tagged union of a string
// variant and an integer variant: two IDs are equal only when both the
// variant and the value match, so StringID("1") and IntID(1) are distinct
// keys. ID is comparable and usable as a map key. The zero value is invalid
// and never stored.
type ID struct {
	kind idKind
	str  string
	num  int64
}

// StringID returns the string-variant ID for s.
func StringID(s string) ID { return ID{kind: kindString, str: s} }

// IntID returns the integer-variant ID for n.
func IntID(n int64) ID { return ID{kind: kindInt, num: n} }

// IsZero reports whether id is the invalid zero value.
func (id ID) IsZero() bool { return id.kind == kindInvalid }

// String formats the ID for error messages and logs. The rendering is not
// unique across variants (StringID("1") and IntID(1) both render as "1");
// use the ID itself, never its rendering, as a key.
func (id ID) String() string {
	switch id.kind {
	case kindString:
		return id.str
	case kindInt:
		return strconv.FormatInt(id.num, 10)
	default:
		return "<invalid id>"
	}
}

// Item is a single record in the hierarchy.
type Item struct {
	// ID uniquely identifies the item within the store.
	ID ID

	// Parent references the item's parent. Nil marks a root.
	Parent *ID

	// Label is the item's display label.
	Label string

	// Extra carries caller-defined fields. The store preserves it verbatim
	// and never interprets it.
	Extra map[string]any
}

// clone returns a copy of the item sharing no mutable state with it. The
// store clones on every write and every read so that neither side can
// corrupt the other through a retained reference.
func (it Item) clone() Item {
	out := it
	if it.Parent != nil {
		p := *it.Parent
		out.Parent = &p
	}
	if it.Extra != nil {
		out.Extra = maps.Clone(it.Extra)
	}
	return out
}

// sameParent reports whether a and b reference the same parent, treating
// two nils (both roots) as equal.
func sameParent(a, b *ID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
