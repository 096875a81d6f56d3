package catalog

import "sort"

// AllTypes is the anchor value that selects every type at once.
const AllTypes = -1

// TypeIndex is the sorted, deduplicated list of known service types plus an
// anchor marking the selected type, or AllTypes. List mutations re-resolve
// the anchor by the name it pointed at, never by its old position, so the
// selection survives concurrent discoveries.
type TypeIndex struct {
	names  []string
	anchor int
}

func NewTypeIndex() *TypeIndex {
	return &TypeIndex{anchor: AllTypes}
}

// Len returns the number of known types.
func (t *TypeIndex) Len() int {
	return len(t.names)
}

// Names returns a copy of the sorted type list.
func (t *TypeIndex) Names() []string {
	return append([]string(nil), t.names...)
}

// Anchor returns the selected index, or AllTypes.
func (t *TypeIndex) Anchor() int {
	return t.anchor
}

// AnchorName returns the selected type name; ok is false for AllTypes.
func (t *TypeIndex) AnchorName() (name string, ok bool) {
	if t.anchor == AllTypes || t.anchor >= len(t.names) {
		return "", false
	}
	return t.names[t.anchor], true
}

// Add inserts the name keeping the list sorted and reports whether it was
// new. An existing anchor keeps pointing at the same name even when the
// insertion shifts its index.
func (t *TypeIndex) Add(name string) bool {
	i := sort.SearchStrings(t.names, name)
	if i < len(t.names) && t.names[i] == name {
		return false
	}
	anchored, hasAnchor := t.AnchorName()
	t.names = append(t.names, "")
	copy(t.names[i+1:], t.names[i:])
	t.names[i] = name
	if hasAnchor {
		t.reanchor(anchored)
	}
	return true
}

// Remove deletes the name and reports whether it was present. An anchor on
// another name follows that name; an anchor on the removed name clamps to
// the nearest remaining index, falling back to AllTypes when the list
// empties.
func (t *TypeIndex) Remove(name string) bool {
	i := sort.SearchStrings(t.names, name)
	if i >= len(t.names) || t.names[i] != name {
		return false
	}
	anchored, hasAnchor := t.AnchorName()
	prev := t.anchor
	t.names = append(t.names[:i], t.names[i+1:]...)
	switch {
	case !hasAnchor:
	case anchored != name:
		t.reanchor(anchored)
	case len(t.names) == 0:
		t.anchor = AllTypes
	default:
		if prev > len(t.names)-1 {
			prev = len(t.names) - 1
		}
		t.anchor = prev
	}
	return true
}

func (t *TypeIndex) reanchor(name string) {
	i := sort.SearchStrings(t.names, name)
	if i < len(t.names) && t.names[i] == name {
		t.anchor = i
		return
	}
	t.anchor = AllTypes
}

// MoveAnchor shifts the anchor by delta across the AllTypes pseudo-position
// and the type list without wrapping, and reports whether it moved.
func (t *TypeIndex) MoveAnchor(delta int) bool {
	next := t.anchor + delta
	if next < AllTypes {
		next = AllTypes
	}
	if max := len(t.names) - 1; next > max {
		next = max
	}
	if next == t.anchor {
		return false
	}
	t.anchor = next
	return true
}
