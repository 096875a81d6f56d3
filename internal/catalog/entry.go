// Package catalog owns the canonical collection of discovered service
// instances and the sorted index of their service types. It knows nothing
// about rendering or selection; callers invalidate their own caches after
// mutating it.
package catalog

import "sort"

// Entry is one discovered service instance. FullName is the identity key:
// the store holds at most one Entry per FullName.
type Entry struct {
	FullName  string
	Type      string
	Subtype   string
	Host      string
	Addrs     []string
	Port      uint16
	Text      []string
	Alive     bool
	ChangedAt int64 // unix microseconds of the last observed change
}

// Normalize sorts and deduplicates the address list and sorts the TXT
// records so equal entries compare equal regardless of announcement order.
func (e *Entry) Normalize() {
	if len(e.Addrs) > 1 {
		sort.Strings(e.Addrs)
		e.Addrs = dedupSorted(e.Addrs)
	}
	if len(e.Text) > 1 {
		sort.Strings(e.Text)
	}
}

// Same reports whether every display and filter relevant field matches.
// The change timestamp is deliberately excluded: a re-announcement that
// carries identical data is not a change.
func (e Entry) Same(other Entry) bool {
	return e.FullName == other.FullName &&
		e.Type == other.Type &&
		e.Subtype == other.Subtype &&
		e.Host == other.Host &&
		e.Port == other.Port &&
		e.Alive == other.Alive &&
		equalStrings(e.Addrs, other.Addrs) &&
		equalStrings(e.Text, other.Text)
}

// Clone returns a deep copy whose slices share no memory with the receiver.
func (e Entry) Clone() Entry {
	dup := e
	if e.Addrs != nil {
		dup.Addrs = append([]string(nil), e.Addrs...)
	}
	if e.Text != nil {
		dup.Text = append([]string(nil), e.Text...)
	}
	return dup
}

// PrimaryAddr returns the first resolved address, or the empty string.
func (e Entry) PrimaryAddr() string {
	if len(e.Addrs) == 0 {
		return ""
	}
	return e.Addrs[0]
}

func dedupSorted(values []string) []string {
	out := values[:1]
	for _, v := range values[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
