package catalog

import "sort"

// UpsertOutcome describes what an upsert did to the store.
type UpsertOutcome int

const (
	// Unchanged means the incoming entry matched the stored one exactly.
	Unchanged UpsertOutcome = iota
	// Added means the key was new and the entry was appended.
	Added
	// Updated means the stored attributes were replaced in place.
	Updated
)

// Store holds every known entry in stable insertion order. It is not safe
// for concurrent use; the session serializes access to it.
type Store struct {
	entries []Entry
}

func NewStore() *Store {
	return &Store{}
}

// Len returns the number of entries, alive or offline.
func (s *Store) Len() int {
	return len(s.entries)
}

// At returns the entry at index i. The caller must not retain its slices
// across mutations; use Clone for that.
func (s *Store) At(i int) Entry {
	return s.entries[i]
}

// AliveCount returns how many entries are still marked alive.
func (s *Store) AliveCount() int {
	n := 0
	for _, e := range s.entries {
		if e.Alive {
			n++
		}
	}
	return n
}

// Upsert inserts the entry when its key is unknown and otherwise replaces
// the stored attributes in place, stamping the change time. Re-resolves
// that change nothing are reported as Unchanged so callers can skip cache
// invalidation and redraws.
func (s *Store) Upsert(e Entry, at int64) UpsertOutcome {
	e.Normalize()
	for i := range s.entries {
		if s.entries[i].FullName != e.FullName {
			continue
		}
		if s.entries[i].Same(e) {
			return Unchanged
		}
		e.ChangedAt = at
		s.entries[i] = e
		return Updated
	}
	e.ChangedAt = at
	s.entries = append(s.entries, e)
	return Added
}

// MarkOffline flips the entry offline and stamps the transition time. The
// entry stays listed until CompactOffline removes it. Unknown keys and
// entries already offline report false.
func (s *Store) MarkOffline(fullName string, at int64) bool {
	for i := range s.entries {
		if s.entries[i].FullName != fullName {
			continue
		}
		if !s.entries[i].Alive {
			return false
		}
		s.entries[i].Alive = false
		s.entries[i].ChangedAt = at
		return true
	}
	return false
}

// CompactOffline deletes every offline entry, preserving the order of the
// survivors, and returns the service types that lost their last referencing
// entry, sorted.
func (s *Store) CompactOffline() (removed int, orphaned []string) {
	types := make(map[string]struct{})
	kept := s.entries[:0]
	for _, e := range s.entries {
		if e.Alive {
			kept = append(kept, e)
			continue
		}
		types[e.Type] = struct{}{}
		removed++
	}
	s.entries = kept
	if removed == 0 {
		return 0, nil
	}
	for t := range types {
		if !s.TypeInUse(t) {
			orphaned = append(orphaned, t)
		}
	}
	sort.Strings(orphaned)
	return removed, orphaned
}

// TypeInUse reports whether any entry, alive or offline, references the
// type.
func (s *Store) TypeInUse(name string) bool {
	for _, e := range s.entries {
		if e.Type == name {
			return true
		}
	}
	return false
}
