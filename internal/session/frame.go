package session

import (
	"github.com/ferrovax/zeroscope/internal/catalog"
	"github.com/ferrovax/zeroscope/internal/view"
)

// Metrics is the diagnostics snapshot surfaced by the metrics popup.
type Metrics struct {
	Entries      int
	Alive        int
	Types        int
	FilterScans  int
	SortPasses   int
	NotesSent    uint64
	NotesDropped uint64
	Discovery    map[string]int
}

// Frame is the read-only snapshot handed to the renderer. Every slice and
// map is freshly allocated and every entry deep-copied, so rendering can be
// a pure function of a Frame with no lock held.
type Frame struct {
	Rows   []catalog.Entry
	Row    int
	Offset int
	Total  int

	Types      []string
	Anchor     int
	TypeOffset int

	Mode   Mode
	Filter string
	Draft  string
	Sort   view.Order
	Notice string

	Now     int64 // unix microseconds the snapshot was taken
	Metrics Metrics
}

// Selected returns the entry under the selection, if any.
func (f Frame) Selected() (catalog.Entry, bool) {
	if f.Row < 0 || f.Row >= len(f.Rows) {
		return catalog.Entry{}, false
	}
	return f.Rows[f.Row], true
}

// Filtering reports whether a committed or draft query is active.
func (f Frame) Filtering() bool {
	if f.Mode == ModeFilterEdit {
		return f.Draft != ""
	}
	return f.Filter != ""
}

// Frame rebuilds whatever is stale, repairs the cursor invariants, and
// returns a snapshot of everything the renderer needs.
func (s *Session) Frame() Frame {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := s.rowsLocked()
	s.list.Clamp(len(rows))

	// The types pane shows an all-types pseudo-row above the index, so its
	// cursor lives in a space one longer than the index itself.
	s.typeCur.Row = s.types.Anchor() + 1
	s.typeCur.Clamp(s.types.Len() + 1)

	entries := make([]catalog.Entry, len(rows))
	for i, idx := range rows {
		entries[i] = s.store.At(idx).Clone()
	}

	discovery := make(map[string]int, len(s.discovery))
	for k, v := range s.discovery {
		discovery[k] = v
	}
	sent, dropped := s.notifier.Counts()

	return Frame{
		Rows:       entries,
		Row:        s.list.Row,
		Offset:     s.list.Offset,
		Total:      s.store.Len(),
		Types:      s.types.Names(),
		Anchor:     s.types.Anchor(),
		TypeOffset: s.typeCur.Offset,
		Mode:       s.mode,
		Filter:     s.filter,
		Draft:      s.draft,
		Sort:       s.sort,
		Notice:     s.notice,
		Now:        s.now(),
		Metrics: Metrics{
			Entries:      s.store.Len(),
			Alive:        s.store.AliveCount(),
			Types:        s.types.Len(),
			FilterScans:  s.proj.FilterScans(),
			SortPasses:   s.proj.SortPasses(),
			NotesSent:    sent,
			NotesDropped: dropped,
			Discovery:    discovery,
		},
	}
}
