// Package session is the single coordination point for all mutable
// dashboard state. One mutex guards the entry store, type index, cached
// projection, and per-pane cursors; every operation is a short synchronous
// critical section that invalidates the projection as needed and pokes the
// notifier so the render loop snapshots a fresh frame. Discovery goroutines
// and the input loop share one *Session handle.
package session

import (
	"sync"
	"time"

	"github.com/ferrovax/zeroscope/internal/catalog"
	"github.com/ferrovax/zeroscope/internal/view"
)

// Mode is the input mode the dashboard is in.
type Mode int

const (
	ModeNormal Mode = iota
	ModeHelp
	ModeMetrics
	ModeFilterEdit
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeHelp:
		return "help"
	case ModeMetrics:
		return "metrics"
	case ModeFilterEdit:
		return "filter-edit"
	default:
		return "unknown"
	}
}

// Session owns the dashboard state. The zero value is not usable; New wires
// the store, index, projection, and notifier together.
type Session struct {
	mu sync.Mutex

	store *catalog.Store
	types *catalog.TypeIndex
	proj  *view.Projection

	list    view.Cursor // services pane
	typeCur view.Cursor // types pane; its row derives from the anchor

	mode   Mode
	filter string // committed free-text query
	draft  string // query being edited while in ModeFilterEdit
	sort   view.Order

	notice    string
	discovery map[string]int

	now      func() int64
	notifier *Notifier
}

func New() *Session {
	return &Session{
		store:    catalog.NewStore(),
		types:    catalog.NewTypeIndex(),
		proj:     view.NewProjection(),
		now:      microsNow,
		notifier: NewNotifier(),
	}
}

func microsNow() int64 {
	return time.Now().UnixMicro()
}

// Notifier exposes the redraw channel shared with the render loop.
func (s *Session) Notifier() *Notifier {
	return s.notifier
}

// Mode returns the current input mode.
func (s *Session) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Sort returns the active sort order.
func (s *Session) Sort() view.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sort
}

// SetSort replaces the active order wholesale, used when restoring saved
// preferences at startup.
func (s *Session) SetSort(o view.Order) {
	s.mu.Lock()
	s.sort = o
	s.proj.Invalidate(view.SortStale)
	s.mu.Unlock()
	s.notifier.Notify(NoteStateChanged)
}

// SetLayout feeds back the visible row counts computed by the last layout
// pass, one per scrollable pane.
func (s *Session) SetLayout(typeRows, listRows int) {
	s.mu.Lock()
	s.typeCur.Visible = typeRows
	s.list.Visible = listRows
	s.mu.Unlock()
}

// ForceRedraw asks the render loop for a full repaint.
func (s *Session) ForceRedraw() {
	s.notifier.Notify(NoteForceRedraw)
}

// query assembles the effective filter: the draft while editing, the
// committed text otherwise, plus the anchored type.
func (s *Session) query() view.Query {
	q := view.Query{Text: s.filter, Sort: s.sort}
	if s.mode == ModeFilterEdit {
		q.Text = s.draft
	}
	if name, ok := s.types.AnchorName(); ok {
		q.Type = name
	}
	return q
}

// rowsLocked returns the projection, rebuilding stale stages. Callers hold
// s.mu.
func (s *Session) rowsLocked() []int {
	return s.proj.Rows(s.store, s.query())
}

// AddType records a newly discovered service type. The anchored type, if
// any, keeps its identity even when the insertion shifts indices, so the
// projection needs no invalidation.
func (s *Session) AddType(name string) {
	s.mu.Lock()
	added := s.types.Add(name)
	s.mu.Unlock()
	if added {
		s.notifier.Notify(NoteStateChanged)
	}
}

// RemoveType drops a type no entry references any more. Types still
// referenced, even only by offline entries, are refused; they disappear
// when a prune removes their last entry.
func (s *Session) RemoveType(name string) bool {
	s.mu.Lock()
	removed := s.removeTypeLocked(name)
	s.mu.Unlock()
	if removed {
		s.notifier.Notify(NoteStateChanged)
	}
	return removed
}

func (s *Session) removeTypeLocked(name string) bool {
	if s.store.TypeInUse(name) {
		return false
	}
	before, hadAnchor := s.types.AnchorName()
	if !s.types.Remove(name) {
		return false
	}
	after, hasAnchor := s.types.AnchorName()
	if before != after || hadAnchor != hasAnchor {
		s.proj.Invalidate(view.FilterStale)
		s.list.Reset()
	}
	return true
}

// UpsertEntry applies a resolve event: the type is registered, the entry
// added or refreshed. Re-resolves that change nothing skip invalidation and
// leave the render loop asleep.
func (s *Session) UpsertEntry(e catalog.Entry) {
	s.mu.Lock()
	added := s.types.Add(e.Type)
	outcome := s.store.Upsert(e, s.now())
	if outcome != catalog.Unchanged {
		s.proj.Invalidate(view.FilterStale)
	}
	s.mu.Unlock()
	if added || outcome != catalog.Unchanged {
		s.notifier.Notify(NoteStateChanged)
	}
}

// MarkEntryRemoved flips an entry offline. It stays listed, dimmed, until
// the operator prunes.
func (s *Session) MarkEntryRemoved(fullName string) {
	s.mu.Lock()
	changed := s.store.MarkOffline(fullName, s.now())
	if changed {
		s.proj.Invalidate(view.FilterStale)
	}
	s.mu.Unlock()
	if changed {
		s.notifier.Notify(NoteStateChanged)
	}
}

// SetMetrics replaces the discovery counters shown by the metrics popup.
func (s *Session) SetMetrics(counters map[string]int) {
	s.mu.Lock()
	s.discovery = make(map[string]int, len(counters))
	for k, v := range counters {
		s.discovery[k] = v
	}
	s.mu.Unlock()
	s.notifier.Notify(NoteStateChanged)
}

// SelectedEntry returns a copy of the entry under the selection.
func (s *Session) SelectedEntry() (catalog.Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := s.rowsLocked()
	if len(rows) == 0 {
		return catalog.Entry{}, false
	}
	s.list.Clamp(len(rows))
	return s.store.At(rows[s.list.Row]).Clone(), true
}
