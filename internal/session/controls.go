package session

import (
	"github.com/ferrovax/zeroscope/internal/catalog"
	"github.com/ferrovax/zeroscope/internal/view"
)

// MoveSelection shifts the service selection by delta rows.
func (s *Session) MoveSelection(delta int) bool {
	s.mu.Lock()
	n := len(s.rowsLocked())
	moved := s.list.MoveBy(delta, n)
	s.mu.Unlock()
	if moved {
		s.notifier.Notify(NoteUserInput)
	}
	return moved
}

// PageSelection moves the selection by one visible window, dir -1 or 1.
func (s *Session) PageSelection(dir int) bool {
	s.mu.Lock()
	n := len(s.rowsLocked())
	moved := s.list.Page(dir, n)
	s.mu.Unlock()
	if moved {
		s.notifier.Notify(NoteUserInput)
	}
	return moved
}

// SelectionHome jumps to the first row.
func (s *Session) SelectionHome() bool {
	s.mu.Lock()
	n := len(s.rowsLocked())
	moved := s.list.Home(n)
	s.mu.Unlock()
	if moved {
		s.notifier.Notify(NoteUserInput)
	}
	return moved
}

// SelectionEnd jumps to the last row.
func (s *Session) SelectionEnd() bool {
	s.mu.Lock()
	n := len(s.rowsLocked())
	moved := s.list.End(n)
	s.mu.Unlock()
	if moved {
		s.notifier.Notify(NoteUserInput)
	}
	return moved
}

// MoveAnchor switches the selected type by delta steps, -1 moving toward
// the all-types position. Changing the filter dimension resets the service
// selection.
func (s *Session) MoveAnchor(delta int) bool {
	s.mu.Lock()
	moved := s.types.MoveAnchor(delta)
	if moved {
		s.proj.Invalidate(view.FilterStale)
		s.list.Reset()
		if s.types.Anchor() == catalog.AllTypes {
			s.typeCur.Offset = 0
		}
	}
	s.mu.Unlock()
	if moved {
		s.notifier.Notify(NoteUserInput)
	}
	return moved
}

// CycleSort advances (dir >= 0) or retreats through the sort fields,
// wrapping at the ends, and returns the new order. Reordering resets the
// selection to the first row.
func (s *Session) CycleSort(dir int) view.Order {
	s.mu.Lock()
	if dir >= 0 {
		s.sort = s.sort.Next()
	} else {
		s.sort = s.sort.Prev()
	}
	s.proj.Invalidate(view.SortStale)
	s.list.Reset()
	order := s.sort
	s.mu.Unlock()
	s.notifier.Notify(NoteUserInput)
	return order
}

// FlipSort toggles the sort direction and returns the new order.
func (s *Session) FlipSort() view.Order {
	s.mu.Lock()
	s.sort = s.sort.Flip()
	s.proj.Invalidate(view.SortStale)
	s.list.Reset()
	order := s.sort
	s.mu.Unlock()
	s.notifier.Notify(NoteUserInput)
	return order
}

// Prune removes every offline entry and any type that lost its last entry,
// then repairs the selection: a selection that sat near the end of the list
// stays pinned to the new end, anything else keeps its position. Returns
// the number of entries removed.
func (s *Session) Prune() int {
	s.mu.Lock()
	prevLen := len(s.rowsLocked())
	prevRow := s.list.Row
	removed, orphaned := s.store.CompactOffline()
	if removed > 0 {
		for _, name := range orphaned {
			s.removeTypeLocked(name)
		}
		s.proj.Invalidate(view.FilterStale)
		n := len(s.rowsLocked())
		s.list.AfterPrune(prevRow, prevLen, n)
	}
	s.mu.Unlock()
	if removed > 0 {
		s.notifier.Notify(NoteUserInput)
	}
	return removed
}

// BeginFilter enters filter editing with an empty draft. The committed
// query keeps filtering until a keystroke changes the draft.
func (s *Session) BeginFilter() {
	s.mu.Lock()
	s.mode = ModeFilterEdit
	s.draft = ""
	s.proj.Invalidate(view.FilterStale)
	s.list.Reset()
	s.mu.Unlock()
	s.notifier.Notify(NoteUserInput)
}

// SetFilterDraft applies the query as typed, narrowing the list live.
func (s *Session) SetFilterDraft(text string) {
	s.mu.Lock()
	if s.mode != ModeFilterEdit || s.draft == text {
		s.mu.Unlock()
		return
	}
	s.draft = text
	s.proj.Invalidate(view.FilterStale)
	s.list.Reset()
	s.mu.Unlock()
	s.notifier.Notify(NoteUserInput)
}

// CommitFilter makes the draft the committed query, resets the selection,
// and returns to normal mode. Returns the committed text.
func (s *Session) CommitFilter() string {
	s.mu.Lock()
	s.filter = s.draft
	s.draft = ""
	s.mode = ModeNormal
	s.proj.Invalidate(view.FilterStale)
	s.list.Reset()
	committed := s.filter
	s.mu.Unlock()
	s.notifier.Notify(NoteUserInput)
	return committed
}

// CancelFilter discards the draft and any committed query.
func (s *Session) CancelFilter() {
	s.mu.Lock()
	s.filter = ""
	s.draft = ""
	s.mode = ModeNormal
	s.proj.Invalidate(view.FilterStale)
	s.list.Reset()
	s.mu.Unlock()
	s.notifier.Notify(NoteUserInput)
}

// SnapToBestMatch jumps the selection to the row whose name best matches
// the draft, staying in edit mode. The filter matches any field, so the
// name-ranked snap can land on a different row than the first match.
func (s *Session) SnapToBestMatch() bool {
	s.mu.Lock()
	rows := s.rowsLocked()
	labels := make([]string, len(rows))
	for i, idx := range rows {
		labels[i] = s.store.At(idx).FullName
	}
	target := view.BestMatch(labels, s.draft)
	moved := target >= 0 && target != s.list.Row
	if moved {
		s.list.Row = target
		s.list.Clamp(len(rows))
	}
	s.mu.Unlock()
	if moved {
		s.notifier.Notify(NoteUserInput)
	}
	return moved
}

// OpenHelp shows the key reference popup.
func (s *Session) OpenHelp() {
	s.setMode(ModeHelp)
}

// OpenMetrics shows the diagnostics popup.
func (s *Session) OpenMetrics() {
	s.setMode(ModeMetrics)
}

// Dismiss returns to normal mode from a popup.
func (s *Session) Dismiss() {
	s.setMode(ModeNormal)
}

func (s *Session) setMode(m Mode) {
	s.mu.Lock()
	changed := s.mode != m
	s.mode = m
	s.mu.Unlock()
	if changed {
		s.notifier.Notify(NoteUserInput)
	}
}

// SetNotice records a dismissible message shown in place of the details
// pane until cleared.
func (s *Session) SetNotice(text string) {
	s.mu.Lock()
	changed := s.notice != text
	s.notice = text
	s.mu.Unlock()
	if changed {
		s.notifier.Notify(NoteUserInput)
	}
}

// ClearNotice removes the notice, if any.
func (s *Session) ClearNotice() {
	s.SetNotice("")
}
