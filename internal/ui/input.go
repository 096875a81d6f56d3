package ui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ferrovax/zeroscope/internal/format"
	"github.com/ferrovax/zeroscope/internal/logging/events"
	"github.com/ferrovax/zeroscope/internal/session"
)

// apply carries out the action a key press resolved to. Session mutations
// run synchronously; the returned command is for Bubble Tea concerns only
// (quit, suspend, cursor blink).
func (m *Model) apply(act action, msg tea.KeyMsg) tea.Cmd {
	switch act {
	case actQuit:
		return tea.Quit
	case actSuspend:
		return tea.Suspend
	case actMoveUp:
		m.session.MoveSelection(-1)
	case actMoveDown:
		m.session.MoveSelection(1)
	case actPrevType:
		m.session.MoveAnchor(-1)
	case actNextType:
		m.session.MoveAnchor(1)
	case actPageUp:
		m.session.PageSelection(-1)
	case actPageDown:
		m.session.PageSelection(1)
	case actHome:
		m.session.SelectionHome()
	case actEnd:
		m.session.SelectionEnd()
	case actSortNext:
		events.UI.Sort(m.session.CycleSort(1).String())
	case actSortPrev:
		events.UI.Sort(m.session.CycleSort(-1).String())
	case actSortFlip:
		events.UI.Sort(m.session.FlipSort().String())
	case actPrune:
		events.UI.Prune(m.session.Prune())
	case actCopy:
		m.copySelection()
	case actClearNotice:
		m.session.ClearNotice()
	case actFilter:
		return m.beginFilter()
	case actHelp:
		m.session.OpenHelp()
		events.UI.Mode(session.ModeHelp.String())
	case actMetrics:
		m.session.OpenMetrics()
		events.UI.Mode(session.ModeMetrics.String())
	case actDismiss:
		m.session.Dismiss()
		events.UI.Mode(session.ModeNormal.String())
	case actCommitFilter:
		m.filterInput.Blur()
		events.Filter.Commit(m.session.CommitFilter())
	case actCancelFilter:
		m.filterInput.Blur()
		m.filterInput.Reset()
		m.session.CancelFilter()
		events.Filter.Cancel()
	case actSnapMatch:
		events.Filter.Snap(m.session.SnapToBestMatch())
	case actEditFilter:
		return m.editFilter(msg)
	}
	return nil
}

// beginFilter enters filter editing with a cleared draft. The committed
// query keeps narrowing the list until the first keystroke replaces it.
func (m *Model) beginFilter() tea.Cmd {
	m.session.BeginFilter()
	m.filterInput.Reset()
	events.Filter.Begin()
	return m.filterInput.Focus()
}

// editFilter feeds the key to the text input and mirrors any text change
// into the session draft, narrowing the service list live.
func (m *Model) editFilter(msg tea.KeyMsg) tea.Cmd {
	before := m.filterInput.Value()
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	if text := m.filterInput.Value(); text != before {
		m.session.SetFilterDraft(text)
		events.Filter.Draft(text)
	}
	return cmd
}

// copySelection puts the selected service's details on the system clipboard.
// A failure surfaces as the dismissible notice; a later success clears it.
func (m *Model) copySelection() {
	entry, ok := m.session.SelectedEntry()
	if !ok {
		return
	}
	text := format.CopyText(entry, time.Now().UnixMicro())
	if err := clipboard.WriteAll(text); err != nil {
		m.session.SetNotice(fmt.Sprintf("clipboard copy failed: %v", err))
		events.Action.Error(err)
		return
	}
	m.session.ClearNotice()
	events.Action.Success("copied " + entry.FullName)
}
