package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ferrovax/zeroscope/internal/session"
)

// action is what a key press asks the dashboard to do. The mapping from
// (mode, key) to action is a pure lookup so it can be tested apart from the
// session calls that carry the actions out.
type action int

const (
	actNone action = iota
	actQuit
	actSuspend
	actMoveUp
	actMoveDown
	actPrevType
	actNextType
	actPageUp
	actPageDown
	actHome
	actEnd
	actSortNext
	actSortPrev
	actSortFlip
	actPrune
	actCopy
	actClearNotice
	actFilter
	actHelp
	actMetrics
	actDismiss
	actCommitFilter
	actCancelFilter
	actSnapMatch
	actEditFilter
)

// keymap groups the bindings for every dashboard action. The help metadata
// on each binding doubles as the source for the help overlay and the -h
// banner.
type keymap struct {
	Quit     key.Binding
	Suspend  key.Binding
	Up       key.Binding
	Down     key.Binding
	PrevType key.Binding
	NextType key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	SortNext key.Binding
	SortPrev key.Binding
	SortFlip key.Binding
	Prune    key.Binding
	Copy     key.Binding
	Clear    key.Binding
	Filter   key.Binding
	Help     key.Binding
	Metrics  key.Binding
	Commit   key.Binding
	Cancel   key.Binding
	Snap     key.Binding
}

func defaultKeymap() keymap {
	return keymap{
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q/ctrl+c", "quit")),
		Suspend:  key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "suspend")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "previous service")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "next service")),
		PrevType: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("left/h", "previous type")),
		NextType: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("right/l", "next type")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup/b", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "f", " "), key.WithHelp("pgdn/f", "page down")),
		Home:     key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("home/g", "first service")),
		End:      key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("end/G", "last service")),
		SortNext: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "next sort field")),
		SortPrev: key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "previous sort field")),
		SortFlip: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "reverse sort order")),
		Prune:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "prune offline services")),
		Copy:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy service details")),
		Clear:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear notice")),
		Filter:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter services")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Metrics:  key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "diagnostics")),
		Commit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply filter")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear filter")),
		Snap:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "jump to best match")),
	}
}

// lookup resolves a key press for the given mode. The help and diagnostics
// popups treat any key as a dismissal. Filter editing reserves commit,
// cancel, snap, and ctrl+c; everything else feeds the text input.
func (k keymap) lookup(mode session.Mode, msg tea.KeyMsg) action {
	switch mode {
	case session.ModeHelp, session.ModeMetrics:
		return actDismiss
	case session.ModeFilterEdit:
		switch {
		case key.Matches(msg, k.Commit):
			return actCommitFilter
		case key.Matches(msg, k.Cancel):
			return actCancelFilter
		case key.Matches(msg, k.Snap):
			return actSnapMatch
		case msg.Type == tea.KeyCtrlC:
			return actQuit
		}
		return actEditFilter
	}
	switch {
	case key.Matches(msg, k.Quit):
		return actQuit
	case key.Matches(msg, k.Suspend):
		return actSuspend
	case key.Matches(msg, k.Up):
		return actMoveUp
	case key.Matches(msg, k.Down):
		return actMoveDown
	case key.Matches(msg, k.PrevType):
		return actPrevType
	case key.Matches(msg, k.NextType):
		return actNextType
	case key.Matches(msg, k.PageUp):
		return actPageUp
	case key.Matches(msg, k.PageDown):
		return actPageDown
	case key.Matches(msg, k.Home):
		return actHome
	case key.Matches(msg, k.End):
		return actEnd
	case key.Matches(msg, k.SortNext):
		return actSortNext
	case key.Matches(msg, k.SortPrev):
		return actSortPrev
	case key.Matches(msg, k.SortFlip):
		return actSortFlip
	case key.Matches(msg, k.Prune):
		return actPrune
	case key.Matches(msg, k.Copy):
		return actCopy
	case key.Matches(msg, k.Clear):
		return actClearNotice
	case key.Matches(msg, k.Filter):
		return actFilter
	case key.Matches(msg, k.Help):
		return actHelp
	case key.Matches(msg, k.Metrics):
		return actMetrics
	}
	return actNone
}

// bindings returns the keymap in help display order.
func (k keymap) bindings() []key.Binding {
	return []key.Binding{
		k.Up, k.Down, k.PrevType, k.NextType,
		k.PageUp, k.PageDown, k.Home, k.End,
		k.SortNext, k.SortPrev, k.SortFlip,
		k.Filter, k.Snap, k.Commit, k.Cancel,
		k.Prune, k.Copy, k.Clear,
		k.Metrics, k.Help, k.Suspend, k.Quit,
	}
}
