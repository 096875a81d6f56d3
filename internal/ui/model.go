package ui

import (
	"reflect"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ferrovax/zeroscope/internal/logging/events"
	"github.com/ferrovax/zeroscope/internal/session"
	"github.com/ferrovax/zeroscope/internal/theme"
)

var styles = theme.Default()

// filterInputReserve keeps the input's text region clear of the prompt glyphs
// so the rendered line never exceeds the terminal width.
const filterInputReserve = 3

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the dashboard. All service state
// lives in the session; the model holds terminal geometry, the filter input
// widget, and the frame snapshot the next View renders.
type Model struct {
	session  *session.Session
	notifier *session.Notifier
	keys     keymap

	filterInput textinput.Model
	width       int
	height      int
	showFooter  bool

	frame session.Frame

	handlers map[reflect.Type]msgHandler
}

// NewModel wires the model to an existing session and takes the first frame
// snapshot, so the dashboard has something to draw before any discovery
// event arrives.
func NewModel(sess *session.Session, showFooter bool) *Model {
	input := textinput.New()
	input.Prompt = "/ "
	input.Placeholder = "(type to filter)"
	input.CharLimit = 128
	if styles.FilterPrompt != nil {
		input.PromptStyle = *styles.FilterPrompt
	}
	if styles.FilterText != nil {
		input.TextStyle = *styles.FilterText
	}
	m := &Model{
		session:     sess,
		notifier:    sess.Notifier(),
		keys:        defaultKeymap(),
		filterInput: input,
		showFooter:  showFooter,
		frame:       sess.Frame(),
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return waitForNotice(m.notifier)
}

// Update routes each message through the typed handler registry, then
// snapshots a fresh frame for the next View. Messages without a handler are
// offered to the filter input so cursor housekeeping still runs.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if handler := m.handlerFor(msg); handler != nil {
		cmd = handler(msg)
	} else {
		m.filterInput, cmd = m.filterInput.Update(msg)
	}
	m.frame = m.session.Frame()
	return m, cmd
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tea.ResumeMsg{}):     m.handleResumeMsg,
		reflect.TypeOf(noticeMsg{}):         m.handleNoticeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	mode := m.session.Mode()
	events.UI.Key(mode.String(), keyMsg.String())
	return m.apply(m.keys.lookup(mode, keyMsg), keyMsg)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	m.width = resize.Width
	m.height = resize.Height
	l := m.layout()
	m.session.SetLayout(l.typeRows, l.listRows)
	m.filterInput.Width = l.width - filterInputReserve
	events.UI.Resize(resize.Width, resize.Height)
	return nil
}

func (m *Model) handleResumeMsg(msg tea.Msg) tea.Cmd {
	events.App.Resume()
	m.session.ForceRedraw()
	return nil
}

func (m *Model) layout() layout {
	return computeLayout(m.width, m.height, m.showFooter)
}
