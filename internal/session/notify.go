package session

import "sync/atomic"

// Notification tells the render loop why it is being woken.
type Notification int

const (
	// NoteUserInput follows a keystroke-driven mutation.
	NoteUserInput Notification = iota
	// NoteStateChanged follows a discovery-driven mutation.
	NoteStateChanged
	// NoteForceRedraw requests a full repaint, e.g. after resume.
	NoteForceRedraw
)

func (n Notification) String() string {
	switch n {
	case NoteUserInput:
		return "user-input"
	case NoteStateChanged:
		return "state-changed"
	case NoteForceRedraw:
		return "force-redraw"
	default:
		return "unknown"
	}
}

// Notifier fans redraw intent from many producers into the single render
// loop. Sends never block: once the buffer is full a wakeup is already
// pending and the consumer will re-read current state anyway, so further
// notifications carry no information and are dropped. The channel is never
// closed.
type Notifier struct {
	ch      chan Notification
	sent    atomic.Uint64
	dropped atomic.Uint64
}

const notifierBuffer = 8

func NewNotifier() *Notifier {
	return &Notifier{ch: make(chan Notification, notifierBuffer)}
}

// Notify enqueues one wakeup, dropping it when the buffer is full.
func (n *Notifier) Notify(note Notification) {
	select {
	case n.ch <- note:
		n.sent.Add(1)
	default:
		n.dropped.Add(1)
	}
}

// C is the consumer side; the render loop blocks on it between frames.
func (n *Notifier) C() <-chan Notification {
	return n.ch
}

// Counts reports how many notifications were delivered and how many were
// coalesced away.
func (n *Notifier) Counts() (sent, dropped uint64) {
	return n.sent.Load(), n.dropped.Load()
}
