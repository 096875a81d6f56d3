// Package ui contains the Bubble Tea program that powers the dashboard.
// The package is structured so the Model type focuses on message
// orchestration, while dedicated helpers own key dispatch, filter input, and
// rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Update routes each message through a typed handler registry so every
//     tea.Msg is handled by a focused function (key presses, resizes,
//     resume-from-suspend, and session notifications). Messages without a
//     handler go to the filter text input for cursor housekeeping.
//   - Key presses resolve to an action via the keymap's pure (mode, key)
//     lookup (internal/ui/keymap.go); apply (internal/ui/input.go) carries
//     the action out against the session.
//   - After every message, Update snapshots a fresh session.Frame. View
//     renders only that snapshot, so a frame draws identically no matter
//     when it is painted.
//
// State ownership:
//   - All service, selection, filter, and mode state lives in
//     internal/session, shared with the discovery goroutines. The model owns
//     only terminal geometry, the textinput widget, and the last frame.
//   - Layout is a pure function of the terminal size; its visible row counts
//     are fed back to the session so paging matches what is on screen.
//
// Discovery interactions:
//   - A waitForNotice command blocks on the session notifier and delivers
//     one notification per Update pass; its handler re-arms the wait. Bursts
//     of discovery events coalesce into a handful of repaints instead of one
//     per event.
package ui
