package app

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ferrovax/zeroscope/internal/browser"
	"github.com/ferrovax/zeroscope/internal/logging"
	"github.com/ferrovax/zeroscope/internal/prefs"
	"github.com/ferrovax/zeroscope/internal/session"
	"github.com/ferrovax/zeroscope/internal/ui"
	"github.com/ferrovax/zeroscope/internal/view"
)

// Config describes user-provided application options.
type Config struct {
	Domain     string
	PrefsPath  string
	ShowFooter bool
}

// Run bootstraps the session, the mDNS browser, and the Bubble Tea program,
// and blocks until the dashboard exits. The sort order restored from the
// preferences file is written back on a clean exit.
func Run(cfg Config) error {
	saved, err := prefs.Load(cfg.PrefsPath)
	if err != nil {
		logging.Error(fmt.Errorf("load preferences: %w", err))
	}

	sess := session.New()
	sess.SetSort(view.Order{Field: view.ParseField(saved.SortField), Desc: saved.SortDesc})

	b := browser.New(cfg.Domain, sess)
	b.Start()
	defer b.Stop()

	model := ui.NewModel(sess, cfg.ShowFooter)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		err = nil
	}
	if err != nil {
		return err
	}

	order := sess.Sort()
	saved.SortField = order.Field.String()
	saved.SortDesc = order.Desc
	if saveErr := prefs.Save(cfg.PrefsPath, saved); saveErr != nil {
		logging.Error(saveErr)
	}
	return nil
}
