// Package theme centralizes the lipgloss styles used by the dashboard.
package theme

import "github.com/charmbracelet/lipgloss"

// Styles groups every style the renderer needs. Fields are pointers so a
// caller can restyle one element without copying the whole set.
type Styles struct {
	Header        *lipgloss.Style
	PaneTitle     *lipgloss.Style
	Item          *lipgloss.Style
	OfflineItem   *lipgloss.Style
	SelectedItem  *lipgloss.Style
	Indicator     *lipgloss.Style
	DetailBorder  *lipgloss.Style
	Notice        *lipgloss.Style
	Status        *lipgloss.Style
	Footer        *lipgloss.Style
	FilterPrompt  *lipgloss.Style
	FilterText    *lipgloss.Style
	EmptyListHint *lipgloss.Style
	Overlay       *lipgloss.Style
	OverlayTitle  *lipgloss.Style
}

func ptr(s lipgloss.Style) *lipgloss.Style {
	return &s
}

// Default returns the standard dashboard palette.
func Default() *Styles {
	return &Styles{
		Header:        ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true)),
		PaneTitle:     ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true)),
		Item:          ptr(lipgloss.NewStyle()),
		OfflineItem:   ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)),
		SelectedItem:  ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Bold(true)),
		Indicator:     ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("205"))),
		DetailBorder:  ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))),
		Notice:        ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)),
		Status:        ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("245"))),
		Footer:        ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("241"))),
		FilterPrompt:  ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)),
		FilterText:    ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("252"))),
		EmptyListHint: ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Italic(true)),
		Overlay:       ptr(lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("99")).Padding(1, 2)),
		OverlayTitle:  ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true)),
	}
}
