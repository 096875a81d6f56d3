package ui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/ferrovax/zeroscope/internal/catalog"
	"github.com/ferrovax/zeroscope/internal/format"
	"github.com/ferrovax/zeroscope/internal/session"
)

const (
	headerRows    = 1
	statusBarRows = 2 // status line + filter prompt

	detailPaneRows = 9 // bordered details box, including its two border rows
	minListRows    = 3

	typePaneFraction = 0.28
	typePaneMinWidth = 16
	typePaneMaxWidth = 40
)

// layout fixes where every pane lands for one terminal size. The scrollable
// row counts (typeRows, listRows) are fed back to the session so cursor
// paging and the renderer always agree.
type layout struct {
	width  int
	height int
	footer bool

	typeWidth   int
	listWidth   int
	panesHeight int
	detailRows  int
	typeRows    int
	listRows    int
}

func computeLayout(width, height int, footer bool) layout {
	l := layout{width: width, height: height, footer: footer}
	if width <= 0 || height <= 0 {
		return l
	}
	l.typeWidth = int(float64(width) * typePaneFraction)
	if l.typeWidth < typePaneMinWidth {
		l.typeWidth = typePaneMinWidth
	}
	if l.typeWidth > typePaneMaxWidth {
		l.typeWidth = typePaneMaxWidth
	}
	if l.typeWidth > width/2 {
		l.typeWidth = width / 2
	}
	l.listWidth = width - l.typeWidth - 1
	if l.listWidth < 1 {
		l.listWidth = 1
	}
	l.panesHeight = height - headerRows - statusBarRows
	if footer {
		l.panesHeight--
	}
	if l.panesHeight < 3 {
		l.panesHeight = 3
	}
	l.detailRows = detailPaneRows
	if l.panesHeight-1-l.detailRows < minListRows {
		l.detailRows = l.panesHeight - 1 - minListRows
	}
	if l.detailRows < 3 {
		l.detailRows = 0
	}
	l.typeRows = l.panesHeight - 1
	l.listRows = l.panesHeight - 1 - l.detailRows
	if l.listRows < 1 {
		l.listRows = 1
	}
	return l
}

// View implements tea.Model. Everything it draws comes from the last frame
// snapshot; the filter prompt is rendered here because the text input's
// cursor blink is the one time-varying element.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	return renderFrame(m.frame, m.layout(), m.keys, m.promptLine())
}

func (m *Model) promptLine() string {
	if m.frame.Mode == session.ModeFilterEdit {
		return m.filterInput.View()
	}
	if m.frame.Filter != "" {
		return styled(styles.FilterPrompt, "/ ") + styled(styles.FilterText, m.frame.Filter)
	}
	return styled(styles.Status, "press / to filter")
}

// renderFrame is a pure function of its arguments: rendering one frame twice
// yields byte-identical output. It always emits exactly layout.height lines.
func renderFrame(f session.Frame, l layout, k keymap, prompt string) string {
	switch f.Mode {
	case session.ModeHelp:
		return renderOverlay(l, "Keys", helpLines(k))
	case session.ModeMetrics:
		return renderOverlay(l, "Diagnostics", metricsLines(f.Metrics))
	}
	lines := make([]string, 0, l.height)
	lines = append(lines, headerLine(f, l.width))
	left := typePane(f, l)
	right := servicePane(f, l)
	for i := 0; i < l.panesHeight; i++ {
		lines = append(lines, left[i]+" "+right[i])
	}
	if l.footer {
		lines = append(lines, footerLine(l.width))
	}
	lines = append(lines, statusLine(f, l.width))
	lines = append(lines, fitWidth(prompt, l.width))
	return strings.Join(fitHeight(lines, l.height), "\n")
}

func headerLine(f session.Frame, width int) string {
	left := "zeroscope"
	right := "sort: " + f.Sort.String()
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return styled(styles.Header, fitWidth(left, width))
	}
	return styled(styles.Header, left) + strings.Repeat(" ", gap) + styled(styles.Status, right)
}

// typePane renders the left column: a title plus the scrollable type list,
// with the all-types pseudo-row above the discovered types. Returns exactly
// panesHeight rows, each exactly typeWidth columns.
func typePane(f session.Frame, l layout) []string {
	rows := make([]string, 0, l.panesHeight)
	rows = append(rows, paneTitle(fmt.Sprintf("Service Types [%d]", len(f.Types)), l.typeWidth))
	labels := make([]string, 0, len(f.Types)+1)
	labels = append(labels, "All Types")
	for _, t := range f.Types {
		labels = append(labels, format.TypeLabel(t))
	}
	selected := f.Anchor + 1
	start := f.TypeOffset
	if start < 0 {
		start = 0
	}
	for i := 0; i < l.typeRows; i++ {
		idx := start + i
		if idx >= len(labels) {
			rows = append(rows, fitWidth("", l.typeWidth))
			continue
		}
		rows = append(rows, itemLine(labels[idx], idx == selected, false, l.typeWidth))
	}
	return rows
}

// servicePane renders the right column: title, the scrollable service list,
// and the details box (or the notice, which displaces it). Returns exactly
// panesHeight rows, each exactly listWidth columns.
func servicePane(f session.Frame, l layout) []string {
	rows := make([]string, 0, l.panesHeight)
	rows = append(rows, paneTitle(fmt.Sprintf("Services [%d/%d]", len(f.Rows), f.Total), l.listWidth))
	for i := 0; i < l.listRows; i++ {
		if len(f.Rows) == 0 && i == 0 {
			rows = append(rows, styled(styles.EmptyListHint, fitWidth(emptyListHint(f), l.listWidth)))
			continue
		}
		idx := f.Offset + i
		if idx < 0 || idx >= len(f.Rows) {
			rows = append(rows, fitWidth("", l.listWidth))
			continue
		}
		e := f.Rows[idx]
		rows = append(rows, itemLine(format.ServiceLine(e), idx == f.Row, !e.Alive, l.listWidth))
	}
	if l.detailRows > 0 {
		rows = append(rows, detailBox(f, l.listWidth, l.detailRows)...)
	}
	return rows
}

func emptyListHint(f session.Frame) string {
	if f.Filtering() || f.Anchor != catalog.AllTypes {
		return "(no services match)"
	}
	return "(no services discovered yet)"
}

// itemLine renders one selectable row: a two-column indicator gutter plus
// the padded label, styled per selection and liveness.
func itemLine(text string, selected, offline bool, width int) string {
	if width <= 2 {
		return fitWidth("", width)
	}
	body := fitWidth(text, width-2)
	if selected {
		return styled(styles.Indicator, "▌ ") + styled(styles.SelectedItem, body)
	}
	style := styles.Item
	if offline {
		style = styles.OfflineItem
	}
	return "  " + styled(style, body)
}

// detailBox draws the bordered details panel, exactly height rows of width
// columns. An active notice displaces the selected service's details until
// it is cleared.
func detailBox(f session.Frame, width, height int) []string {
	const (
		tlc = "╭"
		trc = "╮"
		blc = "╰"
		brc = "╯"
		hz  = "─"
		vt  = "│"
	)
	innerW := width - 2
	innerH := height - 2
	if innerW < 1 || innerH < 1 {
		out := make([]string, height)
		for i := range out {
			out[i] = fitWidth("", width)
		}
		return out
	}

	title := "Details"
	bodyStyle := styles.Item
	var content []string
	switch {
	case f.Notice != "":
		title = "Notice"
		bodyStyle = styles.Notice
		content = []string{f.Notice, "", "press c to clear"}
	default:
		if e, ok := f.Selected(); ok {
			content = format.Details(e, f.Now)
		} else {
			content = []string{"(nothing selected)"}
		}
	}
	if len(content) > innerH {
		content = append(append([]string{}, content[:innerH-1]...), "…")
	}

	titleSeg := " " + title + " "
	dashes := width - 3 - lipgloss.Width(titleSeg)
	if dashes < 0 {
		titleSeg = ""
		dashes = width - 3
	}
	out := make([]string, 0, height)
	out = append(out, styled(styles.DetailBorder, tlc+hz)+
		styled(styles.PaneTitle, titleSeg)+
		styled(styles.DetailBorder, strings.Repeat(hz, dashes)+trc))
	for i := 0; i < innerH; i++ {
		var line string
		if i < len(content) {
			line = content[i]
		}
		out = append(out, styled(styles.DetailBorder, vt)+
			styled(bodyStyle, fitWidth(line, innerW))+
			styled(styles.DetailBorder, vt))
	}
	out = append(out, styled(styles.DetailBorder, blc+strings.Repeat(hz, innerW)+brc))
	return out
}

func statusLine(f session.Frame, width int) string {
	parts := []string{fmt.Sprintf("%d/%d alive", f.Metrics.Alive, f.Metrics.Entries)}
	if f.Anchor != catalog.AllTypes && f.Anchor >= 0 && f.Anchor < len(f.Types) {
		parts = append(parts, "type "+format.TypeLabel(f.Types[f.Anchor]))
	}
	if f.Mode == session.ModeFilterEdit {
		parts = append(parts, fmt.Sprintf("filtering %q", f.Draft))
	} else if f.Filter != "" {
		parts = append(parts, fmt.Sprintf("filter %q", f.Filter))
	}
	return styled(styles.Status, fitWidth(strings.Join(parts, "  "), width))
}

func footerLine(width int) string {
	text := "up/down move  left/right type  / filter  s sort  d prune  y copy  ? help  q quit"
	return styled(styles.Footer, fitWidth(text, width))
}

// renderOverlay centers a bordered popup over a blank screen, used for the
// help and diagnostics modes.
func renderOverlay(l layout, title string, body []string) string {
	lines := make([]string, 0, len(body)+4)
	lines = append(lines, styled(styles.OverlayTitle, title), "")
	lines = append(lines, body...)
	lines = append(lines, "", styled(styles.Status, "press any key to return"))
	box := strings.Join(lines, "\n")
	if styles.Overlay != nil {
		box = styles.Overlay.Render(box)
	}
	placed := lipgloss.Place(l.width, l.height, lipgloss.Center, lipgloss.Center, box)
	return strings.Join(fitHeight(strings.Split(placed, "\n"), l.height), "\n")
}

func metricsLines(m session.Metrics) []string {
	rows := [][]string{
		{"entries", strconv.Itoa(m.Entries)},
		{"alive", strconv.Itoa(m.Alive)},
		{"types", strconv.Itoa(m.Types)},
		{"filter scans", strconv.Itoa(m.FilterScans)},
		{"sort passes", strconv.Itoa(m.SortPasses)},
		{"notes sent", strconv.FormatUint(m.NotesSent, 10)},
		{"notes dropped", strconv.FormatUint(m.NotesDropped, 10)},
	}
	if len(m.Discovery) > 0 {
		keys := make([]string, 0, len(m.Discovery))
		for k := range m.Discovery {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		rows = append(rows, []string{""})
		for _, k := range keys {
			rows = append(rows, []string{k, strconv.Itoa(m.Discovery[k])})
		}
	}
	return format.AlignRows(rows, []format.Align{format.AlignLeft, format.AlignRight})
}

func paneTitle(text string, width int) string {
	return styled(styles.PaneTitle, fitWidth(text, width))
}

func styled(s *lipgloss.Style, text string) string {
	if s == nil || text == "" {
		return text
	}
	return s.Render(text)
}

// fitWidth truncates or pads text so it occupies exactly width columns,
// measuring and cutting ANSI-aware.
func fitWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(text) > width {
		text = truncate.StringWithTail(text, uint(width), "…")
	}
	if w := lipgloss.Width(text); w < width {
		text += strings.Repeat(" ", width-w)
	}
	return text
}

func fitHeight(lines []string, height int) []string {
	if height <= 0 {
		return lines
	}
	if len(lines) > height {
		return lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}
