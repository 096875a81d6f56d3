package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/ferrovax/zeroscope/internal/session"
)

func viewSession(t *testing.T) *session.Session {
	t.Helper()
	sess := session.New()
	sess.UpsertEntry(uiEntry("kitchen-cast", "_googlecast._tcp", "kitchen.local.", 8009))
	sess.UpsertEntry(uiEntry("officejet", "_ipp._tcp", "printer.local.", 631))
	sess.MarkEntryRemoved("officejet._ipp._tcp.local.")
	return sess
}

func TestRenderFrameTwiceIsByteIdentical(t *testing.T) {
	f := viewSession(t).Frame()
	l := computeLayout(100, 30, true)
	k := defaultKeymap()
	first := renderFrame(f, l, k, "press / to filter")
	second := renderFrame(f, l, k, "press / to filter")
	if first != second {
		t.Fatalf("expected identical renders of one frame")
	}
}

func TestRenderFrameEmitsExactGeometry(t *testing.T) {
	f := viewSession(t).Frame()
	l := computeLayout(100, 30, true)
	out := renderFrame(f, l, defaultKeymap(), "press / to filter")
	lines := strings.Split(out, "\n")
	if len(lines) != 30 {
		t.Fatalf("expected 30 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 100 {
			t.Fatalf("line %d: expected width 100, got %d", i, w)
		}
	}
}

func TestRenderFrameShowsPanesAndDetails(t *testing.T) {
	f := viewSession(t).Frame()
	out := renderFrame(f, computeLayout(100, 30, true), defaultKeymap(), "")
	for _, want := range []string{
		"Service Types [2]",
		"All Types",
		"Services [2/2]",
		"googlecast.tcp",
		"kitchen-cast",
		"Details",
		"Host:",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected rendered frame to contain %q, got:\n%s", want, out)
		}
	}
}

func TestRenderNoticeDisplacesDetails(t *testing.T) {
	sess := viewSession(t)
	sess.SetNotice("clipboard copy failed: no display")
	out := renderFrame(sess.Frame(), computeLayout(100, 30, false), defaultKeymap(), "")
	if !strings.Contains(out, "Notice") {
		t.Fatalf("expected notice title, got:\n%s", out)
	}
	if !strings.Contains(out, "clipboard copy failed") {
		t.Fatalf("expected notice text, got:\n%s", out)
	}
	if strings.Contains(out, "Full:") {
		t.Fatalf("expected notice to displace the details body")
	}
}

func TestRenderHelpOverlay(t *testing.T) {
	sess := viewSession(t)
	sess.OpenHelp()
	out := renderFrame(sess.Frame(), computeLayout(100, 30, false), defaultKeymap(), "")
	if !strings.Contains(out, "press any key to return") {
		t.Fatalf("expected dismissal hint, got:\n%s", out)
	}
	if !strings.Contains(out, "quit") {
		t.Fatalf("expected key reference in overlay, got:\n%s", out)
	}
	if lines := strings.Split(out, "\n"); len(lines) != 30 {
		t.Fatalf("expected overlay to fill 30 lines, got %d", len(lines))
	}
}

func TestRenderMetricsOverlaySortsCounters(t *testing.T) {
	sess := viewSession(t)
	sess.SetMetrics(map[string]int{
		"types-found":      3,
		"browse-failures":  1,
		"entries-resolved": 9,
	})
	sess.OpenMetrics()
	out := renderFrame(sess.Frame(), computeLayout(100, 30, false), defaultKeymap(), "")
	first := strings.Index(out, "browse-failures")
	second := strings.Index(out, "entries-resolved")
	third := strings.Index(out, "types-found")
	if first < 0 || second < 0 || third < 0 {
		t.Fatalf("expected all counters in overlay, got:\n%s", out)
	}
	if !(first < second && second < third) {
		t.Fatalf("expected counters in sorted order, got positions %d %d %d", first, second, third)
	}
}

func TestEmptyListHints(t *testing.T) {
	sess := session.New()
	out := renderFrame(sess.Frame(), computeLayout(100, 30, false), defaultKeymap(), "")
	if !strings.Contains(out, "(no services discovered yet)") {
		t.Fatalf("expected discovery hint, got:\n%s", out)
	}

	sess = viewSession(t)
	sess.BeginFilter()
	sess.SetFilterDraft("zzz")
	sess.CommitFilter()
	out = renderFrame(sess.Frame(), computeLayout(100, 30, false), defaultKeymap(), "")
	if !strings.Contains(out, "(no services match)") {
		t.Fatalf("expected filter hint, got:\n%s", out)
	}
}

func TestComputeLayoutPartitionsTerminal(t *testing.T) {
	cases := []struct {
		width, height int
		footer        bool
	}{
		{80, 24, false},
		{100, 30, true},
		{40, 12, false},
		{20, 8, true},
		{120, 50, true},
	}
	for _, tc := range cases {
		l := computeLayout(tc.width, tc.height, tc.footer)
		if l.typeWidth+1+l.listWidth != tc.width {
			t.Fatalf("%dx%d: widths %d+1+%d do not partition the terminal", tc.width, tc.height, l.typeWidth, l.listWidth)
		}
		rows := headerRows + l.panesHeight + statusBarRows
		if tc.footer {
			rows++
		}
		if rows != tc.height {
			t.Fatalf("%dx%d: rows %d do not fill the terminal", tc.width, tc.height, rows)
		}
		if l.listRows < 1 {
			t.Fatalf("%dx%d: no list rows", tc.width, tc.height)
		}
		if l.typeRows != l.panesHeight-1 {
			t.Fatalf("%dx%d: type rows %d", tc.width, tc.height, l.typeRows)
		}
		if l.detailRows != 0 && l.detailRows < 3 {
			t.Fatalf("%dx%d: unusable detail rows %d", tc.width, tc.height, l.detailRows)
		}
		if 1+l.listRows+l.detailRows != l.panesHeight {
			t.Fatalf("%dx%d: right column rows do not add up", tc.width, tc.height)
		}
	}
}
