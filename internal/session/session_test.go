package session

import (
	"fmt"
	"testing"

	"github.com/ferrovax/zeroscope/internal/catalog"
	"github.com/ferrovax/zeroscope/internal/view"
)

const (
	httpType = "_http._tcp.local."
	sshType  = "_ssh._tcp.local."
)

func newTestSession() *Session {
	s := New()
	s.SetLayout(4, 5)
	clock := int64(0)
	s.now = func() int64 {
		clock += 1000
		return clock
	}
	return s
}

func serviceEntry(i int, typ string) catalog.Entry {
	return catalog.Entry{
		FullName: fmt.Sprintf("svc%d.%s", i, typ),
		Type:     typ,
		Host:     fmt.Sprintf("host%d.local.", i),
		Addrs:    []string{fmt.Sprintf("10.0.0.%d", i+1)},
		Port:     uint16(8000 + i),
		Alive:    true,
	}
}

func drainNotes(s *Session) {
	for {
		select {
		case <-s.Notifier().C():
		default:
			return
		}
	}
}

func assertFrameInvariants(t *testing.T, f Frame, label string) {
	t.Helper()
	n := len(f.Rows)
	if n == 0 {
		if f.Row != 0 || f.Offset != 0 {
			t.Fatalf("%s: expected zeroed cursor on empty projection, got row %d offset %d", label, f.Row, f.Offset)
		}
		return
	}
	if f.Row < 0 || f.Row >= n {
		t.Fatalf("%s: selection %d out of range [0,%d)", label, f.Row, n)
	}
	if f.Offset < 0 || f.Offset > f.Row {
		t.Fatalf("%s: offset %d does not cover selection %d", label, f.Offset, f.Row)
	}
	if f.Anchor < catalog.AllTypes || f.Anchor >= len(f.Types) {
		t.Fatalf("%s: anchor %d out of range for %d types", label, f.Anchor, len(f.Types))
	}
}

func TestInvariantsHoldAcrossOperations(t *testing.T) {
	s := newTestSession()
	ops := []struct {
		name string
		run  func()
	}{
		{"upsert-0", func() { s.UpsertEntry(serviceEntry(0, httpType)) }},
		{"upsert-1", func() { s.UpsertEntry(serviceEntry(1, httpType)) }},
		{"upsert-2", func() { s.UpsertEntry(serviceEntry(2, sshType)) }},
		{"move-end", func() { s.SelectionEnd() }},
		{"anchor-next", func() { s.MoveAnchor(1) }},
		{"sort-cycle", func() { s.CycleSort(1) }},
		{"move-down", func() { s.MoveSelection(1) }},
		{"offline-1", func() { s.MarkEntryRemoved("svc1." + httpType) }},
		{"prune", func() { s.Prune() }},
		{"anchor-all", func() { s.MoveAnchor(-1) }},
		{"upsert-3", func() { s.UpsertEntry(serviceEntry(3, sshType)) }},
		{"page-down", func() { s.PageSelection(1) }},
		{"sort-flip", func() { s.FlipSort() }},
		{"filter", func() { s.BeginFilter(); s.SetFilterDraft("svc"); s.CommitFilter() }},
		{"cancel", func() { s.CancelFilter() }},
	}
	for _, op := range ops {
		op.run()
		assertFrameInvariants(t, s.Frame(), op.name)
	}
}

func TestPruneNearEndSelectionPinsToNewEnd(t *testing.T) {
	s := newTestSession()
	s.SetLayout(4, 10)
	for i := 0; i < 5; i++ {
		s.UpsertEntry(serviceEntry(i, httpType))
	}
	s.SelectionEnd()
	if f := s.Frame(); f.Row != 4 {
		t.Fatalf("expected selection on row 4, got %d", f.Row)
	}

	s.MarkEntryRemoved("svc3." + httpType)
	s.MarkEntryRemoved("svc4." + httpType)
	if removed := s.Prune(); removed != 2 {
		t.Fatalf("expected 2 pruned, got %d", removed)
	}

	f := s.Frame()
	if len(f.Rows) != 3 {
		t.Fatalf("expected 3 rows left, got %d", len(f.Rows))
	}
	if f.Row != 2 {
		t.Fatalf("expected selection pinned to new end 2, got %d", f.Row)
	}
	if f.Rows[f.Row].FullName != "svc2."+httpType {
		t.Fatalf("expected svc2 selected, got %s", f.Rows[f.Row].FullName)
	}
}

func TestPruneMidListSelectionKeepsPosition(t *testing.T) {
	s := newTestSession()
	s.SetLayout(4, 10)
	for i := 0; i < 5; i++ {
		s.UpsertEntry(serviceEntry(i, httpType))
	}
	s.MoveSelection(1)
	s.MarkEntryRemoved("svc3." + httpType)
	s.MarkEntryRemoved("svc4." + httpType)
	s.Prune()

	f := s.Frame()
	if f.Row != 1 {
		t.Fatalf("expected selection kept at 1, got %d", f.Row)
	}
}

func TestPruneRemovesOrphanedTypes(t *testing.T) {
	s := newTestSession()
	s.UpsertEntry(serviceEntry(0, httpType))
	s.UpsertEntry(serviceEntry(1, sshType))
	s.MarkEntryRemoved("svc1." + sshType)
	s.Prune()

	f := s.Frame()
	if len(f.Types) != 1 || f.Types[0] != httpType {
		t.Fatalf("expected only http type left, got %v", f.Types)
	}
	if f.Total != 1 {
		t.Fatalf("expected 1 entry left, got %d", f.Total)
	}
}

func TestRemoveTypeRefusedWhileReferenced(t *testing.T) {
	s := newTestSession()
	s.UpsertEntry(serviceEntry(0, httpType))

	if s.RemoveType(httpType) {
		t.Fatalf("expected removal refused while an entry references the type")
	}
	s.MarkEntryRemoved("svc0." + httpType)
	if s.RemoveType(httpType) {
		t.Fatalf("expected removal refused while an offline entry remains")
	}
	s.Prune()
	if f := s.Frame(); len(f.Types) != 0 {
		t.Fatalf("expected prune to remove the orphaned type, got %v", f.Types)
	}
}

func TestRemoveAnchoredTypeResetsSelection(t *testing.T) {
	s := newTestSession()
	s.AddType(httpType)
	s.AddType(sshType)
	s.MoveAnchor(1)
	if name, _ := frameAnchorName(s.Frame()); name != httpType {
		t.Fatalf("expected anchor on http, got %q", name)
	}

	if !s.RemoveType(httpType) {
		t.Fatalf("expected unreferenced type removal to succeed")
	}
	f := s.Frame()
	if name, _ := frameAnchorName(f); name != sshType {
		t.Fatalf("expected anchor clamped onto ssh, got %q", name)
	}
	if f.Row != 0 || f.Offset != 0 {
		t.Fatalf("expected selection reset, got row %d offset %d", f.Row, f.Offset)
	}
}

func frameAnchorName(f Frame) (string, bool) {
	if f.Anchor == catalog.AllTypes || f.Anchor >= len(f.Types) {
		return "", false
	}
	return f.Types[f.Anchor], true
}

func TestAnchorFollowsTypeValueAcrossAdds(t *testing.T) {
	s := newTestSession()
	s.AddType("_m._tcp.local.")
	s.MoveAnchor(1)

	s.AddType("_a._tcp.local.")
	f := s.Frame()
	if f.Anchor != 1 {
		t.Fatalf("expected anchor index shifted to 1, got %d", f.Anchor)
	}
	if f.Types[f.Anchor] != "_m._tcp.local." {
		t.Fatalf("expected anchor to keep its type, got %q", f.Types[f.Anchor])
	}
}

func TestAnchorNarrowsProjection(t *testing.T) {
	s := newTestSession()
	s.UpsertEntry(serviceEntry(0, httpType))
	s.UpsertEntry(serviceEntry(1, sshType))

	s.MoveAnchor(1)
	f := s.Frame()
	if len(f.Rows) != 1 || f.Rows[0].Type != httpType {
		t.Fatalf("expected only http entries, got %d rows", len(f.Rows))
	}

	s.MoveAnchor(-1)
	f = s.Frame()
	if len(f.Rows) != 2 {
		t.Fatalf("expected all entries under all-types, got %d rows", len(f.Rows))
	}
}

func TestFilterLifecycle(t *testing.T) {
	s := newTestSession()
	s.UpsertEntry(serviceEntry(0, httpType)) // host0
	s.UpsertEntry(serviceEntry(1, httpType)) // host1

	s.BeginFilter()
	if got := s.Mode(); got != ModeFilterEdit {
		t.Fatalf("expected filter-edit mode, got %v", got)
	}
	s.SetFilterDraft("host1")
	f := s.Frame()
	if len(f.Rows) != 1 || f.Rows[0].Host != "host1.local." {
		t.Fatalf("expected draft to narrow live, got %d rows", len(f.Rows))
	}

	if got := s.CommitFilter(); got != "host1" {
		t.Fatalf("expected committed text, got %q", got)
	}
	f = s.Frame()
	if f.Mode != ModeNormal || f.Filter != "host1" {
		t.Fatalf("expected committed filter in normal mode, got %v %q", f.Mode, f.Filter)
	}
	if f.Row != 0 {
		t.Fatalf("expected selection reset on commit, got %d", f.Row)
	}

	// Re-entering clears the buffer, so the full list shows again until a
	// keystroke narrows it.
	s.BeginFilter()
	f = s.Frame()
	if len(f.Rows) != 2 {
		t.Fatalf("expected full list with an empty draft, got %d rows", len(f.Rows))
	}

	s.CancelFilter()
	f = s.Frame()
	if f.Mode != ModeNormal || f.Filter != "" || len(f.Rows) != 2 {
		t.Fatalf("expected cancel to drop the committed query, got %v %q %d rows", f.Mode, f.Filter, len(f.Rows))
	}
}

func TestSnapToBestMatchPrefersNameOverIncidentalHit(t *testing.T) {
	s := newTestSession()
	ippType := "_ipp._tcp.local."
	den := catalog.Entry{FullName: "den-printer._ipp._tcp.local.", Type: ippType, Host: "den.local.", Port: 100, Alive: true}
	hall := catalog.Entry{FullName: "printer._ipp._tcp.local.", Type: ippType, Host: "hall.local.", Port: 200, Alive: true}
	s.UpsertEntry(den)
	s.UpsertEntry(hall)
	s.SetSort(view.Order{Field: view.ByPort})

	s.BeginFilter()
	s.SetFilterDraft("printer")
	f := s.Frame()
	if len(f.Rows) != 2 || f.Rows[0].FullName != den.FullName {
		t.Fatalf("expected both printers sorted by port, got %v", f.Rows)
	}

	if !s.SnapToBestMatch() {
		t.Fatalf("expected snap to move the selection")
	}
	f = s.Frame()
	if f.Mode != ModeFilterEdit {
		t.Fatalf("expected edit mode preserved, got %v", f.Mode)
	}
	if f.Rows[f.Row].FullName != hall.FullName {
		t.Fatalf("expected the name-prefix match selected, got %s", f.Rows[f.Row].FullName)
	}
}

func TestUnchangedUpsertDoesNotWakeRenderLoop(t *testing.T) {
	s := newTestSession()
	e := serviceEntry(0, httpType)
	s.UpsertEntry(e)
	s.Frame()
	drainNotes(s)
	scans := s.Frame().Metrics.FilterScans

	s.UpsertEntry(e.Clone())
	select {
	case note := <-s.Notifier().C():
		t.Fatalf("expected no notification for an unchanged upsert, got %v", note)
	default:
	}
	if got := s.Frame().Metrics.FilterScans; got != scans {
		t.Fatalf("expected no filter rescan, got %d scans", got)
	}
}

func TestCycleSortWrapsAndResetsSelection(t *testing.T) {
	s := newTestSession()
	for i := 0; i < 3; i++ {
		s.UpsertEntry(serviceEntry(i, httpType))
	}
	s.MoveSelection(2)

	start := s.Sort()
	order := s.CycleSort(1)
	if order.Field == start.Field {
		t.Fatalf("expected field to advance")
	}
	if f := s.Frame(); f.Row != 0 {
		t.Fatalf("expected selection reset on sort change, got %d", f.Row)
	}
	for i := 0; i < 5; i++ {
		order = s.CycleSort(1)
	}
	if order.Field != start.Field {
		t.Fatalf("expected six steps to wrap to %v, got %v", start.Field, order.Field)
	}
}

func TestSortOrderAppliesToFrame(t *testing.T) {
	s := newTestSession()
	s.UpsertEntry(serviceEntry(2, httpType))
	s.UpsertEntry(serviceEntry(0, httpType))
	s.UpsertEntry(serviceEntry(1, httpType))

	f := s.Frame()
	for i, want := range []string{"host0.local.", "host1.local.", "host2.local."} {
		if f.Rows[i].Host != want {
			t.Fatalf("expected %s at row %d, got %s", want, i, f.Rows[i].Host)
		}
	}

	s.SetSort(view.Order{Field: view.ByHost, Desc: true})
	f = s.Frame()
	if f.Rows[0].Host != "host2.local." {
		t.Fatalf("expected descending host order, got %s first", f.Rows[0].Host)
	}
}

func TestFrameIsDeepCopy(t *testing.T) {
	s := newTestSession()
	e := serviceEntry(0, httpType)
	e.Text = []string{"path=/"}
	s.UpsertEntry(e)

	f := s.Frame()
	f.Rows[0].Addrs[0] = "mutated"
	f.Rows[0].Text[0] = "mutated"
	f.Types[0] = "mutated"
	f.Metrics.Discovery["injected"] = 1

	g := s.Frame()
	if g.Rows[0].Addrs[0] != "10.0.0.1" || g.Rows[0].Text[0] != "path=/" {
		t.Fatalf("expected entry copies, got %v %v", g.Rows[0].Addrs, g.Rows[0].Text)
	}
	if g.Types[0] != httpType {
		t.Fatalf("expected type list copy, got %v", g.Types)
	}
	if len(g.Metrics.Discovery) != 0 {
		t.Fatalf("expected discovery map copy, got %v", g.Metrics.Discovery)
	}
}

func TestSetMetricsCopiesCounters(t *testing.T) {
	s := newTestSession()
	counters := map[string]int{"entries_resolved": 3}
	s.SetMetrics(counters)
	counters["entries_resolved"] = 99

	f := s.Frame()
	if f.Metrics.Discovery["entries_resolved"] != 3 {
		t.Fatalf("expected snapshot isolated from caller map, got %d", f.Metrics.Discovery["entries_resolved"])
	}
}

func TestNoticeLifecycle(t *testing.T) {
	s := newTestSession()
	s.SetNotice("clipboard copy failed: no display")
	if f := s.Frame(); f.Notice == "" {
		t.Fatalf("expected notice recorded")
	}
	s.ClearNotice()
	if f := s.Frame(); f.Notice != "" {
		t.Fatalf("expected notice cleared, got %q", f.Notice)
	}
}

func TestSelectedEntryMatchesFrame(t *testing.T) {
	s := newTestSession()
	if _, ok := s.SelectedEntry(); ok {
		t.Fatalf("expected no selection on empty session")
	}
	for i := 0; i < 3; i++ {
		s.UpsertEntry(serviceEntry(i, httpType))
	}
	s.MoveSelection(1)

	e, ok := s.SelectedEntry()
	if !ok {
		t.Fatalf("expected a selected entry")
	}
	f := s.Frame()
	if e.FullName != f.Rows[f.Row].FullName {
		t.Fatalf("expected %s, got %s", f.Rows[f.Row].FullName, e.FullName)
	}
}
