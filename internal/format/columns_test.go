package format

import "testing"

func TestAlignRowsPadsColumns(t *testing.T) {
	rows := [][]string{
		{"a", "1"},
		{"longer", "22"},
	}
	got := AlignRows(rows, []Align{AlignLeft, AlignRight})
	want := []string{
		"a        1",
		"longer  22",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestAlignRowsHandlesRaggedRows(t *testing.T) {
	rows := [][]string{
		{"header"},
		{"k", "v"},
	}
	got := AlignRows(rows, nil)
	if got[0] != "header" {
		t.Errorf("expected single-cell row untouched, got %q", got[0])
	}
	if got[1] != "k       v" {
		t.Errorf("expected padded row, got %q", got[1])
	}
}

func TestAlignRowsEmpty(t *testing.T) {
	if got := AlignRows(nil, nil); got != nil {
		t.Errorf("expected nil for no rows, got %v", got)
	}
}
