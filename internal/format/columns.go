package format

import "strings"

// Align controls how AlignRows pads a column.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// AlignRows pads every cell to its column's widest entry and joins cells
// with a two-space gutter. Rows may be ragged; missing alignments default
// to left, and the last cell of a row is never right-padded.
func AlignRows(rows [][]string, alignments []Align) []string {
	if len(rows) == 0 {
		return nil
	}
	var widths []int
	for _, row := range rows {
		for c, cell := range row {
			w := len([]rune(cell))
			if c >= len(widths) {
				widths = append(widths, w)
			} else if w > widths[c] {
				widths[c] = w
			}
		}
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c, cell := range row {
			if c > 0 {
				b.WriteString("  ")
			}
			pad := widths[c] - len([]rune(cell))
			if pad < 0 {
				pad = 0
			}
			if c < len(alignments) && alignments[c] == AlignRight {
				b.WriteString(strings.Repeat(" ", pad))
				b.WriteString(cell)
				continue
			}
			b.WriteString(cell)
			if c < len(row)-1 {
				b.WriteString(strings.Repeat(" ", pad))
			}
		}
		out[i] = b.String()
	}
	return out
}
