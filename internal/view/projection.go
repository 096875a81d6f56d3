package view

import (
	"sort"
	"strconv"
	"strings"

	"github.com/ferrovax/zeroscope/internal/catalog"
)

// Staleness tracks how much of a projection must be recomputed. Filtering
// implies re-sorting, so a filtered-but-unsorted projection is the only
// intermediate state.
type Staleness int

const (
	Clean Staleness = iota
	SortStale
	FilterStale
)

func (s Staleness) String() string {
	switch s {
	case Clean:
		return "clean"
	case SortStale:
		return "sort-stale"
	default:
		return "filter-stale"
	}
}

// Source is the entry collection a projection derives from.
type Source interface {
	Len() int
	At(i int) catalog.Entry
}

// Query is the filter and order a projection applies.
type Query struct {
	Type string // fully qualified type name; empty selects all
	Text string // case-insensitive substring
	Sort Order
}

// Matches reports whether the entry passes the type and free-text filters.
func (q Query) Matches(e catalog.Entry) bool {
	if q.Type != "" && e.Type != q.Type {
		return false
	}
	text := strings.TrimSpace(q.Text)
	if text == "" {
		return true
	}
	return strings.Contains(strings.ToLower(searchText(e)), strings.ToLower(text))
}

// searchText concatenates every displayed field, so "8080" matches a port
// and "kitchen" matches a host.
func searchText(e catalog.Entry) string {
	parts := make([]string, 0, 5+len(e.Addrs)+len(e.Text))
	parts = append(parts, e.FullName, e.Type, e.Subtype, e.Host, strconv.Itoa(int(e.Port)))
	parts = append(parts, e.Addrs...)
	parts = append(parts, e.Text...)
	return strings.Join(parts, " ")
}

// Projection caches the filtered, sorted row set as indices into a Source.
// Rows is the only accessor and recomputes exactly the stages marked stale;
// producers call Invalidate instead of rebuilding eagerly so bursts of
// mutations cost one rebuild.
type Projection struct {
	rows  []int
	state Staleness

	filterScans int
	sortPasses  int
}

// NewProjection starts fully stale so the first Rows call builds the view.
func NewProjection() *Projection {
	return &Projection{state: FilterStale}
}

// Invalidate escalates the staleness. It never downgrades: marking a
// filter-stale projection sort-stale leaves it filter-stale.
func (p *Projection) Invalidate(s Staleness) {
	if s > p.state {
		p.state = s
	}
}

// State returns the current staleness.
func (p *Projection) State() Staleness {
	return p.state
}

// Rows returns row indices into src, rebuilding whatever is stale. A clean
// projection returns the cached slice untouched. Callers must not mutate
// the result.
func (p *Projection) Rows(src Source, q Query) []int {
	if p.state == FilterStale {
		p.rows = p.rows[:0]
		for i := 0; i < src.Len(); i++ {
			if q.Matches(src.At(i)) {
				p.rows = append(p.rows, i)
			}
		}
		p.filterScans++
		p.state = SortStale
	}
	if p.state == SortStale {
		rows := p.rows
		sort.SliceStable(rows, func(a, b int) bool {
			c := compare(src.At(rows[a]), src.At(rows[b]), q.Sort.Field)
			if q.Sort.Desc {
				return c > 0
			}
			return c < 0
		})
		p.sortPasses++
		p.state = Clean
	}
	return p.rows
}

// FilterScans returns how many full filter passes have run.
func (p *Projection) FilterScans() int {
	return p.filterScans
}

// SortPasses returns how many sort passes have run.
func (p *Projection) SortPasses() int {
	return p.sortPasses
}
