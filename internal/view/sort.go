// Package view derives what the dashboard shows from the catalog: a cached
// filtered and sorted projection, the sort order, and per-pane cursors. All
// types here are plain values or single-owner caches; the session provides
// the locking.
package view

import (
	"net/netip"
	"strings"

	"github.com/ferrovax/zeroscope/internal/catalog"
)

// Field selects the attribute the projection is ordered by.
type Field int

const (
	ByName Field = iota
	ByHost
	ByType
	ByAddress
	ByPort
	ByChanged

	fieldCount = int(ByChanged) + 1
)

var fieldLabels = [...]string{"name", "host", "type", "address", "port", "changed"}

func (f Field) String() string {
	if f < 0 || int(f) >= fieldCount {
		return fieldLabels[ByName]
	}
	return fieldLabels[f]
}

// ParseField maps a label back to its Field, defaulting to ByName for
// anything unrecognized.
func ParseField(label string) Field {
	for i, l := range fieldLabels {
		if strings.EqualFold(label, l) {
			return Field(i)
		}
	}
	return ByName
}

// Order is the active sort: a field plus a direction.
type Order struct {
	Field Field
	Desc  bool
}

// Next advances to the following sort field, wrapping past the last.
func (o Order) Next() Order {
	o.Field = Field((int(o.Field) + 1) % fieldCount)
	return o
}

// Prev retreats to the preceding sort field, wrapping past the first.
func (o Order) Prev() Order {
	o.Field = Field((int(o.Field) + fieldCount - 1) % fieldCount)
	return o
}

// Flip toggles the direction.
func (o Order) Flip() Order {
	o.Desc = !o.Desc
	return o
}

func (o Order) String() string {
	if o.Desc {
		return o.Field.String() + " desc"
	}
	return o.Field.String() + " asc"
}

// compare returns the total order of a and b under the field. Ties fall
// through to the identity key so equal values order deterministically.
func compare(a, b catalog.Entry, f Field) int {
	var c int
	switch f {
	case ByHost:
		c = strings.Compare(a.Host, b.Host)
	case ByType:
		c = strings.Compare(a.Type, b.Type)
	case ByAddress:
		c = compareAddr(a.PrimaryAddr(), b.PrimaryAddr())
	case ByPort:
		c = compareInt(int(a.Port), int(b.Port))
	case ByChanged:
		c = compareInt64(a.ChangedAt, b.ChangedAt)
	default:
		return strings.Compare(a.FullName, b.FullName)
	}
	if c == 0 {
		c = strings.Compare(a.FullName, b.FullName)
	}
	return c
}

// compareAddr orders addresses numerically when both parse into the same
// family. Mixed families and unparsable values fall back to plain string
// comparison, keeping the order total.
func compareAddr(a, b string) int {
	pa, errA := netip.ParseAddr(a)
	pb, errB := netip.ParseAddr(b)
	if errA == nil && errB == nil && pa.Is4() == pb.Is4() {
		return pa.Compare(pb)
	}
	return strings.Compare(a, b)
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
