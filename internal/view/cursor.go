package view

// nearEndRows is how close to the last row a selection counts as "at the
// end" when a prune shrinks the list: the last row and the one above it.
const nearEndRows = 2

// Cursor tracks the selection and scroll offset for one scrollable pane.
// Invariants, restored by Clamp after every mutation: with n rows, Row sits
// in [0, n-1] (0 when empty), Offset <= Row, and when Visible is known,
// Row < Offset+Visible and the final window is kept full.
type Cursor struct {
	Row     int
	Offset  int
	Visible int
}

// Clamp repairs the invariants against a projection of n rows.
func (c *Cursor) Clamp(n int) {
	if n <= 0 {
		c.Row = 0
		c.Offset = 0
		return
	}
	if c.Row < 0 {
		c.Row = 0
	}
	if c.Row > n-1 {
		c.Row = n - 1
	}
	if c.Visible <= 0 {
		c.Offset = 0
		return
	}
	maxOffset := n - c.Visible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if c.Offset > maxOffset {
		c.Offset = maxOffset
	}
	if c.Offset < 0 {
		c.Offset = 0
	}
	if c.Row < c.Offset {
		c.Offset = c.Row
	}
	if c.Row >= c.Offset+c.Visible {
		c.Offset = c.Row - c.Visible + 1
	}
}

// MoveBy shifts the selection by delta rows and reports whether it moved.
func (c *Cursor) MoveBy(delta, n int) bool {
	if n <= 0 {
		c.Row = 0
		c.Offset = 0
		return false
	}
	old := c.Row
	c.Row += delta
	c.Clamp(n)
	return c.Row != old
}

// Page moves by one visible window with a single row of overlap, at least
// one row. dir is -1 for up, 1 for down.
func (c *Cursor) Page(dir, n int) bool {
	step := c.Visible - 1
	if step < 1 {
		step = 1
	}
	return c.MoveBy(dir*step, n)
}

// Home moves the selection to the first row.
func (c *Cursor) Home(n int) bool {
	return c.MoveBy(-c.Row, n)
}

// End moves the selection to the last row.
func (c *Cursor) End(n int) bool {
	return c.MoveBy(n-1-c.Row, n)
}

// Reset forgets position and scroll, for when the filter dimension changes
// and row identity with it.
func (c *Cursor) Reset() {
	c.Row = 0
	c.Offset = 0
}

// AfterPrune re-derives the selection after a bulk removal shrank the
// projection from prevLen rows to n. A selection within the last
// nearEndRows rows stays pinned to the new last row; anything else keeps
// its numeric position, clamped.
func (c *Cursor) AfterPrune(prevRow, prevLen, n int) {
	if n <= 0 {
		c.Row = 0
		c.Offset = 0
		return
	}
	switch {
	case prevLen > 0 && prevRow >= prevLen-nearEndRows:
		c.Row = n - 1
	case prevRow < n:
		c.Row = prevRow
	default:
		c.Row = n - 1
	}
	c.Clamp(n)
}
