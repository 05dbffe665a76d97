package vtkernel

// DamageTracker records what changed since the last time a host drained
// it: which rows were touched, whether the cursor moved, and how many
// lines scrolled. It complements the per-cell Cell.Dirty field (which
// Buffer already tracks for fine-grained per-cell bookkeeping) with the
// row-granular view a renderer actually wants: "redraw these whole rows",
// not "redraw these scattered cells".
type DamageTracker struct {
	rows         []bool
	cursorMoved  bool
	scrolled     int
	rowCount     int
}

// NewDamageTracker creates a tracker sized for rows rows, with nothing
// marked dirty.
func NewDamageTracker(rows int) *DamageTracker {
	return &DamageTracker{rows: make([]bool, rows), rowCount: rows}
}

// Resize adjusts the tracker to a new row count, discarding any damage
// state (a resize already forces a full redraw of the new grid).
func (d *DamageTracker) Resize(rows int) {
	d.rows = make([]bool, rows)
	d.rowCount = rows
	d.cursorMoved = false
	d.scrolled = 0
}

// MarkRow marks one row dirty. Out-of-range rows are ignored.
func (d *DamageTracker) MarkRow(row int) {
	if row < 0 || row >= d.rowCount {
		return
	}
	d.rows[row] = true
}

// MarkAll marks every row dirty, used after operations whose effect is not
// worth tracking precisely (DECALN, full erase, reset).
func (d *DamageTracker) MarkAll() {
	for i := range d.rows {
		d.rows[i] = true
	}
}

// MarkCursorMoved records that the cursor position changed since the last
// TakeDamage.
func (d *DamageTracker) MarkCursorMoved() {
	d.cursorMoved = true
}

// MarkScrolled accumulates a scroll of n lines (positive: content moved up,
// negative: content moved down) since the last TakeDamage.
func (d *DamageTracker) MarkScrolled(n int) {
	d.scrolled += n
}

// Damage is a point-in-time snapshot of accumulated damage, returned by
// TakeDamage. Rows is a snapshot of the dirty-row bitmap, safe to retain
// after the call.
type Damage struct {
	Rows        []bool
	CursorMoved bool
	Scrolled    int
}

// AnyRows reports whether any row in the damage set is dirty.
func (d Damage) AnyRows() bool {
	for _, dirty := range d.Rows {
		if dirty {
			return true
		}
	}
	return false
}

// DirtyRowIndices returns the indices of dirty rows in ascending order.
func (d Damage) DirtyRowIndices() []int {
	var idx []int
	for i, dirty := range d.Rows {
		if dirty {
			idx = append(idx, i)
		}
	}
	return idx
}

// TakeDamage atomically reads and clears the accumulated damage. Per the
// "DamageOverflow is impossible by construction" rule, this never needs to
// report an error: the row bitmap and scroll counter have no overflow
// state, they simply saturate at "everything is dirty" in the worst case.
func (d *DamageTracker) TakeDamage() Damage {
	rows := make([]bool, len(d.rows))
	copy(rows, d.rows)
	dmg := Damage{
		Rows:        rows,
		CursorMoved: d.cursorMoved,
		Scrolled:    d.scrolled,
	}
	for i := range d.rows {
		d.rows[i] = false
	}
	d.cursorMoved = false
	d.scrolled = 0
	return dmg
}
