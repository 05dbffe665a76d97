package vtkernel

// Buffer stores a 2D grid of cells and tracks line wrapping state.
// Supports optional scrollback storage for lines scrolled off the top.
// Every live cell's style-key is interned through styleCache; every method
// that overwrites or discards a cell releases its outgoing style-key first.
type Buffer struct {
	rows       int
	cols       int
	cells      [][]Cell
	wrapped    []bool // tracks if each line was wrapped (vs explicit newline)
	tabStop    []bool
	scrollback ScrollbackProvider
	hasDirty   bool
	styleCache *StyleCache
}

// NewBuffer creates a buffer with the given dimensions and no scrollback.
func NewBuffer(rows, cols int) *Buffer {
	return NewBufferWithStorage(rows, cols, NoopScrollback{})
}

// NewBufferWithStorage creates a buffer with custom scrollback storage.
// Tab stops are initialized every 8 columns. The buffer gets its own
// StyleCache; callers that want a buffer's interning to share refcounts
// with a Terminal's attribute template must use NewBufferWithStyleCache.
func NewBufferWithStorage(rows, cols int, storage ScrollbackProvider) *Buffer {
	return NewBufferWithStyleCache(rows, cols, storage, NewStyleCache())
}

// NewBufferWithStyleCache creates a buffer backed by an existing StyleCache,
// so cells written into this buffer share interning and refcounts with
// whatever else (another buffer, a Terminal's template) uses the same cache.
func NewBufferWithStyleCache(rows, cols int, storage ScrollbackProvider, cache *StyleCache) *Buffer {
	b := &Buffer{
		rows:       rows,
		cols:       cols,
		cells:      make([][]Cell, rows),
		wrapped:    make([]bool, rows),
		tabStop:    make([]bool, cols),
		scrollback: storage,
		styleCache: cache,
	}

	for i := range b.cells {
		b.cells[i] = make([]Cell, cols)
		for j := range b.cells[i] {
			b.cells[i][j] = b.blankCell()
		}
	}

	// Set default tab stops every 8 columns
	for i := 0; i < cols; i += 8 {
		b.tabStop[i] = true
	}

	return b
}

// blankCell returns a cell holding a freshly interned default style.
func (b *Buffer) blankCell() Cell {
	c := NewCell()
	c.SetStyleKey(b.styleCache.Intern(defaultStyle))
	return c
}

// releaseCellStyle releases the style-key a cell currently holds, if any.
// Call this exactly once per cell before it is overwritten or discarded.
func (b *Buffer) releaseCellStyle(c *Cell) {
	if key := c.StyleKey(); key != nil {
		b.styleCache.Release(*key)
	}
}

// releaseRow releases every cell's style-key in a full row, used when a row
// is discarded wholesale (scrolled off, trimmed, or overwritten in bulk).
func (b *Buffer) releaseRow(row []Cell) {
	for i := range row {
		b.releaseCellStyle(&row[i])
	}
}

// releaseRowRange releases style-keys for cells [left, right) of row.
func (b *Buffer) releaseRowRange(row, left, right int) {
	if left < 0 {
		left = 0
	}
	if right > len(b.cells[row]) {
		right = len(b.cells[row])
	}
	for col := left; col < right; col++ {
		b.releaseCellStyle(&b.cells[row][col])
	}
}

// Rows returns the buffer height in character rows.
func (b *Buffer) Rows() int {
	return b.rows
}

// Cols returns the buffer width in character columns.
func (b *Buffer) Cols() int {
	return b.cols
}

// Cell returns a pointer to the cell at (row, col).
// Returns nil if coordinates are out of bounds.
func (b *Buffer) Cell(row, col int) *Cell {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return nil
	}
	return &b.cells[row][col]
}

// SetCell replaces the cell at (row, col), interning its style and
// releasing the outgoing one, and marks it dirty.
// Does nothing if coordinates are out of bounds.
func (b *Buffer) SetCell(row, col int, cell Cell) {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return
	}
	b.releaseCellStyle(&b.cells[row][col])
	cell.SetStyleKey(b.styleCache.Intern(cell.Style()))
	cell.MarkDirty()
	b.cells[row][col] = cell
	b.hasDirty = true
}

// PaintCell writes a character and style directly into (row, col), releasing
// the outgoing style-key and interning the new one. wide marks the cell as
// the first half of a 2-column character.
func (b *Buffer) PaintCell(row, col int, char rune, style Style, wide bool, hyperlink *Hyperlink) {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return
	}
	c := &b.cells[row][col]
	b.releaseCellStyle(c)
	c.Char = char
	c.SetStyleKey(b.styleCache.Intern(style))
	c.Hyperlink = hyperlink
	c.Wide = wide
	c.WideSpacer = false
	c.MarkDirty()
	b.hasDirty = true
}

// PaintSpacer marks (row, col) as the second half of a wide character,
// carrying the same fg/bg as the character it follows.
func (b *Buffer) PaintSpacer(row, col int, style Style) {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return
	}
	c := &b.cells[row][col]
	b.releaseCellStyle(c)
	c.Char = ' '
	c.SetStyleKey(b.styleCache.Intern(style))
	c.Hyperlink = nil
	c.Wide = false
	c.WideSpacer = true
	c.MarkDirty()
	b.hasDirty = true
}

// ResetCell releases and restores a single cell to default blank state,
// marking it dirty.
func (b *Buffer) ResetCell(row, col int) {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return
	}
	b.releaseCellStyle(&b.cells[row][col])
	b.cells[row][col] = b.blankCell()
	b.cells[row][col].MarkDirty()
	b.hasDirty = true
}

// MarkDirty marks the cell at (row, col) as modified.
// Does nothing if coordinates are out of bounds.
func (b *Buffer) MarkDirty(row, col int) {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return
	}
	b.cells[row][col].MarkDirty()
	b.hasDirty = true
}

// HasDirty returns true if any cell has been modified since the last ClearAllDirty call.
func (b *Buffer) HasDirty() bool {
	return b.hasDirty
}

// DirtyCells returns positions of all modified cells.
func (b *Buffer) DirtyCells() []Position {
	var positions []Position
	for row := range b.cells {
		for col := range b.cells[row] {
			if b.cells[row][col].IsDirty() {
				positions = append(positions, Position{Row: row, Col: col})
			}
		}
	}
	return positions
}

// ClearAllDirty resets the dirty state of all cells.
func (b *Buffer) ClearAllDirty() {
	for row := range b.cells {
		for col := range b.cells[row] {
			b.cells[row][col].ClearDirty()
		}
	}
	b.hasDirty = false
}

// ClearRow resets all cells in the row to default state and marks them dirty.
func (b *Buffer) ClearRow(row int) {
	if row < 0 || row >= b.rows {
		return
	}
	for col := range b.cells[row] {
		b.ResetCell(row, col)
	}
	b.hasDirty = true
}

// ClearRowRange resets cells in the row from startCol (inclusive) to endCol (exclusive).
func (b *Buffer) ClearRowRange(row, startCol, endCol int) {
	if row < 0 || row >= b.rows {
		return
	}
	if startCol < 0 {
		startCol = 0
	}
	if endCol > b.cols {
		endCol = b.cols
	}
	for col := startCol; col < endCol; col++ {
		b.ResetCell(row, col)
	}
	b.hasDirty = true
}

// ClearAll resets all cells in the buffer to default state.
func (b *Buffer) ClearAll() {
	for row := range b.cells {
		b.ClearRow(row)
	}
}

// ScrollUp shifts lines up by n positions within [top, bottom), constrained
// to columns [leftMargin, rightMargin). Pass 0, Cols() for a full-width
// scroll, which takes a fast whole-row path and (when top==0) archives
// scrolled-off lines to scrollback. A margin-constrained scroll never
// touches scrollback, matching DECSLRM semantics: it operates on a
// sub-region of the screen, not its history.
func (b *Buffer) ScrollUp(top, bottom, n int, leftMargin, rightMargin int) {
	if n <= 0 || top >= bottom {
		return
	}
	if top < 0 {
		top = 0
	}
	if bottom > b.rows {
		bottom = b.rows
	}
	if n > bottom-top {
		n = bottom - top
	}

	if leftMargin <= 0 && rightMargin >= b.cols {
		b.scrollUpFullWidth(top, bottom, n)
		return
	}
	b.scrollUpMargin(top, bottom, n, leftMargin, rightMargin)
}

func (b *Buffer) scrollUpFullWidth(top, bottom, n int) {
	if b.scrollback != nil && b.scrollback.MaxLines() > 0 && top == 0 {
		for i := 0; i < n; i++ {
			b.scrollback.Push(b.cells[i])
		}
	}

	// Release victims before moving anything: the topmost n rows never
	// resurface as a read source below, and the bottom n rows are about to
	// be replaced with fresh blanks. Guard against double-releasing when
	// n spans the whole region and the two ranges coincide.
	for row := top; row < top+n && row < bottom; row++ {
		b.releaseRow(b.cells[row])
	}
	for row := bottom - n; row < bottom; row++ {
		if row >= top+n {
			b.releaseRow(b.cells[row])
		}
	}

	for row := top; row < bottom-n; row++ {
		b.cells[row] = b.cells[row+n]
		b.wrapped[row] = b.wrapped[row+n]
		for col := range b.cells[row] {
			b.cells[row][col].MarkDirty()
		}
	}

	for row := bottom - n; row < bottom; row++ {
		b.cells[row] = make([]Cell, b.cols)
		b.wrapped[row] = false
		for col := range b.cells[row] {
			b.cells[row][col] = b.blankCell()
			b.cells[row][col].MarkDirty()
		}
	}
	b.hasDirty = true
}

func (b *Buffer) scrollUpMargin(top, bottom, n, left, right int) {
	if left < 0 {
		left = 0
	}
	if right > b.cols {
		right = b.cols
	}
	if left >= right {
		return
	}

	for row := top; row < top+n && row < bottom; row++ {
		b.releaseRowRange(row, left, right)
	}
	for row := bottom - n; row < bottom; row++ {
		if row >= top+n {
			b.releaseRowRange(row, left, right)
		}
	}

	for row := top; row < bottom-n; row++ {
		copy(b.cells[row][left:right], b.cells[row+n][left:right])
		for col := left; col < right; col++ {
			b.cells[row][col].MarkDirty()
		}
	}
	for row := bottom - n; row < bottom; row++ {
		for col := left; col < right; col++ {
			b.cells[row][col] = b.blankCell()
			b.cells[row][col].MarkDirty()
		}
	}
	b.hasDirty = true
}

// ScrollDown shifts lines down by n positions within [top, bottom),
// constrained to columns [leftMargin, rightMargin). See ScrollUp for the
// full-width-vs-margin distinction.
func (b *Buffer) ScrollDown(top, bottom, n int, leftMargin, rightMargin int) {
	if n <= 0 || top >= bottom {
		return
	}
	if top < 0 {
		top = 0
	}
	if bottom > b.rows {
		bottom = b.rows
	}
	if n > bottom-top {
		n = bottom - top
	}

	if leftMargin <= 0 && rightMargin >= b.cols {
		b.scrollDownFullWidth(top, bottom, n)
		return
	}
	b.scrollDownMargin(top, bottom, n, leftMargin, rightMargin)
}

func (b *Buffer) scrollDownFullWidth(top, bottom, n int) {
	for row := bottom - n; row < bottom; row++ {
		b.releaseRow(b.cells[row])
	}
	for row := top; row < top+n; row++ {
		if row < bottom-n {
			b.releaseRow(b.cells[row])
		}
	}

	for row := bottom - 1; row >= top+n; row-- {
		b.cells[row] = b.cells[row-n]
		b.wrapped[row] = b.wrapped[row-n]
		for col := range b.cells[row] {
			b.cells[row][col].MarkDirty()
		}
	}

	for row := top; row < top+n; row++ {
		b.cells[row] = make([]Cell, b.cols)
		b.wrapped[row] = false
		for col := range b.cells[row] {
			b.cells[row][col] = b.blankCell()
			b.cells[row][col].MarkDirty()
		}
	}
	b.hasDirty = true
}

func (b *Buffer) scrollDownMargin(top, bottom, n, left, right int) {
	if left < 0 {
		left = 0
	}
	if right > b.cols {
		right = b.cols
	}
	if left >= right {
		return
	}

	for row := bottom - n; row < bottom; row++ {
		b.releaseRowRange(row, left, right)
	}
	for row := top; row < top+n; row++ {
		if row < bottom-n {
			b.releaseRowRange(row, left, right)
		}
	}

	for row := bottom - 1; row >= top+n; row-- {
		copy(b.cells[row][left:right], b.cells[row-n][left:right])
		for col := left; col < right; col++ {
			b.cells[row][col].MarkDirty()
		}
	}
	for row := top; row < top+n; row++ {
		for col := left; col < right; col++ {
			b.cells[row][col] = b.blankCell()
			b.cells[row][col].MarkDirty()
		}
	}
	b.hasDirty = true
}

// InsertLines inserts n blank lines at row, shifting existing lines down.
// Equivalent to ScrollDown(row, bottom, n, leftMargin, rightMargin).
func (b *Buffer) InsertLines(row, n, bottom, leftMargin, rightMargin int) {
	if row < 0 || row >= bottom || n <= 0 {
		return
	}
	b.ScrollDown(row, bottom, n, leftMargin, rightMargin)
}

// DeleteLines removes n lines at row, shifting remaining lines up.
// Equivalent to ScrollUp(row, bottom, n, leftMargin, rightMargin).
func (b *Buffer) DeleteLines(row, n, bottom, leftMargin, rightMargin int) {
	if row < 0 || row >= bottom || n <= 0 {
		return
	}
	b.ScrollUp(row, bottom, n, leftMargin, rightMargin)
}

// InsertBlanks inserts n blank cells at (row, col), shifting characters
// right within [col, rightMargin). Characters pushed past rightMargin are
// discarded. Pass Cols() for rightMargin for a full-width insert.
func (b *Buffer) InsertBlanks(row, col, n, rightMargin int) {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols || n <= 0 {
		return
	}
	if rightMargin > b.cols {
		rightMargin = b.cols
	}
	if col >= rightMargin {
		return
	}
	if n > rightMargin-col {
		n = rightMargin - col
	}

	// Columns [rightMargin-n, rightMargin) are pushed off the margin edge
	// and never read back in by the shift below: release them first.
	b.releaseRowRange(row, rightMargin-n, rightMargin)

	for c := rightMargin - 1; c >= col+n; c-- {
		b.cells[row][c] = b.cells[row][c-n]
		b.cells[row][c].MarkDirty()
	}

	for c := col; c < col+n; c++ {
		b.cells[row][c] = b.blankCell()
		b.cells[row][c].MarkDirty()
	}
	b.hasDirty = true
}

// DeleteChars removes n characters at (row, col), shifting remaining
// characters left within [col, rightMargin). Pass Cols() for rightMargin
// for a full-width delete.
func (b *Buffer) DeleteChars(row, col, n, rightMargin int) {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols || n <= 0 {
		return
	}
	if rightMargin > b.cols {
		rightMargin = b.cols
	}
	if col >= rightMargin {
		return
	}
	if n > rightMargin-col {
		n = rightMargin - col
	}

	// Columns [col, col+n) are overwritten by the shift without ever being
	// read back in: they are the victims, release them first.
	b.releaseRowRange(row, col, col+n)

	for c := col; c < rightMargin-n; c++ {
		b.cells[row][c] = b.cells[row][c+n]
		b.cells[row][c].MarkDirty()
	}

	for c := rightMargin - n; c < rightMargin; c++ {
		b.cells[row][c] = b.blankCell()
		b.cells[row][c].MarkDirty()
	}
	b.hasDirty = true
}

// Resize changes buffer dimensions, preserving existing cells where possible.
// Content is kept at the top-left corner. When shrinking, bottom/right content is lost.
// When growing, new empty cells are added at the bottom/right.
// Tab stops are extended if columns increase.
func (b *Buffer) Resize(rows, cols int) {
	if rows <= 0 || cols <= 0 {
		return
	}

	// Release cells that fall outside the new bounds before they are
	// dropped: rows beyond the new row count, and (for rows kept) columns
	// beyond the new column count.
	for i := rows; i < b.rows; i++ {
		b.releaseRow(b.cells[i])
	}
	for i := 0; i < b.rows && i < rows; i++ {
		b.releaseRowRange(i, cols, b.cols)
	}

	newCells := make([][]Cell, rows)
	for i := range newCells {
		newCells[i] = make([]Cell, cols)
		for j := range newCells[i] {
			if i < b.rows && j < b.cols {
				newCells[i][j] = b.cells[i][j]
			} else {
				newCells[i][j] = b.blankCell()
			}
			newCells[i][j].MarkDirty()
		}
	}

	// Resize wrapped tracking
	newWrapped := make([]bool, rows)
	copy(newWrapped, b.wrapped)

	b.cells = newCells
	b.wrapped = newWrapped
	b.rows = rows
	b.cols = cols
	b.hasDirty = true

	// Resize tab stops
	newTabStop := make([]bool, cols)
	copy(newTabStop, b.tabStop)
	for i := len(b.tabStop); i < cols; i += 8 {
		newTabStop[i] = true
	}
	b.tabStop = newTabStop
}

// ReflowResize changes buffer dimensions like Resize, but when the column
// count changes it rewraps content instead of truncating it: wrapped-line
// chains (rows joined by IsWrapped) are concatenated into logical lines and
// re-split at the new width, so a paragraph that wrapped across 3 rows at
// 80 columns continues to read correctly at 40 or 160 columns. Rows scrolled
// out of the visible grid by a shrinking reflow are pushed to scrollback
// when available, the same as a normal ScrollUp. When only the row count
// changes (cols unchanged), rows are trimmed or grown at the bottom; only
// when the cursor row would fall below the new height are the rows above
// it that no longer fit trimmed from the top into scrollback, so the
// cursor stays on the same line.
func (b *Buffer) ReflowResize(rows, cols int, cursorRow, cursorCol int) (newCursorRow, newCursorCol int) {
	if cols == b.cols {
		trim := b.resizeSameWidth(rows, cursorRow)
		return clampCoord(cursorRow-trim, rows-1), clampCoord(cursorCol, cols-1)
	}

	logical := b.collectLogicalLines()
	cursorLine, cursorOffset := b.locateCursorInLogicalLines(logical, cursorRow, cursorCol)

	// The logical lines above still hold the original interned style-keys;
	// rewrapping below only relocates cells (copy), so no release/intern
	// bookkeeping is needed for content that survives. Rows that don't
	// survive (trimmed by overflow) are released explicitly below.
	var rewrapped [][]Cell
	var wrappedFlag []bool
	newCursorLine, newCursorInLineCol := -1, 0

	for li, line := range logical {
		if len(line) == 0 {
			rewrapped = append(rewrapped, b.blankRow(cols))
			wrappedFlag = append(wrappedFlag, false)
			if li == cursorLine {
				newCursorLine = len(rewrapped) - 1
			}
			continue
		}
		for start := 0; start < len(line); start += cols {
			end := start + cols
			if end > len(line) {
				end = len(line)
			}
			row := make([]Cell, cols)
			copy(row, line[start:end])
			for j := len(row); j < cols; j++ {
				row[j] = b.blankCell()
			}
			wraps := end < len(line)
			rewrapped = append(rewrapped, row)
			wrappedFlag = append(wrappedFlag, wraps)

			if li == cursorLine && cursorOffset >= start && (cursorOffset < end || end == len(line)) {
				newCursorLine = len(rewrapped) - 1
				newCursorInLineCol = cursorOffset - start
			}
		}
	}

	overflow := len(rewrapped) - rows
	if overflow > 0 && b.scrollback != nil && b.scrollback.MaxLines() > 0 {
		for i := 0; i < overflow; i++ {
			b.scrollback.Push(rewrapped[i])
		}
	}
	if overflow > 0 {
		for i := 0; i < overflow; i++ {
			b.releaseRow(rewrapped[i])
		}
		rewrapped = rewrapped[overflow:]
		wrappedFlag = wrappedFlag[overflow:]
		newCursorLine -= overflow
	}

	for len(rewrapped) < rows {
		rewrapped = append(rewrapped, b.blankRow(cols))
		wrappedFlag = append(wrappedFlag, false)
	}

	for i := range rewrapped {
		for j := range rewrapped[i] {
			rewrapped[i][j].MarkDirty()
		}
	}

	b.cells = rewrapped
	b.wrapped = wrappedFlag
	b.rows = rows
	b.cols = cols
	b.hasDirty = true

	newTabStop := make([]bool, cols)
	for i := 0; i < cols; i += 8 {
		newTabStop[i] = true
	}
	b.tabStop = newTabStop

	if newCursorLine < 0 {
		newCursorLine = rows - 1
	}
	return clampCoord(newCursorLine, rows-1), clampCoord(newCursorInLineCol, cols-1)
}

// blankRow returns a freshly allocated row of n interned blank cells.
func (b *Buffer) blankRow(n int) []Cell {
	row := make([]Cell, n)
	for j := range row {
		row[j] = b.blankCell()
	}
	return row
}

// resizeSameWidth implements the column-count-unchanged half of
// ReflowResize: only the row count changes, never rewrapped. Shrinking
// drops rows from the bottom, except that rows above cursorRow which no
// longer fit are trimmed from the top (absorbed into scrollback); growing
// adds rows at the bottom. It returns the number of rows trimmed from the top.
func (b *Buffer) resizeSameWidth(rows, cursorRow int) int {
	if rows == b.rows {
		return 0
	}
	if rows < b.rows {
		trim := clampCoord(cursorRow-rows+1, b.rows-rows)
		if b.scrollback != nil && b.scrollback.MaxLines() > 0 {
			for i := 0; i < trim; i++ {
				b.scrollback.Push(b.cells[i])
			}
		}
		for i := 0; i < b.rows; i++ {
			if i < trim || i >= trim+rows {
				b.releaseRow(b.cells[i])
			}
		}
		b.cells = b.cells[trim : trim+rows]
		b.wrapped = b.wrapped[trim : trim+rows]
		b.rows = rows
		b.hasDirty = true
		return trim
	}
	b.GrowRows(rows - b.rows)
	return 0
}

// collectLogicalLines concatenates wrapped-line chains into logical lines:
// a run of rows where every row but the last has IsWrapped set becomes one
// []Cell of combined width.
func (b *Buffer) collectLogicalLines() [][]Cell {
	var logical [][]Cell
	var current []Cell
	for row := 0; row < b.rows; row++ {
		current = append(current, b.cells[row]...)
		if !b.wrapped[row] {
			logical = append(logical, current)
			current = nil
		}
	}
	if len(current) > 0 {
		logical = append(logical, current)
	}
	return logical
}

// locateCursorInLogicalLines maps a (row, col) in the pre-reflow grid to an
// index into the logical-line list produced by collectLogicalLines, plus
// an offset within that logical line.
func (b *Buffer) locateCursorInLogicalLines(logical [][]Cell, row, col int) (line, offset int) {
	consumedRows := 0
	for li, l := range logical {
		rowsInLine := (len(l) + b.cols - 1) / b.cols
		if rowsInLine == 0 {
			rowsInLine = 1
		}
		if row < consumedRows+rowsInLine {
			return li, (row-consumedRows)*b.cols + col
		}
		consumedRows += rowsInLine
	}
	if len(logical) == 0 {
		return 0, 0
	}
	return len(logical) - 1, len(logical[len(logical)-1])
}

func clampCoord(v, max int) int {
	if max < 0 {
		return 0
	}
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

// SetTabStop enables a tab stop at the specified column.
func (b *Buffer) SetTabStop(col int) {
	if col >= 0 && col < b.cols {
		b.tabStop[col] = true
	}
}

// ClearTabStop disables the tab stop at the specified column.
func (b *Buffer) ClearTabStop(col int) {
	if col >= 0 && col < b.cols {
		b.tabStop[col] = false
	}
}

// ClearAllTabStops disables all tab stops.
func (b *Buffer) ClearAllTabStops() {
	for i := range b.tabStop {
		b.tabStop[i] = false
	}
}

// NextTabStop returns the column index of the next enabled tab stop after col.
// Returns the last column if no tab stop is found.
func (b *Buffer) NextTabStop(col int) int {
	for c := col + 1; c < b.cols; c++ {
		if b.tabStop[c] {
			return c
		}
	}
	return b.cols - 1
}

// PrevTabStop returns the column index of the previous enabled tab stop before col.
// Returns 0 if no tab stop is found.
func (b *Buffer) PrevTabStop(col int) int {
	for c := col - 1; c >= 0; c-- {
		if b.tabStop[c] {
			return c
		}
	}
	return 0
}

// FillWithE fills all cells with 'E' (used by DECALN alignment test pattern).
func (b *Buffer) FillWithE() {
	for row := range b.cells {
		for col := range b.cells[row] {
			b.releaseCellStyle(&b.cells[row][col])
			b.cells[row][col] = b.blankCell()
			b.cells[row][col].Char = 'E'
			b.cells[row][col].MarkDirty()
		}
	}
	b.hasDirty = true
}

// ScrollbackLen returns the number of lines stored in scrollback.
func (b *Buffer) ScrollbackLen() int {
	if b.scrollback == nil {
		return 0
	}
	return b.scrollback.Len()
}

// ScrollbackLine returns a line from scrollback, where 0 is the oldest line.
// Returns nil if index is out of range or scrollback is disabled.
func (b *Buffer) ScrollbackLine(index int) []Cell {
	if b.scrollback == nil {
		return nil
	}
	return b.scrollback.Line(index)
}

// ClearScrollback removes all stored scrollback lines.
func (b *Buffer) ClearScrollback() {
	if b.scrollback != nil {
		b.scrollback.Clear()
	}
}

// SetMaxScrollback sets the maximum number of scrollback lines to retain.
func (b *Buffer) SetMaxScrollback(max int) {
	if b.scrollback != nil {
		b.scrollback.SetMaxLines(max)
	}
}

// MaxScrollback returns the current maximum scrollback capacity.
func (b *Buffer) MaxScrollback() int {
	if b.scrollback == nil {
		return 0
	}
	return b.scrollback.MaxLines()
}

// SetScrollbackProvider replaces the scrollback storage implementation.
func (b *Buffer) SetScrollbackProvider(storage ScrollbackProvider) {
	b.scrollback = storage
}

// ScrollbackProvider returns the current scrollback storage implementation.
func (b *Buffer) ScrollbackProvider() ScrollbackProvider {
	return b.scrollback
}

// LineContent returns the text content of a line, trimming trailing spaces.
// Wide character spacers are skipped. Returns empty string if the line is empty or out of bounds.
func (b *Buffer) LineContent(row int) string {
	if row < 0 || row >= b.rows {
		return ""
	}

	// Find the last non-space character
	lastNonSpace := -1
	for col := b.cols - 1; col >= 0; col-- {
		cell := &b.cells[row][col]
		if cell.Char != ' ' && cell.Char != 0 && !cell.IsWideSpacer() {
			lastNonSpace = col
			break
		}
	}

	if lastNonSpace < 0 {
		return ""
	}

	runes := make([]rune, 0, lastNonSpace+1)
	for col := range b.cells[row][:lastNonSpace+1] {
		cell := &b.cells[row][col]
		if cell.IsWideSpacer() {
			continue
		}
		if cell.Char == 0 {
			runes = append(runes, ' ')
		} else {
			runes = append(runes, cell.Char)
		}
	}

	return string(runes)
}

// --- Auto Resize ---

// GrowRows appends n new rows to the bottom of the buffer.
// New cells are initialized to default state and marked dirty.
func (b *Buffer) GrowRows(n int) {
	if n <= 0 {
		return
	}

	newRows := b.rows + n
	newCells := make([][]Cell, newRows)
	newWrapped := make([]bool, newRows)

	// Copy existing rows
	copy(newCells, b.cells)
	copy(newWrapped, b.wrapped)

	// Initialize new rows
	for i := b.rows; i < newRows; i++ {
		newCells[i] = b.blankRow(b.cols)
		for j := range newCells[i] {
			newCells[i][j].MarkDirty()
		}
	}

	b.cells = newCells
	b.wrapped = newWrapped
	b.rows = newRows
	b.hasDirty = true
}

// GrowCols expands a single row to at least minCols columns.
// Does nothing if the row is already wider. Tab stops are extended if needed.
func (b *Buffer) GrowCols(row, minCols int) {
	if row < 0 || row >= b.rows {
		return
	}
	if minCols <= len(b.cells[row]) {
		return
	}

	// Expand just this row
	newCells := make([]Cell, minCols)
	copy(newCells, b.cells[row])
	for j := len(b.cells[row]); j < minCols; j++ {
		newCells[j] = b.blankCell()
		newCells[j].MarkDirty()
	}
	b.cells[row] = newCells

	// Track max cols for reference
	if minCols > b.cols {
		b.cols = minCols
		// Expand tabstops
		newTabStop := make([]bool, minCols)
		copy(newTabStop, b.tabStop)
		for i := len(b.tabStop); i < minCols; i += 8 {
			newTabStop[i] = true
		}
		b.tabStop = newTabStop
	}

	b.hasDirty = true
}

// --- Wrapped Line Tracking ---

// IsWrapped returns true if the line was wrapped due to column overflow.
func (b *Buffer) IsWrapped(row int) bool {
	if row < 0 || row >= b.rows {
		return false
	}
	return b.wrapped[row]
}

// SetWrapped sets whether the line was wrapped or ended with an explicit newline.
func (b *Buffer) SetWrapped(row int, wrapped bool) {
	if row < 0 || row >= b.rows {
		return
	}
	b.wrapped[row] = wrapped
}

// Position identifies a cell location in the terminal grid (0-based).
type Position struct {
	Row int
	Col int
}

// Before returns true if this position comes before other in reading order (top-to-bottom, left-to-right).
func (p Position) Before(other Position) bool {
	if p.Row < other.Row {
		return true
	}
	if p.Row == other.Row && p.Col < other.Col {
		return true
	}
	return false
}

// Equal returns true if both row and column match.
func (p Position) Equal(other Position) bool {
	return p.Row == other.Row && p.Col == other.Col
}
