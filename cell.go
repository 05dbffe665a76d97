package vtkernel

import "image/color"

// CellFlags is a bitmask of cell rendering attributes carried inside a Style.
type CellFlags uint16

const (
	CellFlagBold CellFlags = 1 << iota
	CellFlagDim
	CellFlagItalic
	CellFlagUnderline
	CellFlagDoubleUnderline
	CellFlagCurlyUnderline
	CellFlagDottedUnderline
	CellFlagDashedUnderline
	CellFlagBlinkSlow
	CellFlagBlinkFast
	CellFlagReverse
	CellFlagHidden
	CellFlagStrike
)

// defaultStyle is the attribute bundle an untouched cell carries: default
// foreground/background, no underline color, no flags.
var defaultStyle = Style{
	Fg: &NamedColor{Name: NamedColorForeground},
	Bg: &NamedColor{Name: NamedColorBackground},
}

// Cell stores the character and style-table reference for one grid
// position. Colors and SGR flags do not live on the cell directly: they are
// interned once per distinct combination in a StyleCache, and the cell
// carries only the resulting pointer (its style-key). Wide characters (2
// columns) use a spacer cell in the second position.
type Cell struct {
	Char rune

	// styleKey points at the interned Style this cell currently displays.
	// nil means the cell has never been placed into a buffer's live grid
	// (e.g. a bare Cell{} built outside of Buffer/StyleCache); accessors
	// treat a nil key as defaultStyle. Every cell a Buffer hands back via
	// Cell/ScrollbackLine carries a non-nil key tracked by that buffer's
	// StyleCache.
	styleKey *Style

	Wide       bool // second half of a 2-column character follows
	WideSpacer bool // this cell is that second half
	Dirty      bool

	Hyperlink *Hyperlink
}

// Hyperlink associates a cell with a clickable link (OSC 8).
type Hyperlink struct {
	ID  string
	URI string
}

// NewCell creates a cell initialized with space character and default
// colors. Its style-key is left nil: it is not tracked by any StyleCache
// until a Buffer interns it (see Buffer.blankCell, Buffer.PaintCell).
func NewCell() Cell {
	return Cell{Char: ' '}
}

// Style returns the cell's current attribute bundle: the interned style if
// one is set, otherwise the default.
func (c *Cell) Style() Style {
	if c.styleKey == nil {
		return defaultStyle
	}
	return *c.styleKey
}

// StyleKey returns the cell's interned style pointer, or nil if unset.
func (c *Cell) StyleKey() *Style {
	return c.styleKey
}

// SetStyleKey assigns an already-interned style pointer to the cell. It does
// not touch any StyleCache refcount; callers that move a cell between
// StyleCache-tracked positions must manage Intern/Release themselves.
func (c *Cell) SetStyleKey(key *Style) {
	c.styleKey = key
}

// Fg returns the cell's foreground color.
func (c *Cell) Fg() color.Color {
	return c.Style().Fg
}

// Bg returns the cell's background color.
func (c *Cell) Bg() color.Color {
	return c.Style().Bg
}

// UnderlineColor returns the cell's underline color override, or nil if the
// underline (if any) should use the foreground color.
func (c *Cell) UnderlineColor() color.Color {
	return c.Style().UnderlineColor
}

// Flags returns the cell's SGR flag bitmask.
func (c *Cell) Flags() CellFlags {
	return c.Style().Flags
}

// HasFlag returns true if the specified flag is set.
func (c *Cell) HasFlag(flag CellFlags) bool {
	return c.Flags()&flag != 0
}

// Reset clears the cell to default state (space character, no style-key,
// no wide/dirty markers, no hyperlink) without touching any StyleCache.
// Buffer-owned cells must go through Buffer.ResetCell instead, which
// releases the outgoing style-key before calling this.
func (c *Cell) Reset() {
	c.Char = ' '
	c.styleKey = nil
	c.Wide = false
	c.WideSpacer = false
	c.Dirty = false
	c.Hyperlink = nil
}

// IsDirty returns true if the cell was modified since the last ClearDirty call.
func (c *Cell) IsDirty() bool {
	return c.Dirty
}

// MarkDirty marks the cell as modified for dirty tracking.
func (c *Cell) MarkDirty() {
	c.Dirty = true
}

// ClearDirty resets the dirty tracking flag.
func (c *Cell) ClearDirty() {
	c.Dirty = false
}

// IsWide returns true if this cell contains a wide character (CJK, emoji, etc.) that occupies 2 columns.
func (c *Cell) IsWide() bool {
	return c.Wide
}

// IsWideSpacer returns true if this is the second cell of a wide character (should be skipped during rendering).
func (c *Cell) IsWideSpacer() bool {
	return c.WideSpacer
}

// Copy returns a shallow copy of the cell, including the style-key pointer
// and hyperlink pointer. It does not intern or release: a copy placed into
// a live buffer grid must be interned by the caller the same as any other
// cell write.
func (c *Cell) Copy() Cell {
	return Cell{
		Char:       c.Char,
		styleKey:   c.styleKey,
		Wide:       c.Wide,
		WideSpacer: c.WideSpacer,
		Hyperlink:  c.Hyperlink,
	}
}
