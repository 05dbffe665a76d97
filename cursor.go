package vtkernel

import "image/color"

// CursorStyle determines how the cursor is rendered.
type CursorStyle int

const (
	CursorStyleBlinkingBlock CursorStyle = iota
	CursorStyleSteadyBlock
	CursorStyleBlinkingUnderline
	CursorStyleSteadyUnderline
	CursorStyleBlinkingBar
	CursorStyleSteadyBar
)

// Cursor tracks the current position and rendering style (0-based coordinates).
type Cursor struct {
	Row     int
	Col     int
	Style   CursorStyle
	Visible bool
}

// NewCursor creates a cursor at (0, 0) with blinking block style, visible.
func NewCursor() *Cursor {
	return &Cursor{
		Row:     0,
		Col:     0,
		Style:   CursorStyleBlinkingBlock,
		Visible: true,
	}
}

// SavedCursor stores cursor position, cell attributes, and charset state for restoration.
// Used when switching between primary and alternate screens.
type SavedCursor struct {
	Row            int
	Col            int
	Attrs          CellTemplate
	OriginMode     bool
	CharsetIndex   int
	Charsets       [4]Charset
}

// CellTemplate defines the pending attribute bundle applied to newly written
// characters. Modified by SGR (Select Graphic Rendition) escape sequences.
// Unlike Cell, a template is not interned: it holds plain mutable fields
// while SGR sequences accumulate, and is re-interned into a style-key each
// time an SGR, reset or DECRC changes it (see Terminal.internTemplateStyleLocked).
type CellTemplate struct {
	Fg             color.Color
	Bg             color.Color
	UnderlineColor color.Color
	Flags          CellFlags
}

// NewCellTemplate creates a template with default colors and no flags.
func NewCellTemplate() CellTemplate {
	return CellTemplate{
		Fg: &NamedColor{Name: NamedColorForeground},
		Bg: &NamedColor{Name: NamedColorBackground},
	}
}

// style returns the template's current attribute bundle, the same shape the
// style cache interns.
func (t *CellTemplate) style() Style {
	return Style{Fg: t.Fg, Bg: t.Bg, UnderlineColor: t.UnderlineColor, Flags: t.Flags}
}

// HasFlag returns true if the specified flag is set.
func (t *CellTemplate) HasFlag(flag CellFlags) bool {
	return t.Flags&flag != 0
}

// SetFlag enables the specified flag without affecting others.
func (t *CellTemplate) SetFlag(flag CellFlags) {
	t.Flags |= flag
}

// ClearFlag disables the specified flag without affecting others.
func (t *CellTemplate) ClearFlag(flag CellFlags) {
	t.Flags &^= flag
}

// Charset selects the character encoding variant.
type Charset int

const (
	CharsetASCII Charset = iota
	CharsetLineDrawing
)

// CharsetIndex selects one of four character set slots (G0-G3).
type CharsetIndex int

const (
	CharsetIndexG0 CharsetIndex = iota
	CharsetIndexG1
	CharsetIndexG2
	CharsetIndexG3
)
