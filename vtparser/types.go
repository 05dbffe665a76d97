// Package vtparser implements the byte-level ANSI/VT decoder and the
// Paul-Williams VT500 parser state machine. It owns nothing about screen
// state: it turns a byte stream into calls against a Handler, the same
// separation the rest of the kernel uses between parsing and mutation.
package vtparser

// LineClearMode selects which part of the current line EL (CSI K) erases.
type LineClearMode int

const (
	LineClearModeRight LineClearMode = iota
	LineClearModeLeft
	LineClearModeAll
)

// ClearMode selects which part of the screen ED (CSI J) erases.
type ClearMode int

const (
	ClearModeBelow ClearMode = iota
	ClearModeAbove
	ClearModeAll
	ClearModeSaved
)

// TabulationClearMode selects which tab stops TBC (CSI g) clears.
type TabulationClearMode int

const (
	TabulationClearModeCurrent TabulationClearMode = iota
	TabulationClearModeAll
)

// TerminalMode identifies a DECSET/DECRST or ANSI SM/RM mode.
type TerminalMode int

const (
	TerminalModeCursorKeys TerminalMode = iota
	TerminalModeColumnMode
	TerminalModeInsert
	TerminalModeOrigin
	TerminalModeLineWrap
	TerminalModeBlinkingCursor
	TerminalModeShowCursor
	TerminalModeReportMouseClicks
	TerminalModeReportCellMouseMotion
	TerminalModeReportAllMouseMotion
	TerminalModeReportFocusInOut
	TerminalModeUTF8Mouse
	TerminalModeSGRMouse
	TerminalModeAlternateScroll
	TerminalModeSwapScreenAndSetRestoreCursor
	TerminalModeBracketedPaste
	TerminalModeLineFeedNewLine
	TerminalModeUrgencyHints
	TerminalModeLeftRightMargin
)

// CharAttributeType identifies which SGR attribute a TerminalCharAttribute
// carries.
type CharAttributeType int

const (
	CharAttributeReset CharAttributeType = iota
	CharAttributeBold
	CharAttributeDim
	CharAttributeItalic
	CharAttributeUnderline
	CharAttributeDoubleUnderline
	CharAttributeCurlyUnderline
	CharAttributeDottedUnderline
	CharAttributeDashedUnderline
	CharAttributeBlinkSlow
	CharAttributeBlinkFast
	CharAttributeReverse
	CharAttributeHidden
	CharAttributeStrike
	CharAttributeCancelBold
	CharAttributeCancelBoldDim
	CharAttributeCancelItalic
	CharAttributeCancelUnderline
	CharAttributeCancelBlink
	CharAttributeCancelReverse
	CharAttributeCancelHidden
	CharAttributeCancelStrike
	CharAttributeForeground
	CharAttributeBackground
	CharAttributeUnderlineColor
)

// RGBColor is a truecolor SGR operand (38/48/58;2;r;g;b).
type RGBColor struct {
	R, G, B uint8
}

// IndexedColor is a palette-index SGR operand (38/48/58;5;n).
type IndexedColor struct {
	Index uint8
}

// NamedColor is a legacy 8/16-color SGR operand (30-37, 40-47, 90-97, 100-107).
type NamedColor int

// TerminalCharAttribute is one parsed SGR attribute, already resolved to at
// most one color operand.
type TerminalCharAttribute struct {
	Attr         CharAttributeType
	RGBColor     *RGBColor
	IndexedColor *IndexedColor
	NamedColor   *NamedColor
}

// CursorStyle identifies a DECSCUSR cursor shape.
type CursorStyle int

const (
	CursorStyleDefault CursorStyle = iota
	CursorStyleBlinkingBlock
	CursorStyleSteadyBlock
	CursorStyleBlinkingUnderline
	CursorStyleSteadyUnderline
	CursorStyleBlinkingBar
	CursorStyleSteadyBar
)

// CharsetIndex identifies one of the four G0-G3 charset slots.
type CharsetIndex int

const (
	CharsetIndexG0 CharsetIndex = iota
	CharsetIndexG1
	CharsetIndexG2
	CharsetIndexG3
)

// Charset identifies the character set designated into a charset slot.
type Charset int

const (
	CharsetASCII Charset = iota
	CharsetUK
	CharsetSpecialCharacterAndLineDrawing
)

// KeyboardMode is a bitmask of Kitty keyboard protocol flags.
type KeyboardMode uint8

const (
	KeyboardModeNoMode                KeyboardMode = 0
	KeyboardModeDisambiguateEscCodes  KeyboardMode = 1 << 0
	KeyboardModeReportEventTypes      KeyboardMode = 1 << 1
	KeyboardModeReportAlternateKeys   KeyboardMode = 1 << 2
	KeyboardModeReportAllKeysAsEscape KeyboardMode = 1 << 3
	KeyboardModeReportAssociatedText  KeyboardMode = 1 << 4
)

// KeyboardModeBehavior selects how CSI > u / CSI = u combine flags with the
// current keyboard mode.
type KeyboardModeBehavior int

const (
	KeyboardModeBehaviorReplace KeyboardModeBehavior = iota
	KeyboardModeBehaviorUnion
	KeyboardModeBehaviorDifference
)

// ModifyOtherKeys is the xterm modifyOtherKeys resource level (CSI > 4 ; n m).
type ModifyOtherKeys int

const (
	ModifyOtherKeysReset ModifyOtherKeys = iota
	ModifyOtherKeysNumericExceptNone
	ModifyOtherKeysNumericAll
)

// Hyperlink is a parsed OSC 8 hyperlink operand.
type Hyperlink struct {
	ID  string
	URI string
}
