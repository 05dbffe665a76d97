package vtparser

import "image/color"

// Handler receives the semantic operations the parser state machine
// dispatches. One call corresponds to one emission point in the
// Paul-Williams state machine: a C0 execute, a printable, an ESC/CSI final
// byte, or an OSC/DCS terminator. Implementations own all screen state; the
// parser owns none.
type Handler interface {
	// Printable input, already UTF-8 decoded.
	Input(r rune)

	// C0 controls.
	Bell()
	Backspace()
	CarriageReturn()
	LineFeed()
	Tab(n int)
	Substitute()
	HorizontalTabSet()

	// Cursor motion.
	Goto(row, col int)
	GotoLine(row int)
	GotoCol(col int)
	MoveUp(n int)
	MoveDown(n int)
	MoveForward(n int)
	MoveBackward(n int)
	MoveUpCr(n int)
	MoveDownCr(n int)
	MoveForwardTabs(n int)
	MoveBackwardTabs(n int)
	SaveCursorPosition()
	RestoreCursorPosition()
	ReverseIndex()

	// Editing.
	ClearLine(mode LineClearMode)
	ClearScreen(mode ClearMode)
	ClearTabs(mode TabulationClearMode)
	InsertBlank(n int)
	InsertBlankLines(n int)
	DeleteChars(n int)
	DeleteLines(n int)
	EraseChars(n int)
	ScrollUp(n int)
	ScrollDown(n int)
	SetScrollingRegion(top, bottom int)
	SetLeftRightMargins(left, right int)
	Decaln()

	// Modes and attributes.
	SetMode(mode TerminalMode)
	UnsetMode(mode TerminalMode)
	SetTerminalCharAttribute(attr TerminalCharAttribute)
	SetCursorStyle(style CursorStyle)
	ConfigureCharset(index CharsetIndex, charset Charset)
	SetActiveCharset(n int)
	SetSingleShift(n int)
	SetKeypadApplicationMode()
	UnsetKeypadApplicationMode()

	// Kitty keyboard protocol.
	SetKeyboardMode(mode KeyboardMode, behavior KeyboardModeBehavior)
	PushKeyboardMode(mode KeyboardMode)
	PopKeyboardMode(n int)
	ReportKeyboardMode()
	SetModifyOtherKeys(modify ModifyOtherKeys)
	ReportModifyOtherKeys()

	// State queries and resets.
	DeviceStatus(n int)
	IdentifyTerminal(b byte)
	ResetState()

	// Window/title.
	SetTitle(title string)
	PushTitle()
	PopTitle()
	TextAreaSizeChars()
	TextAreaSizePixels()

	// Color.
	SetColor(index int, c color.Color)
	ResetColor(i int)
	SetDynamicColor(prefix string, index int, terminator string)

	// Hyperlinks and clipboard.
	SetHyperlink(hyperlink *Hyperlink)
	ClipboardLoad(clipboard byte, terminator string)
	ClipboardStore(clipboard byte, data []byte)

	// String sequences the state machine collects verbatim and hands off
	// whole: APC (OSC-adjacent application command), PM, SOS, and a generic
	// OSC 7 current-directory notification.
	ApplicationCommandReceived(data []byte)
	PrivacyMessageReceived(data []byte)
	StartOfStringReceived(data []byte)
	SetWorkingDirectory(uri string)
}
