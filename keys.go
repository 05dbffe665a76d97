package vtkernel

import "fmt"

// Key identifies a semantic key press a host wants encoded into the byte
// sequence a real terminal would send the child process. Named keys cover
// the ones whose encoding depends on terminal modes (DECCKM); plain
// printable runes are not modeled here, a host writes those
// straight to the child.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyRight
	KeyLeft
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyPageUp
	KeyPageDown
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyBacktab
)

// KeyModifiers is a bitmask of held modifier keys, encoded the way xterm's
// extended key reporting does (Shift=1, Alt=2, Control=4, added to 1 to
// form the CSI modifier parameter).
type KeyModifiers int

const (
	ModShift KeyModifiers = 1 << iota
	ModAlt
	ModCtrl
)

func (m KeyModifiers) csiParam() int {
	return int(m) + 1
}

// EncodeKey returns the bytes a host should write to the child process for
// a named key press, given the terminal's current cursor-key mode (DECCKM);
// the application keypad mode is not consulted. Modifiers beyond none
// produce the CSI 1 ; modifier letter form for arrows/Home/End and the
// CSI code ; modifier ~ form for the tilde keys; F1-F4 and Backtab have no
// modified form and return nil. An unmodified arrow/Home/End respects
// DECCKM's ESC O vs. ESC [ choice.
func (t *Terminal) EncodeKey(key Key, mods KeyModifiers) []byte {
	t.mu.RLock()
	cursorKeys := t.modes&ModeCursorKeys != 0
	t.mu.RUnlock()

	if mods == 0 {
		if seq, ok := simpleKeySequence(key, cursorKeys); ok {
			return seq
		}
	}

	if letter, ok := csiLetterKey(key); ok {
		return []byte(fmt.Sprintf("\x1b[1;%d%c", mods.csiParam(), letter))
	}
	if code, ok := tildeKeyCode(key); ok {
		if mods == 0 {
			return []byte(fmt.Sprintf("\x1b[%d~", code))
		}
		return []byte(fmt.Sprintf("\x1b[%d;%d~", code, mods.csiParam()))
	}
	return nil
}

func simpleKeySequence(key Key, applicationCursor bool) ([]byte, bool) {
	intro := byte('[')
	if applicationCursor {
		intro = 'O'
	}
	switch key {
	case KeyUp:
		return []byte{0x1b, intro, 'A'}, true
	case KeyDown:
		return []byte{0x1b, intro, 'B'}, true
	case KeyRight:
		return []byte{0x1b, intro, 'C'}, true
	case KeyLeft:
		return []byte{0x1b, intro, 'D'}, true
	case KeyHome:
		return []byte{0x1b, intro, 'H'}, true
	case KeyEnd:
		return []byte{0x1b, intro, 'F'}, true
	case KeyF1:
		return []byte{0x1b, 'O', 'P'}, true
	case KeyF2:
		return []byte{0x1b, 'O', 'Q'}, true
	case KeyF3:
		return []byte{0x1b, 'O', 'R'}, true
	case KeyF4:
		return []byte{0x1b, 'O', 'S'}, true
	case KeyBacktab:
		return []byte{0x1b, '[', 'Z'}, true
	default:
		return nil, false
	}
}

func csiLetterKey(key Key) (byte, bool) {
	switch key {
	case KeyUp:
		return 'A', true
	case KeyDown:
		return 'B', true
	case KeyRight:
		return 'C', true
	case KeyLeft:
		return 'D', true
	case KeyHome:
		return 'H', true
	case KeyEnd:
		return 'F', true
	default:
		return 0, false
	}
}

func tildeKeyCode(key Key) (int, bool) {
	switch key {
	case KeyInsert:
		return 2, true
	case KeyDelete:
		return 3, true
	case KeyPageUp:
		return 5, true
	case KeyPageDown:
		return 6, true
	case KeyF5:
		return 15, true
	case KeyF6:
		return 17, true
	case KeyF7:
		return 18, true
	case KeyF8:
		return 19, true
	case KeyF9:
		return 20, true
	case KeyF10:
		return 21, true
	case KeyF11:
		return 23, true
	case KeyF12:
		return 24, true
	default:
		return 0, false
	}
}

// MouseButton identifies which button (or wheel direction) a mouse event
// reports.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonMiddle
	MouseButtonRight
	MouseButtonRelease
	MouseWheelUp
	MouseWheelDown
)

// MouseEventKind distinguishes press, release, and motion-while-pressed so
// EncodeMouse can respect the active motion-reporting mode.
type MouseEventKind int

const (
	MousePress MouseEventKind = iota
	MouseRelease
	MouseMotion
)

// EncodeMouse returns the bytes for a mouse event at 1-based (row, col),
// or nil if the current mode set does not want this event reported at all
// (e.g. motion events with no motion-reporting mode enabled).
func (t *Terminal) EncodeMouse(button MouseButton, kind MouseEventKind, mods KeyModifiers, row, col int) []byte {
	t.mu.RLock()
	cellMotion := t.modes&ModeReportCellMouseMotion != 0
	allMotion := t.modes&ModeReportAllMouseMotion != 0
	clicks := t.modes&ModeReportMouseClicks != 0
	sgr := t.modes&ModeSGRMouse != 0
	utf8Mouse := t.modes&ModeUTF8Mouse != 0
	t.mu.RUnlock()

	if kind == MouseMotion && !cellMotion && !allMotion {
		return nil
	}
	if kind != MouseMotion && !clicks && !cellMotion && !allMotion {
		return nil
	}

	code := mouseButtonCode(button, kind, mods)

	if sgr {
		final := byte('M')
		if kind == MouseRelease {
			final = 'm'
		}
		return []byte(fmt.Sprintf("\x1b[<%d;%d;%d%c", code, col, row, final))
	}

	if utf8Mouse {
		return []byte(fmt.Sprintf("\x1b[M%c%c%c", code+32, col+32, row+32))
	}

	// Legacy X10 encoding clamps coordinates to the single-byte range.
	cb := clampByte(code + 32)
	cx := clampByte(col + 32)
	cy := clampByte(row + 32)
	return []byte{0x1b, '[', 'M', cb, cx, cy}
}

func mouseButtonCode(button MouseButton, kind MouseEventKind, mods KeyModifiers) int {
	code := 0
	switch button {
	case MouseButtonLeft:
		code = 0
	case MouseButtonMiddle:
		code = 1
	case MouseButtonRight:
		code = 2
	case MouseButtonRelease:
		code = 3
	case MouseWheelUp:
		code = 64
	case MouseWheelDown:
		code = 65
	}
	if kind == MouseMotion {
		code |= 32
	}
	code |= int(mods) << 2
	return code
}
