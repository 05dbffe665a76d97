package vtparser

// csiDispatch handles a CSI sequence on its final byte. Private-marker
// sequences (leading '?', '>', '=', '<') share final bytes with public
// ones but mean different things (DECSET/DECRST vs. ANSI SM/RM, DA
// variants, Kitty keyboard protocol), so final-byte handling checks
// d.private where the standard overloads it.
func (d *Decoder) csiDispatch(final byte) {
	n := d.params.finish()
	get := func(i, def int) int { return d.params.get(i, def) }

	switch final {
	case 'A':
		d.handler.MoveUp(get(0, 1))
	case 'B':
		d.handler.MoveDown(get(0, 1))
	case 'C', 'a':
		d.handler.MoveForward(get(0, 1))
	case 'D':
		d.handler.MoveBackward(get(0, 1))
	case 'E':
		d.handler.MoveDownCr(get(0, 1))
	case 'F':
		d.handler.MoveUpCr(get(0, 1))
	case 'G', '`':
		d.handler.GotoCol(get(0, 1))
	case 'H', 'f':
		d.handler.Goto(get(0, 1), get(1, 1))
	case 'I':
		d.handler.MoveForwardTabs(get(0, 1))
	case 'J':
		d.handler.ClearScreen(ClearMode(get(0, 0)))
	case 'K':
		d.handler.ClearLine(LineClearMode(get(0, 0)))
	case 'L':
		d.handler.InsertBlankLines(get(0, 1))
	case 'M':
		d.handler.DeleteLines(get(0, 1))
	case 'P':
		d.handler.DeleteChars(get(0, 1))
	case 'S':
		d.handler.ScrollUp(get(0, 1))
	case 'T':
		d.handler.ScrollDown(get(0, 1))
	case 'X':
		d.handler.EraseChars(get(0, 1))
	case 'Z':
		d.handler.MoveBackwardTabs(get(0, 1))
	case 'd':
		d.handler.GotoLine(get(0, 1))
	case '@':
		d.handler.InsertBlank(get(0, 1))
	case 'c':
		d.dispatchDA(get)
	case 'n':
		d.handler.DeviceStatus(get(0, 0))
	case 'g':
		d.handler.ClearTabs(TabulationClearMode(get(0, 0)))
	case 'h':
		d.dispatchModeToggle(n, get, true)
	case 'l':
		d.dispatchModeToggle(n, get, false)
	case 'm':
		d.dispatchSGROrKeyboard(get)
	case 'q':
		d.dispatchDECSCUSR(get)
	case 'r':
		top, bottom := get(0, 0), get(1, 0)
		d.handler.SetScrollingRegion(top, bottom)
	case 's':
		// CSI s is overloaded: DECSLRM (left/right margins) when DECLRMM is
		// enabled, ANSI.SYS "save cursor" otherwise. The handler decides
		// which applies based on its own mode state.
		d.handler.SetLeftRightMargins(get(0, 0), get(1, 0))
	case 't':
		d.dispatchWindowOp(get)
	case 'u':
		d.dispatchCursorOrKeyboardU(get)
	}
	// Anything else is an unrecognized final byte: per contract it is
	// silently dropped, the decoder has already returned to Ground.
}

func (d *Decoder) dispatchDA(get func(int, int) int) {
	if d.private == '>' {
		return // secondary DA: not modeled, silently ignored
	}
	d.handler.IdentifyTerminal(byte(get(0, 0)))
}

func (d *Decoder) dispatchModeToggle(n int, get func(int, int) int, set bool) {
	for i := 0; i < n; i++ {
		mode, ok := terminalModeFromCSI(d.private == '?', get(i, 0))
		if !ok {
			continue
		}
		if set {
			d.handler.SetMode(mode)
		} else {
			d.handler.UnsetMode(mode)
		}
	}
}

func (d *Decoder) dispatchSGROrKeyboard(get func(int, int) int) {
	switch d.private {
	case '>':
		d.handler.SetModifyOtherKeys(ModifyOtherKeys(get(0, 0)))
	case '?':
		d.handler.ReportModifyOtherKeys()
	default:
		d.dispatchSGR()
	}
}

func (d *Decoder) dispatchDECSCUSR(get func(int, int) int) {
	if len(d.intermediate) == 1 && d.intermediate[0] == 0x20 {
		d.handler.SetCursorStyle(CursorStyle(get(0, 0)))
	}
}

func (d *Decoder) dispatchWindowOp(get func(int, int) int) {
	switch get(0, 0) {
	case 14:
		d.handler.TextAreaSizePixels()
	case 18:
		d.handler.TextAreaSizeChars()
	case 22:
		d.handler.PushTitle()
	case 23:
		d.handler.PopTitle()
	}
}

func (d *Decoder) dispatchCursorOrKeyboardU(get func(int, int) int) {
	switch d.private {
	case '>':
		d.handler.PushKeyboardMode(KeyboardMode(get(0, 0)))
	case '<':
		d.handler.PopKeyboardMode(get(0, 1))
	case '=':
		d.handler.SetKeyboardMode(KeyboardMode(get(0, 0)), KeyboardModeBehavior(get(1, 0)))
	case '?':
		d.handler.ReportKeyboardMode()
	default:
		d.handler.RestoreCursorPosition()
	}
}

// terminalModeFromCSI maps a DECSET/DECRST ('?' private) or ANSI SM/RM
// (public) numeric mode to a TerminalMode. ok is false for modes this
// kernel does not model (silently ignored, per the UnknownEscape rule).
func terminalModeFromCSI(private bool, n int) (TerminalMode, bool) {
	if private {
		switch n {
		case 1:
			return TerminalModeCursorKeys, true
		case 3:
			return TerminalModeColumnMode, true
		case 6:
			return TerminalModeOrigin, true
		case 7:
			return TerminalModeLineWrap, true
		case 12:
			return TerminalModeBlinkingCursor, true
		case 25:
			return TerminalModeShowCursor, true
		case 1000:
			return TerminalModeReportMouseClicks, true
		case 1002:
			return TerminalModeReportCellMouseMotion, true
		case 1003:
			return TerminalModeReportAllMouseMotion, true
		case 1004:
			return TerminalModeReportFocusInOut, true
		case 1005:
			return TerminalModeUTF8Mouse, true
		case 1006:
			return TerminalModeSGRMouse, true
		case 1007:
			return TerminalModeAlternateScroll, true
		case 1049:
			return TerminalModeSwapScreenAndSetRestoreCursor, true
		case 2004:
			return TerminalModeBracketedPaste, true
		case 8:
			return TerminalModeUrgencyHints, true
		case 69:
			return TerminalModeLeftRightMargin, true
		}
		return 0, false
	}
	switch n {
	case 4:
		return TerminalModeInsert, true
	case 20:
		return TerminalModeLineFeedNewLine, true
	}
	return 0, false
}
