package vtparser

// escDispatch handles a two-byte (or longer, with collected intermediates)
// ESC sequence on its final byte. Numeric/alpha assignments follow the
// standard VT100-and-later repertoire; anything unrecognized is the
// UnknownEscape case and is silently dropped, per contract.
func (d *Decoder) escDispatch(final byte) {
	if len(d.intermediate) > 0 {
		d.escDispatchIntermediate(final)
		return
	}

	switch final {
	case 'D': // IND
		d.handler.LineFeed()
	case 'E': // NEL
		d.handler.MoveDownCr(1)
	case 'H': // HTS
		d.handler.HorizontalTabSet()
	case 'M': // RI
		d.handler.ReverseIndex()
	case 'N': // SS2: single shift to G2 for the next character only
		d.handler.SetSingleShift(2)
	case 'O': // SS3: single shift to G3 for the next character only
		d.handler.SetSingleShift(3)
	case 'n': // LS2: locking shift to G2, persists until changed
		d.handler.SetActiveCharset(2)
	case 'o': // LS3: locking shift to G3, persists until changed
		d.handler.SetActiveCharset(3)
	case '7': // DECSC
		d.handler.SaveCursorPosition()
	case '8': // DECRC
		d.handler.RestoreCursorPosition()
	case '=': // DECKPAM
		d.handler.SetKeypadApplicationMode()
	case '>': // DECKPNM
		d.handler.UnsetKeypadApplicationMode()
	case 'c': // RIS
		d.handler.ResetState()
	}
}

func (d *Decoder) escDispatchIntermediate(final byte) {
	intro := d.intermediate[0]
	switch intro {
	case '#':
		if final == '8' { // DECALN
			d.handler.Decaln()
		}
	case '(':
		d.handler.ConfigureCharset(CharsetIndexG0, charsetFromDesignator(final))
	case ')':
		d.handler.ConfigureCharset(CharsetIndexG1, charsetFromDesignator(final))
	case '*':
		d.handler.ConfigureCharset(CharsetIndexG2, charsetFromDesignator(final))
	case '+':
		d.handler.ConfigureCharset(CharsetIndexG3, charsetFromDesignator(final))
	}
}

func charsetFromDesignator(b byte) Charset {
	switch b {
	case 'A':
		return CharsetUK
	case '0':
		return CharsetSpecialCharacterAndLineDrawing
	default:
		return CharsetASCII
	}
}
