package vtparser

// This file implements the state-to-state edges of the VT500 table from
// Escape onward. Ground's edges live in decoder.go next to execute/print
// since it is the resting state every sequence returns to.

func (d *Decoder) stepEscape(b byte) {
	switch {
	case b >= 0x20 && b <= 0x2F:
		d.intermediate = append(d.intermediate, b)
		d.st = stateEscapeIntermediate
	case b == 0x5B: // '['
		d.clear()
		d.st = stateCsiEntry
	case b == 0x5D: // ']'
		d.oscBuf = d.oscBuf[:0]
		d.st = stateOscString
	case b == 0x50: // 'P'
		d.clear()
		d.dcsBuf = d.dcsBuf[:0]
		d.st = stateDcsEntry
	case b == 0x58 || b == 0x5E || b == 0x5F: // 'X' SOS, '^' PM, '_' APC
		d.apcBuf = d.apcBuf[:0]
		d.apcKind = apcKindForIntro(b)
		d.st = stateSosPmApcString
	case isEscDispatchFinal(b):
		d.escDispatch(b)
		d.st = stateGround
	default:
		// Unrecognized escape intermediate/final: ignored, return to Ground.
		d.st = stateGround
	}
}

func apcKindForIntro(b byte) apcKind {
	switch b {
	case 0x58:
		return apcKindSos
	case 0x5E:
		return apcKindPm
	default:
		return apcKindApc
	}
}

// isEscDispatchFinal reports whether b is a final byte for a two-byte (or
// with collected intermediates, longer) ESC sequence per the state table:
// 0x30-0x4F,0x51-0x57,0x59,0x5A,0x5C,0x60-0x7E.
func isEscDispatchFinal(b byte) bool {
	switch {
	case b >= 0x30 && b <= 0x4F:
		return true
	case b >= 0x51 && b <= 0x57:
		return true
	case b == 0x59 || b == 0x5A || b == 0x5C:
		return true
	case b >= 0x60 && b <= 0x7E:
		return true
	default:
		return false
	}
}

func (d *Decoder) stepEscapeIntermediate(b byte) {
	switch {
	case b >= 0x20 && b <= 0x2F:
		d.intermediate = append(d.intermediate, b)
	case b >= 0x30 && b <= 0x7E:
		d.escDispatch(b)
		d.st = stateGround
	default:
		d.st = stateGround
	}
}

func (d *Decoder) stepCsiEntry(b byte) {
	switch {
	case b >= 0x30 && b <= 0x39:
		d.params.digit(b)
		d.st = stateCsiParam
	case b == 0x3A:
		d.params.subSeparator()
		d.st = stateCsiParam
	case b == 0x3B:
		d.params.separator()
		d.st = stateCsiParam
	case b >= 0x3C && b <= 0x3F:
		d.private = b
		d.st = stateCsiParam
	case b >= 0x20 && b <= 0x2F:
		d.intermediate = append(d.intermediate, b)
		d.st = stateCsiIntermediate
	case b >= 0x40 && b <= 0x7E:
		d.csiDispatch(b)
		d.st = stateGround
	default:
		d.st = stateCsiIgnore
	}
}

func (d *Decoder) stepCsiParam(b byte) {
	switch {
	case b >= 0x30 && b <= 0x39:
		d.params.digit(b)
	case b == 0x3A:
		d.params.subSeparator()
	case b == 0x3B:
		d.params.separator()
	case b >= 0x3C && b <= 0x3F:
		d.st = stateCsiIgnore
	case b >= 0x20 && b <= 0x2F:
		d.intermediate = append(d.intermediate, b)
		d.st = stateCsiIntermediate
	case b >= 0x40 && b <= 0x7E:
		d.csiDispatch(b)
		d.st = stateGround
	default:
		d.st = stateCsiIgnore
	}
}

func (d *Decoder) stepCsiIntermediate(b byte) {
	switch {
	case b >= 0x20 && b <= 0x2F:
		d.intermediate = append(d.intermediate, b)
	case b >= 0x30 && b <= 0x3F:
		d.st = stateCsiIgnore
	case b >= 0x40 && b <= 0x7E:
		d.csiDispatch(b)
		d.st = stateGround
	default:
		d.st = stateCsiIgnore
	}
}

func (d *Decoder) stepCsiIgnore(b byte) {
	if b >= 0x40 && b <= 0x7E {
		d.st = stateGround
	}
	// Everything else (including further params/intermediates) is swallowed.
}

func (d *Decoder) stepDcsEntry(b byte) {
	switch {
	case b >= 0x30 && b <= 0x39:
		d.params.digit(b)
		d.st = stateDcsParam
	case b == 0x3A:
		d.params.subSeparator()
		d.st = stateDcsParam
	case b == 0x3B:
		d.params.separator()
		d.st = stateDcsParam
	case b >= 0x3C && b <= 0x3F:
		d.private = b
		d.st = stateDcsParam
	case b >= 0x20 && b <= 0x2F:
		d.intermediate = append(d.intermediate, b)
		d.st = stateDcsIntermediate
	case b >= 0x40 && b <= 0x7E:
		d.st = stateDcsPassthrough
	default:
		d.st = stateDcsIgnore
	}
}

func (d *Decoder) stepDcsParam(b byte) {
	switch {
	case b >= 0x30 && b <= 0x39:
		d.params.digit(b)
	case b == 0x3A:
		d.params.subSeparator()
	case b == 0x3B:
		d.params.separator()
	case b >= 0x20 && b <= 0x2F:
		d.intermediate = append(d.intermediate, b)
		d.st = stateDcsIntermediate
	case b >= 0x40 && b <= 0x7E:
		d.st = stateDcsPassthrough
	default:
		d.st = stateDcsIgnore
	}
}

func (d *Decoder) stepDcsIntermediate(b byte) {
	switch {
	case b >= 0x20 && b <= 0x2F:
		d.intermediate = append(d.intermediate, b)
	case b >= 0x40 && b <= 0x7E:
		d.st = stateDcsPassthrough
	default:
		d.st = stateDcsIgnore
	}
}

// stepDcsPassthrough collects the DCS data string verbatim (the "put"
// action) until ST (ESC \ or 0x9C). The payload is handed to the handler
// as a PrivacyMessage-style opaque blob via ApplicationCommandReceived,
// since no DCS-specific host hook is named; hosts that care about a
// specific DCS (e.g. a terminfo query) inspect the collected bytes.
func (d *Decoder) stepDcsPassthrough(b byte) {
	if d.stringTerminated(b, &d.dcsBuf) {
		d.handler.ApplicationCommandReceived(d.dcsBuf)
		d.st = stateGround
	}
}

func (d *Decoder) stepDcsIgnore(b byte) {
	if b == 0x9C {
		d.st = stateGround
		return
	}
	if b == 0x1B {
		d.dcsBuf = append(d.dcsBuf, b)
	}
}

func (d *Decoder) stepOscString(b byte) {
	if d.stringTerminated(b, &d.oscBuf) {
		d.oscDispatch(d.oscBuf)
		d.st = stateGround
	}
}

func (d *Decoder) stepSosPmApcString(b byte) {
	if d.stringTerminated(b, &d.apcBuf) {
		switch d.apcKind {
		case apcKindPm:
			d.handler.PrivacyMessageReceived(d.apcBuf)
		case apcKindSos:
			d.handler.StartOfStringReceived(d.apcBuf)
		default:
			d.handler.ApplicationCommandReceived(d.apcBuf)
		}
		d.st = stateGround
	}
}

// stringTerminated implements the shared OSC/DCS/APC "osc_put"/"put"/terminator
// logic: BEL (0x07) or ST (ESC \ or the C1 0x9C) end the string, everything
// else accumulates. It tracks a trailing ESC across calls via the buffer's
// own last byte so the 2-byte ST can span two writeByte calls.
func (d *Decoder) stringTerminated(b byte, buf *[]byte) bool {
	if b == 0x07 || b == 0x9C {
		return true
	}
	if b == 0x1B {
		*buf = append(*buf, b)
		return false
	}
	if n := len(*buf); n > 0 && (*buf)[n-1] == 0x1B && b == 0x5C {
		*buf = (*buf)[:n-1]
		return true
	}
	*buf = append(*buf, b)
	return false
}
