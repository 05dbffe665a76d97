package vtparser

import "unicode/utf8"

// apcKind distinguishes which string-collecting sequence is in progress so
// SosPmApcString's single state can still dispatch to the right handler
// method on terminator.
type apcKind int

const (
	apcKindNone apcKind = iota
	apcKindApc
	apcKindPm
	apcKindSos
)

// Decoder is the byte-level ANSI/VT decoder and parser state machine (C1 +
// C2). It holds no screen state of its own; every semantic operation it
// recognizes is forwarded to a Handler. A Decoder is not safe for
// concurrent use without external synchronization, matching the rest of
// the kernel's single-writer model.
type Decoder struct {
	handler Handler

	st state

	params       *paramList
	intermediate []byte
	private      byte // '<', '=', '>', '?', or 0

	oscBuf  []byte
	dcsBuf  []byte
	apcBuf  []byte
	apcKind apcKind

	// UTF-8 reassembly across Write calls.
	utf8Buf  [4]byte
	utf8Len  int
	utf8Need int
}

// NewDecoder returns a Decoder that dispatches to handler.
func NewDecoder(handler Handler) *Decoder {
	return &Decoder{
		handler: handler,
		st:      stateGround,
		params:  newParamList(),
	}
}

// SetHandler swaps the handler mid-stream (used when a host rebinds the
// terminal, e.g. after restoring a snapshot).
func (d *Decoder) SetHandler(handler Handler) {
	d.handler = handler
}

// Write feeds bytes through the decoder. It never returns an error: per the
// VT contract, malformed input is absorbed (invalid UTF-8 becomes U+FFFD,
// unknown sequences are silently ignored), never rejected.
func (d *Decoder) Write(p []byte) (int, error) {
	for _, b := range p {
		d.writeByte(b)
	}
	return len(p), nil
}

// WriteString is a convenience wrapper over Write.
func (d *Decoder) WriteString(s string) {
	d.Write([]byte(s))
}

func (d *Decoder) writeByte(b byte) {
	// UTF-8 continuation reassembly only applies in Ground; every other
	// state only ever consumes 7-bit bytes.
	if d.utf8Need > 0 {
		if b&0xC0 == 0x80 {
			d.utf8Buf[d.utf8Len] = b
			d.utf8Len++
			d.utf8Need--
			if d.utf8Need == 0 {
				r, size := utf8.DecodeRune(d.utf8Buf[:d.utf8Len])
				if r == utf8.RuneError && size <= 1 {
					r = utf8.RuneError
				}
				d.handler.Input(r)
				d.utf8Len = 0
			}
			return
		}
		// Malformed continuation: emit replacement and reprocess b fresh.
		d.handler.Input(utf8.RuneError)
		d.utf8Len = 0
		d.utf8Need = 0
	}

	if d.st == stateGround {
		if n := utf8SeqLen(b); n > 1 {
			d.utf8Buf[0] = b
			d.utf8Len = 1
			d.utf8Need = n - 1
			return
		}
	}

	if isCancel(b) {
		d.reset()
		return
	}

	switch d.st {
	case stateGround:
		d.stepGround(b)
	case stateEscape:
		d.stepEscape(b)
	case stateEscapeIntermediate:
		d.stepEscapeIntermediate(b)
	case stateCsiEntry:
		d.stepCsiEntry(b)
	case stateCsiParam:
		d.stepCsiParam(b)
	case stateCsiIntermediate:
		d.stepCsiIntermediate(b)
	case stateCsiIgnore:
		d.stepCsiIgnore(b)
	case stateDcsEntry:
		d.stepDcsEntry(b)
	case stateDcsParam:
		d.stepDcsParam(b)
	case stateDcsIntermediate:
		d.stepDcsIntermediate(b)
	case stateDcsPassthrough:
		d.stepDcsPassthrough(b)
	case stateDcsIgnore:
		d.stepDcsIgnore(b)
	case stateOscString:
		d.stepOscString(b)
	case stateSosPmApcString:
		d.stepSosPmApcString(b)
	}
}

// utf8SeqLen returns the total byte length of the UTF-8 sequence a leading
// byte starts, or 1 for a single-byte/invalid lead.
func utf8SeqLen(b byte) int {
	switch {
	case b&0x80 == 0x00:
		return 1
	case b&0xE0 == 0xC0:
		return 2
	case b&0xF0 == 0xE0:
		return 3
	case b&0xF8 == 0xF0:
		return 4
	default:
		return 1
	}
}

// reset aborts any in-progress sequence and returns to Ground. Called on
// CAN/SUB per the VT contract.
func (d *Decoder) reset() {
	d.st = stateGround
	d.clear()
}

// clear performs the state machine's "clear" action: drop collected
// parameters and intermediates without touching Ground-level state.
func (d *Decoder) clear() {
	d.params.reset()
	d.intermediate = d.intermediate[:0]
	d.private = 0
}

func (d *Decoder) stepGround(b byte) {
	class := classify(b)
	switch {
	case b == 0x1B:
		d.st = stateEscape
	case class == classC0 || class == classDelete:
		d.execute(b)
	default:
		d.handler.Input(rune(b))
	}
}

// execute performs the C0 "execute" action: dispatch the control byte
// immediately without altering parser state.
func (d *Decoder) execute(b byte) {
	switch b {
	case 0x07:
		d.handler.Bell()
	case 0x08:
		d.handler.Backspace()
	case 0x09:
		d.handler.Tab(1)
	case 0x0A, 0x0B, 0x0C:
		d.handler.LineFeed()
	case 0x0D:
		d.handler.CarriageReturn()
	case 0x0E:
		d.handler.SetActiveCharset(1)
	case 0x0F:
		d.handler.SetActiveCharset(0)
	default:
		// Other C0 controls (NUL, ENQ, etc.) have no terminal-state effect.
	}
}
