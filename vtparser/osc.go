package vtparser

import (
	"image/color"
	"strconv"
	"strings"
)

// oscDispatch parses a complete OSC body (the bytes between "ESC ]" and the
// terminator) and dispatches it to the matching handler method. The OSC
// command number is always the leading ';'-separated field; anything
// unrecognized is silently dropped.
func (d *Decoder) oscDispatch(body []byte) {
	s := string(body)
	semi := strings.IndexByte(s, ';')
	head := s
	rest := ""
	if semi >= 0 {
		head = s[:semi]
		rest = s[semi+1:]
	}
	cmd, err := strconv.Atoi(head)
	if err != nil {
		return
	}

	switch cmd {
	case 0, 2:
		d.handler.SetTitle(rest)
	case 1:
		// Icon name only: no dedicated hook, title stands in for it.
		d.handler.SetTitle(rest)
	case 4:
		d.oscSetColor(rest)
	case 7:
		d.handler.SetWorkingDirectory(rest)
	case 8:
		d.oscHyperlink(rest)
	case 10:
		d.dynamicColorFromSpec(10, rest)
	case 11:
		d.dynamicColorFromSpec(11, rest)
	case 12:
		d.dynamicColorFromSpec(12, rest)
	case 52:
		d.oscClipboard(rest)
	case 104:
		d.oscResetColor(rest)
	case 110, 111, 112:
		d.handler.ResetColor(cmd - 100)
	}
}

// oscSetColor handles OSC 4 ; index ; spec [; index ; spec ...].
func (d *Decoder) oscSetColor(rest string) {
	fields := strings.Split(rest, ";")
	for i := 0; i+1 < len(fields); i += 2 {
		idx, err := strconv.Atoi(fields[i])
		if err != nil {
			continue
		}
		if c, ok := parseColorSpec(fields[i+1]); ok {
			d.handler.SetColor(idx, c)
		}
	}
}

// dynamicColorFromSpec handles OSC 10/11/12 ; spec (foreground, background,
// cursor color) by resolving the spec and routing it through SetColor with
// the sentinel indices the kernel's color table reserves for them, then
// also surfacing the raw spec via SetDynamicColor for hosts that want the
// original query/set string (e.g. to answer a "?" query terminator).
func (d *Decoder) dynamicColorFromSpec(which int, spec string) {
	d.handler.SetDynamicColor(strconv.Itoa(which), which, spec)
	if c, ok := parseColorSpec(spec); ok {
		d.handler.SetColor(-which, c)
	}
}

// parseColorSpec parses an "rgb:rr/gg/bb" or "#rrggbb" X11-style color spec.
func parseColorSpec(spec string) (color.Color, bool) {
	spec = strings.TrimSpace(spec)
	if strings.HasPrefix(spec, "rgb:") {
		parts := strings.Split(spec[4:], "/")
		if len(parts) != 3 {
			return nil, false
		}
		r, ok1 := parseHexChannel(parts[0])
		g, ok2 := parseHexChannel(parts[1])
		b, ok3 := parseHexChannel(parts[2])
		if !ok1 || !ok2 || !ok3 {
			return nil, false
		}
		return color.RGBA{R: r, G: g, B: b, A: 255}, true
	}
	if strings.HasPrefix(spec, "#") && (len(spec) == 7 || len(spec) == 4) {
		hex := spec[1:]
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return nil, false
		}
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, true
	}
	return nil, false
}

// parseHexChannel parses a 2-4 hex-digit channel value, scaling down to 8
// bits (X11 color specs allow 1-4 digit precision per channel).
func parseHexChannel(s string) (uint8, bool) {
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, false
	}
	bits := len(s) * 4
	if bits > 8 {
		v >>= uint(bits - 8)
	} else if bits < 8 {
		v <<= uint(8 - bits)
	}
	return uint8(v), true
}

// oscHyperlink handles OSC 8 ; params ; uri.
func (d *Decoder) oscHyperlink(rest string) {
	parts := strings.SplitN(rest, ";", 2)
	if len(parts) != 2 {
		return
	}
	params, uri := parts[0], parts[1]
	if uri == "" {
		d.handler.SetHyperlink(nil)
		return
	}
	id := ""
	for _, kv := range strings.Split(params, ":") {
		if strings.HasPrefix(kv, "id=") {
			id = kv[3:]
		}
	}
	d.handler.SetHyperlink(&Hyperlink{ID: id, URI: uri})
}

// oscClipboard handles OSC 52 ; clipboard ; base64-data.
func (d *Decoder) oscClipboard(rest string) {
	parts := strings.SplitN(rest, ";", 2)
	if len(parts) != 2 {
		return
	}
	var clipboard byte = 'c'
	if len(parts[0]) > 0 {
		clipboard = parts[0][0]
	}
	if parts[1] == "?" {
		d.handler.ClipboardLoad(clipboard, "")
		return
	}
	d.handler.ClipboardStore(clipboard, []byte(parts[1]))
}

func (d *Decoder) oscResetColor(rest string) {
	if rest == "" {
		d.handler.ResetColor(-1)
		return
	}
	for _, f := range strings.Split(rest, ";") {
		if idx, err := strconv.Atoi(f); err == nil {
			d.handler.ResetColor(idx)
		}
	}
}
