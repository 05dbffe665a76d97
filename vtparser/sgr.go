package vtparser

// dispatchSGR walks a CSI ... m parameter list and emits one
// SetTerminalCharAttribute call per attribute, mirroring how the rest of
// the handler surface dispatches one semantic operation per call. Extended
// color operands (38/48/58, both ";"-separated and ":"-subparameter form)
// consume the following parameter(s) as part of the same attribute.
func (d *Decoder) dispatchSGR() {
	n := d.params.finish()
	if n == 0 {
		d.handler.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeReset})
		return
	}

	i := 0
	for i < n {
		subs := d.params.subs(i)
		code := 0
		if len(subs) > 0 {
			code = subs[0]
		}

		switch {
		case code == 0:
			d.handler.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeReset})
		case code == 1:
			d.handler.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeBold})
		case code == 2:
			d.handler.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeDim})
		case code == 3:
			d.handler.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeItalic})
		case code == 4:
			sub := 1
			if len(subs) > 1 {
				sub = subs[1]
			}
			d.handler.SetTerminalCharAttribute(TerminalCharAttribute{Attr: underlineAttrFor(sub)})
		case code == 5:
			d.handler.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeBlinkSlow})
		case code == 6:
			d.handler.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeBlinkFast})
		case code == 7:
			d.handler.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeReverse})
		case code == 8:
			d.handler.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeHidden})
		case code == 9:
			d.handler.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeStrike})
		case code == 21:
			d.handler.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeDoubleUnderline})
		case code == 22:
			d.handler.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeCancelBoldDim})
		case code == 23:
			d.handler.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeCancelItalic})
		case code == 24:
			d.handler.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeCancelUnderline})
		case code == 25:
			d.handler.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeCancelBlink})
		case code == 27:
			d.handler.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeCancelReverse})
		case code == 28:
			d.handler.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeCancelHidden})
		case code == 29:
			d.handler.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeCancelStrike})
		case code >= 30 && code <= 37:
			nc := NamedColor(code - 30)
			d.handler.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeForeground, NamedColor: &nc})
		case code == 38:
			attr, consumed := d.extendedColor(CharAttributeForeground, i, subs)
			d.handler.SetTerminalCharAttribute(attr)
			i += consumed
		case code == 39:
			d.handler.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeForeground})
		case code >= 40 && code <= 47:
			nc := NamedColor(code - 40)
			d.handler.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeBackground, NamedColor: &nc})
		case code == 48:
			attr, consumed := d.extendedColor(CharAttributeBackground, i, subs)
			d.handler.SetTerminalCharAttribute(attr)
			i += consumed
		case code == 49:
			d.handler.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeBackground})
		case code == 58:
			attr, consumed := d.extendedColor(CharAttributeUnderlineColor, i, subs)
			d.handler.SetTerminalCharAttribute(attr)
			i += consumed
		case code == 59:
			d.handler.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeUnderlineColor})
		case code >= 90 && code <= 97:
			nc := NamedColor(code - 90 + 8)
			d.handler.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeForeground, NamedColor: &nc})
		case code >= 100 && code <= 107:
			nc := NamedColor(code - 100 + 8)
			d.handler.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeBackground, NamedColor: &nc})
		}
		i++
	}
}

func underlineAttrFor(sub int) CharAttributeType {
	switch sub {
	case 0:
		return CharAttributeCancelUnderline
	case 2:
		return CharAttributeDoubleUnderline
	case 3:
		return CharAttributeCurlyUnderline
	case 4:
		return CharAttributeDottedUnderline
	case 5:
		return CharAttributeDashedUnderline
	default:
		return CharAttributeUnderline
	}
}

// extendedColor parses a 38/48/58 operand starting at parameter index i,
// supporting both the colon-subparameter form (38:2:r:g:b, 38:5:n) and the
// legacy semicolon form (38;2;r;g;b, 38;5;n) which spreads the operand
// across the following top-level parameters. It returns the attribute and
// how many extra top-level parameters (beyond i itself) were consumed.
func (d *Decoder) extendedColor(kind CharAttributeType, i int, subs []int) (TerminalCharAttribute, int) {
	if len(subs) > 1 {
		switch subs[1] {
		case 2:
			if len(subs) >= 5 {
				rgb := RGBColor{R: clampByte(subs[2]), G: clampByte(subs[3]), B: clampByte(subs[4])}
				return TerminalCharAttribute{Attr: kind, RGBColor: &rgb}, 0
			}
		case 5:
			if len(subs) >= 3 {
				idx := IndexedColor{Index: clampByte(subs[2])}
				return TerminalCharAttribute{Attr: kind, IndexedColor: &idx}, 0
			}
		}
		return TerminalCharAttribute{Attr: kind}, 0
	}

	mode := d.params.get(i+1, -1)
	switch mode {
	case 2:
		r := d.params.get(i+2, 0)
		g := d.params.get(i+3, 0)
		b := d.params.get(i+4, 0)
		rgb := RGBColor{R: clampByte(r), G: clampByte(g), B: clampByte(b)}
		return TerminalCharAttribute{Attr: kind, RGBColor: &rgb}, 4
	case 5:
		idx := IndexedColor{Index: clampByte(d.params.get(i+2, 0))}
		return TerminalCharAttribute{Attr: kind, IndexedColor: &idx}, 2
	default:
		return TerminalCharAttribute{Attr: kind}, 0
	}
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
