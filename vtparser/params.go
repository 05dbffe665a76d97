package vtparser

// maxParams bounds the CSI parameter buffer per the VT500 parameter rules:
// at most 16 parameters, each clamped rather than rejected on overflow.
const maxParams = 16

// maxParamValue is the clamp ceiling for a single parameter digit run.
const maxParamValue = 9999

// paramList accumulates CSI parameters, including colon-separated
// subparameters (needed for extended SGR color operands and underline
// substyles). Each top-level parameter is a slice of subvalues; a plain
// parameter like "38" has one subvalue, while "38:2:255:0:0" has five.
type paramList struct {
	values  [maxParams][]int
	count   int
	current []int
}

func newParamList() *paramList {
	p := &paramList{}
	p.current = p.values[0][:0]
	return p
}

func (p *paramList) reset() {
	p.count = 0
	for i := range p.values {
		p.values[i] = p.values[i][:0]
	}
	p.current = p.values[0][:0]
}

// digit folds one decimal digit into the subvalue currently being built.
func (p *paramList) digit(d byte) {
	if p.count >= maxParams {
		return
	}
	if len(p.current) == 0 {
		p.current = append(p.current, 0)
	}
	v := p.current[len(p.current)-1]*10 + int(d-'0')
	if v > maxParamValue {
		v = maxParamValue
	}
	p.current[len(p.current)-1] = v
}

// subSeparator starts a new subvalue within the current parameter (":").
func (p *paramList) subSeparator() {
	if p.count >= maxParams {
		return
	}
	p.current = append(p.current, 0)
}

// separator commits the current parameter and starts a new one (";").
func (p *paramList) separator() {
	p.commit()
}

// commit finalizes the in-progress parameter, defaulting an empty one to a
// single zero-valued subparameter.
func (p *paramList) commit() {
	if p.count >= maxParams {
		return
	}
	if len(p.current) == 0 {
		p.current = append(p.current, 0)
	}
	p.values[p.count] = p.current
	p.count++
	if p.count < maxParams {
		p.current = p.values[p.count][:0]
	}
}

// finish returns the number of committed top-level parameters, committing any
// in-progress parameter first.
func (p *paramList) finish() int {
	if len(p.current) > 0 || p.count == 0 {
		p.commit()
	}
	return p.count
}

// get returns the primary value of parameter i, or def if absent/zero (the
// CSI convention: an omitted or zero parameter usually means "default").
func (p *paramList) get(i, def int) int {
	if i < 0 || i >= p.count || len(p.values[i]) == 0 {
		return def
	}
	if p.values[i][0] == 0 {
		return def
	}
	return p.values[i][0]
}

// getRaw returns the primary value of parameter i without default
// substitution, or -1 if absent.
func (p *paramList) getRaw(i int) int {
	if i < 0 || i >= p.count || len(p.values[i]) == 0 {
		return -1
	}
	return p.values[i][0]
}

// subs returns the full subvalue slice for parameter i.
func (p *paramList) subs(i int) []int {
	if i < 0 || i >= p.count {
		return nil
	}
	return p.values[i]
}
