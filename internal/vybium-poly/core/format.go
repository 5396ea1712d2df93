package core

import (
	"strconv"
	"strings"
)

// Format renders p with the ring's variable and imaginary unit.
//
// Terms are listed in ascending degree, e.g. "-1 + 3 * X**2" or
// "-1+2.5j + (1+3j) * X". The zero polynomial renders as "0". Parse accepts
// every string produced here and returns an equal polynomial.
func (r *Ring) Format(p *Polynomial) string {
	return format(p, r.variable, r.unit)
}

func format(p *Polynomial, variable, unit string) string {
	if p.IsZero() {
		return "0"
	}

	var b strings.Builder
	for i := 0; i < p.size; i++ {
		c := p.coefficients[i]
		if c.IsZero() {
			continue
		}

		if b.Len() > 0 {
			if c.Real <= 0 && c.Imag <= 0 {
				b.WriteString(" - ")
				c = c.Neg()
			} else {
				b.WriteString(" + ")
			}
		}

		omitted := false
		switch {
		case i > 0 && c.IsOne():
			omitted = true
		case i > 0 && c.Real != 0 && c.Imag != 0:
			b.WriteString("(" + c.Format(unit) + ")")
		default:
			b.WriteString(c.Format(unit))
		}

		if i == 0 {
			continue
		}
		if !omitted {
			b.WriteString(" * ")
		}
		b.WriteString(variable)
		if i > 1 {
			b.WriteString("**" + strconv.Itoa(i))
		}
	}
	return b.String()
}
