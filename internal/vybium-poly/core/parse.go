package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vybium/vybium-poly/internal/vybium-poly/field"
)

type term struct {
	coefficient field.Complex
	power       int
}

// Parse reads a polynomial in the notation produced by Format. Repeated powers
// are summed.
func (r *Ring) Parse(s string) (*Polynomial, error) {
	terms, err := r.parseTerms(s)
	if err != nil {
		return nil, newError(ErrInvalidInput, err, "cannot parse polynomial %q", s)
	}

	degree := -1
	for _, t := range terms {
		if t.power > degree {
			degree = t.power
		}
	}

	p, err := r.alloc(degree)
	if err != nil {
		return nil, err
	}
	for _, t := range terms {
		p.coefficients[t.power] = p.coefficients[t.power].Add(t.coefficient)
	}
	p.size = degree + 1
	return p.finish(), nil
}

func (r *Ring) parseTerms(s string) ([]term, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("empty input")
	}

	var terms []term
	negative := false
	for {
		end, nextNegative := nextSeparator(s)
		chunk := s
		if end >= 0 {
			chunk = s[:end]
		}

		t, err := r.parseTerm(chunk)
		if err != nil {
			return nil, err
		}
		if negative {
			t.coefficient = t.coefficient.Neg()
		}
		terms = append(terms, t)

		if end < 0 {
			return terms, nil
		}
		s = s[end+3:]
		negative = nextNegative
	}
}

// nextSeparator finds the first " + " or " - " outside parentheses.
func nextSeparator(s string) (int, bool) {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ' ':
			if depth == 0 && i+2 < len(s) && s[i+2] == ' ' && (s[i+1] == '+' || s[i+1] == '-') {
				return i, s[i+1] == '-'
			}
		}
	}
	return -1, false
}

// parseTerm reads "c", "c * X", "c * X**n", "X" or "X**n".
func (r *Ring) parseTerm(s string) (term, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return term{}, errors.New("empty term")
	}

	idx := strings.Index(s, r.variable)
	if idx < 0 {
		c, err := field.Parse(s, r.unit)
		if err != nil {
			return term{}, err
		}
		return term{coefficient: c}, nil
	}

	power := 1
	if suffix := strings.TrimSpace(s[idx+len(r.variable):]); suffix != "" {
		if !strings.HasPrefix(suffix, "**") {
			return term{}, fmt.Errorf("unexpected %q after %s", suffix, r.variable)
		}
		n, err := strconv.Atoi(strings.TrimSpace(suffix[2:]))
		if err != nil || n < 0 {
			return term{}, fmt.Errorf("invalid exponent in %q", s)
		}
		power = n
	}

	prefix := strings.TrimSpace(s[:idx])
	switch {
	case prefix == "" || prefix == "+":
		return term{coefficient: field.One, power: power}, nil
	case prefix == "-":
		return term{coefficient: field.One.Neg(), power: power}, nil
	case strings.HasSuffix(prefix, "*"):
		c, err := field.Parse(strings.TrimSuffix(prefix, "*"), r.unit)
		if err != nil {
			return term{}, err
		}
		return term{coefficient: c, power: power}, nil
	}
	return term{}, fmt.Errorf("missing '*' between coefficient and %s in %q", r.variable, s)
}
