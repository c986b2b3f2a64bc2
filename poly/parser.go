package poly

import (
	"errors"
	"fmt"
)

var (
	ErrWrongPoly          = errors.New("wrong poly")
	errUnbalancedBrackets = fmt.Errorf("%w: unbalanced brackets", ErrWrongPoly)
)

/*
Parse reads a polynomial literal. The whole string must be consumed.

	poly := coeff | mono ('+' mono)*
	mono := '(' poly ',' exp ')'

coeff is a decimal int64, exp a decimal in [MinExp, MaxExp]. No whitespace is
allowed anywhere. The result is canonical.
*/
func Parse(s string) (Poly, error) {
	if !hasBalancedBrackets(s) {
		return nil, errUnbalancedBrackets
	}

	p, end, ok := ParsePrefix(s)
	if !ok {
		return nil, ErrWrongPoly
	}

	if end != len(s) {
		return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrWrongPoly, s[end], end)
	}

	return p, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(s string) Poly {
	p, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("poly: parsing %q: %v", s, err))
	}

	return p
}

// ParsePrefix reads the longest polynomial literal at the start of s and
// returns it with the index just past it. Trailing input is left to the caller.
func ParsePrefix(s string) (Poly, int, bool) {
	return parsePoly(s, 0)
}

// parsePoly tries the constant production first, then a '+' separated list of
// monomials. On failure nothing is consumed.
func parsePoly(s string, pos int) (Poly, int, bool) {
	if c, n, ok := ParseCoeff(s[pos:]); ok {
		return Coeff(c), pos + n, true
	}

	m, end, ok := parseMono(s, pos)
	if !ok {
		return nil, pos, false
	}

	monos := []Mono{m}
	for end < len(s) && s[end] == '+' {
		m, next, ok := parseMono(s, end+1)
		if !ok {
			return nil, pos, false
		}

		monos = append(monos, m)
		end = next
	}

	return AddMonos(monos), end, true
}

// parseMono reads "(poly,exp)". On failure nothing is consumed.
func parseMono(s string, pos int) (Mono, int, bool) {
	i := pos
	if !hasByteAt(s, i, '(') {
		return Mono{}, pos, false
	}

	p, i, ok := parsePoly(s, i+1)
	if !ok || !hasByteAt(s, i, ',') {
		return Mono{}, pos, false
	}

	exp, n, ok := ParseExp(s[i+1:])
	if !ok {
		return Mono{}, pos, false
	}

	i += 1 + n
	if !hasByteAt(s, i, ')') {
		return Mono{}, pos, false
	}

	return Mono{exp: exp, p: p}, i + 1, true
}

func hasByteAt(s string, i int, c byte) bool {
	return i < len(s) && s[i] == c
}

// hasBalancedBrackets is a cheap global check run before parsing.
func hasBalancedBrackets(s string) bool {
	balance := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			balance++
		case ')':
			balance--
			if balance < 0 {
				return false
			}
		}
	}

	return balance == 0
}
