package poly

import (
	"cmp"
	"slices"
)

// AddMonos sums monomials of one variable into a canonical polynomial.
// The input may be in any order, may repeat exponents and may contain zero
// coefficients. The slice itself is not modified.
//
// Every operation that builds a monomial list goes through here.
func AddMonos(monos []Mono) Poly {
	live := make([]Mono, 0, len(monos))
	for _, m := range monos {
		mustPoly(m.p)

		if !m.p.IsZero() {
			live = append(live, m)
		}
	}

	// stable so equal exponents are merged in input order.
	slices.SortStableFunc(live, func(a, b Mono) int {
		return cmp.Compare(b.exp, a.exp)
	})

	merged := live[:0]
	for i := 0; i < len(live); {
		exp := live[i].exp
		acc := live[i].p

		j := i + 1
		for ; j < len(live) && live[j].exp == exp; j++ {
			acc = Add(acc, live[j].p)
		}

		if !acc.IsZero() {
			merged = append(merged, Mono{exp: exp, p: acc})
		}

		i = j
	}

	switch {
	case len(merged) == 0:
		return Zero()
	case len(merged) == 1 && merged[0].exp == 0 && merged[0].p.IsCoeff():
		return merged[0].p
	}

	return Sum{monos: slices.Clip(merged)}
}

// isCanonical checks the representation invariants recursively.
func isCanonical(p Poly) bool {
	s, ok := p.(Sum)
	if !ok {
		return p != nil
	}

	if len(s.monos) == 0 {
		return false
	}

	if len(s.monos) == 1 && s.monos[0].exp == 0 && s.monos[0].p.IsCoeff() {
		return false
	}

	for i, m := range s.monos {
		if m.p == nil || m.p.IsZero() || !isCanonical(m.p) {
			return false
		}

		if i > 0 && s.monos[i-1].exp <= m.exp {
			return false
		}
	}

	return true
}
