package poly

// Add returns p + q.
//
// Coefficient arithmetic is int64 two's complement: a sum that does not fit
// wraps around silently.
func Add(p, q Poly) Poly {
	mustPoly(p)
	mustPoly(q)

	switch p := p.(type) {
	case Coeff:
		switch q := q.(type) {
		case Coeff:
			return p + q
		case Sum:
			return addCoeff(q, p)
		}
	case Sum:
		switch q := q.(type) {
		case Coeff:
			return addCoeff(p, q)
		case Sum:
			all := make([]Mono, 0, len(p.monos)+len(q.monos))
			all = append(all, p.monos...)
			all = append(all, q.monos...)

			return AddMonos(all)
		}
	}

	panic("unknown polynomial type")
}

// addCoeff treats c as the x^0 monomial of s.
func addCoeff(s Sum, c Coeff) Poly {
	if c == 0 {
		return s
	}

	all := make([]Mono, 0, len(s.monos)+1)
	all = append(all, s.monos...)
	all = append(all, Mono{exp: 0, p: c})

	return AddMonos(all)
}

// Mul returns p * q. Coefficient products wrap around like Add.
//
// Exponents add exactly, so a product may carry an exponent above MaxExp.
// Such a polynomial formats fine but Parse rejects the text.
func Mul(p, q Poly) Poly {
	mustPoly(p)
	mustPoly(q)

	switch p := p.(type) {
	case Coeff:
		switch q := q.(type) {
		case Coeff:
			return p * q
		case Sum:
			return scale(q, int64(p))
		}
	case Sum:
		switch q := q.(type) {
		case Coeff:
			return scale(p, int64(q))
		case Sum:
			return mulSums(p, q)
		}
	}

	panic("unknown polynomial type")
}

// mulSums multiplies term by term. Exponents of the cross product may repeat,
// AddMonos merges them.
func mulSums(p, q Sum) Poly {
	all := make([]Mono, 0, len(p.monos)*len(q.monos))
	for _, a := range p.monos {
		for _, b := range q.monos {
			all = append(all, Mono{
				exp: a.exp + b.exp,
				p:   Mul(a.p, b.p),
			})
		}
	}

	return AddMonos(all)
}

// scale multiplies every coefficient of p by c. A nonzero coefficient may
// still become zero through wraparound, so the result is renormalized.
func scale(p Poly, c int64) Poly {
	if c == 0 {
		return Zero()
	}

	switch p := p.(type) {
	case Coeff:
		return Coeff(int64(p) * c)
	case Sum:
		scaled := make([]Mono, len(p.monos))
		for i, m := range p.monos {
			scaled[i] = Mono{exp: m.exp, p: scale(m.p, c)}
		}

		return AddMonos(scaled)
	}

	panic("unknown polynomial type")
}

// Neg returns -p.
func Neg(p Poly) Poly {
	mustPoly(p)

	return scale(p, -1)
}

// Sub returns p - q.
func Sub(p, q Poly) Poly {
	return Add(p, Neg(q))
}
