package poly

// Compose substitutes qs[i] for x_i. Variables without a substitute, i.e.
// x_i for i >= len(qs), are replaced by zero. Like Mul, the result may carry
// exponents above MaxExp.
func Compose(p Poly, qs []Poly) Poly {
	mustPoly(p)

	for _, q := range qs {
		mustPoly(q)
	}

	return compose(p, qs)
}

func compose(p Poly, qs []Poly) Poly {
	s, ok := p.(Sum)
	if !ok {
		return p
	}

	sub, rest := Zero(), []Poly(nil)
	if len(qs) > 0 {
		sub, rest = qs[0], qs[1:]
	}

	s.mustCanonical()

	// the head carries the highest exponent.
	powers := powersOfTwo(sub, s.monos[0].exp)

	res := Zero()
	for _, m := range s.monos {
		xPow := powerFromSquares(powers, m.exp)
		res = Add(res, Mul(compose(m.p, rest), xPow))
	}

	return res
}

// powersOfTwo returns q^(2^0), q^(2^1), ... up to the largest power of two
// not exceeding maxExp.
func powersOfTwo(q Poly, maxExp int) []Poly {
	powers := []Poly{q}
	for k := 1; 1<<k <= maxExp; k++ {
		prev := powers[k-1]
		powers = append(powers, Mul(prev, prev))
	}

	return powers
}

// powerFromSquares multiplies the squares selected by the bits of exp.
func powerFromSquares(powers []Poly, exp int) Poly {
	res := Poly(Coeff(1))
	for k := 0; k < len(powers) && exp>>k > 0; k++ {
		if exp&(1<<k) != 0 {
			res = Mul(res, powers[k])
		}
	}

	return res
}
