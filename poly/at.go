package poly

// At substitutes x for x_0. The result is a polynomial in x_1, x_2, ...
// renumbered from x_0. Powers of x wrap around like Mul.
func At(p Poly, x int64) Poly {
	mustPoly(p)

	s, ok := p.(Sum)
	if !ok {
		return p
	}

	res := Zero()
	for _, m := range s.monos {
		res = Add(res, scale(m.p, pow(x, m.exp)))
	}

	return res
}

// https://en.wikipedia.org/wiki/Exponentiation_by_squaring
func pow(base int64, exp int) int64 {
	x := int64(1)
	for exp > 0 {
		if exp%2 == 1 {
			x *= base
		}

		base *= base
		exp /= 2
	}

	return x
}
