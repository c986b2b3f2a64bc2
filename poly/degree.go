package poly

func (c Coeff) Degree() int {
	if c == 0 {
		return -1
	}

	return 0
}

func (s Sum) Degree() int {
	s.mustCanonical()

	deg := 0
	for _, m := range s.monos {
		deg = max(deg, m.exp+m.p.Degree())
	}

	return deg
}

func (c Coeff) DegreeBy(uint64) int {
	return c.Degree()
}

func (s Sum) DegreeBy(idx uint64) int {
	s.mustCanonical()

	return s.degreeBy(0, idx)
}

// mustCanonical rejects a zero-value Sum built outside AddMonos.
func (s Sum) mustCanonical() {
	if len(s.monos) == 0 {
		panic("non-canonical polynomial: empty Sum")
	}
}

// degreeBy walks down to depth idx. Below that depth only the presence of a
// term matters.
func (s Sum) degreeBy(depth, idx uint64) int {
	if depth == idx {
		// monomials are sorted, the head has the highest exponent.
		return s.monos[0].exp
	}

	deg := 0
	for _, m := range s.monos {
		if sub, ok := m.p.(Sum); ok {
			deg = max(deg, sub.degreeBy(depth+1, idx))
		}
	}

	return deg
}
