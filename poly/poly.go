package poly

/*
Poly is a sparse polynomial in the variables x_0, x_1, ... with int64
coefficients. It is either a Coeff (a constant) or a Sum of monomials in the
variable of the current nesting depth, each monomial carrying a Poly in the
next variable as its coefficient.

Every Poly returned by this package is canonical:
  - monomials of a Sum are sorted by strictly decreasing exponent,
  - no monomial has a zero coefficient,
  - a Sum is never a single x^0 monomial over a Coeff (that is a Coeff),
  - zero is always Coeff(0).

Values are immutable. Operations never modify their operands.
*/
type Poly interface {
	IsCoeff() bool
	IsZero() bool

	// Degree is the total degree, -1 for the zero polynomial.
	Degree() int
	// DegreeBy is the degree in variable x_idx, -1 for the zero polynomial.
	DegreeBy(idx uint64) int

	Equals(q Poly) bool
	Clone() Poly
	String() string

	isPoly()
}

// Coeff is a constant polynomial.
type Coeff int64

// Sum is a non-constant polynomial: a sum of monomials in one variable.
// It can only be built through AddMonos.
type Sum struct {
	monos []Mono
}

// Mono is the term p * x_i^exp, where x_i is the variable at the depth the
// monomial appears.
type Mono struct {
	exp int
	p   Poly
}

func Zero() Poly { return Coeff(0) }

func NewCoeff(c int64) Poly { return Coeff(c) }

// NewMono panics unless exp is in [MinExp, MaxExp].
func NewMono(p Poly, exp int) Mono {
	if p == nil {
		panic("nil polynomial")
	}

	if exp < 0 || exp > MaxExp {
		panic("exponent out of range")
	}

	return Mono{exp: exp, p: p}
}

func (m Mono) Exp() int { return m.exp }

func (m Mono) Poly() Poly { return m.p }

func (m Mono) Clone() Mono {
	return Mono{exp: m.exp, p: m.p.Clone()}
}

func (Coeff) isPoly() {}
func (Sum) isPoly()   {}

func (c Coeff) IsCoeff() bool { return true }
func (c Coeff) IsZero() bool  { return c == 0 }

// Sum is never zero in canonical form.
func (s Sum) IsCoeff() bool { return false }
func (s Sum) IsZero() bool  { return false }

func (c Coeff) Clone() Poly { return c }

func (s Sum) Clone() Poly {
	monos := make([]Mono, len(s.monos))
	for i, m := range s.monos {
		monos[i] = m.Clone()
	}

	return Sum{monos: monos}
}

// Monos returns a copy of the monomials, highest exponent first.
func (s Sum) Monos() []Mono {
	monos := make([]Mono, len(s.monos))
	copy(monos, s.monos)

	return monos
}

func (s Sum) Len() int { return len(s.monos) }

func (c Coeff) Equals(q Poly) bool {
	qc, ok := q.(Coeff)

	return ok && qc == c
}

func (s Sum) Equals(q Poly) bool {
	qs, ok := q.(Sum)
	if !ok || len(s.monos) != len(qs.monos) {
		return false
	}

	for i := range s.monos {
		if s.monos[i].exp != qs.monos[i].exp {
			return false
		}

		if !s.monos[i].p.Equals(qs.monos[i].p) {
			return false
		}
	}

	return true
}

// Equal reports whether p and q are the same polynomial.
func Equal(p, q Poly) bool {
	mustPoly(p)
	mustPoly(q)

	return p.Equals(q)
}

func mustPoly(p Poly) {
	if p == nil {
		panic("nil polynomial")
	}
}
