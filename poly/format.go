package poly

import (
	"strconv"
	"strings"
)

// FormatCanonical renders p in the literal grammar accepted by Parse,
// monomials in descending exponent order: "(1,2)+(3,0)".
func FormatCanonical(p Poly) string {
	mustPoly(p)

	bldr := strings.Builder{}
	writePoly(&bldr, p)

	return bldr.String()
}

func (c Coeff) String() string {
	return strconv.FormatInt(int64(c), 10)
}

func (s Sum) String() string {
	return FormatCanonical(s)
}

func writePoly(bldr *strings.Builder, p Poly) {
	switch p := p.(type) {
	case Coeff:
		bldr.WriteString(strconv.FormatInt(int64(p), 10))
	case Sum:
		for i, m := range p.monos {
			if i != 0 {
				bldr.WriteByte('+')
			}

			bldr.WriteByte('(')
			writePoly(bldr, m.p)
			bldr.WriteByte(',')
			bldr.WriteString(strconv.Itoa(m.exp))
			bldr.WriteByte(')')
		}
	}
}
