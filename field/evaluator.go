package field

import (
	"sync"

	"github.com/jonathanmweiss/go-polycalc/poly"
)

type pointCache struct {
	sync.Locker
	points []uint64
}

func newPointCache() *pointCache {
	return &pointCache{
		Locker: &sync.Mutex{},
	}
}

// loadPoints returns the first n cached points, extending the cache with
// next when it is too short.
func (c *pointCache) loadPoints(n int, next func(prev uint64) uint64) []uint64 {
	c.Lock()
	defer c.Unlock()

	for len(c.points) < n {
		prev := uint64(1)
		if len(c.points) > 0 {
			prev = c.points[len(c.points)-1]
		}

		c.points = append(c.points, next(prev))
	}

	return c.points[:n:n]
}

/*
Evaluator maps integer polynomials into GF(p) by evaluating x_i at g^(i+1),
g being the field generator.

The map is a ring homomorphism: equal polynomials share a fingerprint and
Fingerprint(p*q) = Fingerprint(p)*Fingerprint(q), as long as no int64
coefficient wrapped around while computing p*q.
*/
type Evaluator struct {
	cache *pointCache

	f Field
}

func NewEvaluator(f Field) *Evaluator {
	return &Evaluator{
		f:     f,
		cache: newPointCache(),
	}
}

func (e *Evaluator) Field() Field {
	return e.f
}

// EvaluationPoints returns the points used for x_0, ..., x_{n-1}.
func (e *Evaluator) EvaluationPoints(n int) []uint64 {
	g := e.f.Generator()

	return e.cache.loadPoints(n, func(prev uint64) uint64 {
		return e.f.Mul(prev, g)
	})
}

func (e *Evaluator) Fingerprint(p poly.Poly) uint64 {
	xs := e.EvaluationPoints(numVariables(p))

	return e.eval(p, xs)
}

func (e *Evaluator) eval(p poly.Poly, xs []uint64) uint64 {
	s, ok := p.(poly.Sum)
	if !ok {
		return e.f.ReduceSigned(int64(p.(poly.Coeff)))
	}

	fld := e.f
	res := uint64(0)
	for _, m := range s.Monos() {
		inner := e.eval(m.Poly(), xs[1:])
		res = fld.Add(res, fld.Mul(inner, fld.Pow(xs[0], uint64(m.Exp()))))
	}

	return res
}

// numVariables is the nesting depth of p.
func numVariables(p poly.Poly) int {
	s, ok := p.(poly.Sum)
	if !ok {
		return 0
	}

	n := 0
	for _, m := range s.Monos() {
		n = max(n, numVariables(m.Poly()))
	}

	return n + 1
}
