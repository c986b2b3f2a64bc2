package field

import (
	"errors"
	"math/big"

	"github.com/tuneinsight/lattigo/v6/ring"
	"lukechampine.com/uint128"
)

// Field is the arithmetic the Evaluator needs.
type Field interface {
	Add(a, b uint64) uint64
	Mul(a, b uint64) uint64
	Pow(base, exp uint64) uint64

	Neg(a uint64) uint64
	Reduce(a uint64) uint64
	// ReduceSigned maps a signed integer to its residue.
	ReduceSigned(a int64) uint64

	Modulus() uint64
	Generator() uint64
}

type PrimeField struct {
	prime     uint64
	generator uint64
}

var (
	errPrimeTooLarge = errors.New("supporting up to 63-bit prime")
	errPrimeTooSmall = errors.New("prime must be greater than 2")
	errNotPrime      = errors.New("this package only support prime fields. please use a prime order")
)

const maxBitUsage = 63

// DefaultPrime is a prime just below 2^63.
const DefaultPrime = 9191248642791733759

// NewPrimeField checks primality and finds a generator of the multiplicative
// group.
func NewPrimeField(prime uint64) (*PrimeField, error) {
	if prime > (1 << maxBitUsage) {
		return nil, errPrimeTooLarge
	}

	if prime <= 2 {
		return nil, errPrimeTooSmall
	}

	// Baillie-PSW is exact below 2^64.
	if !new(big.Int).SetUint64(prime).ProbablyPrime(0) {
		return nil, errNotPrime
	}

	g, _, err := ring.PrimitiveRoot(prime, nil)
	if err != nil {
		return nil, err
	}

	return &PrimeField{
		prime:     prime,
		generator: g,
	}, nil
}

func (f *PrimeField) Modulus() uint64 {
	return f.prime
}

func (f *PrimeField) Generator() uint64 {
	return f.generator
}

func (f *PrimeField) Reduce(val uint64) uint64 {
	return val % f.prime
}

func (f *PrimeField) ReduceSigned(val int64) uint64 {
	if val >= 0 {
		return uint64(val) % f.prime
	}

	// uint64(-val) is the magnitude, also for math.MinInt64.
	return f.Neg(uint64(-val) % f.prime)
}

func (f *PrimeField) Add(a, b uint64) uint64 {
	tmp := f.Reduce(a) + f.Reduce(b) // can't overflow since adding two integers smaller than 2^63.
	if tmp >= f.prime {
		tmp -= f.prime
	}

	return tmp
}

// Mul returns a * b (mod field prime).
func (f *PrimeField) Mul(a, b uint64) uint64 {
	if a == 0 || b == 0 {
		return 0
	}

	return fieldMul(a, b, f.prime)
}

func fieldMul(a, b uint64, mod uint64) uint64 {
	return uint128.From64(a).Mul64(b).Mod64(mod)
}

// https://en.wikipedia.org/wiki/Exponentiation_by_squaring
func (f *PrimeField) Pow(base, exp uint64) uint64 {
	mod := f.prime
	base %= mod

	x := uint64(1)
	for exp > 0 {
		if exp%2 == 1 {
			x = fieldMul(x, base, mod)
		}

		base = fieldMul(base, base, mod)
		exp /= 2
	}

	return x % mod
}

func (f *PrimeField) Neg(e uint64) uint64 {
	e = f.Reduce(e)
	if e == 0 {
		return 0
	}

	return f.prime - e
}

// Sub is not part of Field; tests use it to state expected fingerprints.
func (f *PrimeField) Sub(a, b uint64) uint64 {
	a, b = f.Reduce(a), f.Reduce(b)
	if a < b {
		return f.prime - (b - a)
	}

	return a - b
}
