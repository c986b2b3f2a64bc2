package poly

import (
	"math"
	"strconv"
)

const (
	MinCoeff = math.MinInt64
	MaxCoeff = math.MaxInt64

	// MinExp and MaxExp bound exponents read by ParseExp and given to NewMono.
	// Mul and Compose may go past MaxExp.
	MinExp = 0
	MaxExp = math.MaxInt32
)

// ParseCoeff reads a signed decimal integer from the start of s.
// It returns the value and the index just past the last consumed digit.
// ok is false, and end is 0, if s does not start with a number or the number
// does not fit an int64.
//
// A leading '+' is rejected. A '0' is a complete number: for "007" only the
// first zero is consumed.
func ParseCoeff(s string) (c int64, end int, ok bool) {
	end, ok = scanNumber(s, true)
	if !ok {
		return 0, 0, false
	}

	c, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0, 0, false
	}

	return c, end, true
}

// ParseExp reads an exponent in [MinExp, MaxExp] from the start of s.
func ParseExp(s string) (exp int, end int, ok bool) {
	u, end, ok := parseUnsigned(s)
	if !ok || u > MaxExp {
		return 0, 0, false
	}

	return int(u), end, true
}

// ParseDeg reads a variable index, any uint64, from the start of s.
func ParseDeg(s string) (idx uint64, end int, ok bool) {
	return parseUnsigned(s)
}

func parseUnsigned(s string) (uint64, int, bool) {
	end, ok := scanNumber(s, false)
	if !ok {
		return 0, 0, false
	}

	u, err := strconv.ParseUint(s[:end], 10, 64)
	if err != nil {
		return 0, 0, false
	}

	return u, end, true
}

// scanNumber finds the end of the decimal literal starting s.
func scanNumber(s string, signed bool) (int, bool) {
	i := 0
	if signed && i < len(s) && s[i] == '-' {
		i++
	}

	if i >= len(s) {
		return 0, false
	}

	// no leading zeros.
	if s[i] == '0' {
		return i + 1, true
	}

	if !isDigit(s[i]) {
		return 0, false
	}

	for i < len(s) && isDigit(s[i]) {
		i++
	}

	return i, true
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
