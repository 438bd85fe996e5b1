package numtheory

import (
	"errors"
	"fmt"
)

var (
	// ErrNotPrime is returned when a totient precondition needs a prime and
	// got something else.
	ErrNotPrime = errors.New("not a prime number")

	// ErrBadProduct is returned when the claimed modulus is not the product
	// of the supplied factors.
	ErrBadProduct = errors.New("modulus is not the product of p and q")
)

// IsPrime reports whether x has no divisor strictly between 1 and x.
//
// Trial division over the whole range. Because no candidate divisor exists
// for x <= 2, the values 0, 1 and every negative input come out prime;
// callers needing the textbook definition must screen those themselves.
func IsPrime(x int64) bool {
	for i := int64(2); i < x; i++ {
		if x%i == 0 {
			return false
		}
	}
	return true
}

// Divisors returns every i in [1, x] that divides x, in ascending order.
// x must be >= 1; the result for smaller inputs is undefined.
func Divisors(x int64) []int64 {
	var out []int64
	for i := int64(1); i <= x; i++ {
		if x%i == 0 {
			out = append(out, i)
		}
	}
	return out
}

// GCD returns the greatest common divisor of a and b.
func GCD(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		a = -a
	}
	return a
}

// Coprime reports whether gcd(a, b) == 1.
func Coprime(a, b int64) bool {
	return GCD(a, b) == 1
}

// CoprimePositional is the legacy coprimality check kept for compatibility.
//
// Anything is coprime with 1. Otherwise the two divisor lists are walked in
// lockstep from index 1 (index 0 is the shared divisor 1) up to the shorter
// length, and the pair counts as coprime unless some same-indexed entries are
// equal. Comparing positions rather than intersecting the sets means the
// check can accept pairs that share a divisor, e.g. (3, 3120). Use Coprime
// when the answer has to be right.
func CoprimePositional(a, b int64) bool {
	if a == 1 || b == 1 {
		return true
	}
	da := Divisors(a)
	db := Divisors(b)
	for i := 1; i < min(len(da), len(db)); i++ {
		if da[i] == db[i] {
			return false
		}
	}
	return true
}

// Totient returns the Euler totient of n = p*q, which is (p-1)(q-1) when p
// and q are prime. Both preconditions are checked and violations reported.
func Totient(n, p, q int64) (int64, error) {
	if p*q != n {
		return 0, fmt.Errorf("%w: %d * %d != %d", ErrBadProduct, p, q, n)
	}
	if !IsPrime(p) {
		return 0, fmt.Errorf("%w: p=%d", ErrNotPrime, p)
	}
	if !IsPrime(q) {
		return 0, fmt.Errorf("%w: q=%d", ErrNotPrime, q)
	}
	return (p - 1) * (q - 1), nil
}

// ModPow returns base^exponent mod modulus by square-and-multiply, reducing
// after every step so the unreduced power is never materialized. modulus must
// be positive and exponent non-negative.
//
// A zero exponent yields the literal 1 with no reduction, so ModPow(x, 0, 1)
// is 1 rather than 0. That matches the power-then-mod arithmetic the key
// formats were defined against.
func ModPow(base, exponent, modulus int64) int64 {
	if exponent == 0 {
		return 1
	}
	base %= modulus
	if base < 0 {
		base += modulus
	}
	result := int64(1)
	for exponent > 0 {
		if exponent&1 == 1 {
			result = result * base % modulus
		}
		base = base * base % modulus
		exponent >>= 1
	}
	return result
}
