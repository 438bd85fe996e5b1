// Package numtheory implements the integer arithmetic behind key generation.
//
// Contents
//
//   - Trial-division primality testing (IsPrime)
//   - Divisor enumeration (Divisors)
//   - Coprimality checks, both the exact gcd form (Coprime) and the legacy
//     positional divisor comparison (CoprimePositional)
//   - The Euler totient of a semiprime (Totient)
//   - Modular exponentiation (ModPow)
//
// # Notes
//
// The algorithms are deliberately naive: the package targets small classroom
// integers, not real key sizes. Everything operates on int64 copies of its
// arguments, so concurrent use is safe.
package numtheory
