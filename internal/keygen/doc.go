// Package keygen derives a public/private key pair from two primes.
//
// Public picks the modulus and the smallest usable public exponent; Private
// searches out the matching private exponent. Both are pure functions over
// their arguments and deterministic for fixed inputs.
package keygen
