package domain

import "fmt"

// PublicKey is the published half of a key pair: the modulus n = p*q and the
// public exponent e. Immutable once derived.
type PublicKey struct {
	N int64
	E int64
}

// String renders the key the way the CLI prints it.
func (k PublicKey) String() string { return fmt.Sprintf("n=%d e=%d", k.N, k.E) }

// PrivateKey holds the prime factors and the private exponent d matching the
// PublicKey derived from the same primes. Immutable once derived. A private
// key is only meaningful next to its public counterpart; nothing here
// cross-validates the pairing.
type PrivateKey struct {
	P int64
	Q int64
	D int64
}

// String renders the key the way the CLI prints it.
func (k PrivateKey) String() string { return fmt.Sprintf("p=%d q=%d d=%d", k.P, k.Q, k.D) }
