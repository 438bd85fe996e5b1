package keygen

import (
	"errors"
	"fmt"

	"rsatoy/internal/domain"
	"rsatoy/internal/numtheory"
)

var (
	// ErrNotPrime is returned when p or q fails the primality precondition.
	ErrNotPrime = errors.New("p and q must both be prime")

	// ErrNoPublicExponent is returned when no exponent below phi(n) is
	// coprime with it.
	ErrNoPublicExponent = errors.New("no usable public exponent below phi(n)")

	// ErrNoPrivateExponent is returned when the inverse search exhausts
	// without finding a private exponent.
	ErrNoPrivateExponent = errors.New("no private exponent matches the public exponent")
)

// Public derives the public key for the primes p and q: the modulus n = p*q
// and the smallest exponent e >= 2 coprime with phi(n). The scan is capped at
// phi(n); exhaustion is reported rather than looped on.
func Public(p, q int64) (domain.PublicKey, error) {
	if !numtheory.IsPrime(p) || !numtheory.IsPrime(q) {
		return domain.PublicKey{}, fmt.Errorf("%w: p=%d q=%d", ErrNotPrime, p, q)
	}

	n := p * q
	phi, err := numtheory.Totient(n, p, q)
	if err != nil {
		return domain.PublicKey{}, err
	}

	for e := int64(2); e < phi; e++ {
		if numtheory.Coprime(e, phi) {
			return domain.PublicKey{N: n, E: e}, nil
		}
	}
	return domain.PublicKey{}, fmt.Errorf("%w: phi=%d", ErrNoPublicExponent, phi)
}

// Private derives the private key matching pub by searching k = 1, 2, ... for
// the first k where d = (1 + k*phi) / e divides out exactly; that d is the
// modular inverse of e modulo phi. The divisibility test is exact integer
// arithmetic, which returns the same d as the classic floating-point variant
// of this search wherever that variant terminates.
//
// The residues of 1 + k*phi modulo e cycle with period dividing e, so a
// solution exists within e steps or not at all; the search stops there and
// reports exhaustion, which can only happen when e and phi share a factor.
func Private(p, q int64, pub domain.PublicKey) (domain.PrivateKey, error) {
	if !numtheory.IsPrime(p) || !numtheory.IsPrime(q) {
		return domain.PrivateKey{}, fmt.Errorf("%w: p=%d q=%d", ErrNotPrime, p, q)
	}

	phi, err := numtheory.Totient(pub.N, p, q)
	if err != nil {
		return domain.PrivateKey{}, err
	}

	for k := int64(1); k < pub.E; k++ {
		if (1+k*phi)%pub.E == 0 {
			return domain.PrivateKey{P: p, Q: q, D: (1 + k*phi) / pub.E}, nil
		}
	}
	return domain.PrivateKey{}, fmt.Errorf("%w: e=%d phi=%d", ErrNoPrivateExponent, pub.E, phi)
}
