package codec

import (
	"errors"
	"fmt"

	"rsatoy/internal/domain"
	"rsatoy/internal/numtheory"
)

// ErrMessageRange is returned by CheckRange for messages outside (0, n).
var ErrMessageRange = errors.New("message must satisfy 0 < m < n")

// Encode raises m to the public exponent modulo n. The message must lie in
// (0, n); an out-of-range m produces a wrong number, not an error. Callers
// wanting the check should run CheckRange first.
func Encode(pub domain.PublicKey, m int64) int64 {
	return numtheory.ModPow(m, pub.E, pub.N)
}

// Decode recovers the original message from the ciphertext c using the
// private exponent. Nothing verifies that priv matches pub; a mismatched
// pair silently yields garbage.
func Decode(pub domain.PublicKey, priv domain.PrivateKey, c int64) int64 {
	return numtheory.ModPow(c, priv.D, pub.N)
}

// CheckRange reports whether m is a valid message for pub, i.e. 0 < m < n.
func CheckRange(pub domain.PublicKey, m int64) error {
	if m <= 0 || m >= pub.N {
		return fmt.Errorf("%w: m=%d n=%d", ErrMessageRange, m, pub.N)
	}
	return nil
}
