package keygen_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rsatoy/internal/domain"
	"rsatoy/internal/keygen"
	"rsatoy/internal/numtheory"
)

// derivePair derives both halves for p and q, failing the test on error.
func derivePair(t *testing.T, p, q int64) (domain.PublicKey, domain.PrivateKey) {
	t.Helper()
	pub, err := keygen.Public(p, q)
	require.NoError(t, err)
	priv, err := keygen.Private(p, q, pub)
	require.NoError(t, err)
	return pub, priv
}

func TestPublicSmallPrimes(t *testing.T) {
	pub, err := keygen.Public(3, 11)
	require.NoError(t, err)
	require.Equal(t, domain.PublicKey{N: 33, E: 3}, pub)
}

func TestPublicClassicPrimes(t *testing.T) {
	pub, err := keygen.Public(61, 53)
	require.NoError(t, err)
	require.Equal(t, int64(3233), pub.N)
	require.GreaterOrEqual(t, pub.E, int64(2))
	require.True(t, numtheory.Coprime(pub.E, 3120))
	// A truly coprime exponent also passes the legacy positional check.
	require.True(t, numtheory.CoprimePositional(pub.E, 3120))
}

func TestPublicDeterministic(t *testing.T) {
	first, err := keygen.Public(61, 53)
	require.NoError(t, err)
	second, err := keygen.Public(61, 53)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestPrivateInverseProperty(t *testing.T) {
	for _, tc := range []struct{ p, q, phi int64 }{
		{3, 11, 20},
		{2, 5, 4},
		{61, 53, 3120},
	} {
		pub, priv := derivePair(t, tc.p, tc.q)
		require.Equal(t, int64(1), pub.E*priv.D%tc.phi,
			"e*d mod phi for p=%d q=%d", tc.p, tc.q)
		require.Equal(t, tc.p, priv.P)
		require.Equal(t, tc.q, priv.Q)
	}
}

func TestPrivateSmallPrimes(t *testing.T) {
	pub, priv := derivePair(t, 3, 11)
	require.Equal(t, int64(3), pub.E)
	require.Equal(t, domain.PrivateKey{P: 3, Q: 11, D: 7}, priv)
}

func TestPublicRejectsNonPrime(t *testing.T) {
	_, err := keygen.Public(4, 11)
	require.ErrorIs(t, err, keygen.ErrNotPrime)

	_, err = keygen.Public(3, 15)
	require.ErrorIs(t, err, keygen.ErrNotPrime)
}

func TestPrivateRejectsNonPrime(t *testing.T) {
	pub, err := keygen.Public(3, 11)
	require.NoError(t, err)

	_, err = keygen.Private(4, 11, pub)
	require.ErrorIs(t, err, keygen.ErrNotPrime)
}

// phi(2*2) = 1 leaves no room for an exponent, so the capped scan reports
// exhaustion instead of spinning.
func TestPublicExhaustion(t *testing.T) {
	_, err := keygen.Public(2, 2)
	require.ErrorIs(t, err, keygen.ErrNoPublicExponent)
}

// A public exponent sharing a factor with phi has no inverse; the bounded
// search must say so rather than loop forever.
func TestPrivateExhaustion(t *testing.T) {
	bad := domain.PublicKey{N: 3233, E: 3} // gcd(3, 3120) = 3
	_, err := keygen.Private(61, 53, bad)
	require.ErrorIs(t, err, keygen.ErrNoPrivateExponent)
}
