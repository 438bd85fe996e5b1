package keypair_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rsatoy/internal/codec"
	"rsatoy/internal/domain"
	"rsatoy/internal/keygen"
	"rsatoy/internal/services/keypair"
	"rsatoy/internal/store"
)

func newService(t *testing.T) *keypair.Service {
	t.Helper()
	return keypair.New(store.NewFileKeyStore(t.TempDir(), "", ""))
}

func TestGenerateAndLoad(t *testing.T) {
	svc := newService(t)

	pub, priv, err := svc.Generate(61, 53)
	require.NoError(t, err)
	require.Equal(t, int64(3233), pub.N)
	require.Equal(t, int64(1), pub.E*priv.D%3120)

	gotPub, gotPriv, err := svc.Load()
	require.NoError(t, err)
	require.Equal(t, pub, gotPub)
	require.Equal(t, priv, gotPriv)
}

func TestGenerateRejectsNonPrime(t *testing.T) {
	svc := newService(t)

	_, _, err := svc.Generate(4, 11)
	require.ErrorIs(t, err, keygen.ErrNotPrime)

	// Nothing was persisted on the failed run.
	_, _, err = svc.Load()
	require.ErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestLoadBeforeGenerate(t *testing.T) {
	svc := newService(t)

	_, _, err := svc.Load()
	require.ErrorIs(t, err, domain.ErrKeyNotFound)
}

// End to end through the service: generate, reload, encode, decode.
func TestRoundTripThroughStore(t *testing.T) {
	svc := newService(t)

	_, _, err := svc.Generate(3, 11)
	require.NoError(t, err)

	pub, priv, err := svc.Load()
	require.NoError(t, err)

	c := codec.Encode(pub, 5)
	require.Equal(t, int64(5), codec.Decode(pub, priv, c))
}
