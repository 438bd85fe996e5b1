package keypair

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"rsatoy/internal/domain"
	"rsatoy/internal/keygen"
)

// Service derives key pairs from caller-supplied primes and persists both
// halves through a backing store.
type Service struct {
	store domain.KeyStore
}

// New returns a keypair service backed by the given store.
func New(s domain.KeyStore) *Service { return &Service{store: s} }

// Generate derives the public key and then the matching private key from the
// primes p and q, saves both, and returns them. Any previously stored pair is
// overwritten. Non-prime inputs and exhausted exponent searches abort with an
// error before anything is written.
func (s *Service) Generate(p, q int64) (domain.PublicKey, domain.PrivateKey, error) {
	pub, err := keygen.Public(p, q)
	if err != nil {
		return domain.PublicKey{}, domain.PrivateKey{}, fmt.Errorf("derive public key: %w", err)
	}
	priv, err := keygen.Private(p, q, pub)
	if err != nil {
		return domain.PublicKey{}, domain.PrivateKey{}, fmt.Errorf("derive private key: %w", err)
	}

	log.WithFields(log.Fields{
		"n": pub.N,
		"e": pub.E,
		"d": priv.D,
	}).Debug("Derived key pair")

	if err := s.store.SavePublicKey(pub); err != nil {
		return domain.PublicKey{}, domain.PrivateKey{}, fmt.Errorf("save public key: %w", err)
	}
	if err := s.store.SavePrivateKey(priv); err != nil {
		return domain.PublicKey{}, domain.PrivateKey{}, fmt.Errorf("save private key: %w", err)
	}
	log.Info("Key pair saved")

	return pub, priv, nil
}

// Load returns the stored key pair.
func (s *Service) Load() (domain.PublicKey, domain.PrivateKey, error) {
	pub, err := s.store.LoadPublicKey()
	if err != nil {
		return domain.PublicKey{}, domain.PrivateKey{}, err
	}
	priv, err := s.store.LoadPrivateKey()
	if err != nil {
		return domain.PublicKey{}, domain.PrivateKey{}, err
	}
	return pub, priv, nil
}

// Compile-time assertion that Service implements domain.KeypairService.
var _ domain.KeypairService = (*Service)(nil)
