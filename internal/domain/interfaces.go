package domain

import "errors"

// ErrKeyNotFound is returned by stores when a requested key file does not
// exist yet.
var ErrKeyNotFound = errors.New("key file not found")

// KeyStore persists a key pair. Saving overwrites any previously stored key
// of the same half; prior contents are discarded, not appended.
type KeyStore interface {
	SavePublicKey(PublicKey) error
	SavePrivateKey(PrivateKey) error
	LoadPublicKey() (PublicKey, error)
	LoadPrivateKey() (PrivateKey, error)
}

// KeypairService derives key pairs from two primes, persists them, and
// retrieves the stored pair later.
type KeypairService interface {
	Generate(p, q int64) (PublicKey, PrivateKey, error)
	Load() (PublicKey, PrivateKey, error)
}
