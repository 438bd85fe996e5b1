package app

import (
	"rsatoy/internal/domain"
	keypairsvc "rsatoy/internal/services/keypair"
	"rsatoy/internal/store"
)

// Wire bundles the store and services for the CLI.
type Wire struct {
	Keys  domain.KeypairService
	Store domain.KeyStore
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg *Config) *Wire {
	ks := store.NewFileKeyStore(cfg.Home, cfg.PublicKeyFile, cfg.PrivateKeyFile)
	return &Wire{
		Keys:  keypairsvc.New(ks),
		Store: ks,
	}
}
