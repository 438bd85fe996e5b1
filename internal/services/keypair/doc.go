// Package keypair derives key pairs and keeps them in the configured store.
package keypair
