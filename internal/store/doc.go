// Package store provides file-based persistence for generated key pairs.
//
// Keys are written as small plain-text files so they can be inspected and
// consumed by anything that reads two or three labelled lines: the public key
// as "n:" and "E:", the private key as "p:", "q:" and "d:". Saving a key
// replaces the whole file. All methods are concurrency-safe via internal
// locking.
package store
