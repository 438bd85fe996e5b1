// Package codec encodes and decodes integer messages with a key pair.
package codec
