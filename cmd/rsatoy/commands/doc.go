// Package commands defines the rsatoy CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - keygen    Derive a key pair from two primes and save it
//   - encode    Encode a number with the stored public key
//   - decode    Decode a number with the stored key pair
//   - show      Print the stored key pair
//   - demo      Interactive generate/encode/decode round trip
//
// # Implementation
//
// The root command resolves configuration and builds the dependency graph
// (store, services) before any subcommand runs, so handlers share one wired
// app context.
package commands
