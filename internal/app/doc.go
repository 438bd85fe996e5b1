// Package app wires application dependencies for the CLI.
//
// It resolves runtime configuration (flags, RSATOY_* environment variables,
// optional rsatoy config file) and builds the concrete store and services
// from it, exposing them via the Wire struct for commands to use.
package app
