// Package domain defines the key records and interfaces shared across the
// app. It contains plain types and contracts only.
package domain
