// Package cli defines the Cobra command tree for the storeseed CLI. Each file
// in this package registers one top-level command (scaffold, descriptions,
// manifest, etc.) with the root command. Command implementations delegate to
// internal packages for the work and only handle flags and output.
package cli
