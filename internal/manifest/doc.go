// Package manifest defines the declarative scaffold manifest: an ordered list
// of directories, each with an ordered list of placeholder files and their
// initial content. It parses manifests from YAML, validates them against an
// embedded JSON Schema plus path-safety rules, and ships the built-in
// storefront manifest.
package manifest
