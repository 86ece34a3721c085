// Package config manages user-level settings stored at ~/.storeseed/config.yaml.
// It loads, reads, and writes keys such as the scaffold root and the output
// directory for generated product descriptions. Every key can also be set
// through a STORESEED_-prefixed environment variable.
package config
