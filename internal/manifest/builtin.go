package manifest

import (
	_ "embed"
	"sync"
)

//go:embed storefront.yaml
var storefrontYAML []byte

var (
	storefront     *Manifest
	storefrontErr  error
	storefrontOnce sync.Once
)

// Storefront returns the built-in storefront manifest. The embedded table is
// parsed once; callers must not mutate the returned value.
func Storefront() (*Manifest, error) {
	storefrontOnce.Do(func() {
		storefront, storefrontErr = Parse(storefrontYAML)
	})
	return storefront, storefrontErr
}
