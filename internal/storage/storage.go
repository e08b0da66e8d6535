package storage

import "context"

// KV is the persistence boundary for the catalog: a key/value capability
// scoped to one deployment, the server-side analogue of a browser profile's
// local storage. Implementations must make Set a single atomic overwrite so
// that last-write-wins never leaves a torn value.
type KV interface {
	// Get returns the stored value and whether the key was present.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores value under key, overwriting any prior value.
	Set(ctx context.Context, key, value string) error
	// Delete removes key; deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases the underlying resources.
	Close() error
}
