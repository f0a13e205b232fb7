package credentials

import "context"

// Repository is a small key-value store for the persisted credential.
// Get returns (nil, nil) for an absent key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	// Replace atomically swaps the whole content for values.
	Replace(ctx context.Context, values map[string][]byte) error
	Clear(ctx context.Context) error
}
