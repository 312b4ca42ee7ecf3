package settings

import "context"

// Store is the flat key-value persistence port. The dashboard's client-local
// state (migration flag, saved LLM configs) lives behind it so the core stays
// storage-agnostic.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
