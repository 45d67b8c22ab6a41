package repository

import "context"

// CacheRepository stores small serialized values, in practice fitted-model
// snapshots keyed by training-source fingerprint.
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string) error
}
