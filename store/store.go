// Package store provides the key-value persistence used for engine state:
// JSON blobs keyed per user, Redis-backed in production with an in-memory
// fallback when Redis is unreachable. Writes are fire-and-forget; a failed
// write is logged and the in-memory copy stays authoritative for the
// session.
package store

import "context"

// KV is a synchronous string key-value store.
type KV interface {
	// Get returns the stored value and whether the key exists. Transport
	// failures read as "absent"; callers fall back to defaults.
	Get(ctx context.Context, key string) (string, bool)
	// Set stores the value. Errors are swallowed by implementations.
	Set(ctx context.Context, key, value string)
}
