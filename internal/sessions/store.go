// Package sessions holds the ephemeral per-session intake state for both
// collectors. Nothing here is durable by contract: losing a session loses
// the in-flight answers, and nothing reaches the row store before a full
// submission.
package sessions

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("session not found")

// DefaultTTL bounds how long an abandoned intake session is kept around.
const DefaultTTL = 2 * time.Hour

// Store is a keyed JSON blob store with a TTL. Implementations must treat
// Put as an upsert and refresh the TTL on every write.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
