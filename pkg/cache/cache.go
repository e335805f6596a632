// Package cache stores rendered artifacts by key.
//
// Rendering a reproducible scene is a pure function of the scene document and
// the output settings, so the pipeline can reuse a previous result instead of
// regenerating every sketchy stroke. Three backends implement [Cache]:
//
//   - [FileCache] keeps entries on local disk for the CLI.
//   - [RedisCache] shares entries between server instances.
//   - [NullCache] stores nothing and is used when caching is disabled.
//
// Keys are built by a [Keyer] so that callers never concatenate key strings
// by hand. [ScopedKeyer] adds a namespace prefix on top of any Keyer.
package cache

import (
	"context"
	"time"
)

// TTLArtifact is how long rendered artifacts stay cached.
const TTLArtifact = 7 * 24 * time.Hour

// Cache is a byte-oriented key/value store with optional expiry.
//
// Get reports a miss with (nil, false, nil). A non-nil error means the
// backend failed; callers rendering artifacts treat that as a miss.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
