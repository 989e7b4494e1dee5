package prefs

import (
	"context"
)

// Store holds the gateway's persisted client state. The original client kept
// exactly one browser localStorage key (the language tag); the store keeps
// the same key/value contract so higher layers never depend on the engine.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}
