package redis

import (
	"fmt"
	"time"

	"github.com/bearmarket/goapi/base/ctx"
)

// Forever marks a key without expiry.
const Forever = time.Duration(-1)

var (
	// ErrNotFound is returned when a key does not exist
	ErrNotFound = fmt.Errorf("key not found")
)

// Service abstracts the redis layer.
type Service interface {
	// Get returns the value of key, or ErrNotFound
	Get(context ctx.Ctx, key string) ([]byte, error)

	// Set stores val under key with the given ttl. Use Forever for no expiry.
	Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error

	// Del removes the given keys, returning how many existed
	Del(context ctx.Ctx, keys ...string) (int, error)
}
