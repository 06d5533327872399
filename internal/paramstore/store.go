// Package paramstore defines the boundary to the persistent key/value
// backend that saves parameter values between runs. Concrete
// implementations live in separate packages; inmemoryparams provides the
// ephemeral one used by the CLI and tests.
package paramstore

import (
	"context"

	"github.com/zclconf/go-cty/cty"
)

// Store is the persistent parameter value store. Keys are the items'
// persist keys; values are stored as-is.
type Store interface {
	// Get retrieves a previously saved value. The second result is false
	// when the key has never been saved.
	Get(ctx context.Context, key string) (cty.Value, bool, error)
	// Put saves a value under the given key, replacing any prior value.
	Put(ctx context.Context, key string, value cty.Value) error
}
