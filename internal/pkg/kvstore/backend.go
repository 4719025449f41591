// Package kvstore is the persistent key-value layer behind the storefront
// state. Values are JSON documents stored under namespaced string keys.
package kvstore

import (
	"context"
	"errors"

	"github.com/murkotick/menswear-storefront/internal/pkg/committer"
)

// ErrNotFound is returned by backends when a key has never been written.
var ErrNotFound = errors.New("kvstore: key not found")

// Backend is the raw storage a Store reads from and commits to.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Apply(ctx context.Context, plan *committer.Plan) error
	Close() error
}
