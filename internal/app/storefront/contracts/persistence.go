package contracts

import (
	commitplan "github.com/murkotick/menswear-storefront/internal/pkg/committer"
)

// Persistence is what the state store needs from the key-value layer.
// Implementations never fail loudly: Read falls back to the caller's default
// and Commit is best effort.
type Persistence interface {
	// Read decodes the value at key into dst and reports whether it did.
	Read(key string, dst any) bool

	// Stage encodes value under key into plan.
	Stage(plan *commitplan.Plan, key string, value any) bool

	// Commit writes the staged plan.
	Commit(plan *commitplan.Plan)
}
