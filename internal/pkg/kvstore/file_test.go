package kvstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/menswear-storefront/internal/pkg/committer"
)

func TestFileBackend_RoundTripAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "storefront.json")
	ctx := context.Background()

	b1, err := NewFileBackend(path)
	require.NoError(t, err)

	_, err = b1.Get(ctx, "menstore:cart")
	assert.ErrorIs(t, err, ErrNotFound)

	plan := committer.NewPlan()
	plan.Add("menstore:cart", []byte(`[{"key":"p1::M::","qty":3}]`))
	plan.Add("menstore:wishlist", []byte(`["p2"]`))
	require.NoError(t, b1.Apply(ctx, plan))

	b2, err := NewFileBackend(path)
	require.NoError(t, err)
	raw, err := b2.Get(ctx, "menstore:cart")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"key":"p1::M::","qty":3}]`, string(raw))
}

func TestFileBackend_CorruptFileIsReplacedOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storefront.json")
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o644))
	ctx := context.Background()

	b, err := NewFileBackend(path)
	require.NoError(t, err)

	_, err = b.Get(ctx, "menstore:cart")
	require.Error(t, err)

	plan := committer.NewPlan()
	plan.Add("menstore:cart", []byte(`[]`))
	require.NoError(t, b.Apply(ctx, plan))

	raw, err := b.Get(ctx, "menstore:cart")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(raw))
}

func TestFileBackend_RequiresPath(t *testing.T) {
	_, err := NewFileBackend("")
	assert.Error(t, err)
}
