package kvstore

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/murkotick/menswear-storefront/internal/pkg/committer"
)

// Runs against a live server when KVSTORE_MONGO_URI is set, e.g.
// mongodb://localhost:27017. Each test uses its own collection.
func openTestMongo(t *testing.T) *MongoBackend {
	t.Helper()
	uri := os.Getenv("KVSTORE_MONGO_URI")
	if uri == "" {
		t.Skip("KVSTORE_MONGO_URI not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	b, err := DialMongo(ctx, uri, "storefront_test", "kv_"+uuid.New().String()[:8])
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = b.coll.Drop(context.Background())
		_ = b.Close()
	})
	return b
}

func TestMongoBackend_GetAndApply(t *testing.T) {
	b := openTestMongo(t)
	ctx := context.Background()

	_, err := b.Get(ctx, "menstore:wishlist")
	assert.ErrorIs(t, err, ErrNotFound)

	plan := committer.NewPlan()
	plan.Add("menstore:wishlist", []byte(`["p1"]`))
	plan.Add("menstore:views", []byte(`{"p1":1}`))
	require.NoError(t, b.Apply(ctx, plan))

	next := committer.NewPlan()
	next.Add("menstore:wishlist", []byte(`["p1","p2"]`))
	require.NoError(t, b.Apply(ctx, next))

	raw, err := b.Get(ctx, "menstore:wishlist")
	require.NoError(t, err)
	assert.JSONEq(t, `["p1","p2"]`, string(raw))

	n, err := b.coll.CountDocuments(ctx, bson.M{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n, "one document per key")
}

func TestMongoBackend_ThroughStore(t *testing.T) {
	b := openTestMongo(t)

	s := New(b)
	s.Write("theme", "dark")

	var got string
	require.True(t, s.Read("theme", &got))
	assert.Equal(t, "dark", got)
}
