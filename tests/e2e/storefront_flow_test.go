package e2e

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/iterator"

	"github.com/murkotick/menswear-storefront/internal/app/storefront/domain"
	"github.com/murkotick/menswear-storefront/internal/app/storefront/store"
)

type kvRow struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

func fetchRows(ctx context.Context, t *testing.T, prefix string) map[string]kvRow {
	t.Helper()
	stmt := spanner.Statement{
		SQL:    `SELECT entry_key, value, updated_at FROM kv_entries WHERE STARTS_WITH(entry_key, @prefix)`,
		Params: map[string]any{"prefix": prefix},
	}
	iter := spClient.Single().Query(ctx, stmt)
	defer iter.Stop()

	out := make(map[string]kvRow)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out
		}
		require.NoError(t, err)
		var r kvRow
		require.NoError(t, row.Columns(&r.Key, &r.Value, &r.UpdatedAt))
		out[r.Key] = r
	}
}

func TestCartFlow_PersistsAcrossReloads(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	ns := namespace()

	s := openStore(ns)
	s.AddToCart(store.CartItem{ProductID: "cam-oxford-azul", Size: "M", Color: "Azul", Qty: 2})
	s.AddToCart(store.CartItem{ProductID: "cam-oxford-azul", Size: "M", Color: "Azul", Qty: 1})
	res := s.ApplyCoupon("welcome10")
	require.True(t, res.OK)

	reloaded := openStore(ns)
	st := reloaded.GetState()
	require.Len(t, st.Cart, 1)
	assert.Equal(t, 3, st.Cart[0].Qty)
	require.NotNil(t, st.Coupon)
	assert.Equal(t, "WELCOME10", st.Coupon.Code)
	assert.Equal(t, s.Totals(), reloaded.Totals())

	rows := fetchRows(ctx, t, ns+":")
	assert.Contains(t, rows, ns+":cart")
	assert.Contains(t, rows, ns+":coupon")
	assert.NotContains(t, rows, ns+":search")
	assert.False(t, rows[ns+":cart"].UpdatedAt.IsZero())
}

func TestAdminFlow_CatalogEdits(t *testing.T) {
	ns := namespace()

	s := openStore(ns)
	require.True(t, s.AdminLogin("admin", "secreto"))

	saved, err := s.UpsertProduct(domain.Product{
		Name:  "Suéter Azul Marino",
		Type:  "Suéteres",
		Price: 1099,
		Sizes: []string{"M", "L"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)
	require.True(t, s.DeleteProduct("cin-piel-cafe"))

	reloaded := openStore(ns)
	assert.True(t, reloaded.IsAdmin())
	_, found := reloaded.FindProduct(saved.ID)
	assert.True(t, found)
	_, found = reloaded.FindProduct("cin-piel-cafe")
	assert.False(t, found)

	reloaded.AdminLogout()
	assert.False(t, openStore(ns).IsAdmin())
}

func TestEngagementFlow_WishlistAndViews(t *testing.T) {
	ns := namespace()

	s := openStore(ns)
	s.ToggleWishlist("sac-lana-gris")
	s.TrackProductView("sac-lana-gris")
	s.TrackProductView("sac-lana-gris")
	s.TrackProductView("pol-pique-verde")
	s.SetSearchQuery("camisa")

	reloaded := openStore(ns)
	st := reloaded.GetState()
	assert.Equal(t, []string{"sac-lana-gris"}, st.Wishlist)
	assert.Empty(t, st.Search)

	top := reloaded.MostViewed(1)
	require.Len(t, top, 1)
	assert.Equal(t, "sac-lana-gris", top[0].ID)
}
