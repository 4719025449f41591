package kvstore

import (
	"bytes"
	"context"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/menswear-storefront/internal/pkg/committer"
)

type line struct {
	Key string `json:"key"`
	Qty int    `json:"qty"`
}

func quietLogger(buf *bytes.Buffer) *log.Logger {
	return log.New(buf, "", 0)
}

func TestStore_ReadMissingKeepsDefault(t *testing.T) {
	s := New(NewMemoryBackend())

	got := []line{{Key: "default", Qty: 1}}
	ok := s.Read("cart", &got)

	assert.False(t, ok)
	assert.Equal(t, []line{{Key: "default", Qty: 1}}, got)
}

func TestStore_WriteThenRead(t *testing.T) {
	backend := NewMemoryBackend()
	s := New(backend)

	s.Write("cart", []line{{Key: "p1::M::Azul", Qty: 2}})

	var got []line
	require.True(t, s.Read("cart", &got))
	assert.Equal(t, []line{{Key: "p1::M::Azul", Qty: 2}}, got)

	raw, err := backend.Get(context.Background(), "menstore:cart")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"key":"p1::M::Azul","qty":2}]`, string(raw))
}

func TestStore_CorruptValueFallsBack(t *testing.T) {
	var logs bytes.Buffer
	backend := NewMemoryBackend()
	backend.Put("menstore:cart", []byte(`{not json`))
	backend.Put("menstore:views", []byte(`["wrong","shape"]`))
	s := New(backend, WithLogger(quietLogger(&logs)))

	cart := []line{}
	assert.False(t, s.Read("cart", &cart))
	assert.Empty(t, cart)

	views := map[string]int{"keep": 1}
	assert.False(t, s.Read("views", &views))
	assert.Equal(t, map[string]int{"keep": 1}, views)

	assert.Contains(t, logs.String(), "corrupt value at cart")
}

func TestStore_NullValueFallsBack(t *testing.T) {
	backend := NewMemoryBackend()
	backend.Put("menstore:coupon", []byte(`null`))
	s := New(backend)

	type coupon struct{ Code string }
	c := &coupon{Code: "keep"}
	assert.False(t, s.Read("coupon", &c))
	require.NotNil(t, c)
	assert.Equal(t, "keep", c.Code)
}

func TestStore_FailedWriteIsSwallowed(t *testing.T) {
	var logs bytes.Buffer
	backend := NewMemoryBackend()
	backend.FailWrites = errors.New("quota exceeded")
	s := New(backend, WithLogger(quietLogger(&logs)))

	assert.NotPanics(t, func() { s.Write("cart", []line{{Key: "a", Qty: 1}}) })
	assert.Equal(t, 0, backend.Len())
	assert.Contains(t, logs.String(), "quota exceeded")
}

func TestStore_UnencodableValueIsSkipped(t *testing.T) {
	var logs bytes.Buffer
	backend := NewMemoryBackend()
	s := New(backend, WithLogger(quietLogger(&logs)))

	s.Write("bad", make(chan int))

	assert.Equal(t, 0, backend.Len())
	assert.Contains(t, logs.String(), "encode bad")
}

func TestStore_CommitPlanWritesAllKeys(t *testing.T) {
	backend := NewMemoryBackend()
	s := New(backend, WithNamespace("shop"))

	plan := committer.NewPlan()
	require.True(t, s.Stage(plan, "cart", []line{}))
	require.True(t, s.Stage(plan, "wishlist", []string{"p1"}))
	s.Commit(plan)

	assert.Equal(t, 2, backend.Len())
	var wl []string
	require.True(t, s.Read("wishlist", &wl))
	assert.Equal(t, []string{"p1"}, wl)
	assert.Equal(t, "shop:wishlist", s.Key("wishlist"))
}
