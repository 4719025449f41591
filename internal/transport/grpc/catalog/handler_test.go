package catalog

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/murkotick/menswear-storefront/internal/app/storefront/store"
	"github.com/murkotick/menswear-storefront/internal/pkg/clock"
	"github.com/murkotick/menswear-storefront/internal/pkg/eventloop"
	"github.com/murkotick/menswear-storefront/internal/pkg/kvstore"
)

const testSecret = "test-secret"

type fixture struct {
	client *Client
	store  *store.Store
	loop   *eventloop.Loop
}

func setup(t *testing.T) *fixture {
	t.Helper()

	creds, err := store.NewCredentialsCost("admin", "secreto", bcrypt.MinCost)
	require.NoError(t, err)
	s := store.New(kvstore.New(kvstore.NewMemoryBackend()), store.Config{Credentials: creds})

	loop := eventloop.New()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go func() { _ = loop.Run(ctx) }()

	tokens := NewTokens(testSecret, time.Hour, nil)
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(grpc.UnaryInterceptor(UnaryAuthInterceptor(tokens)))
	RegisterCatalogAdminServer(srv, NewHandler(loop, s, creds, tokens))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return &fixture{client: NewClient(conn), store: s, loop: loop}
}

func mustStruct(t *testing.T, m map[string]interface{}) *structpb.Struct {
	t.Helper()
	s, err := structpb.NewStruct(m)
	require.NoError(t, err)
	return s
}

func (f *fixture) login(t *testing.T) context.Context {
	t.Helper()
	out, err := f.client.Login(context.Background(), mustStruct(t, map[string]interface{}{
		"user": "admin", "password": "secreto",
	}))
	require.NoError(t, err)
	token := out.GetFields()["token"].GetStringValue()
	require.NotEmpty(t, token)
	return metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+token)
}

func TestLogin(t *testing.T) {
	f := setup(t)

	_, err := f.client.Login(context.Background(), mustStruct(t, map[string]interface{}{
		"user": "admin", "password": "otra",
	}))
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = f.client.Login(context.Background(), mustStruct(t, map[string]interface{}{"user": "admin"}))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	f.login(t)
	var isAdmin bool
	require.NoError(t, f.loop.Call(context.Background(), func() { isAdmin = f.store.IsAdmin() }))
	assert.False(t, isAdmin, "API tokens do not open a storefront session")
}

func TestAuthRequired(t *testing.T) {
	f := setup(t)

	_, err := f.client.ListProducts(context.Background(), &structpb.Struct{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	ctx := metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer nope")
	_, err = f.client.ListProducts(ctx, &structpb.Struct{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestListProducts_Pagination(t *testing.T) {
	f := setup(t)
	ctx := f.login(t)

	out, err := f.client.ListProducts(ctx, mustStruct(t, map[string]interface{}{"pageSize": 4}))
	require.NoError(t, err)
	assert.Len(t, out.GetFields()["products"].GetListValue().GetValues(), 4)
	assert.Equal(t, "4", out.GetFields()["nextPageToken"].GetStringValue())
	assert.Equal(t, float64(9), out.GetFields()["total"].GetNumberValue())

	out, err = f.client.ListProducts(ctx, mustStruct(t, map[string]interface{}{"pageSize": 4, "pageToken": "8"}))
	require.NoError(t, err)
	assert.Len(t, out.GetFields()["products"].GetListValue().GetValues(), 1)
	assert.Empty(t, out.GetFields()["nextPageToken"].GetStringValue())

	out, err = f.client.ListProducts(ctx, mustStruct(t, map[string]interface{}{"type": "Camisas"}))
	require.NoError(t, err)
	values := out.GetFields()["products"].GetListValue().GetValues()
	require.Len(t, values, 2)
	assert.Equal(t, "cam-oxford-azul", values[0].GetStructValue().GetFields()["id"].GetStringValue())

	_, err = f.client.ListProducts(ctx, mustStruct(t, map[string]interface{}{"pageToken": "x"}))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestSaveProduct(t *testing.T) {
	f := setup(t)
	ctx := f.login(t)

	_, err := f.client.SaveProduct(ctx, &structpb.Struct{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = f.client.SaveProduct(ctx, mustStruct(t, map[string]interface{}{
		"product": map[string]interface{}{"name": "", "type": "Camisas", "price": 0},
	}))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	out, err := f.client.SaveProduct(ctx, mustStruct(t, map[string]interface{}{
		"product": map[string]interface{}{
			"name":  "Suéter Azul Marino",
			"type":  "Suéteres",
			"price": 1099,
			"sizes": []interface{}{"M", "L"},
			"badge": "Nuevo",
		},
	}))
	require.NoError(t, err)
	saved := out.GetFields()["product"].GetStructValue().GetFields()
	id := saved["id"].GetStringValue()
	require.NotEmpty(t, id)
	assert.Equal(t, float64(1099), saved["price"].GetNumberValue())

	var found bool
	require.NoError(t, f.loop.Call(context.Background(), func() { _, found = f.store.FindProduct(id) }))
	assert.True(t, found)
}

func TestDeleteProduct(t *testing.T) {
	f := setup(t)
	ctx := f.login(t)

	_, err := f.client.DeleteProduct(ctx, mustStruct(t, map[string]interface{}{"id": "no-existe"}))
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = f.client.DeleteProduct(ctx, mustStruct(t, map[string]interface{}{"id": "cam-oxford-azul"}))
	require.NoError(t, err)

	var found bool
	require.NoError(t, f.loop.Call(context.Background(), func() { _, found = f.store.FindProduct("cam-oxford-azul") }))
	assert.False(t, found)
}

func TestTokens(t *testing.T) {
	tokens := NewTokens(testSecret, time.Hour, nil)
	tok, exp, err := tokens.Issue("admin")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)

	sub, err := tokens.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "admin", sub)

	_, err = NewTokens("other-secret", time.Hour, nil).Verify(tok)
	assert.Error(t, err)

	stale := NewTokens(testSecret, time.Hour, clock.NewFake(time.Now().Add(-48*time.Hour)))
	old, _, err := stale.Issue("admin")
	require.NoError(t, err)
	_, err = tokens.Verify(old)
	assert.Error(t, err)
}
