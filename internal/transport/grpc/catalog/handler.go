// Package catalog is the gRPC admin API of the storefront catalog. It runs
// product CRUD through the state store on the event loop, so the storefront
// re-renders exactly as it does for edits made in the admin pages.
package catalog

import (
	"context"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/murkotick/menswear-storefront/internal/app/storefront/domain"
	"github.com/murkotick/menswear-storefront/internal/app/storefront/store"
)

// Loop runs work on the storefront's single logical thread.
type Loop interface {
	Call(ctx context.Context, fn func()) error
}

// Catalog is the part of the state store the admin API drives.
type Catalog interface {
	GetState() store.State
	UpsertProduct(p domain.Product) (domain.Product, error)
	DeleteProduct(id string) bool
}

// Handler is a thin gRPC transport adapter.
type Handler struct {
	loop    Loop
	catalog Catalog
	creds   store.Credentials
	tokens  *Tokens
}

func NewHandler(loop Loop, catalog Catalog, creds store.Credentials, tokens *Tokens) *Handler {
	return &Handler{loop: loop, catalog: catalog, creds: creds, tokens: tokens}
}

var _ CatalogAdminServer = (*Handler)(nil)

func (h *Handler) Login(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	user, password, err := validateLogin(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if !h.creds.Check(user, password) {
		return nil, mapError(domain.ErrInvalidCredentials)
	}

	token, exp, err := h.tokens.Issue(user)
	if err != nil {
		return nil, mapError(err)
	}
	out, err := structpb.NewStruct(map[string]interface{}{
		"token":     token,
		"expiresAt": exp.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}

func (h *Handler) ListProducts(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	fields := req.GetFields()

	limit := clampPageSize(int(fields["pageSize"].GetNumberValue()))
	offset, err := decodePageToken(fields["pageToken"].GetStringValue())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	typ := fields["type"].GetStringValue()

	var products []domain.Product
	if err := h.loop.Call(ctx, func() { products = h.catalog.GetState().Products }); err != nil {
		return nil, mapError(err)
	}

	filtered := products[:0]
	for _, p := range products {
		if typ == "" || p.Type == typ {
			filtered = append(filtered, p)
		}
	}
	total := len(filtered)

	page := []domain.Product{}
	if offset < total {
		page = filtered[offset:min(offset+limit, total)]
	}
	next := ""
	if offset+len(page) < total {
		next = encodePageToken(offset + len(page))
	}

	list, err := productsToList(page)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"products":      list,
		"nextPageToken": structpb.NewStringValue(next),
		"total":         structpb.NewNumberValue(float64(total)),
	}}, nil
}

func (h *Handler) SaveProduct(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	in, err := validateSaveProduct(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	p, err := structToProduct(in)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	var saved domain.Product
	var saveErr error
	if err := h.loop.Call(ctx, func() { saved, saveErr = h.catalog.UpsertProduct(p) }); err != nil {
		return nil, mapError(err)
	}
	if saveErr != nil {
		return nil, mapError(saveErr)
	}

	out, err := productToStruct(saved)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"product": structpb.NewStructValue(out),
	}}, nil
}

func (h *Handler) DeleteProduct(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := requireString(req, "id")
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	var deleted bool
	if err := h.loop.Call(ctx, func() { deleted = h.catalog.DeleteProduct(id) }); err != nil {
		return nil, mapError(err)
	}
	if !deleted {
		return nil, mapError(domain.ErrProductNotFound)
	}
	return &structpb.Struct{}, nil
}
