package catalog

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "storefront.admin.v1.CatalogAdmin"

// Method names.
const (
	MethodLogin         = "Login"
	MethodListProducts  = "ListProducts"
	MethodSaveProduct   = "SaveProduct"
	MethodDeleteProduct = "DeleteProduct"
)

// FullMethod returns "/<service>/<method>".
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// CatalogAdminServer is the admin catalog API. Messages are
// google.protobuf.Struct documents.
type CatalogAdminServer interface {
	Login(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	ListProducts(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	SaveProduct(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	DeleteProduct(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

type unaryCall func(srv CatalogAdminServer, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(method string, call unaryCall) grpc.MethodHandler {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(CatalogAdminServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FullMethod(method)}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(CatalogAdminServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// ServiceDesc describes CatalogAdmin for grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CatalogAdminServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: MethodLogin, Handler: unaryHandler(MethodLogin, CatalogAdminServer.Login)},
		{MethodName: MethodListProducts, Handler: unaryHandler(MethodListProducts, CatalogAdminServer.ListProducts)},
		{MethodName: MethodSaveProduct, Handler: unaryHandler(MethodSaveProduct, CatalogAdminServer.SaveProduct)},
		{MethodName: MethodDeleteProduct, Handler: unaryHandler(MethodDeleteProduct, CatalogAdminServer.DeleteProduct)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "storefront/admin/v1/catalog_admin.proto",
}

func RegisterCatalogAdminServer(s grpc.ServiceRegistrar, srv CatalogAdminServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// Client calls CatalogAdmin over a connection.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) invoke(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Login(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodLogin, in, opts...)
}

func (c *Client) ListProducts(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodListProducts, in, opts...)
}

func (c *Client) SaveProduct(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodSaveProduct, in, opts...)
}

func (c *Client) DeleteProduct(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodDeleteProduct, in, opts...)
}
