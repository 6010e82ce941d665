// Package framepb holds the service descriptors of the gophframe.v1 API.
// Messages are protobuf well-known types so no generated code is needed;
// the descriptors mirror what protoc-gen-go-grpc would emit.
package framepb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
)

const protoFile = "gophframe/v1/frames.proto"

// HeaderFilename carries the download name of a rendered frame.
const HeaderFilename = "x-filename"

// HeaderFallbacks carries the number of fallbacks applied while rendering.
const HeaderFallbacks = "x-fallbacks"

func unaryHandler[S any, Req proto.Message, Resp proto.Message](
	fullMethod string,
	newReq func() Req,
	call func(S, context.Context, Req) (Resp, error),
) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := newReq()
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(S), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(S), ctx, req.(Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

func invoke[Resp proto.Message](ctx context.Context, cc grpc.ClientConnInterface, method string, in proto.Message, out Resp, opts ...grpc.CallOption) (Resp, error) {
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		var zero Resp
		return zero, err
	}
	return out, nil
}
