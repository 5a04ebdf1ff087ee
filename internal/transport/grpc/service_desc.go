package grpc

import (
	"context"

	"github.com/ozzus/nextbid/internal/domain/ports"
	"github.com/ozzus/nextbid/internal/transport/wire"
	"go.opentelemetry.io/otel"
	"google.golang.org/grpc"
)

const serviceName = "nextbid.v1.BidPlannerService"

// BidPlannerServer is the gRPC surface of the bid planner. Messages are the
// wire JSON shapes carried by the json codec.
type BidPlannerServer interface {
	BuildCommand(context.Context, *wire.BuildCommandRequest) (*ports.CommandResult, error)
	SimulateCommand(context.Context, *wire.SimulateCommandRequest) (*ports.CommandResult, error)
	CompileBidGroup(context.Context, *wire.CompileBidGroupRequest) (*ports.CompiledBidGroup, error)
	PreviewBidGroup(context.Context, *wire.PreviewBidGroupRequest) (*ports.BidGroupPreview, error)
}

var bidPlannerServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*BidPlannerServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "BuildCommand", Handler: unaryHandler("BuildCommand", BidPlannerServer.BuildCommand)},
		{MethodName: "SimulateCommand", Handler: unaryHandler("SimulateCommand", BidPlannerServer.SimulateCommand)},
		{MethodName: "CompileBidGroup", Handler: unaryHandler("CompileBidGroup", BidPlannerServer.CompileBidGroup)},
		{MethodName: "PreviewBidGroup", Handler: unaryHandler("PreviewBidGroup", BidPlannerServer.PreviewBidGroup)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "nextbid/v1/bid_planner.proto",
}

func fullMethod(method string) string {
	return "/" + serviceName + "/" + method
}

func unaryHandler[Req, Resp any](method string, call func(BidPlannerServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}

		server := srv.(BidPlannerServer)
		if interceptor == nil {
			return call(server, ctx, in)
		}

		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod(method)}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(server, ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// Client calls BidPlannerService over a connection using the json codec.
type Client struct {
	conn grpc.ClientConnInterface
}

func NewClient(conn grpc.ClientConnInterface) *Client {
	return &Client{conn: conn}
}

func (c *Client) BuildCommand(ctx context.Context, req *wire.BuildCommandRequest) (*ports.CommandResult, error) {
	out := new(ports.CommandResult)
	if err := c.invoke(ctx, "BuildCommand", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SimulateCommand(ctx context.Context, req *wire.SimulateCommandRequest) (*ports.CommandResult, error) {
	out := new(ports.CommandResult)
	if err := c.invoke(ctx, "SimulateCommand", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CompileBidGroup(ctx context.Context, req *wire.CompileBidGroupRequest) (*ports.CompiledBidGroup, error) {
	out := new(ports.CompiledBidGroup)
	if err := c.invoke(ctx, "CompileBidGroup", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) PreviewBidGroup(ctx context.Context, req *wire.PreviewBidGroupRequest) (*ports.BidGroupPreview, error) {
	out := new(ports.BidGroupPreview)
	if err := c.invoke(ctx, "PreviewBidGroup", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) invoke(ctx context.Context, method string, req, out any) error {
	ctx = injectOutgoing(ctx, otel.GetTextMapPropagator())
	return c.conn.Invoke(ctx, fullMethod(method), req, out, grpc.CallContentSubtype(codecName))
}
