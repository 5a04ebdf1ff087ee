package grpc

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"google.golang.org/grpc/metadata"
)

// mdCarrier lets otel propagators read and write gRPC metadata. Metadata keys
// are lower-case, which is what the W3C propagators emit.
type mdCarrier metadata.MD

var _ propagation.TextMapCarrier = mdCarrier{}

func (c mdCarrier) Get(key string) string {
	if values := metadata.MD(c).Get(key); len(values) > 0 {
		return values[0]
	}
	return ""
}

func (c mdCarrier) Set(key, value string) {
	metadata.MD(c).Set(key, value)
}

func (c mdCarrier) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	return keys
}

// ExtractIncoming returns ctx carrying the remote span context found in the
// incoming metadata, if any.
func ExtractIncoming(ctx context.Context) context.Context {
	return extractIncoming(ctx, otel.GetTextMapPropagator())
}

func extractIncoming(ctx context.Context, p propagation.TextMapPropagator) context.Context {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ctx
	}
	return p.Extract(ctx, mdCarrier(md))
}

func injectOutgoing(ctx context.Context, p propagation.TextMapPropagator) context.Context {
	md, ok := metadata.FromOutgoingContext(ctx)
	if ok {
		md = md.Copy()
	} else {
		md = metadata.MD{}
	}
	p.Inject(ctx, mdCarrier(md))
	return metadata.NewOutgoingContext(ctx, md)
}
