package schema

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhump/protoreflect/desc"
	"github.com/jhump/protoreflect/grpcreflect"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/funvibe/deriva/internal/typeinfo"
)

// FetchReflectedTypes connects to a gRPC server exposing the reflection
// service and converts the request/response messages of every service it
// advertises. Messages are deduplicated by fully-qualified name and
// returned in name order for determinism.
func FetchReflectedTypes(ctx context.Context, target string) ([]*typeinfo.ParamTypeInfo, error) {
	conn, err := grpc.NewClient(target, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", target, err)
	}
	defer conn.Close()

	client := grpcreflect.NewClientAuto(ctx, conn)
	defer client.Reset()

	services, err := client.ListServices()
	if err != nil {
		return nil, fmt.Errorf("list services on %s: %w", target, err)
	}

	seen := make(map[string]*desc.MessageDescriptor)
	for _, svc := range services {
		sd, err := client.ResolveService(svc)
		if err != nil {
			return nil, fmt.Errorf("resolve service %s: %w", svc, err)
		}
		for _, method := range sd.GetMethods() {
			for _, md := range []*desc.MessageDescriptor{method.GetInputType(), method.GetOutputType()} {
				seen[md.GetFullyQualifiedName()] = md
			}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	mds := make([]*desc.MessageDescriptor, len(names))
	for i, name := range names {
		mds[i] = seen[name]
	}
	return ConvertMessages(mds), nil
}
