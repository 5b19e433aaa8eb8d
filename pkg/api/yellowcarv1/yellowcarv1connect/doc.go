// Package yellowcarv1connect binds the yellowcar.v1 services to Connect:
// procedure names, handler constructors and clients.
package yellowcarv1connect

import (
	"strings"

	"connectrpc.com/connect"

	"github.com/adarkz/YellowCarGame-chef/pkg/api/yellowcarv1"
)

// handlerOptions puts the JSON codec first so callers can still override it.
func handlerOptions(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{yellowcarv1.WithCodec()}, opts...)
}

func clientOptions(opts []connect.ClientOption) []connect.ClientOption {
	return append([]connect.ClientOption{yellowcarv1.WithCodec()}, opts...)
}

func trimBaseURL(baseURL string) string {
	return strings.TrimRight(baseURL, "/")
}
