// Package yellowcarv1 holds the wire types of the yellowcar.v1 API.
//
// Messages travel as JSON over the Connect protocol. Handlers and clients in
// package yellowcarv1connect install Codec, so browsers can call the API
// with a plain fetch and a JSON body.
package yellowcarv1

import (
	"encoding/json"

	"connectrpc.com/connect"
)

// Codec marshals yellowcar.v1 messages as JSON. It registers under the name
// "json", replacing Connect's protobuf JSON codec.
type Codec struct{}

var _ connect.Codec = Codec{}

// Name implements connect.Codec.
func (Codec) Name() string { return "json" }

// Marshal implements connect.Codec.
func (Codec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

// Unmarshal implements connect.Codec. An empty body leaves msg untouched.
func (Codec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, msg)
}

// WithCodec returns the Connect option that installs Codec on a handler or
// client.
func WithCodec() connect.Option {
	return connect.WithCodec(Codec{})
}
