package api

import (
	"encoding/json"

	"connectrpc.com/connect"
)

// codecName replaces connect's built-in JSON codec, which only accepts
// protobuf messages.
const codecName = "json"

type jsonCodec struct{}

func (jsonCodec) Name() string { return codecName }

func (jsonCodec) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

func (jsonCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// WithJSONCodec must be passed to every handler and client of this service.
func WithJSONCodec() connect.Option {
	return connect.WithCodec(jsonCodec{})
}
