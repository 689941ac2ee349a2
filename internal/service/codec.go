package service

import (
	"encoding/json"
	"fmt"
)

// JSONCodec is a Connect codec for the plain Go request and response structs
// of this package. It is registered under the "json" name, replacing
// Connect's protobuf JSON codec, so clients send application/json bodies.
type JSONCodec struct{}

// Name implements connect.Codec.
func (JSONCodec) Name() string {
	return "json"
}

// Marshal implements connect.Codec.
func (JSONCodec) Marshal(msg any) ([]byte, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %T: %w", msg, err)
	}
	return data, nil
}

// Unmarshal implements connect.Codec.
func (JSONCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, msg); err != nil {
		return fmt.Errorf("failed to unmarshal %T: %w", msg, err)
	}
	return nil
}
