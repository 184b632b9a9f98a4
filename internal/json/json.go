// Package json contains utilities for handling JSON.
package json

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

// Decode decodes a single JSON value from the decoder and rejects trailing
// tokens so that concatenated payloads are not silently accepted.
func Decode(dst any, decoder *json.Decoder) error {
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("decoding json: %w", err)
	}

	if _, err := decoder.Token(); err != io.EOF {
		return fmt.Errorf("unexpected token after JSON object: %w", err)
	}
	return nil
}
