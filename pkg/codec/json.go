package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrymomot/bundlekit/pkg/bundle"
)

// JSON returns a decoder for JSON bundles. Nested objects are flattened to
// dotted keys.
func JSON() bundle.Decoder {
	return jsonDecoder{}
}

type jsonDecoder struct{}

func (jsonDecoder) Extension() string {
	return "json"
}

func (jsonDecoder) Decode(r io.Reader) (bundle.Bundle, error) {
	var raw map[string]any
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return bundle.NewMap(nil), nil
		}
		return nil, fmt.Errorf("%w: parsing json: %s", bundle.ErrDecode, err)
	}
	return bundle.NewMap(flatten(raw, "")), nil
}
