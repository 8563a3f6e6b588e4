package codec

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/bundlekit/pkg/bundle"
)

// YAML returns a decoder for YAML bundles. Nested mappings are flattened to
// dotted keys.
func YAML() bundle.Decoder {
	return yamlDecoder{}
}

type yamlDecoder struct{}

func (yamlDecoder) Extension() string {
	return "yaml"
}

func (yamlDecoder) Decode(r io.Reader) (bundle.Bundle, error) {
	var raw map[string]any
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		// An empty document is an empty bundle, not a failure.
		if errors.Is(err, io.EOF) {
			return bundle.NewMap(nil), nil
		}
		return nil, fmt.Errorf("%w: parsing yaml: %s", bundle.ErrDecode, err)
	}
	return bundle.NewMap(flatten(raw, "")), nil
}
