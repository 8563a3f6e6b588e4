package codec

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/dmitrymomot/bundlekit/pkg/bundle"
)

// TOML returns a decoder for TOML bundles. Nested tables are flattened to
// dotted keys.
func TOML() bundle.Decoder {
	return tomlDecoder{}
}

type tomlDecoder struct{}

func (tomlDecoder) Extension() string {
	return "toml"
}

func (tomlDecoder) Decode(r io.Reader) (bundle.Bundle, error) {
	var raw map[string]any
	if _, err := toml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: parsing toml: %s", bundle.ErrDecode, err)
	}
	return bundle.NewMap(flatten(raw, "")), nil
}
