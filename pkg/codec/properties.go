package codec

import (
	"fmt"
	"io"

	"github.com/magiconair/properties"

	"github.com/dmitrymomot/bundlekit/pkg/bundle"
)

// Properties returns a decoder for classic .properties key/value files.
func Properties() bundle.Decoder {
	return propertiesDecoder{}
}

type propertiesDecoder struct{}

func (propertiesDecoder) Extension() string {
	return "properties"
}

func (propertiesDecoder) Decode(r io.Reader) (bundle.Bundle, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: reading properties: %s", bundle.ErrDecode, err)
	}

	p, err := properties.Load(data, properties.UTF8)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing properties: %s", bundle.ErrDecode, err)
	}

	return bundle.NewMap(p.Map()), nil
}
