// Package codec provides textual bundle decoders for the bundle provider.
//
// Each decoder implements bundle.Decoder: it reads an open byte stream to
// completion and produces an immutable key/value bundle. Four formats are
// supported:
//
//   - Properties — classic .properties key/value files
//   - JSON — nested objects flattened to dotted keys
//   - YAML — nested mappings flattened to dotted keys
//   - TOML — nested tables flattened to dotted keys
//
// Nested structures flatten to dot notation, so
//
//	{"buttons": {"save": "Save"}}
//
// is addressable as "buttons.save". Malformed input and read failures fail
// with an error wrapping bundle.ErrDecode; decoders never close the stream —
// the textual loader owns it.
package codec
