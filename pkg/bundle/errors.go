package bundle

import "errors"

var (
	// ErrInvalidFormat reports a format identifier outside the recognized set.
	ErrInvalidFormat = errors.New("bundle: invalid format")

	// ErrDecode reports an I/O or parse failure while loading a textual resource.
	ErrDecode = errors.New("bundle: decode failed")

	// ErrInternal reports a construction failure that is not attributable to
	// the bundle's own logic. It is delivered via panic, never returned.
	ErrInternal = errors.New("bundle: internal invariant violated")

	ErrNilScope      = errors.New("bundle: scope cannot be nil")
	ErrNilMangler    = errors.New("bundle: name mangler cannot be nil")
	ErrNoDecoder     = errors.New("bundle: textual format requires a decoder")
	ErrEmptyBaseName = errors.New("bundle: base name cannot be empty")
)
