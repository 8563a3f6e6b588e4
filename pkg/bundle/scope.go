package bundle

import (
	"fmt"
	"io"
)

// Scope is an isolated unit of code and resources. Types and resources inside
// a scope are visible only through explicit resolution; every lookup a
// Provider performs is parameterized by exactly one Scope.
type Scope interface {
	// ResolveType resolves name to a constructor for a compiled bundle type.
	// A missing type, a type that is not a bundle, or a type without an
	// accessible zero-argument constructor all report ok=false.
	ResolveType(name string) (ctor Constructor, ok bool)

	// OpenResource opens the resource at path within the scope. Absence is
	// signalled with an error satisfying errors.Is(err, fs.ErrNotExist);
	// any other error is treated as an I/O failure.
	OpenResource(path string) (io.ReadCloser, error)
}

// SharedResolver is implemented by scopes whose originating loading context
// has a secondary shared, unscoped resource location. The textual loader
// consults it when the primary scope has no resource, purely for backward
// compatibility with bundles that have not yet been migrated into an
// isolated scope.
type SharedResolver interface {
	OpenSharedResource(path string) (io.ReadCloser, error)
}

// Decoder turns an open byte stream into a bundle. Malformed input and
// truncated streams must fail with an error wrapping ErrDecode.
type Decoder interface {
	// Decode reads the stream to completion and builds a bundle. The caller
	// owns the stream and closes it.
	Decode(r io.Reader) (Bundle, error)

	// Extension is the resource file extension of the decoder's textual
	// format, without the leading dot.
	Extension() string
}

// AccessError reports a construction-machinery failure that is not
// attributable to the bundle's own constructor logic, such as a constructor
// whose access grant was revoked between resolution and invocation. The
// compiled loader treats it as a fatal invariant violation.
type AccessError struct {
	Name string
	Err  error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("bundle: constructor access for %q: %s", e.Name, e.Err)
}

func (e *AccessError) Unwrap() error {
	return e.Err
}
