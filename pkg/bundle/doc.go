// Package bundle locates and constructs locale-specific resource bundles:
// named, localized key/value objects addressed by a base name and a locale.
//
// The package is the leaf-level loader of a resource-bundle pipeline. It does
// not negotiate locales, walk fallback chains, or cache results — a caller
// hands it one fully resolved base name and locale, and it either produces a
// freshly constructed bundle or reports that none is available. All
// configuration happens during construction, making a Provider immutable and
// safe for concurrent use.
//
// # Basic Usage
//
// Create a Provider over a scope and ask it for bundles:
//
//	sc := scope.New(scope.WithResources(resourcesFS))
//
//	provider, err := bundle.New(sc,
//		bundle.WithFormats(bundle.FormatTextual),
//		bundle.WithDecoder(codec.Properties()),
//	)
//	if err != nil {
//		return err
//	}
//
//	b, err := provider.Load("messages", language.MustParse("de-DE"))
//	if err != nil {
//		return err
//	}
//	if b == nil {
//		// no bundle for this name and locale; a normal outcome,
//		// the caller decides whether to retry with a broader locale
//	}
//
// # Formats
//
// A Provider attempts an ordered list of bundle representations:
//
//   - FormatCompiled resolves the mangled bundle name to a registered
//     constructible type within the scope and invokes its zero-argument
//     constructor.
//   - FormatTextual maps the mangled bundle name to a resource path, opens a
//     byte stream within the scope (falling back to the scope's shared
//     location for bundles not yet migrated into an isolated scope), and
//     decodes it with the configured Decoder.
//
// The first format that yields a bundle wins; there is no merging across
// formats and no implicit priority beyond declared order. Constructing a
// Provider with an unrecognized format fails with ErrInvalidFormat.
//
// # Name Mangling
//
// The mapping from (base name, locale) to a concrete bundle name is a pure
// injected hook. DefaultMangler implements the conventional underscore
// suffixing:
//
//	DefaultMangler("messages", language.MustParse("de-DE"))
//	// Output: "messages_de_DE"
//
// # Error Semantics
//
// Absence is not an error: a missing type, a missing resource, or an
// inaccessible constructor all yield an empty result so that later formats
// can still be attempted. I/O and decode failures are different — they wrap
// ErrDecode and surface immediately. An error returned by a bundle type's
// own constructor passes through to the caller unchanged. A construction
// failure that is not attributable to the bundle's own logic (an
// AccessError) violates an invariant this package assumes of its
// environment and panics wrapping ErrInternal.
package bundle
