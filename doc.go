// Package bundlekit locates and constructs locale-specific resource bundles.
//
// Bundlekit is the leaf-level loader of a resource-bundle pipeline: given one
// fully resolved base name and locale, it finds and constructs the concrete
// bundle object. Locale negotiation, fallback chains, and caching belong to
// the caller.
//
// The root package re-exports the core types; the implementation lives in
// three focused packages:
//
//   - pkg/bundle — the provider: format negotiation, compiled-type and
//     textual loading, name mangling
//   - pkg/scope — a concrete code/resource scope: a type registry plus
//     fs.FS-backed resource locations with a shared migration fallback
//   - pkg/codec — textual decoders for .properties, JSON, YAML, and TOML
//
// # Quick Start
//
//	sc := scope.New(scope.WithResources(resourcesFS))
//
//	provider, err := bundlekit.New(sc,
//		bundlekit.WithFormats(bundlekit.FormatTextual),
//		bundlekit.WithDecoder(codec.Properties()),
//	)
//	if err != nil {
//		return err
//	}
//
//	b, err := provider.Load("messages", language.MustParse("de-DE"))
package bundlekit
