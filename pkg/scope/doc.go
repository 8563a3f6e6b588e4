// Package scope provides a concrete code/resource scope for the bundle
// provider: a registry of constructible bundle types plus fs.FS-backed
// resource locations.
//
// A Scope is assembled at startup — types registered, filesystems attached —
// and is read-only afterwards, making lookups safe for concurrent use.
//
// # Usage
//
// Attach resources and register types before handing the scope to a
// provider:
//
//	//go:embed resources
//	var resourcesFS embed.FS
//
//	sc := scope.New(
//		scope.WithResources(resourcesFS),
//		scope.WithSharedResources(legacyFS),
//	)
//	sc.RegisterType("messages_de_DE", func() (bundle.Bundle, error) {
//		return bundle.NewMap(map[string]string{"greeting": "Hallo"}), nil
//	})
//
// The shared filesystem is the migration-compatibility location: the textual
// loader falls back to it when the primary resources have no match.
//
// # Restricted Types
//
// A type whose defining scope is not ordinarily readable from the provider's
// scope is registered with RegisterRestrictedType. Resolving such a type
// mints a single-use access grant bound to the returned constructor; the
// grant covers exactly one construction call, and a constructor invoked on a
// spent grant fails with bundle.AccessError.
package scope
