package bundlekit

import (
	"github.com/dmitrymomot/bundlekit/pkg/bundle"
)

// Type aliases - public API
type (
	// Bundle is a localized key/value data object.
	Bundle = bundle.Bundle

	// Provider locates and constructs resource bundles within a scope.
	Provider = bundle.Provider

	// Format identifies a bundle representation a Provider may attempt.
	Format = bundle.Format

	// Scope is an isolated unit of code and resources.
	Scope = bundle.Scope

	// Decoder turns an open byte stream into a bundle.
	Decoder = bundle.Decoder

	// Option configures a Provider during construction.
	Option = bundle.Option
)

// Recognized formats.
const (
	FormatCompiled = bundle.FormatCompiled
	FormatTextual  = bundle.FormatTextual
)

// New creates a new Provider over the given scope.
func New(scope Scope, opts ...Option) (*Provider, error) {
	return bundle.New(scope, opts...)
}

// Provider options.
var (
	WithFormats     = bundle.WithFormats
	WithNameMangler = bundle.WithNameMangler
	WithDecoder     = bundle.WithDecoder
	WithLogger      = bundle.WithLogger
)
