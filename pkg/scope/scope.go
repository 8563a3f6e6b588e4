package scope

import (
	"io"
	"io/fs"

	"github.com/dmitrymomot/bundlekit/pkg/bundle"
)

type typeEntry struct {
	ctor       bundle.Constructor
	restricted bool
}

// Scope is a registry of constructible bundle types combined with fs.FS
// resource locations. Register everything before first use; lookups are
// read-only and safe for concurrent use.
type Scope struct {
	types  map[string]typeEntry
	res    fs.FS
	shared fs.FS
}

// Option configures the Scope during construction.
type Option func(*Scope)

// New creates a new Scope with the given options.
func New(opts ...Option) *Scope {
	s := &Scope{types: make(map[string]typeEntry)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithResources attaches the primary resource filesystem.
func WithResources(fsys fs.FS) Option {
	return func(s *Scope) {
		s.res = fsys
	}
}

// WithSharedResources attaches the secondary shared filesystem consulted by
// the textual loader when the primary resources have no match.
func WithSharedResources(fsys fs.FS) Option {
	return func(s *Scope) {
		s.shared = fsys
	}
}

// RegisterType registers a constructible bundle type under the given bundle
// name. A nil constructor is ignored.
func (s *Scope) RegisterType(name string, ctor bundle.Constructor) {
	if ctor == nil {
		return
	}
	s.types[name] = typeEntry{ctor: ctor}
}

// RegisterRestrictedType registers a type whose defining scope is not
// ordinarily readable from here. Its constructor is only invocable under the
// single-use access grant minted at resolution time.
func (s *Scope) RegisterRestrictedType(name string, ctor bundle.Constructor) {
	if ctor == nil {
		return
	}
	s.types[name] = typeEntry{ctor: ctor, restricted: true}
}

// ResolveType resolves name to a constructor. For restricted types the
// returned constructor carries a fresh grant covering exactly one
// construction call.
func (s *Scope) ResolveType(name string) (bundle.Constructor, bool) {
	entry, ok := s.types[name]
	if !ok {
		return nil, false
	}
	if !entry.restricted {
		return entry.ctor, true
	}

	g := newGrant()
	ctor := entry.ctor
	return func() (bundle.Bundle, error) {
		if !g.use() {
			return nil, &bundle.AccessError{Name: name, Err: ErrGrantSpent}
		}
		return ctor()
	}, true
}

// OpenResource opens path within the primary resource filesystem.
func (s *Scope) OpenResource(path string) (io.ReadCloser, error) {
	return open(s.res, path)
}

// OpenSharedResource opens path within the shared filesystem.
func (s *Scope) OpenSharedResource(path string) (io.ReadCloser, error) {
	return open(s.shared, path)
}

func open(fsys fs.FS, path string) (io.ReadCloser, error) {
	if fsys == nil {
		return nil, fs.ErrNotExist
	}
	return fsys.Open(path)
}
