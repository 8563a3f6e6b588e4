package bundle_test

import (
	"io"
	"io/fs"
	"sync"
	"testing/fstest"

	"github.com/dmitrymomot/bundlekit/pkg/bundle"
)

// stubScope is a minimal bundle.Scope without a shared location.
type stubScope struct {
	types     map[string]bundle.Constructor
	resources fstest.MapFS
	openErr   error

	mu     sync.Mutex
	opened []string
}

func (s *stubScope) ResolveType(name string) (bundle.Constructor, bool) {
	ctor, ok := s.types[name]
	return ctor, ok
}

func (s *stubScope) OpenResource(path string) (io.ReadCloser, error) {
	s.mu.Lock()
	s.opened = append(s.opened, path)
	s.mu.Unlock()

	if s.openErr != nil {
		return nil, s.openErr
	}
	if s.resources == nil {
		return nil, fs.ErrNotExist
	}
	return s.resources.Open(path)
}

func (s *stubScope) openedPaths() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.opened...)
}

// sharedStubScope adds the shared migration-fallback location.
type sharedStubScope struct {
	stubScope
	shared        fstest.MapFS
	sharedOpenErr error
}

func (s *sharedStubScope) OpenSharedResource(path string) (io.ReadCloser, error) {
	if s.sharedOpenErr != nil {
		return nil, s.sharedOpenErr
	}
	if s.shared == nil {
		return nil, fs.ErrNotExist
	}
	return s.shared.Open(path)
}

// rawDecoder decodes a stream into a single-entry bundle holding the raw
// content, which is enough to observe which resource was decoded.
type rawDecoder struct {
	ext    string
	decode func(io.Reader) (bundle.Bundle, error)
}

func (d rawDecoder) Extension() string {
	if d.ext != "" {
		return d.ext
	}
	return "properties"
}

func (d rawDecoder) Decode(r io.Reader) (bundle.Bundle, error) {
	if d.decode != nil {
		return d.decode(r)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return bundle.NewMap(map[string]string{"raw": string(data)}), nil
}

func textFS(path, content string) fstest.MapFS {
	return fstest.MapFS{path: &fstest.MapFile{Data: []byte(content)}}
}
