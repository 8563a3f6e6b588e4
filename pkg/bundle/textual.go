package bundle

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"
)

// loadTextual resolves name to a resource path, opens a byte stream within
// the provider's scope (falling back to the scope's shared location), and
// decodes it. The stream is released on every exit path.
func (p *Provider) loadTextual(name string) (Bundle, error) {
	path, ok := resourcePath(name, p.decoder.Extension())
	if !ok {
		return nil, nil
	}

	stream, err := p.openResource(path)
	if err != nil {
		return nil, err
	}
	if stream == nil {
		return nil, nil
	}
	defer stream.Close()

	b, err := p.decoder.Decode(stream)
	if err != nil {
		if errors.Is(err, ErrDecode) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: decoding %q: %s", ErrDecode, path, err)
	}
	return b, nil
}

// openResource opens path within the primary scope. When the primary scope
// has no such resource, the scope's shared location is tried; this fallback
// exists only for bundles that have not yet been migrated into an isolated
// scope. A nil stream with a nil error means the resource is absent in both
// locations. I/O failures never fall through to the shared location.
func (p *Provider) openResource(path string) (io.ReadCloser, error) {
	stream, err := p.scope.OpenResource(path)
	if err == nil {
		return stream, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: opening %q: %s", ErrDecode, path, err)
	}

	shared, ok := p.scope.(SharedResolver)
	if !ok {
		return nil, nil
	}

	stream, err = shared.OpenSharedResource(path)
	if err == nil {
		p.log.Debug("resource resolved from shared location", slog.String("path", path))
		return stream, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return nil, fmt.Errorf("%w: opening shared %q: %s", ErrDecode, path, err)
}

// resourcePath maps a bundle name to a resource path by replacing name
// separators with path separators and appending the decoder's extension.
// Names carrying a scheme marker are unresolvable: they would otherwise be
// misread as hierarchical names, so no I/O is attempted for them.
func resourcePath(name, ext string) (string, bool) {
	if strings.Contains(name, "://") {
		return "", false
	}
	return strings.ReplaceAll(name, ".", "/") + "." + ext, true
}
