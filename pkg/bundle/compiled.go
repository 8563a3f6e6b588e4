package bundle

import (
	"errors"
	"fmt"
)

// loadCompiled resolves name to a registered bundle type and invokes its
// zero-argument constructor. Absence of a suitable type is an empty result
// so that remaining formats can still be attempted.
func (p *Provider) loadCompiled(name string) (Bundle, error) {
	ctor, ok := p.scope.ResolveType(name)
	if !ok || ctor == nil {
		return nil, nil
	}

	b, err := ctor()
	if err != nil {
		var access *AccessError
		if errors.As(err, &access) {
			// Access was already granted at resolution time; losing it
			// mid-construction means the environment broke an invariant
			// this package depends on.
			panic(fmt.Errorf("%w: constructing %q: %s", ErrInternal, name, err))
		}
		// The bundle's own constructor failed; the caller sees the
		// original error, not a wrapped one.
		return nil, err
	}
	if b == nil {
		return nil, nil
	}
	return b, nil
}
