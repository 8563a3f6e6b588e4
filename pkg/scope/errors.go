package scope

import "errors"

var (
	// ErrGrantSpent reports a restricted constructor invoked after its
	// single-use access grant was consumed.
	ErrGrantSpent = errors.New("scope: construction grant already spent")
)
