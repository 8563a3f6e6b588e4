package scope

import "sync/atomic"

// grant is the scoped-permission context for one restricted construction
// call. It is minted at resolution time and spent by the first invocation;
// there is no ambient privilege state.
type grant struct {
	spent atomic.Bool
}

func newGrant() *grant {
	return &grant{}
}

// use consumes the grant, reporting whether it was still live.
func (g *grant) use() bool {
	return g.spent.CompareAndSwap(false, true)
}
