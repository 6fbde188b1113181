package bulletproofs

import (
	"fmt"

	"github.com/takakv/confidential-core/group"
	"github.com/takakv/confidential-core/pedersen"
)

// Params holds the public generators a range proof of bit width N is
// verified against. G and H must be the exact same points the value
// commitment being range-proved was built with — they are set to
// pedersen.G/pedersen.H, not an independently hashed pair, since a range
// proof verifies a blinding (tau_x) that was computed against the
// commitment's own H; any other H makes every honest proof fail. Gg and
// Hh are independent per-bit vector generators derived by hashing to the
// curve, and U blinds the inner-product argument. None of Gg, Hh, U has
// a known discrete-log relation to G, H, or each other.
type Params struct {
	N      int
	G, H   group.Element
	Gg, Hh []group.Element
	U      group.Element
}

// Setup derives the generator vectors for an n-bit range proof. To
// aggregate m values of n bits each, call Setup(n * m) and pass the
// result to ProveAggregated, which gives each value its own n-entry
// block of the vectors.
func Setup(n int) *Params {
	p := &Params{
		N:  n,
		G:  pedersen.G,
		H:  pedersen.H,
		Gg: make([]group.Element, n),
		Hh: make([]group.Element, n),
		U:  group.Ristretto255.HashToElement("confidential-core/bulletproofs/U"),
	}
	for i := 0; i < n; i++ {
		p.Gg[i] = group.Ristretto255.HashToElement(fmt.Sprintf("confidential-core/bulletproofs/G/%d", i))
		p.Hh[i] = group.Ristretto255.HashToElement(fmt.Sprintf("confidential-core/bulletproofs/H/%d", i))
	}
	return p
}
