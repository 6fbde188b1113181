// Package pedersen implements Pedersen commitments over the group
// package's Ristretto255 backend: C(v, r) = v*G + r*H, perfectly
// hiding and computationally binding under the discrete-log assumption,
// with H derived independently of G so no party knows log_G(H).
package pedersen

import (
	"github.com/takakv/confidential-core/group"
)

// G and H are the fixed base points every commitment in this module is
// expressed in terms of. H is derived by hashing to the curve so that
// no discrete-log relation between G and H is known to anyone.
var (
	G = group.Ristretto255.Generator()
	H = group.Ristretto255.HashToElement("confidential-core/pedersen/H")
)

// Commitment is a Pedersen commitment to a value v under blinding r.
type Commitment struct {
	point group.Element
}

// Commit computes C = v*G + r*H.
func Commit(v, r group.Scalar) Commitment {
	vg := group.Ristretto255.Element().BaseScale(v)
	rh := group.Ristretto255.Element().Scale(H, r)
	return Commitment{point: group.Ristretto255.Element().Add(vg, rh)}
}

// CommitUint64 is a convenience wrapper for committing to a plain
// non-negative integer amount.
func CommitUint64(v uint64, r group.Scalar) Commitment {
	return Commit(group.Ristretto255.NewScalar().SetUint64(v), r)
}

// FromElement wraps an already-computed group element as a commitment,
// e.g. after decoding one off the wire.
func FromElement(e group.Element) Commitment {
	return Commitment{point: e}
}

// Element exposes the underlying group element, e.g. to absorb into a
// transcript or serialize.
func (c Commitment) Element() group.Element { return c.point }

// Add returns the commitment to the sum of the two committed values,
// exploiting additive homomorphism: C(v1,r1) + C(v2,r2) = C(v1+v2, r1+r2).
func (c Commitment) Add(other Commitment) Commitment {
	return Commitment{point: group.Ristretto255.Element().Add(c.point, other.point)}
}

// Sub returns the commitment to the difference of the two committed
// values: C(v1,r1) - C(v2,r2) = C(v1-v2, r1-r2).
func (c Commitment) Sub(other Commitment) Commitment {
	return Commitment{point: group.Ristretto255.Element().Subtract(c.point, other.point)}
}

// ScalarMul returns the commitment to the committed value scaled by s:
// s*C(v,r) = C(s*v, s*r).
func (c Commitment) ScalarMul(s group.Scalar) Commitment {
	return Commitment{point: group.Ristretto255.Element().Scale(c.point, s)}
}

// IsEqual reports whether the two commitments encode the same point.
// Equal points do not necessarily mean equal (v, r) pairs were used to
// construct them, but every commitment in this module is produced by
// Commit, so in practice it does.
func (c Commitment) IsEqual(other Commitment) bool {
	return c.point.IsEqual(other.point)
}

// Verify reports whether C == v*G + r*H, i.e. whether (v, r) is a valid
// opening of c. Used by tests and by callers that choose to open a
// commitment rather than prove a statement about it.
func (c Commitment) Verify(v, r group.Scalar) bool {
	return c.IsEqual(Commit(v, r))
}

// MarshalBinary returns the canonical 32-byte encoding of the
// commitment's underlying point.
func (c Commitment) MarshalBinary() ([]byte, error) {
	return c.point.MarshalBinary()
}

// UnmarshalBinary decodes a canonical 32-byte point encoding, rejecting
// non-canonical or non-subgroup input the same way the underlying
// group element does.
func (c *Commitment) UnmarshalBinary(data []byte) error {
	e := group.Ristretto255.Element()
	if err := e.UnmarshalBinary(data); err != nil {
		return err
	}
	c.point = e
	return nil
}
