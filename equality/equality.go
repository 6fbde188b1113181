// Package equality implements a Schnorr-style sigma proof that two
// Pedersen commitments open to the same value under (possibly)
// different blindings, without revealing the value or either blinding.
// The statement reduces to a discrete-log proof: C1 - C2 = (r1-r2)*H,
// so proving knowledge of delta = r1-r2 for that difference is
// equivalent to proving the two commitments share a value.
package equality

import (
	"github.com/takakv/confidential-core/cerr"
	"github.com/takakv/confidential-core/group"
	"github.com/takakv/confidential-core/pedersen"
	"github.com/takakv/confidential-core/transcript"
)

// Proof is a commit-challenge-response Schnorr proof over the group's H
// generator.
type Proof struct {
	K group.Element
	Z group.Scalar
}

// Prove proves that c1 and c2 commit to the same value, given the
// blindings r1, r2 used to construct them respectively.
func Prove(c1, c2 pedersen.Commitment, r1, r2 group.Scalar) *Proof {
	delta := group.Ristretto255.NewScalar().Sub(r1, r2)

	k := group.Ristretto255.RandomScalar()
	K := group.Ristretto255.Element().Scale(pedersen.H, k)

	c := challenge(c1, c2, K)

	z := group.Ristretto255.NewScalar().Mul(c, delta)
	z.Add(z, k)

	return &Proof{K: K, Z: z}
}

// Verify checks that proof demonstrates c1 and c2 commit to the same
// value.
func Verify(c1, c2 pedersen.Commitment, proof *Proof) error {
	c := challenge(c1, c2, proof.K)

	lhs := group.Ristretto255.Element().Scale(pedersen.H, proof.Z)

	diff := group.Ristretto255.Element().Subtract(c1.Element(), c2.Element())
	rhs := group.Ristretto255.Element().Add(proof.K, group.Ristretto255.Element().Scale(diff, c))

	if !lhs.IsEqual(rhs) {
		return cerr.Wrap(cerr.ErrEqualityProofFailed, "equality proof verification failed")
	}
	return nil
}

func challenge(c1, c2 pedersen.Commitment, K group.Element) group.Scalar {
	tr := transcript.New("confidential-core/equality-proof")
	_ = tr.AppendPoint("C1", c1.Element())
	_ = tr.AppendPoint("C2", c2.Element())
	_ = tr.AppendPoint("K", K)
	return tr.ChallengeScalar("c")
}
