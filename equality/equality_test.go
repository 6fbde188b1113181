package equality_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/takakv/confidential-core/equality"
	"github.com/takakv/confidential-core/group"
	"github.com/takakv/confidential-core/pedersen"
)

func TestEqualityProofAcceptsSameValue(t *testing.T) {
	v := group.Ristretto255.NewScalar().SetUint64(7)
	r1 := group.Ristretto255.RandomScalar()
	r2 := group.Ristretto255.RandomScalar()

	c1 := pedersen.Commit(v, r1)
	c2 := pedersen.Commit(v, r2)

	proof := equality.Prove(c1, c2, r1, r2)
	require.NoError(t, equality.Verify(c1, c2, proof))
}

func TestEqualityProofRejectsDifferentValue(t *testing.T) {
	v1 := group.Ristretto255.NewScalar().SetUint64(7)
	v2 := group.Ristretto255.NewScalar().SetUint64(8)
	r1 := group.Ristretto255.RandomScalar()
	r2 := group.Ristretto255.RandomScalar()

	c1 := pedersen.Commit(v1, r1)
	c2 := pedersen.Commit(v2, r2)

	// Prover here is dishonest: it supplies r1,r2 as though v1==v2, but
	// the commitments actually differ in value, so the verification
	// equation must fail.
	proof := equality.Prove(c1, c2, r1, r2)
	require.Error(t, equality.Verify(c1, c2, proof))
}

func TestEqualityProofRejectsTamperedCommitment(t *testing.T) {
	v := group.Ristretto255.NewScalar().SetUint64(3)
	r1 := group.Ristretto255.RandomScalar()
	r2 := group.Ristretto255.RandomScalar()

	c1 := pedersen.Commit(v, r1)
	c2 := pedersen.Commit(v, r2)
	proof := equality.Prove(c1, c2, r1, r2)

	// Modify c2's implied value by 1 unit worth of G.
	tampered := c2.Add(pedersen.Commit(group.Ristretto255.NewScalar().SetUint64(1), group.Ristretto255.NewScalar()))
	require.Error(t, equality.Verify(c1, tampered, proof))
}

func TestEqualityProofRejectsTamperedResponse(t *testing.T) {
	v := group.Ristretto255.NewScalar().SetUint64(3)
	r1 := group.Ristretto255.RandomScalar()
	r2 := group.Ristretto255.RandomScalar()

	c1 := pedersen.Commit(v, r1)
	c2 := pedersen.Commit(v, r2)
	proof := equality.Prove(c1, c2, r1, r2)

	proof.Z = group.Ristretto255.NewScalar().Add(proof.Z, group.Ristretto255.NewScalar().SetUint64(1))
	require.Error(t, equality.Verify(c1, c2, proof))
}
