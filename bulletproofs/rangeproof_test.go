package bulletproofs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/takakv/confidential-core/bulletproofs"
	"github.com/takakv/confidential-core/group"
)

func TestRangeProofCompletenessZero(t *testing.T) {
	params := bulletproofs.Setup(8)
	gamma := group.Ristretto255.RandomScalar()
	proof, err := bulletproofs.Prove(params, 0, gamma)
	require.NoError(t, err)
	require.NoError(t, bulletproofs.Verify(params, proof))
}

func TestRangeProofCompletenessMax(t *testing.T) {
	params := bulletproofs.Setup(8)
	gamma := group.Ristretto255.RandomScalar()
	proof, err := bulletproofs.Prove(params, (1<<8)-1, gamma)
	require.NoError(t, err)
	require.NoError(t, bulletproofs.Verify(params, proof))
}

func TestRangeProofCompletenessMidRange(t *testing.T) {
	params := bulletproofs.Setup(32)
	gamma := group.Ristretto255.RandomScalar()
	proof, err := bulletproofs.Prove(params, 123456789, gamma)
	require.NoError(t, err)
	require.NoError(t, bulletproofs.Verify(params, proof))
}

func TestRangeProofRejectsOutOfRangeValue(t *testing.T) {
	params := bulletproofs.Setup(8)
	gamma := group.Ristretto255.RandomScalar()
	_, err := bulletproofs.Prove(params, 256, gamma)
	require.Error(t, err)
}

func TestRangeProofRejectsTamperedProof(t *testing.T) {
	params := bulletproofs.Setup(16)
	gamma := group.Ristretto255.RandomScalar()
	proof, err := bulletproofs.Prove(params, 42, gamma)
	require.NoError(t, err)

	proof.THat = group.Ristretto255.NewScalar().Add(proof.THat, group.Ristretto255.NewScalar().SetUint64(1))
	require.Error(t, bulletproofs.Verify(params, proof))
}

func TestRangeProofRejectsWrongParams(t *testing.T) {
	params8 := bulletproofs.Setup(8)
	params16 := bulletproofs.Setup(16)
	gamma := group.Ristretto255.RandomScalar()
	proof, err := bulletproofs.Prove(params8, 10, gamma)
	require.NoError(t, err)
	require.Error(t, bulletproofs.Verify(params16, proof))
}

func TestAggregatedRangeProofRoundTrip(t *testing.T) {
	const n, m = 8, 4
	params := bulletproofs.Setup(n * m)

	values := []uint64{0, 1, 255, 128}
	gammas := make([]group.Scalar, m)
	for i := range gammas {
		gammas[i] = group.Ristretto255.RandomScalar()
	}

	proof, err := bulletproofs.ProveAggregated(params, values, gammas)
	require.NoError(t, err)
	require.NoError(t, bulletproofs.VerifyAggregated(params, proof))
}

func TestAggregatedRangeProofRejectsOutOfRangeValue(t *testing.T) {
	const n, m = 8, 2
	params := bulletproofs.Setup(n * m)
	gammas := []group.Scalar{group.Ristretto255.RandomScalar(), group.Ristretto255.RandomScalar()}
	_, err := bulletproofs.ProveAggregated(params, []uint64{10, 999}, gammas)
	require.Error(t, err)
}

func TestAggregatedRangeProofRejectsTamperedMu(t *testing.T) {
	const n, m = 8, 2
	params := bulletproofs.Setup(n * m)
	gammas := []group.Scalar{group.Ristretto255.RandomScalar(), group.Ristretto255.RandomScalar()}
	proof, err := bulletproofs.ProveAggregated(params, []uint64{3, 200}, gammas)
	require.NoError(t, err)

	proof.Mu = group.Ristretto255.NewScalar().Add(proof.Mu, group.Ristretto255.NewScalar().SetUint64(1))
	require.Error(t, bulletproofs.VerifyAggregated(params, proof))
}
