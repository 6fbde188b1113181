package wire_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/takakv/confidential-core/bulletproofs"
	"github.com/takakv/confidential-core/equality"
	"github.com/takakv/confidential-core/group"
	"github.com/takakv/confidential-core/pedersen"
	"github.com/takakv/confidential-core/validity"
	"github.com/takakv/confidential-core/wire"
)

func TestRangeProofRoundTrip(t *testing.T) {
	params := bulletproofs.Setup(32)
	gamma := group.Ristretto255.RandomScalar()
	proof, err := bulletproofs.Prove(params, 12345, gamma)
	require.NoError(t, err)

	data, err := wire.EncodeRangeProof(proof)
	require.NoError(t, err)

	decoded, err := wire.DecodeRangeProof(data)
	require.NoError(t, err)
	require.NoError(t, bulletproofs.Verify(params, decoded))
}

func TestAggregatedRangeProofRoundTrip(t *testing.T) {
	params := bulletproofs.Setup(8 * 3)
	gammas := []group.Scalar{group.Ristretto255.RandomScalar(), group.Ristretto255.RandomScalar(), group.Ristretto255.RandomScalar()}
	proof, err := bulletproofs.ProveAggregated(params, []uint64{1, 2, 3}, gammas)
	require.NoError(t, err)

	data, err := wire.EncodeAggregatedRangeProof(proof)
	require.NoError(t, err)
	decoded, err := wire.DecodeAggregatedRangeProof(data)
	require.NoError(t, err)
	require.NoError(t, bulletproofs.VerifyAggregated(params, decoded))
}

func TestEqualityProofRoundTrip(t *testing.T) {
	v := group.Ristretto255.NewScalar().SetUint64(9)
	r1 := group.Ristretto255.RandomScalar()
	r2 := group.Ristretto255.RandomScalar()
	c1 := pedersen.Commit(v, r1)
	c2 := pedersen.Commit(v, r2)
	proof := equality.Prove(c1, c2, r1, r2)

	data, err := wire.EncodeEqualityProof(proof)
	require.NoError(t, err)
	decoded, err := wire.DecodeEqualityProof(data)
	require.NoError(t, err)
	require.NoError(t, equality.Verify(c1, c2, decoded))
}

func TestValidityProofRoundTrip(t *testing.T) {
	params := bulletproofs.Setup(32)
	proof, _, err := validity.GenerateTransfer(
		params, 100, group.Ristretto255.RandomScalar(),
		40, 60, group.Ristretto255.RandomScalar(), group.Ristretto255.RandomScalar(),
	)
	require.NoError(t, err)

	data, err := wire.EncodeValidityProof(proof)
	require.NoError(t, err)
	require.LessOrEqual(t, len(data), wire.MaxProofSize)

	decoded, err := wire.DecodeValidityProof(data)
	require.NoError(t, err)
	require.NoError(t, validity.Verify(params, decoded))
}

func TestTransactionProofRoundTrip(t *testing.T) {
	rangeParams := bulletproofs.Setup(16 * 2)
	proof, err := validity.GenerateTransaction(
		rangeParams,
		[]uint64{50}, []group.Scalar{group.Ristretto255.RandomScalar()},
		[]uint64{20, 30}, []group.Scalar{group.Ristretto255.RandomScalar(), group.Ristretto255.RandomScalar()},
	)
	require.NoError(t, err)

	data, err := wire.EncodeTransactionProof(proof)
	require.NoError(t, err)
	decoded, err := wire.DecodeTransactionProof(data)
	require.NoError(t, err)
	require.NoError(t, validity.VerifyTransaction(rangeParams, decoded))
}

func TestDecodeRejectsOversizedInput(t *testing.T) {
	huge := make([]byte, wire.MaxProofSize+1)
	_, err := wire.DecodeRangeProof(huge)
	require.Error(t, err)
}

func TestDecodeRejectsBadFormatTag(t *testing.T) {
	bad := []byte("XXXX\x01rest-of-garbage-data")
	_, err := wire.DecodeRangeProof(bad)
	require.Error(t, err)
}

func TestDecodeRejectsWrongKind(t *testing.T) {
	v := group.Ristretto255.NewScalar().SetUint64(1)
	r1 := group.Ristretto255.RandomScalar()
	r2 := group.Ristretto255.RandomScalar()
	proof := equality.Prove(pedersen.Commit(v, r1), pedersen.Commit(v, r2), r1, r2)
	data, err := wire.EncodeEqualityProof(proof)
	require.NoError(t, err)

	_, err = wire.DecodeRangeProof(data)
	require.Error(t, err)
}

func TestDecodeRejectsTruncatedData(t *testing.T) {
	params := bulletproofs.Setup(8)
	proof, err := bulletproofs.Prove(params, 5, group.Ristretto255.RandomScalar())
	require.NoError(t, err)
	data, err := wire.EncodeRangeProof(proof)
	require.NoError(t, err)

	_, err = wire.DecodeRangeProof(data[:len(data)-10])
	require.Error(t, err)
}
