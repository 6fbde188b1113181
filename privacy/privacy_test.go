package privacy_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/takakv/confidential-core/group"
	"github.com/takakv/confidential-core/privacy"
)

func testConfig() privacy.Config {
	c := privacy.DefaultConfig()
	c.RangeBits = 32
	return c
}

func TestGenerateAndVerifyTransfer(t *testing.T) {
	p := privacy.New(testConfig())
	proof, _, err := p.GenerateTransfer(
		100, group.Ristretto255.RandomScalar(),
		40, 60, group.Ristretto255.RandomScalar(), group.Ristretto255.RandomScalar(),
	)
	require.NoError(t, err)
	require.NoError(t, p.VerifyTransfer(proof))
}

func TestGenerateTransferRejectsInsufficientBalance(t *testing.T) {
	p := privacy.New(testConfig())
	_, _, err := p.GenerateTransfer(
		10, group.Ristretto255.RandomScalar(),
		20, 0, group.Ristretto255.RandomScalar(), group.Ristretto255.RandomScalar(),
	)
	require.Error(t, err)
}

func TestGenerateTransferRejectsWrongBalanceEquation(t *testing.T) {
	p := privacy.New(testConfig())
	_, _, err := p.GenerateTransfer(
		100, group.Ristretto255.RandomScalar(),
		30, 80, group.Ristretto255.RandomScalar(), group.Ristretto255.RandomScalar(),
	)
	require.Error(t, err)
}

func TestRepeatedIdenticalRequestHitsCache(t *testing.T) {
	p := privacy.New(testConfig())
	beforeGamma := group.Ristretto255.RandomScalar()
	ags := group.Ristretto255.RandomScalar()
	agr := group.Ristretto255.RandomScalar()

	proof1, _, err := p.GenerateTransfer(100, beforeGamma, 40, 60, ags, agr)
	require.NoError(t, err)
	proof2, _, err := p.GenerateTransfer(100, beforeGamma, 40, 60, ags, agr)
	require.NoError(t, err)

	// Same fingerprint must return the exact same cached proof object.
	require.True(t, proof1.Amount.IsEqual(proof2.Amount))
	require.True(t, proof1.AmountRangeProof.THat.IsEqual(proof2.AmountRangeProof.THat))
}

func TestGenerateBatchSequentialAndParallelAgree(t *testing.T) {
	reqs := make([]privacy.TransferRequest, 5)
	for i := range reqs {
		amount := uint64(10 * (i + 1))
		reqs[i] = privacy.TransferRequest{
			Before:               100,
			BeforeGamma:          group.Ristretto255.RandomScalar(),
			Amount:               amount,
			After:                100 - amount,
			AmountGammaSender:    group.Ristretto255.RandomScalar(),
			AmountGammaRecipient: group.Ristretto255.RandomScalar(),
		}
	}

	sequentialConfig := testConfig()
	sequentialConfig.EnableParallel = false
	sequentialConfig.EnableCaching = false
	sequential := privacy.New(sequentialConfig)

	parallelConfig := testConfig()
	parallelConfig.EnableCaching = false
	parallel := privacy.New(parallelConfig)

	ctx := context.Background()
	seqProofs, _, err := sequential.GenerateBatch(ctx, reqs)
	require.NoError(t, err)
	parProofs, _, err := parallel.GenerateBatch(ctx, reqs)
	require.NoError(t, err)

	require.Len(t, seqProofs, len(reqs))
	require.Len(t, parProofs, len(reqs))
	for i := range reqs {
		require.NoError(t, sequential.VerifyTransfer(seqProofs[i]))
		require.NoError(t, parallel.VerifyTransfer(parProofs[i]))
	}
}

func TestVerifyBatchRejectsOneBadProof(t *testing.T) {
	p := privacy.New(testConfig())
	reqs := []privacy.TransferRequest{
		{Before: 100, BeforeGamma: group.Ristretto255.RandomScalar(), Amount: 10, After: 90,
			AmountGammaSender: group.Ristretto255.RandomScalar(), AmountGammaRecipient: group.Ristretto255.RandomScalar()},
		{Before: 100, BeforeGamma: group.Ristretto255.RandomScalar(), Amount: 20, After: 80,
			AmountGammaSender: group.Ristretto255.RandomScalar(), AmountGammaRecipient: group.Ristretto255.RandomScalar()},
	}

	ctx := context.Background()
	proofs, _, err := p.GenerateBatch(ctx, reqs)
	require.NoError(t, err)

	one := group.Ristretto255.NewScalar().SetUint64(1)
	proofs[1].AfterRangeProof.THat = group.Ristretto255.NewScalar().Add(proofs[1].AfterRangeProof.THat, one)

	require.Error(t, p.VerifyBatch(ctx, proofs))
}

func TestBatchEquivalencePropertyAcrossConfigs(t *testing.T) {
	// Batch proving/verification must produce verifiable proofs
	// regardless of whether parallel dispatch is on.
	for _, parallel := range []bool{false, true} {
		cfg := testConfig()
		cfg.EnableParallel = parallel
		cfg.EnableCaching = false
		p := privacy.New(cfg)

		reqs := []privacy.TransferRequest{
			{Before: 50, BeforeGamma: group.Ristretto255.RandomScalar(), Amount: 5, After: 45,
				AmountGammaSender: group.Ristretto255.RandomScalar(), AmountGammaRecipient: group.Ristretto255.RandomScalar()},
		}
		ctx := context.Background()
		proofs, _, err := p.GenerateBatch(ctx, reqs)
		require.NoError(t, err)
		require.NoError(t, p.VerifyBatch(ctx, proofs))
	}
}
