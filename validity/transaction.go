package validity

import (
	"github.com/takakv/confidential-core/bulletproofs"
	"github.com/takakv/confidential-core/cerr"
	"github.com/takakv/confidential-core/equality"
	"github.com/takakv/confidential-core/group"
	"github.com/takakv/confidential-core/pedersen"
)

// TransactionProof generalizes Proof to k inputs and m outputs: it
// attests that every output lies in range and that the inputs sum to
// the outputs, without revealing any individual value.
type TransactionProof struct {
	Inputs  []pedersen.Commitment
	Outputs []pedersen.Commitment

	OutputsRangeProof *bulletproofs.AggregatedRangeProof
	// ZeroProof attests that sum(Inputs) - sum(Outputs) commits to the
	// value 0, i.e. that the transaction's balance equation holds.
	ZeroProof *equality.Proof
}

// GenerateTransaction builds a transaction proof moving inputValues
// (already committed on the ledger under inputGammas) into outputValues
// (freshly committed under outputGammas). rangeParams must be sized for
// len(outputValues) aggregated range proofs (rangeParams.N == bits *
// len(outputValues)).
func GenerateTransaction(
	rangeParams *bulletproofs.Params,
	inputValues []uint64, inputGammas []group.Scalar,
	outputValues []uint64, outputGammas []group.Scalar,
) (*TransactionProof, error) {
	if len(inputValues) == 0 || len(inputValues) != len(inputGammas) {
		return nil, cerr.Wrap(cerr.ErrInvalidArgument, "transaction: need matching non-empty inputs")
	}
	if len(outputValues) == 0 || len(outputValues) != len(outputGammas) {
		return nil, cerr.Wrap(cerr.ErrInvalidArgument, "transaction: need matching non-empty outputs")
	}

	var inSum, outSum uint64
	for _, v := range inputValues {
		inSum += v
	}
	for _, v := range outputValues {
		outSum += v
	}
	if inSum != outSum {
		return nil, cerr.Wrap(cerr.ErrBalanceEquationViolated, "inputs sum to %d, outputs sum to %d", inSum, outSum)
	}

	inputs := make([]pedersen.Commitment, len(inputValues))
	for i, v := range inputValues {
		inputs[i] = pedersen.CommitUint64(v, inputGammas[i])
	}
	outputs := make([]pedersen.Commitment, len(outputValues))
	for i, v := range outputValues {
		outputs[i] = pedersen.CommitUint64(v, outputGammas[i])
	}

	outputsRP, err := bulletproofs.ProveAggregated(rangeParams, outputValues, outputGammas)
	if err != nil {
		return nil, cerr.Wrap(cerr.ErrRangeProofFailed, "outputs range proof: %v", err)
	}

	diffGamma := sumScalars(inputGammas)
	diffGamma.Sub(diffGamma, sumScalars(outputGammas))
	diffCommit := sumCommitments(inputs).Sub(sumCommitments(outputs))
	zeroCommit := pedersen.FromElement(group.Ristretto255.Identity())
	zeroProof := equality.Prove(diffCommit, zeroCommit, diffGamma, group.Ristretto255.NewScalar())

	return &TransactionProof{
		Inputs:            inputs,
		Outputs:           outputs,
		OutputsRangeProof: outputsRP,
		ZeroProof:         zeroProof,
	}, nil
}

// VerifyTransaction checks proof against rangeParams, which must match
// the aggregation width GenerateTransaction used.
func VerifyTransaction(rangeParams *bulletproofs.Params, proof *TransactionProof) error {
	if len(proof.Inputs) == 0 || len(proof.Outputs) == 0 {
		return cerr.Wrap(cerr.ErrInvalidArgument, "transaction proof: missing inputs or outputs")
	}

	for i, v := range proof.Outputs {
		if !proof.OutputsRangeProof.Vs[i].IsEqual(v) {
			return cerr.Wrap(cerr.ErrInvalidArgument, "outputs range proof commits to different commitments than Outputs")
		}
	}
	if err := bulletproofs.VerifyAggregated(rangeParams, proof.OutputsRangeProof); err != nil {
		return cerr.Wrap(cerr.ErrRangeProofFailed, "outputs range proof: %v", err)
	}

	diffCommit := sumCommitments(proof.Inputs).Sub(sumCommitments(proof.Outputs))
	zeroCommit := pedersen.FromElement(group.Ristretto255.Identity())
	if err := equality.Verify(diffCommit, zeroCommit, proof.ZeroProof); err != nil {
		return cerr.Wrap(cerr.ErrBalanceEquationViolated, "inputs/outputs balance equation: %v", err)
	}

	return nil
}

func sumScalars(vs []group.Scalar) group.Scalar {
	sum := group.Ristretto255.NewScalar()
	for _, v := range vs {
		sum.Add(sum, v)
	}
	return sum
}

func sumCommitments(cs []pedersen.Commitment) pedersen.Commitment {
	sum := pedersen.FromElement(group.Ristretto255.Identity())
	for _, c := range cs {
		sum = sum.Add(c)
	}
	return sum
}
