// Package validity composes pedersen commitments, bulletproofs range
// proofs, and an equality proof into the confidential-transfer
// validity statement: given a sender's committed balance, a committed
// transfer amount does not exceed it, the resulting balance is
// non-negative, and the amount the sender subtracts from their balance
// is the same amount the recipient receives (even though sender and
// recipient use independent blindings for their own copy of it).
package validity

import (
	"github.com/takakv/confidential-core/bulletproofs"
	"github.com/takakv/confidential-core/cerr"
	"github.com/takakv/confidential-core/equality"
	"github.com/takakv/confidential-core/group"
	"github.com/takakv/confidential-core/pedersen"
)

// Proof is a complete transfer validity proof: two range proofs
// (amount, resulting balance) and one equality proof (sender/recipient
// amount commitments match), bound together by the public commitments
// Before, Amount, After, RecipientAmount.
type Proof struct {
	Before          pedersen.Commitment
	Amount          pedersen.Commitment
	After           pedersen.Commitment
	RecipientAmount pedersen.Commitment

	AmountRangeProof *bulletproofs.RangeProof
	AfterRangeProof  *bulletproofs.RangeProof
	EqualityProof    *equality.Proof
}

// GenerateTransfer builds a validity proof for a transfer of amount out
// of a balance of before (committed under beforeGamma), asserting the
// caller's claimed resulting balance after. amountGammaSender blinds the
// sender-side copy of the amount commitment (used in the balance
// equation); amountGammaRecipient blinds the copy handed to the
// recipient. It returns the proof together with the blinding of the
// resulting balance commitment, which the caller needs to later spend
// from it.
func GenerateTransfer(
	params *bulletproofs.Params,
	before uint64, beforeGamma group.Scalar,
	amount uint64, after uint64,
	amountGammaSender, amountGammaRecipient group.Scalar,
) (*Proof, group.Scalar, error) {
	if amount > before {
		return nil, nil, cerr.Wrap(cerr.ErrInsufficientBalance, "transfer of %d exceeds balance %d", amount, before)
	}
	if before-amount != after {
		return nil, nil, cerr.Wrap(cerr.ErrBalanceEquationViolated, "before (%d) - amount (%d) != claimed after (%d)", before, amount, after)
	}

	beforeCommit := pedersen.CommitUint64(before, beforeGamma)
	amountCommitSender := pedersen.CommitUint64(amount, amountGammaSender)
	amountCommitRecipient := pedersen.CommitUint64(amount, amountGammaRecipient)

	afterGamma := group.Ristretto255.NewScalar().Sub(beforeGamma, amountGammaSender)
	afterCommit := pedersen.CommitUint64(after, afterGamma)

	// Sanity check the homomorphic identity before doing any further
	// cryptographic work: a bug in gamma bookkeeping should never
	// produce a proof that looks valid for the wrong statement.
	if !afterCommit.IsEqual(beforeCommit.Sub(amountCommitSender)) {
		return nil, nil, cerr.Wrap(cerr.ErrBalanceEquationViolated, "before - amount != after commitment")
	}

	amountRP, err := bulletproofs.Prove(params, amount, amountGammaSender)
	if err != nil {
		return nil, nil, cerr.Wrap(cerr.ErrRangeProofFailed, "amount range proof: %v", err)
	}
	afterRP, err := bulletproofs.Prove(params, after, afterGamma)
	if err != nil {
		return nil, nil, cerr.Wrap(cerr.ErrRangeProofFailed, "resulting balance range proof: %v", err)
	}
	eqProof := equality.Prove(amountCommitSender, amountCommitRecipient, amountGammaSender, amountGammaRecipient)

	proof := &Proof{
		Before:           beforeCommit,
		Amount:           amountCommitSender,
		After:            afterCommit,
		RecipientAmount:  amountCommitRecipient,
		AmountRangeProof: amountRP,
		AfterRangeProof:  afterRP,
		EqualityProof:    eqProof,
	}
	return proof, afterGamma, nil
}

// Verify checks that proof attests a valid transfer: the balance
// equation holds over the public commitments, both range proofs
// verify, and the equality proof verifies.
func Verify(params *bulletproofs.Params, proof *Proof) error {
	if !proof.After.IsEqual(proof.Before.Sub(proof.Amount)) {
		return cerr.Wrap(cerr.ErrBalanceEquationViolated, "before - amount != after commitment")
	}

	if !proof.AmountRangeProof.V.IsEqual(proof.Amount) {
		return cerr.Wrap(cerr.ErrInvalidArgument, "amount range proof commits to a different value than Amount")
	}
	if err := bulletproofs.Verify(params, proof.AmountRangeProof); err != nil {
		return cerr.Wrap(cerr.ErrRangeProofFailed, "amount range proof: %v", err)
	}

	if !proof.AfterRangeProof.V.IsEqual(proof.After) {
		return cerr.Wrap(cerr.ErrInvalidArgument, "after range proof commits to a different value than After")
	}
	if err := bulletproofs.Verify(params, proof.AfterRangeProof); err != nil {
		return cerr.Wrap(cerr.ErrRangeProofFailed, "resulting balance range proof: %v", err)
	}

	if err := equality.Verify(proof.Amount, proof.RecipientAmount, proof.EqualityProof); err != nil {
		return cerr.Wrap(cerr.ErrEqualityProofFailed, "sender/recipient amount equality: %v", err)
	}

	return nil
}
