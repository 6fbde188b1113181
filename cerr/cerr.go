// Package cerr defines the error-kind taxonomy shared by every package
// in this module. Each kind is a sentinel; callers use errors.Is/errors.As
// against these sentinels rather than matching on error strings.
// Constructors wrap a sentinel with context via fmt.Errorf and %w.
package cerr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument marks a caller-supplied value that is
	// structurally invalid independent of any proof (wrong vector
	// length, zero range width, nil required field).
	ErrInvalidArgument = errors.New("confidential-core: invalid argument")

	// ErrInsufficientBalance marks a transfer whose sender balance is
	// less than the amount being transferred.
	ErrInsufficientBalance = errors.New("confidential-core: insufficient balance")

	// ErrBalanceEquationViolated marks a transfer or transaction whose
	// inputs do not sum to its outputs.
	ErrBalanceEquationViolated = errors.New("confidential-core: balance equation violated")

	// ErrEncodingError marks a serialization or deserialization failure.
	ErrEncodingError = errors.New("confidential-core: encoding error")

	// ErrNotInPrimeSubgroup marks a decoded point that is not a
	// canonical encoding of a prime-order subgroup element.
	ErrNotInPrimeSubgroup = errors.New("confidential-core: element not in prime subgroup")

	// ErrRangeProofFailed marks a range proof that failed to verify.
	ErrRangeProofFailed = errors.New("confidential-core: range proof verification failed")

	// ErrEqualityProofFailed marks an equality proof that failed to
	// verify.
	ErrEqualityProofFailed = errors.New("confidential-core: equality proof verification failed")

	// ErrInnerProductFailed marks an inner-product argument that failed
	// to verify.
	ErrInnerProductFailed = errors.New("confidential-core: inner product argument verification failed")

	// ErrOversizedProof marks a proof whose encoded size exceeds the
	// module's maximum accepted proof size.
	ErrOversizedProof = errors.New("confidential-core: proof exceeds maximum size")

	// ErrCacheError marks a failure in the privacy layer's proof cache.
	ErrCacheError = errors.New("confidential-core: cache error")
)

// Wrap annotates sentinel with a formatted message, preserving
// errors.Is/errors.As against sentinel.
func Wrap(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), sentinel)
}
