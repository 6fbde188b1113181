// Package bulletproofs implements Bulletproofs range proofs: a
// logarithmic-size, trusted-setup-free proof that a Pedersen-committed
// value lies in [0, 2^n). The construction follows Bünz, Bootle, Boneh,
// Poelstra, Wuille, and Maxwell's Bulletproofs paper; equation numbers
// in comments below refer to that paper's presentation of the protocol.
package bulletproofs

import (
	"github.com/takakv/confidential-core/cerr"
	"github.com/takakv/confidential-core/group"
	"github.com/takakv/confidential-core/pedersen"
	"github.com/takakv/confidential-core/transcript"
)

// RangeProof attests that the committed value V opens to some v in
// [0, 2^N) without revealing v or its blinding.
type RangeProof struct {
	V              pedersen.Commitment
	A, S           group.Element
	T1, T2         group.Element
	TauX, Mu, THat group.Scalar
	IPP            *InnerProductProof
}

// Prove proves that v < 2^params.N, where V = Commit(v, gamma).
func Prove(params *Params, v uint64, gamma group.Scalar) (*RangeProof, error) {
	n := params.N
	if n <= 0 || n > 64 {
		return nil, cerr.Wrap(cerr.ErrInvalidArgument, "range proof: bit width %d out of range", n)
	}
	if n < 64 && v >= (uint64(1)<<uint(n)) {
		return nil, cerr.Wrap(cerr.ErrInvalidArgument, "range proof: value %d does not fit in %d bits", v, n)
	}

	V := pedersen.CommitUint64(v, gamma)

	aL := decomposeBits(v, n)
	negOne := group.Ristretto255.NewScalar().Negate(group.Ristretto255.NewScalar().SetUint64(1))
	aR := vectorAddConstScalar(aL, negOne)

	alpha := group.Ristretto255.RandomScalar()
	A := group.Ristretto255.Element().Scale(params.H, alpha)
	A.Add(A, vectorCommit(params.Gg, params.Hh, aL, aR))

	sL := randomScalarVector(n)
	sR := randomScalarVector(n)
	rho := group.Ristretto255.RandomScalar()
	S := group.Ristretto255.Element().Scale(params.H, rho)
	S.Add(S, vectorCommit(params.Gg, params.Hh, sL, sR))

	tr := transcript.New("confidential-core/bulletproofs/range-proof")
	tr.AppendUint64("n", uint64(n))
	_ = tr.AppendPoint("V", V.Element())
	_ = tr.AppendPoint("A", A)
	_ = tr.AppendPoint("S", S)
	y := tr.ChallengeScalar("y")
	z := tr.ChallengeScalar("z")

	z2 := group.Ristretto255.NewScalar().Mul(z, z)
	yN := powerVector(y, n)
	twoN := powersOfTwo(n)

	// l(X) = aL - z*1^n + sL*X                                    (41)
	l0 := vectorAddConstScalar(aL, group.Ristretto255.NewScalar().Negate(z))
	l1 := sL

	// r(X) = y^n ⊙ (aR + z*1^n + sR*X) + z^2*2^n                  (42)
	r0 := vectorHadamard(yN, vectorAddConstScalar(aR, z))
	r0 = vectorAdd(r0, vectorScale(twoN, z2))
	r1 := vectorHadamard(yN, sR)

	t1 := group.Ristretto255.NewScalar().Add(vectorInnerProduct(l0, r1), vectorInnerProduct(l1, r0))
	t2 := vectorInnerProduct(l1, r1)

	tau1 := group.Ristretto255.RandomScalar()
	tau2 := group.Ristretto255.RandomScalar()
	T1 := group.Ristretto255.Element().BaseScale(t1)
	T1.Add(T1, group.Ristretto255.Element().Scale(params.H, tau1))
	T2 := group.Ristretto255.Element().BaseScale(t2)
	T2.Add(T2, group.Ristretto255.Element().Scale(params.H, tau2))

	_ = tr.AppendPoint("T1", T1)
	_ = tr.AppendPoint("T2", T2)
	x := tr.ChallengeScalar("x")
	x2 := group.Ristretto255.NewScalar().Mul(x, x)

	l := vectorAdd(l0, vectorScale(l1, x))
	r := vectorAdd(r0, vectorScale(r1, x))
	tHat := vectorInnerProduct(l, r)

	tauX := group.Ristretto255.NewScalar().Mul(tau2, x2)
	tauX.Add(tauX, group.Ristretto255.NewScalar().Mul(tau1, x))
	tauX.Add(tauX, group.Ristretto255.NewScalar().Mul(z2, gamma))

	mu := group.Ristretto255.NewScalar().Mul(rho, x)
	mu.Add(mu, alpha)

	_ = tr.AppendScalar("tau_x", tauX)
	_ = tr.AppendScalar("mu", mu)
	_ = tr.AppendScalar("t_hat", tHat)

	hh := updateGenerators(params.Hh, y)
	ipp := proveIPA(tr, params.Gg, hh, params.U, l, r)

	return &RangeProof{
		V: V, A: A, S: S, T1: T1, T2: T2,
		TauX: tauX, Mu: mu, THat: tHat, IPP: ipp,
	}, nil
}

// Verify checks proof against params, returning a wrapped
// cerr.ErrRangeProofFailed when the t_hat identity fails and a wrapped
// cerr.ErrInnerProductFailed when the inner-product argument fails.
func Verify(params *Params, proof *RangeProof) error {
	n := params.N

	tr := transcript.New("confidential-core/bulletproofs/range-proof")
	tr.AppendUint64("n", uint64(n))
	_ = tr.AppendPoint("V", proof.V.Element())
	_ = tr.AppendPoint("A", proof.A)
	_ = tr.AppendPoint("S", proof.S)
	y := tr.ChallengeScalar("y")
	z := tr.ChallengeScalar("z")
	z2 := group.Ristretto255.NewScalar().Mul(z, z)

	_ = tr.AppendPoint("T1", proof.T1)
	_ = tr.AppendPoint("T2", proof.T2)
	x := tr.ChallengeScalar("x")
	x2 := group.Ristretto255.NewScalar().Mul(x, x)

	_ = tr.AppendScalar("tau_x", proof.TauX)
	_ = tr.AppendScalar("mu", proof.Mu)
	_ = tr.AppendScalar("t_hat", proof.THat)

	// Check t_hat is the correctly blinded opening of the commitment to
	// t(x), combining V, T1, T2, and the public delta(y,z).          (65)
	delta := rangeDelta(y, z, n)
	lhs := group.Ristretto255.Element().BaseScale(proof.THat)
	lhs.Add(lhs, group.Ristretto255.Element().Scale(params.H, proof.TauX))

	rhs := group.Ristretto255.Element().Scale(proof.V.Element(), z2)
	rhs.Add(rhs, group.Ristretto255.Element().BaseScale(delta))
	rhs.Add(rhs, group.Ristretto255.Element().Scale(proof.T1, x))
	rhs.Add(rhs, group.Ristretto255.Element().Scale(proof.T2, x2))

	if !lhs.IsEqual(rhs) {
		return cerr.Wrap(cerr.ErrRangeProofFailed, "t_hat identity check failed")
	}

	// Reconstruct P, the commitment to l, r the inner-product argument
	// must open, from A, S, and the public per-bit generator sums.    (66)
	hh := updateGenerators(params.Hh, y)

	zOnes := vectorScale(vectorOnes(n), group.Ristretto255.NewScalar().Negate(z))
	P := group.Ristretto255.Element().Add(proof.A, group.Ristretto255.Element().Scale(proof.S, x))
	P.Add(P, vectorExp(params.Gg, zOnes))

	zyPlusZ2Two := vectorAdd(vectorScale(powerVector(y, n), z), vectorScale(powersOfTwo(n), z2))
	P.Add(P, vectorExp(hh, zyPlusZ2Two))

	P.Subtract(P, group.Ristretto255.Element().Scale(params.H, proof.Mu))
	P.Add(P, group.Ristretto255.Element().Scale(params.U, proof.THat))

	if !verifyIPA(tr, params.Gg, hh, params.U, P, proof.IPP) {
		return cerr.Wrap(cerr.ErrInnerProductFailed, "range proof inner product argument failed")
	}

	return nil
}

func vectorOnes(n int) []group.Scalar {
	out := make([]group.Scalar, n)
	for i := range out {
		out[i] = group.Ristretto255.NewScalar().SetUint64(1)
	}
	return out
}

// rangeDelta computes delta(y,z) = (z - z^2)*<1^n,y^n> - z^3*<1^n,2^n>,
// the public constant term of the polynomial identity t(x) must
// satisfy.                                                          (39)
func rangeDelta(y, z group.Scalar, n int) group.Scalar {
	z2 := group.Ristretto255.NewScalar().Mul(z, z)
	z3 := group.Ristretto255.NewScalar().Mul(z2, z)

	zMinusZ2 := group.Ristretto255.NewScalar().Sub(z, z2)
	sumY := vectorSum(powerVector(y, n))
	sumTwo := vectorSum(powersOfTwo(n))

	term1 := group.Ristretto255.NewScalar().Mul(zMinusZ2, sumY)
	term2 := group.Ristretto255.NewScalar().Mul(z3, sumTwo)

	return group.Ristretto255.NewScalar().Sub(term1, term2)
}
