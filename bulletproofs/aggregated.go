package bulletproofs

import (
	"github.com/takakv/confidential-core/cerr"
	"github.com/takakv/confidential-core/group"
	"github.com/takakv/confidential-core/pedersen"
	"github.com/takakv/confidential-core/transcript"
)

// AggregatedRangeProof attests that every value committed to by Vs lies
// in [0, 2^N), in a single proof of size O(log(N*m)) rather than one
// O(log N)-size proof per value (spec's supplemented multi-output
// range proof).
type AggregatedRangeProof struct {
	Vs             []pedersen.Commitment
	A, S           group.Element
	T1, T2         group.Element
	TauX, Mu, THat group.Scalar
	IPP            *InnerProductProof
}

// ProveAggregated proves that every value in values is less than 2^n,
// where params was built via Setup(n * len(values)).
func ProveAggregated(params *Params, values []uint64, gammas []group.Scalar) (*AggregatedRangeProof, error) {
	m := len(values)
	if m == 0 || m != len(gammas) {
		return nil, cerr.Wrap(cerr.ErrInvalidArgument, "aggregated range proof: need matching non-empty values and blindings")
	}
	n := params.N / m
	if n <= 0 || n*m != params.N {
		return nil, cerr.Wrap(cerr.ErrInvalidArgument, "aggregated range proof: params.N must be n*%d for a per-value width n", m)
	}

	Vs := make([]pedersen.Commitment, m)
	aL := make([]group.Scalar, 0, params.N)
	for j, v := range values {
		if n < 64 && v >= (uint64(1)<<uint(n)) {
			return nil, cerr.Wrap(cerr.ErrInvalidArgument, "aggregated range proof: value %d does not fit in %d bits", v, n)
		}
		Vs[j] = pedersen.CommitUint64(v, gammas[j])
		aL = append(aL, decomposeBits(v, n)...)
	}
	negOne := group.Ristretto255.NewScalar().Negate(group.Ristretto255.NewScalar().SetUint64(1))
	aR := vectorAddConstScalar(aL, negOne)

	alpha := group.Ristretto255.RandomScalar()
	A := group.Ristretto255.Element().Scale(params.H, alpha)
	A.Add(A, vectorCommit(params.Gg, params.Hh, aL, aR))

	sL := randomScalarVector(params.N)
	sR := randomScalarVector(params.N)
	rho := group.Ristretto255.RandomScalar()
	S := group.Ristretto255.Element().Scale(params.H, rho)
	S.Add(S, vectorCommit(params.Gg, params.Hh, sL, sR))

	tr := transcript.New("confidential-core/bulletproofs/aggregated-range-proof")
	tr.AppendUint64("n", uint64(n))
	tr.AppendUint64("m", uint64(m))
	for _, V := range Vs {
		_ = tr.AppendPoint("V", V.Element())
	}
	_ = tr.AppendPoint("A", A)
	_ = tr.AppendPoint("S", S)
	y := tr.ChallengeScalar("y")
	z := tr.ChallengeScalar("z")

	yNM := powerVector(y, params.N)
	weightedTwo := weightedTwoBlocks(n, m, z)

	l0 := vectorAddConstScalar(aL, group.Ristretto255.NewScalar().Negate(z))
	l1 := sL
	r0 := vectorAdd(vectorHadamard(yNM, vectorAddConstScalar(aR, z)), weightedTwo)
	r1 := vectorHadamard(yNM, sR)

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
	for j := range Vs {
		zPow := zPowJPlus2(z, j)
		tauX.Add(tauX, group.Ristretto255.NewScalar().Mul(zPow, gammas[j]))
	}

	mu := group.Ristretto255.NewScalar().Mul(rho, x)
	mu.Add(mu, alpha)

	_ = tr.AppendScalar("tau_x", tauX)
	_ = tr.AppendScalar("mu", mu)
	_ = tr.AppendScalar("t_hat", tHat)

	hh := updateGenerators(params.Hh, y)
	ipp := proveIPA(tr, params.Gg, hh, params.U, l, r)

	return &AggregatedRangeProof{
		Vs: Vs, A: A, S: S, T1: T1, T2: T2,
		TauX: tauX, Mu: mu, THat: tHat, IPP: ipp,
	}, nil
}

// VerifyAggregated checks proof against params.
func VerifyAggregated(params *Params, proof *AggregatedRangeProof) error {
	m := len(proof.Vs)
	if m == 0 {
		return cerr.Wrap(cerr.ErrInvalidArgument, "aggregated range proof: no commitments")
	}
	n := params.N / m
	if n*m != params.N {
		return cerr.Wrap(cerr.ErrInvalidArgument, "aggregated range proof: params.N must be n*%d", m)
	}

	tr := transcript.New("confidential-core/bulletproofs/aggregated-range-proof")
	tr.AppendUint64("n", uint64(n))
	tr.AppendUint64("m", uint64(m))
	for _, V := range proof.Vs {
		_ = tr.AppendPoint("V", V.Element())
	}
	_ = tr.AppendPoint("A", proof.A)
	_ = tr.AppendPoint("S", proof.S)
	y := tr.ChallengeScalar("y")
	z := tr.ChallengeScalar("z")

	_ = tr.AppendPoint("T1", proof.T1)
	_ = tr.AppendPoint("T2", proof.T2)
	x := tr.ChallengeScalar("x")
	x2 := group.Ristretto255.NewScalar().Mul(x, x)

	_ = tr.AppendScalar("tau_x", proof.TauX)
	_ = tr.AppendScalar("mu", proof.Mu)
	_ = tr.AppendScalar("t_hat", proof.THat)

	delta := aggregatedDelta(y, z, n, m)
	lhs := group.Ristretto255.Element().BaseScale(proof.THat)
	lhs.Add(lhs, group.Ristretto255.Element().Scale(params.H, proof.TauX))

	rhs := group.Ristretto255.Element().BaseScale(delta)
	for j, V := range proof.Vs {
		rhs.Add(rhs, group.Ristretto255.Element().Scale(V.Element(), zPowJPlus2(z, j)))
	}
	rhs.Add(rhs, group.Ristretto255.Element().Scale(proof.T1, x))
	rhs.Add(rhs, group.Ristretto255.Element().Scale(proof.T2, x2))

	if !lhs.IsEqual(rhs) {
		return cerr.Wrap(cerr.ErrRangeProofFailed, "aggregated t_hat identity check failed")
	}

	hh := updateGenerators(params.Hh, y)
	weightedTwo := weightedTwoBlocks(n, m, z)

	zOnes := vectorScale(vectorOnes(params.N), group.Ristretto255.NewScalar().Negate(z))
	P := group.Ristretto255.Element().Add(proof.A, group.Ristretto255.Element().Scale(proof.S, x))
	P.Add(P, vectorExp(params.Gg, zOnes))

	zYPlusTwo := vectorAdd(vectorScale(powerVector(y, params.N), z), weightedTwo)
	P.Add(P, vectorExp(hh, zYPlusTwo))

	P.Subtract(P, group.Ristretto255.Element().Scale(params.H, proof.Mu))
	P.Add(P, group.Ristretto255.Element().Scale(params.U, proof.THat))

	if !verifyIPA(tr, params.Gg, hh, params.U, P, proof.IPP) {
		return cerr.Wrap(cerr.ErrInnerProductFailed, "aggregated range proof inner product argument failed")
	}

	return nil
}

// weightedTwoBlocks returns a length n*m vector whose j-th block of n
// entries is z^(2+j) * [1,2,4,...,2^(n-1)], the per-value weighting
// the aggregated range relation assigns to each value's bit powers.
func weightedTwoBlocks(n, m int, z group.Scalar) []group.Scalar {
	twoN := powersOfTwo(n)
	out := make([]group.Scalar, 0, n*m)
	for j := 0; j < m; j++ {
		weight := zPowJPlus2(z, j)
		out = append(out, vectorScale(twoN, weight)...)
	}
	return out
}

func zPowJPlus2(z group.Scalar, j int) group.Scalar {
	z2 := group.Ristretto255.NewScalar().Mul(z, z)
	out := group.Ristretto255.NewScalar().Set(z2)
	for i := 0; i < j; i++ {
		out.Mul(out, z)
	}
	return out
}

// aggregatedDelta generalizes rangeDelta to m values:
// (z-z^2)*<1^(nm),y^(nm)> - sum_{j=0}^{m-1} z^(3+j) * <1^n,2^n>.
func aggregatedDelta(y, z group.Scalar, n, m int) group.Scalar {
	zMinusZ2 := group.Ristretto255.NewScalar().Sub(z, group.Ristretto255.NewScalar().Mul(z, z))
	sumY := vectorSum(powerVector(y, n*m))
	term1 := group.Ristretto255.NewScalar().Mul(zMinusZ2, sumY)

	sumTwo := vectorSum(powersOfTwo(n))
	sum := group.Ristretto255.NewScalar()
	for j := 0; j < m; j++ {
		zPow := group.Ristretto255.NewScalar().Mul(zPowJPlus2(z, j), z)
		term := group.Ristretto255.NewScalar().Mul(zPow, sumTwo)
		sum.Add(sum, term)
	}

	return group.Ristretto255.NewScalar().Sub(term1, sum)
}
