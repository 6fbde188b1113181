package bulletproofs

import (
	"github.com/takakv/confidential-core/group"
	"github.com/takakv/confidential-core/transcript"
)

// InnerProductProof is a logarithmic-size proof of knowledge of vectors
// a, b such that P = <a,G> + <b,H> + <a,b>*U, for public P, G, H, U.
// Each round of the recursive halving reduction contributes one L/R
// pair; the final round leaves single scalars A, B.
type InnerProductProof struct {
	L, R []group.Element
	A, B group.Scalar
}

// proveIPA runs the recursive halving reduction (Bulletproofs §3),
// absorbing each round's L, R commitments into tr before drawing that
// round's folding challenge, so every challenge is bound to everything
// proven so far.
func proveIPA(tr *transcript.Transcript, Gg, Hh []group.Element, U group.Element, a, b []group.Scalar) *InnerProductProof {
	proof := &InnerProductProof{}
	gg, hh, av, bv := Gg, Hh, a, b

	for len(av) > 1 {
		n := len(av) / 2
		aL, aR := av[:n], av[n:]
		bL, bR := bv[:n], bv[n:]
		GL, GR := gg[:n], gg[n:]
		HL, HR := hh[:n], hh[n:]

		cL := vectorInnerProduct(aL, bR)
		cR := vectorInnerProduct(aR, bL)

		L := vectorExp(GR, aL)
		L.Add(L, vectorExp(HL, bR))
		L.Add(L, group.Ristretto255.Element().Scale(U, cL))

		R := vectorExp(GL, aR)
		R.Add(R, vectorExp(HR, bL))
		R.Add(R, group.Ristretto255.Element().Scale(U, cR))

		proof.L = append(proof.L, L)
		proof.R = append(proof.R, R)

		_ = tr.AppendPoint("ipa-L", L)
		_ = tr.AppendPoint("ipa-R", R)
		x := tr.ChallengeScalar("ipa-x")
		xInv := group.Ristretto255.NewScalar().Inverse(x)

		gg = foldElements(GL, GR, xInv, x)
		hh = foldElements(HL, HR, x, xInv)
		av = foldScalars(aL, aR, x, xInv)
		bv = foldScalars(bL, bR, xInv, x)
	}

	proof.A = av[0]
	proof.B = bv[0]
	return proof
}

// verifyIPA checks proof against the claimed commitment P, replaying
// the same challenge derivation prove used. Gg, Hh, U must be the same
// generators the prover used.
func verifyIPA(tr *transcript.Transcript, Gg, Hh []group.Element, U, P group.Element, proof *InnerProductProof) bool {
	if len(proof.L) != len(proof.R) {
		return false
	}

	gg, hh, p := Gg, Hh, P
	for i := range proof.L {
		if len(gg) < 2 {
			return false
		}
		n := len(gg) / 2
		GL, GR := gg[:n], gg[n:]
		HL, HR := hh[:n], hh[n:]

		_ = tr.AppendPoint("ipa-L", proof.L[i])
		_ = tr.AppendPoint("ipa-R", proof.R[i])
		x := tr.ChallengeScalar("ipa-x")
		xInv := group.Ristretto255.NewScalar().Inverse(x)

		gg = foldElements(GL, GR, xInv, x)
		hh = foldElements(HL, HR, x, xInv)

		x2 := group.Ristretto255.NewScalar().Mul(x, x)
		xInv2 := group.Ristretto255.NewScalar().Mul(xInv, xInv)
		term := group.Ristretto255.Element().Scale(proof.L[i], x2)
		term.Add(term, group.Ristretto255.Element().Scale(proof.R[i], xInv2))
		p = group.Ristretto255.Element().Add(p, term)
	}

	if len(gg) != 1 {
		return false
	}

	c := group.Ristretto255.NewScalar().Mul(proof.A, proof.B)
	want := group.Ristretto255.Element().Scale(gg[0], proof.A)
	want.Add(want, group.Ristretto255.Element().Scale(hh[0], proof.B))
	want.Add(want, group.Ristretto255.Element().Scale(U, c))

	return want.IsEqual(p)
}
