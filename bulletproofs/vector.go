package bulletproofs

import "github.com/takakv/confidential-core/group"

func newScalarVector(n int) []group.Scalar {
	v := make([]group.Scalar, n)
	for i := range v {
		v[i] = group.Ristretto255.NewScalar()
	}
	return v
}

func randomScalarVector(n int) []group.Scalar {
	v := make([]group.Scalar, n)
	for i := range v {
		v[i] = group.Ristretto255.RandomScalar()
	}
	return v
}

// decomposeBits returns the n-bit little-endian binary decomposition of
// v as scalars, each either 0 or 1. v must fit in n bits.
func decomposeBits(v uint64, n int) []group.Scalar {
	bits := make([]group.Scalar, n)
	for i := 0; i < n; i++ {
		bit := (v >> uint(i)) & 1
		bits[i] = group.Ristretto255.NewScalar().SetUint64(bit)
	}
	return bits
}

// powerVector returns [1, x, x^2, ..., x^(n-1)].
func powerVector(x group.Scalar, n int) []group.Scalar {
	out := make([]group.Scalar, n)
	out[0] = group.Ristretto255.NewScalar().SetUint64(1)
	for i := 1; i < n; i++ {
		out[i] = group.Ristretto255.NewScalar().Mul(out[i-1], x)
	}
	return out
}

// powersOfTwo returns [1, 2, 4, ..., 2^(n-1)] as scalars.
func powersOfTwo(n int) []group.Scalar {
	two := group.Ristretto255.NewScalar().SetUint64(2)
	return powerVector(two, n)
}

func vectorAddConstScalar(a []group.Scalar, c group.Scalar) []group.Scalar {
	out := make([]group.Scalar, len(a))
	for i := range a {
		out[i] = group.Ristretto255.NewScalar().Add(a[i], c)
	}
	return out
}

func vectorHadamard(a, b []group.Scalar) []group.Scalar {
	out := make([]group.Scalar, len(a))
	for i := range a {
		out[i] = group.Ristretto255.NewScalar().Mul(a[i], b[i])
	}
	return out
}

func vectorAdd(a, b []group.Scalar) []group.Scalar {
	out := make([]group.Scalar, len(a))
	for i := range a {
		out[i] = group.Ristretto255.NewScalar().Add(a[i], b[i])
	}
	return out
}

func vectorScale(a []group.Scalar, s group.Scalar) []group.Scalar {
	out := make([]group.Scalar, len(a))
	for i := range a {
		out[i] = group.Ristretto255.NewScalar().Mul(a[i], s)
	}
	return out
}

func vectorInnerProduct(a, b []group.Scalar) group.Scalar {
	sum := group.Ristretto255.NewScalar()
	for i := range a {
		term := group.Ristretto255.NewScalar().Mul(a[i], b[i])
		sum.Add(sum, term)
	}
	return sum
}

func vectorSum(a []group.Scalar) group.Scalar {
	sum := group.Ristretto255.NewScalar()
	for _, s := range a {
		sum.Add(sum, s)
	}
	return sum
}

// vectorExp computes the multi-scalar product <a, G> = sum_i a_i * G_i.
func vectorExp(gens []group.Element, a []group.Scalar) group.Element {
	out := group.Ristretto255.Identity()
	for i := range a {
		term := group.Ristretto255.Element().Scale(gens[i], a[i])
		out.Add(out, term)
	}
	return out
}

// vectorCommit computes <a, G> + <b, H>, the combined vector pedersen
// commitment used for the A and S blinded bit-vector commitments.
func vectorCommit(G, H []group.Element, a, b []group.Scalar) group.Element {
	out := vectorExp(G, a)
	out.Add(out, vectorExp(H, b))
	return out
}

// foldElements computes result_i = x_i*sx + y_i*sy for parallel slices
// x, y of equal length, the generator-folding step of each inner-product
// argument round.
func foldElements(x, y []group.Element, sx, sy group.Scalar) []group.Element {
	out := make([]group.Element, len(x))
	for i := range x {
		a := group.Ristretto255.Element().Scale(x[i], sx)
		b := group.Ristretto255.Element().Scale(y[i], sy)
		out[i] = a.Add(a, b)
	}
	return out
}

// foldScalars computes result_i = x_i*sx + y_i*sy.
func foldScalars(x, y []group.Scalar, sx, sy group.Scalar) []group.Scalar {
	out := make([]group.Scalar, len(x))
	for i := range x {
		a := group.Ristretto255.NewScalar().Mul(x[i], sx)
		b := group.Ristretto255.NewScalar().Mul(y[i], sy)
		out[i] = a.Add(a, b)
	}
	return out
}

// updateGenerators returns H'_i = H_i scaled by y^-i, the generator
// switch that lets the inner-product argument absorb the y^n factor
// baked into the r(x) polynomial (Bulletproofs §4.2's h' substitution).
func updateGenerators(H []group.Element, y group.Scalar) []group.Element {
	yInv := group.Ristretto255.NewScalar().Inverse(y)
	powers := powerVector(yInv, len(H))
	out := make([]group.Element, len(H))
	for i := range H {
		out[i] = group.Ristretto255.Element().Scale(H[i], powers[i])
	}
	return out
}
