package group

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestElementNegateIsInverse(t *testing.T) {
	g := Ristretto255
	p := g.Random()
	q := g.Element().Negate(p)
	sum := g.Element().Add(p, q)
	require.True(t, sum.IsEqual(g.Identity()))
}

func TestElementSubtractUndoesAdd(t *testing.T) {
	g := Ristretto255
	a := g.Random()
	b := g.Random()
	sum := g.Element().Add(a, b)
	back := g.Element().Subtract(sum, b)
	require.True(t, back.IsEqual(a))
}

func TestBaseScaleMatchesRepeatedAdd(t *testing.T) {
	g := Ristretto255
	three := g.NewScalar().SetUint64(3)
	a := g.Element().BaseScale(three)

	b := g.Element().Add(g.Generator(), g.Generator())
	b.Add(b, g.Generator())
	require.True(t, a.IsEqual(b))
}

func TestElementRoundTripBinary(t *testing.T) {
	g := Ristretto255
	p := g.Random()
	data, err := p.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, 32)

	q := g.Element()
	require.NoError(t, q.UnmarshalBinary(data))
	require.True(t, q.IsEqual(p))
}

func TestElementRejectsGarbageEncoding(t *testing.T) {
	g := Ristretto255
	q := g.Element()
	err := q.UnmarshalBinary(bytes.Repeat([]byte{0xff}, 32))
	require.Error(t, err)
}

func TestScalarArithmetic(t *testing.T) {
	g := Ristretto255
	one := g.NewScalar().SetUint64(1)
	two := g.NewScalar().SetUint64(2)

	sum := g.NewScalar().Add(one, one)
	require.True(t, sum.IsEqual(two))

	diff := g.NewScalar().Sub(two, one)
	require.True(t, diff.IsEqual(one))

	inv := g.NewScalar().Inverse(two)
	back := g.NewScalar().Mul(inv, two)
	require.True(t, back.IsEqual(one))

	neg := g.NewScalar().Negate(one)
	zero := g.NewScalar().Add(neg, one)
	require.True(t, zero.IsZero())
}

func TestScalarFromBigIntReducesModOrder(t *testing.T) {
	huge := new(big.Int).Lsh(big.NewInt(1), 512)
	s := ScalarFromBigInt(huge)
	require.NotNil(t, s)
	require.False(t, s.IsZero())
}

func TestHashToElementIsDeterministicAndDistinct(t *testing.T) {
	g := Ristretto255
	a1 := g.HashToElement("confidential-core/G/0")
	a2 := g.HashToElement("confidential-core/G/0")
	b := g.HashToElement("confidential-core/G/1")

	require.True(t, a1.IsEqual(a2))
	require.False(t, a1.IsEqual(b))
	require.False(t, a1.IsIdentity())
}
