package group

import (
	"crypto/rand"
	"fmt"
	"math/big"

	cgroup "github.com/cloudflare/circl/group"
)

// Ristretto255 is the sole Group implementation: a prime-order group
// over a twisted Edwards curve with canonical encoding and no cofactor
// ambiguity, backed by github.com/cloudflare/circl/group.
var Ristretto255 Group = ristretto255Group{}

type ristretto255Group struct{}

func (ristretto255Group) Name() string { return "ristretto255" }

func (ristretto255Group) Element() Element {
	return &r255Element{val: cgroup.Ristretto255.NewElement()}
}

func (ristretto255Group) NewScalar() Scalar {
	return &r255Scalar{val: cgroup.Ristretto255.NewScalar()}
}

func (ristretto255Group) Generator() Element {
	return &r255Element{val: cgroup.Ristretto255.Generator()}
}

func (ristretto255Group) Identity() Element {
	return &r255Element{val: cgroup.Ristretto255.Identity()}
}

func (ristretto255Group) Random() Element {
	return &r255Element{val: cgroup.Ristretto255.RandomElement(rand.Reader)}
}

func (ristretto255Group) RandomScalar() Scalar {
	return &r255Scalar{val: cgroup.Ristretto255.RandomNonZeroScalar(rand.Reader)}
}

func (ristretto255Group) HashToElement(label string) Element {
	el := cgroup.Ristretto255.HashToElement([]byte(label), []byte("confidential-core/generator"))
	return &r255Element{val: el}
}

// r255Element wraps a circl Ristretto255 group element.
type r255Element struct {
	val cgroup.Element
}

func (e *r255Element) Add(x, y Element) Element {
	e.val.Add(asR255(x).val, asR255(y).val)
	return e
}

func (e *r255Element) Subtract(x, y Element) Element {
	neg := cgroup.Ristretto255.NewElement()
	neg.Neg(asR255(y).val)
	e.val.Add(asR255(x).val, neg)
	return e
}

func (e *r255Element) Negate(x Element) Element {
	e.val.Neg(asR255(x).val)
	return e
}

func (e *r255Element) Scale(x Element, s Scalar) Element {
	e.val.Mul(asR255(x).val, asR255Scalar(s).val)
	return e
}

func (e *r255Element) BaseScale(s Scalar) Element {
	e.val.MulGen(asR255Scalar(s).val)
	return e
}

func (e *r255Element) Set(x Element) Element {
	e.val.Set(asR255(x).val)
	return e
}

func (e *r255Element) IsIdentity() bool {
	return e.val.IsIdentity()
}

func (e *r255Element) IsEqual(x Element) bool {
	return e.val.IsEqual(asR255(x).val)
}

func (e *r255Element) MarshalBinary() ([]byte, error) {
	return e.val.MarshalBinary()
}

func (e *r255Element) UnmarshalBinary(data []byte) error {
	if e.val == nil {
		e.val = cgroup.Ristretto255.NewElement()
	}
	return e.val.UnmarshalBinary(data)
}

func asR255(e Element) *r255Element {
	r, ok := e.(*r255Element)
	if !ok {
		panic(fmt.Sprintf("group: not a ristretto255 element: %T", e))
	}
	return r
}

// r255Scalar wraps a circl Ristretto255 scalar field element.
type r255Scalar struct {
	val cgroup.Scalar
}

func (s *r255Scalar) Add(x, y Scalar) Scalar {
	s.val.Add(asR255Scalar(x).val, asR255Scalar(y).val)
	return s
}

func (s *r255Scalar) Sub(x, y Scalar) Scalar {
	s.val.Sub(asR255Scalar(x).val, asR255Scalar(y).val)
	return s
}

func (s *r255Scalar) Mul(x, y Scalar) Scalar {
	s.val.Mul(asR255Scalar(x).val, asR255Scalar(y).val)
	return s
}

func (s *r255Scalar) Inverse(x Scalar) Scalar {
	s.val.Inv(asR255Scalar(x).val)
	return s
}

func (s *r255Scalar) Negate(x Scalar) Scalar {
	s.val.Neg(asR255Scalar(x).val)
	return s
}

func (s *r255Scalar) Set(x Scalar) Scalar {
	s.val.Set(asR255Scalar(x).val)
	return s
}

func (s *r255Scalar) SetUint64(v uint64) Scalar {
	s.val.SetUint64(v)
	return s
}

func (s *r255Scalar) IsZero() bool {
	return s.val.IsZero()
}

func (s *r255Scalar) IsEqual(x Scalar) bool {
	return s.val.IsEqual(asR255Scalar(x).val)
}

func (s *r255Scalar) MarshalBinary() ([]byte, error) {
	return s.val.MarshalBinary()
}

func (s *r255Scalar) UnmarshalBinary(data []byte) error {
	if s.val == nil {
		s.val = cgroup.Ristretto255.NewScalar()
	}
	return s.val.UnmarshalBinary(data)
}

func asR255Scalar(s Scalar) *r255Scalar {
	r, ok := s.(*r255Scalar)
	if !ok {
		panic(fmt.Sprintf("group: not a ristretto255 scalar: %T", s))
	}
	return r
}

// bigIntScalar is implemented by circl's Ristretto255 scalar; it takes
// an arbitrary-width big.Int and reduces it modulo the group order.
type bigIntScalar interface {
	SetBigInt(*big.Int) cgroup.Scalar
}

// ScalarFromBigInt reduces i modulo the group order and returns the
// resulting scalar. Used by the transcript to turn a wide hash output
// into a uniform challenge scalar; never used on secret witness data,
// which always flows through SetUint64 or UnmarshalBinary instead.
func ScalarFromBigInt(i *big.Int) Scalar {
	cs := cgroup.Ristretto255.NewScalar().(bigIntScalar).SetBigInt(i)
	return &r255Scalar{val: cs}
}
