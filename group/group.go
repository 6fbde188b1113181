// Package group implements the prime-order group and scalar field the
// proof system is built over. The only backend is Ristretto255: its
// canonical encoding and built-in subgroup safety are load-bearing for
// the soundness of every proof constructed on top of this package, so
// unlike the PoC this is adapted from, no other backend is offered.
package group

import "encoding"

// Scalar is an element of the scalar field of the group, i.e. integers
// modulo the group order. All arithmetic is constant time.
type Scalar interface {
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler

	// Add sets s = x + y and returns s.
	Add(x, y Scalar) Scalar
	// Sub sets s = x - y and returns s.
	Sub(x, y Scalar) Scalar
	// Mul sets s = x * y and returns s.
	Mul(x, y Scalar) Scalar
	// Inverse sets s = x^-1 and returns s. x must be non-zero.
	Inverse(x Scalar) Scalar
	// Negate sets s = -x and returns s.
	Negate(x Scalar) Scalar
	// Set copies x into s and returns s.
	Set(x Scalar) Scalar
	// SetUint64 sets s to the value v and returns s.
	SetUint64(v uint64) Scalar

	IsZero() bool
	IsEqual(x Scalar) bool
}

// Element is a point in the prime-order group.
type Element interface {
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler

	// Add sets e = x + y and returns e.
	Add(x, y Element) Element
	// Subtract sets e = x - y and returns e.
	Subtract(x, y Element) Element
	// Negate sets e = -x and returns e.
	Negate(x Element) Element
	// Scale sets e = x * s (scalar multiplication) and returns e.
	Scale(x Element, s Scalar) Element
	// BaseScale sets e = s * G, G the group's distinguished generator.
	BaseScale(s Scalar) Element
	// Set copies x into e and returns e.
	Set(x Element) Element

	IsIdentity() bool
	IsEqual(x Element) bool
}

// Group is a cryptographic prime-order group together with its scalar
// field.
type Group interface {
	// Name identifies the group, e.g. for logging.
	Name() string

	// Element returns a fresh identity-valued element, usable as the
	// receiver of an in-place operation.
	Element() Element
	// NewScalar returns a fresh zero-valued scalar, usable as the
	// receiver of an in-place operation.
	NewScalar() Scalar

	Generator() Element
	Identity() Element

	// Random returns a uniformly random element.
	Random() Element
	// RandomScalar returns a uniformly random non-zero scalar.
	RandomScalar() Scalar

	// HashToElement deterministically derives a group element from an
	// arbitrary label, independent of the group's generator. Used to
	// derive the vector generators the range proof needs without a
	// trusted setup (spec §4.1's "nothing-up-my-sleeve" generators).
	HashToElement(label string) Element
}
