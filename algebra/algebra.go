// Package algebra defines the algebraic capability interfaces consumed by
// the kzg package: scalars of a prime field, points of a prime-order group
// with a fixed generator, elements of the pairing target group, and a Suite
// tying them together with a bilinear pairing.
//
// The interfaces follow the mutate-receiver-and-return convention of
// go.dedis.ch/kyber: operations set the receiver to the result and return
// it, so calls chain naturally and allocation stays explicit. Implementations
// are free to panic when handed values from a foreign suite; mixing suites is
// a programming error, not a runtime condition.
//
// Soundness of the protocols built on a Suite rests on Pair being bilinear
// and non-degenerate, and on the computational assumption that
// Pair(a, G) == Pair(c, G) implies a == c for an adversary bounded by the
// discrete-log hardness of the group. The latter is a standard cryptographic
// assumption and is not checked at runtime.
package algebra

// Scalar is an element of the scheme's prime scalar field.
type Scalar interface {
	// Set sets the receiver to a and returns it.
	Set(a Scalar) Scalar
	// Clone returns an independent copy of the scalar.
	Clone() Scalar
	// SetUint64 sets the receiver to the field image of v.
	SetUint64(v uint64) Scalar
	// SetOne sets the receiver to the multiplicative identity.
	SetOne() Scalar
	// SetZero sets the receiver to the additive identity.
	SetZero() Scalar
	// SetRandom sets the receiver to a uniformly random field element drawn
	// from a cryptographically secure source.
	SetRandom() (Scalar, error)
	IsZero() bool
	Equal(a Scalar) bool
	Add(a, b Scalar) Scalar
	Sub(a, b Scalar) Scalar
	Mul(a, b Scalar) Scalar
	Neg(a Scalar) Scalar
	// Inverse sets the receiver to 1/a. It panics if a is zero.
	Inverse(a Scalar) Scalar
	// Div sets the receiver to a/b. It panics if b is zero.
	Div(a, b Scalar) Scalar
	String() string
}

// Point is an element of a prime-order group, written additively.
type Point interface {
	// Set sets the receiver to a and returns it.
	Set(a Point) Point
	// Clone returns an independent copy of the point.
	Clone() Point
	// Base sets the receiver to the fixed group generator G.
	Base() Point
	// Null sets the receiver to the group identity.
	Null() Point
	Add(a, b Point) Point
	Sub(a, b Point) Point
	Neg(a Point) Point
	// ScalarMul sets the receiver to s·a.
	ScalarMul(s Scalar, a Point) Point
	Equal(a Point) bool
	String() string
}

// GT is an element of the pairing target group, written multiplicatively.
type GT interface {
	// Mul sets the receiver to a·b (the target-group operation).
	Mul(a, b GT) GT
	// Exp sets the receiver to a^s.
	Exp(a GT, s Scalar) GT
	Equal(a GT) bool
	String() string
}

// Suite is a complete pairing-friendly algebraic backend.
type Suite interface {
	// Name identifies the backend, e.g. "bls12381".
	Name() string
	// Scalar returns a new scalar set to zero.
	Scalar() Scalar
	// Point returns a new point set to the group identity.
	Point() Point
	// Pair evaluates the bilinear pairing e(p, q).
	Pair(p, q Point) GT
}
