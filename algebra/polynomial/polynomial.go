// Package polynomial implements coefficient-form polynomials over the
// scalar field of an algebra.Suite.
//
// A polynomial is an ordered sequence of coefficients, index i holding the
// coefficient of Xⁱ, with trailing zero coefficients trimmed. The zero
// polynomial has degree -1. Operations return fresh polynomials and never
// mutate their operands; operands must come from the same suite.
package polynomial

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kateproofs/kate/algebra"
)

var (
	// ErrNonExactDivision is returned by DivExact when the division leaves
	// a nonzero remainder.
	ErrNonExactDivision = errors.New("polynomial: division leaves a nonzero remainder")
	// ErrDivideByZero is returned when dividing by the zero polynomial.
	ErrDivideByZero = errors.New("polynomial: division by the zero polynomial")
	// ErrInterpolation is returned by Interpolate on invalid point lists.
	ErrInterpolation = errors.New("polynomial: invalid interpolation points")
)

// Polynomial is a polynomial over the scalar field of a suite.
type Polynomial struct {
	suite  algebra.Suite
	coeffs []algebra.Scalar
}

// New builds a polynomial from the given coefficients, coeffs[i] being the
// coefficient of Xⁱ. The slice is copied.
func New(suite algebra.Suite, coeffs []algebra.Scalar) Polynomial {
	c := make([]algebra.Scalar, len(coeffs))
	for i := range coeffs {
		c[i] = coeffs[i].Clone()
	}
	return Polynomial{suite: suite, coeffs: trim(c)}
}

// FromUint64 builds a polynomial from small integer coefficients.
func FromUint64(suite algebra.Suite, coeffs ...uint64) Polynomial {
	c := make([]algebra.Scalar, len(coeffs))
	for i, v := range coeffs {
		c[i] = suite.Scalar().SetUint64(v)
	}
	return Polynomial{suite: suite, coeffs: trim(c)}
}

// Zero returns the zero polynomial.
func Zero(suite algebra.Suite) Polynomial {
	return Polynomial{suite: suite}
}

// Constant returns the degree-0 polynomial c.
func Constant(suite algebra.Suite, c algebra.Scalar) Polynomial {
	return New(suite, []algebra.Scalar{c})
}

// X returns the identity polynomial x ↦ x.
func X(suite algebra.Suite) Polynomial {
	return Monomial(suite, 1, suite.Scalar().SetOne())
}

// Monomial returns c·X^degree.
func Monomial(suite algebra.Suite, degree int, c algebra.Scalar) Polynomial {
	coeffs := make([]algebra.Scalar, degree+1)
	for i := 0; i < degree; i++ {
		coeffs[i] = suite.Scalar()
	}
	coeffs[degree] = c.Clone()
	return Polynomial{suite: suite, coeffs: trim(coeffs)}
}

// Vanishing returns (X-r₁)(X-r₂)...(X-rₙ) for the given roots.
func Vanishing(suite algebra.Suite, roots []algebra.Scalar) Polynomial {
	p := Constant(suite, suite.Scalar().SetOne())
	x := X(suite)
	for _, r := range roots {
		p = p.Mul(x.Sub(Constant(suite, r)))
	}
	return p
}

func trim(coeffs []algebra.Scalar) []algebra.Scalar {
	n := len(coeffs)
	for n > 0 && coeffs[n-1].IsZero() {
		n--
	}
	return coeffs[:n]
}

// Suite returns the suite the coefficients live in.
func (p Polynomial) Suite() algebra.Suite {
	return p.suite
}

// Degree returns the degree of p; the zero polynomial has degree -1.
func (p Polynomial) Degree() int {
	return len(p.coeffs) - 1
}

// IsZero reports whether p is the zero polynomial.
func (p Polynomial) IsZero() bool {
	return len(p.coeffs) == 0
}

// Coeff returns a copy of the coefficient of Xⁱ, zero above the degree.
func (p Polynomial) Coeff(i int) algebra.Scalar {
	if i < 0 || i >= len(p.coeffs) {
		return p.suite.Scalar()
	}
	return p.coeffs[i].Clone()
}

// Clone returns an independent copy of p.
func (p Polynomial) Clone() Polynomial {
	return New(p.suite, p.coeffs)
}

// Equal reports whether p and q have identical coefficients.
func (p Polynomial) Equal(q Polynomial) bool {
	if len(p.coeffs) != len(q.coeffs) {
		return false
	}
	for i := range p.coeffs {
		if !p.coeffs[i].Equal(q.coeffs[i]) {
			return false
		}
	}
	return true
}

// Add returns p + q.
func (p Polynomial) Add(q Polynomial) Polynomial {
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}
	coeffs := make([]algebra.Scalar, n)
	for i := range coeffs {
		coeffs[i] = p.Coeff(i).Add(p.Coeff(i), q.Coeff(i))
	}
	return Polynomial{suite: p.suite, coeffs: trim(coeffs)}
}

// Sub returns p - q.
func (p Polynomial) Sub(q Polynomial) Polynomial {
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}
	coeffs := make([]algebra.Scalar, n)
	for i := range coeffs {
		coeffs[i] = p.Coeff(i).Sub(p.Coeff(i), q.Coeff(i))
	}
	return Polynomial{suite: p.suite, coeffs: trim(coeffs)}
}

// Neg returns -p.
func (p Polynomial) Neg() Polynomial {
	coeffs := make([]algebra.Scalar, len(p.coeffs))
	for i := range coeffs {
		coeffs[i] = p.suite.Scalar().Neg(p.coeffs[i])
	}
	return Polynomial{suite: p.suite, coeffs: coeffs}
}

// Mul returns p · q.
func (p Polynomial) Mul(q Polynomial) Polynomial {
	if p.IsZero() || q.IsZero() {
		return Zero(p.suite)
	}
	coeffs := make([]algebra.Scalar, len(p.coeffs)+len(q.coeffs)-1)
	for i := range coeffs {
		coeffs[i] = p.suite.Scalar()
	}
	tmp := p.suite.Scalar()
	for i := range p.coeffs {
		for j := range q.coeffs {
			tmp.Mul(p.coeffs[i], q.coeffs[j])
			coeffs[i+j].Add(coeffs[i+j], tmp)
		}
	}
	return Polynomial{suite: p.suite, coeffs: trim(coeffs)}
}

// MulScalar returns c · p.
func (p Polynomial) MulScalar(c algebra.Scalar) Polynomial {
	coeffs := make([]algebra.Scalar, len(p.coeffs))
	for i := range coeffs {
		coeffs[i] = p.suite.Scalar().Mul(p.coeffs[i], c)
	}
	return Polynomial{suite: p.suite, coeffs: trim(coeffs)}
}

// Eval evaluates p at x using Horner's rule.
func (p Polynomial) Eval(x algebra.Scalar) algebra.Scalar {
	res := p.suite.Scalar()
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		res.Mul(res, x)
		res.Add(res, p.coeffs[i])
	}
	return res
}

// QuoRem returns the quotient and remainder of p divided by d, with
// deg(rem) < deg(d). It fails with ErrDivideByZero when d is the zero
// polynomial.
func (p Polynomial) QuoRem(d Polynomial) (quo, rem Polynomial, err error) {
	degD := d.Degree()
	if degD < 0 {
		return Polynomial{}, Polynomial{}, ErrDivideByZero
	}
	if p.Degree() < degD {
		return Zero(p.suite), p.Clone(), nil
	}

	r := make([]algebra.Scalar, len(p.coeffs))
	for i := range r {
		r[i] = p.coeffs[i].Clone()
	}
	q := make([]algebra.Scalar, p.Degree()-degD+1)
	for i := range q {
		q[i] = p.suite.Scalar()
	}

	leadInv := p.suite.Scalar().Inverse(d.coeffs[degD])
	tmp := p.suite.Scalar()
	degR := len(r) - 1
	for degR >= degD {
		shift := degR - degD
		q[shift].Mul(r[degR], leadInv)
		for i := 0; i <= degD; i++ {
			tmp.Mul(q[shift], d.coeffs[i])
			r[shift+i].Sub(r[shift+i], tmp)
		}
		for degR >= 0 && r[degR].IsZero() {
			degR--
		}
	}

	quo = Polynomial{suite: p.suite, coeffs: trim(q)}
	rem = Polynomial{suite: p.suite, coeffs: trim(r[:degR+1])}
	return quo, rem, nil
}

// DivExact returns p / d and fails with ErrNonExactDivision when d does
// not divide p exactly. A nonzero remainder is how a false statement
// surfaces at proving time, so the remainder is never silently dropped.
func (p Polynomial) DivExact(d Polynomial) (Polynomial, error) {
	quo, rem, err := p.QuoRem(d)
	if err != nil {
		return Polynomial{}, err
	}
	if !rem.IsZero() {
		return Polynomial{}, ErrNonExactDivision
	}
	return quo, nil
}

// Interpolate returns the unique polynomial of degree < len(xs) with
// p(xs[i]) = ys[i] for all i, by Lagrange interpolation. The abscissae
// must be pairwise distinct.
func Interpolate(suite algebra.Suite, xs, ys []algebra.Scalar) (Polynomial, error) {
	if len(xs) == 0 || len(xs) != len(ys) {
		return Polynomial{}, fmt.Errorf("%w: got %d abscissae and %d ordinates", ErrInterpolation, len(xs), len(ys))
	}

	res := Zero(suite)
	x := X(suite)
	diff := suite.Scalar()
	for j := range xs {
		basis := Constant(suite, suite.Scalar().SetOne())
		denom := suite.Scalar().SetOne()
		for m := range xs {
			if m == j {
				continue
			}
			basis = basis.Mul(x.Sub(Constant(suite, xs[m])))
			diff.Sub(xs[j], xs[m])
			if diff.IsZero() {
				return Polynomial{}, fmt.Errorf("%w: duplicate abscissa %s", ErrInterpolation, xs[j])
			}
			denom.Mul(denom, diff)
		}
		res = res.Add(basis.MulScalar(suite.Scalar().Div(ys[j], denom)))
	}
	return res, nil
}

// String renders p with the highest-degree term first, e.g. "3x^2 + x + 7".
func (p Polynomial) String() string {
	if p.IsZero() {
		return "0"
	}
	var sb strings.Builder
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		if p.coeffs[i].IsZero() {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(" + ")
		}
		switch {
		case i == 0:
			sb.WriteString(p.coeffs[i].String())
		case i == 1:
			sb.WriteString(p.coeffs[i].String() + "x")
		default:
			fmt.Fprintf(&sb, "%sx^%d", p.coeffs[i], i)
		}
	}
	return sb.String()
}
