package bn256

import (
	"go.dedis.ch/kyber/v3"

	"github.com/kateproofs/kate/algebra"
)

// gt wraps a kyber GT group point. kyber writes the target group
// additively, so the multiplicative Mul and Exp of algebra.GT map to the
// point Add and Mul operations.
type gt struct {
	v kyber.Point
}

func toGT(a algebra.GT) *gt {
	g, ok := a.(*gt)
	if !ok {
		panic("bn256: target group element from a foreign suite")
	}
	return g
}

func (g *gt) Mul(a, b algebra.GT) algebra.GT {
	g.v.Add(toGT(a).v, toGT(b).v)
	return g
}

func (g *gt) Exp(a algebra.GT, s algebra.Scalar) algebra.GT {
	g.v.Mul(toScalar(s).v, toGT(a).v)
	return g
}

func (g *gt) Equal(a algebra.GT) bool {
	return g.v.Equal(toGT(a).v)
}

func (g *gt) String() string {
	return g.v.String()
}
