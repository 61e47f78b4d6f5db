package bls12381

import (
	"math/big"

	curve "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/kateproofs/kate/algebra"
)

type gt struct {
	v curve.GT
}

func toGT(a algebra.GT) *gt {
	g, ok := a.(*gt)
	if !ok {
		panic("bls12381: target group element from a foreign suite")
	}
	return g
}

func (g *gt) Mul(a, b algebra.GT) algebra.GT {
	g.v.Mul(&toGT(a).v, &toGT(b).v)
	return g
}

func (g *gt) Exp(a algebra.GT, s algebra.Scalar) algebra.GT {
	var k big.Int
	toScalar(s).v.BigInt(&k)
	g.v.Exp(toGT(a).v, &k)
	return g
}

func (g *gt) Equal(a algebra.GT) bool {
	return g.v.Equal(&toGT(a).v)
}

func (g *gt) String() string {
	return g.v.String()
}
