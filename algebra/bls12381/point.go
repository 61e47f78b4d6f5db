package bls12381

import (
	"math/big"

	curve "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/kateproofs/kate/algebra"
)

// point carries the same discrete logarithm on both source groups. The
// zero value is the group identity.
type point struct {
	g1 curve.G1Affine
	g2 curve.G2Affine
}

func toPoint(a algebra.Point) *point {
	p, ok := a.(*point)
	if !ok {
		panic("bls12381: point from a foreign suite")
	}
	return p
}

func (p *point) Set(a algebra.Point) algebra.Point {
	o := toPoint(a)
	p.g1.Set(&o.g1)
	p.g2.Set(&o.g2)
	return p
}

func (p *point) Clone() algebra.Point {
	c := &point{}
	c.g1.Set(&p.g1)
	c.g2.Set(&p.g2)
	return c
}

func (p *point) Base() algebra.Point {
	p.g1.Set(&g1Gen)
	p.g2.Set(&g2Gen)
	return p
}

func (p *point) Null() algebra.Point {
	p.g1 = curve.G1Affine{}
	p.g2 = curve.G2Affine{}
	return p
}

func (p *point) Add(a, b algebra.Point) algebra.Point {
	x, y := toPoint(a), toPoint(b)
	p.g1.Add(&x.g1, &y.g1)
	p.g2.Add(&x.g2, &y.g2)
	return p
}

func (p *point) Sub(a, b algebra.Point) algebra.Point {
	x, y := toPoint(a), toPoint(b)
	p.g1.Sub(&x.g1, &y.g1)
	p.g2.Sub(&x.g2, &y.g2)
	return p
}

func (p *point) Neg(a algebra.Point) algebra.Point {
	x := toPoint(a)
	p.g1.Neg(&x.g1)
	p.g2.Neg(&x.g2)
	return p
}

func (p *point) ScalarMul(s algebra.Scalar, a algebra.Point) algebra.Point {
	x := toPoint(a)
	var k big.Int
	toScalar(s).v.BigInt(&k)
	p.g1.ScalarMultiplication(&x.g1, &k)
	p.g2.ScalarMultiplication(&x.g2, &k)
	return p
}

func (p *point) Equal(a algebra.Point) bool {
	o := toPoint(a)
	return p.g1.Equal(&o.g1) && p.g2.Equal(&o.g2)
}

func (p *point) String() string {
	return p.g1.String()
}
