package bn256

import (
	"go.dedis.ch/kyber/v3"

	"github.com/kateproofs/kate/algebra"
)

// point carries the same discrete logarithm on both source groups.
type point struct {
	p1 kyber.Point // G1 leg
	p2 kyber.Point // G2 leg
}

func toPoint(a algebra.Point) *point {
	p, ok := a.(*point)
	if !ok {
		panic("bn256: point from a foreign suite")
	}
	return p
}

func (p *point) Set(a algebra.Point) algebra.Point {
	o := toPoint(a)
	p.p1.Set(o.p1)
	p.p2.Set(o.p2)
	return p
}

func (p *point) Clone() algebra.Point {
	return &point{p1: p.p1.Clone(), p2: p.p2.Clone()}
}

func (p *point) Base() algebra.Point {
	p.p1.Base()
	p.p2.Base()
	return p
}

func (p *point) Null() algebra.Point {
	p.p1.Null()
	p.p2.Null()
	return p
}

func (p *point) Add(a, b algebra.Point) algebra.Point {
	x, y := toPoint(a), toPoint(b)
	p.p1.Add(x.p1, y.p1)
	p.p2.Add(x.p2, y.p2)
	return p
}

func (p *point) Sub(a, b algebra.Point) algebra.Point {
	x, y := toPoint(a), toPoint(b)
	p.p1.Sub(x.p1, y.p1)
	p.p2.Sub(x.p2, y.p2)
	return p
}

func (p *point) Neg(a algebra.Point) algebra.Point {
	x := toPoint(a)
	p.p1.Neg(x.p1)
	p.p2.Neg(x.p2)
	return p
}

func (p *point) ScalarMul(s algebra.Scalar, a algebra.Point) algebra.Point {
	x := toPoint(a)
	k := toScalar(s).v
	p.p1.Mul(k, x.p1)
	p.p2.Mul(k, x.p2)
	return p
}

func (p *point) Equal(a algebra.Point) bool {
	o := toPoint(a)
	return p.p1.Equal(o.p1) && p.p2.Equal(o.p2)
}

func (p *point) String() string {
	return p.p1.String()
}
