// Package bn256 implements the algebra capability interfaces over the
// BN256 pairing suite from go.dedis.ch/kyber/v3.
//
// Like the bls12381 backend, a point carries a (G1, G2) pair moving in
// lockstep so that the asymmetric pairing presents a symmetric face to the
// protocol layer: Pair(x, y) evaluates e(x.p1, y.p2).
//
// BN256 offers roughly 100 bits of security; prefer bls12381 outside of
// tests and benchmarks.
package bn256

import (
	"go.dedis.ch/kyber/v3/pairing/bn256"

	"github.com/kateproofs/kate/algebra"
)

// Suite is the kyber BN256 backend.
type Suite struct {
	s *bn256.Suite
}

// NewSuite returns the BN256 pairing suite.
func NewSuite() *Suite {
	return &Suite{s: bn256.NewSuite()}
}

func (s *Suite) Name() string {
	return "bn256"
}

func (s *Suite) Scalar() algebra.Scalar {
	return &scalar{v: s.s.G1().Scalar().Zero()}
}

func (s *Suite) Point() algebra.Point {
	return &point{
		p1: s.s.G1().Point().Null(),
		p2: s.s.G2().Point().Null(),
	}
}

// Pair evaluates e(p.p1, q.p2).
func (s *Suite) Pair(p, q algebra.Point) algebra.GT {
	a := toPoint(p)
	b := toPoint(q)
	return &gt{v: s.s.Pair(a.p1, b.p2)}
}
