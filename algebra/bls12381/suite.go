// Package bls12381 implements the algebra capability interfaces over the
// BLS12-381 curve from github.com/consensys/gnark-crypto.
//
// BLS12-381 is a type-3 pairing; the protocol layer is written for a
// symmetric pairing where both arguments of e come from the same group.
// A point here therefore carries a (G1, G2) pair moving in lockstep under
// the same scalars, and Pair(x, y) evaluates e(x.g1, y.g2). This costs one
// extra scalar multiplication per group operation and lets any two
// commitments be paired with each other.
package bls12381

import (
	curve "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/kateproofs/kate/algebra"
)

var (
	g1Gen curve.G1Affine
	g2Gen curve.G2Affine
)

func init() {
	_, _, g1Gen, g2Gen = curve.Generators()
}

// Suite is the BLS12-381 backend.
type Suite struct{}

// NewSuite returns the BLS12-381 pairing suite.
func NewSuite() *Suite {
	return &Suite{}
}

func (s *Suite) Name() string {
	return "bls12381"
}

func (s *Suite) Scalar() algebra.Scalar {
	return &scalar{}
}

func (s *Suite) Point() algebra.Point {
	return &point{}
}

// Pair evaluates e(p.g1, q.g2).
func (s *Suite) Pair(p, q algebra.Point) algebra.GT {
	a := toPoint(p)
	b := toPoint(q)
	res, err := curve.Pair([]curve.G1Affine{a.g1}, []curve.G2Affine{b.g2})
	if err != nil {
		// Pair only fails on mismatched input lengths.
		panic("bls12381: pairing failed: " + err.Error())
	}
	return &gt{v: res}
}
