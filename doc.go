// Package kate implements the KZG (Kate-Zaverucha-Goldberg) polynomial
// commitment scheme: a prover commits to a polynomial with a single group
// element and later proves point evaluations or root-sharing statements
// about it, which a verifier checks in constant time with a bilinear
// pairing.
//
// The protocol logic lives in the kzg package and is written against the
// capability interfaces of the algebra package, so the underlying pairing
// implementation can be swapped. Two backends are provided:
//   - BLS12-381 (github.com/consensys/gnark-crypto)
//   - BN256 (go.dedis.ch/kyber/v3)
//
// See examples/singleop for a complete single-operation argument built on
// top of the scheme.
package kate

import (
	"github.com/blang/semver/v4"

	"github.com/kateproofs/kate/algebra"
	"github.com/kateproofs/kate/algebra/bls12381"
	"github.com/kateproofs/kate/algebra/bn256"
)

var Version = semver.MustParse("0.1.0")

// Suites returns the pairing suites supported by kate.
func Suites() []algebra.Suite {
	return []algebra.Suite{
		bls12381.NewSuite(),
		bn256.NewSuite(),
	}
}
