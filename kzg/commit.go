package kzg

import (
	"fmt"

	"github.com/kateproofs/kate/algebra"
	"github.com/kateproofs/kate/algebra/polynomial"
)

// Commit computes the linear combination Σ f_i · key[i], the commitment to
// f under the given key sequence. It fails with ErrCapacityExceeded when f
// has more coefficients than the key has elements.
//
// Commit is linear: Commit(key, f+g) equals Commit(key, f) + Commit(key, g)
// whenever both degrees fit.
func Commit(key []algebra.Point, f polynomial.Polynomial) (algebra.Point, error) {
	if len(key) == 0 {
		return nil, fmt.Errorf("%w: empty key sequence", ErrInvalidKey)
	}
	if f.Degree() >= len(key) {
		return nil, fmt.Errorf("%w: degree %d, capacity %d", ErrCapacityExceeded, f.Degree(), len(key))
	}

	acc := key[0].Clone().Null()
	term := key[0].Clone()
	for i := 0; i <= f.Degree(); i++ {
		term.ScalarMul(f.Coeff(i), key[i])
		acc.Add(acc, term)
	}
	return acc, nil
}

// Commit commits to f under the primary key sequence H.
func (pk *ProvingKey) Commit(f polynomial.Polynomial) (algebra.Point, error) {
	return Commit(pk.H, f)
}

// CommitShifted commits to f under the α-shifted key sequence HAlpha. A
// (Commit, CommitShifted) pair is what VerifyShift binds to the official
// key material.
func (pk *ProvingKey) CommitShifted(f polynomial.Polynomial) (algebra.Point, error) {
	return Commit(pk.HAlpha, f)
}
