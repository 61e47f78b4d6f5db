// Package kzg implements the KZG (Kate-Zaverucha-Goldberg) polynomial
// commitment scheme over any algebra.Suite.
//
// The protocol is: Setup once, then per statement Commit, prove and blind,
// then verify. Keys are immutable after Setup and safe to share across
// concurrent provers and verifiers; every other function is a pure
// function of its inputs plus, where documented, one draw from a secure
// random source.
//
// Proof construction fails on unprovable statements (a claimed evaluation
// that is wrong, a polynomial that does not vanish on the target's roots)
// with an error satisfying errors.Is(err, polynomial.ErrNonExactDivision).
// Verification never fails with an error: each Verify* function returns
// false for any proof that does not pass its pairing check, and false
// means "proof rejected", not a fault to retry.
package kzg

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/kateproofs/kate/algebra"
	"github.com/kateproofs/kate/algebra/polynomial"
	"github.com/kateproofs/kate/debug"
	"github.com/kateproofs/kate/logger"
)

var (
	// ErrCapacityExceeded is returned when a polynomial's degree does not
	// fit the proving key.
	ErrCapacityExceeded = errors.New("kzg: polynomial degree exceeds key capacity")
	// ErrInvalidKey is returned on malformed or mismatched key material.
	ErrInvalidKey = errors.New("kzg: invalid key")
)

// ProvingKey is the structured reference string handed to provers:
// H[i] = G·sⁱ and HAlpha[i] = G·sⁱ·α for a trapdoor (s, α).
type ProvingKey struct {
	suite  algebra.Suite
	H      []algebra.Point
	HAlpha []algebra.Point
}

// VerificationKey is the verifier's side of the reference string.
// GS backs evaluation checks, GTs root checks and GAlpha shift checks.
type VerificationKey struct {
	suite  algebra.Suite
	GS     algebra.Point // G·s
	GTs    algebra.Point // G·t(s)
	GAlpha algebra.Point // G·α
}

// Trapdoor is the secret (s, α) behind a key pair. Holding on to it after
// key generation breaks soundness of every proof made under those keys.
// It exists as a type only so test harnesses can generate deterministic
// keys through NewKeys; production callers use Setup, which never exposes
// it.
type Trapdoor struct {
	S     algebra.Scalar
	Alpha algebra.Scalar
}

// EvalProof proves a single evaluation f(u) = v: one commitment to the
// quotient (f-v)/(X-u).
type EvalProof struct {
	ComQ algebra.Point
}

// Proof is a root-sharing proof: commitments to f, to the quotient
// h = f/t and to f under the α-shifted key, jointly rerandomized by one
// blinding scalar.
type Proof struct {
	ComF  algebra.Point
	ComH  algebra.Point
	ComF2 algebra.Point
}

// Setup generates a fresh key pair of capacity n for target polynomial t.
// The two trapdoor scalars are drawn from the suite's secure randomness
// and discarded before returning; they are never logged or stored.
func Setup(suite algebra.Suite, n int, t polynomial.Polynomial) (*ProvingKey, *VerificationKey, error) {
	s, err := suite.Scalar().SetRandom()
	if err != nil {
		return nil, nil, fmt.Errorf("kzg: sampling trapdoor: %w", err)
	}
	alpha, err := suite.Scalar().SetRandom()
	if err != nil {
		return nil, nil, fmt.Errorf("kzg: sampling trapdoor: %w", err)
	}
	return NewKeys(suite, n, t, &Trapdoor{S: s, Alpha: alpha})
}

// NewKeys builds the key pair of capacity n deterministically from a
// caller-supplied trapdoor. Intended for test harnesses that need
// reproducible keys; the caller is expected to drop the trapdoor
// immediately.
func NewKeys(suite algebra.Suite, n int, t polynomial.Polynomial, td *Trapdoor) (*ProvingKey, *VerificationKey, error) {
	if n < 1 {
		return nil, nil, fmt.Errorf("%w: capacity %d, need at least 1", ErrInvalidKey, n)
	}
	if td == nil || td.S == nil || td.Alpha == nil {
		return nil, nil, fmt.Errorf("%w: missing trapdoor", ErrInvalidKey)
	}
	start := time.Now()

	// sⁱ and α·sⁱ
	powers := make([]algebra.Scalar, n)
	shifted := make([]algebra.Scalar, n)
	powers[0] = suite.Scalar().SetOne()
	for i := 1; i < n; i++ {
		powers[i] = suite.Scalar().Mul(powers[i-1], td.S)
	}
	for i := 0; i < n; i++ {
		shifted[i] = suite.Scalar().Mul(powers[i], td.Alpha)
	}

	pk := &ProvingKey{
		suite:  suite,
		H:      make([]algebra.Point, n),
		HAlpha: make([]algebra.Point, n),
	}
	g := suite.Point().Base()

	var eg errgroup.Group
	nbTasks := runtime.GOMAXPROCS(0)
	chunk := (n + nbTasks - 1) / nbTasks
	for lo := 0; lo < n; lo += chunk {
		lo, hi := lo, lo+chunk
		if hi > n {
			hi = n
		}
		eg.Go(func() error {
			for i := lo; i < hi; i++ {
				pk.H[i] = suite.Point().ScalarMul(powers[i], g)
				pk.HAlpha[i] = suite.Point().ScalarMul(shifted[i], g)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, nil, err
	}
	debug.Assert(len(pk.H) == len(pk.HAlpha), "kzg: key sequence lengths diverged")

	vk := &VerificationKey{
		suite:  suite,
		GS:     suite.Point().ScalarMul(td.S, g),
		GTs:    suite.Point().ScalarMul(t.Eval(td.S), g),
		GAlpha: suite.Point().ScalarMul(td.Alpha, g),
	}

	log := logger.Logger()
	log.Debug().
		Str("suite", suite.Name()).
		Int("capacity", n).
		Int("targetDegree", t.Degree()).
		Dur("took", time.Since(start)).
		Msg("kzg: trusted setup generated")

	return pk, vk, nil
}

// Suite returns the algebraic suite the key was generated for.
func (pk *ProvingKey) Suite() algebra.Suite { return pk.suite }

// Capacity returns the maximum number of coefficients a committed
// polynomial may have under this key.
func (pk *ProvingKey) Capacity() int { return len(pk.H) }

// Suite returns the algebraic suite the key was generated for.
func (vk *VerificationKey) Suite() algebra.Suite { return vk.suite }
