package kzg

import (
	"fmt"
	"time"

	"github.com/kateproofs/kate/algebra"
	"github.com/kateproofs/kate/algebra/polynomial"
	"github.com/kateproofs/kate/logger"
)

// ProveEval proves f(u) = v. It commits to the quotient (f-v)/(X-u),
// which exists as a polynomial exactly when the statement is true; a
// wrong v fails with polynomial.ErrNonExactDivision and no proof object
// is ever produced for a false statement.
func ProveEval(pk *ProvingKey, f polynomial.Polynomial, u, v algebra.Scalar) (*EvalProof, error) {
	suite := pk.suite
	num := f.Sub(polynomial.Constant(suite, v))
	den := polynomial.X(suite).Sub(polynomial.Constant(suite, u))
	q, err := num.DivExact(den)
	if err != nil {
		return nil, fmt.Errorf("kzg: f(u) != v: %w", err)
	}
	comQ, err := pk.Commit(q)
	if err != nil {
		return nil, err
	}
	return &EvalProof{ComQ: comQ}, nil
}

// ProveRoots proves that f vanishes on every root of the target
// polynomial t, by exhibiting the quotient h = f/t. The returned tuple
// (ComF, ComH, ComF2) is already rerandomized by one fresh blinding
// scalar; a polynomial not divisible by t fails with
// polynomial.ErrNonExactDivision.
func ProveRoots(pk *ProvingKey, f, t polynomial.Polynomial) (*Proof, error) {
	start := time.Now()

	h, err := f.DivExact(t)
	if err != nil {
		return nil, fmt.Errorf("kzg: f does not vanish on the roots of t: %w", err)
	}

	comF, err := pk.Commit(f)
	if err != nil {
		return nil, err
	}
	comH, err := pk.Commit(h)
	if err != nil {
		return nil, err
	}
	comF2, err := pk.CommitShifted(f)
	if err != nil {
		return nil, err
	}

	proof, err := Blind(pk.suite, &Proof{ComF: comF, ComH: comH, ComF2: comF2})
	if err != nil {
		return nil, err
	}

	log := logger.Logger()
	log.Debug().
		Str("suite", pk.suite.Name()).
		Int("degree", f.Degree()).
		Dur("took", time.Since(start)).
		Msg("kzg: root-sharing proof generated")

	return proof, nil
}

// Blind rerandomizes a proof tuple by a single fresh nonzero scalar δ,
// scaling every component identically. All verification equations are
// homogeneous of the same degree in each component, so one shared δ
// preserves their truth value while hiding the raw commitments. The δ is
// drawn per call and never reused; per-component scalars would break the
// pairing equations and are deliberately not offered.
func Blind(suite algebra.Suite, p *Proof) (*Proof, error) {
	delta, err := suite.Scalar().SetRandom()
	if err != nil {
		return nil, fmt.Errorf("kzg: sampling blinding scalar: %w", err)
	}
	for delta.IsZero() {
		if _, err = delta.SetRandom(); err != nil {
			return nil, fmt.Errorf("kzg: sampling blinding scalar: %w", err)
		}
	}
	return &Proof{
		ComF:  suite.Point().ScalarMul(delta, p.ComF),
		ComH:  suite.Point().ScalarMul(delta, p.ComH),
		ComF2: suite.Point().ScalarMul(delta, p.ComF2),
	}, nil
}
