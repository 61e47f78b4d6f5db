package kzg

import (
	"github.com/kateproofs/kate/algebra"
)

// VerifyEval checks an evaluation proof for f(u) = v against the
// commitment comF, via
//
//	e(G·s, com_q) == e(com_f - v·G + u·com_q, G)
//
// which lifts (s-u)·com_q == com_f - v·G into the target group without
// knowledge of s.
func (vk *VerificationKey) VerifyEval(comF algebra.Point, u, v algebra.Scalar, proof *EvalProof) bool {
	if comF == nil || proof == nil || proof.ComQ == nil {
		return false
	}
	g := vk.suite.Point().Base()

	lhs := vk.suite.Pair(vk.GS, proof.ComQ)

	rhsArg := vk.suite.Point().ScalarMul(v, g)
	rhsArg.Sub(comF, rhsArg)
	rhsArg.Add(rhsArg, vk.suite.Point().ScalarMul(u, proof.ComQ))
	rhs := vk.suite.Pair(rhsArg, g)

	return lhs.Equal(rhs)
}

// VerifyRoots checks that the polynomial behind comF vanishes on every
// root of the target polynomial baked into the key, via
//
//	e(com_f, G) == e(com_h, G·t(s))
//
// t(s) is never recomputed at verify time; it lives in the key.
func (vk *VerificationKey) VerifyRoots(comF, comH algebra.Point) bool {
	if comF == nil || comH == nil {
		return false
	}
	g := vk.suite.Point().Base()
	lhs := vk.suite.Pair(comF, g)
	rhs := vk.suite.Pair(comH, vk.GTs)
	return lhs.Equal(rhs)
}

// VerifyShift checks com_f2 == α·com_f, via
//
//	e(com_f2, G) == e(com_f, G·α)
//
// A commitment pair passes only if both were built from the official key
// sequences; it binds provers to the structured reference string instead
// of arbitrary group elements.
func (vk *VerificationKey) VerifyShift(comF, comF2 algebra.Point) bool {
	if comF == nil || comF2 == nil {
		return false
	}
	g := vk.suite.Point().Base()
	lhs := vk.suite.Pair(comF2, g)
	rhs := vk.suite.Pair(comF, vk.GAlpha)
	return lhs.Equal(rhs)
}

// Verify checks a full root-sharing proof: the root check on
// (ComF, ComH) and the shift check on (ComF, ComF2).
func (vk *VerificationKey) Verify(proof *Proof) bool {
	if proof == nil {
		return false
	}
	return vk.VerifyRoots(proof.ComF, proof.ComH) &&
		vk.VerifyShift(proof.ComF, proof.ComF2)
}
