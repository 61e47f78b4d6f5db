package kzg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kateproofs/kate/algebra"
	"github.com/kateproofs/kate/algebra/bls12381"
	"github.com/kateproofs/kate/algebra/bn256"
	"github.com/kateproofs/kate/algebra/polynomial"
	"github.com/kateproofs/kate/kzg"
)

var suites = []algebra.Suite{
	bls12381.NewSuite(),
	bn256.NewSuite(),
}

func randScalar(t *testing.T, suite algebra.Suite) algebra.Scalar {
	t.Helper()
	s, err := suite.Scalar().SetRandom()
	require.NoError(t, err)
	return s
}

func randPoly(t *testing.T, suite algebra.Suite, degree int) polynomial.Polynomial {
	t.Helper()
	coeffs := make([]algebra.Scalar, degree+1)
	for i := range coeffs {
		coeffs[i] = randScalar(t, suite)
	}
	return polynomial.New(suite, coeffs)
}

// noTarget is the constant target polynomial for keys only used with
// evaluation proofs.
func noTarget(suite algebra.Suite) polynomial.Polynomial {
	return polynomial.Constant(suite, suite.Scalar().SetOne())
}

func TestEvalProofCompleteness(t *testing.T) {
	for _, suite := range suites {
		t.Run(suite.Name(), func(t *testing.T) {
			const n = 8
			pk, vk, err := kzg.Setup(suite, n, noTarget(suite))
			require.NoError(t, err)

			f := randPoly(t, suite, n-1)
			comF, err := pk.Commit(f)
			require.NoError(t, err)

			u := randScalar(t, suite)
			v := f.Eval(u)
			proof, err := kzg.ProveEval(pk, f, u, v)
			require.NoError(t, err)

			require.True(t, vk.VerifyEval(comF, u, v, proof))

			// the same proof does not verify a different claim
			wrongV := suite.Scalar().Add(v, suite.Scalar().SetOne())
			require.False(t, vk.VerifyEval(comF, u, wrongV, proof))
			wrongU := suite.Scalar().Add(u, suite.Scalar().SetOne())
			require.False(t, vk.VerifyEval(comF, wrongU, v, proof))
		})
	}
}

func TestEvalProofRejectsFalseStatement(t *testing.T) {
	for _, suite := range suites {
		t.Run(suite.Name(), func(t *testing.T) {
			pk, _, err := kzg.Setup(suite, 4, noTarget(suite))
			require.NoError(t, err)

			f := randPoly(t, suite, 3)
			u := randScalar(t, suite)
			wrongV := suite.Scalar().Add(f.Eval(u), suite.Scalar().SetOne())

			proof, err := kzg.ProveEval(pk, f, u, wrongV)
			require.ErrorIs(t, err, polynomial.ErrNonExactDivision)
			require.Nil(t, proof)
		})
	}
}

func TestRootProofCompleteness(t *testing.T) {
	for _, suite := range suites {
		t.Run(suite.Name(), func(t *testing.T) {
			const n = 8
			roots := []algebra.Scalar{
				randScalar(t, suite),
				randScalar(t, suite),
				randScalar(t, suite),
			}
			target := polynomial.Vanishing(suite, roots)
			pk, vk, err := kzg.Setup(suite, n, target)
			require.NoError(t, err)

			f := target.Mul(randPoly(t, suite, n-1-target.Degree()))
			proof, err := kzg.ProveRoots(pk, f, target)
			require.NoError(t, err)

			require.True(t, vk.Verify(proof))
			require.True(t, vk.VerifyRoots(proof.ComF, proof.ComH))
			require.True(t, vk.VerifyShift(proof.ComF, proof.ComF2))
		})
	}
}

func TestRootProofRejectsNonVanishing(t *testing.T) {
	for _, suite := range suites {
		t.Run(suite.Name(), func(t *testing.T) {
			target := polynomial.Vanishing(suite, []algebra.Scalar{randScalar(t, suite)})
			pk, _, err := kzg.Setup(suite, 4, target)
			require.NoError(t, err)

			// random f almost surely does not vanish at the root
			f := randPoly(t, suite, 3).Add(polynomial.Constant(suite, suite.Scalar().SetOne()))
			if _, err := f.DivExact(target); err == nil {
				t.Skip("drew a divisible polynomial")
			}
			proof, err := kzg.ProveRoots(pk, f, target)
			require.ErrorIs(t, err, polynomial.ErrNonExactDivision)
			require.Nil(t, proof)
		})
	}
}

func TestTamperedProofRejected(t *testing.T) {
	for _, suite := range suites {
		t.Run(suite.Name(), func(t *testing.T) {
			const n = 8
			target := polynomial.Vanishing(suite, []algebra.Scalar{randScalar(t, suite)})
			pk, vk, err := kzg.Setup(suite, n, target)
			require.NoError(t, err)
			g := suite.Point().Base()

			// evaluation proof
			f := randPoly(t, suite, n-1)
			comF, err := pk.Commit(f)
			require.NoError(t, err)
			u := randScalar(t, suite)
			v := f.Eval(u)
			eproof, err := kzg.ProveEval(pk, f, u, v)
			require.NoError(t, err)

			require.False(t, vk.VerifyEval(suite.Point().Add(comF, g), u, v, eproof))
			tampered := &kzg.EvalProof{ComQ: suite.Point().Add(eproof.ComQ, g)}
			require.False(t, vk.VerifyEval(comF, u, v, tampered))

			// root-sharing proof, one component at a time
			fr := target.Mul(randPoly(t, suite, n-1-target.Degree()))
			proof, err := kzg.ProveRoots(pk, fr, target)
			require.NoError(t, err)
			require.True(t, vk.Verify(proof))

			require.False(t, vk.Verify(&kzg.Proof{
				ComF: suite.Point().Add(proof.ComF, g), ComH: proof.ComH, ComF2: proof.ComF2,
			}))
			require.False(t, vk.Verify(&kzg.Proof{
				ComF: proof.ComF, ComH: suite.Point().Add(proof.ComH, g), ComF2: proof.ComF2,
			}))
			require.False(t, vk.Verify(&kzg.Proof{
				ComF: proof.ComF, ComH: proof.ComH, ComF2: suite.Point().Add(proof.ComF2, g),
			}))
		})
	}
}

func TestShiftBinding(t *testing.T) {
	for _, suite := range suites {
		t.Run(suite.Name(), func(t *testing.T) {
			const n = 4
			pk, vk, err := kzg.Setup(suite, n, noTarget(suite))
			require.NoError(t, err)
			otherPK, _, err := kzg.Setup(suite, n, noTarget(suite))
			require.NoError(t, err)

			f := randPoly(t, suite, n-1)
			comF, err := pk.Commit(f)
			require.NoError(t, err)
			comF2, err := pk.CommitShifted(f)
			require.NoError(t, err)
			require.True(t, vk.VerifyShift(comF, comF2))

			// shift computed under a foreign key does not bind
			foreign, err := otherPK.CommitShifted(f)
			require.NoError(t, err)
			require.False(t, vk.VerifyShift(comF, foreign))
		})
	}
}

func TestBlindingInvariance(t *testing.T) {
	for _, suite := range suites {
		t.Run(suite.Name(), func(t *testing.T) {
			const n = 8
			target := polynomial.Vanishing(suite, []algebra.Scalar{randScalar(t, suite)})
			pk, vk, err := kzg.Setup(suite, n, target)
			require.NoError(t, err)

			f := target.Mul(randPoly(t, suite, n-1-target.Degree()))
			proof, err := kzg.ProveRoots(pk, f, target)
			require.NoError(t, err)

			// true stays true under a second rerandomization
			blinded, err := kzg.Blind(suite, proof)
			require.NoError(t, err)
			require.True(t, vk.Verify(blinded))

			// and under a fixed nonzero delta
			delta := suite.Scalar().SetUint64(5)
			scaled := &kzg.Proof{
				ComF:  suite.Point().ScalarMul(delta, proof.ComF),
				ComH:  suite.Point().ScalarMul(delta, proof.ComH),
				ComF2: suite.Point().ScalarMul(delta, proof.ComF2),
			}
			require.True(t, vk.Verify(scaled))

			// false stays false
			g := suite.Point().Base()
			bad := &kzg.Proof{
				ComF:  suite.Point().Add(proof.ComF, g),
				ComH:  proof.ComH,
				ComF2: proof.ComF2,
			}
			require.False(t, vk.Verify(bad))
			badBlinded, err := kzg.Blind(suite, bad)
			require.NoError(t, err)
			require.False(t, vk.Verify(badBlinded))
		})
	}
}

func TestCommitmentLinearity(t *testing.T) {
	for _, suite := range suites {
		t.Run(suite.Name(), func(t *testing.T) {
			const n = 6
			pk, _, err := kzg.Setup(suite, n, noTarget(suite))
			require.NoError(t, err)

			f := randPoly(t, suite, n-1)
			g := randPoly(t, suite, n-1)

			comSum, err := pk.Commit(f.Add(g))
			require.NoError(t, err)
			comF, err := pk.Commit(f)
			require.NoError(t, err)
			comG, err := pk.Commit(g)
			require.NoError(t, err)

			require.True(t, comSum.Equal(suite.Point().Add(comF, comG)))
		})
	}
}

func TestCapacityExceeded(t *testing.T) {
	suite := suites[0]
	const n = 4
	pk, _, err := kzg.Setup(suite, n, noTarget(suite))
	require.NoError(t, err)

	f := randPoly(t, suite, n) // one coefficient too many
	_, err = pk.Commit(f)
	require.ErrorIs(t, err, kzg.ErrCapacityExceeded)
	_, err = pk.CommitShifted(f)
	require.ErrorIs(t, err, kzg.ErrCapacityExceeded)
}

func TestInvalidKeyArguments(t *testing.T) {
	suite := suites[0]
	td := &kzg.Trapdoor{
		S:     suite.Scalar().SetUint64(11),
		Alpha: suite.Scalar().SetUint64(13),
	}

	_, _, err := kzg.NewKeys(suite, 0, noTarget(suite), td)
	require.ErrorIs(t, err, kzg.ErrInvalidKey)

	_, _, err = kzg.NewKeys(suite, 4, noTarget(suite), nil)
	require.ErrorIs(t, err, kzg.ErrInvalidKey)
}

func TestNewKeysDeterministic(t *testing.T) {
	suite := suites[0]
	td := &kzg.Trapdoor{
		S:     suite.Scalar().SetUint64(42),
		Alpha: suite.Scalar().SetUint64(99),
	}

	pk1, vk1, err := kzg.NewKeys(suite, 4, noTarget(suite), td)
	require.NoError(t, err)
	pk2, vk2, err := kzg.NewKeys(suite, 4, noTarget(suite), td)
	require.NoError(t, err)

	require.Equal(t, pk1.Capacity(), pk2.Capacity())
	for i := range pk1.H {
		require.True(t, pk1.H[i].Equal(pk2.H[i]))
		require.True(t, pk1.HAlpha[i].Equal(pk2.HAlpha[i]))
	}
	require.True(t, vk1.GS.Equal(vk2.GS))
	require.True(t, vk1.GTs.Equal(vk2.GTs))
	require.True(t, vk1.GAlpha.Equal(vk2.GAlpha))
}
