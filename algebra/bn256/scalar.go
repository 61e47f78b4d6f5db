package bn256

import (
	"encoding/binary"

	"go.dedis.ch/kyber/v3"
	"go.dedis.ch/kyber/v3/util/random"

	"github.com/kateproofs/kate/algebra"
)

type scalar struct {
	v kyber.Scalar
}

func toScalar(a algebra.Scalar) *scalar {
	s, ok := a.(*scalar)
	if !ok {
		panic("bn256: scalar from a foreign suite")
	}
	return s
}

func (s *scalar) Set(a algebra.Scalar) algebra.Scalar {
	s.v.Set(toScalar(a).v)
	return s
}

func (s *scalar) Clone() algebra.Scalar {
	return &scalar{v: s.v.Clone()}
}

func (s *scalar) SetUint64(v uint64) algebra.Scalar {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	s.v.SetBytes(buf[:])
	return s
}

func (s *scalar) SetOne() algebra.Scalar {
	s.v.One()
	return s
}

func (s *scalar) SetZero() algebra.Scalar {
	s.v.Zero()
	return s
}

func (s *scalar) SetRandom() (algebra.Scalar, error) {
	s.v.Pick(random.New())
	return s, nil
}

func (s *scalar) IsZero() bool {
	return s.v.Equal(s.v.Clone().Zero())
}

func (s *scalar) Equal(a algebra.Scalar) bool {
	return s.v.Equal(toScalar(a).v)
}

func (s *scalar) Add(a, b algebra.Scalar) algebra.Scalar {
	s.v.Add(toScalar(a).v, toScalar(b).v)
	return s
}

func (s *scalar) Sub(a, b algebra.Scalar) algebra.Scalar {
	s.v.Sub(toScalar(a).v, toScalar(b).v)
	return s
}

func (s *scalar) Mul(a, b algebra.Scalar) algebra.Scalar {
	s.v.Mul(toScalar(a).v, toScalar(b).v)
	return s
}

func (s *scalar) Neg(a algebra.Scalar) algebra.Scalar {
	s.v.Neg(toScalar(a).v)
	return s
}

func (s *scalar) Inverse(a algebra.Scalar) algebra.Scalar {
	x := toScalar(a)
	if x.IsZero() {
		panic("bn256: inverse of zero scalar")
	}
	s.v.Inv(x.v)
	return s
}

func (s *scalar) Div(a, b algebra.Scalar) algebra.Scalar {
	y := toScalar(b)
	if y.IsZero() {
		panic("bn256: division by zero scalar")
	}
	s.v.Div(toScalar(a).v, y.v)
	return s
}

func (s *scalar) String() string {
	return s.v.String()
}
