package bls12381

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/kateproofs/kate/algebra"
)

type scalar struct {
	v fr.Element
}

func toScalar(a algebra.Scalar) *scalar {
	s, ok := a.(*scalar)
	if !ok {
		panic("bls12381: scalar from a foreign suite")
	}
	return s
}

func (s *scalar) Set(a algebra.Scalar) algebra.Scalar {
	s.v.Set(&toScalar(a).v)
	return s
}

func (s *scalar) Clone() algebra.Scalar {
	c := &scalar{}
	c.v.Set(&s.v)
	return c
}

func (s *scalar) SetUint64(v uint64) algebra.Scalar {
	s.v.SetUint64(v)
	return s
}

func (s *scalar) SetOne() algebra.Scalar {
	s.v.SetOne()
	return s
}

func (s *scalar) SetZero() algebra.Scalar {
	s.v.SetZero()
	return s
}

func (s *scalar) SetRandom() (algebra.Scalar, error) {
	if _, err := s.v.SetRandom(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *scalar) IsZero() bool {
	return s.v.IsZero()
}

func (s *scalar) Equal(a algebra.Scalar) bool {
	return s.v.Equal(&toScalar(a).v)
}

func (s *scalar) Add(a, b algebra.Scalar) algebra.Scalar {
	s.v.Add(&toScalar(a).v, &toScalar(b).v)
	return s
}

func (s *scalar) Sub(a, b algebra.Scalar) algebra.Scalar {
	s.v.Sub(&toScalar(a).v, &toScalar(b).v)
	return s
}

func (s *scalar) Mul(a, b algebra.Scalar) algebra.Scalar {
	s.v.Mul(&toScalar(a).v, &toScalar(b).v)
	return s
}

func (s *scalar) Neg(a algebra.Scalar) algebra.Scalar {
	s.v.Neg(&toScalar(a).v)
	return s
}

func (s *scalar) Inverse(a algebra.Scalar) algebra.Scalar {
	x := toScalar(a)
	if x.v.IsZero() {
		panic("bls12381: inverse of zero scalar")
	}
	s.v.Inverse(&x.v)
	return s
}

func (s *scalar) Div(a, b algebra.Scalar) algebra.Scalar {
	y := toScalar(b)
	if y.v.IsZero() {
		panic("bls12381: division by zero scalar")
	}
	s.v.Div(&toScalar(a).v, &y.v)
	return s
}

func (s *scalar) String() string {
	return s.v.String()
}
