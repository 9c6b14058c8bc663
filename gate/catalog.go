package gate

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

const (
	halfPi    = math.Pi / 2
	quarterPi = math.Pi / 4
)

func identity(rank int) *mat.CDense {
	dim := 1 << rank
	m := mat.NewCDense(dim, dim, nil)
	for i := 0; i < dim; i++ {
		m.Set(i, i, complex(1, 0))
	}
	return m
}

func pauliX() *mat.CDense {
	return mat.NewCDense(2, 2, []complex128{
		0, 1,
		1, 0,
	})
}

func pauliY() *mat.CDense {
	return mat.NewCDense(2, 2, []complex128{
		0, -1i,
		1i, 0,
	})
}

func pauliZ() *mat.CDense {
	return mat.NewCDense(2, 2, []complex128{
		1, 0,
		0, -1,
	})
}

func hadamard() *mat.CDense {
	inv := complex(1/math.Sqrt2, 0)
	return mat.NewCDense(2, 2, []complex128{
		inv, inv,
		inv, -inv,
	})
}

// phase returns diag(1, e^{i*theta}).
func phase(theta float64) *mat.CDense {
	return mat.NewCDense(2, 2, []complex128{
		1, 0,
		0, cmplx.Exp(complex(0, theta)),
	})
}

func sqrtX() *mat.CDense {
	return mat.NewCDense(2, 2, []complex128{
		complex(0.5, 0.5), complex(0.5, -0.5),
		complex(0.5, -0.5), complex(0.5, 0.5),
	})
}

func rx(theta float64) *mat.CDense {
	c := complex(math.Cos(theta/2), 0)
	s := complex(0, -math.Sin(theta/2))
	return mat.NewCDense(2, 2, []complex128{
		c, s,
		s, c,
	})
}

func ry(theta float64) *mat.CDense {
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)
	return mat.NewCDense(2, 2, []complex128{
		c, -s,
		s, c,
	})
}

func rz(theta float64) *mat.CDense {
	return mat.NewCDense(2, 2, []complex128{
		cmplx.Exp(complex(0, -theta/2)), 0,
		0, cmplx.Exp(complex(0, theta/2)),
	})
}

// u returns the general single-qubit unitary U(theta, phi, lambda):
//
//	[ cos(t/2)            -e^{i*lambda} sin(t/2)        ]
//	[ e^{i*phi} sin(t/2)   e^{i*(phi+lambda)} cos(t/2)   ]
func u(theta, phi, lambda float64) *mat.CDense {
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)
	return mat.NewCDense(2, 2, []complex128{
		c, -cmplx.Exp(complex(0, lambda)) * s,
		cmplx.Exp(complex(0, phi)) * s, cmplx.Exp(complex(0, phi+lambda)) * c,
	})
}

func swap() *mat.CDense {
	return mat.NewCDense(4, 4, []complex128{
		1, 0, 0, 0,
		0, 0, 1, 0,
		0, 1, 0, 0,
		0, 0, 0, 1,
	})
}

// controlled1 embeds the 2x2 matrix u as the "control=1" block of a 4x4
// controlled gate, with the control as the most significant bit:
// controlled(U) = diag(I2, U).
func controlled1(u *mat.CDense) *mat.CDense {
	out := mat.NewCDense(4, 4, nil)
	out.Set(0, 0, 1)
	out.Set(1, 1, 1)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			out.Set(2+i, 2+j, u.At(i, j))
		}
	}
	return out
}

// controlledPhased embeds u as controlled1 does, but additionally
// multiplies the "control=1" block by e^{i*gamma} — the global-phase
// parameter of the CU gate family (spec §6).
func controlledPhased(u *mat.CDense, gamma float64) *mat.CDense {
	out := controlled1(u)
	ph := cmplx.Exp(complex(0, gamma))
	for i := 2; i < 4; i++ {
		for j := 2; j < 4; j++ {
			out.Set(i, j, out.At(i, j)*ph)
		}
	}
	return out
}

// toffoli returns CCX with the two controls as the two most significant
// bits and the target as the least significant bit: flips the target
// iff both controls are 1.
func toffoli() *mat.CDense {
	out := identity(3)
	// swap the rows/cols for basis states 110 (index 6) and 111 (index 7)
	swapRowsCols(out, 6, 7)
	return out
}

// fredkin returns CSWAP with the control as the most significant bit and
// the two targets as the remaining two bits: swaps the two target bits
// iff the control is 1.
func fredkin() *mat.CDense {
	out := identity(3)
	// control=1, targets=(1,0) <-> control=1, targets=(0,1): indices 5,6
	swapRowsCols(out, 5, 6)
	return out
}

// swapRowsCols turns the identity matrix m into a permutation matrix
// that additionally swaps basis states i and j.
func swapRowsCols(m *mat.CDense, i, j int) {
	m.Set(i, i, 0)
	m.Set(j, j, 0)
	m.Set(i, j, 1)
	m.Set(j, i, 1)
}
