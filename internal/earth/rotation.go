package earth

import (
	"gonum.org/v1/gonum/mat"

	"github.com/almagest/almagest/internal/vecmath"
)

// rotate applies a 3x3 rotation matrix to a position vector, keeping the
// vector's time tag.
func rotate(m *mat.Dense, v vecmath.Vector) vecmath.Vector {
	var out mat.VecDense
	out.MulVec(m, mat.NewVecDense(3, []float64{v.X, v.Y, v.Z}))
	return vecmath.New(out.AtVec(0), out.AtVec(1), out.AtVec(2), v.T)
}

// rotateInverse applies the inverse of a rotation matrix. Rotation
// matrices are orthogonal, so the inverse is the transpose.
func rotateInverse(m *mat.Dense, v vecmath.Vector) vecmath.Vector {
	var out mat.VecDense
	out.MulVec(m.T(), mat.NewVecDense(3, []float64{v.X, v.Y, v.Z}))
	return vecmath.New(out.AtVec(0), out.AtVec(1), out.AtVec(2), v.T)
}
