// Package vecmath provides the Cartesian position type shared by the
// ephemeris and transform packages. Components are astronomical units in
// an equatorial J2000 frame unless a caller documents otherwise.
package vecmath

import (
	"errors"
	"math"

	"github.com/almagest/almagest/internal/timescale"
)

// ErrDegenerateVector reports a vector too close to zero length to carry
// directional information.
var ErrDegenerateVector = errors.New("vector is too small to have a direction")

const rad2deg = 57.295779513082321

// Vector is a Cartesian position in AU, tagged with the Time it was
// computed for. Values are never mutated after construction.
type Vector struct {
	X, Y, Z float64
	T       *timescale.Time
}

// New builds a Vector from components and the time they refer to.
func New(x, y, z float64, t *timescale.Time) Vector {
	return Vector{X: x, Y: y, Z: z, T: t}
}

// Add returns the component-wise sum, keeping the receiver's time tag.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z, T: v.T}
}

// Sub returns the component-wise difference, keeping the receiver's time tag.
func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z, T: v.T}
}

// Length returns the Euclidean length in AU.
func (v Vector) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// AngleBetween returns the angle between two position vectors in degrees.
// Fails with ErrDegenerateVector when the product of the two lengths is
// below 1e-8 AU², leaving the angle undefined.
func AngleBetween(a, b Vector) (float64, error) {
	r := a.Length() * b.Length()
	if r < 1.0e-8 {
		return 0, ErrDegenerateVector
	}
	dot := (a.X*b.X + a.Y*b.Y + a.Z*b.Z) / r
	if dot <= -1.0 {
		return 180.0, nil
	}
	if dot >= +1.0 {
		return 0.0, nil
	}
	return rad2deg * math.Acos(dot), nil
}
