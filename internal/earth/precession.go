package earth

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/almagest/almagest/internal/timescale"
	"github.com/almagest/almagest/internal/vecmath"
)

// precessionMatrix builds the rotation taking equatorial J2000
// coordinates of the mean equator and equinox of the epoch t (terrestrial
// time, days from J2000) back to J2000. The three precession angles
// psi_A, omega_A, chi_A follow the IAU 2006 polynomial model, composed as
// a fixed-axis four-rotation sequence.
func precessionMatrix(tt float64) *mat.Dense {
	t := tt / 36525.0
	eps0 := 84381.406

	psia := ((((-0.0000000951*t+
		0.000132851)*t-
		0.00114045)*t-
		1.0790069)*t +
		5038.481507) * t

	omegaa := ((((+0.0000003337*t-
		0.000000467)*t-
		0.00772503)*t+
		0.0512623)*t-
		0.025754)*t + eps0

	chia := ((((-0.0000000560*t+
		0.000170663)*t-
		0.00121197)*t-
		2.3814292)*t +
		10.556403) * t

	eps0 *= asec2rad
	psia *= asec2rad
	omegaa *= asec2rad
	chia *= asec2rad

	sa, ca := math.Sin(eps0), math.Cos(eps0)
	sb, cb := math.Sin(-psia), math.Cos(-psia)
	sc, cc := math.Sin(-omegaa), math.Cos(-omegaa)
	sd, cd := math.Sin(chia), math.Cos(chia)

	xx := cd*cb - sb*sd*cc
	yx := cd*sb*ca + sd*cc*cb*ca - sa*sd*sc
	zx := cd*sb*sa + sd*cc*cb*sa + ca*sd*sc
	xy := -sd*cb - sb*cd*cc
	yy := -sd*sb*ca + cd*cc*cb*ca - sa*cd*sc
	zy := -sd*sb*sa + cd*cc*cb*sa + ca*cd*sc
	xz := sb * sc
	yz := -sc*cb*ca - sa*cc
	zz := -sc*cb*sa + cc*ca

	return mat.NewDense(3, 3, []float64{
		xx, xy, xz,
		yx, yy, yz,
		zx, zy, zz,
	})
}

// Precession rotates a position between the mean equator/equinox of
// J2000 and that of another epoch. Exactly one of tt1 (the epoch the
// input position is expressed in) and tt2 (the target epoch) must be
// zero, i.e. the J2000 epoch itself; anything else is a caller bug and
// panics.
func Precession(tt1 float64, pos vecmath.Vector, tt2 float64) vecmath.Vector {
	if tt1 != 0 && tt2 != 0 {
		panic("earth: precession requires one endpoint to be the J2000 epoch")
	}
	if tt2 == 0 {
		// From the epoch tt1 back to J2000.
		return rotate(precessionMatrix(tt1), pos)
	}
	// From J2000 out to the epoch tt2.
	return rotateInverse(precessionMatrix(tt2), pos)
}

// nutationMatrix builds the rotation from the mean equator/equinox of
// date to the true equator/equinox of date for the given Time.
func nutationMatrix(t *timescale.Time) *mat.Dense {
	tilt := Tilt(t)
	oblm := tilt.Mobl * deg2rad
	oblt := tilt.Tobl * deg2rad
	psi := tilt.Dpsi * asec2rad

	cobm, sobm := math.Cos(oblm), math.Sin(oblm)
	cobt, sobt := math.Cos(oblt), math.Sin(oblt)
	cpsi, spsi := math.Cos(psi), math.Sin(psi)

	return mat.NewDense(3, 3, []float64{
		cpsi, -spsi * cobm, -spsi * sobm,
		spsi * cobt, cpsi*cobm*cobt + sobm*sobt, cpsi*sobm*cobt - cobm*sobt,
		spsi * sobt, cpsi*cobm*sobt - sobm*cobt, cpsi*sobm*sobt + cobm*cobt,
	})
}

// NutationMeanToTrue rotates a mean-equinox-of-date position to the true
// equinox of date.
func NutationMeanToTrue(t *timescale.Time, pos vecmath.Vector) vecmath.Vector {
	return rotate(nutationMatrix(t), pos)
}

// NutationTrueToMean applies the inverse rotation, from the true equinox
// of date back to the mean equinox of date.
func NutationTrueToMean(t *timescale.Time, pos vecmath.Vector) vecmath.Vector {
	return rotateInverse(nutationMatrix(t), pos)
}
