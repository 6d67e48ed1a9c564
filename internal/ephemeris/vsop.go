package ephemeris

import (
	"math"

	"github.com/almagest/almagest/internal/timescale"
	"github.com/almagest/almagest/internal/vecmath"
)

// A vsopSeries is a list of (amplitude, phase, frequency) terms summed
// as amplitude*cos(phase + t*frequency).
type vsopSeries [][3]float64

// A vsopFormula is one spherical coordinate (longitude, latitude, or
// radius) expressed as series multiplied by increasing powers of time.
type vsopFormula []vsopSeries

// A vsopModel holds the three spherical coordinate formulae of a planet.
type vsopModel [3]vsopFormula

// calcVSOP evaluates a planet's VSOP87 model at the given time and
// returns the heliocentric position in equatorial J2000 coordinates (AU).
func calcVSOP(model *vsopModel, t *timescale.Time) vecmath.Vector {
	// VSOP time argument is thousands of Julian years since J2000.
	tm := t.TT / 365250.0

	var spher [3]float64
	for i := range model {
		tpower := 1.0
		coord := 0.0
		for _, series := range model[i] {
			sum := 0.0
			for _, term := range series {
				sum += term[0] * math.Cos(term[1]+tm*term[2])
			}
			coord += tpower * sum
			tpower *= tm
		}
		spher[i] = coord
	}

	// Spherical to ecliptic cartesian coordinates.
	rCosLat := spher[2] * math.Cos(spher[1])
	ex := rCosLat * math.Cos(spher[0])
	ey := rCosLat * math.Sin(spher[0])
	ez := spher[2] * math.Sin(spher[1])

	// Ecliptic to equatorial cartesian coordinates.
	return vecmath.New(
		ex+0.000000440360*ey-0.000000190919*ez,
		-0.000000479966*ex+0.917482137087*ey-0.397776982902*ez,
		0.397776982902*ey+0.917482137087*ez,
		t,
	)
}

// CalcEarth returns the heliocentric position of the Earth in
// equatorial J2000 coordinates (AU).
func CalcEarth(t *timescale.Time) vecmath.Vector {
	return calcVSOP(&vsopTables[Earth], t)
}
