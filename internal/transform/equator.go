package transform

import (
	"fmt"
	"math"

	"github.com/almagest/almagest/internal/earth"
	"github.com/almagest/almagest/internal/ephemeris"
	"github.com/almagest/almagest/internal/timescale"
	"github.com/almagest/almagest/internal/vecmath"
)

const (
	deg2rad = math.Pi / 180.0
	rad2deg = 180.0 / math.Pi
)

// Equatorial is an angular equatorial position.
type Equatorial struct {
	// RA is right ascension in sidereal hours [0, 24).
	RA float64
	// Dec is declination in degrees [-90, +90].
	Dec float64
	// Dist is the distance to the body in AU.
	Dist float64
}

// vectorToRadec converts a cartesian equatorial position to right
// ascension and declination. A vector on the rotation axis maps to the
// celestial pole at RA zero; the zero vector has no direction.
func vectorToRadec(pos vecmath.Vector) (Equatorial, error) {
	xyproj := pos.X*pos.X + pos.Y*pos.Y
	dist := math.Sqrt(xyproj + pos.Z*pos.Z)
	if xyproj == 0.0 {
		if pos.Z == 0.0 {
			return Equatorial{}, fmt.Errorf("%w: cannot convert to equatorial angles", vecmath.ErrDegenerateVector)
		}
		if pos.Z < 0.0 {
			return Equatorial{RA: 0, Dec: -90, Dist: dist}, nil
		}
		return Equatorial{RA: 0, Dec: +90, Dist: dist}, nil
	}
	ra := math.Atan2(pos.Y, pos.X) / (deg2rad * 15)
	if ra < 0 {
		ra += 24
	}
	dec := rad2deg * math.Atan2(pos.Z, math.Sqrt(xyproj))
	return Equatorial{RA: ra, Dec: dec, Dist: dist}, nil
}

// Equator returns the topocentric equatorial coordinates of the body as
// seen by the observer. When ofdate is true the result is expressed in
// the true equator and equinox of date; otherwise in the J2000 frame.
// Aberration applies to the underlying geocentric vector.
func Equator(body ephemeris.Body, t *timescale.Time, obs earth.Observer, ofdate, aberration bool) (Equatorial, error) {
	gcObserver := earth.GeocentricPosition(t, obs)
	gc, err := GeoVector(body, t, aberration)
	if err != nil {
		return Equatorial{}, err
	}
	j2000 := gc.Sub(gcObserver)
	if !ofdate {
		return vectorToRadec(j2000)
	}
	datevect := earth.Precession(0.0, j2000, t.TT)
	datevect = earth.NutationMeanToTrue(t, datevect)
	return vectorToRadec(datevect)
}
