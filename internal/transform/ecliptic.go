package transform

import (
	"fmt"
	"math"

	"github.com/almagest/almagest/internal/earth"
	"github.com/almagest/almagest/internal/ephemeris"
	"github.com/almagest/almagest/internal/timescale"
	"github.com/almagest/almagest/internal/vecmath"
)

// Mean obliquity of the J2000 ecliptic in radians.
const obliquity2000 = 0.40909260059599012

// EclipticCoordinates is a position expressed against an ecliptic
// plane, both as cartesian components and as angles.
type EclipticCoordinates struct {
	Ex   float64 // cartesian x in AU
	Ey   float64 // cartesian y in AU
	Ez   float64 // cartesian z in AU
	Elat float64 // ecliptic latitude in degrees
	Elon float64 // ecliptic longitude in degrees [0, 360)
}

// rotateEquatorialToEcliptic tilts an equatorial position onto the
// ecliptic plane given the obliquity in radians.
func rotateEquatorialToEcliptic(pos vecmath.Vector, obliqRadians float64) EclipticCoordinates {
	cosOb, sinOb := math.Cos(obliqRadians), math.Sin(obliqRadians)
	ex := pos.X
	ey := pos.Y*cosOb + pos.Z*sinOb
	ez := -pos.Y*sinOb + pos.Z*cosOb
	xyproj := math.Sqrt(ex*ex + ey*ey)
	elon := 0.0
	if xyproj > 0.0 {
		elon = rad2deg * math.Atan2(ey, ex)
		if elon < 0.0 {
			elon += 360.0
		}
	}
	elat := rad2deg * math.Atan2(ez, xyproj)
	return EclipticCoordinates{Ex: ex, Ey: ey, Ez: ez, Elat: elat, Elon: elon}
}

// Ecliptic converts an equatorial J2000 position to J2000 ecliptic
// coordinates.
func Ecliptic(equ vecmath.Vector) EclipticCoordinates {
	return rotateEquatorialToEcliptic(equ, obliquity2000)
}

// SunPosition returns the geocentric position of the Sun in ecliptic
// coordinates of date. The evaluation time is backdated by the Sun's
// light travel time; without that correction, equinox and solstice
// times come out early by about eight minutes.
func SunPosition(t *timescale.Time) EclipticCoordinates {
	adjusted := t.AddDays(-1.0 / vecmath.CAuDay)
	earth2000 := ephemeris.CalcEarth(adjusted)
	sun2000 := vecmath.New(-earth2000.X, -earth2000.Y, -earth2000.Z, adjusted)

	// Equatorial J2000 to equatorial of date.
	ofdate := earth.Precession(0.0, sun2000, adjusted.TT)
	ofdate = earth.NutationMeanToTrue(adjusted, ofdate)

	trueObliq := deg2rad * earth.Tilt(adjusted).Tobl
	return rotateEquatorialToEcliptic(ofdate, trueObliq)
}

// EclipticLongitude returns the heliocentric ecliptic longitude of the
// body in degrees [0, 360). The Sun has no heliocentric longitude.
func EclipticLongitude(body ephemeris.Body, t *timescale.Time) (float64, error) {
	if body == ephemeris.Sun {
		return 0, fmt.Errorf("%w: the Sun has no heliocentric longitude", ephemeris.ErrInvalidBody)
	}
	hv, err := ephemeris.HelioVector(body, t)
	if err != nil {
		return 0, err
	}
	return Ecliptic(hv).Elon, nil
}
