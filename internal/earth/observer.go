package earth

import (
	"math"

	"github.com/almagest/almagest/internal/timescale"
	"github.com/almagest/almagest/internal/vecmath"
)

// Observer is a topocentric site on the Earth's surface.
type Observer struct {
	// Latitude is geodetic latitude in degrees, north positive.
	Latitude float64
	// Longitude is in degrees, east positive.
	Longitude float64
	// Height is elevation above sea level in meters.
	Height float64
}

// terra returns the geocentric position of the observer in AU with
// respect to the true equator and equinox of date, given Greenwich
// apparent sidereal time st in hours. The Earth is modeled as an oblate
// spheroid.
func terra(obs Observer, st float64) vecmath.Vector {
	df2 := vecmath.EarthFlattening * vecmath.EarthFlattening
	phi := obs.Latitude * deg2rad
	sinphi, cosphi := math.Sin(phi), math.Cos(phi)
	c := 1.0 / math.Sqrt(cosphi*cosphi+df2*sinphi*sinphi)
	s := df2 * c
	htKm := obs.Height / 1000.0
	ach := vecmath.EarthEquatorialRadiusKm*c + htKm
	ash := vecmath.EarthEquatorialRadiusKm*s + htKm
	stlocl := (15.0*st + obs.Longitude) * deg2rad
	sinst, cosst := math.Sin(stlocl), math.Cos(stlocl)
	return vecmath.Vector{
		X: ach * cosphi * cosst / vecmath.KmPerAU,
		Y: ach * cosphi * sinst / vecmath.KmPerAU,
		Z: ash * sinphi / vecmath.KmPerAU,
	}
}

// GeocentricPosition returns the observer's position relative to the
// Earth's center in equatorial J2000 coordinates (AU).
func GeocentricPosition(t *timescale.Time, obs Observer) vecmath.Vector {
	gast := SiderealTime(t)
	pos := terra(obs, gast)
	pos = NutationTrueToMean(t, pos)
	pos = Precession(t.TT, pos, 0.0)
	pos.T = t
	return pos
}

// Spin rotates a vector by the given angle in degrees about the z-axis,
// from one azimuthal frame into another.
func Spin(angle float64, pos vecmath.Vector) vecmath.Vector {
	angr := angle * deg2rad
	cosang, sinang := math.Cos(angr), math.Sin(angr)
	return vecmath.Vector{
		X: cosang*pos.X + sinang*pos.Y,
		Y: -sinang*pos.X + cosang*pos.Y,
		Z: pos.Z,
		T: pos.T,
	}
}
