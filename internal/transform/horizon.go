package transform

import (
	"fmt"
	"math"

	"github.com/almagest/almagest/internal/earth"
	"github.com/almagest/almagest/internal/timescale"
	"github.com/almagest/almagest/internal/vecmath"
)

// Refraction selects the atmospheric refraction model applied by
// Horizon.
type Refraction int

const (
	// RefractionNone disables refraction correction.
	RefractionNone Refraction = iota
	// RefractionNormal applies the Saemundsson formula, tapered below
	// the horizon so the altitude never drops under -90 degrees.
	RefractionNormal
	// RefractionJPLHor mimics the JPL Horizons system, which clamps the
	// altitude at one degree below the horizon but applies no taper.
	RefractionJPLHor
)

// HorizontalCoordinates is a topocentric direction in the observer's
// local sky. RA and Dec are the equatorial coordinates adjusted for
// whatever refraction was applied to the altitude.
type HorizontalCoordinates struct {
	Azimuth  float64 // degrees clockwise from north [0, 360)
	Altitude float64 // degrees above the horizon [-90, +90]
	RA       float64 // sidereal hours
	Dec      float64 // degrees
}

// Horizon converts of-date equatorial coordinates (ra in sidereal
// hours, dec in degrees) to horizontal coordinates for the observer.
func Horizon(t *timescale.Time, obs earth.Observer, ra, dec float64, refraction Refraction) (HorizontalCoordinates, error) {
	if refraction < RefractionNone || refraction > RefractionJPLHor {
		return HorizontalCoordinates{}, fmt.Errorf("transform: invalid refraction option %d", refraction)
	}

	sinlat, coslat := math.Sin(obs.Latitude*deg2rad), math.Cos(obs.Latitude*deg2rad)
	sinlon, coslon := math.Sin(obs.Longitude*deg2rad), math.Cos(obs.Longitude*deg2rad)
	sindc, cosdc := math.Sin(dec*deg2rad), math.Cos(dec*deg2rad)
	sinra, cosra := math.Sin(ra*15*deg2rad), math.Cos(ra*15*deg2rad)

	// Observer's local zenith, north, and west directions in of-date
	// equatorial coordinates, rotated by sidereal time.
	angle := -15.0 * earth.SiderealTime(t)
	uz := earth.Spin(angle, vecmath.New(coslat*coslon, coslat*sinlon, sinlat, nil))
	un := earth.Spin(angle, vecmath.New(-sinlat*coslon, -sinlat*sinlon, coslat, nil))
	uw := earth.Spin(angle, vecmath.New(sinlon, -coslon, 0.0, nil))

	p := vecmath.New(cosdc*cosra, cosdc*sinra, sindc, nil)

	pz := p.X*uz.X + p.Y*uz.Y + p.Z*uz.Z
	pn := p.X*un.X + p.Y*un.Y + p.Z*un.Z
	pw := p.X*uw.X + p.Y*uw.Y + p.Z*uw.Z

	proj := math.Sqrt(pn*pn + pw*pw)
	az := 0.0
	if proj > 0.0 {
		az = -math.Atan2(pw, pn) * rad2deg
		if az < 0 {
			az += 360
		}
		if az >= 360 {
			az -= 360
		}
	}
	zd := math.Atan2(proj, pz) * rad2deg
	horRA, horDec := ra, dec

	if refraction != RefractionNone {
		zd0 := zd

		// Saemundsson's formula from Meeus, "Astronomical Algorithms",
		// p. 101-102. The altitude is clamped at -1 degrees because the
		// formula blows up near hd = -5.11.
		hd := 90.0 - zd
		if hd < -1.0 {
			hd = -1.0
		}
		refr := (1.02 / math.Tan((hd+10.3/(hd+5.11))*deg2rad)) / 60.0

		if refraction == RefractionNormal && zd > 91.0 {
			// Gradually reduce refraction toward the nadir so the
			// altitude never drops below -90 degrees. At zd = 91 the
			// factor is exactly 1; it falls linearly to 0 at zd = 180.
			refr *= (180.0 - zd) / 89.0
		}

		zd -= refr

		if refr > 0.0 && zd > 3.0e-4 {
			sinzd, coszd := math.Sin(zd*deg2rad), math.Cos(zd*deg2rad)
			sinzd0, coszd0 := math.Sin(zd0*deg2rad), math.Cos(zd0*deg2rad)

			prx := (p.X-coszd0*uz.X)/sinzd0*sinzd + uz.X*coszd
			pry := (p.Y-coszd0*uz.Y)/sinzd0*sinzd + uz.Y*coszd
			prz := (p.Z-coszd0*uz.Z)/sinzd0*sinzd + uz.Z*coszd

			proj = math.Sqrt(prx*prx + pry*pry)
			if proj > 0 {
				horRA = math.Atan2(pry, prx) * rad2deg / 15
				if horRA < 0 {
					horRA += 24
				}
				if horRA >= 24 {
					horRA -= 24
				}
			} else {
				horRA = 0
			}
			horDec = math.Atan2(prz, proj) * rad2deg
		}
	}

	return HorizontalCoordinates{
		Azimuth:  az,
		Altitude: 90.0 - zd,
		RA:       horRA,
		Dec:      horDec,
	}, nil
}
