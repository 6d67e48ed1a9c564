// Package transform converts ephemeris positions between reference
// frames: geocentric vectors corrected for light travel time and
// aberration, equatorial angular coordinates, horizontal (azimuth and
// altitude) coordinates with optional atmospheric refraction, and
// ecliptic coordinates.
package transform

import (
	"errors"
	"fmt"

	"github.com/almagest/almagest/internal/ephemeris"
	"github.com/almagest/almagest/internal/metrics"
	"github.com/almagest/almagest/internal/timescale"
	"github.com/almagest/almagest/internal/vecmath"
)

// ErrNoConverge reports that an iterative numeric solver failed to
// reach its tolerance.
var ErrNoConverge = errors.New("transform: numeric solver did not converge")

// GeoVector returns the position of the body relative to the Earth's
// center in equatorial J2000 coordinates (AU), corrected for light
// travel time. With aberration enabled, the Earth's position is
// backdated by the same light-travel interval, which approximates the
// aberration of the moving Earth viewing the body.
func GeoVector(body ephemeris.Body, t *timescale.Time, aberration bool) (vecmath.Vector, error) {
	switch body {
	case ephemeris.Moon:
		return ephemeris.GeoMoon(t), nil
	case ephemeris.Earth:
		return vecmath.New(0, 0, 0, t), nil
	}

	var earthPos vecmath.Vector
	if !aberration {
		// Without aberration the Earth's position is fixed at the
		// observation time.
		earthPos = ephemeris.CalcEarth(t)
	}

	ltime := t
	var dt float64
	for iter := 0; iter < 10; iter++ {
		h, err := ephemeris.HelioVector(body, ltime)
		if err != nil {
			return vecmath.Vector{}, err
		}
		if aberration {
			earthPos = ephemeris.CalcEarth(ltime)
		}

		geo := h.Sub(earthPos)
		geo.T = t
		if body == ephemeris.Sun {
			// The Sun is the heliocentric origin; no correction needed.
			metrics.RecordLightTime(iter + 1)
			return geo, nil
		}

		ltime2 := t.AddDays(-geo.Length() / vecmath.CAuDay)
		dt = ltime2.TT - ltime.TT
		if dt < 0 {
			dt = -dt
		}
		if dt < 1.0e-9 {
			metrics.RecordLightTime(iter + 1)
			return geo, nil
		}
		ltime = ltime2
	}
	return vecmath.Vector{}, fmt.Errorf("%w: light-travel time solver stalled at dt=%g days", ErrNoConverge, dt)
}
