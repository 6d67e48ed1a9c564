// Package earth models the orientation of the Earth: nutation and
// obliquity (IAU 2000B truncated), precession between J2000 and an
// arbitrary epoch, apparent sidereal time, and the geocentric position
// of a surface observer on the rotating, flattened Earth.
package earth

import (
	"math"

	"github.com/almagest/almagest/internal/timescale"
)

const (
	deg2rad = 0.017453292519943296
	rad2deg = 57.295779513082321

	// asec360 is a full circle in arcseconds; asec2rad converts
	// arcseconds to radians.
	asec360  = 1296000.0
	asec2rad = 4.848136811095359935899141e-6

	pi2 = 2 * math.Pi
)

// nutationAngles sums the IAU 2000B luni-solar series and returns the
// nutation in longitude and in obliquity, both in arcseconds. This is
// the dominant cost center of the engine; callers should go through
// Tilt, which caches the result on the Time.
func nutationAngles(t *timescale.Time) (dpsi, deps float64) {
	tc := t.TT / 36525

	// Fundamental arguments: mean anomaly of the Moon and of the Sun,
	// mean argument of latitude of the Moon, mean elongation of the
	// Moon from the Sun, and mean longitude of the Moon's ascending
	// node, in radians.
	el := math.Mod(485868.249036+tc*1717915923.2178, asec360) * asec2rad
	elp := math.Mod(1287104.79305+tc*129596581.0481, asec360) * asec2rad
	f := math.Mod(335779.526232+tc*1739527262.8478, asec360) * asec2rad
	d := math.Mod(1072260.70369+tc*1602961601.2090, asec360) * asec2rad
	om := math.Mod(450160.398036-tc*6962890.5431, asec360) * asec2rad

	var dp, de float64
	// Sum smallest terms first so the large leading terms do not swamp
	// them in the floating-point accumulation.
	for i := len(nutationArgs) - 1; i >= 0; i-- {
		n := &nutationArgs[i]
		c := &nutationCoeffs[i]
		arg := math.Mod(float64(n[0])*el+float64(n[1])*elp+float64(n[2])*f+float64(n[3])*d+float64(n[4])*om, pi2)
		sarg := math.Sin(arg)
		carg := math.Cos(arg)
		dp += (c[0]+c[1]*tc)*sarg + c[2]*carg
		de += (c[3]+c[4]*tc)*carg + c[5]*sarg
	}

	// Fixed offsets compensate for the truncation of the full IAU 2000A
	// series to 77 terms.
	dpsi = -0.000135 + dp*1.0e-7
	deps = +0.000388 + de*1.0e-7
	return dpsi, deps
}

// MeanObliquity returns the mean obliquity of the ecliptic in degrees at
// the given terrestrial time (days since J2000).
func MeanObliquity(tt float64) float64 {
	t := tt / 36525
	asec := ((((-0.0000000434*t-
		0.000000576)*t+
		0.00200340)*t-
		0.0001831)*t-
		46.836769)*t + 84381.406
	return asec / 3600.0
}

// Tilt returns the Earth orientation snapshot for the given Time,
// computing and caching it on first use. Recomputation is idempotent,
// so a concurrent race at worst wastes one series evaluation.
func Tilt(t *timescale.Time) *timescale.EarthTilt {
	if et := t.CachedTilt(); et != nil {
		return et
	}
	dpsi, deps := nutationAngles(t)
	mobl := MeanObliquity(t.TT)
	et := &timescale.EarthTilt{
		TT:   t.TT,
		Dpsi: dpsi,
		Deps: deps,
		Mobl: mobl,
		Tobl: mobl + deps/3600.0,
		Ee:   dpsi * math.Cos(mobl*deg2rad) / 15.0,
	}
	t.StoreTilt(et)
	return et
}
