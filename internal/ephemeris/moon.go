package ephemeris

import (
	"math"

	"github.com/almagest/almagest/internal/earth"
	"github.com/almagest/almagest/internal/timescale"
	"github.com/almagest/almagest/internal/vecmath"
)

const (
	pi2 = 2.0 * math.Pi
	arc = 3600.0 * 180.0 / math.Pi // arcseconds per radian
)

type moonTerm struct {
	dlam, ds, gam1c, sinpi float64
	p, q, r, s             int
}

type moonNTerm struct {
	coeff      float64
	p, q, r, s int
}

// moonResult is the geocentric ecliptic spherical position of the Moon.
type moonResult struct {
	lon  float64 // ecliptic longitude in radians
	lat  float64 // ecliptic latitude in radians
	dist float64 // distance in AU
}

func sine(phi float64) float64 {
	return math.Sin(pi2 * phi)
}

func frac(x float64) float64 {
	return x - math.Floor(x)
}

// calcMoon evaluates the lunar theory at the given time. The series
// accumulates periodic corrections to the mean lunar elements through
// products of sines and cosines of integer multiples of the four
// fundamental arguments, built up by the angle-addition recurrence.
func calcMoon(t *timescale.Time) moonResult {
	T := t.TT / 36525.0
	T2 := T * T

	// co[j+6][i] and si[j+6][i] hold cos and sin of j times fundamental
	// argument i, for j in -6..6 and i in 1..4.
	var co, si [13][5]float64

	addThe := func(c1, s1, c2, s2 float64) (float64, float64) {
		return c1*c2 - s1*s2, s1*c2 + c1*s2
	}

	dlam := 0.0
	ds := 0.0
	gam1c := 0.0
	sinpi := 3422.7000

	s1 := sine(0.19833 + 0.05611*T)
	s2 := sine(0.27869 + 0.04508*T)
	s3 := sine(0.16827 - 0.36903*T)
	s4 := sine(0.34734 - 5.37261*T)
	s5 := sine(0.10498 - 5.37899*T)
	s6 := sine(0.42681 - 0.41855*T)
	s7 := sine(0.14943 - 5.37511*T)

	dl0 := 0.84*s1 + 0.31*s2 + 14.27*s3 + 7.26*s4 + 0.28*s5 + 0.24*s6
	dl := 2.94*s1 + 0.31*s2 + 14.27*s3 + 9.34*s4 + 1.12*s5 + 0.83*s6
	dls := -6.40*s1 - 1.89*s6
	df := 0.21*s1 + 0.31*s2 + 14.27*s3 - 88.70*s4 - 15.30*s5 + 0.24*s6 - 1.86*s7
	dd := dl0 - dls
	dgam := -3332e-9*sine(0.59734-5.37261*T) -
		539e-9*sine(0.35498-5.37899*T) -
		64e-9*sine(0.39943-5.37511*T)

	l0 := pi2*frac(0.60643382+1336.85522467*T-0.00000313*T2) + dl0/arc
	l := pi2*frac(0.37489701+1325.55240982*T+0.00002565*T2) + dl/arc
	ls := pi2*frac(0.99312619+99.99735956*T-0.00000044*T2) + dls/arc
	f := pi2*frac(0.25909118+1342.22782980*T-0.00000892*T2) + df/arc
	d := pi2*frac(0.82736186+1236.85308708*T-0.00000397*T2) + dd/arc

	for i := 1; i <= 4; i++ {
		var arg, fac float64
		var max int
		switch i {
		case 1:
			arg, max, fac = l, 4, 1.000002208
		case 2:
			arg, max, fac = ls, 3, 0.997504612-0.002495388*T
		case 3:
			arg, max, fac = f, 4, 1.000002708+139.978*dgam
		default:
			arg, max, fac = d, 6, 1.0
		}
		co[6][i] = 1
		co[7][i] = math.Cos(arg) * fac
		si[6][i] = 0
		si[7][i] = math.Sin(arg) * fac
		for j := 2; j <= max; j++ {
			co[j+6][i], si[j+6][i] = addThe(co[j+5][i], si[j+5][i], co[7][i], si[7][i])
		}
		for j := 1; j <= max; j++ {
			co[6-j][i] = co[6+j][i]
			si[6-j][i] = -si[6+j][i]
		}
	}

	term := func(p, q, r, s int) (float64, float64) {
		tc, ts := 1.0, 0.0
		for k, mult := range [4]int{p, q, r, s} {
			if mult != 0 {
				tc, ts = addThe(tc, ts, co[mult+6][k+1], si[mult+6][k+1])
			}
		}
		return tc, ts
	}

	for _, mt := range moonTerms {
		tc, ts := term(mt.p, mt.q, mt.r, mt.s)
		dlam += mt.dlam * ts
		ds += mt.ds * ts
		gam1c += mt.gam1c * tc
		sinpi += mt.sinpi * tc
	}

	n := 0.0
	for _, nt := range moonNTerms {
		_, ts := term(nt.p, nt.q, nt.r, nt.s)
		n += nt.coeff * ts
	}

	dlam += 0.82*sine(0.7736-62.5512*T) + 0.31*sine(0.0466-125.1025*T) +
		0.35*sine(0.5785-25.1042*T) + 0.66*sine(0.4591+1335.8075*T) +
		0.64*sine(0.3130-91.5680*T) + 1.14*sine(0.1480+1331.2898*T) +
		0.21*sine(0.5918+1056.5859*T) + 0.44*sine(0.5784+1322.8595*T) +
		0.24*sine(0.2275-5.7374*T) + 0.28*sine(0.2965+2.6929*T) +
		0.33*sine(0.3132+6.3368*T)

	s := f + ds/arc
	latSeconds := (1.000002708+139.978*dgam)*(18518.511+1.189+gam1c)*math.Sin(s) -
		6.24*math.Sin(3*s) + n

	return moonResult{
		lon:  pi2 * frac((l0+dlam/arc)/pi2),
		lat:  latSeconds * math.Pi / (180.0 * 3600.0),
		dist: arc * (vecmath.EarthEquatorialRadiusKm / vecmath.KmPerAU) / (0.999953253 * sinpi),
	}
}

// GeoMoon returns the geocentric position of the Moon in equatorial
// J2000 coordinates (AU).
func GeoMoon(t *timescale.Time) vecmath.Vector {
	m := calcMoon(t)

	// Geocentric ecliptic spherical to cartesian coordinates.
	distCosLat := m.dist * math.Cos(m.lat)
	gepos := vecmath.Vector{
		X: distCosLat * math.Cos(m.lon),
		Y: distCosLat * math.Sin(m.lon),
		Z: m.dist * math.Sin(m.lat),
	}

	// Ecliptic to equatorial, both in mean equinox of date.
	obl := earth.MeanObliquity(t.TT) * math.Pi / 180.0
	cosObl, sinObl := math.Cos(obl), math.Sin(obl)
	mpos := vecmath.Vector{
		X: gepos.X,
		Y: gepos.Y*cosObl - gepos.Z*sinObl,
		Z: gepos.Y*sinObl + gepos.Z*cosObl,
	}

	// Mean equinox of date to J2000.
	out := earth.Precession(t.TT, mpos, 0.0)
	out.T = t
	return out
}
