package ephemeris

import (
	"fmt"

	"github.com/almagest/almagest/internal/timescale"
	"github.com/almagest/almagest/internal/vecmath"
)

type plutoSegment struct {
	tt    float64
	ndays float64
	coeff [19][3]float64
}

// chebScale maps t from [tMin, tMax] onto [-1, +1].
func chebScale(tMin, tMax, t float64) float64 {
	return (2*t - (tMax + tMin)) / (tMax - tMin)
}

// calcPluto evaluates the Chebyshev model for Pluto's heliocentric
// position in equatorial J2000 coordinates (AU). Times outside the
// segmented validity range return ErrOutOfRange.
func calcPluto(t *timescale.Time) (vecmath.Vector, error) {
	for i := range plutoSegments {
		seg := &plutoSegments[i]
		x := chebScale(seg.tt, seg.tt+seg.ndays, t.TT)
		if x < -1 || x > +1 {
			continue
		}
		var pos [3]float64
		for d := 0; d < 3; d++ {
			p0 := 1.0
			sum := seg.coeff[0][d]
			p1 := x
			sum += seg.coeff[1][d] * p1
			for k := 2; k < len(seg.coeff); k++ {
				p2 := 2*x*p1 - p0
				sum += seg.coeff[k][d] * p2
				p0, p1 = p1, p2
			}
			pos[d] = sum - seg.coeff[0][d]/2
		}
		return vecmath.New(pos[0], pos[1], pos[2], t), nil
	}
	return vecmath.Vector{}, fmt.Errorf("%w: Pluto model cannot be evaluated at tt=%f", ErrOutOfRange, t.TT)
}
