package ephemeris

import (
	"fmt"

	"github.com/almagest/almagest/internal/timescale"
	"github.com/almagest/almagest/internal/vecmath"
)

// HelioVector returns the position of the given body relative to the
// center of the Sun in equatorial J2000 coordinates (AU). The Sun
// itself yields the origin; the Moon's heliocentric position combines
// the Earth's position with the geocentric Moon.
func HelioVector(body Body, t *timescale.Time) (vecmath.Vector, error) {
	switch {
	case body == Pluto:
		return calcPluto(t)
	case body >= Mercury && body <= Neptune:
		return calcVSOP(&vsopTables[body], t), nil
	case body == Sun:
		return vecmath.New(0, 0, 0, t), nil
	case body == Moon:
		e := CalcEarth(t)
		m := GeoMoon(t)
		return e.Add(m), nil
	}
	return vecmath.Vector{}, fmt.Errorf("%w: %v", ErrInvalidBody, body)
}
