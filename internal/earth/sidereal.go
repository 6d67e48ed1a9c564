package earth

import (
	"math"

	"github.com/almagest/almagest/internal/timescale"
)

// era returns the Earth Rotation Angle in degrees [0, 360) for the given
// universal time.
func era(t *timescale.Time) float64 {
	thet1 := 0.7790572732640 + 0.00273781191135448*t.UT
	thet3 := math.Mod(t.UT, 1.0)
	theta := 360.0 * math.Mod(thet1+thet3, 1.0)
	if theta < 0.0 {
		theta += 360.0
	}
	return theta
}

// SiderealTime returns Greenwich apparent sidereal time in hours [0, 24)
// at the given time. It combines the Earth Rotation Angle with the
// accumulated precession of the equinoxes and the equation of the
// equinoxes.
func SiderealTime(t *timescale.Time) float64 {
	tc := t.TT / 36525.0
	eqeq := 15.0 * Tilt(t).Ee
	theta := era(t)
	st := eqeq + 0.014506 + ((((-0.0000000368*tc-
		0.000029956)*tc-
		0.00000044)*tc+
		1.3915817)*tc+
		4612.156534)*tc
	gst := math.Mod(st/3600.0+theta, 360.0) / 15.0
	if gst < 0.0 {
		gst += 24.0
	}
	return gst
}
