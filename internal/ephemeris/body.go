// Package ephemeris computes heliocentric and geocentric positions of
// the Sun, Moon, and planets from built-in analytic models: truncated
// VSOP87 series for the eight major planets, a Moshier-style lunar
// theory for the Moon, and Chebyshev polynomial segments for Pluto.
package ephemeris

import (
	"errors"
	"fmt"
)

// Body identifies a celestial body supported by the engine.
type Body int

const (
	Mercury Body = iota
	Venus
	Earth
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	Pluto
	Sun
	Moon
)

var (
	// ErrInvalidBody reports a body outside the supported set for an
	// operation.
	ErrInvalidBody = errors.New("ephemeris: invalid body")

	// ErrEarthNotAllowed reports an operation that observes from the
	// Earth and therefore cannot target it.
	ErrEarthNotAllowed = errors.New("ephemeris: the Earth is not allowed as the target body")

	// ErrOutOfRange reports a time outside the validity range of a
	// body's model.
	ErrOutOfRange = errors.New("ephemeris: time is outside the supported model range")
)

var bodyNames = [...]string{
	"Mercury",
	"Venus",
	"Earth",
	"Mars",
	"Jupiter",
	"Saturn",
	"Uranus",
	"Neptune",
	"Pluto",
	"Sun",
	"Moon",
}

func (b Body) String() string {
	if b < Mercury || int(b) >= len(bodyNames) {
		return fmt.Sprintf("Body(%d)", int(b))
	}
	return bodyNames[b]
}

// BodyFromName resolves a case-sensitive body name such as "Mars".
func BodyFromName(name string) (Body, error) {
	for i, n := range bodyNames {
		if n == name {
			return Body(i), nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrInvalidBody, name)
}

// EarthOrbitalPeriod is the sidereal orbital period of the Earth in days.
const EarthOrbitalPeriod = 365.256

// MeanSynodicMonth is the average number of days between new moons.
const MeanSynodicMonth = 29.530588

// Sidereal orbital periods in days, indexed by Body for Mercury..Pluto.
var orbitalPeriods = [...]float64{
	87.969,
	224.701,
	EarthOrbitalPeriod,
	686.980,
	4332.589,
	10759.22,
	30685.4,
	60189.0,
	90560.0,
}

// IsSuperior reports whether the body orbits the Sun outside the
// Earth's orbit.
func IsSuperior(body Body) bool {
	switch body {
	case Mars, Jupiter, Saturn, Uranus, Neptune, Pluto:
		return true
	}
	return false
}

// SynodicPeriod returns the mean number of days between successive
// identical Sun-Earth-body configurations.
func SynodicPeriod(body Body) (float64, error) {
	if body == Earth {
		return 0, ErrEarthNotAllowed
	}
	if body == Moon {
		return MeanSynodicMonth, nil
	}
	if body < Mercury || int(body) >= len(orbitalPeriods) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidBody, body)
	}
	period := EarthOrbitalPeriod / (EarthOrbitalPeriod/orbitalPeriods[body] - 1.0)
	if period < 0 {
		period = -period
	}
	return period, nil
}

// OrbitalPeriod returns the sidereal orbital period of a planet in days.
func OrbitalPeriod(body Body) (float64, error) {
	if body < Mercury || int(body) >= len(orbitalPeriods) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidBody, body)
	}
	return orbitalPeriods[body], nil
}
