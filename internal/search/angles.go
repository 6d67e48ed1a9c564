package search

import (
	"github.com/almagest/almagest/internal/ephemeris"
	"github.com/almagest/almagest/internal/timescale"
	"github.com/almagest/almagest/internal/transform"
	"github.com/almagest/almagest/internal/vecmath"
)

// normalizeLongitude reduces an angle in degrees to [0, 360).
func normalizeLongitude(lon float64) float64 {
	for lon < 0.0 {
		lon += 360.0
	}
	for lon >= 360.0 {
		lon -= 360.0
	}
	return lon
}

// longitudeOffset reduces an angle difference in degrees to (-180, +180].
func longitudeOffset(diff float64) float64 {
	offset := diff
	for offset <= -180.0 {
		offset += 360.0
	}
	for offset > 180.0 {
		offset -= 360.0
	}
	return offset
}

// AngleFromSun returns the angle in degrees between the body and the
// Sun as seen from the Earth's center.
func AngleFromSun(body ephemeris.Body, t *timescale.Time) (float64, error) {
	if body == ephemeris.Earth {
		return 0, ephemeris.ErrEarthNotAllowed
	}
	sv, err := transform.GeoVector(ephemeris.Sun, t, true)
	if err != nil {
		return 0, err
	}
	bv, err := transform.GeoVector(body, t, true)
	if err != nil {
		return 0, err
	}
	return vecmath.AngleBetween(sv, bv)
}

// LongitudeFromSun returns the ecliptic longitude of the body minus
// that of the Sun, both as seen from the Earth's center, in degrees
// [0, 360).
func LongitudeFromSun(body ephemeris.Body, t *timescale.Time) (float64, error) {
	if body == ephemeris.Earth {
		return 0, ephemeris.ErrEarthNotAllowed
	}
	sv, err := transform.GeoVector(ephemeris.Sun, t, true)
	if err != nil {
		return 0, err
	}
	bv, err := transform.GeoVector(body, t, true)
	if err != nil {
		return 0, err
	}
	se := transform.Ecliptic(sv)
	be := transform.Ecliptic(bv)
	return normalizeLongitude(be.Elon - se.Elon), nil
}

// Visibility tells whether a body is best seen before sunrise or after
// sunset.
type Visibility string

const (
	VisibilityMorning Visibility = "morning"
	VisibilityEvening Visibility = "evening"
)

// ElongationEvent describes the Sun-relative geometry of a body at one
// moment.
type ElongationEvent struct {
	Time               *timescale.Time
	Visibility         Visibility
	Elongation         float64 // angular separation from the Sun in degrees
	EclipticSeparation float64 // difference of ecliptic longitudes in degrees
}

// Elongation measures the body's angular separation from the Sun and
// which side of the Sun it appears on.
func Elongation(body ephemeris.Body, t *timescale.Time) (*ElongationEvent, error) {
	angle, err := LongitudeFromSun(body, t)
	if err != nil {
		return nil, err
	}
	var visibility Visibility
	var esep float64
	if angle > 180.0 {
		visibility = VisibilityMorning
		esep = 360.0 - angle
	} else {
		visibility = VisibilityEvening
		esep = angle
	}
	angle, err = AngleFromSun(body, t)
	if err != nil {
		return nil, err
	}
	return &ElongationEvent{
		Time:               t,
		Visibility:         visibility,
		Elongation:         angle,
		EclipticSeparation: esep,
	}, nil
}
