package search

import (
	"fmt"
	"math"

	"github.com/almagest/almagest/internal/ephemeris"
	"github.com/almagest/almagest/internal/metrics"
	"github.com/almagest/almagest/internal/timescale"
	"github.com/almagest/almagest/internal/transform"
)

// rlonOffset measures how far the Earth-body relative longitude is from
// the target, in degrees (-180, +180]. direction is +1 for superior
// planets and -1 for inferior ones so that the offset always grows
// toward the event.
func rlonOffset(body ephemeris.Body, t *timescale.Time, direction, targetRelLon float64) (float64, error) {
	plon, err := transform.EclipticLongitude(body, t)
	if err != nil {
		return 0, err
	}
	elon, err := transform.EclipticLongitude(ephemeris.Earth, t)
	if err != nil {
		return 0, err
	}
	return longitudeOffset(direction*(elon-plon) - targetRelLon), nil
}

// SearchRelativeLongitude finds the next time after startTime when the
// ecliptic longitude of the body relative to the Earth's reaches
// targetRelLon degrees. A target of 0 finds oppositions of superior
// planets and inferior conjunctions of inferior planets. The Moon and
// the Sun are not supported.
func SearchRelativeLongitude(body ephemeris.Body, targetRelLon float64, startTime *timescale.Time) (*timescale.Time, error) {
	if body == ephemeris.Earth {
		return nil, ephemeris.ErrEarthNotAllowed
	}
	if body == ephemeris.Moon || body == ephemeris.Sun {
		return nil, fmt.Errorf("%w: %v has no Earth-relative longitude events", ephemeris.ErrInvalidBody, body)
	}
	syn, err := ephemeris.SynodicPeriod(body)
	if err != nil {
		return nil, err
	}
	direction := -1.0
	if ephemeris.IsSuperior(body) {
		direction = +1.0
	}

	errorAngle, err := rlonOffset(body, startTime, direction, targetRelLon)
	if err != nil {
		return nil, err
	}
	if errorAngle > 0.0 {
		// Force searching forward in time.
		errorAngle -= 360.0
	}

	t := startTime
	for iter := 1; iter <= 100; iter++ {
		// Estimate how many days ahead the relative longitude reaches
		// the target, assuming constant synodic motion.
		dayAdjust := (-errorAngle / 360.0) * syn
		t = t.AddDays(dayAdjust)
		if math.Abs(dayAdjust)*secondsPerDay < 1.0 {
			metrics.RecordSearch("relative_longitude", iter)
			return t, nil
		}
		prevAngle := errorAngle
		if errorAngle, err = rlonOffset(body, t, direction, targetRelLon); err != nil {
			return nil, err
		}
		if math.Abs(prevAngle) < 30.0 && prevAngle != errorAngle {
			// Near the event, rescale the synodic period to track the
			// variable orbital speed of eccentric planets like Mercury
			// and Mars.
			ratio := prevAngle / (prevAngle - errorAngle)
			if ratio > 0.5 && ratio < 2.0 {
				syn *= ratio
			}
		}
	}
	return nil, fmt.Errorf("%w: relative longitude of %v did not settle", ErrNoConverge, body)
}
