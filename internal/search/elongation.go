package search

import (
	"fmt"

	"github.com/almagest/almagest/internal/ephemeris"
	"github.com/almagest/almagest/internal/timescale"
	"github.com/almagest/almagest/internal/transform"
)

// negElongSlope estimates the negated time derivative of the body's
// elongation by central difference. Its ascending zero-crossing marks a
// maximum of elongation.
func negElongSlope(body ephemeris.Body, t *timescale.Time) (float64, error) {
	const dt = 0.1
	e1, err := AngleFromSun(body, t.AddDays(-dt/2.0))
	if err != nil {
		return 0, err
	}
	e2, err := AngleFromSun(body, t.AddDays(+dt/2.0))
	if err != nil {
		return 0, err
	}
	return (e1 - e2) / dt, nil
}

// SearchMaxElongation finds the next maximum elongation of Mercury or
// Venus after startTime. Other bodies are rejected.
func SearchMaxElongation(body ephemeris.Body, startTime *timescale.Time) (*ElongationEvent, error) {
	// Relative longitude windows, in degrees, that bracket a maximum
	// elongation for each inferior planet.
	var s1, s2 float64
	switch body {
	case ephemeris.Mercury:
		s1, s2 = 50.0, 85.0
	case ephemeris.Venus:
		s1, s2 = 40.0, 50.0
	default:
		return nil, fmt.Errorf("%w: maximum elongation applies to Mercury and Venus only", ephemeris.ErrInvalidBody)
	}
	syn, err := ephemeris.SynodicPeriod(body)
	if err != nil {
		return nil, err
	}

	for iter := 1; iter <= 2; iter++ {
		plon, err := transform.EclipticLongitude(body, startTime)
		if err != nil {
			return nil, err
		}
		elon, err := transform.EclipticLongitude(ephemeris.Earth, startTime)
		if err != nil {
			return nil, err
		}
		rlon := longitudeOffset(plon - elon)

		// The elongation slope has a cusp when the relative longitude
		// is near 0 or 180 degrees, so position the bracket windows
		// away from those values.
		var adjustDays, rlonLo, rlonHi float64
		switch {
		case rlon >= -s1 && rlon < +s1:
			// Seek forward to the window [+s1, +s2].
			adjustDays, rlonLo, rlonHi = 0.0, +s1, +s2
		case rlon > +s2 || rlon < -s2:
			// Seek forward to the next window [-s2, -s1].
			adjustDays, rlonLo, rlonHi = 0.0, -s2, -s1
		case rlon >= 0.0:
			// Already inside [+s1, +s2]; back up to its far edge.
			adjustDays, rlonLo, rlonHi = -syn/4.0, +s1, +s2
		default:
			// Already inside [-s2, -s1]; back up to its far edge.
			adjustDays, rlonLo, rlonHi = -syn/4.0, -s2, -s1
		}

		tStart := startTime.AddDays(adjustDays)
		t1, err := SearchRelativeLongitude(body, rlonLo, tStart)
		if err != nil {
			return nil, err
		}
		t2, err := SearchRelativeLongitude(body, rlonHi, t1)
		if err != nil {
			return nil, err
		}

		// [t1, t2] should bracket a maximum elongation: the slope must
		// cross from negative to positive.
		m1, err := negElongSlope(body, t1)
		if err != nil {
			return nil, err
		}
		if m1 >= 0.0 {
			return nil, fmt.Errorf("%w: slope at bracket start is %f", ErrBadBracket, m1)
		}
		m2, err := negElongSlope(body, t2)
		if err != nil {
			return nil, err
		}
		if m2 <= 0.0 {
			return nil, fmt.Errorf("%w: slope at bracket end is %f", ErrBadBracket, m2)
		}

		tx, err := Search(func(t *timescale.Time) (float64, error) {
			return negElongSlope(body, t)
		}, t1, t2, 10.0)
		if err != nil {
			return nil, err
		}
		if tx == nil {
			return nil, nil
		}
		if tx.TT >= startTime.TT {
			return Elongation(body, tx)
		}

		// The event found is earlier than startTime; search again from
		// just past this window. Two passes always suffice.
		startTime = t2.AddDays(1.0)
	}
	return nil, nil
}
