package search

import (
	"fmt"
	"math"

	"github.com/almagest/almagest/internal/ephemeris"
	"github.com/almagest/almagest/internal/timescale"
)

// MoonPhase returns the Moon's ecliptic longitude relative to the Sun
// in degrees [0, 360): 0 is new moon, 90 first quarter, 180 full moon,
// 270 third quarter.
func MoonPhase(t *timescale.Time) (float64, error) {
	return LongitudeFromSun(ephemeris.Moon, t)
}

func moonOffset(targetLon float64, t *timescale.Time) (float64, error) {
	angle, err := MoonPhase(t)
	if err != nil {
		return 0, err
	}
	return longitudeOffset(angle - targetLon), nil
}

// SearchMoonPhase finds the next time within limitDays of startTime
// when the Moon reaches the given phase angle in degrees. A nil time
// with nil error means the phase does not occur inside the window.
func SearchMoonPhase(targetLon float64, startTime *timescale.Time, limitDays float64) (*timescale.Time, error) {
	// Predict the event from the mean synodic month, then search a
	// +/-0.9 day window around the prediction. The eccentricity of the
	// lunar orbit shifts phase times up to about 0.83 days from the
	// mean, so the window is wide enough to always contain the event.
	const uncertainty = 0.9
	ya, err := moonOffset(targetLon, startTime)
	if err != nil {
		return nil, err
	}
	if ya > 0.0 {
		// Force searching forward in time.
		ya -= 360.0
	}
	estDt := -(ephemeris.MeanSynodicMonth * ya) / 360.0
	dt1 := estDt - uncertainty
	if dt1 > limitDays {
		return nil, nil
	}
	dt2 := math.Min(limitDays, estDt+uncertainty)
	t1 := startTime.AddDays(dt1)
	t2 := startTime.AddDays(dt2)
	return Search(func(t *timescale.Time) (float64, error) {
		return moonOffset(targetLon, t)
	}, t1, t2, 1.0)
}

// MoonQuarter is a lunar quarter event: 0 = new moon, 1 = first
// quarter, 2 = full moon, 3 = third quarter.
type MoonQuarter struct {
	Quarter int
	Time    *timescale.Time
}

// SearchMoonQuarter finds the first quarter-phase event after
// startTime.
func SearchMoonQuarter(startTime *timescale.Time) (*MoonQuarter, error) {
	angle, err := MoonPhase(startTime)
	if err != nil {
		return nil, err
	}
	quarter := (1 + int(math.Floor(angle/90.0))) % 4
	t, err := SearchMoonPhase(90.0*float64(quarter), startTime, 10.0)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("%w: lunar quarter %d not found within its synodic window", ErrNoConverge, quarter)
	}
	return &MoonQuarter{Quarter: quarter, Time: t}, nil
}

// NextMoonQuarter finds the quarter event that follows mq. Quarter
// events are roughly a week apart and always cycle in order.
func NextMoonQuarter(mq *MoonQuarter) (*MoonQuarter, error) {
	next, err := SearchMoonQuarter(mq.Time.AddDays(6.0))
	if err != nil {
		return nil, err
	}
	if next.Quarter != (mq.Quarter+1)%4 {
		return nil, fmt.Errorf("%w: expected quarter %d after %d, found %d", ErrBadBracket, (mq.Quarter+1)%4, mq.Quarter, next.Quarter)
	}
	return next, nil
}
