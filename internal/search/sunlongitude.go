package search

import (
	"fmt"

	"github.com/almagest/almagest/internal/timescale"
	"github.com/almagest/almagest/internal/transform"
)

// sunOffset measures how far the Sun's geocentric ecliptic longitude is
// from the target, in degrees (-180, +180].
func sunOffset(targetLon float64, t *timescale.Time) float64 {
	return longitudeOffset(transform.SunPosition(t).Elon - targetLon)
}

// SearchSunLongitude finds the next time within limitDays of startTime
// when the Sun's geocentric ecliptic longitude ascends through
// targetLon degrees. A nil time with nil error means the longitude is
// not reached inside the window.
func SearchSunLongitude(targetLon float64, startTime *timescale.Time, limitDays float64) (*timescale.Time, error) {
	t2 := startTime.AddDays(limitDays)
	return Search(func(t *timescale.Time) (float64, error) {
		return sunOffset(targetLon, t), nil
	}, startTime, t2, 1.0)
}

// SeasonsInfo holds the equinox and solstice times of one calendar
// year.
type SeasonsInfo struct {
	MarEquinox  *timescale.Time
	JunSolstice *timescale.Time
	SepEquinox  *timescale.Time
	DecSolstice *timescale.Time
}

// Seasons finds the two equinoxes and two solstices of the given
// calendar year.
func Seasons(year int) (SeasonsInfo, error) {
	find := func(targetLon float64, month, day int) (*timescale.Time, error) {
		start, err := timescale.FromCalendar(year, month, day, 0, 0, 0)
		if err != nil {
			return nil, err
		}
		t, err := SearchSunLongitude(targetLon, start, 4.0)
		if err != nil {
			return nil, err
		}
		if t == nil {
			return nil, fmt.Errorf("search: cannot find Sun longitude %f starting %d-%02d-%02d", targetLon, year, month, day)
		}
		return t, nil
	}

	var info SeasonsInfo
	var err error
	if info.MarEquinox, err = find(0, 3, 19); err != nil {
		return SeasonsInfo{}, err
	}
	if info.JunSolstice, err = find(90, 6, 19); err != nil {
		return SeasonsInfo{}, err
	}
	if info.SepEquinox, err = find(180, 9, 21); err != nil {
		return SeasonsInfo{}, err
	}
	if info.DecSolstice, err = find(270, 12, 20); err != nil {
		return SeasonsInfo{}, err
	}
	return info, nil
}
