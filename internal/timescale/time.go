// Package timescale represents instants in the two time scales the engine
// works in: universal time (UT, the civil clock basis) and terrestrial
// time (TT, the uniform dynamical scale used for series evaluation).
// Both are fractional days relative to the J2000 epoch,
// 2000-01-01T12:00Z, related by the tabulated delta-t correction.
package timescale

import (
	"fmt"
	"math"
	"sync/atomic"
	"time"
)

const (
	// y2000InMJD is the J2000 epoch expressed as a modified Julian date:
	// JD 2451545.0 minus the MJD basis 2400000.5.
	y2000InMJD = 2451545.0 - 2400000.5

	secondsPerDay = 86400.0
)

var epoch = time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)

// EarthTilt is a snapshot of the Earth orientation angles at a specific
// terrestrial time: nutation in longitude (Dpsi, arcseconds), nutation in
// obliquity (Deps, arcseconds), mean and true obliquity of the ecliptic
// (degrees), and the equation of the equinoxes (seconds of time).
// Computed by the earth package and cached on a Time.
type EarthTilt struct {
	TT   float64
	Dpsi float64
	Deps float64
	Mobl float64
	Tobl float64
	Ee   float64
}

// Time is an instant tagged with both UT and TT day offsets from J2000.
// The zero of both scales is the epoch itself. A Time also carries a
// lazily-populated Earth orientation snapshot; the 77-term nutation
// series is expensive, and most transforms consult it several times for
// the same instant.
type Time struct {
	// UT is the universal time in fractional days since 2000-01-01T12:00Z.
	UT float64
	// TT is the terrestrial time on the same scale, UT plus delta-t.
	TT float64

	tilt atomic.Pointer[EarthTilt]
}

// FromUniversal builds a Time from a UT day offset, deriving TT.
func FromUniversal(ut float64) *Time {
	return &Time{UT: ut, TT: TerrestrialTime(ut)}
}

// FromCalendar builds a Time from UTC calendar fields. The fractional
// part of the second is rounded to microsecond granularity before the
// day offset is composed. Fields that do not denote a real calendar
// date/time (month 13, day 31 of April, hour 24, ...) are rejected.
func FromCalendar(year, month, day, hour, minute int, second float64) (*Time, error) {
	if second < 0 || second >= 61 {
		return nil, fmt.Errorf("invalid second value %v", second)
	}
	whole := int(math.Floor(second))
	micro := int(math.Round((second - math.Floor(second)) * 1e6))
	if micro == 1000000 {
		micro = 0
		whole++
	}

	d := time.Date(year, time.Month(month), day, hour, minute, whole, micro*1000, time.UTC)
	// time.Date normalizes out-of-range fields; a changed date means the
	// input was not a valid calendar instant.
	if d.Year() != year || d.Month() != time.Month(month) || d.Day() != day ||
		d.Hour() != hour || d.Minute() != minute {
		return nil, fmt.Errorf("invalid calendar date %04d-%02d-%02d %02d:%02d:%v",
			year, month, day, hour, minute, second)
	}
	ut := d.Sub(epoch).Seconds() / secondsPerDay
	return FromUniversal(ut), nil
}

// FromGoTime builds a Time from a stdlib time.Time.
func FromGoTime(t time.Time) *Time {
	ut := t.UTC().Sub(epoch).Seconds() / secondsPerDay
	return FromUniversal(ut)
}

// Now returns the current instant from the system clock.
func Now() *Time {
	return FromGoTime(time.Now())
}

// AddDays returns a new Time the given number of days later (or earlier,
// when negative). The receiver is not modified and the orientation cache
// is not carried over.
func (t *Time) AddDays(days float64) *Time {
	return FromUniversal(t.UT + days)
}

// UTC returns the instant as a stdlib time.Time in UTC.
func (t *Time) UTC() time.Time {
	millis := math.Round(t.UT * secondsPerDay * 1000.0)
	return epoch.Add(time.Duration(millis) * time.Millisecond)
}

// String formats the instant as an ISO-8601 UTC timestamp with
// millisecond precision. Intended for diagnostics and tests.
func (t *Time) String() string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}

// CachedTilt returns the Earth orientation snapshot previously stored on
// this Time, or nil if none has been computed yet.
func (t *Time) CachedTilt() *EarthTilt {
	return t.tilt.Load()
}

// StoreTilt records an Earth orientation snapshot on this Time. The
// field is effectively write-once: the computation is deterministic in
// t.TT, so concurrent racing stores are idempotent and need no lock.
func (t *Time) StoreTilt(et *EarthTilt) {
	t.tilt.Store(et)
}
