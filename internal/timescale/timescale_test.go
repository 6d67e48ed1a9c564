package timescale

import (
	"math"
	"testing"
	"time"
)

func TestFromCalendarEpoch(t *testing.T) {
	tm, err := FromCalendar(2000, 1, 1, 12, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if tm.UT != 0.0 {
		t.Errorf("J2000 epoch has ut=%g, want 0", tm.UT)
	}
}

func TestFromCalendarSecondRoundsUpToNextSecond(t *testing.T) {
	// A fraction within half a microsecond of the next whole second must
	// round up, not fall back to the start of the current second.
	tm, err := FromCalendar(2000, 1, 1, 12, 0, 0.9999996)
	if err != nil {
		t.Fatal(err)
	}
	want := 1.0 / secondsPerDay
	if math.Abs(tm.UT-want) > 1e-12 {
		t.Errorf("ut = %.12f days (%.6f s), want %.12f days (1.0 s)",
			tm.UT, tm.UT*secondsPerDay, want)
	}
}

func TestFromCalendarRejectsImpossibleDates(t *testing.T) {
	cases := []struct {
		name   string
		year   int
		month  int
		day    int
		hour   int
		minute int
		second float64
	}{
		{"month 13", 2024, 13, 1, 0, 0, 0},
		{"Feb 30", 2024, 2, 30, 0, 0, 0},
		{"Apr 31", 2024, 4, 31, 0, 0, 0},
		{"hour 24", 2024, 1, 1, 24, 0, 0},
		{"minute 60", 2024, 1, 1, 0, 60, 0},
		{"negative second", 2024, 1, 1, 0, 0, -1},
		{"second 61", 2024, 1, 1, 0, 0, 61},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := FromCalendar(c.year, c.month, c.day, c.hour, c.minute, c.second); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestFromCalendarLeapDay(t *testing.T) {
	if _, err := FromCalendar(2024, 2, 29, 6, 30, 15.25); err != nil {
		t.Errorf("2024-02-29 is a valid date: %v", err)
	}
	if _, err := FromCalendar(2023, 2, 29, 0, 0, 0); err == nil {
		t.Error("2023-02-29 should be rejected")
	}
}

func TestStringFormat(t *testing.T) {
	tm, err := FromCalendar(2019, 8, 14, 3, 30, 22.5)
	if err != nil {
		t.Fatal(err)
	}
	if got := tm.String(); got != "2019-08-14T03:30:22.500Z" {
		t.Errorf("String() = %q", got)
	}
}

func TestUTCRoundTrip(t *testing.T) {
	orig := time.Date(2010, 4, 23, 18, 45, 12, 250e6, time.UTC)
	tm := FromGoTime(orig)
	back := tm.UTC()
	if d := back.Sub(orig); d < -time.Millisecond || d > time.Millisecond {
		t.Errorf("round trip drifted by %v", d)
	}
}

func TestTerrestrialTimeOffset(t *testing.T) {
	// Around the modern era, TT leads UT by roughly a minute.
	tm := FromUniversal(0.0)
	dtSeconds := (tm.TT - tm.UT) * secondsPerDay
	if dtSeconds < 60.0 || dtSeconds > 70.0 {
		t.Errorf("TT-UT at J2000 = %f seconds, want about 64", dtSeconds)
	}
}

func TestDeltaTClampsOutsideTable(t *testing.T) {
	first := deltaTTable[0]
	last := deltaTTable[len(deltaTTable)-1]
	if got := DeltaT(first.mjd - 1e6); got != first.dt {
		t.Errorf("DeltaT far past = %f, want clamped %f", got, first.dt)
	}
	if got := DeltaT(last.mjd + 1e6); got != last.dt {
		t.Errorf("DeltaT far future = %f, want clamped %f", got, last.dt)
	}
}

func TestDeltaTInterpolatesBetweenEntries(t *testing.T) {
	for i := 0; i+1 < len(deltaTTable); i += 7 {
		a, b := deltaTTable[i], deltaTTable[i+1]
		mid := (a.mjd + b.mjd) / 2
		got := DeltaT(mid)
		lo, hi := math.Min(a.dt, b.dt), math.Max(a.dt, b.dt)
		if got < lo || got > hi {
			t.Errorf("DeltaT(%f) = %f outside segment [%f, %f]", mid, got, lo, hi)
		}
	}
	// Exact table nodes reproduce their recorded values.
	for _, e := range []deltaTEntry{deltaTTable[0], deltaTTable[len(deltaTTable)/2]} {
		if got := DeltaT(e.mjd); math.Abs(got-e.dt) > 1e-12 {
			t.Errorf("DeltaT(%f) = %f, want node value %f", e.mjd, got, e.dt)
		}
	}
}

func TestAddDays(t *testing.T) {
	tm := FromUniversal(10.0)
	later := tm.AddDays(2.5)
	if later.UT != 12.5 {
		t.Errorf("AddDays ut = %f, want 12.5", later.UT)
	}
	if tm.UT != 10.0 {
		t.Error("AddDays modified the receiver")
	}
	if later.TT <= later.UT {
		t.Error("TT should lead UT in the modern era")
	}
}

func TestTiltCache(t *testing.T) {
	tm := FromUniversal(0.0)
	if tm.CachedTilt() != nil {
		t.Error("fresh Time should have no cached tilt")
	}
	et := &EarthTilt{TT: tm.TT, Mobl: 23.44}
	tm.StoreTilt(et)
	if tm.CachedTilt() != et {
		t.Error("cached tilt pointer not returned")
	}
	if tm.AddDays(0).CachedTilt() != nil {
		t.Error("derived Time must not inherit the tilt cache")
	}
}
