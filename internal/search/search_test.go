package search

import (
	"errors"
	"math"
	"testing"

	"github.com/almagest/almagest/internal/ephemeris"
	"github.com/almagest/almagest/internal/timescale"
)

func TestLongitudeHelpers(t *testing.T) {
	if got := normalizeLongitude(-30.0); got != 330.0 {
		t.Errorf("normalizeLongitude(-30) = %f, want 330", got)
	}
	if got := normalizeLongitude(720.5); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("normalizeLongitude(720.5) = %f, want 0.5", got)
	}
	if got := longitudeOffset(350.0); got != -10.0 {
		t.Errorf("longitudeOffset(350) = %f, want -10", got)
	}
	if got := longitudeOffset(-181.0); got != 179.0 {
		t.Errorf("longitudeOffset(-181) = %f, want 179", got)
	}
	if got := longitudeOffset(180.0); got != 180.0 {
		t.Errorf("longitudeOffset(180) = %f, want 180", got)
	}
}

func TestSearchFindsAscendingRoot(t *testing.T) {
	fn := func(tm *timescale.Time) (float64, error) {
		return (tm.UT - 5.0) / 10.0, nil
	}
	got, err := Search(fn, timescale.FromUniversal(0), timescale.FromUniversal(10), 1.0)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil {
		t.Fatal("expected a root")
	}
	if math.Abs(got.UT-5.0) > 1.0/secondsPerDay {
		t.Errorf("root at ut=%f, want 5.0", got.UT)
	}
}

func TestSearchNoSignChange(t *testing.T) {
	fn := func(*timescale.Time) (float64, error) { return 1.0, nil }
	got, err := Search(fn, timescale.FromUniversal(0), timescale.FromUniversal(10), 1.0)
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Errorf("expected nil time for constant function, got ut=%f", got.UT)
	}
}

func TestSearchIgnoresDescendingRoot(t *testing.T) {
	fn := func(tm *timescale.Time) (float64, error) {
		return 5.0 - tm.UT, nil
	}
	got, err := Search(fn, timescale.FromUniversal(0), timescale.FromUniversal(10), 1.0)
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Errorf("expected nil time for descending crossing, got ut=%f", got.UT)
	}
}

func TestSearchPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	fn := func(*timescale.Time) (float64, error) { return 0, boom }
	if _, err := Search(fn, timescale.FromUniversal(0), timescale.FromUniversal(10), 1.0); !errors.Is(err, boom) {
		t.Errorf("error = %v, want propagated boom", err)
	}
}

func TestSearchSunLongitudeMarchEquinox2000(t *testing.T) {
	// The March 2000 equinox was at 2000-03-20 07:35 UTC.
	start, err := timescale.FromCalendar(2000, 3, 19, 0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	got, err := SearchSunLongitude(0.0, start, 4.0)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil {
		t.Fatal("equinox not found")
	}
	if got.UT < 78.6 || got.UT > 79.0 {
		t.Errorf("March equinox at ut=%f, want about 78.82", got.UT)
	}
}

func TestSearchSunLongitudeWindowTooShort(t *testing.T) {
	start, err := timescale.FromCalendar(2000, 1, 2, 0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	// The Sun cannot move 90 degrees in one day.
	got, err := SearchSunLongitude(10.0, start, 1.0)
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Errorf("expected nil result in a one-day window, got ut=%f", got.UT)
	}
}

func TestSeasonsOrdering(t *testing.T) {
	for _, year := range []int{1994, 2000, 2024} {
		info, err := Seasons(year)
		if err != nil {
			t.Fatalf("year %d: %v", year, err)
		}
		gaps := []struct {
			name   string
			a, b   *timescale.Time
			lo, hi float64
		}{
			{"equinox to June solstice", info.MarEquinox, info.JunSolstice, 85, 99},
			{"June solstice to equinox", info.JunSolstice, info.SepEquinox, 85, 99},
			{"equinox to December solstice", info.SepEquinox, info.DecSolstice, 85, 99},
		}
		for _, g := range gaps {
			d := g.b.UT - g.a.UT
			if d < g.lo || d > g.hi {
				t.Errorf("year %d: %s gap is %f days, want [%f, %f]", year, g.name, d, g.lo, g.hi)
			}
		}
	}
}

func TestMoonPhaseRange(t *testing.T) {
	for _, ut := range []float64{-3000.0, 0.0, 42.42, 11000.0} {
		phase, err := MoonPhase(timescale.FromUniversal(ut))
		if err != nil {
			t.Fatal(err)
		}
		if phase < 0.0 || phase >= 360.0 {
			t.Errorf("ut=%f: phase %f out of [0, 360)", ut, phase)
		}
	}
}

func TestSearchMoonPhaseNewToFull(t *testing.T) {
	// The first new moon of 2000 was on January 6 at 18:14 UTC.
	start := timescale.FromUniversal(0.0)
	newMoon, err := SearchMoonPhase(0.0, start, 40.0)
	if err != nil {
		t.Fatal(err)
	}
	if newMoon == nil {
		t.Fatal("new moon not found")
	}
	if newMoon.UT < 5.0 || newMoon.UT > 5.5 {
		t.Errorf("new moon at ut=%f, want about 5.26", newMoon.UT)
	}
	phase, err := MoonPhase(newMoon)
	if err != nil {
		t.Fatal(err)
	}
	if !(phase < 0.1 || phase > 359.9) {
		t.Errorf("phase at new moon = %f, want near 0", phase)
	}

	full, err := SearchMoonPhase(180.0, newMoon, 40.0)
	if err != nil {
		t.Fatal(err)
	}
	if full == nil {
		t.Fatal("full moon not found")
	}
	d := full.UT - newMoon.UT
	if d < 13.9 || d > 15.7 {
		t.Errorf("full moon %f days after new moon, want roughly half a synodic month", d)
	}
}

func TestSearchMoonPhaseWindowTooShort(t *testing.T) {
	got, err := SearchMoonPhase(180.0, timescale.FromUniversal(0.0), 1.0)
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Errorf("expected nil result, full moon is two weeks away; got ut=%f", got.UT)
	}
}

func TestMoonQuarterCycle(t *testing.T) {
	mq, err := SearchMoonQuarter(timescale.FromUniversal(0.0))
	if err != nil {
		t.Fatal(err)
	}
	if mq.Quarter != 0 {
		t.Errorf("first quarter event of 2000 is quarter %d, want 0 (new moon)", mq.Quarter)
	}
	prev := mq
	for i := 0; i < 8; i++ {
		next, err := NextMoonQuarter(prev)
		if err != nil {
			t.Fatal(err)
		}
		if next.Quarter != (prev.Quarter+1)%4 {
			t.Fatalf("quarter %d followed by %d", prev.Quarter, next.Quarter)
		}
		d := next.Time.UT - prev.Time.UT
		if d < 6.0 || d > 9.0 {
			t.Errorf("quarters %d days apart, want 6 to 9", int(d))
		}
		prev = next
	}
}

func TestSearchRelativeLongitudeRejectsBodies(t *testing.T) {
	start := timescale.FromUniversal(0.0)
	if _, err := SearchRelativeLongitude(ephemeris.Earth, 0.0, start); !errors.Is(err, ephemeris.ErrEarthNotAllowed) {
		t.Errorf("Earth error = %v, want ErrEarthNotAllowed", err)
	}
	for _, body := range []ephemeris.Body{ephemeris.Moon, ephemeris.Sun} {
		if _, err := SearchRelativeLongitude(body, 0.0, start); !errors.Is(err, ephemeris.ErrInvalidBody) {
			t.Errorf("%v error = %v, want ErrInvalidBody", body, err)
		}
	}
}

func TestSearchRelativeLongitudeMarsOpposition(t *testing.T) {
	// The Mars opposition after J2000 was on 2001-06-13.
	start := timescale.FromUniversal(0.0)
	got, err := SearchRelativeLongitude(ephemeris.Mars, 0.0, start)
	if err != nil {
		t.Fatal(err)
	}
	if got.UT < 520.0 || got.UT > 535.0 {
		t.Errorf("Mars opposition at ut=%f, want about 529", got.UT)
	}
	// At opposition the Earth and Mars share an ecliptic longitude.
	off, err := rlonOffset(ephemeris.Mars, got, +1.0, 0.0)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(off) > 0.01 {
		t.Errorf("relative longitude offset at opposition = %f degrees, want near 0", off)
	}
}

func TestSearchMaxElongation(t *testing.T) {
	start := timescale.FromUniversal(0.0)

	if _, err := SearchMaxElongation(ephemeris.Mars, start); !errors.Is(err, ephemeris.ErrInvalidBody) {
		t.Errorf("Mars error = %v, want ErrInvalidBody", err)
	}

	mercury, err := SearchMaxElongation(ephemeris.Mercury, start)
	if err != nil {
		t.Fatal(err)
	}
	if mercury == nil {
		t.Fatal("no Mercury elongation found")
	}
	if mercury.Time.TT < start.TT {
		t.Error("elongation event is before the search start")
	}
	if mercury.Elongation < 17.0 || mercury.Elongation > 29.0 {
		t.Errorf("Mercury maximum elongation = %f degrees, want 18 to 28", mercury.Elongation)
	}

	venus, err := SearchMaxElongation(ephemeris.Venus, start)
	if err != nil {
		t.Fatal(err)
	}
	if venus == nil {
		t.Fatal("no Venus elongation found")
	}
	if venus.Elongation < 45.0 || venus.Elongation > 48.0 {
		t.Errorf("Venus maximum elongation = %f degrees, want about 46 to 47", venus.Elongation)
	}
	if venus.Visibility != VisibilityMorning && venus.Visibility != VisibilityEvening {
		t.Errorf("unexpected visibility %q", venus.Visibility)
	}
}

func TestElongationSides(t *testing.T) {
	// Scan a year of Moon elongations; both visibility values must
	// occur, and the separation never exceeds 180 degrees.
	sawMorning, sawEvening := false, false
	for ut := 0.0; ut < 365.0; ut += 11.0 {
		ev, err := Elongation(ephemeris.Moon, timescale.FromUniversal(ut))
		if err != nil {
			t.Fatal(err)
		}
		if ev.EclipticSeparation < 0.0 || ev.EclipticSeparation > 180.0 {
			t.Errorf("ut=%f: ecliptic separation %f out of [0, 180]", ut, ev.EclipticSeparation)
		}
		switch ev.Visibility {
		case VisibilityMorning:
			sawMorning = true
		case VisibilityEvening:
			sawEvening = true
		}
	}
	if !sawMorning || !sawEvening {
		t.Error("expected both morning and evening apparitions over a year")
	}
}
