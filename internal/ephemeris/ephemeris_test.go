package ephemeris

import (
	"errors"
	"math"
	"testing"

	"github.com/almagest/almagest/internal/timescale"
)

func TestBodyFromName(t *testing.T) {
	for b := Mercury; b <= Moon; b++ {
		got, err := BodyFromName(b.String())
		if err != nil {
			t.Fatalf("BodyFromName(%q): %v", b.String(), err)
		}
		if got != b {
			t.Errorf("BodyFromName(%q) = %v, want %v", b.String(), got, b)
		}
	}
	if _, err := BodyFromName("Vulcan"); !errors.Is(err, ErrInvalidBody) {
		t.Errorf("BodyFromName(Vulcan) error = %v, want ErrInvalidBody", err)
	}
}

func TestSynodicPeriod(t *testing.T) {
	if _, err := SynodicPeriod(Earth); !errors.Is(err, ErrEarthNotAllowed) {
		t.Errorf("SynodicPeriod(Earth) error = %v, want ErrEarthNotAllowed", err)
	}
	moon, err := SynodicPeriod(Moon)
	if err != nil || moon != MeanSynodicMonth {
		t.Errorf("SynodicPeriod(Moon) = %f, %v; want %f", moon, err, MeanSynodicMonth)
	}
	// Mars takes about 780 days between oppositions.
	mars, err := SynodicPeriod(Mars)
	if err != nil {
		t.Fatal(err)
	}
	if mars < 770.0 || mars > 790.0 {
		t.Errorf("SynodicPeriod(Mars) = %f days, want about 780", mars)
	}
	// Synodic periods are positive for inferior planets too.
	mercury, err := SynodicPeriod(Mercury)
	if err != nil {
		t.Fatal(err)
	}
	if mercury < 110.0 || mercury > 120.0 {
		t.Errorf("SynodicPeriod(Mercury) = %f days, want about 116", mercury)
	}
}

func TestIsSuperior(t *testing.T) {
	for _, b := range []Body{Mars, Jupiter, Saturn, Uranus, Neptune, Pluto} {
		if !IsSuperior(b) {
			t.Errorf("IsSuperior(%v) = false, want true", b)
		}
	}
	for _, b := range []Body{Mercury, Venus, Earth, Sun, Moon} {
		if IsSuperior(b) {
			t.Errorf("IsSuperior(%v) = true, want false", b)
		}
	}
}

func TestHelioVectorSunIsOrigin(t *testing.T) {
	tm := timescale.FromUniversal(0.0)
	v, err := HelioVector(Sun, tm)
	if err != nil {
		t.Fatal(err)
	}
	if v.X != 0 || v.Y != 0 || v.Z != 0 {
		t.Errorf("Sun heliocentric position = (%g, %g, %g), want origin", v.X, v.Y, v.Z)
	}
	if v.T != tm {
		t.Error("Sun vector should carry the evaluation time")
	}
}

func TestEarthDistanceNearOneAU(t *testing.T) {
	for _, ut := range []float64{-30000.0, 0.0, 5000.0, 20000.0} {
		v := CalcEarth(timescale.FromUniversal(ut))
		r := v.Length()
		if r < 0.98 || r > 1.02 {
			t.Errorf("ut=%f: Earth heliocentric distance %f AU out of [0.98, 1.02]", ut, r)
		}
	}
}

func TestPlanetDistances(t *testing.T) {
	// Coarse semi-major axis check for each VSOP planet.
	ranges := map[Body][2]float64{
		Mercury: {0.30, 0.47},
		Venus:   {0.71, 0.74},
		Mars:    {1.37, 1.67},
		Jupiter: {4.94, 5.46},
		Saturn:  {9.0, 10.1},
		Uranus:  {18.2, 20.1},
		Neptune: {29.7, 30.4},
	}
	tm := timescale.FromUniversal(7500.0)
	for body, r := range ranges {
		v, err := HelioVector(body, tm)
		if err != nil {
			t.Fatalf("%v: %v", body, err)
		}
		d := v.Length()
		if d < r[0] || d > r[1] {
			t.Errorf("%v heliocentric distance %f AU out of [%f, %f]", body, d, r[0], r[1])
		}
	}
}

func TestGeoMoonDistance(t *testing.T) {
	for _, ut := range []float64{-10000.0, 0.0, 3210.5, 15000.0} {
		v := GeoMoon(timescale.FromUniversal(ut))
		r := v.Length()
		if r < 0.0024 || r > 0.0028 {
			t.Errorf("ut=%f: Moon geocentric distance %f AU out of [0.0024, 0.0028]", ut, r)
		}
	}
}

func TestPlutoRangeAndSeams(t *testing.T) {
	// A time before the first Chebyshev segment must report an error.
	early := timescale.Time{UT: -120000.0, TT: -120000.0}
	if _, err := calcPluto(&early); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("calcPluto far past: error = %v, want ErrOutOfRange", err)
	}

	// The position must be continuous across each segment boundary.
	for i := 1; i < len(plutoSegments); i++ {
		seam := plutoSegments[i].tt
		before := timescale.Time{UT: seam - 1e-6, TT: seam - 1e-6}
		after := timescale.Time{UT: seam + 1e-6, TT: seam + 1e-6}
		a, err := calcPluto(&before)
		if err != nil {
			t.Fatalf("segment %d seam: %v", i, err)
		}
		b, err := calcPluto(&after)
		if err != nil {
			t.Fatalf("segment %d seam: %v", i, err)
		}
		// Adjacent records agree to about a micro-AU at their shared
		// boundary; the sample points straddle it by only 1e-6 days, so
		// Pluto's own motion contributes nothing at this scale.
		if d := a.Sub(b).Length(); d > 2e-6 {
			t.Errorf("segment %d seam at tt=%f: discontinuity of %g AU", i, seam, d)
		}
	}
}

func TestPlutoDistancePlausible(t *testing.T) {
	v, err := HelioVector(Pluto, timescale.FromUniversal(0.0))
	if err != nil {
		t.Fatal(err)
	}
	r := v.Length()
	if r < 29.0 || r > 50.0 {
		t.Errorf("Pluto heliocentric distance %f AU out of [29, 50]", r)
	}
}

func TestHelioVectorMoonMatchesEarthPlusGeoMoon(t *testing.T) {
	tm := timescale.FromUniversal(4321.0)
	hv, err := HelioVector(Moon, tm)
	if err != nil {
		t.Fatal(err)
	}
	want := CalcEarth(tm).Add(GeoMoon(tm))
	if math.Abs(hv.X-want.X) > 1e-15 || math.Abs(hv.Y-want.Y) > 1e-15 || math.Abs(hv.Z-want.Z) > 1e-15 {
		t.Error("heliocentric Moon should be Earth plus geocentric Moon")
	}
}
