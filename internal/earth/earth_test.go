package earth

import (
	"math"
	"testing"

	"github.com/almagest/almagest/internal/timescale"
	"github.com/almagest/almagest/internal/vecmath"
)

func TestMeanObliquityAtJ2000(t *testing.T) {
	got := MeanObliquity(0.0)
	want := 84381.406 / 3600.0
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("MeanObliquity(0) = %.12f, want %.12f", got, want)
	}
}

func TestTiltIsCached(t *testing.T) {
	tm := timescale.FromUniversal(8000.0)
	first := Tilt(tm)
	second := Tilt(tm)
	if first != second {
		t.Error("expected second Tilt call to return the cached pointer")
	}
	if first.Mobl < 23.0 || first.Mobl > 24.0 {
		t.Errorf("mean obliquity %f degrees out of plausible range", first.Mobl)
	}
	if math.Abs(first.Dpsi) > 20.0 || math.Abs(first.Deps) > 20.0 {
		t.Errorf("nutation angles dpsi=%f deps=%f arcsec out of plausible range", first.Dpsi, first.Deps)
	}
	wantTobl := first.Mobl + first.Deps/3600.0
	if math.Abs(first.Tobl-wantTobl) > 1e-12 {
		t.Errorf("true obliquity %f, want mean+deps = %f", first.Tobl, wantTobl)
	}
}

func TestPrecessionRoundTrip(t *testing.T) {
	pos := vecmath.New(0.4, -0.8, 0.3, nil)
	for _, tt := range []float64{-20000.0, 0.0, 1234.5, 40000.0} {
		out := Precession(0.0, pos, tt)
		back := Precession(tt, out, 0.0)
		if math.Abs(back.X-pos.X) > 1e-9 || math.Abs(back.Y-pos.Y) > 1e-9 || math.Abs(back.Z-pos.Z) > 1e-9 {
			t.Errorf("tt=%f: round trip drifted: got (%g, %g, %g)", tt, back.X, back.Y, back.Z)
		}
		if math.Abs(out.Length()-pos.Length()) > 1e-12 {
			t.Errorf("tt=%f: precession changed vector length", tt)
		}
	}
}

func TestPrecessionBothEpochsNonzeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic when neither endpoint is J2000")
		}
	}()
	Precession(100.0, vecmath.New(1, 0, 0, nil), 200.0)
}

func TestNutationRoundTrip(t *testing.T) {
	tm := timescale.FromUniversal(3456.75)
	pos := vecmath.New(-0.1, 0.9, 0.45, tm)
	out := NutationMeanToTrue(tm, pos)
	back := NutationTrueToMean(tm, out)
	if math.Abs(back.X-pos.X) > 1e-12 || math.Abs(back.Y-pos.Y) > 1e-12 || math.Abs(back.Z-pos.Z) > 1e-12 {
		t.Errorf("round trip drifted: got (%g, %g, %g)", back.X, back.Y, back.Z)
	}
	// Nutation is a small rotation: the position should barely move.
	d := pos.Sub(out).Length()
	if d > 1e-3 {
		t.Errorf("nutation moved unit-scale vector by %g AU, expected a tiny rotation", d)
	}
}

func TestSiderealTimeAtJ2000(t *testing.T) {
	// Greenwich apparent sidereal time at the J2000 epoch is close to
	// 18.697 hours.
	tm := timescale.FromUniversal(0.0)
	gast := SiderealTime(tm)
	if math.Abs(gast-18.697) > 0.01 {
		t.Errorf("GAST at J2000 = %f hours, want about 18.697", gast)
	}
}

func TestSiderealTimeRange(t *testing.T) {
	for _, ut := range []float64{-50000.0, -1.25, 0.0, 0.5, 12345.678, 80000.0} {
		gast := SiderealTime(timescale.FromUniversal(ut))
		if gast < 0.0 || gast >= 24.0 {
			t.Errorf("ut=%f: sidereal time %f out of [0, 24)", ut, gast)
		}
	}
}

func TestTerraEquatorAndPole(t *testing.T) {
	eq := terra(Observer{Latitude: 0, Longitude: 0, Height: 0}, 0.0)
	wantEq := vecmath.EarthEquatorialRadiusKm / vecmath.KmPerAU
	if math.Abs(eq.Length()-wantEq) > 1e-15 {
		t.Errorf("equatorial observer distance %g AU, want %g", eq.Length(), wantEq)
	}
	if math.Abs(eq.Z) > 1e-20 {
		t.Errorf("equatorial observer has z = %g, want 0", eq.Z)
	}

	pole := terra(Observer{Latitude: 90, Longitude: 0, Height: 0}, 0.0)
	// The polar radius is smaller than the equatorial radius by the
	// flattening factor.
	wantPole := vecmath.EarthEquatorialRadiusKm * vecmath.EarthFlattening / vecmath.KmPerAU
	if math.Abs(pole.Z-wantPole) > 1e-12 {
		t.Errorf("polar observer z = %g AU, want %g", pole.Z, wantPole)
	}
}

func TestGeocentricPositionMagnitude(t *testing.T) {
	tm := timescale.FromUniversal(7305.0)
	obs := Observer{Latitude: 51.4778, Longitude: -0.0015, Height: 46.0}
	pos := GeocentricPosition(tm, obs)
	r := pos.Length() * vecmath.KmPerAU
	if r < 6350.0 || r > 6380.0 {
		t.Errorf("observer geocentric distance %f km out of Earth-radius range", r)
	}
	if pos.T != tm {
		t.Error("geocentric position should carry the evaluation time")
	}
}

func TestSpin(t *testing.T) {
	v := vecmath.New(1, 0, 0.5, nil)
	out := Spin(90.0, v)
	if math.Abs(out.X) > 1e-15 || math.Abs(out.Y+1) > 1e-15 || out.Z != 0.5 {
		t.Errorf("Spin(90) = (%g, %g, %g), want (0, -1, 0.5)", out.X, out.Y, out.Z)
	}
	back := Spin(-90.0, out)
	if math.Abs(back.X-1) > 1e-15 || math.Abs(back.Y) > 1e-15 {
		t.Errorf("reverse spin drifted: (%g, %g)", back.X, back.Y)
	}
}
