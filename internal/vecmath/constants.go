package vecmath

// Physical constants shared across the engine. Distances are in
// astronomical units and times in days unless noted otherwise.
const (
	// KmPerAU is the number of kilometers in one astronomical unit.
	KmPerAU = 1.4959787069098932e+8

	// CAuDay is the speed of light in AU per day.
	CAuDay = 173.1446326846693

	// EarthEquatorialRadiusKm is the equatorial radius of the Earth
	// in kilometers (WGS-84 derived, as used by the ephemeris model).
	EarthEquatorialRadiusKm = 6378.1366

	// EarthFlattening is the oblateness ratio of the Earth spheroid.
	EarthFlattening = 1.0 - 0.003352819697896
)
