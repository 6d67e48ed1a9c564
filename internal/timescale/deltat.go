package timescale

import "sort"

type deltaTEntry struct {
	mjd float64
	dt  float64
}

// DeltaT returns the TT-UT offset in seconds at the given modified Julian
// date, by linear interpolation over the sampled table. Dates before the
// first sample or after the last clamp to the boundary value.
func DeltaT(mjd float64) float64 {
	n := len(deltaTTable)
	if mjd <= deltaTTable[0].mjd {
		return deltaTTable[0].dt
	}
	if mjd >= deltaTTable[n-1].mjd {
		return deltaTTable[n-1].dt
	}

	// Index of the first sample at or after mjd; the bracketing pair is
	// then (i-1, i).
	i := sort.Search(n, func(k int) bool {
		return deltaTTable[k].mjd >= mjd
	})
	lo, hi := deltaTTable[i-1], deltaTTable[i]
	frac := (mjd - lo.mjd) / (hi.mjd - lo.mjd)
	return lo.dt + frac*(hi.dt-lo.dt)
}

// TerrestrialTime converts a universal time (fractional days since the
// J2000 epoch) to terrestrial time on the same day scale.
func TerrestrialTime(ut float64) float64 {
	return ut + DeltaT(ut+y2000InMJD)/86400.0
}
