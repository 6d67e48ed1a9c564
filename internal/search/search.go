// Package search finds the times of astronomical events by locating
// ascending roots of slowly varying functions of time: solar longitude
// targets (equinoxes and solstices), lunar phases, relative planetary
// longitudes (conjunctions and oppositions), and maximum elongations.
package search

import (
	"errors"
	"math"

	"github.com/almagest/almagest/internal/metrics"
	"github.com/almagest/almagest/internal/timescale"
)

const secondsPerDay = 86400.0

var (
	// ErrNoConverge reports that an iterative solver exceeded its
	// iteration limit.
	ErrNoConverge = errors.New("search: solver did not converge")

	// ErrBadBracket reports that an internally computed bracket failed
	// its sanity check.
	ErrBadBracket = errors.New("search: bracketing produced an invalid interval")
)

// Func is a function of time whose ascending zero-crossing marks an
// event.
type Func func(t *timescale.Time) (float64, error)

// quadInterp fits a parabola through (tm-dt, fa), (tm, fm), (tm+dt, fb)
// and returns the root time and the slope at the root. ok is false when
// no single root lies within the sampled interval.
func quadInterp(tm, dt, fa, fm, fb float64) (outT, dfDt float64, ok bool) {
	q := (fb+fa)/2 - fm
	r := (fb - fa) / 2
	s := fm

	var x float64
	if q == 0 {
		// A line, not a parabola.
		if r == 0 {
			// A horizontal line crosses zero nowhere or everywhere.
			return 0, 0, false
		}
		x = -s / r
		if x < -1 || x > +1 {
			return 0, 0, false
		}
	} else {
		u := r*r - 4*q*s
		if u <= 0 {
			return 0, 0, false
		}
		ru := math.Sqrt(u)
		x1 := (-r + ru) / (2 * q)
		x2 := (-r - ru) / (2 * q)
		in1 := -1 <= x1 && x1 <= +1
		in2 := -1 <= x2 && x2 <= +1
		switch {
		case in1 && in2:
			// The parabola crosses twice inside the interval.
			return 0, 0, false
		case in1:
			x = x1
		case in2:
			x = x2
		default:
			return 0, 0, false
		}
	}

	return tm + x*dt, (2*q*x + r) / dt, true
}

// Search finds the time in [t1, t2] when fn ascends through zero, to
// within dtToleranceSeconds. It first attempts quadratic interpolation
// and falls back to bisection when the parabola fit fails. A nil time
// with a nil error means the window contains no ascending root (or more
// than one).
func Search(fn Func, t1, t2 *timescale.Time, dtToleranceSeconds float64) (*timescale.Time, error) {
	dtDays := math.Abs(dtToleranceSeconds / secondsPerDay)

	f1, err := fn(t1)
	if err != nil {
		return nil, err
	}
	f2, err := fn(t2)
	if err != nil {
		return nil, err
	}

	iters := 0
	defer func() { metrics.RecordSearch("root", iters) }()

	var fmid float64
	calcFmid := true
	const iterLimit = 20
	for iters = 1; iters <= iterLimit; iters++ {
		dt := (t2.TT - t1.TT) / 2.0
		tmid := t1.AddDays(dt)
		if math.Abs(dt) < dtDays {
			return tmid, nil
		}

		if calcFmid {
			if fmid, err = fn(tmid); err != nil {
				return nil, err
			}
		} else {
			// fmid still holds the correct value from the last pass.
			calcFmid = true
		}

		// Fit a parabola through the three sampled points and chase its
		// root.
		if qt, qDfDt, ok := quadInterp(tmid.UT, t2.UT-tmid.UT, f1, fmid, f2); ok {
			tq := timescale.FromUniversal(qt)
			fq, err := fn(tq)
			if err != nil {
				return nil, err
			}
			if qDfDt != 0.0 {
				dtGuess := math.Abs(fq / qDfDt)
				if dtGuess < dtDays {
					// The estimated time error is already within
					// tolerance.
					return tq, nil
				}

				// Try a much tighter bracket centered on the
				// interpolated root.
				dtGuess *= 1.2
				if dtGuess < dt/10.0 {
					tleft := tq.AddDays(-dtGuess)
					tright := tq.AddDays(+dtGuess)
					if (tleft.UT-t1.UT)*(tleft.UT-t2.UT) < 0.0 &&
						(tright.UT-t1.UT)*(tright.UT-t2.UT) < 0.0 {
						fleft, err := fn(tleft)
						if err != nil {
							return nil, err
						}
						fright, err := fn(tright)
						if err != nil {
							return nil, err
						}
						if fleft < 0.0 && fright >= 0.0 {
							f1, f2 = fleft, fright
							t1, t2 = tleft, tright
							fmid = fq
							calcFmid = false
							continue
						}
					}
				}
			}
		}

		// Interpolation did not work out; bisect into whichever half
		// appears to contain the ascending root.
		if f1 < 0.0 && fmid >= 0.0 {
			t2, f2 = tmid, fmid
			continue
		}
		if fmid < 0.0 && f2 >= 0.0 {
			t1, f1 = tmid, fmid
			continue
		}

		// Either no ascending root in this window, or more than one.
		return nil, nil
	}
	return nil, ErrNoConverge
}
