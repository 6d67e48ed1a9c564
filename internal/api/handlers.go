package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/almagest/almagest/internal/earth"
	"github.com/almagest/almagest/internal/ephemeris"
	"github.com/almagest/almagest/internal/search"
	"github.com/almagest/almagest/internal/timescale"
	"github.com/almagest/almagest/internal/transform"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// engineError maps engine failures onto HTTP statuses: bad targets are
// client errors, model range limits are unprocessable, solver failures
// are server errors.
func engineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ephemeris.ErrInvalidBody), errors.Is(err, ephemeris.ErrEarthNotAllowed):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ephemeris.ErrOutOfRange):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// parseTime reads the optional "time" query parameter as RFC 3339,
// defaulting to the current instant.
func parseTime(r *http.Request) (*timescale.Time, error) {
	s := r.URL.Query().Get("time")
	if s == "" {
		return timescale.Now(), nil
	}
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil, fmt.Errorf("invalid time %q: %w", s, err)
	}
	return timescale.FromGoTime(parsed), nil
}

func parseBody(r *http.Request) (ephemeris.Body, error) {
	name := r.URL.Query().Get("body")
	if name == "" {
		return -1, errors.New("missing required parameter: body")
	}
	return ephemeris.BodyFromName(name)
}

func parseObserver(r *http.Request) (earth.Observer, error) {
	q := r.URL.Query()
	parse := func(key string, required bool) (float64, error) {
		s := q.Get(key)
		if s == "" {
			if required {
				return 0, fmt.Errorf("missing required parameter: %s", key)
			}
			return 0, nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s %q", key, s)
		}
		return v, nil
	}
	lat, err := parse("lat", true)
	if err != nil {
		return earth.Observer{}, err
	}
	if lat < -90 || lat > 90 {
		return earth.Observer{}, fmt.Errorf("latitude %f out of [-90, 90]", lat)
	}
	lon, err := parse("lon", true)
	if err != nil {
		return earth.Observer{}, err
	}
	if lon < -180 || lon > 180 {
		return earth.Observer{}, fmt.Errorf("longitude %f out of [-180, 180]", lon)
	}
	height, err := parse("height", false)
	if err != nil {
		return earth.Observer{}, err
	}
	return earth.Observer{Latitude: lat, Longitude: lon, Height: height}, nil
}

func parseBoolParam(r *http.Request, key string, dflt bool) (bool, error) {
	s := r.URL.Query().Get(key)
	if s == "" {
		return dflt, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q", key, s)
	}
	return v, nil
}

type positionResponse struct {
	Body  string  `json:"body"`
	Time  string  `json:"time"`
	RA    float64 `json:"ra"`
	Dec   float64 `json:"dec"`
	Dist  float64 `json:"dist"`
	Frame string  `json:"frame"`
}

func handlePosition(w http.ResponseWriter, r *http.Request) {
	body, err := parseBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if body == ephemeris.Earth {
		writeError(w, http.StatusBadRequest, ephemeris.ErrEarthNotAllowed.Error())
		return
	}
	t, err := parseTime(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	obs, err := parseObserver(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	ofdate, err := parseBoolParam(r, "ofdate", false)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	aberration, err := parseBoolParam(r, "aberration", true)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	eq, err := transform.Equator(body, t, obs, ofdate, aberration)
	if err != nil {
		engineError(w, err)
		return
	}
	frame := "j2000"
	if ofdate {
		frame = "ofdate"
	}
	writeJSON(w, positionResponse{
		Body:  body.String(),
		Time:  t.String(),
		RA:    eq.RA,
		Dec:   eq.Dec,
		Dist:  eq.Dist,
		Frame: frame,
	})
}

type horizonResponse struct {
	Body     string  `json:"body"`
	Time     string  `json:"time"`
	Azimuth  float64 `json:"azimuth"`
	Altitude float64 `json:"altitude"`
	RA       float64 `json:"ra"`
	Dec      float64 `json:"dec"`
}

func parseRefraction(r *http.Request) (transform.Refraction, error) {
	switch s := r.URL.Query().Get("refraction"); s {
	case "", "normal":
		return transform.RefractionNormal, nil
	case "none":
		return transform.RefractionNone, nil
	case "jplhor":
		return transform.RefractionJPLHor, nil
	default:
		return 0, fmt.Errorf("invalid refraction %q: want none, normal, or jplhor", s)
	}
}

func handleHorizon(w http.ResponseWriter, r *http.Request) {
	body, err := parseBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if body == ephemeris.Earth {
		writeError(w, http.StatusBadRequest, ephemeris.ErrEarthNotAllowed.Error())
		return
	}
	t, err := parseTime(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	obs, err := parseObserver(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	refraction, err := parseRefraction(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	eq, err := transform.Equator(body, t, obs, true, true)
	if err != nil {
		engineError(w, err)
		return
	}
	hor, err := transform.Horizon(t, obs, eq.RA, eq.Dec, refraction)
	if err != nil {
		engineError(w, err)
		return
	}
	writeJSON(w, horizonResponse{
		Body:     body.String(),
		Time:     t.String(),
		Azimuth:  hor.Azimuth,
		Altitude: hor.Altitude,
		RA:       hor.RA,
		Dec:      hor.Dec,
	})
}

type quarterEvent struct {
	Quarter int    `json:"quarter"`
	Name    string `json:"name"`
	Time    string `json:"time"`
}

type moonPhaseResponse struct {
	Time         string         `json:"time"`
	PhaseAngle   float64        `json:"phase_angle"`
	NextQuarters []quarterEvent `json:"next_quarters"`
}

var quarterNames = [4]string{"new moon", "first quarter", "full moon", "third quarter"}

func handleMoonPhase(w http.ResponseWriter, r *http.Request) {
	t, err := parseTime(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	phase, err := search.MoonPhase(t)
	if err != nil {
		engineError(w, err)
		return
	}
	resp := moonPhaseResponse{Time: t.String(), PhaseAngle: phase}

	mq, err := search.SearchMoonQuarter(t)
	if err != nil {
		engineError(w, err)
		return
	}
	for i := 0; i < 4; i++ {
		resp.NextQuarters = append(resp.NextQuarters, quarterEvent{
			Quarter: mq.Quarter,
			Name:    quarterNames[mq.Quarter],
			Time:    mq.Time.String(),
		})
		if i < 3 {
			if mq, err = search.NextMoonQuarter(mq); err != nil {
				engineError(w, err)
				return
			}
		}
	}
	writeJSON(w, resp)
}

type seasonsResponse struct {
	Year        int    `json:"year"`
	MarEquinox  string `json:"mar_equinox"`
	JunSolstice string `json:"jun_solstice"`
	SepEquinox  string `json:"sep_equinox"`
	DecSolstice string `json:"dec_solstice"`
}

func handleSeasons(w http.ResponseWriter, r *http.Request) {
	s := r.URL.Query().Get("year")
	if s == "" {
		writeError(w, http.StatusBadRequest, "missing required parameter: year")
		return
	}
	year, err := strconv.Atoi(s)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid year %q", s))
		return
	}
	// The delta-t table and solar model degrade outside recorded
	// history; refuse years far from it.
	if year < -1000 || year > 3000 {
		writeError(w, http.StatusUnprocessableEntity, fmt.Sprintf("year %d outside supported range [-1000, 3000]", year))
		return
	}
	info, err := search.Seasons(year)
	if err != nil {
		engineError(w, err)
		return
	}
	writeJSON(w, seasonsResponse{
		Year:        year,
		MarEquinox:  info.MarEquinox.String(),
		JunSolstice: info.JunSolstice.String(),
		SepEquinox:  info.SepEquinox.String(),
		DecSolstice: info.DecSolstice.String(),
	})
}
