package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

func testHandler() http.Handler {
	return NewServer(":0", testLogger(), RateConfig{}).HTTPServer().Handler
}

func TestPositionValidation(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantStatus int
	}{
		{"missing body", "?lat=0&lon=0", http.StatusBadRequest},
		{"unknown body", "?body=Vulcan&lat=0&lon=0", http.StatusBadRequest},
		{"earth as target", "?body=Earth&lat=0&lon=0", http.StatusBadRequest},
		{"missing observer", "?body=Mars", http.StatusBadRequest},
		{"latitude out of range", "?body=Mars&lat=91&lon=0", http.StatusBadRequest},
		{"bad time", "?body=Mars&lat=0&lon=0&time=yesterday", http.StatusBadRequest},
		{"valid", "?body=Mars&lat=51.5&lon=0&time=2024-06-01T12:00:00Z", http.StatusOK},
		{"valid ofdate", "?body=Moon&lat=-33.9&lon=18.4&ofdate=true", http.StatusOK},
	}
	handler := testHandler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/v1/position"+tt.query, nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body %s)", w.Code, tt.wantStatus, w.Body.String())
			}
		})
	}
}

func TestPositionResponseShape(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/v1/position?body=Jupiter&lat=48.9&lon=2.4&time=2024-01-15T22:00:00Z", nil)
	w := httptest.NewRecorder()
	testHandler().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	var resp positionResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Body != "Jupiter" || resp.Frame != "j2000" {
		t.Errorf("body=%q frame=%q, want Jupiter/j2000", resp.Body, resp.Frame)
	}
	if resp.RA < 0 || resp.RA >= 24 || resp.Dec < -90 || resp.Dec > 90 || resp.Dist <= 0 {
		t.Errorf("implausible coordinates: %+v", resp)
	}
}

func TestHorizonEndpoint(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/v1/horizon?body=Sun&lat=51.5&lon=0&time=2024-06-21T12:00:00Z", nil)
	w := httptest.NewRecorder()
	testHandler().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	var resp horizonResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	// Near noon on the June solstice the Sun is high in the southern
	// sky from London.
	if resp.Altitude < 55.0 || resp.Altitude > 65.0 {
		t.Errorf("solstice noon altitude = %f, want about 61", resp.Altitude)
	}
	if resp.Azimuth < 150.0 || resp.Azimuth > 210.0 {
		t.Errorf("solstice noon azimuth = %f, want southerly", resp.Azimuth)
	}
}

func TestHorizonRejectsBadRefraction(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/v1/horizon?body=Sun&lat=0&lon=0&refraction=extreme", nil)
	w := httptest.NewRecorder()
	testHandler().ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestMoonPhaseEndpoint(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/v1/moonphase?time=2000-01-01T12:00:00Z", nil)
	w := httptest.NewRecorder()
	testHandler().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	var resp moonPhaseResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.PhaseAngle < 0 || resp.PhaseAngle >= 360 {
		t.Errorf("phase angle %f out of [0, 360)", resp.PhaseAngle)
	}
	if len(resp.NextQuarters) != 4 {
		t.Fatalf("got %d quarters, want 4", len(resp.NextQuarters))
	}
	// January 2000 began just before a new moon.
	if resp.NextQuarters[0].Quarter != 0 || resp.NextQuarters[0].Name != "new moon" {
		t.Errorf("first quarter event = %+v, want new moon", resp.NextQuarters[0])
	}
	for i := 1; i < 4; i++ {
		if resp.NextQuarters[i].Quarter != (resp.NextQuarters[i-1].Quarter+1)%4 {
			t.Errorf("quarter sequence broken at %d: %+v", i, resp.NextQuarters)
		}
	}
}

func TestSeasonsEndpoint(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/v1/seasons?year=2024", nil)
	w := httptest.NewRecorder()
	testHandler().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	var resp seasonsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Year != 2024 {
		t.Errorf("year = %d, want 2024", resp.Year)
	}
	if resp.MarEquinox[:10] != "2024-03-20" {
		t.Errorf("March equinox = %s, want on 2024-03-20", resp.MarEquinox)
	}
	if resp.JunSolstice[:7] != "2024-06" || resp.DecSolstice[:7] != "2024-12" {
		t.Errorf("solstices in wrong months: %+v", resp)
	}
}

func TestSeasonsValidation(t *testing.T) {
	handler := testHandler()
	for _, tt := range []struct {
		query      string
		wantStatus int
	}{
		{"", http.StatusBadRequest},
		{"?year=abc", http.StatusBadRequest},
		{"?year=9999", http.StatusUnprocessableEntity},
	} {
		req := httptest.NewRequest("GET", "/api/v1/seasons"+tt.query, nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		if w.Code != tt.wantStatus {
			t.Errorf("%q: status = %d, want %d", tt.query, w.Code, tt.wantStatus)
		}
	}
}

func TestRateLimit(t *testing.T) {
	handler := NewServer(":0", testLogger(), RateConfig{Enabled: true, RPS: 1, Burst: 2}).HTTPServer().Handler
	codes := make(map[int]int)
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest("GET", "/api/v1/seasons?year=2024", nil)
		req.RemoteAddr = "192.0.2.7:1234"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		codes[w.Code]++
	}
	if codes[http.StatusOK] != 2 {
		t.Errorf("got %d successful requests, want burst of 2", codes[http.StatusOK])
	}
	if codes[http.StatusTooManyRequests] != 3 {
		t.Errorf("got %d throttled requests, want 3", codes[http.StatusTooManyRequests])
	}

	// Probes bypass the limiter.
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest("GET", "/healthz", nil)
		req.RemoteAddr = "192.0.2.7:1234"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("probe %d throttled with status %d", i, w.Code)
		}
	}
}
