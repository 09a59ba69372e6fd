package owm

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/wxterm/wxterm/internal/units"
)

func mustCoord(t *testing.T, lat, lon float64) units.Coord {
	t.Helper()
	c, err := units.NewCoord(lat, lon)
	if err != nil {
		t.Fatalf("NewCoord(%v, %v): %v", lat, lon, err)
	}
	return c
}

func newTestClient(baseURL string, maxRetries int) *Client {
	return NewClient(Config{
		APIKey:            "test-key",
		BaseURL:           baseURL,
		AttemptTimeout:    2 * time.Second,
		MaxRetries:        maxRetries,
		InitialBackoff:    time.Millisecond,
		MaxBackoff:        5 * time.Millisecond,
		RequestsPerSecond: 1000,
		Burst:             100,
	})
}

func serveFixture(t *testing.T, w http.ResponseWriter, name string) {
	t.Helper()
	data, err := os.ReadFile("testdata/" + name)
	if err != nil {
		t.Fatalf("reading fixture %s: %v", name, err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func TestClient_CurrentWeather(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("appid"); got != "test-key" {
			t.Errorf("appid = %q, want test-key", got)
		}
		if got := r.URL.Query().Get("q"); got != "London" {
			t.Errorf("q = %q, want London", got)
		}
		if r.Header.Get("X-Request-Id") == "" {
			t.Error("X-Request-Id header not set")
		}
		if r.Header.Get("User-Agent") == "" {
			t.Error("User-Agent header not set")
		}
		serveFixture(t, w, "weather.json")
	}))
	defer server.Close()

	client := newTestClient(server.URL, 0)
	cur, err := client.CurrentWeather(context.Background(), Location{City: "London"})
	if err != nil {
		t.Fatalf("CurrentWeather() error = %v", err)
	}
	if *cur.Name != "London" {
		t.Errorf("Name = %q, want London", *cur.Name)
	}
}

func TestClient_Forecast_CountParam(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("cnt"); got != "3" {
			t.Errorf("cnt = %q, want 3", got)
		}
		serveFixture(t, w, "forecast.json")
	}))
	defer server.Close()

	client := newTestClient(server.URL, 0)
	fc, err := client.Forecast(context.Background(), Location{City: "London"}, 3)
	if err != nil {
		t.Fatalf("Forecast() error = %v", err)
	}
	if len(fc.List) != 3 {
		t.Errorf("len(List) = %d, want 3", len(fc.List))
	}
}

func TestClient_RetriesTransientThenSucceeds(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) <= 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		serveFixture(t, w, "weather.json")
	}))
	defer server.Close()

	client := newTestClient(server.URL, 3)
	_, err := client.CurrentWeather(context.Background(), Location{City: "London"})
	if err != nil {
		t.Fatalf("CurrentWeather() error = %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 3 {
		t.Errorf("server saw %d calls, want 3", got)
	}
}

func TestClient_RetryCeiling(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newTestClient(server.URL, 2)
	_, err := client.CurrentWeather(context.Background(), Location{City: "London"})
	if err == nil {
		t.Fatal("CurrentWeather() expected error")
	}
	// Initial attempt plus two retries.
	if got := atomic.LoadInt32(&calls); got != 3 {
		t.Errorf("server saw %d calls, want 3", got)
	}

	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("error = %v, want wrapped StatusError", err)
	}
	if se.Code != http.StatusServiceUnavailable {
		t.Errorf("Code = %d, want 503", se.Code)
	}
	if !se.Transient() {
		t.Error("503 should classify as transient")
	}
}

func TestClient_PermanentFailureNoRetry(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"cod":401,"message":"Invalid API key"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, 3)
	_, err := client.CurrentWeather(context.Background(), Location{City: "London"})
	if err == nil {
		t.Fatal("CurrentWeather() expected error")
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("server saw %d calls, want 1 (no retry on 401)", got)
	}

	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("error = %v, want wrapped StatusError", err)
	}
	if se.Code != http.StatusUnauthorized {
		t.Errorf("Code = %d, want 401", se.Code)
	}
	if se.Transient() {
		t.Error("401 should not classify as transient")
	}

	var ee *EndpointError
	if !errors.As(err, &ee) || ee.Endpoint != "weather" {
		t.Errorf("error not tagged with weather endpoint: %v", err)
	}
}

func TestClient_MalformedResponseNoRetry(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Write([]byte(`{"name":"London"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, 3)
	_, err := client.CurrentWeather(context.Background(), Location{City: "London"})

	var me *MalformedResponseError
	if !errors.As(err, &me) {
		t.Fatalf("error = %v, want wrapped MalformedResponseError", err)
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("server saw %d calls, want 1 (no retry on decode failure)", got)
	}
}

func TestClient_FetchBoth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/weather":
			serveFixture(t, w, "weather.json")
		case "/forecast":
			serveFixture(t, w, "forecast.json")
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := newTestClient(server.URL, 0)
	cur, fc, err := client.FetchBoth(context.Background(), Location{City: "London"}, 3)
	if err != nil {
		t.Fatalf("FetchBoth() error = %v", err)
	}
	if cur == nil || fc == nil {
		t.Fatal("FetchBoth() returned nil payloads")
	}
	if *cur.Name != "London" || len(fc.List) != 3 {
		t.Errorf("unexpected payloads: %q, %d entries", *cur.Name, len(fc.List))
	}
}

func TestClient_FetchBothFailsFast(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/weather":
			serveFixture(t, w, "weather.json")
		case "/forecast":
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := newTestClient(server.URL, 0)
	_, _, err := client.FetchBoth(context.Background(), Location{City: "Nowhere"}, 3)
	if err == nil {
		t.Fatal("FetchBoth() expected error")
	}

	var ee *EndpointError
	if !errors.As(err, &ee) {
		t.Fatalf("error = %v, want EndpointError", err)
	}
	if ee.Endpoint != "forecast" {
		t.Errorf("Endpoint = %q, want forecast", ee.Endpoint)
	}
}

func TestClient_CoordinateQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("lat") == "" || q.Get("lon") == "" {
			t.Errorf("lat/lon not set: %v", q)
		}
		if q.Get("q") != "" {
			t.Errorf("q should not be set for coordinate query")
		}
		serveFixture(t, w, "weather.json")
	}))
	defer server.Close()

	coord := mustCoord(t, 51.5074, -0.1278)
	client := newTestClient(server.URL, 0)
	if _, err := client.CurrentWeather(context.Background(), Location{Coord: &coord}); err != nil {
		t.Fatalf("CurrentWeather() error = %v", err)
	}
}

func TestClient_ContextCancellation(t *testing.T) {
	block := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer server.Close()
	defer close(block)

	client := newTestClient(server.URL, 5)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	_, err := client.CurrentWeather(ctx, Location{City: "London"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}
