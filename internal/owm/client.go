package owm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/wxterm/wxterm/internal/units"
)

const (
	defaultBaseURL = "https://api.openweathermap.org/data/2.5"
	userAgent      = "wxterm/1.0 (github.com/wxterm/wxterm)"

	// Free-tier OpenWeatherMap allows 60 calls/minute.
	defaultRPS   = 1.0
	defaultBurst = 2
)

// Location selects the place to fetch weather for. Exactly one selector
// must be set; enforcing that is the configuration layer's contract.
type Location struct {
	// City is a "name" or "name,country" query.
	City string
	// Zip is a "zipcode,country" query.
	Zip string
	// Coord is a latitude/longitude query.
	Coord *units.Coord
}

func (l Location) String() string {
	switch {
	case l.City != "":
		return l.City
	case l.Zip != "":
		return l.Zip
	case l.Coord != nil:
		return l.Coord.String()
	default:
		return "(no location)"
	}
}

// query writes the selector into API query parameters.
func (l Location) query(params url.Values) {
	switch {
	case l.City != "":
		params.Set("q", l.City)
	case l.Zip != "":
		params.Set("zip", l.Zip)
	case l.Coord != nil:
		params.Set("lat", fmt.Sprintf("%f", float64(l.Coord.Lat)))
		params.Set("lon", fmt.Sprintf("%f", float64(l.Coord.Lon)))
	}
}

// Config carries client construction parameters. Zero values fall back to
// defaults.
type Config struct {
	APIKey  string
	BaseURL string

	// AttemptTimeout bounds each HTTP attempt; exceeding it counts as a
	// transient failure.
	AttemptTimeout time.Duration

	// MaxRetries is the number of retries after the first attempt.
	MaxRetries     int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration

	RequestsPerSecond float64
	Burst             int

	// Logger, when set, receives one line per HTTP attempt.
	Logger *log.Logger
}

// Client fetches current conditions and forecasts from OpenWeatherMap.
// Transient failures (timeouts, connection errors, 429/5xx) are retried
// with exponential backoff; permanent failures surface immediately. The
// client keeps no per-call state beyond its rate limiter and breaker.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client

	attemptTimeout time.Duration
	maxRetries     int
	initialBackoff time.Duration
	maxBackoff     time.Duration

	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker
	logger  *log.Logger
}

// NewClient creates a Client from cfg, applying defaults for unset fields.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.AttemptTimeout <= 0 {
		cfg.AttemptTimeout = 10 * time.Second
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.InitialBackoff <= 0 {
		cfg.InitialBackoff = 500 * time.Millisecond
	}
	if cfg.MaxBackoff <= 0 {
		cfg.MaxBackoff = 5 * time.Second
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = defaultRPS
	}
	if cfg.Burst <= 0 {
		cfg.Burst = defaultBurst
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openweathermap",
		MaxRequests: 5,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 16
		},
	})

	return &Client{
		apiKey:         cfg.APIKey,
		baseURL:        cfg.BaseURL,
		httpClient:     &http.Client{Timeout: cfg.AttemptTimeout},
		attemptTimeout: cfg.AttemptTimeout,
		maxRetries:     cfg.MaxRetries,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		limiter:        rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		breaker:        cb,
		logger:         cfg.Logger,
	}
}

// CurrentWeather fetches current conditions for loc. Values arrive in the
// provider's canonical units (Kelvin, m/s, hPa); display conversion happens
// downstream.
func (c *Client) CurrentWeather(ctx context.Context, loc Location) (*CurrentResponse, error) {
	body, err := c.get(ctx, "weather", loc, nil)
	if err != nil {
		return nil, &EndpointError{Endpoint: "weather", Err: err}
	}
	cur, err := DecodeCurrent(body)
	if err != nil {
		return nil, &EndpointError{Endpoint: "weather", Err: err}
	}
	return cur, nil
}

// Forecast fetches up to count forecast timesteps for loc.
func (c *Client) Forecast(ctx context.Context, loc Location, count int) (*ForecastResponse, error) {
	extra := url.Values{}
	if count > 0 {
		extra.Set("cnt", fmt.Sprintf("%d", count))
	}
	body, err := c.get(ctx, "forecast", loc, extra)
	if err != nil {
		return nil, &EndpointError{Endpoint: "forecast", Err: err}
	}
	fc, err := DecodeForecast(body)
	if err != nil {
		return nil, &EndpointError{Endpoint: "forecast", Err: err}
	}
	return fc, nil
}

// FetchBoth issues the current-conditions and forecast calls concurrently.
// Both must succeed; the first permanent failure cancels the sibling call.
func (c *Client) FetchBoth(ctx context.Context, loc Location, count int) (*CurrentResponse, *ForecastResponse, error) {
	g, ctx := errgroup.WithContext(ctx)

	var cur *CurrentResponse
	var fc *ForecastResponse

	g.Go(func() error {
		var err error
		cur, err = c.CurrentWeather(ctx, loc)
		return err
	})
	g.Go(func() error {
		var err error
		fc, err = c.Forecast(ctx, loc, count)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return cur, fc, nil
}

// get runs the retry loop around attempts against one endpoint path.
func (c *Client) get(ctx context.Context, path string, loc Location, extra url.Values) ([]byte, error) {
	var attempt int
	var lastErr error

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		body, err := c.attemptGet(ctx, path, loc, extra, attempt)
		if err == nil {
			return body, nil
		}
		if ctx.Err() != nil {
			// Caller canceled; do not reclassify as transient.
			return nil, ctx.Err()
		}
		if !isTransient(err) {
			return nil, err
		}

		lastErr = err
		if attempt >= c.maxRetries {
			return nil, fmt.Errorf("giving up after %d attempts: %w", attempt+1, lastErr)
		}

		delay := c.initialBackoff * time.Duration(math.Pow(2, float64(attempt)))
		if delay > c.maxBackoff {
			delay = c.maxBackoff
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}

		attempt++
	}
}

// attemptGet performs a single HTTP attempt through the circuit breaker.
func (c *Client) attemptGet(ctx context.Context, path string, loc Location, extra url.Values, attempt int) ([]byte, error) {
	params := url.Values{}
	loc.query(params)
	params.Set("appid", c.apiKey)
	for k, vs := range extra {
		for _, v := range vs {
			params.Add(k, v)
		}
	}

	reqURL := fmt.Sprintf("%s/%s?%s", c.baseURL, path, params.Encode())

	attemptCtx, cancel := context.WithTimeout(ctx, c.attemptTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	if c.logger != nil {
		c.logger.Printf("GET /%s for %s (attempt %d)", path, loc, attempt+1)
	}

	result, err := c.breaker.Execute(func() (interface{}, error) {
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("reading response body: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			return nil, &StatusError{Code: resp.StatusCode, Body: truncate(string(body), 200)}
		}
		return body, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("circuit breaker open: %w", err)
		}
		return nil, err
	}

	body, ok := result.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected result type from circuit breaker")
	}
	return body, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
