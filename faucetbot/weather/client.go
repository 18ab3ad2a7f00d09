package weather

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/tidwall/gjson"
)

const (
	baseURL        = "https://api.openweathermap.org/data/2.5"
	requestTimeout = 10 * time.Second
	maxRetries     = 2
)

var zipPattern = regexp.MustCompile(`^\d{5}(-\d{4})?$`)

type Config struct {
	APIKey string `toml:"api_key"`
	Units  string `toml:"units"` // "metric" or "imperial"
}

// Client queries OpenWeatherMap for current conditions.
type Client struct {
	httpClient *http.Client
	cfg        Config
}

func NewClient(cfg Config) *Client {
	if cfg.Units == "" {
		cfg.Units = "metric"
	}
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		cfg:        cfg,
	}
}

func (c *Client) Enabled() bool {
	return c.cfg.APIKey != ""
}

// IsZipCode reports whether the query looks like a US ZIP code rather
// than a city name.
func IsZipCode(query string) bool {
	return zipPattern.MatchString(query)
}

// Current fetches current conditions for a city name or ZIP code.
func (c *Client) Current(ctx context.Context, query string) (*Report, error) {
	params := url.Values{}
	if IsZipCode(query) {
		params.Set("zip", query+",us")
	} else {
		params.Set("q", query)
	}
	return c.fetch(ctx, params)
}

func (c *Client) fetch(ctx context.Context, params url.Values) (*Report, error) {
	params.Set("appid", c.cfg.APIKey)
	params.Set("units", c.cfg.Units)
	endpoint := fmt.Sprintf("%s/weather?%s", baseURL, params.Encode())

	var body string
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return backoff.Permanent(err)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		var buf bytes.Buffer
		if _, err := buf.ReadFrom(resp.Body); err != nil {
			return err
		}

		switch {
		case resp.StatusCode == http.StatusOK:
			body = buf.String()
			return nil
		case resp.StatusCode == http.StatusNotFound:
			return backoff.Permanent(fmt.Errorf("location not found"))
		case resp.StatusCode == http.StatusUnauthorized:
			return backoff.Permanent(fmt.Errorf("weather API key rejected"))
		case resp.StatusCode >= 500:
			return fmt.Errorf("weather API returned status %d", resp.StatusCode)
		default:
			return backoff.Permanent(fmt.Errorf("weather API returned status %d", resp.StatusCode))
		}
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries),
		ctx,
	)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}

	return parseReport(body, c.cfg.Units), nil
}

func parseReport(body, units string) *Report {
	data := gjson.Parse(body)
	return &Report{
		City:        data.Get("name").String(),
		Country:     data.Get("sys.country").String(),
		Condition:   data.Get("weather.0.main").String(),
		Description: data.Get("weather.0.description").String(),
		Temp:        data.Get("main.temp").Float(),
		FeelsLike:   data.Get("main.feels_like").Float(),
		Humidity:    int(data.Get("main.humidity").Int()),
		WindSpeed:   data.Get("wind.speed").Float(),
		WindDeg:     data.Get("wind.deg").Float(),
		Units:       units,
	}
}
