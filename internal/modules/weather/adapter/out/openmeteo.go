package out

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"rovi/internal/modules/weather/domain"
	weatherout "rovi/internal/modules/weather/port/out"
	apperrors "rovi/internal/platform/errors"
)

const (
	defaultGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"
	defaultForecastURL  = "https://api.open-meteo.com/v1/forecast"
)

// OpenMeteoClient talks to the open-meteo geocoding and forecast endpoints.
// Neither requires an API key.
type OpenMeteoClient struct {
	httpClient   *http.Client
	geocodingURL string
	forecastURL  string
}

var _ weatherout.Geocoder = (*OpenMeteoClient)(nil)
var _ weatherout.Observer = (*OpenMeteoClient)(nil)

func NewOpenMeteoClient() *OpenMeteoClient {
	return &OpenMeteoClient{
		httpClient:   &http.Client{Timeout: 10 * time.Second},
		geocodingURL: defaultGeocodingURL,
		forecastURL:  defaultForecastURL,
	}
}

// NewOpenMeteoClientWithBase points the client at alternate endpoints.
func NewOpenMeteoClientWithBase(geocodingURL, forecastURL string) *OpenMeteoClient {
	c := NewOpenMeteoClient()
	c.geocodingURL = geocodingURL
	c.forecastURL = forecastURL
	return c
}

type geocodingResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Timezone  string  `json:"timezone"`
	} `json:"results"`
}

func (c *OpenMeteoClient) Locate(ctx context.Context, city string) (domain.Location, error) {
	query := url.Values{}
	query.Set("name", city)
	query.Set("count", "1")

	var decoded geocodingResponse
	if err := c.getJSON(ctx, c.geocodingURL+"?"+query.Encode(), &decoded); err != nil {
		return domain.Location{}, fmt.Errorf("geocode %q: %w", city, err)
	}
	if len(decoded.Results) == 0 {
		return domain.Location{}, fmt.Errorf("geocode %q: %w", city, apperrors.ErrCityNotFound)
	}
	first := decoded.Results[0]
	return domain.Location{
		Name:      first.Name,
		Latitude:  first.Latitude,
		Longitude: first.Longitude,
		Timezone:  first.Timezone,
	}, nil
}

type forecastResponse struct {
	Timezone string `json:"timezone"`
	Current  struct {
		Temperature float64 `json:"temperature_2m"`
		WeatherCode int     `json:"weather_code"`
	} `json:"current"`
}

func (c *OpenMeteoClient) Observe(ctx context.Context, location domain.Location) (domain.Observation, error) {
	query := url.Values{}
	query.Set("latitude", fmt.Sprintf("%.4f", location.Latitude))
	query.Set("longitude", fmt.Sprintf("%.4f", location.Longitude))
	query.Set("current", "temperature_2m,weather_code")
	query.Set("timezone", "auto")

	var decoded forecastResponse
	if err := c.getJSON(ctx, c.forecastURL+"?"+query.Encode(), &decoded); err != nil {
		return domain.Observation{}, fmt.Errorf("forecast for %s: %w", location.Name, err)
	}
	return domain.Observation{
		Temperature: decoded.Current.Temperature,
		Code:        decoded.Current.WeatherCode,
		Timezone:    decoded.Timezone,
	}, nil
}

func (c *OpenMeteoClient) getJSON(ctx context.Context, rawURL string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
