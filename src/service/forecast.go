package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/apimgr/weather-chart/src/models"
)

const (
	// DefaultBaseURL is the Open-Meteo forecast endpoint
	DefaultBaseURL = "https://api.open-meteo.com/v1/forecast"
	// DefaultTimeout is the default HTTP request timeout
	DefaultTimeout = 30 * time.Second
	// MaxForecastDays is the longest forecast Open-Meteo serves
	MaxForecastDays = 16
	// maxResponseSize caps how much of a response body is read
	maxResponseSize = 1 << 20
)

// Temperature units accepted by the API
const (
	UnitsCelsius    = "celsius"
	UnitsFahrenheit = "fahrenheit"
)

// OpenMeteoDailyResponse is the subset of the Open-Meteo forecast response we request.
// Pointers tell a missing field apart from a zero value.
type OpenMeteoDailyResponse struct {
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
	Timezone   string   `json:"timezone"`
	DailyUnits struct {
		Temperature2mMax string `json:"temperature_2m_max"`
	} `json:"daily_units"`
	Daily *struct {
		Time             []string   `json:"time"`
		Temperature2mMax []*float64 `json:"temperature_2m_max"`
	} `json:"daily"`
}

// ForecastOptions controls what is asked of the API
type ForecastOptions struct {
	// Days is the number of forecast days; 0 leaves the API default
	Days int
	// Units is UnitsCelsius or UnitsFahrenheit; empty leaves the API default
	Units string
}

// ForecastService fetches daily maximum temperatures from Open-Meteo
type ForecastService struct {
	client    *http.Client
	timeout   time.Duration
	baseURL   string
	userAgent string
}

// Option configures a ForecastService
type Option func(*ForecastService)

// WithBaseURL points the service at another endpoint
func WithBaseURL(baseURL string) Option {
	return func(s *ForecastService) {
		if baseURL != "" {
			s.baseURL = strings.TrimSuffix(baseURL, "/")
		}
	}
}

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(client *http.Client) Option {
	return func(s *ForecastService) {
		if client != nil {
			s.client = client
		}
	}
}

// WithTimeout sets the request timeout. An injected client is copied, not modified.
func WithTimeout(timeout time.Duration) Option {
	return func(s *ForecastService) {
		if timeout > 0 {
			s.timeout = timeout
		}
	}
}

// WithUserAgent sets the User-Agent header sent with requests
func WithUserAgent(userAgent string) Option {
	return func(s *ForecastService) {
		s.userAgent = userAgent
	}
}

// NewForecastService creates a new forecast service
func NewForecastService(opts ...Option) *ForecastService {
	s := &ForecastService{
		client: &http.Client{
			Timeout: DefaultTimeout,
		},
		baseURL:   DefaultBaseURL,
		userAgent: "weather-chart",
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.timeout > 0 {
		client := *s.client
		client.Timeout = s.timeout
		s.client = &client
	}
	return s
}

// BaseURL returns the endpoint requests are sent to
func (s *ForecastService) BaseURL() string {
	return s.baseURL
}

// ForecastURL builds the request URL for a location
func (s *ForecastService) ForecastURL(coords models.Coordinates, opts ForecastOptions) string {
	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%.4f", coords.Latitude))
	params.Set("longitude", fmt.Sprintf("%.4f", coords.Longitude))
	params.Set("daily", "temperature_2m_max")
	params.Set("timezone", "auto")
	if opts.Days > 0 {
		params.Set("forecast_days", strconv.Itoa(opts.Days))
	}
	if opts.Units != "" {
		params.Set("temperature_unit", opts.Units)
	}

	return s.baseURL + "?" + params.Encode()
}

// GetForecast retrieves the daily maximum temperatures for a location.
// It makes exactly one request; there is no retry.
func (s *ForecastService) GetForecast(ctx context.Context, coords models.Coordinates, opts ForecastOptions) (*models.Forecast, error) {
	apiURL := s.ForecastURL(coords, opts)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, &RequestError{URL: apiURL, Err: err}
	}
	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &RequestError{URL: apiURL, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, &RequestError{URL: apiURL, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newAPIError(resp.StatusCode, body)
	}

	return ParseForecast(body, coords)
}

// ParseForecast decodes an Open-Meteo daily response body.
// requested fills in the location when the body does not echo it.
func ParseForecast(body []byte, requested models.Coordinates) (*models.Forecast, error) {
	var data OpenMeteoDailyResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, &DecodeError{Err: err}
	}

	if data.Daily == nil {
		return nil, &DecodeError{Err: errors.New("response has no daily data")}
	}
	if data.Daily.Time == nil || data.Daily.Temperature2mMax == nil {
		return nil, &DecodeError{Err: errors.New("daily data has no time or temperature_2m_max")}
	}
	if len(data.Daily.Time) != len(data.Daily.Temperature2mMax) {
		return nil, &DecodeError{Err: fmt.Errorf("daily arrays differ in length: %d dates, %d temperatures",
			len(data.Daily.Time), len(data.Daily.Temperature2mMax))}
	}

	forecast := &models.Forecast{
		Location: requested,
		Timezone: data.Timezone,
		Unit:     data.DailyUnits.Temperature2mMax,
		Days:     make([]models.ForecastDay, len(data.Daily.Time)),
	}
	if data.Latitude != nil && data.Longitude != nil {
		forecast.Location = models.Coordinates{Latitude: *data.Latitude, Longitude: *data.Longitude}
	}

	for i, date := range data.Daily.Time {
		day := models.ForecastDay{Date: date}
		if v := data.Daily.Temperature2mMax[i]; v != nil {
			day.TempMax = *v
			day.Valid = true
		}
		forecast.Days[i] = day
	}

	return forecast, nil
}

// newAPIError builds an APIError, picking up Open-Meteo's {"error":true,"reason":"..."} body
func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status}

	var errorResp struct {
		Error  bool   `json:"error"`
		Reason string `json:"reason"`
	}
	if err := json.Unmarshal(body, &errorResp); err == nil && errorResp.Reason != "" {
		apiErr.Reason = errorResp.Reason
	}

	return apiErr
}
