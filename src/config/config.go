package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/apimgr/weather-chart/src/service"
)

// Output formats
const (
	OutputTUI   = "tui"
	OutputPlain = "plain"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

// DefaultLogFile is created in the working directory
const DefaultLogFile = "weather-chart.log"

// Config represents the application configuration.
// Values come from defaults, then environment, then command-line flags.
type Config struct {
	// Forecast endpoint; empty means the public Open-Meteo API
	APIURL string
	// Log file path
	LogFile string
	// celsius or fahrenheit
	Units string
	// Forecast days, 1-16
	Days int
	// tui, plain, json or yaml
	Output string
	// Write a PNG chart here instead of starting the UI
	PNGPath string
	// HTTP request timeout in seconds
	Timeout int
	NoColor bool
	Debug   bool
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		LogFile: DefaultLogFile,
		Units:   service.UnitsFahrenheit,
		Days:    7,
		Output:  OutputTUI,
		Timeout: int(service.DefaultTimeout / time.Second),
	}
}

// Load returns the default configuration with environment overrides applied
func Load() *Config {
	cfg := Default()

	if v := os.Getenv("WEATHER_CHART_API_URL"); v != "" {
		cfg.APIURL = v
	}
	if v := os.Getenv("WEATHER_CHART_LOG"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("WEATHER_CHART_UNITS"); v != "" {
		cfg.Units = strings.ToLower(v)
	}
	if v, err := strconv.Atoi(os.Getenv("WEATHER_CHART_TIMEOUT")); err == nil && v > 0 {
		cfg.Timeout = v
	}
	// NO_COLOR: any non-empty value disables color (https://no-color.org)
	if os.Getenv("NO_COLOR") != "" {
		cfg.NoColor = true
	}
	cfg.Debug = IsTruthy(os.Getenv("DEBUG"))

	return cfg
}

// Validate checks values that cannot be defaulted silently
func (c *Config) Validate() error {
	switch c.Units {
	case service.UnitsCelsius, service.UnitsFahrenheit:
	default:
		return fmt.Errorf("invalid units %q: must be celsius or fahrenheit", c.Units)
	}

	if c.Days < 1 || c.Days > service.MaxForecastDays {
		return fmt.Errorf("invalid days %d: must be between 1 and %d", c.Days, service.MaxForecastDays)
	}

	if c.Timeout < 1 {
		return fmt.Errorf("invalid timeout %d: must be at least 1 second", c.Timeout)
	}

	switch c.Output {
	case OutputTUI, OutputPlain, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("invalid output %q: must be tui, plain, json or yaml", c.Output)
	}

	return nil
}

// IsTruthy reports whether an environment value means "on".
// Accepts 1/true/yes/on/enable(d) in any case.
func IsTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "y", "on", "enable", "enabled":
		return true
	}
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	return err == nil && b
}
