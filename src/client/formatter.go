package client

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/apimgr/weather-chart/src/config"
	"github.com/apimgr/weather-chart/src/models"
	"github.com/apimgr/weather-chart/src/renderer"
)

// Formatter handles non-interactive output formatting
type Formatter struct {
	Format  string
	NoColor bool
}

// NewFormatter creates a new formatter
func NewFormatter(format string, noColor bool) *Formatter {
	return &Formatter{
		Format:  format,
		NoColor: noColor,
	}
}

// FormatForecast formats forecast data
func (f *Formatter) FormatForecast(forecast *models.Forecast) (string, error) {
	switch f.Format {
	case config.OutputJSON:
		return f.formatJSON(forecast)
	case config.OutputYAML:
		return f.formatYAML(forecast)
	// plain
	default:
		return f.formatPlainForecast(forecast), nil
	}
}

// formatJSON formats data as indented JSON
func (f *Formatter) formatJSON(data interface{}) (string, error) {
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode JSON: %w", err)
	}
	return string(out), nil
}

// formatYAML formats data as YAML
func (f *Formatter) formatYAML(data interface{}) (string, error) {
	out, err := yaml.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to encode YAML: %w", err)
	}
	return strings.TrimSuffix(string(out), "\n"), nil
}

// formatPlainForecast prints one "date  value unit" line per day
func (f *Formatter) formatPlainForecast(forecast *models.Forecast) string {
	if forecast.Len() == 0 {
		return renderer.NoDataMessage
	}

	var lines []string

	header := fmt.Sprintf("Daily maximum temperature at %s", forecast.Location.String())
	if forecast.Timezone != "" {
		header += fmt.Sprintf(" (%s)", forecast.Timezone)
	}
	lines = append(lines, renderer.Colorize(header, renderer.ColorPurple, true, f.NoColor))

	for _, day := range forecast.Days {
		value := "n/a"
		if day.Valid {
			value = strings.TrimSpace(fmt.Sprintf("%.1f %s", day.TempMax, forecast.Unit))
		}
		lines = append(lines, fmt.Sprintf("%s  %s",
			renderer.Colorize(day.Date, renderer.ColorCyan, false, f.NoColor),
			renderer.Colorize(value, renderer.ColorYellow, false, f.NoColor)))
	}

	return strings.Join(lines, "\n")
}
