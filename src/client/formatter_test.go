package client

import (
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/apimgr/weather-chart/src/models"
)

func TestFormatForecastPlain(t *testing.T) {
	f := testForecast()
	f.Days = append(f.Days, models.ForecastDay{Date: "2024-01-03"})

	out, err := NewFormatter("plain", true).FormatForecast(f)
	if err != nil {
		t.Fatalf("FormatForecast() failed: %v", err)
	}

	expected := strings.Join([]string{
		"Daily maximum temperature at 40.7128,-74.0060 (America/New_York)",
		"2024-01-01  41.0 °F",
		"2024-01-02  45.5 °F",
		"2024-01-03  n/a",
	}, "\n")
	if out != expected {
		t.Errorf("Expected:\n%s\ngot:\n%s", expected, out)
	}
}

func TestFormatForecastPlainNoData(t *testing.T) {
	out, err := NewFormatter("plain", true).FormatForecast(&models.Forecast{})
	if err != nil {
		t.Fatalf("FormatForecast() failed: %v", err)
	}
	if out != "No weather data available" {
		t.Errorf("Expected no-data message, got %q", out)
	}
}

func TestFormatForecastJSON(t *testing.T) {
	out, err := NewFormatter("json", true).FormatForecast(testForecast())
	if err != nil {
		t.Fatalf("FormatForecast() failed: %v", err)
	}

	var decoded models.Forecast
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("Expected valid JSON, got %v:\n%s", err, out)
	}
	if decoded.Len() != 2 || decoded.Days[1].TempMax != 45.5 {
		t.Errorf("Expected 2 days ending at 45.5, got %+v", decoded.Days)
	}
	if !strings.Contains(out, `"tempMax": 41`) {
		t.Errorf("Expected camelCase tempMax key, got:\n%s", out)
	}
}

func TestFormatForecastYAML(t *testing.T) {
	out, err := NewFormatter("yaml", true).FormatForecast(testForecast())
	if err != nil {
		t.Fatalf("FormatForecast() failed: %v", err)
	}

	var decoded models.Forecast
	if err := yaml.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("Expected valid YAML, got %v:\n%s", err, out)
	}
	if decoded.Timezone != "America/New_York" || decoded.Len() != 2 {
		t.Errorf("Unexpected decoded forecast: %+v", decoded)
	}
	if !strings.Contains(out, "temp_max: 41") {
		t.Errorf("Expected snake_case temp_max key, got:\n%s", out)
	}
}
