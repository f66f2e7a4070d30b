package models

import (
	"math"
	"testing"
)

func TestCoordinatesValid(t *testing.T) {
	tests := []struct {
		name   string
		coords Coordinates
		want   bool
	}{
		{"default", DefaultCoordinates(), true},
		{"poles and antimeridian", Coordinates{90, -180}, true},
		{"latitude too high", Coordinates{90.5, 0}, false},
		{"longitude too low", Coordinates{0, -180.1}, false},
		{"NaN latitude", Coordinates{math.NaN(), 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.coords.Valid(); got != tt.want {
				t.Errorf("Expected Valid() = %t for %v, got %t", tt.want, tt.coords, got)
			}
		})
	}
}

func TestCoordinatesString(t *testing.T) {
	if got := DefaultCoordinates().String(); got != "40.7128,-74.0060" {
		t.Errorf("Expected '40.7128,-74.0060', got '%s'", got)
	}
}

func TestForecastValues(t *testing.T) {
	f := &Forecast{
		Days: []ForecastDay{
			{Date: "2024-01-01", TempMax: 5.0, Valid: true},
			{Date: "2024-01-02", Valid: false},
			{Date: "2024-01-03", TempMax: 7.5, Valid: true},
		},
	}

	values := f.Values()
	if len(values) != 3 {
		t.Fatalf("Expected 3 values, got %d", len(values))
	}
	if values[0] != 5.0 || values[2] != 7.5 {
		t.Errorf("Expected [5 NaN 7.5], got %v", values)
	}
	if !math.IsNaN(values[1]) {
		t.Errorf("Expected NaN for missing day, got %v", values[1])
	}
}

func TestForecastRange(t *testing.T) {
	f := &Forecast{
		Days: []ForecastDay{
			{TempMax: 12, Valid: true},
			{TempMax: -3, Valid: true},
			{TempMax: 100, Valid: false},
			{TempMax: 4, Valid: true},
		},
	}

	lo, hi, ok := f.Range()
	if !ok {
		t.Fatal("Expected ok range")
	}
	if lo != -3 || hi != 12 {
		t.Errorf("Expected range [-3, 12], got [%v, %v]", lo, hi)
	}
}

func TestForecastRangeEmpty(t *testing.T) {
	var nilForecast *Forecast
	if nilForecast.Len() != 0 {
		t.Error("Expected nil forecast to have length 0")
	}

	f := &Forecast{Days: []ForecastDay{{Date: "2024-01-01"}}}
	if _, _, ok := f.Range(); ok {
		t.Error("Expected no range when no day has data")
	}
}
