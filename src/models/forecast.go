package models

import (
	"fmt"
	"math"
)

// Default location used when no usable coordinates are given (New York City)
const (
	DefaultLatitude  = 40.7128
	DefaultLongitude = -74.0060
)

// Coordinates is a latitude/longitude pair in decimal degrees
type Coordinates struct {
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

// DefaultCoordinates returns the fallback location
func DefaultCoordinates() Coordinates {
	return Coordinates{Latitude: DefaultLatitude, Longitude: DefaultLongitude}
}

// Valid reports whether both values are finite and inside their ranges
func (c Coordinates) Valid() bool {
	if math.IsNaN(c.Latitude) || math.IsNaN(c.Longitude) {
		return false
	}
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// String formats the pair as "lat,lon"
func (c Coordinates) String() string {
	return fmt.Sprintf("%.4f,%.4f", c.Latitude, c.Longitude)
}

// ForecastDay is one entry of a daily forecast
type ForecastDay struct {
	// YYYY-MM-DD, in the location's timezone
	Date    string  `json:"date" yaml:"date"`
	TempMax float64 `json:"tempMax" yaml:"temp_max"`
	// False when the API returned null for this day
	Valid bool `json:"valid" yaml:"valid"`
}

// Forecast is the ordered sequence of daily maximum temperatures for a location
type Forecast struct {
	Location Coordinates   `json:"location" yaml:"location"`
	Timezone string        `json:"timezone" yaml:"timezone"`
	Unit     string        `json:"unit" yaml:"unit"`
	Days     []ForecastDay `json:"days" yaml:"days"`
}

// Len returns the number of days
func (f *Forecast) Len() int {
	if f == nil {
		return 0
	}
	return len(f.Days)
}

// Values returns the maximum temperatures in order. Days without data are NaN.
func (f *Forecast) Values() []float64 {
	values := make([]float64, f.Len())
	for i := range values {
		if f.Days[i].Valid {
			values[i] = f.Days[i].TempMax
		} else {
			values[i] = math.NaN()
		}
	}
	return values
}

// Range returns the lowest and highest maximum over days with data
func (f *Forecast) Range() (lo, hi float64, ok bool) {
	for i := 0; i < f.Len(); i++ {
		day := f.Days[i]
		if !day.Valid {
			continue
		}
		if !ok {
			lo, hi, ok = day.TempMax, day.TempMax, true
			continue
		}
		lo = math.Min(lo, day.TempMax)
		hi = math.Max(hi, day.TempMax)
	}
	return lo, hi, ok
}
