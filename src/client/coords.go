package client

import (
	"strconv"

	"github.com/apimgr/weather-chart/src/models"
)

// ResolveCoordinates maps positional arguments to a location.
// Exactly two numbers inside the valid ranges are used as latitude and longitude;
// anything else falls back to the default location. The bool reports whether
// the arguments were used.
func ResolveCoordinates(args []string) (models.Coordinates, bool) {
	if len(args) != 2 {
		return models.DefaultCoordinates(), false
	}

	lat, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return models.DefaultCoordinates(), false
	}
	lon, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return models.DefaultCoordinates(), false
	}

	coords := models.Coordinates{Latitude: lat, Longitude: lon}
	if !coords.Valid() {
		return models.DefaultCoordinates(), false
	}

	return coords, true
}
