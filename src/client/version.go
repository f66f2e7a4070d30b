package client

// Version information (set by main via ldflags)
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// projectName is used in the User-Agent even if the binary is renamed
const projectName = "weather-chart"

// UserAgent returns the User-Agent string for API requests
func UserAgent() string {
	return projectName + "/" + Version
}
