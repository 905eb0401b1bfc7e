package appconf

import "time"

// Environment names the operating environment for the application.
type Environment int

const (
	Development Environment = iota
	Test
	Production
)

func (e Environment) String() string {
	switch e {
	case Test:
		return "test"
	case Production:
		return "production"
	default:
		return "development"
	}
}

// EnvFlagToEnvironment maps the -env flag value to an Environment.
// Unknown values fall back to development.
func EnvFlagToEnvironment(flag string) Environment {
	switch flag {
	case "test":
		return Test
	case "production":
		return Production
	default:
		return Development
	}
}

// Config holds all the configuration settings for the application. The
// values are read from command-line flags when the application starts.
type Config struct {
	Port      int
	Env       Environment
	ApiKeys   []string
	RateLimit int

	// Provider settings for the directions/geocoding HTTP API. The
	// token here is a server-wide default; trips may carry their own.
	ProviderToken   string
	ProviderBaseURL string
	SearchCountry   string

	// Optional static GTFS feed backing the offline place index.
	GTFSStaticPath string

	// Defaults applied to newly created trips.
	RequireStopName bool
	SearchEnabled   bool
	SearchDebounce  time.Duration
}
