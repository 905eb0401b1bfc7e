package main

import (
	"flag"
	"strings"

	"planner.wayfinder.org/internal/appconf"
	"planner.wayfinder.org/internal/planner"
)

// parseFlags reads the application configuration from command-line
// flags.
func parseFlags() appconf.Config {
	var cfg appconf.Config
	var envFlag string
	var apiKeysFlag string

	flag.IntVar(&cfg.Port, "port", 4000, "API server port")
	flag.StringVar(&envFlag, "env", "development", "Environment (development|test|production)")
	flag.StringVar(&apiKeysFlag, "api-keys", "test", "Comma separated API keys")
	flag.IntVar(&cfg.RateLimit, "rate-limit", 0, "Requests per second per API key (0 disables)")
	flag.StringVar(&cfg.ProviderToken, "provider-token", "", "Default access token for the directions/geocoding provider")
	flag.StringVar(&cfg.ProviderBaseURL, "provider-base-url", "", "Override the provider base URL")
	flag.StringVar(&cfg.SearchCountry, "search-country", "pe", "ISO country code used to bias location search")
	flag.StringVar(&cfg.GTFSStaticPath, "gtfs-path", "", "Path or URL of a static GTFS zip backing offline search")
	flag.BoolVar(&cfg.RequireStopName, "require-stop-name", false, "Reject stop placement without a pending name")
	flag.BoolVar(&cfg.SearchEnabled, "search-enabled", true, "Enable location search on new trips")
	flag.DurationVar(&cfg.SearchDebounce, "search-debounce", planner.DefaultDebounce, "Delay before a typed query is dispatched")
	flag.Parse()

	cfg.Env = appconf.EnvFlagToEnvironment(envFlag)
	if apiKeysFlag != "" {
		cfg.ApiKeys = strings.Split(apiKeysFlag, ",")
		for i := range cfg.ApiKeys {
			cfg.ApiKeys[i] = strings.TrimSpace(cfg.ApiKeys[i])
		}
	}
	return cfg
}
