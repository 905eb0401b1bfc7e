package app

import (
	"log/slog"

	"planner.wayfinder.org/internal/appconf"
	"planner.wayfinder.org/internal/planner"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware: the configuration, a logger, and the planner holding
// all trip sessions.
type Application struct {
	Config  appconf.Config
	Logger  *slog.Logger
	Planner *planner.Planner
}
