package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/julienschmidt/httprouter"
	"planner.wayfinder.org/internal/app"
	"planner.wayfinder.org/internal/appconf"
	"planner.wayfinder.org/internal/logging"
	"planner.wayfinder.org/internal/planner"
	"planner.wayfinder.org/internal/restapi"
	"planner.wayfinder.org/internal/transit"
)

func main() {
	cfg := parseFlags()

	logger := logging.NewStructuredLogger(os.Stdout, logLevelForEnv(cfg.Env))

	var index *transit.Index
	if cfg.GTFSStaticPath != "" {
		var err error
		index, err = transit.Load(cfg.GTFSStaticPath)
		if err != nil {
			logging.LogError(logger, "failed to load GTFS feed", err,
				slog.String("source", cfg.GTFSStaticPath))
			os.Exit(1)
		}
		logger.Info("offline place index ready", slog.Int("places", index.Len()))
	}

	p := planner.New(planner.Config{
		ProviderToken:   cfg.ProviderToken,
		ProviderBaseURL: cfg.ProviderBaseURL,
		SearchCountry:   cfg.SearchCountry,
		LocalIndex:      index,
		RequireStopName: cfg.RequireStopName,
		SearchEnabled:   cfg.SearchEnabled,
		SearchDebounce:  cfg.SearchDebounce,
	}, logger)
	defer p.Shutdown()

	application := &app.Application{
		Config:  cfg,
		Logger:  logger,
		Planner: p,
	}

	api := restapi.NewRestAPI(application)
	router := httprouter.New()
	api.SetRoutes(router)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      api.WithMiddleware(router),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	logger.Info("starting server",
		slog.String("addr", srv.Addr),
		slog.String("env", cfg.Env.String()))
	err := srv.ListenAndServe()
	logger.Error(err.Error())
	os.Exit(1)
}

func logLevelForEnv(env appconf.Environment) slog.Level {
	if env == appconf.Production {
		return slog.LevelInfo
	}
	return slog.LevelDebug
}
