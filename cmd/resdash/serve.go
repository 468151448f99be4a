package main

import (
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/campusops/resdash/internal/exitcode"
	"github.com/campusops/resdash/internal/logging"
	"github.com/campusops/resdash/internal/normalize"
	"github.com/campusops/resdash/internal/reservations"
	"github.com/campusops/resdash/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Load the reservations export and serve the dashboard API",
	RunE:  runServe,
}

func init() {
	f := serveCmd.Flags()
	f.StringVar(&cfg.File, "file", cfg.File, "Reservations export to load at startup")
	f.StringVar(&cfg.Listen, "listen", cfg.Listen, "HTTP listen address")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)

	// A missing or rejected startup file is not fatal: the server comes up
	// empty and waits for an upload, like the dashboard with no export yet.
	ds, err := reservations.Load(log, cfg.File, normalize.Options{DayFirst: cfg.DayFirst})
	if err != nil {
		log.Warn().Err(err).Str("file", cfg.File).
			Msg("starting without a dataset; upload one via POST /api/upload")
		ds = nil
	}

	srv := web.NewServer(&cfg, log, ds)
	log.Info().Str("listen", cfg.Listen).Msg("dashboard API listening")
	if err := http.ListenAndServe(cfg.Listen, srv.Handler()); err != nil {
		log.Error().Err(err).Msg("http server failed")
		os.Exit(exitcode.ServeError)
	}
	return nil
}
