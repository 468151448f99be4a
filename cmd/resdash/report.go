package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/campusops/resdash/internal/aggregate"
	"github.com/campusops/resdash/internal/exitcode"
	"github.com/campusops/resdash/internal/logging"
	"github.com/campusops/resdash/internal/model"
	"github.com/campusops/resdash/internal/normalize"
	"github.com/campusops/resdash/internal/reservations"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Load an export and print summary stats (no server, no writes)",
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&cfg.File, "file", cfg.File, "Reservations export to inspect")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)

	ds, err := reservations.Load(log, cfg.File, normalize.Options{DayFirst: cfg.DayFirst})
	if err != nil {
		log.Error().Err(err).Msg("load failed")
		if pe, ok := err.(*reservations.PipelineError); ok && pe.Phase == "read" {
			os.Exit(exitcode.LoadError)
		}
		os.Exit(exitcode.ValidationError)
	}

	sum := ds.Summary
	fmt.Println("=== resdash report ===")
	fmt.Printf("File:        %s\n", sum.FilePath)
	fmt.Printf("SHA-256:     %s\n", sum.FileSHA256)
	fmt.Printf("Rows:        %d\n", sum.RowsRead)
	fmt.Printf("Bad dates:   %d\n", sum.DateParseFailures)
	fmt.Printf("Bad times:   %d\n", sum.TimeParseFailures)
	if len(sum.MissingColumns) > 0 {
		fmt.Printf("Missing:     %s\n", strings.Join(sum.MissingColumns, ", "))
	}

	dates := aggregate.DatesWithEvents(ds.Records)
	if len(dates) > 0 {
		fmt.Printf("Date span:   %s to %s (%d days with reservations)\n",
			dates[0].Format("1/2/2006"), dates[len(dates)-1].Format("1/2/2006"), len(dates))
	}

	totals := aggregate.Summarize(ds.Records)
	fmt.Printf("Locations:   %d\n", totals.UniqueLocations)
	fmt.Printf("Departments: %d\n", totals.UniqueDepartments)
	fmt.Printf("Active:      %d\n", totals.Active)

	top := aggregate.TopNWithOther(aggregate.ValueCounts(ds.Records,
		func(r model.Record) string { return r.Raw.Location }), 5)
	if len(top) > 0 {
		fmt.Println()
		fmt.Println("Top locations:")
		for _, c := range top {
			fmt.Printf("  %-30s %d\n", c.Value, c.Count)
		}
	}

	hours := aggregate.HourHistogram(ds.Records)
	if len(hours) > 0 {
		fmt.Println()
		fmt.Println("Reservations by start hour:")
		for _, h := range hours {
			fmt.Printf("  %02d:00  %s %d\n", h.Hour, strings.Repeat("#", h.Count), h.Count)
		}
	}

	return nil
}
