package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/campusops/resdash/internal/config"
	"github.com/campusops/resdash/internal/exitcode"
)

var (
	cfg     = config.Default()
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "resdash",
	Short: "Room reservations dashboard server and tools",
	Long:  "Loads a room-reservations export (CSV, XLSX, or Parquet), normalizes dates and times, and serves filterable dashboard views over HTTP or to CSV.",
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "Path to YAML config file")
	pf.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: text or json")

	rootCmd.PersistentPreRunE = mergeConfigFile
}

// mergeConfigFile layers the YAML config under any flags set explicitly on
// the command line.
func mergeConfigFile(cmd *cobra.Command, args []string) error {
	if cfgFile == "" {
		return nil
	}
	fileCfg := config.Default()
	if err := fileCfg.LoadFromFile(cfgFile); err != nil {
		return err
	}
	if !cmd.Flags().Changed("log-format") {
		cfg.LogFormat = fileCfg.LogFormat
	}
	if !cmd.Flags().Changed("file") {
		cfg.File = fileCfg.File
	}
	if !cmd.Flags().Changed("listen") {
		cfg.Listen = fileCfg.Listen
	}
	cfg.TopN = fileCfg.TopN
	cfg.DayFirst = fileCfg.DayFirst
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitcode.UsageError)
	}
}
