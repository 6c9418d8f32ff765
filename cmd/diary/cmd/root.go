package cmd

import (
	"fmt"
	"os"

	"github.com/rustyeddy/diary/config"
	"github.com/rustyeddy/diary/journal"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "diary",
	Short: "A personal trading journal",
	Long: `Diary is a local trading journal kept in a single SQLite file.

It provides tools for:
  - Recording closed trades with automatic P/L calculation
  - Reviewing and annotating past trades
  - Summary statistics (net profit, win rate, profit factor)
  - Per-instrument-class contract sizing
  - A discipline counter for sticking to the plan
  - CSV export for spreadsheets`,
}

var (
	cfgFile string
	dbPath  string
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (YAML or JSON)")
	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "path to diary database (overrides config)")
}

// loadConfig resolves the effective configuration for this invocation.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if dbPath != "" {
		cfg.Database.Path = dbPath
	}
	return cfg, nil
}

// openStore opens the diary database. A store that failed to open still
// works in degraded mode (empty reads, failing writes); the condition is
// reported once here rather than on every operation.
func openStore() (*journal.SQLite, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	st := journal.Open(cfg.Database.Path)
	if err := st.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v (reads return defaults, writes will fail)\n", err)
	}
	return st, cfg, nil
}
