package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	cfgpkg "github.com/KaramelBytes/strokelens-cli/internal/config"
	"github.com/KaramelBytes/strokelens-cli/internal/dataset"
	"github.com/KaramelBytes/strokelens-cli/internal/logger"
)

var (
	// Global flags (override config if set)
	cfgFile       string
	debug         bool
	flagDataFile  string
	flagDelimiter string

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "strokelens",
	Short: "StrokeLens CLI: descriptive statistics over a stroke-risk dataset",
	Long: `StrokeLens loads a delimited stroke-risk dataset and answers a fixed catalogue of
cohort and descriptive-statistics queries. Results are printed as indented text and can be
exported to CSV.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called by main.main()
func Execute() {
	// Initialize configuration before executing commands
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.strokelens/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
	rootCmd.PersistentFlags().StringVar(&flagDataFile, "data", "", "dataset file (overrides config data_file)")
	rootCmd.PersistentFlags().StringVar(&flagDelimiter, "delimiter", "", "dataset delimiter: ',' | ';' | '|' | 'tab' (overrides config)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: fall back to defaults so list and config still work
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = &cfgpkg.Global{DataFile: "data.csv", Delimiter: ",", ExportDir: ".", LogLevel: "info", MaxWarnings: 20}
	}
	cfg = c

	// Apply CLI overrides if provided
	f := rootCmd.PersistentFlags()
	if f.Changed("data") && flagDataFile != "" {
		cfg.DataFile = flagDataFile
	}
	if f.Changed("delimiter") && flagDelimiter != "" {
		cfg.Delimiter = flagDelimiter
	}

	level := logger.ParseLevel(cfg.LogLevel)
	if debug {
		level = slog.LevelDebug
	}
	logger.SetOutput(os.Stderr, level)
}

// effectiveConfig returns the loaded configuration, loading it on demand when
// a command runs without cobra initializers (tests).
func effectiveConfig() *cfgpkg.Global {
	if cfg == nil {
		loadConfig()
	}
	return cfg
}

// loadStore loads the configured dataset and maps load failures to the two
// user-facing categories.
func loadStore() (*dataset.Store, error) {
	c := effectiveConfig()
	delim, err := c.DelimiterRune()
	if err != nil {
		return nil, err
	}
	opt := dataset.DefaultOptions()
	opt.Delimiter = delim
	opt.StrictCategories = c.StrictCategories
	opt.MaxWarnings = c.MaxWarnings

	s, err := dataset.Load(c.DataFile, opt)
	switch {
	case err == nil:
		return s, nil
	case errors.Is(err, dataset.ErrNotFound):
		return nil, fmt.Errorf("dataset not found: %s (set --data or data_file)", c.DataFile)
	case errors.Is(err, dataset.ErrInvalidContent):
		return nil, fmt.Errorf("invalid dataset: %w", err)
	default:
		return nil, err
	}
}
