package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	cfgpkg "github.com/KaramelBytes/strokelens-cli/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set StrokeLens configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := effectiveConfig()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "data_file: %s\n", c.DataFile)
		fmt.Fprintf(out, "delimiter: %q\n", c.Delimiter)
		fmt.Fprintf(out, "export_dir: %s\n", c.ExportDir)
		fmt.Fprintf(out, "log_level: %s\n", c.LogLevel)
		fmt.Fprintf(out, "strict_categories: %t\n", c.StrictCategories)
		fmt.Fprintf(out, "percentiles: %s\n", formatRanks(c.Percentiles))
		fmt.Fprintf(out, "max_warnings: %d\n", c.MaxWarnings)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		// Reload from disk so CLI flag overrides are not persisted
		c, err := cfgpkg.Load(cfgFile)
		if err != nil {
			return err
		}
		switch key {
		case "data_file":
			c.DataFile = val
		case "delimiter":
			if _, err := cfgpkg.ParseDelimiter(val); err != nil {
				return err
			}
			c.Delimiter = val
		case "export_dir":
			c.ExportDir = val
		case "log_level":
			switch strings.ToLower(val) {
			case "debug", "info", "warn", "warning", "error":
				c.LogLevel = strings.ToLower(val)
			default:
				return fmt.Errorf("invalid log_level: %s (use debug|info|warn|error)", val)
			}
		case "strict_categories":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("invalid bool for strict_categories: %w", err)
			}
			c.StrictCategories = b
		case "percentiles":
			ranks, err := parseRanks(val)
			if err != nil {
				return err
			}
			c.Percentiles = ranks
		case "max_warnings":
			i, err := strconv.Atoi(val)
			if err != nil || i < 0 {
				return fmt.Errorf("invalid int for max_warnings: %v", val)
			}
			c.MaxWarnings = i
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(c, cfgFile); err != nil {
			return err
		}
		cfg = c
		fmt.Fprintln(cmd.OutOrStdout(), "Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}

// parseRanks reads a comma-separated list of percentile ranks in [0,100].
func parseRanks(s string) ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid percentile rank: %q (use numbers in 0..100)", part)
		}
		out = append(out, f)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("percentiles must list at least one rank")
	}
	if err := cfgpkg.ValidatePercentiles(out); err != nil {
		return nil, err
	}
	return out, nil
}

func formatRanks(ranks []float64) string {
	parts := make([]string, len(ranks))
	for i, r := range ranks {
		parts[i] = strconv.FormatFloat(r, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}
