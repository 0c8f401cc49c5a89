package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/strokelens-cli/internal/query"
	"github.com/KaramelBytes/strokelens-cli/internal/utils"
)

var (
	raOutputDir string
	raFeature   string
	raQuiet     bool
)

var runAllCmd = &cobra.Command{
	Use:   "run-all",
	Short: "Run every catalogue query and export each result with progress",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := effectiveConfig()
		dir := raOutputDir
		if dir == "" {
			dir = c.ExportDir
		}
		dir, err := utils.ExpandHome(dir)
		if err != nil {
			return err
		}
		if err := utils.EnsureDir(dir); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
		delim, err := c.DelimiterRune()
		if err != nil {
			return err
		}
		s, err := loadStore()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		catalogue := query.Catalogue()
		total := len(catalogue)
		failed := 0
		params := query.Params{Feature: strings.TrimSpace(raFeature), Percentiles: c.Percentiles}
		for i, q := range catalogue {
			if !raQuiet {
				fmt.Fprintf(out, "[%d/%d] Running %s...\n", i+1, total, q.Name)
			}
			res := query.Run(s, q, params)
			path := filepath.Join(dir, query.FileName(res))
			if !query.Export(res, path, query.ExportOptions{Delimiter: delim}) {
				failed++
				fmt.Fprintf(os.Stderr, "⚠ Warning: export of %s failed\n", q.Name)
				continue
			}
			if !raQuiet {
				fmt.Fprintf(out, "✓ Wrote %s\n", filepath.Base(path))
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d exports failed", failed, total)
		}
		if !raQuiet {
			fmt.Fprintf(out, "✓ Exported %d results to %s\n", total, dir)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runAllCmd)
	runAllCmd.Flags().StringVar(&raOutputDir, "output-dir", "", "directory for exported results (default: config export_dir)")
	runAllCmd.Flags().StringVarP(&raFeature, "feature", "f", "Age", "feature analysed by descriptive-stats")
	runAllCmd.Flags().BoolVar(&raQuiet, "quiet", false, "suppress progress and non-essential output")
}
