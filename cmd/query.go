package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	cfgpkg "github.com/KaramelBytes/strokelens-cli/internal/config"
	"github.com/KaramelBytes/strokelens-cli/internal/query"
)

var (
	qryFeature     string
	qryOutputPath  string
	qryPercentiles []float64
)

var queryCmd = &cobra.Command{
	Use:   "query <number|name>",
	Short: "Run one catalogue query and print the result",
	Long: `Run one catalogue query against the dataset and print the result as indented text.
Use 'strokelens list' to see the catalogue. Query 10 (descriptive-stats) needs --feature.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		q, ok := query.Lookup(args[0])
		if !ok {
			return fmt.Errorf("unknown query: %s (see 'strokelens list')", args[0])
		}
		feature := strings.TrimSpace(qryFeature)
		if q.NeedsFeature && feature == "" {
			return fmt.Errorf("query %s requires --feature", q.Name)
		}
		if err := cfgpkg.ValidatePercentiles(qryPercentiles); err != nil {
			return fmt.Errorf("--percentiles: %w", err)
		}
		s, err := loadStore()
		if err != nil {
			return err
		}
		c := effectiveConfig()
		params := query.Params{Feature: feature, Percentiles: c.Percentiles}
		if len(qryPercentiles) > 0 {
			params.Percentiles = qryPercentiles
		}

		res := query.Run(s, q, params)
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s\n\n%s\n", q.Title, query.Render(res))

		if qryOutputPath == "" {
			return nil
		}
		delim, err := c.DelimiterRune()
		if err != nil {
			return err
		}
		path, err := query.Save(res, qryOutputPath, query.ExportOptions{Delimiter: delim})
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		fmt.Fprintf(out, "✓ Exported result to %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(queryCmd)
	queryCmd.Flags().StringVarP(&qryFeature, "feature", "f", "", "feature analysed by descriptive-stats")
	queryCmd.Flags().StringVarP(&qryOutputPath, "output", "o", "", "export the result to this file or directory")
	queryCmd.Flags().Float64SliceVar(&qryPercentiles, "percentiles", nil, "percentile ranks for descriptive-stats (overrides config)")
}
