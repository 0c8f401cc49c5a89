package cmd

import (
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/KaramelBytes/strokelens-cli/internal/query"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the query catalogue",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.SetHeader([]string{"#", "Name", "Description", "Feature"})
		for _, q := range query.Catalogue() {
			feature := ""
			if q.NeedsFeature {
				feature = "required"
			}
			table.Append([]string{strconv.Itoa(q.Number), q.Name, q.Title, feature})
		}
		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
