package cmd

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var inspWarnings int

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Load the dataset and report its schema, missing values and load warnings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadStore()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Dataset: %s\n", effectiveConfig().DataFile)
		fmt.Fprintf(out, "Records: %d\n", s.Len())
		fmt.Fprintf(out, "Fields: %d\n\n", len(s.Header))

		table := tablewriter.NewWriter(out)
		table.SetHeader([]string{"Field", "Type", "Missing"})
		for _, name := range s.Header {
			missing := 0
			for _, v := range s.Column(name) {
				if v.IsMissing() {
					missing++
				}
			}
			table.Append([]string{name, s.Schema.Lookup(name).Type.String(), strconv.Itoa(missing)})
		}
		table.Render()

		if len(s.Warnings) == 0 {
			fmt.Fprintln(out, "\n✓ No load warnings")
			return nil
		}
		fmt.Fprintf(out, "\n⚠ %d load warnings\n", len(s.Warnings))
		n := inspWarnings
		if n < 0 || n > len(s.Warnings) {
			n = len(s.Warnings)
		}
		for _, w := range s.Warnings[:n] {
			fmt.Fprintf(out, "- %s\n", w)
		}
		if n < len(s.Warnings) {
			fmt.Fprintf(out, "(%d more, use --warnings -1 to show all)\n", len(s.Warnings)-n)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().IntVar(&inspWarnings, "warnings", 10, "number of load warnings to print (-1 = all)")
}
