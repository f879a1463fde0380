// Package categories contains the categories command: inspection and export
// of the classification vocabularies.
package categories

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/TonAlmeida/finance-dashboard/cmd/root"
	"github.com/TonAlmeida/finance-dashboard/internal/taxonomy"

	"github.com/spf13/cobra"
)

// Cmd is the categories command
var Cmd = &cobra.Command{
	Use:   "categories",
	Short: "Inspect and export the category vocabularies",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the active category vocabularies in classification order",
	RunE: func(cmd *cobra.Command, args []string) error {
		set := root.Vocabulary()

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "SIDE\tCATEGORY\tKEYWORDS")
		for _, category := range set.Income {
			fmt.Fprintf(w, "income\t%s\t%s\n", category.Name, strings.Join(category.Keywords, ", "))
		}
		for _, category := range set.Expenses {
			fmt.Fprintf(w, "expense\t%s\t%s\n", category.Name, strings.Join(category.Keywords, ", "))
		}
		return w.Flush()
	},
}

var outputFile string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the active vocabularies to a YAML file",
	Long: `Write the currently active category vocabularies (built-in defaults merged
with any override file) out as YAML. The written file is a complete override:
edit it and point categories.file (or --categories) at it to customize
classification.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		set := root.Vocabulary()

		if err := taxonomy.NewStore(outputFile).Save(set); err != nil {
			return err
		}
		fmt.Printf("Wrote %d income and %d expense categories to %s\n",
			len(set.Income), len(set.Expenses), outputFile)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&outputFile, "output", "o", "categories.yaml", "Output YAML file")
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(exportCmd)
}
