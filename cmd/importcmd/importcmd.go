// Package importcmd contains the import command: batch CSV ingestion.
package importcmd

import (
	"fmt"

	"github.com/TonAlmeida/finance-dashboard/cmd/root"
	"github.com/TonAlmeida/finance-dashboard/internal/importer"
	"github.com/TonAlmeida/finance-dashboard/internal/models"

	"github.com/spf13/cobra"
)

var bankFormat string

// Cmd is the import command
var Cmd = &cobra.Command{
	Use:   "import [files...]",
	Short: "Import bank CSV statement files into the ledger",
	Long: `Import one or more CSV statement files exported from a bank. All files in
a batch are parsed and mapped first; the whole batch then passes through the
deduplication gate against the stored ledger, so re-importing a file (or
importing two overlapping files together) never double-counts transactions.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		imp := importer.New(root.OpenStore(), importer.DefaultRegistry(root.Vocabulary()))

		result, err := imp.ImportFiles(args, bankFormat)
		if err != nil {
			return err
		}

		fmt.Printf("Imported %d of %d transactions from %d file(s)\n",
			result.Imported, result.Parsed, result.FilesProcessed)
		if result.Duplicates > 0 {
			fmt.Printf("Skipped %d duplicate(s)\n", result.Duplicates)
		}
		fmt.Printf("Income:   %s\n", models.FormatBRL(result.TotalIncome))
		fmt.Printf("Expenses: %s\n", models.FormatBRL(result.TotalExpenses))
		return nil
	},
}

func init() {
	Cmd.Flags().StringVarP(&bankFormat, "bank", "b", "nu", "Bank format selector (nu, bb, bradesco)")
}
