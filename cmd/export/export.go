// Package export contains the export command: standardized CSV output.
package export

import (
	"fmt"

	"github.com/TonAlmeida/finance-dashboard/cmd/root"
	"github.com/TonAlmeida/finance-dashboard/internal/store"

	"github.com/spf13/cobra"
)

var outputFile string

// Cmd is the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export the ledger as a standardized CSV file",
	RunE: func(cmd *cobra.Command, args []string) error {
		transactions, err := root.OpenStore().Load()
		if err != nil {
			return err
		}

		if err := store.ExportCSV(transactions, outputFile); err != nil {
			return err
		}

		fmt.Printf("Exported %d transaction(s) to %s\n", len(transactions), outputFile)
		return nil
	},
}

func init() {
	Cmd.Flags().StringVarP(&outputFile, "output", "o", "transactions.csv", "Output CSV file")
}
