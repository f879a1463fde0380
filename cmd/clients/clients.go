// Package clients contains the clients command: the counterparty view.
package clients

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/TonAlmeida/finance-dashboard/cmd/root"
	"github.com/TonAlmeida/finance-dashboard/internal/clients"
	"github.com/TonAlmeida/finance-dashboard/internal/models"

	"github.com/spf13/cobra"
)

// Cmd is the clients command
var Cmd = &cobra.Command{
	Use:   "clients",
	Short: "Group ledger transactions by counterparty",
	Long: `Group the stored transactions by counterparty identity (document number
when available, normalized name otherwise) and list the groups by activity:
most transactions first, ties broken by absolute balance.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		transactions, err := root.OpenStore().Load()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tDOCUMENT\tTX\tBALANCE\tLAST SEEN\tCATEGORY\tTYPE")
		for _, group := range clients.Extract(transactions) {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
				group.Name, group.Document, group.Transactions,
				models.FormatBRL(group.Balance), group.Date, group.Category,
				group.TransferType)
		}
		return w.Flush()
	},
}
