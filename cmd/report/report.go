// Package report contains the report command: dashboard totals, monthly
// chart buckets and category breakdowns derived from the ledger.
package report

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/TonAlmeida/finance-dashboard/cmd/root"
	"github.com/TonAlmeida/finance-dashboard/internal/aggregate"
	"github.com/TonAlmeida/finance-dashboard/internal/models"

	"github.com/spf13/cobra"
)

// Cmd is the report command
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Derive aggregate views from the ledger",
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show balance, total income, total expenses and transaction count",
	RunE: func(cmd *cobra.Command, args []string) error {
		transactions, err := root.OpenStore().Load()
		if err != nil {
			return err
		}

		summary := aggregate.Dashboard(transactions)
		fmt.Printf("Balance:       %s\n", models.FormatBRL(summary.Balance))
		fmt.Printf("Income:        %s\n", models.FormatBRL(summary.TotalIncome))
		fmt.Printf("Expenses:      %s\n", models.FormatBRL(summary.TotalExpenses))
		fmt.Printf("Transactions:  %d\n", summary.TransactionsCount)
		fmt.Printf("Average:       %s\n", models.FormatBRL(summary.AverageTransaction))
		return nil
	},
}

var monthlyCmd = &cobra.Command{
	Use:   "monthly",
	Short: "Show per-month income and expense buckets",
	RunE: func(cmd *cobra.Command, args []string) error {
		transactions, err := root.OpenStore().Load()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "MONTH\tINCOME\tEXPENSES")
		for _, bucket := range aggregate.MonthlyBuckets(transactions) {
			fmt.Fprintf(w, "%s/%d\t%s\t%s\n",
				bucket.Label, bucket.Year,
				models.FormatBRL(bucket.Income), models.FormatBRL(bucket.Expenses))
		}
		return w.Flush()
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Show per-category totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		transactions, err := root.OpenStore().Load()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "CATEGORY\tVALUE")
		for _, bucket := range aggregate.CategoryBuckets(transactions) {
			fmt.Fprintf(w, "%s\t%s\n", bucket.Name, models.FormatBRL(bucket.Value))
		}
		return w.Flush()
	},
}

func init() {
	Cmd.AddCommand(dashboardCmd)
	Cmd.AddCommand(monthlyCmd)
	Cmd.AddCommand(categoriesCmd)
}
