// Package tx contains the tx command: listing and manual mutation of the
// transaction ledger.
package tx

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/TonAlmeida/finance-dashboard/cmd/root"
	"github.com/TonAlmeida/finance-dashboard/internal/bankparser"
	"github.com/TonAlmeida/finance-dashboard/internal/categorizer"
	"github.com/TonAlmeida/finance-dashboard/internal/models"
	"github.com/TonAlmeida/finance-dashboard/internal/store"

	"github.com/spf13/cobra"
)

// Cmd is the tx command
var Cmd = &cobra.Command{
	Use:   "tx",
	Short: "List, add, edit and delete ledger transactions",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stored transactions",
	RunE: func(cmd *cobra.Command, args []string) error {
		transactions, err := root.OpenStore().Load()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tDATE\tVALUE\tCATEGORY\tDESCRIPTION")
		for _, t := range transactions {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				t.ID, t.Date, models.FormatBRL(t.Value), t.Category, truncate(t.Description, 50))
		}
		return w.Flush()
	},
}

var addFlags struct {
	Date     string
	Value    string
	Type     string
	Name     string
	Document string
	Category string
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a manual transaction",
	Long: `Add a transaction entered by hand. The identifier is derived from the
date, type, counterparty name and document, so entering the same transaction
twice collides with the stored one instead of duplicating it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := models.ParseISODate(addFlags.Date)
		if err != nil {
			return err
		}

		magnitude, err := models.ParseAmount(addFlags.Value)
		if err != nil {
			return err
		}

		typ := models.TransactionType(addFlags.Type)
		if typ != models.TypeIncome && typ != models.TypeExpense {
			return fmt.Errorf("invalid type %q (must be income or expense)", addFlags.Type)
		}

		value := magnitude.Abs()
		if typ == models.TypeExpense {
			value = value.Neg()
		}

		document := bankparser.NormalizeDocument(addFlags.Document)
		description := bankparser.JoinDescription(string(typ), addFlags.Name, document)

		category := addFlags.Category
		if category == "" {
			category = categorizer.ForValue(description, value, root.Vocabulary())
		}

		transaction := models.Transaction{
			ID:                  models.ManualID(date, typ, addFlags.Name, document),
			Date:                date,
			Value:               value,
			Description:         description,
			Category:            category,
			CounterpartName:     addFlags.Name,
			CounterpartDocument: document,
		}
		transaction.Normalize()

		added, err := root.OpenStore().Add([]models.Transaction{transaction})
		if err != nil {
			return err
		}
		if added == 0 {
			fmt.Println("Transaction already exists, nothing added")
			return nil
		}
		fmt.Printf("Added transaction %s\n", transaction.ID)
		return nil
	},
}

var editFlags struct {
	ID          string
	Date        string
	Value       string
	Description string
	Category    string
	Name        string
	Document    string
}

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit a stored transaction by id",
	RunE: func(cmd *cobra.Command, args []string) error {
		patch := store.Patch{}

		if cmd.Flags().Changed("date") {
			date, err := models.ParseISODate(editFlags.Date)
			if err != nil {
				return err
			}
			patch.Date = &date
		}
		if cmd.Flags().Changed("value") {
			value, err := models.ParseAmount(editFlags.Value)
			if err != nil {
				return err
			}
			patch.Value = &value
		}
		if cmd.Flags().Changed("description") {
			patch.Description = &editFlags.Description
		}
		if cmd.Flags().Changed("category") {
			patch.Category = &editFlags.Category
		}
		if cmd.Flags().Changed("name") {
			patch.CounterpartName = &editFlags.Name
		}
		if cmd.Flags().Changed("document") {
			document := bankparser.NormalizeDocument(editFlags.Document)
			patch.CounterpartDocument = &document
		}

		if err := root.OpenStore().Update(editFlags.ID, patch); err != nil {
			return err
		}
		fmt.Printf("Updated transaction %s\n", editFlags.ID)
		return nil
	},
}

var deleteID string

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a stored transaction by id",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := root.OpenStore().Delete(deleteID); err != nil {
			return err
		}
		fmt.Printf("Deleted transaction %s\n", deleteID)
		return nil
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every stored transaction",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := root.OpenStore().Clear(); err != nil {
			return err
		}
		fmt.Println("Ledger cleared")
		return nil
	},
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

func init() {
	addCmd.Flags().StringVar(&addFlags.Date, "date", "", "Transaction date (YYYY-MM-DD)")
	addCmd.Flags().StringVar(&addFlags.Value, "value", "", "Transaction amount (magnitude)")
	addCmd.Flags().StringVar(&addFlags.Type, "type", "expense", "Transaction type (income or expense)")
	addCmd.Flags().StringVar(&addFlags.Name, "name", "", "Counterparty name")
	addCmd.Flags().StringVar(&addFlags.Document, "document", "", "Counterparty document number")
	addCmd.Flags().StringVar(&addFlags.Category, "category", "", "Category (classified from the description when omitted)")
	_ = addCmd.MarkFlagRequired("date")
	_ = addCmd.MarkFlagRequired("value")

	editCmd.Flags().StringVar(&editFlags.ID, "id", "", "Transaction id")
	editCmd.Flags().StringVar(&editFlags.Date, "date", "", "New date (YYYY-MM-DD)")
	editCmd.Flags().StringVar(&editFlags.Value, "value", "", "New signed value")
	editCmd.Flags().StringVar(&editFlags.Description, "description", "", "New description")
	editCmd.Flags().StringVar(&editFlags.Category, "category", "", "New category")
	editCmd.Flags().StringVar(&editFlags.Name, "name", "", "New counterparty name")
	editCmd.Flags().StringVar(&editFlags.Document, "document", "", "New counterparty document")
	_ = editCmd.MarkFlagRequired("id")

	deleteCmd.Flags().StringVar(&deleteID, "id", "", "Transaction id")
	_ = deleteCmd.MarkFlagRequired("id")

	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(editCmd)
	Cmd.AddCommand(deleteCmd)
	Cmd.AddCommand(clearCmd)
}
