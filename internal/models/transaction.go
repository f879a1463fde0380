// Package models provides the data structures shared by the whole pipeline.
package models

import (
	"github.com/shopspring/decimal"
)

// TransactionType is the polarity of a transaction. It must always agree
// with the sign of the value; mappers and edits reconcile it via Normalize.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Transaction is the canonical record every bank-specific statement row is
// mapped into. Positive values are inflows, negative values are outflows.
type Transaction struct {
	ID                  string          `json:"id" csv:"Identificador"`
	Date                Date            `json:"date" csv:"Data"`
	Value               decimal.Decimal `json:"value" csv:"Valor"`
	Description         string          `json:"description" csv:"Descrição"`
	Category            string          `json:"category" csv:"Categoria"`
	Type                TransactionType `json:"type" csv:"Tipo"`
	CounterpartName     string          `json:"counterpartName" csv:"Contraparte"`
	CounterpartDocument string          `json:"counterpartDocument,omitempty" csv:"Documento"`
}

// IsIncome reports whether the transaction is an inflow.
func (t Transaction) IsIncome() bool {
	return t.Value.IsPositive()
}

// TypeForValue returns the transaction type implied by a value's sign.
// Zero is polarity-neutral and treated as an expense for labelling purposes.
func TypeForValue(value decimal.Decimal) TransactionType {
	if value.IsPositive() {
		return TypeIncome
	}
	return TypeExpense
}

// Normalize reconciles derived fields with the value sign and fills defaults.
// The type field must agree with the sign everywhere; a record arriving with
// a mismatched label gets it reset here rather than propagated.
func (t *Transaction) Normalize() {
	t.Type = TypeForValue(t.Value)
	if t.Category == "" {
		t.Category = CategoryOther
	}
	if t.CounterpartName == "" {
		t.CounterpartName = UnknownCounterpart
	}
}

// ManualID builds the deterministic identifier used for manually entered
// transactions: a concatenation of stable fields, never time or randomness,
// so re-entering the same transaction collides instead of duplicating.
func ManualID(date Date, typ TransactionType, name, document string) string {
	return date.String() + string(typ) + name + document
}
