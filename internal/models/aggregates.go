package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardSummary holds the headline totals shown on the dashboard.
// Balance is always TotalIncome minus TotalExpenses.
type DashboardSummary struct {
	Balance            decimal.Decimal `json:"balance"`
	TotalIncome        decimal.Decimal `json:"totalIncome"`
	TotalExpenses      decimal.Decimal `json:"totalExpenses"`
	TransactionsCount  int             `json:"transactionsCount"`
	AverageTransaction decimal.Decimal `json:"averageTransaction"`
}

// MonthBucket is one bar of the monthly income/expense chart. Buckets are
// keyed by year and month so January of different years never collapse.
type MonthBucket struct {
	Year     int             `json:"year"`
	Month    time.Month      `json:"month"`
	Label    string          `json:"label"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
}

// CategoryBucket is one slice of the category breakdown chart. Value is the
// absolute value of the net signed sum for the category.
type CategoryBucket struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// ClientGroup is a derived counterparty aggregate, rebuilt from the full
// transaction list whenever it changes; it is never persisted on its own.
type ClientGroup struct {
	Name         string          `json:"name"`
	Document     string          `json:"document,omitempty"`
	Date         Date            `json:"date"`
	Transactions int             `json:"transactions"`
	Balance      decimal.Decimal `json:"balance"`
	Category     string          `json:"category"`
	TransferType string          `json:"transferType,omitempty"`
}
