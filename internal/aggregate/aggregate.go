// Package aggregate derives the display aggregates from a transaction list.
// Every function here is a pure, single-pass fold: aggregates are recomputed
// from the full list on demand and never persisted separately.
package aggregate

import (
	"sort"
	"time"

	"github.com/TonAlmeida/finance-dashboard/internal/models"

	"github.com/shopspring/decimal"
)

// monthLabels are the pt-BR month abbreviations used on chart axes.
var monthLabels = []string{
	"jan", "fev", "mar", "abr", "mai", "jun",
	"jul", "ago", "set", "out", "nov", "dez",
}

// MonthLabel returns the chart label for a month.
func MonthLabel(month time.Month) string {
	return monthLabels[int(month)-1]
}

// Dashboard folds the list into the headline totals. Positive values add to
// income, negative values add their magnitude to expenses; a value of
// exactly zero counts toward the transaction count but moves neither total.
func Dashboard(transactions []models.Transaction) models.DashboardSummary {
	summary := models.DashboardSummary{
		Balance:       decimal.Zero,
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
	}

	for _, tx := range transactions {
		summary.Balance = summary.Balance.Add(tx.Value)
		if tx.Value.IsPositive() {
			summary.TotalIncome = summary.TotalIncome.Add(tx.Value)
		} else if tx.Value.IsNegative() {
			summary.TotalExpenses = summary.TotalExpenses.Add(tx.Value.Abs())
		}
	}

	summary.TransactionsCount = len(transactions)
	if len(transactions) > 0 {
		turnover := summary.TotalIncome.Add(summary.TotalExpenses)
		summary.AverageTransaction = turnover.
			Div(decimal.NewFromInt(int64(len(transactions)))).
			Round(2)
	} else {
		summary.AverageTransaction = decimal.Zero
	}

	return summary
}

// MonthlyBuckets groups transactions into per-month income/expense buckets,
// keyed by year and month so multi-year data never conflates same-named
// months, ordered chronologically ascending and rounded to two decimals.
func MonthlyBuckets(transactions []models.Transaction) []models.MonthBucket {
	buckets := make(map[int]*models.MonthBucket)

	for _, tx := range transactions {
		if tx.Date.IsZero() {
			continue
		}

		key := tx.Date.Year()*12 + int(tx.Date.Month()) - 1
		bucket, ok := buckets[key]
		if !ok {
			bucket = &models.MonthBucket{
				Year:     tx.Date.Year(),
				Month:    tx.Date.Month(),
				Label:    MonthLabel(tx.Date.Month()),
				Income:   decimal.Zero,
				Expenses: decimal.Zero,
			}
			buckets[key] = bucket
		}

		if tx.Value.IsPositive() {
			bucket.Income = bucket.Income.Add(tx.Value)
		} else if tx.Value.IsNegative() {
			bucket.Expenses = bucket.Expenses.Add(tx.Value.Abs())
		}
	}

	keys := make([]int, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Ints(keys)

	result := make([]models.MonthBucket, 0, len(keys))
	for _, key := range keys {
		bucket := *buckets[key]
		bucket.Income = bucket.Income.Round(2)
		bucket.Expenses = bucket.Expenses.Round(2)
		result = append(result, bucket)
	}
	return result
}

// CategoryBuckets groups transactions by category, summing signed values per
// category and reporting the magnitude of the net sum. The signed sum comes
// first, so a category holding both inflows and outflows partially cancels
// before the absolute value is taken. An empty list yields the single
// placeholder bucket so chart rendering never receives an empty series.
func CategoryBuckets(transactions []models.Transaction) []models.CategoryBucket {
	sums := make(map[string]decimal.Decimal)
	order := make([]string, 0)

	for _, tx := range transactions {
		category := tx.Category
		if category == "" {
			category = models.CategoryOther
		}
		if _, ok := sums[category]; !ok {
			order = append(order, category)
		}
		sums[category] = sums[category].Add(tx.Value)
	}

	if len(order) == 0 {
		return []models.CategoryBucket{
			{Name: models.CategoryPlaceholder, Value: decimal.NewFromInt(1)},
		}
	}

	result := make([]models.CategoryBucket, 0, len(order))
	for _, category := range order {
		result = append(result, models.CategoryBucket{
			Name:  category,
			Value: sums[category].Abs(),
		})
	}
	return result
}
