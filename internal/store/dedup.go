package store

import (
	"github.com/TonAlmeida/finance-dashboard/internal/models"
)

// Dedupe returns the incoming transactions whose id is not already present
// in the existing list, preserving incoming order. Duplicate ids inside the
// incoming batch itself are also suppressed, so two overlapping files in the
// same import cannot leak duplicates past the gate. Neither input is mutated.
func Dedupe(existing, incoming []models.Transaction) []models.Transaction {
	seen := make(map[string]bool, len(existing)+len(incoming))
	for _, tx := range existing {
		seen[tx.ID] = true
	}

	fresh := make([]models.Transaction, 0, len(incoming))
	for _, tx := range incoming {
		if seen[tx.ID] {
			continue
		}
		seen[tx.ID] = true
		fresh = append(fresh, tx)
	}
	return fresh
}
