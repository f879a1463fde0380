// Package store owns the persisted transaction list. The list is the single
// source of truth: it is read once, every mutation rewrites it wholesale, and
// all aggregates are derived from it on demand.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/TonAlmeida/finance-dashboard/internal/fileutils"
	"github.com/TonAlmeida/finance-dashboard/internal/models"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// ErrNotFound is returned when a mutation targets an unknown transaction id.
var ErrNotFound = fmt.Errorf("transaction not found")

// Store persists the transaction list as a single JSON array, dates
// serialized as ISO strings.
type Store struct {
	path string
}

// New creates a store backed by the given JSON file.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the full transaction list. A missing file is an empty list,
// not an error; a corrupt file is.
func (s *Store) Load() ([]models.Transaction, error) {
	if !fileutils.FileExists(s.path) {
		return []models.Transaction{}, nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("error reading transactions file: %w", err)
	}

	var transactions []models.Transaction
	if err := json.Unmarshal(data, &transactions); err != nil {
		return nil, fmt.Errorf("error parsing transactions file: %w", err)
	}

	log.WithFields(logrus.Fields{
		"file":  s.path,
		"count": len(transactions),
	}).Debug("Loaded transaction list")

	return transactions, nil
}

// Save rewrites the whole transaction list.
func (s *Store) Save(transactions []models.Transaction) error {
	if err := fileutils.EnsureDirectoryExists(filepath.Dir(s.path)); err != nil {
		return err
	}

	data, err := json.MarshalIndent(transactions, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling transactions: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("error writing transactions file: %w", err)
	}

	log.WithFields(logrus.Fields{
		"file":  s.path,
		"count": len(transactions),
	}).Debug("Saved transaction list")

	return nil
}

// Add appends incoming transactions through the dedup gate and returns how
// many were actually appended.
func (s *Store) Add(incoming []models.Transaction) (int, error) {
	existing, err := s.Load()
	if err != nil {
		return 0, err
	}

	fresh := Dedupe(existing, incoming)
	if len(fresh) == 0 {
		return 0, nil
	}

	if err := s.Save(append(existing, fresh...)); err != nil {
		return 0, err
	}
	return len(fresh), nil
}

// Patch carries the fields an edit may change. Nil fields are left as-is.
// The transaction type is always recomputed from the resulting value sign.
type Patch struct {
	Date                *models.Date
	Value               *decimal.Decimal
	Description         *string
	Category            *string
	CounterpartName     *string
	CounterpartDocument *string
}

// Update locates a transaction by id, applies the patch and rewrites the
// list. Editing onto an id is overwrite semantics, never an error.
func (s *Store) Update(id string, patch Patch) error {
	transactions, err := s.Load()
	if err != nil {
		return err
	}

	for i := range transactions {
		if transactions[i].ID != id {
			continue
		}

		tx := &transactions[i]
		if patch.Date != nil {
			tx.Date = *patch.Date
		}
		if patch.Value != nil {
			tx.Value = *patch.Value
		}
		if patch.Description != nil {
			tx.Description = *patch.Description
		}
		if patch.Category != nil {
			tx.Category = *patch.Category
		}
		if patch.CounterpartName != nil {
			tx.CounterpartName = *patch.CounterpartName
		}
		if patch.CounterpartDocument != nil {
			tx.CounterpartDocument = *patch.CounterpartDocument
		}
		tx.Normalize()

		return s.Save(transactions)
	}

	return fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Delete removes a transaction by id and rewrites the list.
func (s *Store) Delete(id string) error {
	transactions, err := s.Load()
	if err != nil {
		return err
	}

	for i := range transactions {
		if transactions[i].ID == id {
			return s.Save(append(transactions[:i], transactions[i+1:]...))
		}
	}

	return fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Clear rewrites the list as empty.
func (s *Store) Clear() error {
	return s.Save([]models.Transaction{})
}
