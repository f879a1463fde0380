// Package importer orchestrates a batch CSV import: files are read fully,
// parsed and mapped one at a time, then a single dedup pass runs over the
// combined batch against the stored list before anything is persisted.
package importer

import (
	"bytes"
	"fmt"

	"github.com/TonAlmeida/finance-dashboard/internal/bankparser"
	"github.com/TonAlmeida/finance-dashboard/internal/bbparser"
	"github.com/TonAlmeida/finance-dashboard/internal/bradescoparser"
	"github.com/TonAlmeida/finance-dashboard/internal/fileutils"
	"github.com/TonAlmeida/finance-dashboard/internal/models"
	"github.com/TonAlmeida/finance-dashboard/internal/nubankparser"
	"github.com/TonAlmeida/finance-dashboard/internal/rowparser"
	"github.com/TonAlmeida/finance-dashboard/internal/store"
	"github.com/TonAlmeida/finance-dashboard/internal/taxonomy"

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

// DefaultRegistry returns a registry with all built-in bank mappers
// classifying against the given taxonomy.
func DefaultRegistry(vocab *taxonomy.Set) *bankparser.Registry {
	registry := bankparser.NewRegistry()
	registry.Register(nubankparser.New(vocab))
	registry.Register(bbparser.New(vocab))
	registry.Register(bradescoparser.New(vocab))
	return registry
}

// Result summarizes a completed batch import for the success notification.
type Result struct {
	FilesProcessed int
	Parsed         int
	Imported       int
	Duplicates     int
	TotalIncome    decimal.Decimal
	TotalExpenses  decimal.Decimal
}

// Importer runs batch imports against a transaction store.
type Importer struct {
	store    *store.Store
	registry *bankparser.Registry
}

// New creates an importer.
func New(st *store.Store, registry *bankparser.Registry) *Importer {
	return &Importer{store: st, registry: registry}
}

// ImportFiles imports a batch of CSV files exported in the given bank
// format. Any file that cannot be read, parsed or validated fails the whole
// batch before the store is touched; individual malformed rows inside a
// readable file are skipped by the mappers instead.
func (imp *Importer) ImportFiles(paths []string, format string) (*Result, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no files to import")
	}

	mapper, err := imp.registry.Get(format)
	if err != nil {
		log.WithError(err).WithField("format", format).Error("Unknown bank format selector")
		return nil, err
	}

	var batch []models.Transaction
	for _, path := range paths {
		transactions, err := imp.importFile(path, mapper)
		if err != nil {
			return nil, fmt.Errorf("importing %s: %w", path, err)
		}
		batch = append(batch, transactions...)
	}

	added, err := imp.store.Add(batch)
	if err != nil {
		return nil, err
	}

	result := &Result{
		FilesProcessed: len(paths),
		Parsed:         len(batch),
		Imported:       added,
		Duplicates:     len(batch) - added,
		TotalIncome:    decimal.Zero,
		TotalExpenses:  decimal.Zero,
	}
	for _, tx := range batch {
		if tx.Value.IsPositive() {
			result.TotalIncome = result.TotalIncome.Add(tx.Value)
		} else if tx.Value.IsNegative() {
			result.TotalExpenses = result.TotalExpenses.Add(tx.Value.Abs())
		}
	}

	log.WithFields(logrus.Fields{
		"files":      result.FilesProcessed,
		"parsed":     result.Parsed,
		"imported":   result.Imported,
		"duplicates": result.Duplicates,
	}).Info("Batch import completed")

	return result, nil
}

// importFile reads, parses, validates and maps one file.
func (imp *Importer) importFile(path string, mapper bankparser.Mapper) ([]models.Transaction, error) {
	data, err := fileutils.ReadFile(path)
	if err != nil {
		return nil, err
	}

	table, err := rowparser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	if err := bankparser.ValidateColumns(table, mapper.RequiredColumns()); err != nil {
		return nil, fmt.Errorf("not a valid %s export: %w", mapper.Format(), err)
	}

	transactions := mapper.Map(table.Rows)

	log.WithFields(logrus.Fields{
		"file":   path,
		"rows":   len(table.Rows),
		"mapped": len(transactions),
	}).Info("Processed statement file")

	return transactions, nil
}
