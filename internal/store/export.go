package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/TonAlmeida/finance-dashboard/internal/fileutils"
	"github.com/TonAlmeida/finance-dashboard/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"
)

// Delimiter used for exported CSV files. Configurable through the csv
// settings so spreadsheets in locales using ";" can open the output.
var Delimiter rune = ','

// SetDelimiter sets the delimiter for CSV export output.
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// ExportCSV writes transactions to a standardized CSV file: one row per
// transaction, dates as ISO strings, values with a dot decimal separator.
func ExportCSV(transactions []models.Transaction, csvFile string) error {
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}

	if err := fileutils.EnsureDirectoryExists(filepath.Dir(csvFile)); err != nil {
		return err
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(transactions, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	log.WithFields(logrus.Fields{
		"file":  csvFile,
		"count": len(transactions),
	}).Info("Exported transactions to CSV file")

	return nil
}
