// Package rowparser turns raw CSV text into an ordered sequence of
// header-keyed rows, tolerant of the short and empty lines bank exports
// routinely contain.
package rowparser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Row maps a trimmed column header to the raw cell value for one data line.
type Row map[string]string

// Get returns the trimmed cell value for a header, or "" when the row is
// shorter than the header line.
func (r Row) Get(header string) string {
	return strings.TrimSpace(r[header])
}

// Table is the parsed form of one CSV file: the header line plus one Row per
// non-empty data line.
type Table struct {
	Headers []string
	Rows    []Row
}

// Parse reads a whole CSV stream. The first non-empty record is the header
// line; every following record is zipped positionally with the headers.
// Quoted fields containing commas are handled, short records simply leave
// their trailing headers unset, and fully blank records are skipped.
func Parse(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading CSV data: %w", err)
	}

	table := &Table{}
	for _, record := range records {
		if isBlank(record) {
			continue
		}

		if table.Headers == nil {
			for _, cell := range record {
				table.Headers = append(table.Headers, strings.TrimSpace(cell))
			}
			continue
		}

		row := make(Row, len(table.Headers))
		for i, header := range table.Headers {
			if i < len(record) {
				row[header] = record[i]
			}
		}
		table.Rows = append(table.Rows, row)
	}

	if table.Headers == nil {
		return nil, fmt.Errorf("no header line found")
	}

	log.WithFields(logrus.Fields{
		"columns": len(table.Headers),
		"rows":    len(table.Rows),
	}).Debug("Parsed CSV content")

	return table, nil
}

func isBlank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
