// Package bankparser defines the mapper contract that turns parsed statement
// rows into canonical transactions, plus the format registry and the parsing
// helpers shared by all bank mappers.
package bankparser

import (
	"fmt"
	"strings"

	"github.com/TonAlmeida/finance-dashboard/internal/models"
	"github.com/TonAlmeida/finance-dashboard/internal/rowparser"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Mapper converts one bank's statement rows into canonical transactions.
// Rows that cannot become a complete, valid transaction are dropped: partial
// success is preferable to all-or-nothing failure on heterogeneous exports.
type Mapper interface {
	// Format is the selector this mapper registers under ("nu", "bb", ...).
	Format() string
	// RequiredColumns lists the headers that must be present before mapping.
	RequiredColumns() []string
	// Map transforms parsed rows into transactions. It never fails hard;
	// invalid rows are skipped and logged.
	Map(rows []rowparser.Row) []models.Transaction
}

// Registry holds the mappers known to the importer, keyed by format selector.
type Registry struct {
	mappers map[string]Mapper
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{mappers: make(map[string]Mapper)}
}

// Register adds a mapper. Registering the same format twice is a programming
// error and panics.
func (r *Registry) Register(m Mapper) {
	key := strings.ToLower(m.Format())
	if _, ok := r.mappers[key]; ok {
		panic("duplicate mapper format: " + key)
	}
	r.mappers[key] = m
}

// Get returns the mapper for a format selector.
func (r *Registry) Get(format string) (Mapper, error) {
	m, ok := r.mappers[strings.ToLower(strings.TrimSpace(format))]
	if !ok {
		return nil, fmt.Errorf("unknown bank format: %q", format)
	}
	return m, nil
}

// Formats returns the registered selectors, for help output.
func (r *Registry) Formats() []string {
	formats := make([]string, 0, len(r.mappers))
	for key := range r.mappers {
		formats = append(formats, key)
	}
	return formats
}

// ValidateColumns checks that every required header is present in the parsed
// table, failing the file fast with a descriptive error instead of mapping
// rows with silently unset fields.
func ValidateColumns(table *rowparser.Table, required []string) error {
	present := make(map[string]bool, len(table.Headers))
	for _, header := range table.Headers {
		present[header] = true
	}
	for _, column := range required {
		if !present[column] {
			return fmt.Errorf("missing required column %q", column)
		}
	}
	return nil
}
