// Package nubankparser maps Nubank account statement rows into canonical
// transactions. Nubank exports carry a stable identifier column and a
// composite description of the form "<label> - <name> - <document>".
package nubankparser

import (
	"github.com/TonAlmeida/finance-dashboard/internal/bankparser"
	"github.com/TonAlmeida/finance-dashboard/internal/categorizer"
	"github.com/TonAlmeida/finance-dashboard/internal/models"
	"github.com/TonAlmeida/finance-dashboard/internal/rowparser"
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

// Column headers of a Nubank CSV export.
const (
	columnDate        = "Data"
	columnValue       = "Valor"
	columnIdentifier  = "Identificador"
	columnDescription = "Descrição"
)

// Mapper implements bankparser.Mapper for Nubank statements.
type Mapper struct {
	vocab *taxonomy.Set
}

// New creates a Nubank mapper classifying against the given taxonomy.
func New(vocab *taxonomy.Set) *Mapper {
	return &Mapper{vocab: vocab}
}

// Format returns the bank selector for this mapper.
func (m *Mapper) Format() string {
	return "nu"
}

// RequiredColumns lists the headers a Nubank export must carry.
func (m *Mapper) RequiredColumns() []string {
	return []string{columnDate, columnValue, columnIdentifier, columnDescription}
}

// Map converts parsed rows into transactions. Rows without a parseable date
// are dropped; unparsable values degrade to zero with a warning.
func (m *Mapper) Map(rows []rowparser.Row) []models.Transaction {
	transactions := make([]models.Transaction, 0, len(rows))

	for _, row := range rows {
		if row.Get(columnDate) == "" {
			continue
		}

		date, err := bankparser.ParseDate(row.Get(columnDate))
		if err != nil {
			log.WithError(err).WithField("row", row).Warn("Skipping row with malformed date")
			continue
		}

		value, err := models.ParseAmount(row.Get(columnValue))
		if err != nil {
			log.WithError(err).WithField("row", row).Warn("Unparsable value, defaulting to zero")
			value = decimal.Zero
		}

		description := row.Get(columnDescription)
		_, name, document := bankparser.SplitDescription(description)

		id := row.Get(columnIdentifier)
		if id == "" {
			id = bankparser.SynthesizeID(date, value, description)
		}

		tx := models.Transaction{
			ID:                  id,
			Date:                date,
			Value:               value,
			Description:         description,
			Category:            categorizer.ForValue(description, value, m.vocab),
			CounterpartName:     name,
			CounterpartDocument: bankparser.NormalizeDocument(document),
		}
		tx.Normalize()
		transactions = append(transactions, tx)
	}

	log.WithFields(logrus.Fields{
		"format": m.Format(),
		"rows":   len(rows),
		"mapped": len(transactions),
	}).Info("Mapped Nubank statement rows")

	return transactions
}
