// Package bbparser maps Banco do Brasil account statement rows into
// canonical transactions. BB exports use Brazilian number formatting,
// interleave non-transaction balance summary lines, and provide only a
// document number that is often blank.
package bbparser

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

// Column headers of a Banco do Brasil CSV export.
const (
	columnDate     = "Data"
	columnEntry    = "Lançamento"
	columnDetails  = "Detalhes"
	columnDocument = "N° documento"
	columnValue    = "Valor"
)

// Balance summary labels BB includes as non-transaction rows.
var sentinelEntries = map[string]bool{
	"Saldo Anterior": true,
	"Saldo do dia":   true,
	"S A L D O":      true,
}

// Mapper implements bankparser.Mapper for Banco do Brasil statements.
type Mapper struct {
	vocab *taxonomy.Set
}

// New creates a BB mapper classifying against the given taxonomy.
func New(vocab *taxonomy.Set) *Mapper {
	return &Mapper{vocab: vocab}
}

// Format returns the bank selector for this mapper.
func (m *Mapper) Format() string {
	return "bb"
}

// RequiredColumns lists the headers a BB export must carry.
func (m *Mapper) RequiredColumns() []string {
	return []string{columnDate, columnEntry, columnValue}
}

// Map converts parsed rows into transactions, filtering balance summary rows
// and rows without a usable date.
func (m *Mapper) Map(rows []rowparser.Row) []models.Transaction {
	transactions := make([]models.Transaction, 0, len(rows))

	for _, row := range rows {
		if row.Get(columnDate) == "" || sentinelEntries[row.Get(columnEntry)] {
			continue
		}

		date, err := bankparser.ParseDate(row.Get(columnDate))
		if err != nil {
			log.WithError(err).WithField("row", row).Warn("Skipping row with malformed date")
			continue
		}

		value, err := models.ParseBrazilianAmount(row.Get(columnValue))
		if err != nil {
			log.WithError(err).WithField("row", row).Warn("Unparsable value, defaulting to zero")
			value = decimal.Zero
		}

		// BB has no single composite description; build one in the same
		// "<label> - <details>" shape the other banks produce.
		description := bankparser.JoinDescription(row.Get(columnEntry), row.Get(columnDetails))
		_, name, document := bankparser.SplitDescription(description)

		id := row.Get(columnDocument)
		if id == "" || id == "0" {
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
	}).Info("Mapped Banco do Brasil statement rows")

	return transactions
}
